package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/relaxlab/bellmanford"
	"github.com/katalvlaran/relaxlab/replay"
)

const replayHelp = "[n]ext  [p]rev  [r]estart  [q]uit"

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Step through the algorithm interactively",
	Long: `Step through the algorithm one edge examination at a time.

On a terminal single keys move the cursor: n/space/→ next, p/← previous,
r restart, q quit. Otherwise commands are read one per line from stdin.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, source, err := loadInput()
		if err != nil {
			return err
		}
		steps, err := bellmanford.TraceGraph(g, source, bellmanford.WithLogger(log))
		if err != nil {
			return err
		}
		nav, err := replay.New(steps)
		if err != nil {
			return err
		}

		s := &replaySession{nav: nav, ids: nodeOrder(g), source: source}
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return s.loop(bufio.NewReader(os.Stdin), os.Stdout, false)
		}

		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("enter raw mode: %w", err)
		}
		defer func() { _ = term.Restore(fd, state) }()

		return s.loop(bufio.NewReader(os.Stdin), crlfWriter{os.Stdout}, true)
	},
}

type replaySession struct {
	nav    *replay.Navigator
	ids    []string
	source string
}

// replayCommand is one navigation request.
type replayCommand int

const (
	cmdNone replayCommand = iota
	cmdNext
	cmdPrev
	cmdRestart
	cmdQuit
)

// loop renders the current frame and applies commands until quit or EOF.
// raw selects single-key input; otherwise commands are whole lines.
func (s *replaySession) loop(in *bufio.Reader, out io.Writer, raw bool) error {
	for {
		if raw {
			fmt.Fprint(out, "\x1b[H\x1b[2J")
		}
		if err := s.render(out); err != nil {
			return err
		}

		c, err := readCommand(in, raw)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch c {
		case cmdNext:
			s.nav.Next()
		case cmdPrev:
			s.nav.Prev()
		case cmdRestart:
			s.nav.Restart()
		case cmdQuit:
			return nil
		}
	}
}

// render writes the current frame followed by the history so far.
func (s *replaySession) render(w io.Writer) error {
	if err := writeStep(w, s.ids, s.source, s.nav.Current(), s.nav.Position(), s.nav.Len()); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := writeHistory(w, s.ids, s.nav.History()); err != nil {
		return err
	}
	fmt.Fprintln(w)

	status := replayHelp
	switch {
	case s.nav.AtEnd():
		status += "  (end of trace)"
	case s.nav.AtStart():
		status += "  (start of trace)"
	}
	fmt.Fprintln(w, status)

	return nil
}

// readCommand reads one key (raw) or one line and maps it to a command.
func readCommand(in *bufio.Reader, raw bool) (replayCommand, error) {
	if !raw {
		line, err := in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return cmdNone, err
		}
		return parseCommand(strings.TrimSpace(line)), nil
	}

	b, err := in.ReadByte()
	if err != nil {
		return cmdNone, err
	}
	switch b {
	case 3, 4: // Ctrl-C, Ctrl-D
		return cmdQuit, nil
	case 0x1b:
		// Arrow keys arrive as ESC [ C / ESC [ D.
		if in.Buffered() < 2 {
			return cmdNone, nil
		}
		seq := make([]byte, 2)
		if _, err := io.ReadFull(in, seq); err != nil {
			return cmdNone, err
		}
		switch seq[1] {
		case 'C':
			return cmdNext, nil
		case 'D':
			return cmdPrev, nil
		}
		return cmdNone, nil
	case ' ', '\r':
		return cmdNext, nil
	}

	return parseCommand(string(b)), nil
}

// parseCommand maps a typed command to a replayCommand. An empty line
// advances.
func parseCommand(s string) replayCommand {
	switch strings.ToLower(s) {
	case "", "n", "next":
		return cmdNext
	case "p", "prev", "previous":
		return cmdPrev
	case "r", "restart":
		return cmdRestart
	case "q", "quit", "exit":
		return cmdQuit
	default:
		return cmdNone
	}
}

// crlfWriter translates "\n" to "\r\n" for a terminal in raw mode.
type crlfWriter struct{ w io.Writer }

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}

	return len(p), nil
}
