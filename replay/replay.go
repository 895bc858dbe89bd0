// Package replay provides step-by-step navigation over an already computed
// Bellman-Ford trace. Navigation is pure index movement: the engine is never
// re-invoked.
//
// A Navigator is not safe for concurrent use; give each viewer its own.
package replay

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/relaxlab/bellmanford"
)

var (
	// ErrNoSteps indicates that the trace to navigate is empty.
	ErrNoSteps = errors.New("replay: trace has no steps")

	// ErrOutOfRange indicates a Seek outside [0, Len()).
	ErrOutOfRange = errors.New("replay: step index out of range")
)

// Navigator moves a cursor over a trace.
type Navigator struct {
	steps []bellmanford.Step
	pos   int
}

// New returns a Navigator positioned on the first step of steps.
func New(steps []bellmanford.Step) (*Navigator, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}

	return &Navigator{steps: steps}, nil
}

// Current returns the step under the cursor.
func (n *Navigator) Current() bellmanford.Step { return n.steps[n.pos] }

// Position returns the cursor index.
func (n *Navigator) Position() int { return n.pos }

// Len returns the number of steps.
func (n *Navigator) Len() int { return len(n.steps) }

// AtStart reports whether the cursor is on the first step.
func (n *Navigator) AtStart() bool { return n.pos == 0 }

// AtEnd reports whether the cursor is on the last step.
func (n *Navigator) AtEnd() bool { return n.pos == len(n.steps)-1 }

// Next advances the cursor; it reports false (and stays put) at the end.
func (n *Navigator) Next() bool {
	if n.AtEnd() {
		return false
	}
	n.pos++

	return true
}

// Prev moves the cursor back; it reports false (and stays put) at the start.
func (n *Navigator) Prev() bool {
	if n.AtStart() {
		return false
	}
	n.pos--

	return true
}

// Restart moves the cursor to the first step.
func (n *Navigator) Restart() { n.pos = 0 }

// Seek moves the cursor to step i.
func (n *Navigator) Seek(i int) error {
	if i < 0 || i >= len(n.steps) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, len(n.steps))
	}
	n.pos = i

	return nil
}

// History returns steps 0..Position(), the rows accumulated in the history
// table up to the cursor.
func (n *Navigator) History() []bellmanford.Step {
	return n.steps[:n.pos+1 : n.pos+1]
}
