// Package bellmanford defines the types, options and sentinel errors of the
// Bellman-Ford single-source shortest-path engine.
//
// The engine examines edges in an explicit, caller-supplied order. It runs
// |V|−1 passes over that order and one extra verification scan; any edge
// still relaxable in the verification scan witnesses a negative cycle.
//
// Two entry points share one pass/relax primitive:
//
//	– Trace: records one Step per edge examination in every pass, plus an
//	  initialization step and a terminal check step. Always runs all |V|−1
//	  passes so the replay shows the complete algorithm.
//	– Run:   stops as soon as a pass relaxes nothing and returns only the
//	  final tables, the negative-cycle flag and one witnessed cycle.
//
// Complexity:
//
//	– Time:  O(V·E) for both variants.
//	– Space: O(V) for Run; O(V·(V·E)) for Trace, since every step owns a
//	  value snapshot of both tables.
//
// Representation:
//
//	– Distances[v] == Infinity (math.MaxInt64) means v is unreachable.
//	– Predecessors[v] == "" means v has no predecessor.
//	– d[u] + w saturates: a sum at or above Infinity never relaxes an edge,
//	  and a sum below −Infinity is clamped to −Infinity, so Infinity stays
//	  reserved for unreachable nodes.
//
// Errors (sentinel):
//
//	– ErrNilGraph              if TraceGraph/RunGraph receive a nil graph.
//	– ErrEmptyGraph            if no nodes are supplied.
//	– ErrInvalidSource         if the source is not among the nodes.
//	– ErrUnreachable           if Path finds no predecessor chain to the target.
//	– ErrCyclicPredecessor     if Path revisits a node before reaching the source.
//	– ErrCycleExtractionFailed if NegativeCycle cannot close a cycle.
//
// The last three are expected whenever a negative cycle exists; callers
// substitute a descriptive fallback rather than treating them as fatal.
package bellmanford

import (
	"errors"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Infinity is the distance of a node not (yet) reachable from the source.
const Infinity int64 = math.MaxInt64

// addWeight returns d + w clamped to [−Infinity, Infinity]. A result of
// Infinity never satisfies the relaxation inequality.
func addWeight(d, w int64) int64 {
	switch {
	case w > 0 && d > Infinity-w:
		return Infinity
	case w < 0 && d < -Infinity-w:
		return -Infinity
	}

	return d + w
}

// Sentinel errors returned by the engine and the reconstructor.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to TraceGraph or RunGraph.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrEmptyGraph indicates that the node set is empty.
	ErrEmptyGraph = errors.New("bellmanford: graph has no nodes")

	// ErrInvalidSource indicates that the source node is not in the node set.
	ErrInvalidSource = errors.New("bellmanford: source node not found")

	// ErrUnreachable indicates that the target has no predecessor chain back to the source.
	ErrUnreachable = errors.New("bellmanford: target unreachable from source")

	// ErrCyclicPredecessor indicates that the predecessor walk entered a cycle.
	ErrCyclicPredecessor = errors.New("bellmanford: predecessor chain is cyclic")

	// ErrCycleExtractionFailed indicates that no cycle could be closed from the witness.
	ErrCycleExtractionFailed = errors.New("bellmanford: negative cycle extraction failed")
)

// Distances maps node ID to tentative distance from the source.
type Distances map[string]int64

// Clone returns an independent copy of d.
func (d Distances) Clone() Distances {
	out := make(Distances, len(d))
	for k, v := range d {
		out[k] = v
	}

	return out
}

// Predecessors maps node ID to the tail of the edge that last improved it.
type Predecessors map[string]string

// Clone returns an independent copy of p.
func (p Predecessors) Clone() Predecessors {
	out := make(Predecessors, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}

// StepKind classifies one recorded step of a trace.
type StepKind int

const (
	// StepInit is the initialization step (pass 0).
	StepInit StepKind = iota
	// StepRelaxed records an edge that improved its head's distance.
	StepRelaxed
	// StepUnreachable records an edge skipped because d[from] = ∞.
	StepUnreachable
	// StepNoChange records an edge whose relaxation inequality did not hold.
	StepNoChange
	// StepUnknownEndpoint records an edge touching a node outside the graph.
	StepUnknownEndpoint
	// StepCheck is the terminal negative-cycle verification step.
	StepCheck
)

// String returns a short, stable name for the kind.
func (k StepKind) String() string {
	switch k {
	case StepInit:
		return "init"
	case StepRelaxed:
		return "relaxed"
	case StepUnreachable:
		return "unreachable"
	case StepNoChange:
		return "no-change"
	case StepUnknownEndpoint:
		return "unknown-endpoint"
	case StepCheck:
		return "check"
	default:
		return "unknown"
	}
}

// Step is an immutable record of one trace event. Distances and
// Predecessors are snapshots taken after the step and are never shared
// with another step.
type Step struct {
	Pass int
	Kind StepKind

	// Edge examined; empty for StepInit and StepCheck.
	EdgeID string
	From   string
	To     string
	Weight int64

	// Description is the one-line narrative; Details explains the arithmetic.
	Description string
	Details     string
	// Action is the short history-table verdict ("Updated d[b] = 5", "No change", ...).
	Action string

	Distances    Distances
	Predecessors Predecessors

	// RelaxedEdge equals EdgeID on StepRelaxed, "" otherwise.
	RelaxedEdge string

	// Set on StepCheck only.
	NegativeCycle     bool
	NegativeCycleEdge string
}

// Clone returns a deep copy of s.
func (s Step) Clone() Step {
	s.Distances = s.Distances.Clone()
	s.Predecessors = s.Predecessors.Clone()

	return s
}

// TableEntry is one row of the step history table.
type TableEntry struct {
	Pass      int
	Edge      string
	Action    string
	Distances string
}

// Entry renders s as a history-table row, listing distances in nodeIDs order.
func (s Step) Entry(nodeIDs []string) TableEntry {
	edge := "(" + s.From + ", " + s.To + ")"
	switch s.Kind {
	case StepInit:
		edge = "Init"
	case StepCheck:
		edge = "Check"
	}

	return TableEntry{
		Pass:      s.Pass,
		Edge:      edge,
		Action:    s.Action,
		Distances: FormatDistances(s.Distances, nodeIDs),
	}
}

// FormatDistance renders a single distance, using "∞" for Infinity.
func FormatDistance(d int64) string {
	if d == Infinity {
		return "∞"
	}

	return strconv.FormatInt(d, 10)
}

// FormatDistances renders d as "d[a] = 0, d[b] = ∞". If nodeIDs is nil the
// keys of d are listed in sorted order.
func FormatDistances(d Distances, nodeIDs []string) string {
	if nodeIDs == nil {
		nodeIDs = make([]string, 0, len(d))
		for id := range d {
			nodeIDs = append(nodeIDs, id)
		}
		sort.Strings(nodeIDs)
	}

	var b strings.Builder
	for i, id := range nodeIDs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("d[")
		b.WriteString(id)
		b.WriteString("] = ")
		b.WriteString(FormatDistance(d[id]))
	}

	return b.String()
}

// Result is the outcome of Run.
type Result struct {
	Source       string
	Distances    Distances
	Predecessors Predecessors

	// Passes is the number of relaxation passes actually executed.
	Passes int

	NegativeCycle bool
	// WitnessEdge is the first edge still relaxable after the passes.
	WitnessEdge string
	// Cycle is one negative cycle in forward order, Cycle[0] implicitly
	// closing it. Nil when no cycle exists or extraction failed.
	Cycle []string
}

// Options configures the engine.
type Options struct {
	// Logger receives debug entries for passes, relaxations and detection.
	Logger logrus.FieldLogger
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithLogger routes engine debug logging to l. A nil l is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options whose logger discards everything.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l}
}
