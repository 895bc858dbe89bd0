// Package bellmanford implements the Bellman-Ford single-source shortest-path
// algorithm over an explicit edge-processing order.
//
// Notes on implementation choices:
//
//   - Trace and Run share one runner; they differ only in whether every
//     examination is recorded and whether a no-op pass ends the loop early.
//   - Edge IDs in the order that resolve to no edge are skipped silently.
//   - An edge touching a node outside the node set is never relaxed.
//   - The caller's slices are only read; all tables are built fresh.
package bellmanford

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/relaxlab/graph"
)

// Trace runs Bellman-Ford from source and records every step: an
// initialization step, one step per edge examination in each of the |V|−1
// passes (relaxing or not), and one terminal negative-cycle check step.
//
// Each step owns value snapshots of both tables, so any step can be
// rendered later without re-running the algorithm. Identical inputs yield
// identical traces.
//
// Errors: ErrEmptyGraph, ErrInvalidSource.
//
// Complexity: Time O(V·E), Space O(V²·E) for the snapshots.
func Trace(nodes []graph.Node, edges []graph.Edge, order []string, source string, opts ...Option) ([]Step, error) {
	r, err := newRunner(nodes, edges, order, source, opts)
	if err != nil {
		return nil, err
	}
	r.record = true

	r.init()
	r.process()
	r.verify()

	return r.steps, nil
}

// Run runs Bellman-Ford from source to quiescence. A pass that relaxes no
// edge ends the pass loop early; the final tables are the same ones Trace
// ends with. After the passes one verification scan detects a negative
// cycle, and when one is found Result.Cycle holds one witnessed cycle.
//
// Errors: ErrEmptyGraph, ErrInvalidSource.
//
// Complexity: Time O(V·E), Space O(V).
func Run(nodes []graph.Node, edges []graph.Edge, order []string, source string, opts ...Option) (Result, error) {
	r, err := newRunner(nodes, edges, order, source, opts)
	if err != nil {
		return Result{}, err
	}
	r.earlyExit = true

	r.init()
	r.process()
	witness, found := r.verify()

	res := Result{
		Source:       source,
		Distances:    r.dist,
		Predecessors: r.prev,
		Passes:       r.passes,
	}
	if !found {
		return res, nil
	}

	res.NegativeCycle = true
	res.WitnessEdge = witness.ID
	cycle, err := NegativeCycle(r.prev, source, witness.To)
	if err != nil {
		r.log.WithFields(logrus.Fields{"edge": witness.ID, "error": err}).Warn("negative cycle detected but not extracted")
		return res, nil
	}
	res.Cycle = cycle

	return res, nil
}

// TraceGraph is Trace over a snapshot of g.
func TraceGraph(g *graph.Graph, source string, opts ...Option) ([]Step, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	nodes, edges, order := g.Snapshot()

	return Trace(nodes, edges, order, source, opts...)
}

// RunGraph is Run over a snapshot of g.
func RunGraph(g *graph.Graph, source string, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	nodes, edges, order := g.Snapshot()

	return Run(nodes, edges, order, source, opts...)
}

// runner holds the mutable state of a single engine invocation.
type runner struct {
	nodes  []string             // node IDs in caller order
	edges  map[string]graph.Edge // edge ID → edge; first occurrence wins
	order  []string             // edge-processing order, read only
	source string
	log    logrus.FieldLogger

	record    bool // emit a Step for every examination
	earlyExit bool // stop after a pass that relaxed nothing

	dist   Distances
	prev   Predecessors
	passes int
	steps  []Step
}

// newRunner validates the inputs and indexes the edges.
func newRunner(nodes []graph.Node, edges []graph.Edge, order []string, source string, opts []Option) (*runner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	ids := make([]string, 0, len(nodes))
	seen := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		if _, dup := seen[n.ID]; dup {
			continue
		}
		seen[n.ID] = struct{}{}
		ids = append(ids, n.ID)
	}
	if _, ok := seen[source]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSource, source)
	}

	index := make(map[string]graph.Edge, len(edges))
	for _, e := range edges {
		if _, dup := index[e.ID]; !dup {
			index[e.ID] = e
		}
	}

	return &runner{
		nodes:  ids,
		edges:  index,
		order:  order,
		source: source,
		log:    cfg.Logger,
	}, nil
}

// init sets d[source] = 0, every other distance to Infinity and every
// predecessor to none.
func (r *runner) init() {
	r.dist = make(Distances, len(r.nodes))
	r.prev = make(Predecessors, len(r.nodes))
	for _, id := range r.nodes {
		r.dist[id] = Infinity
		r.prev[id] = ""
	}
	r.dist[r.source] = 0

	r.log.WithFields(logrus.Fields{
		"source": r.source,
		"nodes":  len(r.nodes),
		"passes": len(r.nodes) - 1,
	}).Debug("bellman-ford initialized")

	if r.record {
		r.emit(initStep(r.source))
	}
}

// process runs passes 1..|V|−1, stopping early on a no-op pass when earlyExit is set.
func (r *runner) process() {
	last := len(r.nodes) - 1
	for p := 1; p <= last; p++ {
		relaxed := r.pass(p)
		r.passes = p

		r.log.WithFields(logrus.Fields{"pass": p, "relaxed": relaxed}).Debug("pass complete")
		if r.earlyExit && relaxed == 0 {
			r.log.WithField("pass", p).Debug("no edge relaxed, stopping early")
			break
		}
	}
}

// pass examines every edge of the order once and returns how many were relaxed.
func (r *runner) pass(p int) int {
	relaxed := 0
	for _, id := range r.order {
		e, ok := r.edges[id]
		if !ok {
			r.log.WithFields(logrus.Fields{"pass": p, "edge": id}).Debug("edge in order not found, skipped")
			continue
		}
		if r.examine(p, e) {
			relaxed++
		}
	}

	return relaxed
}

// examine evaluates the relaxation predicate for e, applies it, and records
// the step when tracing. It reports whether e was relaxed.
func (r *runner) examine(p int, e graph.Edge) bool {
	du, dv := r.dist[e.From], r.dist[e.To] // pre-update values for the narrative
	kind, candidate := r.evaluate(e)
	if kind == StepRelaxed {
		r.dist[e.To] = candidate
		r.prev[e.To] = e.From
		r.log.WithFields(logrus.Fields{
			"pass": p,
			"edge": e.ID,
			"to":   e.To,
			"dist": candidate,
		}).Debug("edge relaxed")
	}

	if r.record {
		r.emit(edgeStep(p, kind, e, du, dv, candidate))
	}

	return kind == StepRelaxed
}

// evaluate classifies e against the current tables without mutating them.
// For StepRelaxed the second result is the improved distance of e.To.
func (r *runner) evaluate(e graph.Edge) (StepKind, int64) {
	du, okFrom := r.dist[e.From]
	dv, okTo := r.dist[e.To]
	if !okFrom || !okTo {
		return StepUnknownEndpoint, 0
	}
	if du == Infinity {
		return StepUnreachable, 0
	}
	candidate := addWeight(du, e.Weight)
	if candidate < dv {
		return StepRelaxed, candidate
	}

	return StepNoChange, 0
}

// verify scans the order once more under the same predicate. The first edge
// still relaxable witnesses a negative cycle; the tables are not modified.
func (r *runner) verify() (graph.Edge, bool) {
	var witness graph.Edge
	found := false
	for _, id := range r.order {
		e, ok := r.edges[id]
		if !ok {
			continue
		}
		if kind, _ := r.evaluate(e); kind == StepRelaxed {
			witness, found = e, true
			break
		}
	}

	if found {
		r.log.WithFields(logrus.Fields{"edge": witness.ID, "from": witness.From, "to": witness.To}).Debug("negative cycle detected")
	} else {
		r.log.Debug("no negative cycle detected")
	}

	if r.record {
		r.emit(checkStep(len(r.nodes), r.source, witness, found))
	}

	return witness, found
}

// emit appends s with fresh snapshots of the live tables.
func (r *runner) emit(s Step) {
	s.Distances = r.dist.Clone()
	s.Predecessors = r.prev.Clone()
	r.steps = append(r.steps, s)
}
