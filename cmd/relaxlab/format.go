package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/relaxlab/bellmanford"
	"github.com/katalvlaran/relaxlab/graph"
)

// nodeOrder lists node IDs in insertion order, the order tables use.
func nodeOrder(g *graph.Graph) []string {
	nodes := g.Nodes()
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}

	return ids
}

// stepView is the JSON form of a step. Distances are rendered as strings so
// that Infinity prints as "∞" instead of MaxInt64.
type stepView struct {
	Pass          int               `json:"pass"`
	Kind          string            `json:"kind"`
	Edge          string            `json:"edge,omitempty"`
	Description   string            `json:"description"`
	Details       string            `json:"details"`
	Action        string            `json:"action"`
	Distances     map[string]string `json:"distances"`
	Predecessors  map[string]string `json:"predecessors"`
	RelaxedEdge   string            `json:"relaxed_edge,omitempty"`
	NegativeCycle bool              `json:"negative_cycle,omitempty"`
	CycleEdge     string            `json:"negative_cycle_edge,omitempty"`
}

func newStepView(s bellmanford.Step, ids []string) stepView {
	return stepView{
		Pass:          s.Pass,
		Kind:          s.Kind.String(),
		Edge:          s.EdgeID,
		Description:   s.Description,
		Details:       s.Details,
		Action:        s.Action,
		Distances:     distanceStrings(s.Distances, ids),
		Predecessors:  s.Predecessors,
		RelaxedEdge:   s.RelaxedEdge,
		NegativeCycle: s.NegativeCycle,
		CycleEdge:     s.NegativeCycleEdge,
	}
}

// resultView is the JSON form of a run.
type resultView struct {
	Source        string            `json:"source"`
	Passes        int               `json:"passes"`
	Distances     map[string]string `json:"distances"`
	Paths         map[string]string `json:"paths"`
	NegativeCycle bool              `json:"negative_cycle"`
	WitnessEdge   string            `json:"witness_edge,omitempty"`
	Cycle         []string          `json:"cycle,omitempty"`
}

func newResultView(res bellmanford.Result, ids []string) resultView {
	paths := make(map[string]string, len(ids))
	for _, id := range ids {
		paths[id] = pathLabel(res.Distances, res.Predecessors, res.Cycle, res.Source, id)
	}

	return resultView{
		Source:        res.Source,
		Passes:        res.Passes,
		Distances:     distanceStrings(res.Distances, ids),
		Paths:         paths,
		NegativeCycle: res.NegativeCycle,
		WitnessEdge:   res.WitnessEdge,
		Cycle:         res.Cycle,
	}
}

func distanceStrings(d bellmanford.Distances, ids []string) map[string]string {
	out := make(map[string]string, len(ids))
	for _, id := range ids {
		out[id] = bellmanford.FormatDistance(d[id])
	}

	return out
}

// pathLabel is the "Path" column of the distance table.
func pathLabel(dist bellmanford.Distances, prev bellmanford.Predecessors, cycle []string, source, id string) string {
	switch {
	case id == source:
		return source
	case dist[id] == bellmanford.Infinity:
		return "No path"
	case contains(cycle, id):
		return "In negative cycle"
	}

	path, err := bellmanford.Path(prev, source, id)
	switch {
	case errors.Is(err, bellmanford.ErrCyclicPredecessor):
		return "Part of a cycle"
	case err != nil:
		return "No path"
	}

	return strings.Join(path, " → ")
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// writeDistances renders one row per node: ID, distance, path.
func writeDistances(w io.Writer, ids []string, dist bellmanford.Distances, prev bellmanford.Predecessors, cycle []string, source string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NODE\tDISTANCE\tPATH")
	for _, id := range ids {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", id, bellmanford.FormatDistance(dist[id]), pathLabel(dist, prev, cycle, source, id))
	}
	return tw.Flush()
}

// writeHistory renders the step history table.
func writeHistory(w io.Writer, ids []string, steps []bellmanford.Step) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PASS\tEDGE\tACTION\tDISTANCES")
	for _, s := range steps {
		e := s.Entry(ids)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.Pass, e.Edge, e.Action, e.Distances)
	}
	return tw.Flush()
}

// writeResultSummary renders the closing sentence of a run.
func writeResultSummary(w io.Writer, res bellmanford.Result) {
	if !res.NegativeCycle {
		fmt.Fprintf(w, "The Bellman-Ford algorithm has successfully computed all shortest paths from the source vertex '%s'.\n", res.Source)
		return
	}
	if len(res.Cycle) == 0 {
		fmt.Fprintf(w, "Negative cycle detected (witness edge %s)! Shortest paths are undefined for some vertices.\n", res.WitnessEdge)
		return
	}
	closed := append(append([]string(nil), res.Cycle...), res.Cycle[0])
	fmt.Fprintf(w, "Negative cycle detected! The graph contains a negative weight cycle involving nodes: %s\n", strings.Join(closed, " → "))
}

// counters returns the pass and edge counter labels shown above a step.
func counters(s bellmanford.Step) (string, string) {
	switch s.Kind {
	case bellmanford.StepInit:
		return "Init", "Init"
	case bellmanford.StepCheck:
		return fmt.Sprint(s.Pass), "Check"
	default:
		return fmt.Sprint(s.Pass), "(" + s.From + ", " + s.To + ")"
	}
}

// writeStep renders one replay frame.
func writeStep(w io.Writer, ids []string, source string, s bellmanford.Step, index, total int) error {
	pass, edge := counters(s)
	fmt.Fprintf(w, "Step %d/%d  Pass: %s  Edge: %s\n", index+1, total, pass, edge)
	fmt.Fprintln(w, s.Description)
	fmt.Fprintln(w)
	if err := writeDistances(w, ids, s.Distances, s.Predecessors, nil, source); err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Details)
	return nil
}

// writeJSON pretty-prints v.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
