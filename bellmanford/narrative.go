package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/relaxlab/graph"
)

// Action strings of the history table.
const (
	actionInit          = "Initialize distances"
	actionNoChange      = "No change"
	actionCycleFound    = "Negative cycle detected!"
	actionCycleNotFound = "No negative cycles found"
)

// initStep describes pass 0. Tables are attached by runner.emit.
func initStep(source string) Step {
	return Step{
		Pass:        0,
		Kind:        StepInit,
		Description: fmt.Sprintf("Initialize distances: d[%s] = 0, all other distances = ∞", source),
		Details:     fmt.Sprintf("Initialization: Set distance to source node '%s' as 0, all others as infinity.", source),
		Action:      actionInit,
	}
}

// edgeStep describes one examination of e in pass p. du and dv are the
// distances of e's endpoints before the examination; candidate is the new
// distance of e.To when kind is StepRelaxed.
func edgeStep(p int, kind StepKind, e graph.Edge, du, dv, candidate int64) Step {
	u, v, w := e.From, e.To, e.Weight

	s := Step{
		Pass:   p,
		Kind:   kind,
		EdgeID: e.ID,
		From:   u,
		To:     v,
		Weight: w,
		Action: actionNoChange,
	}

	switch kind {
	case StepRelaxed:
		s.Details = fmt.Sprintf("Relax edge (%s, %s): d[%s] = d[%s] + w(%s,%s) = %d + %d = %d",
			u, v, v, u, u, v, du, w, candidate)
		s.Action = fmt.Sprintf("Updated d[%s] = %d", v, candidate)
		s.RelaxedEdge = e.ID
	case StepUnreachable:
		s.Details = fmt.Sprintf("Cannot relax edge (%s, %s) because d[%s] = ∞", u, v, u)
	case StepUnknownEndpoint:
		s.Details = fmt.Sprintf("Cannot relax edge (%s, %s) because an endpoint is not in the graph", u, v)
	default:
		s.Details = fmt.Sprintf("No need to relax edge (%s, %s): d[%s] = %s, d[%s] + w(%s,%s) = %d + %d = %s",
			u, v, v, FormatDistance(dv), u, u, v, du, w, FormatDistance(addWeight(du, w)))
	}
	s.Description = fmt.Sprintf("Pass %d, Edge (%s, %s): %s", p, u, v, s.Details)

	return s
}

// checkStep describes the terminal verification scan, numbered as pass |V|.
func checkStep(pass int, source string, witness graph.Edge, found bool) Step {
	s := Step{
		Pass:          pass,
		Kind:          StepCheck,
		NegativeCycle: found,
	}
	if found {
		s.NegativeCycleEdge = witness.ID
		s.Description = "Negative cycle detected! The graph contains a negative weight cycle."
		s.Details = "A negative cycle was detected during the verification pass. " +
			"This means there is no shortest path for at least some vertices."
		s.Action = actionCycleFound

		return s
	}

	s.Description = "No negative cycles detected. The algorithm has found all shortest paths from the source."
	s.Details = fmt.Sprintf("The algorithm has successfully computed all shortest paths from the source vertex '%s'.", source)
	s.Action = actionCycleNotFound

	return s
}
