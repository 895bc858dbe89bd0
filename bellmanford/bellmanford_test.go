package bellmanford_test

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relaxlab/bellmanford"
	"github.com/katalvlaran/relaxlab/graph"
)

// fixture bundles the engine inputs.
type fixture struct {
	nodes  []graph.Node
	edges  []graph.Edge
	order  []string
	source string
}

// nodesOf builds nodes whose labels equal their IDs.
func nodesOf(ids ...string) []graph.Node {
	out := make([]graph.Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, graph.Node{ID: id, Label: id})
	}

	return out
}

// edge builds a directed edge with the default "from-to" ID.
func edge(from, to string, w int64) graph.Edge {
	return graph.Edge{ID: graph.EdgeID(from, to), From: from, To: to, Weight: w, Arrows: graph.DefaultArrows}
}

// idsOf returns the edge IDs in slice order.
func idsOf(edges []graph.Edge) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.ID)
	}

	return out
}

// demoFixture is the five-node teaching graph. d→b→e→d weighs 2−4+1 = −1,
// so it contains a negative cycle.
func demoFixture() fixture {
	edges := []graph.Edge{
		edge("a", "b", 5),
		edge("a", "c", -3),
		edge("d", "b", 2),
		edge("c", "d", 3),
		edge("b", "e", -4),
		edge("e", "d", 1),
	}

	return fixture{nodes: nodesOf("a", "b", "c", "d", "e"), edges: edges, order: idsOf(edges), source: "a"}
}

// acyclicDemoFixture is the teaching graph with e→d raised to 3, which
// breaks the negative cycle (2−4+3 = 1).
func acyclicDemoFixture() fixture {
	f := demoFixture()
	f.edges[5].Weight = 3

	return f
}

// negativeCycleFixture: y→z→y weighs −2 and is reachable from x.
func negativeCycleFixture() fixture {
	edges := []graph.Edge{edge("x", "y", 1), edge("y", "z", -3), edge("z", "y", 1)}

	return fixture{nodes: nodesOf("x", "y", "z"), edges: edges, order: idsOf(edges), source: "x"}
}

func (f fixture) trace(t *testing.T) []bellmanford.Step {
	t.Helper()
	steps, err := bellmanford.Trace(f.nodes, f.edges, f.order, f.source)
	require.NoError(t, err)
	require.NotEmpty(t, steps)

	return steps
}

func (f fixture) run(t *testing.T) bellmanford.Result {
	t.Helper()
	res, err := bellmanford.Run(f.nodes, f.edges, f.order, f.source)
	require.NoError(t, err)

	return res
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestValidation_EmptyGraph(t *testing.T) {
	_, err := bellmanford.Trace(nil, nil, nil, "a")
	assert.ErrorIs(t, err, bellmanford.ErrEmptyGraph)

	_, err = bellmanford.Run(nil, nil, nil, "a")
	assert.ErrorIs(t, err, bellmanford.ErrEmptyGraph)
}

func TestValidation_InvalidSource(t *testing.T) {
	f := demoFixture()

	_, err := bellmanford.Trace(f.nodes, f.edges, f.order, "zz")
	assert.ErrorIs(t, err, bellmanford.ErrInvalidSource)

	_, err = bellmanford.Run(f.nodes, f.edges, f.order, "")
	assert.ErrorIs(t, err, bellmanford.ErrInvalidSource)
}

func TestValidation_NilGraph(t *testing.T) {
	_, err := bellmanford.TraceGraph(nil, "a")
	assert.ErrorIs(t, err, bellmanford.ErrNilGraph)

	_, err = bellmanford.RunGraph(nil, "a")
	assert.ErrorIs(t, err, bellmanford.ErrNilGraph)
}

// ------------------------------------------------------------------------
// 2. Trace structure
// ------------------------------------------------------------------------

func TestTrace_DemoGraphStructure(t *testing.T) {
	f := demoFixture()
	steps := f.trace(t)

	// init + (|V|−1) passes × |order| + check
	require.Len(t, steps, 1+4*6+1)

	first := steps[0]
	assert.Equal(t, bellmanford.StepInit, first.Kind)
	assert.Equal(t, 0, first.Pass)
	assert.Equal(t, "Initialize distances: d[a] = 0, all other distances = ∞", first.Description)
	assert.Equal(t, bellmanford.Distances{
		"a": 0, "b": bellmanford.Infinity, "c": bellmanford.Infinity,
		"d": bellmanford.Infinity, "e": bellmanford.Infinity,
	}, first.Distances)
	for _, p := range first.Predecessors {
		assert.Empty(t, p)
	}

	// every pass visits the order in sequence
	for i, s := range steps[1 : len(steps)-1] {
		assert.Equal(t, 1+i/6, s.Pass, "step %d", i+1)
		assert.Equal(t, f.order[i%6], s.EdgeID, "step %d", i+1)
	}

	last := steps[len(steps)-1]
	assert.Equal(t, bellmanford.StepCheck, last.Kind)
	assert.Equal(t, 5, last.Pass)
	assert.True(t, last.NegativeCycle)
	assert.Equal(t, "d-b", last.NegativeCycleEdge)
	assert.Equal(t, "Negative cycle detected!", last.Action)
}

func TestTrace_DemoGraphFirstPassNarrative(t *testing.T) {
	steps := demoFixture().trace(t)

	relaxed := steps[1]
	assert.Equal(t, bellmanford.StepRelaxed, relaxed.Kind)
	assert.Equal(t, "a-b", relaxed.RelaxedEdge)
	assert.Equal(t, "Relax edge (a, b): d[b] = d[a] + w(a,b) = 0 + 5 = 5", relaxed.Details)
	assert.Equal(t, "Pass 1, Edge (a, b): Relax edge (a, b): d[b] = d[a] + w(a,b) = 0 + 5 = 5", relaxed.Description)
	assert.Equal(t, "Updated d[b] = 5", relaxed.Action)
	assert.Equal(t, "a", relaxed.Predecessors["b"])

	unreachable := steps[3]
	assert.Equal(t, bellmanford.StepUnreachable, unreachable.Kind)
	assert.Equal(t, "Cannot relax edge (d, b) because d[d] = ∞", unreachable.Details)
	assert.Empty(t, unreachable.RelaxedEdge)
	assert.Equal(t, "No change", unreachable.Action)

	noChange := steps[6]
	assert.Equal(t, bellmanford.StepNoChange, noChange.Kind)
	assert.Equal(t, "No need to relax edge (e, d): d[d] = 0, d[e] + w(e,d) = 1 + 1 = 2", noChange.Details)

	entry := noChange.Entry([]string{"a", "b", "c", "d", "e"})
	assert.Equal(t, bellmanford.TableEntry{
		Pass:      1,
		Edge:      "(e, d)",
		Action:    "No change",
		Distances: "d[a] = 0, d[b] = 5, d[c] = -3, d[d] = 0, d[e] = 1",
	}, entry)
}

func TestTrace_DemoGraphFinalTables(t *testing.T) {
	steps := demoFixture().trace(t)
	last := steps[len(steps)-1]

	assert.Equal(t, bellmanford.Distances{"a": 0, "b": 0, "c": -3, "d": -3, "e": -4}, last.Distances)
	assert.Equal(t, bellmanford.Predecessors{"a": "", "b": "d", "c": "a", "d": "e", "e": "b"}, last.Predecessors)
}

func TestTrace_AcyclicDemoConverges(t *testing.T) {
	f := acyclicDemoFixture()
	steps := f.trace(t)
	last := steps[len(steps)-1]

	assert.False(t, last.NegativeCycle)
	assert.Empty(t, last.NegativeCycleEdge)
	assert.Equal(t, "No negative cycles found", last.Action)
	assert.Equal(t, "The algorithm has successfully computed all shortest paths from the source vertex 'a'.", last.Details)
	assert.Equal(t, bellmanford.Distances{"a": 0, "b": 2, "c": -3, "d": 0, "e": -2}, last.Distances)

	// The trace keeps all |V|−1 passes even though pass 3 changes nothing.
	assert.Equal(t, 4, steps[len(steps)-2].Pass)
	for _, s := range steps[13:25] {
		assert.NotEqual(t, bellmanford.StepRelaxed, s.Kind, "pass %d edge %s", s.Pass, s.EdgeID)
	}
}

func TestTrace_SnapshotsAreIndependent(t *testing.T) {
	steps := demoFixture().trace(t)

	steps[0].Distances["b"] = -100
	steps[0].Predecessors["b"] = "zz"

	assert.Equal(t, int64(5), steps[1].Distances["b"])
	assert.Equal(t, "a", steps[1].Predecessors["b"])
	assert.Equal(t, bellmanford.Infinity, steps[2].Distances["d"])
}

func TestTrace_Deterministic(t *testing.T) {
	f := demoFixture()
	assert.Equal(t, f.trace(t), f.trace(t))

	g := negativeCycleFixture()
	assert.Equal(t, g.run(t), g.run(t))
}

func TestTrace_Monotonic(t *testing.T) {
	for name, f := range map[string]fixture{
		"demo":    demoFixture(),
		"acyclic": acyclicDemoFixture(),
		"cycle":   negativeCycleFixture(),
	} {
		steps := f.trace(t)
		for i := 1; i < len(steps); i++ {
			for id, d := range steps[i].Distances {
				prev := steps[i-1].Distances[id]
				assert.LessOrEqual(t, d, prev, "%s: step %d node %s", name, i, id)
				if steps[i].Kind != bellmanford.StepRelaxed {
					assert.Equal(t, prev, d, "%s: step %d node %s", name, i, id)
				}
			}
		}
	}
}

func TestTrace_StaleOrderIDsSkipped(t *testing.T) {
	f := acyclicDemoFixture()
	f.order = append([]string{"ghost"}, f.order...)
	f.order = append(f.order, "x-y")

	steps := f.trace(t)
	require.Len(t, steps, 1+4*6+1)
	for _, s := range steps {
		assert.NotEqual(t, "ghost", s.EdgeID)
	}
}

func TestTrace_UnknownEndpointFailsSoft(t *testing.T) {
	f := fixture{
		nodes:  nodesOf("a", "b"),
		edges:  []graph.Edge{edge("a", "ghost", 1), edge("ghost", "b", 1), edge("a", "b", 4)},
		source: "a",
	}
	f.order = idsOf(f.edges)

	steps := f.trace(t)
	require.Len(t, steps, 1+1*3+1)
	assert.Equal(t, bellmanford.StepUnknownEndpoint, steps[1].Kind)
	assert.Equal(t, bellmanford.StepUnknownEndpoint, steps[2].Kind)
	assert.Equal(t, bellmanford.StepRelaxed, steps[3].Kind)

	res := f.run(t)
	assert.Equal(t, bellmanford.Distances{"a": 0, "b": 4}, res.Distances)
	assert.NotContains(t, res.Distances, "ghost")
	assert.False(t, res.NegativeCycle)
}

// ------------------------------------------------------------------------
// 3. Run
// ------------------------------------------------------------------------

func TestRun_AcyclicDemo(t *testing.T) {
	res := acyclicDemoFixture().run(t)

	assert.Equal(t, "a", res.Source)
	assert.Equal(t, bellmanford.Distances{"a": 0, "b": 2, "c": -3, "d": 0, "e": -2}, res.Distances)
	assert.Equal(t, bellmanford.Predecessors{"a": "", "b": "d", "c": "a", "d": "c", "e": "b"}, res.Predecessors)
	assert.Equal(t, 3, res.Passes, "pass 3 relaxes nothing and ends the loop")
	assert.False(t, res.NegativeCycle)
	assert.Empty(t, res.WitnessEdge)
	assert.Nil(t, res.Cycle)
}

func TestRun_DemoGraphNegativeCycle(t *testing.T) {
	res := demoFixture().run(t)

	assert.True(t, res.NegativeCycle)
	assert.Equal(t, "d-b", res.WitnessEdge)
	assert.Equal(t, []string{"b", "e", "d"}, res.Cycle)
	assert.Equal(t, 4, res.Passes)
}

func TestRun_NegativeCycleScenario(t *testing.T) {
	res := negativeCycleFixture().run(t)

	assert.True(t, res.NegativeCycle)
	assert.Equal(t, "y-z", res.WitnessEdge)
	assert.ElementsMatch(t, []string{"y", "z"}, res.Cycle)
	assert.Equal(t, []string{"z", "y"}, res.Cycle)
}

func TestRun_ZeroWeightCycleIsNotNegative(t *testing.T) {
	edges := []graph.Edge{edge("x", "y", 1), edge("y", "z", 0), edge("z", "y", 0)}
	f := fixture{nodes: nodesOf("x", "y", "z"), edges: edges, order: idsOf(edges), source: "x"}

	res := f.run(t)
	assert.False(t, res.NegativeCycle)
	assert.Equal(t, bellmanford.Distances{"x": 0, "y": 1, "z": 1}, res.Distances)

	steps := f.trace(t)
	assert.False(t, steps[len(steps)-1].NegativeCycle)
}

func TestRun_UnreachableNode(t *testing.T) {
	edges := []graph.Edge{edge("a", "b", 1)}
	f := fixture{nodes: nodesOf("a", "b", "c"), edges: edges, order: idsOf(edges), source: "a"}

	res := f.run(t)
	assert.Equal(t, bellmanford.Infinity, res.Distances["c"])
	assert.Empty(t, res.Predecessors["c"])

	_, err := bellmanford.Path(res.Predecessors, "a", "c")
	assert.ErrorIs(t, err, bellmanford.ErrUnreachable)
}

func TestRun_SingleNode(t *testing.T) {
	f := fixture{nodes: nodesOf("solo"), source: "solo"}

	res := f.run(t)
	assert.Equal(t, 0, res.Passes)
	assert.False(t, res.NegativeCycle)
	assert.Equal(t, bellmanford.Distances{"solo": 0}, res.Distances)

	steps := f.trace(t)
	require.Len(t, steps, 2)
	assert.Equal(t, bellmanford.StepInit, steps[0].Kind)
	assert.Equal(t, bellmanford.StepCheck, steps[1].Kind)
	assert.Equal(t, 1, steps[1].Pass)
	assert.False(t, steps[1].NegativeCycle)
}

func TestRun_NegativeSelfLoopExtractionFallsBack(t *testing.T) {
	edges := []graph.Edge{edge("a", "a", -1)}
	f := fixture{nodes: nodesOf("a"), edges: edges, order: idsOf(edges), source: "a"}

	res := f.run(t)
	assert.True(t, res.NegativeCycle)
	assert.Equal(t, "a-a", res.WitnessEdge)
	assert.Nil(t, res.Cycle, "no pass ran, so no predecessor links exist to close the cycle")
}

func TestRun_NegativeCycleThroughSource(t *testing.T) {
	edges := []graph.Edge{edge("s", "a", 1), edge("a", "s", -3)}
	f := fixture{nodes: nodesOf("s", "a"), edges: edges, order: idsOf(edges), source: "s"}

	res := f.run(t)
	assert.True(t, res.NegativeCycle)
	assert.Equal(t, "s-a", res.WitnessEdge)
	assert.Equal(t, "a", res.Predecessors["s"], "the cycle gives the source a predecessor")
	assert.Equal(t, []string{"a", "s"}, res.Cycle)
}

func TestRun_HugePositiveWeightDoesNotWrap(t *testing.T) {
	edges := []graph.Edge{edge("a", "b", 1), edge("b", "c", math.MaxInt64)}
	f := fixture{nodes: nodesOf("a", "b", "c"), edges: edges, order: idsOf(edges), source: "a"}

	res := f.run(t)
	assert.False(t, res.NegativeCycle)
	assert.Equal(t, int64(1), res.Distances["b"])
	assert.Equal(t, bellmanford.Infinity, res.Distances["c"], "a sum past Infinity never relaxes")
	assert.Empty(t, res.Predecessors["c"])

	steps := f.trace(t)
	bc := steps[2]
	require.Equal(t, "b-c", bc.EdgeID)
	assert.Equal(t, bellmanford.StepNoChange, bc.Kind)
	assert.Contains(t, bc.Details, "= 1 + 9223372036854775807 = ∞")
}

func TestRun_HugeNegativeWeightClamps(t *testing.T) {
	edges := []graph.Edge{edge("a", "b", -1), edge("b", "c", math.MinInt64), edge("a", "d", math.MinInt64)}
	f := fixture{nodes: nodesOf("a", "b", "c", "d"), edges: edges, order: idsOf(edges), source: "a"}

	res := f.run(t)
	assert.False(t, res.NegativeCycle)
	assert.Equal(t, -bellmanford.Infinity, res.Distances["c"])
	assert.Equal(t, -bellmanford.Infinity, res.Distances["d"])
	assert.Equal(t, "b", res.Predecessors["c"])

	path, err := bellmanford.Path(res.Predecessors, "a", "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, path)

	steps := f.trace(t)
	assert.Equal(t, res.Distances, steps[len(steps)-1].Distances)
}

func TestRun_DoesNotMutateInputs(t *testing.T) {
	f := demoFixture()
	nodes := append([]graph.Node(nil), f.nodes...)
	edges := append([]graph.Edge(nil), f.edges...)
	order := append([]string(nil), f.order...)

	f.run(t)
	f.trace(t)

	assert.Equal(t, nodes, f.nodes)
	assert.Equal(t, edges, f.edges)
	assert.Equal(t, order, f.order)
}

func TestRunGraph_UsesBuilderSnapshot(t *testing.T) {
	g := graph.New()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddNode(id, ""))
	}
	_, err := g.AddEdge("a", "b", 4)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "c", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("c", "b", 1)
	require.NoError(t, err)

	res, err := bellmanford.RunGraph(g, "a")
	require.NoError(t, err)
	assert.Equal(t, bellmanford.Distances{"a": 0, "b": 2, "c": 1}, res.Distances)

	steps, err := bellmanford.TraceGraph(g, "a")
	require.NoError(t, err)
	assert.Equal(t, res.Distances, steps[len(steps)-1].Distances)
}

func TestRun_LoggerReceivesDebugEntries(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	f := negativeCycleFixture()
	_, err := bellmanford.Run(f.nodes, f.edges, f.order, f.source, bellmanford.WithLogger(log))
	require.NoError(t, err)
	assert.NotEmpty(t, hook.AllEntries())
}

// ------------------------------------------------------------------------
// 4. Properties on random graphs without negative cycles
// ------------------------------------------------------------------------

// randomDAG builds a graph whose edges only go from lower to higher index,
// so negative weights can never form a cycle.
func randomDAG(r *rand.Rand, n, m int) fixture {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("v%d", i)
	}
	seen := map[string]bool{}
	var edges []graph.Edge
	for len(edges) < m {
		i, j := r.Intn(n), r.Intn(n)
		if i == j {
			continue
		}
		if i > j {
			i, j = j, i
		}
		e := edge(ids[i], ids[j], int64(r.Intn(16)-5))
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		edges = append(edges, e)
	}
	order := idsOf(edges)
	r.Shuffle(len(order), func(a, b int) { order[a], order[b] = order[b], order[a] })

	return fixture{nodes: nodesOf(ids...), edges: edges, order: order, source: ids[0]}
}

// referenceDistances is a topological-order DP over the index-ordered DAG.
func referenceDistances(f fixture) bellmanford.Distances {
	d := bellmanford.Distances{}
	for _, n := range f.nodes {
		d[n.ID] = bellmanford.Infinity
	}
	d[f.source] = 0
	for _, n := range f.nodes {
		if d[n.ID] == bellmanford.Infinity {
			continue
		}
		for _, e := range f.edges {
			if e.From == n.ID && d[n.ID]+e.Weight < d[e.To] {
				d[e.To] = d[n.ID] + e.Weight
			}
		}
	}

	return d
}

func TestProperties_RandomDAGs(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for iter := 0; iter < 25; iter++ {
		f := randomDAG(r, 8, 18)

		res := f.run(t)
		steps := f.trace(t)
		last := steps[len(steps)-1]

		// Run and Trace agree; no false positives.
		assert.False(t, res.NegativeCycle, "iter %d", iter)
		assert.False(t, last.NegativeCycle, "iter %d", iter)
		assert.Equal(t, last.Distances, res.Distances, "iter %d", iter)
		assert.Equal(t, last.Predecessors, res.Predecessors, "iter %d", iter)
		assert.Equal(t, referenceDistances(f), res.Distances, "iter %d", iter)

		// A different order converges to the same distances.
		shuffled := f
		shuffled.order = append([]string(nil), f.order...)
		r.Shuffle(len(shuffled.order), func(a, b int) {
			shuffled.order[a], shuffled.order[b] = shuffled.order[b], shuffled.order[a]
		})
		assert.Equal(t, res.Distances, shuffled.run(t).Distances, "iter %d", iter)

		// Every reachable node has a path made of input edges whose weight is its distance.
		weights := map[string]int64{}
		for _, e := range f.edges {
			weights[e.ID] = e.Weight
		}
		for _, n := range f.nodes {
			path, err := bellmanford.Path(res.Predecessors, f.source, n.ID)
			if res.Distances[n.ID] == bellmanford.Infinity {
				assert.ErrorIs(t, err, bellmanford.ErrUnreachable)
				continue
			}
			require.NoError(t, err)
			assert.Equal(t, f.source, path[0])
			assert.Equal(t, n.ID, path[len(path)-1])
			var total int64
			for k := 1; k < len(path); k++ {
				w, ok := weights[graph.EdgeID(path[k-1], path[k])]
				require.True(t, ok, "edge %s→%s not in graph", path[k-1], path[k])
				total += w
			}
			assert.Equal(t, res.Distances[n.ID], total, "iter %d node %s", iter, n.ID)
		}
	}
}

func TestRun_ConcurrentInvocations(t *testing.T) {
	fixtures := []fixture{demoFixture(), acyclicDemoFixture(), negativeCycleFixture()}
	want := make([]bellmanford.Result, len(fixtures))
	for i, f := range fixtures {
		want[i] = f.run(t)
	}

	var wg sync.WaitGroup
	got := make([]bellmanford.Result, 3*len(fixtures))
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f := fixtures[i%len(fixtures)]
			got[i], _ = bellmanford.Run(f.nodes, f.edges, f.order, f.source)
		}(i)
	}
	wg.Wait()

	for i, res := range got {
		assert.Equal(t, want[i%len(fixtures)], res)
	}
}
