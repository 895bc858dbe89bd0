package bellmanford

import "fmt"

// Path reconstructs the shortest path source → … → target by walking the
// predecessor table backwards from target.
//
// Returns:
//   - [source] when target == source.
//   - ErrUnreachable when target has no predecessor (or is unknown), or the
//     walk dead-ends before reaching source.
//   - ErrCyclicPredecessor when the walk revisits a node without reaching
//     source; this is expected when a negative cycle left stale links.
//
// The walk is bounded by a seen-set and by 2×|V| steps.
// Complexity: O(V).
func Path(prev Predecessors, source, target string) ([]string, error) {
	if target == source {
		return []string{source}, nil
	}
	if prev[target] == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, target)
	}

	limit := 2 * len(prev)
	seen := map[string]struct{}{target: {}}
	reversed := []string{target}
	cur := target
	for steps := 0; cur != source; steps++ {
		if steps >= limit {
			return nil, fmt.Errorf("%w: walk from %q exceeded %d steps", ErrCyclicPredecessor, target, limit)
		}
		next := prev[cur]
		if next == "" {
			return nil, fmt.Errorf("%w: %q has no predecessor on the way to %q", ErrUnreachable, cur, target)
		}
		if _, again := seen[next]; again {
			return nil, fmt.Errorf("%w: %q revisited while tracing %q", ErrCyclicPredecessor, next, target)
		}
		seen[next] = struct{}{}
		reversed = append(reversed, next)
		cur = next
	}

	return reverse(reversed), nil
}

// NegativeCycle extracts one cycle from the predecessor table, starting the
// backward walk at start (the head of the witness edge).
//
// The walk records visited nodes until one repeats; the recorded nodes from
// the repeated one onwards form the cycle. The result is in forward edge
// order beginning at the repeated node; the closing edge back to cycle[0]
// is implicit.
//
// ErrCycleExtractionFailed is returned when the walk reaches a node without
// predecessor (normally the source) before any repeat, or exceeds 2×|V| steps.
// Complexity: O(V).
func NegativeCycle(prev Predecessors, source, start string) ([]string, error) {
	if _, ok := prev[start]; !ok {
		return nil, fmt.Errorf("%w: %q is not in the predecessor table", ErrCycleExtractionFailed, start)
	}

	limit := 2 * len(prev)
	pos := make(map[string]int, len(prev)) // node → index in walk
	var walk []string
	cur := start
	for steps := 0; ; steps++ {
		if steps >= limit {
			return nil, fmt.Errorf("%w: walk from %q exceeded %d steps", ErrCycleExtractionFailed, start, limit)
		}
		if i, again := pos[cur]; again {
			// walk[i:] follows predecessor links backwards; the forward cycle
			// is walk[i] followed by the rest reversed.
			back := walk[i:]
			cycle := make([]string, 0, len(back))
			cycle = append(cycle, back[0])
			for j := len(back) - 1; j > 0; j-- {
				cycle = append(cycle, back[j])
			}

			return cycle, nil
		}
		pos[cur] = len(walk)
		walk = append(walk, cur)

		next := prev[cur]
		if next == "" {
			return nil, fmt.Errorf("%w: reached %q (source %q) without closing a cycle", ErrCycleExtractionFailed, cur, source)
		}
		cur = next
	}
}

// reverse reverses s in place and returns it.
func reverse(s []string) []string {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}

	return s
}
