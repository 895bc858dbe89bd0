// Package relaxlab is a teaching engine for the Bellman-Ford single-source
// shortest-path algorithm on directed graphs with signed integer weights.
//
// 🚀 What is relaxlab?
//
//	A small, thread-safe toolkit that brings together:
//		• graph/         node and edge builder with an explicit edge order
//		• bellmanford/   traced and run-to-completion engines, path and
//		                 negative-cycle reconstruction
//		• demo/          the fixed five-node demonstration graph
//		• replay/        step cursor for walking a recorded trace
//		• graphfile/     TOML and HCL graph descriptions
//		• cmd/relaxlab   CLI: trace, run, replay, export
//
// ✨ Why relaxlab?
//
//   - Every edge examination is a Step with its own distance snapshot,
//     so a trace can be replayed backwards and forwards.
//   - Edge order is part of the input; changing it changes the trace
//     but never the final distances.
//   - Negative cycles are reported with a witness edge and, when one can
//     be extracted, the cycle itself.
//
// Quick ASCII example (the demonstration graph):
//
//	a ──5──► b ──(-4)──► e
//	│        ▲           │
//	(-3)     2           1
//	▼        │           ▼
//	c ──3──► d ◄─────────┘
//
// The loop b → e → d → b weighs -1, so the run reports a negative cycle.
//
//	go run ./cmd/relaxlab run
//	go run ./cmd/relaxlab replay
package relaxlab
