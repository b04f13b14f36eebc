// Package pathfind provides single-source shortest paths over a
// core.Graph, with dynamically computed edge costs and optional
// goal-directed (A*) search.
//
// Overview:
//
//   - FindPath / Search.FindPath compute the shortest path between two
//     nodes and return an ordered PathInfo (nodes, edges, per-step
//     costs, total cost).
//   - Search.ShortestPaths / Search.ShortestPathsTo return the raw
//     predecessor structure, from which ExtractPath reconstructs any
//     finalized path.
//   - A Search value configures one style of search: a Cost callback to
//     derive per-edge costs from opaque payloads (with access to the
//     previously traversed edge, enabling turn penalties and the like),
//     a Heuristic to steer toward the destination, an Annex graph to
//     inject temporary edges, and a Debug switch for diagnostics.
//
// When to use:
//
//   - Route finding over weighted graphs where edge costs depend on
//     context (time of day, mode transitions, turn restrictions).
//   - As plain Dijkstra: the zero Search treats payloads as numeric
//     costs.
//
// Key behaviors:
//
//   - Deterministic tie-breaking: the frontier orders entries by
//     (priority, insertion sequence), so equal-cost alternatives
//     resolve to the first-inserted edge and repeated runs over an
//     unchanged graph return identical paths.
//   - Lazy decrease-key: cost improvements push fresh entries; stale
//     duplicates are discarded when popped.
//   - The engine only reads the graph and annex; it never mutates
//     either. One call runs to completion synchronously; callers
//     needing bounded execution should supply a destination or wrap
//     the call.
//
// Preconditions:
//
//   - Costs must be non-negative and heuristics admissible; violations
//     surface as ErrInvalidCost where detectable and otherwise void the
//     optimality guarantee rather than being corrected mid-run.
//   - Cost and heuristic callbacks must be deterministic and
//     side-effect-free within one search.
//
// Error handling (sentinel):
//
//   - ErrNilGraph, ErrNodeNotFound, ErrNoPath, ErrInvalidCost,
//     ErrBrokenChain, all inspectable with errors.Is.
package pathfind
