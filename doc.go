// Package dijkstar computes single-source shortest paths over weighted
// graphs whose edge costs may be computed dynamically by a pluggable
// cost function, and whose search may be goal-directed via a pluggable
// heuristic (A*).
//
// What it brings together:
//
//   - Graph storage: dict-of-dicts adjacency with an incrementally
//     maintained reverse-edge index, plus an undirected variant
//   - Search: Dijkstra/A* with deterministic tie-breaking, contextual
//     cost callbacks (previous edge in hand), and annex graphs for
//     injecting temporary edges into one search
//   - Persistence: an explicit, versioned JSON/YAML adjacency schema
//   - Service: an HTTP server exposing graph operations and path
//     search, a Go client for it, and a CLI
//
// Everything is organized under focused subpackages:
//
//	core/     Graph and Undirected storage types
//	pathfind/ the search engine, frontier, and path extraction
//	graphio/  serialization of the forward adjacency structure
//	server/   the HTTP service
//	client/   client for the HTTP service
//	cmd/      the dijkstar command (serve, info, find)
//
// Quick example:
//
//	g := core.New[string, float64]()
//	g.AddEdge("a", "b", 110)
//	g.AddEdge("b", "c", 125)
//	info, err := pathfind.FindPath(g, "a", "c")
//
// Costs are assumed non-negative and heuristics admissible; see the
// pathfind package docs for the exact contract.
//
//	go get github.com/wylee/dijkstar
package dijkstar
