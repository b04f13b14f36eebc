// Package core provides the graph storage structure that the pathfind
// engine operates over: a directed adjacency map with an incrementally
// maintained reverse-edge index, plus an Undirected wrapper that
// mirrors every mutation across both directions.
//
// Overview:
//
//   - Graph[N, E] maps node -> (neighbor -> edge payload). Nodes are
//     opaque, comparable identifiers; no ordering is assumed. Payloads
//     are opaque values interpreted only by cost functions.
//   - The reverse index (Incoming) answers "who points at v" in
//     O(deg_in(v)). An index entry exists iff at least one edge points
//     at the node; it is removed the moment its last incoming edge is.
//   - Neighbor iteration (EachEdge, Neighbors) follows edge-insertion
//     order, which makes searches over the graph reproducible across
//     runs for a fixed mutation sequence.
//
// Operations:
//
//   - AddNode / HasNode / GetNode / RemoveNode
//   - AddEdge / HasEdge / GetEdge / RemoveEdge
//   - NodeCount / EdgeCount / Nodes / Neighbors / Incoming
//   - Subgraph / Clone / Equal / String
//
// RemoveNode cascades: every edge where the node is source or target is
// removed and the reverse index stays consistent. Subgraph keeps
// exactly the edges with both endpoints in the requested set.
//
// Error handling (sentinel):
//
//   - ErrNodeNotFound: a referenced node is absent.
//   - ErrEdgeNotFound: a referenced directed edge is absent.
//
// Concurrency:
//
//   - Graph is a plain in-memory structure with no internal locking.
//     Searches only read; mutating a graph concurrently with a search
//     on the same instance is undefined behavior. Synchronize
//     externally when sharing across goroutines.
//
// See also:
//
//   - pathfind: Dijkstra/A* search over a Graph.
//   - graphio: versioned serialization of the forward adjacency.
package core
