// Package core defines the central Graph type: a directed adjacency
// structure with an incrementally maintained reverse-edge index.
//
// This file declares the Graph and Undirected types, sentinel errors,
// and the New/NewUndirected constructors.
//
// Errors:
//
//	ErrNodeNotFound - requested node does not exist.
//	ErrEdgeNotFound - requested directed edge does not exist.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Graph is a directed graph keyed by opaque, comparable node identifiers.
//
// Its forward structure is a mapping from node to (neighbor -> edge
// payload). Payloads are entirely opaque to the graph: their
// interpretation (numeric weight, structured record, ...) is delegated
// to whoever traverses the graph, typically a pathfind cost function.
//
// Alongside the forward adjacency the Graph maintains a reverse index:
// for every node v, the set of nodes u that currently hold an edge
// u -> v. The index entry for v exists if and only if at least one edge
// points at v; it is deleted outright the moment its last incoming edge
// is removed.
//
// Neighbor iteration order is the edge-insertion order, which keeps
// traversals reproducible across runs for a fixed mutation sequence.
//
// Graph is not safe for concurrent mutation. Mutating a Graph while a
// search is reading it is undefined behavior; callers must not
// interleave the two on the same instance.
type Graph[N comparable, E any] struct {
	// adj[u][v] = payload of the directed edge u -> v.
	adj map[N]map[N]E

	// order[u] lists u's neighbors in edge-insertion order.
	order map[N][]N

	// nodes lists all nodes in insertion order.
	nodes []N

	// incoming[v] = set of nodes with an edge into v.
	// Entries are present iff non-empty.
	incoming map[N]map[N]struct{}
}

// New creates an empty directed Graph.
// Complexity: O(1)
func New[N comparable, E any]() *Graph[N, E] {
	return &Graph[N, E]{
		adj:      make(map[N]map[N]E),
		order:    make(map[N][]N),
		incoming: make(map[N]map[N]struct{}),
	}
}

// Undirected is a Graph variant in which every edge is logically one
// bidirectional connection: adding (u, v, payload) also adds
// (v, u, payload), and removing (u, v) also removes (v, u).
//
// Mutations are all-or-nothing across the two mirrored directions: the
// wrapper validates the operation before touching either direction, so
// after any single mutating call both directions agree.
type Undirected[N comparable, E any] struct {
	g *Graph[N, E]
}

// NewUndirected creates an empty undirected graph.
// Complexity: O(1)
func NewUndirected[N comparable, E any]() *Undirected[N, E] {
	return &Undirected[N, E]{g: New[N, E]()}
}
