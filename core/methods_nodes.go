// Package core: node-level operations on Graph.
//
// This file provides creation, lookup, and cascaded removal of nodes.
// All operations keep the reverse index consistent with the forward
// adjacency at every mutation site, not just on construction.

package core

// AddNode inserts node n into the graph with no edges.
// If n already exists this is a no-op (idempotent).
// Returns n for call chaining.
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddNode(n N) N {
	if _, exists := g.adj[n]; exists {
		return n
	}
	g.adj[n] = make(map[N]E)
	g.nodes = append(g.nodes, n)

	return n
}

// HasNode reports whether node n exists in the graph.
// Complexity: O(1).
func (g *Graph[N, E]) HasNode(n N) bool {
	_, exists := g.adj[n]

	return exists
}

// GetNode returns a copy of n's neighbor map (neighbor -> edge payload).
// Returns ErrNodeNotFound if n does not exist.
// Complexity: O(deg(n)).
func (g *Graph[N, E]) GetNode(n N) (map[N]E, error) {
	neighbors, exists := g.adj[n]
	if !exists {
		return nil, ErrNodeNotFound
	}
	out := make(map[N]E, len(neighbors))
	for v, e := range neighbors {
		out[v] = e
	}

	return out, nil
}

// RemoveNode deletes node n and every edge touching it, in both
// directions, updating the reverse index as it goes.
// Returns ErrNodeNotFound if n does not exist.
// Complexity: O(deg_out(n) + deg_in(n) + V); the node list and the
// predecessors' neighbor-order slices are compacted in place.
func (g *Graph[N, E]) RemoveNode(n N) error {
	if _, exists := g.adj[n]; !exists {
		return ErrNodeNotFound
	}

	// 1) Drop n from the reverse index of every node it points at.
	for v := range g.adj[n] {
		g.dropIncoming(v, n)
	}

	// 2) Remove every edge u -> n held by n's predecessors.
	for u := range g.incoming[n] {
		delete(g.adj[u], n)
		g.order[u] = removeFromOrder(g.order[u], n)
	}

	// 3) Remove n's own entries.
	delete(g.adj, n)
	delete(g.order, n)
	delete(g.incoming, n)
	g.nodes = removeFromOrder(g.nodes, n)

	return nil
}

// NodeCount returns the number of nodes in the graph.
// Complexity: O(1).
func (g *Graph[N, E]) NodeCount() int { return len(g.adj) }

// Nodes returns all nodes in insertion order.
// Complexity: O(V).
func (g *Graph[N, E]) Nodes() []N {
	out := make([]N, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Incoming returns the nodes holding an edge into v. The result is
// unordered. An absent or edge-less v yields an empty slice.
// Complexity: O(deg_in(v)).
func (g *Graph[N, E]) Incoming(v N) []N {
	preds := g.incoming[v]
	out := make([]N, 0, len(preds))
	for u := range preds {
		out = append(out, u)
	}

	return out
}

// dropIncoming removes u from v's reverse-index entry and deletes the
// entry entirely once it becomes empty.
func (g *Graph[N, E]) dropIncoming(v, u N) {
	preds, exists := g.incoming[v]
	if !exists {
		return
	}
	delete(preds, u)
	if len(preds) == 0 {
		delete(g.incoming, v)
	}
}

// removeFromOrder deletes the first occurrence of n from an
// insertion-order slice, preserving relative order.
func removeFromOrder[N comparable](order []N, n N) []N {
	for i, m := range order {
		if m == n {
			return append(order[:i], order[i+1:]...)
		}
	}

	return order
}
