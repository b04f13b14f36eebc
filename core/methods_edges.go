// Package core: edge-level operations on Graph.

package core

// AddEdge stores payload for the directed edge u -> v, creating u
// and/or v if either is absent. v's reverse-index entry is updated
// unconditionally, whether or not u previously existed in the graph.
// Re-adding an existing edge replaces its payload and keeps its
// position in u's neighbor order.
// Returns the stored payload.
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddEdge(u, v N, payload E) E {
	g.AddNode(u)
	g.AddNode(v)

	if _, exists := g.adj[u][v]; !exists {
		g.order[u] = append(g.order[u], v)
	}
	g.adj[u][v] = payload

	preds, exists := g.incoming[v]
	if !exists {
		preds = make(map[N]struct{})
		g.incoming[v] = preds
	}
	preds[u] = struct{}{}

	return payload
}

// HasEdge reports whether the directed edge u -> v exists.
// Complexity: O(1).
func (g *Graph[N, E]) HasEdge(u, v N) bool {
	_, exists := g.adj[u][v]

	return exists
}

// GetEdge returns the payload stored for the directed edge u -> v.
// Returns ErrEdgeNotFound if the edge does not exist.
// Complexity: O(1).
func (g *Graph[N, E]) GetEdge(u, v N) (E, error) {
	payload, exists := g.adj[u][v]
	if !exists {
		var zero E
		return zero, ErrEdgeNotFound
	}

	return payload, nil
}

// RemoveEdge deletes the directed edge u -> v, updating v's
// reverse-index entry and deleting that entry entirely once it becomes
// empty. The endpoints themselves are kept.
// Returns ErrEdgeNotFound if the edge does not exist.
// Complexity: O(deg_out(u)).
func (g *Graph[N, E]) RemoveEdge(u, v N) error {
	if _, exists := g.adj[u][v]; !exists {
		return ErrEdgeNotFound
	}
	delete(g.adj[u], v)
	g.order[u] = removeFromOrder(g.order[u], v)
	g.dropIncoming(v, u)

	return nil
}

// EdgeCount returns the number of directed edges in the graph.
// Complexity: O(V).
func (g *Graph[N, E]) EdgeCount() int {
	count := 0
	for _, neighbors := range g.adj {
		count += len(neighbors)
	}

	return count
}

// Neighbors returns u's adjacent nodes in edge-insertion order.
// Returns ErrNodeNotFound if u does not exist.
// Complexity: O(deg_out(u)).
func (g *Graph[N, E]) Neighbors(u N) ([]N, error) {
	if _, exists := g.adj[u]; !exists {
		return nil, ErrNodeNotFound
	}
	out := make([]N, len(g.order[u]))
	copy(out, g.order[u])

	return out, nil
}

// EachEdge calls fn for every outgoing edge of u in edge-insertion
// order, stopping early if fn returns false. Unknown u is a no-op.
// fn must not mutate the graph.
// Complexity: O(deg_out(u)) and allocation-free; search loops iterate
// through here rather than through the copying accessors.
func (g *Graph[N, E]) EachEdge(u N, fn func(v N, payload E) bool) {
	neighbors, exists := g.adj[u]
	if !exists {
		return
	}
	for _, v := range g.order[u] {
		if !fn(v, neighbors[v]) {
			return
		}
	}
}
