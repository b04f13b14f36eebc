// Package core: Undirected wrapper composing the directed Graph.
//
// Every mutation is mirrored on (v, u). The wrapper validates each
// operation before the first map write, and the two mirrored writes
// themselves cannot fail, so a single mutating call never leaves the
// graph with only one direction present (all-or-nothing).

package core

// Graph exposes the underlying directed structure, with both
// directions of every undirected edge materialized. Use it for
// traversal and serialization; mutating it directly breaks the
// mirror invariant.
func (ug *Undirected[N, E]) Graph() *Graph[N, E] { return ug.g }

// AddNode inserts node n with no edges; idempotent. Returns n.
func (ug *Undirected[N, E]) AddNode(n N) N { return ug.g.AddNode(n) }

// HasNode reports whether node n exists.
func (ug *Undirected[N, E]) HasNode(n N) bool { return ug.g.HasNode(n) }

// GetNode returns a copy of n's neighbor map, or ErrNodeNotFound.
func (ug *Undirected[N, E]) GetNode(n N) (map[N]E, error) { return ug.g.GetNode(n) }

// RemoveNode deletes n and every edge touching it (the cascade on the
// underlying graph removes both directions of each incident edge).
// Returns ErrNodeNotFound if n does not exist.
func (ug *Undirected[N, E]) RemoveNode(n N) error { return ug.g.RemoveNode(n) }

// AddEdge stores payload for the undirected edge between u and v by
// writing both (u, v) and (v, u). A self-loop is stored once.
// Returns the stored payload.
func (ug *Undirected[N, E]) AddEdge(u, v N, payload E) E {
	ug.g.AddEdge(u, v, payload)
	if u != v {
		ug.g.AddEdge(v, u, payload)
	}

	return payload
}

// HasEdge reports whether the undirected edge between u and v exists.
func (ug *Undirected[N, E]) HasEdge(u, v N) bool { return ug.g.HasEdge(u, v) }

// GetEdge returns the payload of the undirected edge between u and v,
// or ErrEdgeNotFound. By the mirror invariant the orientation of the
// lookup does not matter.
func (ug *Undirected[N, E]) GetEdge(u, v N) (E, error) { return ug.g.GetEdge(u, v) }

// RemoveEdge deletes the undirected edge between u and v (both stored
// directions) or returns ErrEdgeNotFound without touching the graph.
func (ug *Undirected[N, E]) RemoveEdge(u, v N) error {
	if !ug.g.HasEdge(u, v) {
		return ErrEdgeNotFound
	}
	if err := ug.g.RemoveEdge(u, v); err != nil {
		return err
	}
	if u != v {
		// Cannot fail: the mirror exists whenever the primary does.
		return ug.g.RemoveEdge(v, u)
	}

	return nil
}

// NodeCount returns the number of nodes.
func (ug *Undirected[N, E]) NodeCount() int { return ug.g.NodeCount() }

// EdgeCount returns the number of undirected edges: mirrored pairs
// count once, self-loops count once.
// Complexity: O(V + E).
func (ug *Undirected[N, E]) EdgeCount() int {
	loops := 0
	for _, n := range ug.g.nodes {
		if ug.g.HasEdge(n, n) {
			loops++
		}
	}

	return (ug.g.EdgeCount()-loops)/2 + loops
}

// Nodes returns all nodes in insertion order.
func (ug *Undirected[N, E]) Nodes() []N { return ug.g.Nodes() }

// Neighbors returns u's adjacent nodes in edge-insertion order,
// or ErrNodeNotFound.
func (ug *Undirected[N, E]) Neighbors(u N) ([]N, error) { return ug.g.Neighbors(u) }

// Subgraph returns a new Undirected graph with the nodes of nodeSet
// that exist here and exactly the edges with both ends in nodeSet.
// Mirrored pairs survive together, so the result upholds the
// undirected invariant.
func (ug *Undirected[N, E]) Subgraph(nodeSet []N) *Undirected[N, E] {
	return &Undirected[N, E]{g: ug.g.Subgraph(nodeSet)}
}

// Equal reports structural equality of the underlying adjacency.
func (ug *Undirected[N, E]) Equal(other *Undirected[N, E]) bool {
	if ug == nil || other == nil {
		return ug == other
	}

	return ug.g.Equal(other.g)
}

// String renders the node/edge counts and the stored adjacency.
func (ug *Undirected[N, E]) String() string { return "Undirected" + ug.g.String() }
