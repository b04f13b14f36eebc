// Package core: derived-graph operations: subgraph extraction,
// cloning, structural equality, and the human-readable form.

package core

import (
	"fmt"
	"reflect"
)

// Subgraph returns a new Graph containing the nodes of nodeSet that
// exist in g and exactly the edges (u, v) with both u and v in nodeSet.
// No other edges are carried over and the reverse index of the result
// holds no orphan entries. Nodes absent from g are skipped; duplicates
// in nodeSet are ignored.
// Complexity: O(|nodeSet| + edges incident to nodeSet).
func (g *Graph[N, E]) Subgraph(nodeSet []N) *Graph[N, E] {
	member := make(map[N]struct{}, len(nodeSet))
	sub := New[N, E]()

	for _, n := range nodeSet {
		if !g.HasNode(n) {
			continue
		}
		if _, seen := member[n]; seen {
			continue
		}
		member[n] = struct{}{}
		sub.AddNode(n)
	}
	for _, u := range sub.nodes {
		g.EachEdge(u, func(v N, payload E) bool {
			if _, in := member[v]; in {
				sub.AddEdge(u, v, payload)
			}
			return true
		})
	}

	return sub
}

// Clone returns a deep copy of the graph structure. Edge payloads are
// copied by assignment; pointer-shaped payloads remain shared.
// Complexity: O(V + E).
func (g *Graph[N, E]) Clone() *Graph[N, E] {
	clone := New[N, E]()
	for _, n := range g.nodes {
		clone.AddNode(n)
	}
	for _, u := range g.nodes {
		g.EachEdge(u, func(v N, payload E) bool {
			clone.AddEdge(u, v, payload)
			return true
		})
	}

	return clone
}

// Equal reports whether g and other have equal forward adjacency
// structures: the same node set and, for every node, the same
// (neighbor, payload) mapping. The reverse index is derived state and
// is excluded, as is neighbor insertion order. Payloads are compared
// with reflect.DeepEqual since they are opaque to the graph.
// Complexity: O(V + E) map traversal plus payload comparison.
func (g *Graph[N, E]) Equal(other *Graph[N, E]) bool {
	if g == nil || other == nil {
		return g == other
	}

	return reflect.DeepEqual(g.adj, other.adj)
}

// String renders a compact human-readable form: node and edge counts
// followed by the forward adjacency. Map formatting sorts keys, so the
// output is deterministic for ordered key types.
func (g *Graph[N, E]) String() string {
	return fmt.Sprintf("Graph(%d nodes, %d edges) %v", g.NodeCount(), g.EdgeCount(), g.adj)
}
