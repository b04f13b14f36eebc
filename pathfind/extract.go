// Package pathfind: path extraction from a predecessor structure.

package pathfind

import "fmt"

// ExtractPath walks predecessor links backward from node to the
// search's source, then reverses the accumulated (node, edge, cost)
// triples into source-to-destination order and sums the per-step costs.
//
// The degenerate case node == source yields a single-node path with
// empty edge and cost sequences and total cost 0.
//
// Fails with ErrBrokenChain when node has no entry in the result or a
// link in the chain is missing; given an intact Result produced by a
// search that finalized node, neither can occur.
func ExtractPath[N comparable, E any](result Result[N, E], node N) (PathInfo[N, E], error) {
	pred, ok := result.Predecessors[node]
	if !ok {
		return PathInfo[N, E]{}, fmt.Errorf("%w: node %v is not in the predecessor map",
			ErrBrokenChain, node)
	}

	info := PathInfo[N, E]{
		Nodes: []N{node},
		Edges: []E{},
		Costs: []float64{},
	}

	// Walk back to the source entry, whose predecessor node is nil.
	// The walk is bounded by the map size; exceeding that bound means
	// the chain loops.
	for steps := len(result.Predecessors); pred.Node != nil; steps-- {
		if steps <= 0 {
			return PathInfo[N, E]{}, fmt.Errorf("%w: predecessor chain cycles at %v",
				ErrBrokenChain, node)
		}
		u := *pred.Node
		info.Nodes = append(info.Nodes, u)
		info.Edges = append(info.Edges, *pred.Edge)
		info.Costs = append(info.Costs, pred.Cost)

		if pred, ok = result.Predecessors[u]; !ok {
			return PathInfo[N, E]{}, fmt.Errorf("%w: missing link at %v", ErrBrokenChain, u)
		}
	}

	reverse(info.Nodes)
	reverse(info.Edges)
	reverse(info.Costs)
	for _, c := range info.Costs {
		info.TotalCost += c
	}

	return info, nil
}

// reverse flips a slice in place.
func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
