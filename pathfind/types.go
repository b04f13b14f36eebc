// Package pathfind: core types and configuration for the search engine.
//
// This file declares the cost/heuristic callback signatures, the Search
// configuration struct, the PathInfo result, the predecessor structure
// produced by a search, and the package's sentinel errors.

package pathfind

import (
	"errors"

	"github.com/wylee/dijkstar/core"
)

// Sentinel errors returned by the search entry points.
var (
	// ErrNilGraph indicates that a nil graph was passed to a search.
	ErrNilGraph = errors.New("pathfind: graph is nil")

	// ErrNodeNotFound indicates that the source node is absent from both
	// the graph and the annex.
	ErrNodeNotFound = errors.New("pathfind: node not found")

	// ErrNoPath indicates that a destination was requested but the
	// frontier emptied before reaching it.
	ErrNoPath = errors.New("pathfind: no path to destination")

	// ErrInvalidCost indicates that a cost evaluated to a negative or
	// non-numeric value. This is a caller precondition violation: the
	// algorithm surfaces it rather than silently patching the result.
	ErrInvalidCost = errors.New("pathfind: invalid edge cost")

	// ErrBrokenChain indicates that a predecessor chain did not lead
	// back to the search source. Given an intact Result this cannot
	// occur; it signals internal inconsistency or a mismatched
	// Result/node pair, not a user-facing condition.
	ErrBrokenChain = errors.New("pathfind: broken predecessor chain")
)

// Cost computes the traversal cost of one edge. It receives the current
// node u, the neighbor v, the payload of the edge u -> v, and the
// payload of the edge previously traversed to reach u (nil at the
// source). It must be side-effect-free, deterministic for a fixed
// argument tuple within one search, and return a non-negative value;
// the engine may invoke it any number of times for the same edge.
type Cost[N comparable, E any] func(u, v N, edge E, prevEdge *E) float64

// Heuristic estimates the remaining cost from a node to the
// destination. It is consulted only when a destination is supplied.
// Admissibility (never overestimating) is a precondition for optimal
// results; it is not verified.
type Heuristic[N comparable] func(n, dest N) float64

// Search configures a path search. The zero value runs plain Dijkstra:
// edge payloads are taken as numeric costs and no goal direction is
// applied. A Search carries no per-run state and may be reused.
type Search[N comparable, E any] struct {
	// Cost computes per-edge traversal costs. When nil, each payload is
	// coerced to a float64 (ErrInvalidCost for non-numeric payloads).
	Cost Cost[N, E]

	// Heuristic turns the search into A* when a destination is given.
	Heuristic Heuristic[N]

	// Annex is an optional secondary graph consulted in addition to the
	// primary graph during neighbor expansion, without mutating either.
	// It injects temporary edges (virtual start/end connectors, detour
	// candidates) for the duration of one search.
	Annex *core.Graph[N, E]

	// Debug attaches diagnostic maps and counters to the Result. It is
	// purely additive and never changes the primary outcome.
	Debug bool
}

// Predecessor records how a node was reached: the node it was reached
// from, the edge traversed, and the computed cost of that step.
// The source node's entry has nil Node and Edge and zero Cost.
type Predecessor[N comparable, E any] struct {
	Node *N
	Edge *E
	Cost float64
}

// Result is the predecessor structure produced by a search, with
// optional diagnostics.
type Result[N comparable, E any] struct {
	// Source is the node the search started from.
	Source N

	// Predecessors maps each visited node to its finalized predecessor.
	// Nodes that were reached but not finalized before termination are
	// absent.
	Predecessors map[N]Predecessor[N, E]

	// Debug is populated only when Search.Debug is set.
	Debug *DebugInfo[N]
}

// DebugInfo carries additive diagnostic output from one search.
type DebugInfo[N comparable] struct {
	// Costs holds the best known cost from the source for every node
	// that was reached, finalized or not.
	Costs map[N]float64

	// Visited marks the nodes whose costs were finalized.
	Visited map[N]bool

	// Considered counts edge relaxations evaluated.
	Considered int

	// VisitedCount counts nodes finalized.
	VisitedCount int
}

// PathInfo is the ordered result of a successful path search.
// It is constructed once per search and not mutated afterwards.
type PathInfo[N comparable, E any] struct {
	// Nodes on the path, source first, destination last.
	Nodes []N

	// Edges traversed, in order; len(Edges) == len(Nodes)-1.
	Edges []E

	// Costs holds the computed cost of each traversed edge. Without a
	// cost function these are the payloads coerced to float64.
	Costs []float64

	// TotalCost is the sum of Costs.
	TotalCost float64
}
