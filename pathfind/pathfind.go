// Package pathfind implements single-source shortest paths with
// pluggable edge costs and optional A*-style goal direction.
//
// The engine is Dijkstra's algorithm with a lazy decrease-key strategy:
// improving a node's cost pushes a fresh frontier entry and stale
// duplicates are discarded when popped. Each node moves through the
// states unvisited -> reached (finite cost known, not yet minimal) ->
// visited (popped with guaranteed-minimal cost; terminal). A node may
// be re-reached with improving costs while unfinalized, but once
// visited it is frozen and never revisited.
//
// Complexity:
//
//   - Time:  O((V + R) log R), where R is the number of relaxations
//     (push events); stale entries are discarded on pop rather than
//     removed eagerly.
//   - Space: O(V) for the cost/visited/predecessor maps plus O(R)
//     transient frontier entries.
//
// Non-negative costs and, when supplied, an admissible heuristic are
// preconditions; under them every visited node's recorded cost is
// minimal.
package pathfind

import (
	"fmt"
	"math"

	"github.com/wylee/dijkstar/core"
)

// FindPath finds the shortest path from source to dest in g using
// plain Dijkstra over numeric edge payloads. It is shorthand for the
// zero Search; use a Search value to supply cost/heuristic callbacks
// or an annex graph.
//
// Fails with ErrNodeNotFound if source is absent and ErrNoPath if dest
// is unreachable.
func FindPath[N comparable, E any](g *core.Graph[N, E], source, dest N) (PathInfo[N, E], error) {
	var s Search[N, E]

	return s.FindPath(g, source, dest)
}

// ShortestPaths computes shortest paths from source to every reachable
// node in g using plain Dijkstra over numeric edge payloads.
func ShortestPaths[N comparable, E any](g *core.Graph[N, E], source N) (Result[N, E], error) {
	var s Search[N, E]

	return s.ShortestPaths(g, source)
}

// FindPath finds the shortest path from source to dest under the
// search configuration and extracts it into a PathInfo.
func (s *Search[N, E]) FindPath(g *core.Graph[N, E], source, dest N) (PathInfo[N, E], error) {
	result, err := s.ShortestPathsTo(g, source, dest)
	if err != nil {
		return PathInfo[N, E]{}, err
	}

	return ExtractPath(result, dest)
}

// ShortestPaths runs the search from source with no destination: the
// frontier is drained and every reachable node is finalized.
func (s *Search[N, E]) ShortestPaths(g *core.Graph[N, E], source N) (Result[N, E], error) {
	return s.run(g, source, nil)
}

// ShortestPathsTo runs the search from source and terminates as soon
// as dest is finalized. Fails with ErrNoPath if the frontier empties
// before reaching dest.
func (s *Search[N, E]) ShortestPathsTo(g *core.Graph[N, E], source, dest N) (Result[N, E], error) {
	return s.run(g, source, &dest)
}

// run validates inputs, seeds the frontier, and drives the main loop.
func (s *Search[N, E]) run(g *core.Graph[N, E], source N, dest *N) (Result[N, E], error) {
	// 1) Validate the graph.
	if g == nil {
		return Result[N, E]{}, ErrNilGraph
	}

	// 2) The source must exist in the primary graph or, since annexes
	//    may inject virtual start connectors, in the annex.
	if !g.HasNode(source) && (s.Annex == nil || !s.Annex.HasNode(source)) {
		return Result[N, E]{}, fmt.Errorf("%w: source %v", ErrNodeNotFound, source)
	}

	// 3) Prepare per-run state.
	r := &runner[N, E]{
		search:  s,
		graph:   g,
		dest:    dest,
		costs:   make(map[N]float64),
		preds:   make(map[N]Predecessor[N, E]),
		visited: make(map[N]bool),
	}

	// 4) Seed: the source is reached with cost 0. Its initial priority
	//    is the heuristic estimate when goal direction applies, else 0.
	r.costs[source] = 0
	priority := 0.0
	if s.Heuristic != nil && dest != nil {
		priority = s.Heuristic(source, *dest)
	}
	r.front.Push(priority, 0, source, Predecessor[N, E]{})

	// 5) Main loop.
	if err := r.process(); err != nil {
		return Result[N, E]{}, err
	}

	// 6) A requested destination must have been finalized.
	if dest != nil && !r.visited[*dest] {
		return Result[N, E]{}, fmt.Errorf("%w: from %v to %v", ErrNoPath, source, *dest)
	}

	result := Result[N, E]{Source: source, Predecessors: r.preds}
	if s.Debug {
		result.Debug = &DebugInfo[N]{
			Costs:        r.costs,
			Visited:      r.visited,
			Considered:   r.considered,
			VisitedCount: len(r.visited),
		}
	}

	return result, nil
}

// runner holds the mutable state for a single search execution.
type runner[N comparable, E any] struct {
	search *Search[N, E]
	graph  *core.Graph[N, E]
	dest   *N

	// costs maps each reached node to its best known cost from the
	// source. "Reached" is weaker than "visited": the value may still
	// improve until the node is finalized.
	costs map[N]float64

	// preds maps each visited node to its finalized predecessor.
	preds map[N]Predecessor[N, E]

	// visited marks nodes whose costs are final.
	visited map[N]bool

	front      frontier[N, E]
	considered int
}

// process pops frontier entries until the destination is finalized or
// the frontier empties.
func (r *runner[N, E]) process() error {
	for {
		entry, ok := r.front.PopMin()
		if !ok {
			return nil
		}
		u := entry.node

		// A node reached from multiple predecessors leaves stale
		// duplicates behind; finalization is first-pop-wins.
		if r.visited[u] {
			continue
		}

		r.visited[u] = true
		r.preds[u] = entry.pred

		if r.dest != nil && u == *r.dest {
			return nil
		}

		if err := r.relax(entry); err != nil {
			return err
		}
	}
}

// relax examines every outgoing edge of the entry's node, in the
// primary graph and, if configured, the annex, and pushes improved
// candidates onto the frontier.
func (r *runner[N, E]) relax(entry *frontierEntry[N, E]) error {
	if err := r.relaxIn(r.graph, entry); err != nil {
		return err
	}
	if r.search.Annex != nil {
		return r.relaxIn(r.search.Annex, entry)
	}

	return nil
}

// relaxIn relaxes the edges of one source graph.
func (r *runner[N, E]) relaxIn(g *core.Graph[N, E], entry *frontierEntry[N, E]) error {
	u := entry.node
	prevEdge := entry.pred.Edge

	var relaxErr error
	g.EachEdge(u, func(v N, edge E) bool {
		// Never backtrack to finalized nodes.
		if r.visited[v] {
			return true
		}
		r.considered++

		// Compute the cost of crossing u -> v.
		var edgeCost float64
		if r.search.Cost != nil {
			edgeCost = r.search.Cost(u, v, edge, prevEdge)
		} else {
			var ok bool
			if edgeCost, ok = numericCost(edge); !ok {
				relaxErr = fmt.Errorf("%w: payload %v of edge %v->%v is not numeric",
					ErrInvalidCost, edge, u, v)
				return false
			}
		}
		if edgeCost < 0 || math.IsNaN(edgeCost) {
			relaxErr = fmt.Errorf("%w: cost %v for edge %v->%v", ErrInvalidCost, edgeCost, u, v)
			return false
		}

		// A candidate cost from the source to v through u. Push only on
		// strict improvement, so among equal-cost paths the
		// first-inserted edge wins and results stay reproducible.
		candidate := entry.cost + edgeCost
		if current, reached := r.costs[v]; reached && candidate >= current {
			return true
		}
		r.costs[v] = candidate

		priority := candidate
		if r.search.Heuristic != nil && r.dest != nil {
			priority += r.search.Heuristic(v, *r.dest)
		}

		uCopy, edgeCopy := u, edge
		r.front.Push(priority, candidate, v, Predecessor[N, E]{
			Node: &uCopy,
			Edge: &edgeCopy,
			Cost: edgeCost,
		})

		return true
	})

	return relaxErr
}
