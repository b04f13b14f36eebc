// Package pathfind_test contains unit tests for the search engine.
// These tests validate input validation, basic Dijkstra correctness,
// per-edge cost functions, annex graphs, A* with a heuristic, debug
// diagnostics, and deterministic tie-breaking, plus a brute-force
// cross-check on randomly generated graphs.
package pathfind_test

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wylee/dijkstar/core"
	"github.com/wylee/dijkstar/pathfind"
)

// ------------------------------------------------------------------------
// 1. Validation: errors for invalid inputs.
// ------------------------------------------------------------------------

func TestFindPath_NilGraph(t *testing.T) {
	_, err := pathfind.FindPath[int, int](nil, 1, 2)
	if !errors.Is(err, pathfind.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestFindPath_SourceNotFound(t *testing.T) {
	g := core.New[int, int]()
	g.AddEdge(1, 2, 1)
	_, err := pathfind.FindPath(g, 99, 2)
	if !errors.Is(err, pathfind.ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestFindPath_NegativePayload(t *testing.T) {
	g := core.New[int, int]()
	g.AddEdge(1, 2, -5)
	_, err := pathfind.FindPath(g, 1, 2)
	if !errors.Is(err, pathfind.ErrInvalidCost) {
		t.Fatalf("expected ErrInvalidCost for negative payload, got %v", err)
	}
}

func TestFindPath_NonNumericPayloadWithoutCostFunc(t *testing.T) {
	g := core.New[int, string]()
	g.AddEdge(1, 2, "not a number")
	_, err := pathfind.FindPath(g, 1, 2)
	if !errors.Is(err, pathfind.ErrInvalidCost) {
		t.Fatalf("expected ErrInvalidCost for string payload, got %v", err)
	}
}

func TestFindPath_CostFuncReturnsNaN(t *testing.T) {
	g := core.New[int, float64]()
	g.AddEdge(1, 2, 1)
	s := pathfind.Search[int, float64]{
		Cost: func(u, v int, e float64, prev *float64) float64 { return math.NaN() },
	}
	_, err := s.FindPath(g, 1, 2)
	if !errors.Is(err, pathfind.ErrInvalidCost) {
		t.Fatalf("expected ErrInvalidCost for NaN cost, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic functionality.
// ------------------------------------------------------------------------

func TestFindPath_Chain(t *testing.T) {
	// 1 -> 2 (110), 2 -> 3 (125), 3 -> 4 (108).
	g := core.New[int, int]()
	g.AddEdge(1, 2, 110)
	g.AddEdge(2, 3, 125)
	g.AddEdge(3, 4, 108)

	info, err := pathfind.FindPath(g, 1, 4)
	if err != nil {
		t.Fatal(err)
	}

	if want := []int{1, 2, 3, 4}; !reflect.DeepEqual(info.Nodes, want) {
		t.Errorf("Nodes = %v; want %v", info.Nodes, want)
	}
	if want := []float64{110, 125, 108}; !reflect.DeepEqual(info.Costs, want) {
		t.Errorf("Costs = %v; want %v", info.Costs, want)
	}
	if info.TotalCost != 343 {
		t.Errorf("TotalCost = %v; want 343", info.TotalCost)
	}
	if len(info.Edges) != 3 {
		t.Errorf("len(Edges) = %d; want 3", len(info.Edges))
	}
}

func TestFindPath_PrefersCheaperRoute(t *testing.T) {
	// Direct edge costs 5; detour via b costs 3.
	g := core.New[string, float64]()
	g.AddEdge("a", "c", 5)
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 2)

	info, err := pathfind.FindPath(g, "a", "c")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(info.Nodes, want) {
		t.Errorf("Nodes = %v; want %v", info.Nodes, want)
	}
	if info.TotalCost != 3 {
		t.Errorf("TotalCost = %v; want 3", info.TotalCost)
	}
}

func TestFindPath_SourceEqualsDest(t *testing.T) {
	g := core.New[int, int]()
	g.AddNode(7)

	info, err := pathfind.FindPath(g, 7, 7)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{7}; !reflect.DeepEqual(info.Nodes, want) {
		t.Errorf("Nodes = %v; want %v", info.Nodes, want)
	}
	if len(info.Edges) != 0 || len(info.Costs) != 0 {
		t.Errorf("expected empty Edges/Costs, got %v / %v", info.Edges, info.Costs)
	}
	if info.TotalCost != 0 {
		t.Errorf("TotalCost = %v; want 0", info.TotalCost)
	}
}

func TestFindPath_NoPath(t *testing.T) {
	g := core.New[int, int]()
	g.AddEdge(1, 2, 1)
	g.AddNode(3) // isolated

	_, err := pathfind.FindPath(g, 1, 3)
	if !errors.Is(err, pathfind.ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}

	// Edge direction matters: 2 cannot reach 1.
	_, err = pathfind.FindPath(g, 2, 1)
	if !errors.Is(err, pathfind.ErrNoPath) {
		t.Fatalf("expected ErrNoPath against edge direction, got %v", err)
	}
}

func TestShortestPaths_FullTree(t *testing.T) {
	g := core.New[string, float64]()
	g.AddEdge("a", "b", 1)
	g.AddEdge("a", "c", 4)
	g.AddEdge("b", "c", 2)
	g.AddEdge("c", "d", 1)

	res, err := pathfind.ShortestPaths(g, "a")
	if err != nil {
		t.Fatal(err)
	}

	wantTotals := map[string]float64{"a": 0, "b": 1, "c": 3, "d": 4}
	for node, want := range wantTotals {
		info, err := pathfind.ExtractPath(res, node)
		if err != nil {
			t.Fatalf("ExtractPath(%q): %v", node, err)
		}
		if info.TotalCost != want {
			t.Errorf("total to %q = %v; want %v", node, info.TotalCost, want)
		}
	}

	// Source entry marks the root of the tree.
	pred, ok := res.Predecessors["a"]
	if !ok {
		t.Fatal("source missing from Predecessors")
	}
	if pred.Node != nil || pred.Edge != nil || pred.Cost != 0 {
		t.Errorf("source predecessor = %+v; want nil/nil/0", pred)
	}
}

// ------------------------------------------------------------------------
// 3. Cost functions.
// ------------------------------------------------------------------------

type street struct {
	Length float64
	Name   string
}

// turnPenalty adds 10 whenever the street name changes, including the
// first departure (no previous street).
func turnPenalty(u, v int, e street, prev *street) float64 {
	cost := e.Length
	if prev == nil || prev.Name != e.Name {
		cost += 10
	}

	return cost
}

func TestFindPath_CostFuncStreetPenalty(t *testing.T) {
	g := core.New[int, street]()
	g.AddEdge(1, 2, street{110, "A"})
	g.AddEdge(2, 3, street{125, "A"})
	g.AddEdge(3, 4, street{108, "B"})

	s := pathfind.Search[int, street]{Cost: turnPenalty}
	info, err := s.FindPath(g, 1, 4)
	if err != nil {
		t.Fatal(err)
	}

	if want := []float64{120, 125, 118}; !reflect.DeepEqual(info.Costs, want) {
		t.Errorf("Costs = %v; want %v", info.Costs, want)
	}
	if info.TotalCost != 363 {
		t.Errorf("TotalCost = %v; want 363", info.TotalCost)
	}
}

func TestFindPath_CostFuncSeesPreviousEdge(t *testing.T) {
	// Two routes of equal length; the penalty for switching street
	// names makes the single-street route cheaper.
	g := core.New[string, street]()
	g.AddEdge("s", "a", street{1, "main"})
	g.AddEdge("a", "t", street{1, "main"})
	g.AddEdge("s", "b", street{1, "main"})
	g.AddEdge("b", "t", street{1, "side"})

	s := pathfind.Search[string, street]{
		Cost: func(u, v string, e street, prev *street) float64 {
			cost := e.Length
			if prev != nil && prev.Name != e.Name {
				cost += 100
			}

			return cost
		},
	}
	info, err := s.FindPath(g, "s", "t")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"s", "a", "t"}; !reflect.DeepEqual(info.Nodes, want) {
		t.Errorf("Nodes = %v; want %v", info.Nodes, want)
	}
	if info.TotalCost != 2 {
		t.Errorf("TotalCost = %v; want 2", info.TotalCost)
	}
}

// ------------------------------------------------------------------------
// 4. Annex graphs.
// ------------------------------------------------------------------------

func TestFindPath_AnnexVirtualEndpoints(t *testing.T) {
	// The source and destination live only in the annex, connected to
	// the primary graph by virtual edges. Neither graph is mutated.
	g := core.New[int, float64]()
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)

	annex := core.New[int, float64]()
	annex.AddEdge(-1, 1, 0.5)
	annex.AddEdge(3, -2, 0.5)

	s := pathfind.Search[int, float64]{Annex: annex}
	info, err := s.FindPath(g, -1, -2)
	if err != nil {
		t.Fatal(err)
	}

	if want := []int{-1, 1, 2, 3, -2}; !reflect.DeepEqual(info.Nodes, want) {
		t.Errorf("Nodes = %v; want %v", info.Nodes, want)
	}
	if info.TotalCost != 3 {
		t.Errorf("TotalCost = %v; want 3", info.TotalCost)
	}
	if g.HasNode(-1) || g.HasNode(-2) {
		t.Error("primary graph was mutated by annex search")
	}
}

func TestFindPath_AnnexUnionOffersShortcut(t *testing.T) {
	// The annex adds an edge alongside the primary ones; the engine
	// considers the union and takes whichever is cheaper.
	g := core.New[string, float64]()
	g.AddEdge("a", "b", 10)

	annex := core.New[string, float64]()
	annex.AddEdge("a", "c", 1)
	annex.AddEdge("c", "b", 1)

	s := pathfind.Search[string, float64]{Annex: annex}
	info, err := s.FindPath(g, "a", "b")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a", "c", "b"}; !reflect.DeepEqual(info.Nodes, want) {
		t.Errorf("Nodes = %v; want %v", info.Nodes, want)
	}
	if info.TotalCost != 2 {
		t.Errorf("TotalCost = %v; want 2", info.TotalCost)
	}
}

// ------------------------------------------------------------------------
// 5. Heuristic (A*) and debug diagnostics.
// ------------------------------------------------------------------------

// lineGraph returns 0 <-> 1 <-> ... <-> n-1 with unit edges in both
// directions.
func lineGraph(n int) *core.Graph[int, int] {
	g := core.New[int, int]()
	for i := 0; i < n-1; i++ {
		g.AddEdge(i, i+1, 1)
		g.AddEdge(i+1, i, 1)
	}

	return g
}

func TestFindPath_HeuristicSameResultFewerVisits(t *testing.T) {
	const n = 50
	g := lineGraph(n)
	source, dest := n/2, n-1

	plain := pathfind.Search[int, int]{Debug: true}
	plainRes, err := plain.ShortestPathsTo(g, source, dest)
	if err != nil {
		t.Fatal(err)
	}
	plainInfo, err := pathfind.ExtractPath(plainRes, dest)
	if err != nil {
		t.Fatal(err)
	}

	guided := pathfind.Search[int, int]{
		Debug: true,
		Heuristic: func(node, goal int) float64 {
			return math.Abs(float64(goal - node))
		},
	}
	guidedRes, err := guided.ShortestPathsTo(g, source, dest)
	if err != nil {
		t.Fatal(err)
	}
	guidedInfo, err := pathfind.ExtractPath(guidedRes, dest)
	if err != nil {
		t.Fatal(err)
	}

	// An admissible heuristic never changes the answer.
	if plainInfo.TotalCost != guidedInfo.TotalCost {
		t.Errorf("totals differ: plain %v, guided %v", plainInfo.TotalCost, guidedInfo.TotalCost)
	}
	if !reflect.DeepEqual(plainInfo.Nodes, guidedInfo.Nodes) {
		t.Errorf("paths differ: plain %v, guided %v", plainInfo.Nodes, guidedInfo.Nodes)
	}

	// Goal direction prunes the half of the line behind the source.
	if guidedRes.Debug.VisitedCount >= plainRes.Debug.VisitedCount {
		t.Errorf("guided visited %d nodes, plain %d; expected fewer",
			guidedRes.Debug.VisitedCount, plainRes.Debug.VisitedCount)
	}
}

func TestFindPath_DestinationStopsExpansion(t *testing.T) {
	// 1 -> 2 -> 3 -> 4; searching 1 -> 2 must not reach past 2.
	g := core.New[int, int]()
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	g.AddEdge(3, 4, 1)

	s := pathfind.Search[int, int]{Debug: true}
	res, err := s.ShortestPathsTo(g, 1, 2)
	if err != nil {
		t.Fatal(err)
	}

	if !res.Debug.Visited[2] {
		t.Error("destination not marked visited")
	}
	if res.Debug.Visited[3] || res.Debug.Visited[4] {
		t.Errorf("nodes past destination were finalized: %v", res.Debug.Visited)
	}
	if _, ok := res.Debug.Costs[4]; ok {
		t.Error("node 4 should never have been reached")
	}
}

func TestFindPath_DebugCounters(t *testing.T) {
	g := lineGraph(5)
	s := pathfind.Search[int, int]{Debug: true}
	res, err := s.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}

	if res.Debug == nil {
		t.Fatal("Debug not populated")
	}
	if res.Debug.VisitedCount != 5 {
		t.Errorf("VisitedCount = %d; want 5", res.Debug.VisitedCount)
	}
	if res.Debug.Considered == 0 {
		t.Error("Considered = 0; relaxations were evaluated")
	}
	if got := res.Debug.Costs[4]; got != 4 {
		t.Errorf("Costs[4] = %v; want 4", got)
	}

	// Without Debug the pointer stays nil.
	plain := pathfind.Search[int, int]{}
	res, err = plain.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Debug != nil {
		t.Error("Debug populated without being requested")
	}
}

// ------------------------------------------------------------------------
// 6. Determinism.
// ------------------------------------------------------------------------

func TestFindPath_TieBreakFirstInserted(t *testing.T) {
	// Two equal-cost routes s->a->t and s->b->t. The route through the
	// first-inserted neighbor must win, on every run.
	for run := 0; run < 25; run++ {
		g := core.New[string, int]()
		g.AddEdge("s", "a", 1)
		g.AddEdge("s", "b", 1)
		g.AddEdge("a", "t", 1)
		g.AddEdge("b", "t", 1)

		info, err := pathfind.FindPath(g, "s", "t")
		if err != nil {
			t.Fatal(err)
		}
		if want := []string{"s", "a", "t"}; !reflect.DeepEqual(info.Nodes, want) {
			t.Fatalf("run %d: Nodes = %v; want %v", run, info.Nodes, want)
		}
	}
}

func TestFindPath_RepeatableAcrossRuns(t *testing.T) {
	g := core.New[int, int]()
	// A mesh with several equal-cost alternatives.
	for u := 0; u < 6; u++ {
		for v := 0; v < 6; v++ {
			if u != v {
				g.AddEdge(u, v, 1+(u+v)%3)
			}
		}
	}

	first, err := pathfind.FindPath(g, 0, 5)
	if err != nil {
		t.Fatal(err)
	}
	for run := 0; run < 10; run++ {
		again, err := pathfind.FindPath(g, 0, 5)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d produced a different result (-first +again):\n%s", run, diff)
		}
	}
}

// ------------------------------------------------------------------------
// 7. Brute-force cross-check on random graphs.
// ------------------------------------------------------------------------

// bruteForceMin enumerates all simple paths from source to dest and
// returns the minimum total cost, or +Inf when none exists.
func bruteForceMin(g *core.Graph[int, int], source, dest int) float64 {
	best := math.Inf(1)
	onPath := make(map[int]bool)

	var walk func(u int, total float64)
	walk = func(u int, total float64) {
		if u == dest {
			if total < best {
				best = total
			}

			return
		}
		onPath[u] = true
		g.EachEdge(u, func(v int, w int) bool {
			if !onPath[v] {
				walk(v, total+float64(w))
			}

			return true
		})
		delete(onPath, u)
	}
	walk(source, 0)

	return best
}

func TestFindPath_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(202608))
	const nodes = 8

	for trial := 0; trial < 40; trial++ {
		g := core.New[int, int]()
		for n := 0; n < nodes; n++ {
			g.AddNode(n)
		}
		edges := 6 + rng.Intn(14)
		for i := 0; i < edges; i++ {
			u, v := rng.Intn(nodes), rng.Intn(nodes)
			if u == v {
				continue
			}
			g.AddEdge(u, v, 1+rng.Intn(10))
		}

		want := bruteForceMin(g, 0, nodes-1)
		info, err := pathfind.FindPath(g, 0, nodes-1)

		if math.IsInf(want, 1) {
			if !errors.Is(err, pathfind.ErrNoPath) {
				t.Fatalf("trial %d: expected ErrNoPath, got %v (info %+v)", trial, err, info)
			}

			continue
		}
		if err != nil {
			t.Fatalf("trial %d: unexpected error %v (brute force found %v)", trial, err, want)
		}
		if info.TotalCost != want {
			t.Fatalf("trial %d: TotalCost = %v; brute force = %v", trial, info.TotalCost, want)
		}
	}
}
