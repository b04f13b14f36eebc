// Package pathfind: the priority frontier.
//
// A min-priority queue ordered lexicographically by (priority value,
// insertion sequence number). The sequence number is assigned at push
// time from a counter that only grows within one search, which gives a
// total order even when priorities tie (without requiring nodes or
// payloads to be orderable) and deterministic tie resolution: among
// equal-priority entries the one pushed earlier pops first.

package pathfind

import "container/heap"

// frontierEntry is one candidate for visitation. Entries are created
// and consumed entirely within a single search invocation.
type frontierEntry[N comparable, E any] struct {
	// priority orders the heap: true cost plus heuristic estimate.
	priority float64

	// seq breaks priority ties in push order.
	seq uint64

	// node is the candidate node.
	node N

	// cost is the cumulative true cost from the source to node,
	// excluding any heuristic component.
	cost float64

	// pred is the predecessor to finalize if this entry wins.
	pred Predecessor[N, E]
}

// frontier is a lazy min-heap of candidate entries. Stale duplicates,
// pushed again after a node's cost improved, are not removed in place;
// the engine discards them when popped.
type frontier[N comparable, E any] struct {
	h frontierHeap[N, E]
	// nextSeq is the sequence number assigned to the next push.
	nextSeq uint64
}

// Push inserts a fresh entry, stamping it with the next sequence number.
// Complexity: O(log n).
func (f *frontier[N, E]) Push(priority, cost float64, node N, pred Predecessor[N, E]) {
	entry := &frontierEntry[N, E]{
		priority: priority,
		seq:      f.nextSeq,
		node:     node,
		cost:     cost,
		pred:     pred,
	}
	f.nextSeq++
	heap.Push(&f.h, entry)
}

// PopMin removes and returns the lowest entry, or false when empty.
// Complexity: O(log n).
func (f *frontier[N, E]) PopMin() (*frontierEntry[N, E], bool) {
	if len(f.h) == 0 {
		return nil, false
	}

	return heap.Pop(&f.h).(*frontierEntry[N, E]), true
}

// Peek returns the lowest entry without removing it, or false when empty.
// Complexity: O(1).
func (f *frontier[N, E]) Peek() (*frontierEntry[N, E], bool) {
	if len(f.h) == 0 {
		return nil, false
	}

	return f.h[0], true
}

// Empty reports whether the frontier holds no entries.
func (f *frontier[N, E]) Empty() bool { return len(f.h) == 0 }

// Len returns the number of entries, stale duplicates included.
func (f *frontier[N, E]) Len() int { return len(f.h) }

// frontierHeap implements heap.Interface with the composite
// (priority, seq) ordering.
type frontierHeap[N comparable, E any] []*frontierEntry[N, E]

func (h frontierHeap[N, E]) Len() int { return len(h) }

func (h frontierHeap[N, E]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h frontierHeap[N, E]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap[N, E]) Push(x interface{}) {
	*h = append(*h, x.(*frontierEntry[N, E]))
}

func (h *frontierHeap[N, E]) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return entry
}
