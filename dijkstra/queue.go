package dijkstra

import "container/heap"

// vertexQueue is the priority set: an indexed binary min-heap of arena
// indices ordered by (distance, name) ascending. The name tie-break makes
// extraction order fully deterministic.
//
// pos tracks each vertex's slot so a decreased distance can be restored
// in place with heap.Fix instead of remove-then-reinsert.
type vertexQueue struct {
	items []int    // heap of arena indices
	pos   []int    // pos[v] = slot of v in items, -1 once extracted
	dist  []int64  // shared with the Tree being built
	names []string // arena index → name
}

// newVertexQueue returns a heap holding every vertex 0..len(dist)-1.
func newVertexQueue(dist []int64, names []string) *vertexQueue {
	n := len(dist)
	q := &vertexQueue{
		items: make([]int, n),
		pos:   make([]int, n),
		dist:  dist,
		names: names,
	}
	for v := 0; v < n; v++ {
		q.items[v] = v
		q.pos[v] = v
	}
	heap.Init(q)

	return q
}

// Len returns the number of queued vertices.
func (q *vertexQueue) Len() int { return len(q.items) }

// Less orders by distance, then by vertex name.
func (q *vertexQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if q.dist[a] != q.dist[b] {
		return q.dist[a] < q.dist[b]
	}

	return q.names[a] < q.names[b]
}

// Swap swaps two slots and keeps pos in sync.
func (q *vertexQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.pos[q.items[i]] = i
	q.pos[q.items[j]] = j
}

// Push appends a vertex. Called by heap.Push; x must be an int.
func (q *vertexQueue) Push(x interface{}) {
	v := x.(int)
	q.pos[v] = len(q.items)
	q.items = append(q.items, v)
}

// Pop removes the last slot. Called by heap.Pop.
func (q *vertexQueue) Pop() interface{} {
	n := len(q.items)
	v := q.items[n-1]
	q.items = q.items[:n-1]
	q.pos[v] = -1

	return v
}

// contains reports whether v is still queued (not yet finalized).
func (q *vertexQueue) contains(v int) bool { return q.pos[v] >= 0 }

// update restores heap order after dist[v] decreased.
func (q *vertexQueue) update(v int) { heap.Fix(q, q.pos[v]) }
