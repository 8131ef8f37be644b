package search

import (
	"container/heap"

	mapset "github.com/deckarep/golang-set"
)

type entry struct {
	cell int
	f    int
	seq  int
}

// entryQueue is a min-heap on (f, seq).
type entryQueue []*entry

func (q entryQueue) Len() int { return len(q) }
func (q entryQueue) Less(i, j int) bool {
	if q[i].f == q[j].f {
		return q[i].seq < q[j].seq // FIFO entre empates
	}
	return q[i].f < q[j].f
}
func (q entryQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *entryQueue) Push(x any)   { *q = append(*q, x.(*entry)) }
func (q *entryQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}

// frontier pairs the priority queue with a membership set. An entry keeps
// the priority it was pushed with until it is popped.
type frontier struct {
	queue   entryQueue
	members mapset.Set
	nextSeq int
}

func newFrontier() *frontier {
	return &frontier{members: mapset.NewThreadUnsafeSet()}
}

func (fr *frontier) Len() int { return fr.queue.Len() }

func (fr *frontier) Contains(cell int) bool { return fr.members.Contains(cell) }

// Push enqueues cell with priority f and the next sequence number.
func (fr *frontier) Push(cell, f int) {
	e := &entry{cell: cell, f: f, seq: fr.nextSeq}
	fr.nextSeq++
	heap.Push(&fr.queue, e)
	fr.members.Add(cell)
}

// Pop removes the minimum (f, seq) entry.
func (fr *frontier) Pop() *entry {
	e := heap.Pop(&fr.queue).(*entry)
	fr.members.Remove(e.cell)
	return e
}
