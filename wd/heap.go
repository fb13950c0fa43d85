package wd

// item is a (vertex, distance) pair stored in the lazy priority queue,
// tagged with the insertion sequence number used to break ties FIFO.
type item struct {
	vertex int
	dist   int64
	seq    uint64
}

// nodePQ is a min-heap of *item ordered by dist, then by seq (FIFO among
// equal distances). Stale entries are not removed on push; row()
// discards them lazily by comparing the popped dist against the
// matrix's current value for that vertex.
type nodePQ []*item

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) {
	*pq = append(*pq, x.(*item))
}

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
