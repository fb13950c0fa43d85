package wd

import (
	"container/heap"

	"github.com/katalvlaran/retime/core"
	"github.com/katalvlaran/retime/matrix"
)

// Build runs the modified Dijkstra of §4.4 from every vertex of g and
// returns the filled W and D matrices (N×N, where N = g.NumVertices()).
func Build(g *core.Graph) (*matrix.Dense, *matrix.Dense, error) {
	n := g.NumVertices()
	W, err := matrix.NewFilled(n, matrix.INF)
	if err != nil {
		return nil, nil, err
	}
	D, err := matrix.NewDense(n)
	if err != nil {
		return nil, nil, err
	}

	for s := 0; s < n; s++ {
		if err := row(g, s, W, D); err != nil {
			return nil, nil, err
		}
	}

	return W, D, nil
}

// row fills row s of W and D via one run of the modified Dijkstra.
func row(g *core.Graph, s int, W, D *matrix.Dense) error {
	n := g.NumVertices()
	parent := make([]int, n)
	lastProcessedD := make([]int64, n)
	for v := range parent {
		parent[v] = -1
		lastProcessedD[v] = -1
	}

	delay, err := g.Delay(s)
	if err != nil {
		return err
	}
	W.MustSet(s, s, 0)
	D.MustSet(s, s, delay)

	var seq uint64
	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &item{vertex: s, dist: 0, seq: seq})
	seq++

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(*item)
		u := it.vertex

		// Stale distance: a better W[s][u] has since been found.
		if it.dist > W.MustAt(s, u) {
			continue
		}
		// Already relaxed u's out-edges at this exact D[s][u] value.
		if lastProcessedD[u] == D.MustAt(s, u) {
			continue
		}
		lastProcessedD[u] = D.MustAt(s, u)

		edges, err := g.OutEdges(u)
		if err != nil {
			return err
		}
		for _, e := range edges {
			v := e.To
			if onParentChain(parent, s, u, v) {
				continue
			}

			candW := W.MustAt(s, u) + e.Weight
			dv, err := g.Delay(v)
			if err != nil {
				return err
			}
			candD := dv + D.MustAt(s, u)

			switch {
			case candW < W.MustAt(s, v):
				W.MustSet(s, v, candW)
				D.MustSet(s, v, candD)
				parent[v] = u
				heap.Push(&pq, &item{vertex: v, dist: candW, seq: seq})
				seq++
			case candW == W.MustAt(s, v) && candD > D.MustAt(s, v):
				D.MustSet(s, v, candD)
				parent[v] = u
				heap.Push(&pq, &item{vertex: v, dist: candW, seq: seq})
				seq++
			}
		}
	}

	return nil
}

// onParentChain reports whether adopting u as v's parent would close a
// cycle in the parent-pointer structure: either v is the row's source s
// or v equals u (both nonsensical parents), or u already appears while
// walking parent[v], parent[parent[v]], ... (§4.4's cycle-avoidance
// rule, checked before any delay tie-break or distance-improving update).
func onParentChain(parent []int, s, u, v int) bool {
	if v == s || v == u {
		return true
	}
	for cur := parent[v]; cur != -1; cur = parent[cur] {
		if cur == u {
			return true
		}
	}

	return false
}
