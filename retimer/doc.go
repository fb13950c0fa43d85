// Package retimer implements the Retimer stage (§4.7): given the
// retiming vector r produced by solver.Solve, it rewrites every edge of
// the main graph in place, w'(u->v) = w(u->v) + r[v+1] - r[u+1]. The +1
// offset is the same Origin-shift package pc isolates behind
// VertexOf/MainVertexOf, reused here so the bias is computed in exactly
// one place in the whole pipeline (§9).
package retimer
