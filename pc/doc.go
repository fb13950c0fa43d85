// Package pc implements PCBuilder (§4.5): it derives the PC constraint
// matrix from W, D, and the target clock period, then lays out the PC
// graph G_pc — the synthetic-origin constraint graph the solver package
// runs Bellman–Ford over to find a feasible retiming vector.
//
// G_pc has N+1 vertices: a synthetic Origin (index 0) and one vertex
// per main-graph vertex, offset by one (main-graph vertex v maps to
// G_pc vertex v+1 — see VertexOf/MainVertexOf, the single mapping
// helper spec §9 calls for so the +1 bias is never duplicated ad hoc).
// Per §9's design note on PC graph density, G_pc is stored as a dense
// (N+1)×(N+1) matrix (package matrix's Dense, which already allows
// negative entries — PC[i][j] = W[i][j]-1 is frequently negative, and
// that is the whole point: a negative self-loop at j+1==i+1 is exactly
// how an over-budget single-vertex delay surfaces as an unsolvable
// constraint graph). Pairs with no defined edge (into Origin, or
// Origin's own self-loop) are left at matrix.INF, which is
// indistinguishable from — and behaves identically to — a genuinely
// unreachable W[i][j]: both simply never win a relaxation.
package pc
