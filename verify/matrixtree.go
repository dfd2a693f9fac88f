// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package verify

import (
	"math"

	"gonum.org/v1/gonum/mat"

	cntun "github.com/ShiotaTakumi/CountingNonoverlappingUnfoldings"
)

// SpanningTreeCountKirchhoff computes the number of spanning trees of g by
// Kirchhoff's matrix-tree theorem: any cofactor of the graph Laplacian
// D - A. It cross-checks property P1 independently of the ZDD engine.
//
// The result is a float64, an approximate double-precision determinant
// rather than an exact BigInt computation: acceptable here because this
// cross-check is meant for the small fixture graphs exercised in tests,
// never for production-scale counts, where spanning_tree_count is the
// authoritative BigInt value from the ZDD engine.
func SpanningTreeCountKirchhoff(g *cntun.Graph) float64 {
	v := g.NumVertices()
	if v <= 1 {
		return 1
	}
	laplacian := mat.NewDense(v, v, nil)
	for _, e := range g.Edges() {
		laplacian.Set(e.U, e.U, laplacian.At(e.U, e.U)+1)
		laplacian.Set(e.V, e.V, laplacian.At(e.V, e.V)+1)
		laplacian.Set(e.U, e.V, laplacian.At(e.U, e.V)-1)
		laplacian.Set(e.V, e.U, laplacian.At(e.V, e.U)-1)
	}
	minor := mat.NewDense(v-1, v-1, nil)
	for i := 0; i < v-1; i++ {
		for j := 0; j < v-1; j++ {
			minor.Set(i, j, laplacian.At(i, j))
		}
	}
	return math.Round(mat.Det(minor))
}
