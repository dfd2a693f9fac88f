// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cntun

import "time"

// Run executes the un-partitioned pipeline: build the spanning-tree ZDD
// (phase 4), optionally intersect it with an UnfoldingFilter per MOPE
// (phase 5), and optionally aggregate a Burnside sum over an automorphism
// group (phase 6). mopes and automorphisms are independently optional:
// pass mopes == nil to skip phase 5, and an AutomorphismList with no
// permutations to skip phase 6.
func Run(g *Graph, mopes [][]int, automorphisms *AutomorphismList, progress ProgressFunc, opts ...Option) (Result, error) {
	fm := NewFrontierManager(g)
	spec := NewSpanningTree(g, fm)

	start := time.Now()
	tree, err := Build[SpanningTreeState](spec, opts...)
	if err != nil {
		return Result{}, err
	}
	buildTime := time.Since(start)

	result := Result{
		Vertices: g.NumVertices(),
		Edges:    g.NumEdges(),
		Phase4: Phase4Result{
			BuildTimeMs:       buildTime.Milliseconds(),
			SpanningTreeCount: Cardinality(tree),
		},
	}

	filtered := tree
	if len(mopes) > 0 {
		start = time.Now()
		for i, mope := range mopes {
			filter, ferr := NewUnfoldingFilter(g.NumEdges(), mope)
			if ferr != nil {
				return Result{}, ferr
			}
			subset, serr := Subset(filtered, filter)
			if serr != nil {
				return Result{}, serr
			}
			filtered, serr = Reduce(subset)
			if serr != nil {
				return Result{}, serr
			}
			progress.report("mope", i+1, len(mopes))
		}
		result.Phase5 = Phase5Result{
			FilterApplied:       true,
			NumMopes:            len(mopes),
			SubsetTimeMs:        time.Since(start).Milliseconds(),
			NonOverlappingCount: Cardinality(filtered),
		}
	} else {
		result.Phase5 = Phase5Result{FilterApplied: false}
	}

	if automorphisms != nil && len(automorphisms.EdgePermutations) > 0 {
		start = time.Now()
		burnside, berr := Burnside(filtered, g.NumEdges(), automorphisms.EdgePermutations, automorphisms.ZeroFlags, automorphisms.GroupOrder, progress)
		result.Phase6 = Phase6Result{
			BurnsideApplied:    true,
			GroupOrder:         automorphisms.GroupOrder,
			BurnsideTimeMs:     time.Since(start).Milliseconds(),
			BurnsideSum:        burnside.Sum,
			NonisomorphicCount: burnside.Quotient,
			InvariantCounts:    burnside.InvariantCounts,
		}
		if berr != nil {
			return result, berr
		}
	} else {
		result.Phase6 = Phase6Result{BurnsideApplied: false}
	}

	return result, nil
}
