// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cntun

// PartitionResult accumulates phase-level counts over the 2^splitDepth
// partitions of the memory-partitioned driver: every count field except
// NonisomorphicCount sums (index-wise, for InvariantCounts) the
// corresponding per-partition value, and NonisomorphicCount is the grand
// BurnsideSum divided once by GroupOrder, so a PartitionResult is
// comparable directly to the un-partitioned driver's output.
type PartitionResult struct {
	SpanningTreeCount    string
	FilterApplied        bool
	NonOverlappingCount  string
	BurnsideApplied      bool
	GroupOrder           int
	BurnsideSum          string
	NonisomorphicCount   string
	InvariantCounts      []string
	BurnsideInconsistent bool
}

// RunPartitioned builds and counts one bit-pattern partition of the
// spanning-tree language at a time, via
// build(intersection(SpanningTree, EdgeRestrictor(E, splitDepth, p))) for
// each p, instead of building the unrestricted spanning-tree ZDD at once;
// peak node-arena size drops to roughly 1/2^splitDepth of the
// un-partitioned path. mopes and (permutations, zeroFlags, groupOrder) are
// independently optional: pass mopes == nil to skip phase 5, and
// permutations == nil to skip phase 6, exactly as the un-partitioned
// driver does.
func RunPartitioned(g *Graph, splitDepth int, mopes [][]int, permutations [][]int, zeroFlags []bool, groupOrder int, progress ProgressFunc, opts ...Option) (PartitionResult, error) {
	fm := NewFrontierManager(g)
	edges := g.NumEdges()
	partitions := 1 << splitDepth

	spanningSum := "0"
	overlapSum := "0"
	var invariantSum []string

	for p := 0; p < partitions; p++ {
		tree := NewSpanningTree(g, fm)
		restrictor := NewEdgeRestrictor(edges, splitDepth, p)
		composed := NewIntersection[SpanningTreeState, EdgeRestrictorState](tree, restrictor)
		dd, err := Build[ProductState[SpanningTreeState, EdgeRestrictorState]](composed, opts...)
		if err != nil {
			return PartitionResult{}, err
		}
		spanningSum = bigAdd(spanningSum, Cardinality(dd))

		filtered := dd
		if len(mopes) > 0 {
			for i, mope := range mopes {
				filter, ferr := NewUnfoldingFilter(edges, mope)
				if ferr != nil {
					return PartitionResult{}, ferr
				}
				subset, serr := Subset(filtered, filter)
				if serr != nil {
					return PartitionResult{}, serr
				}
				filtered, serr = Reduce(subset)
				if serr != nil {
					return PartitionResult{}, serr
				}
				progress.report("mope", i+1, len(mopes))
			}
			overlapSum = bigAdd(overlapSum, Cardinality(filtered))
		}

		if len(permutations) > 0 {
			counts, cerr := invariantCounts(filtered, edges, permutations, zeroFlags, progress)
			if cerr != nil {
				return PartitionResult{}, cerr
			}
			if invariantSum == nil {
				invariantSum = make([]string, len(counts))
				for i := range invariantSum {
					invariantSum[i] = "0"
				}
			}
			for i, c := range counts {
				invariantSum[i] = bigAdd(invariantSum[i], c)
			}
		}

		progress.report("partition", p+1, partitions)
	}

	out := PartitionResult{
		SpanningTreeCount: spanningSum,
		FilterApplied:     len(mopes) > 0,
		GroupOrder:        groupOrder,
	}
	if len(mopes) > 0 {
		out.NonOverlappingCount = overlapSum
	}
	if len(permutations) > 0 {
		out.BurnsideApplied = true
		out.InvariantCounts = invariantSum
		result, err := sumInvariantCounts(invariantSum, groupOrder)
		out.BurnsideSum = result.Sum
		out.NonisomorphicCount = result.Quotient
		out.BurnsideInconsistent = result.Inconsistent
		if err != nil {
			return out, err
		}
	}
	return out, nil
}
