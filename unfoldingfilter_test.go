// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cntun

import (
	"strings"
	"testing"
)

//********************************************************************************************

func filteredSpanningTreeCount(t *testing.T, edgeList string, mope []int) string {
	t.Helper()
	g, err := ReadGraph(strings.NewReader(edgeList))
	if err != nil {
		t.Fatalf("ReadGraph: unexpected error %v", err)
	}
	fm := NewFrontierManager(g)
	dd, err := Build[SpanningTreeState](NewSpanningTree(g, fm))
	if err != nil {
		t.Fatalf("Build: unexpected error %v", err)
	}
	filter, err := NewUnfoldingFilter(g.NumEdges(), mope)
	if err != nil {
		t.Fatalf("NewUnfoldingFilter: unexpected error %v", err)
	}
	subset, err := Subset(dd, filter)
	if err != nil {
		t.Fatalf("Subset: unexpected error %v", err)
	}
	filtered, err := Reduce(subset)
	if err != nil {
		t.Fatalf("Reduce: unexpected error %v", err)
	}
	return Cardinality(filtered)
}

// The square (4-cycle) has 4 spanning trees, each the cycle minus exactly
// one edge. A tree excludes edge 0's singleton MOPE entirely only when it is
// precisely the tree missing edge 0, so one of the four is removed.
func TestUnfoldingFilterSingleEdgeMope(t *testing.T) {
	if actual := filteredSpanningTreeCount(t, "0 1\n1 2\n2 3\n3 0\n", []int{0}); actual != "3" {
		t.Errorf("expected 3 trees including edge 0, actual %s", actual)
	}
}

// A spanning tree of the 4-cycle always has exactly 3 of its 4 edges, so no
// tree can exclude two distinct MOPE edges at once: every tree survives.
func TestUnfoldingFilterTwoEdgeMopeNeverExcludesBoth(t *testing.T) {
	if actual := filteredSpanningTreeCount(t, "0 1\n1 2\n2 3\n3 0\n", []int{0, 1}); actual != "4" {
		t.Errorf("expected all 4 trees retained, actual %s", actual)
	}
}

func TestUnfoldingFilterEmptyMopeNeverPrunes(t *testing.T) {
	if actual := filteredSpanningTreeCount(t, "0 1\n1 2\n2 3\n3 0\n", nil); actual != "4" {
		t.Errorf("expected all 4 trees retained for an empty MOPE, actual %s", actual)
	}
}

func TestNewUnfoldingFilterCapacityError(t *testing.T) {
	if _, err := NewUnfoldingFilter(449, []int{0}); err == nil {
		t.Errorf("expected capacity error for 449 edges")
	}
}
