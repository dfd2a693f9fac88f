// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cntun

import (
	"strings"
	"testing"
)

//********************************************************************************************

func squareGraphForDriver(t *testing.T) *Graph {
	t.Helper()
	g, err := ReadGraph(strings.NewReader(square))
	if err != nil {
		t.Fatalf("ReadGraph: unexpected error %v", err)
	}
	return g
}

func TestRunNoFiltersNoAutomorphisms(t *testing.T) {
	g := squareGraphForDriver(t)
	result, err := Run(g, nil, nil, nil)
	if err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}
	if result.Phase4.SpanningTreeCount != "4" {
		t.Errorf("Phase4.SpanningTreeCount: expected 4, actual %s", result.Phase4.SpanningTreeCount)
	}
	if result.Phase5.FilterApplied {
		t.Errorf("Phase5.FilterApplied: expected false")
	}
	if result.Phase6.BurnsideApplied {
		t.Errorf("Phase6.BurnsideApplied: expected false")
	}
}

func TestRunWithMopeFilter(t *testing.T) {
	g := squareGraphForDriver(t)
	result, err := Run(g, [][]int{{0}}, nil, nil)
	if err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}
	if !result.Phase5.FilterApplied {
		t.Errorf("Phase5.FilterApplied: expected true")
	}
	if result.Phase5.NumMopes != 1 {
		t.Errorf("Phase5.NumMopes: expected 1, actual %d", result.Phase5.NumMopes)
	}
	if result.Phase5.NonOverlappingCount != "3" {
		t.Errorf("Phase5.NonOverlappingCount: expected 3, actual %s", result.Phase5.NonOverlappingCount)
	}
}

func TestRunWithAutomorphisms(t *testing.T) {
	g := squareGraphForDriver(t)
	automorphisms := &AutomorphismList{
		GroupOrder: 4,
		EdgePermutations: [][]int{
			{0, 1, 2, 3},
			{1, 2, 3, 0},
			{3, 0, 1, 2},
			{1, 0, 3, 2},
		},
	}
	result, err := Run(g, nil, automorphisms, nil)
	if err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}
	if !result.Phase6.BurnsideApplied {
		t.Errorf("Phase6.BurnsideApplied: expected true")
	}
	if result.Phase6.NonisomorphicCount != "1" {
		t.Errorf("Phase6.NonisomorphicCount: expected 1, actual %s", result.Phase6.NonisomorphicCount)
	}
	if result.Phase6.BurnsideSum != "4" {
		t.Errorf("Phase6.BurnsideSum: expected 4, actual %s", result.Phase6.BurnsideSum)
	}
}
