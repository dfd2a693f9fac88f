// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cntun

import (
	"strings"
	"testing"
)

//********************************************************************************************

// Partitioning the 4-cycle's spanning trees by the first two edges' bit
// pattern must sum back to the unrestricted count: every path falls into
// exactly one of the four partitions.
func TestIntersectionEdgeRestrictorPartitionsSumToTotal(t *testing.T) {
	g, err := ReadGraph(strings.NewReader(square))
	if err != nil {
		t.Fatalf("ReadGraph: unexpected error %v", err)
	}
	fm := NewFrontierManager(g)

	sum := "0"
	for pattern := 0; pattern < 4; pattern++ {
		composed := NewIntersection[SpanningTreeState, EdgeRestrictorState](
			NewSpanningTree(g, fm),
			NewEdgeRestrictor(g.NumEdges(), 2, pattern),
		)
		dd, err := Build[ProductState[SpanningTreeState, EdgeRestrictorState]](composed)
		if err != nil {
			t.Fatalf("Build: unexpected error %v", err)
		}
		sum = bigAdd(sum, Cardinality(dd))
	}
	if sum != "4" {
		t.Errorf("expected partitions to sum to 4, actual %s", sum)
	}
}

// Fixing the prefix pattern to 0b00 (edges 0 and 1 both excluded) leaves an
// empty partition: every 4-cycle spanning tree omits exactly one edge.
func TestIntersectionEdgeRestrictorSinglePartition(t *testing.T) {
	g, err := ReadGraph(strings.NewReader(square))
	if err != nil {
		t.Fatalf("ReadGraph: unexpected error %v", err)
	}
	fm := NewFrontierManager(g)
	// pattern 0b00: edges 0 and 1 both excluded. The only spanning tree
	// excluding edge 0 keeps edges 1,2,3, so it lies in pattern 0b01
	// (edge0=0, edge1=1), and this partition (edge0=0, edge1=0) is empty.
	composed := NewIntersection[SpanningTreeState, EdgeRestrictorState](
		NewSpanningTree(g, fm),
		NewEdgeRestrictor(g.NumEdges(), 2, 0),
	)
	dd, err := Build[ProductState[SpanningTreeState, EdgeRestrictorState]](composed)
	if err != nil {
		t.Fatalf("Build: unexpected error %v", err)
	}
	if actual := Cardinality(dd); actual != "0" {
		t.Errorf("expected 0 trees with edges 0 and 1 both excluded, actual %s", actual)
	}
}

func TestIntersectionRootLevelMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected Root to panic on mismatched root levels")
		}
	}()
	composed := NewIntersection[toyState, toyState](powerset{n: 3}, powerset{n: 2})
	composed.Root()
}

func TestEdgeRestrictorAcceptsMatchingPrefix(t *testing.T) {
	r := NewEdgeRestrictor(4, 2, 0b10)
	state, level := r.Root()
	// edge 0 must be 1, edge 1 must be 0, to match pattern 0b10.
	state, level = r.Child(state, level, 1)
	if level == Prune {
		t.Fatalf("expected edge 0 = 1 to match pattern 0b10")
	}
	state, level = r.Child(state, level, 0)
	if level == Prune {
		t.Fatalf("expected edge 1 = 0 to match pattern 0b10")
	}
	state, level = r.Child(state, level, 1)
	if level == Prune {
		t.Fatalf("expected edges beyond depth to be unconstrained")
	}
	_, level = r.Child(state, level, 1)
	if level != Accept {
		t.Errorf("expected the final edge to accept, actual %d", level)
	}
}

func TestEdgeRestrictorPrunesMismatchedPrefix(t *testing.T) {
	r := NewEdgeRestrictor(4, 2, 0b10)
	state, level := r.Root()
	_, level = r.Child(state, level, 0) // edge 0 = 0, pattern wants 1
	if level != Prune {
		t.Errorf("expected prune on mismatched prefix bit, actual %d", level)
	}
}
