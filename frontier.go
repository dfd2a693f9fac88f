// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cntun

import "sort"

// FrontierManager precomputes, for every edge step of a Graph, which
// vertices enter the frontier, which leave it, which are on it, and a
// stable per-vertex slot assignment. A vertex enters at its minimum-indexed
// incident edge and leaves after its maximum-indexed incident edge; slots
// are reused once a vertex leaves, so two vertices whose lifetimes never
// overlap may share a slot number.
type FrontierManager struct {
	numEdges    int
	enter       [][]int // enter[i]: vertices entering before processing edge i
	leave       [][]int // leave[i]: vertices leaving after processing edge i
	frontier    [][]int // frontier[i]: vertices on the frontier during edge i, sorted by id
	slot        []int   // slot[v]: frontier slot of v, valid while v is on the frontier
	maxFrontier int
}

// NewFrontierManager derives a FrontierManager from g's fixed edge order.
func NewFrontierManager(g *Graph) *FrontierManager {
	e := g.NumEdges()
	v := g.NumVertices()
	firstIdx := make([]int, v)
	lastIdx := make([]int, v)
	for i := range firstIdx {
		firstIdx[i] = -1
		lastIdx[i] = -1
	}
	for i, edge := range g.Edges() {
		for _, x := range [2]int{edge.U, edge.V} {
			if firstIdx[x] == -1 {
				firstIdx[x] = i
			}
			lastIdx[x] = i
		}
	}

	fm := &FrontierManager{
		numEdges: e,
		enter:    make([][]int, e),
		leave:    make([][]int, e),
		frontier: make([][]int, e),
		slot:     make([]int, v),
	}
	for x := 0; x < v; x++ {
		if firstIdx[x] == -1 {
			continue // isolated vertex, incident to no edge
		}
		fm.enter[firstIdx[x]] = append(fm.enter[firstIdx[x]], x)
		fm.leave[lastIdx[x]] = append(fm.leave[lastIdx[x]], x)
	}

	var freeSlots []int
	nextSlot := 0
	var active []int
	for i := 0; i < e; i++ {
		sort.Ints(fm.enter[i])
		for _, x := range fm.enter[i] {
			var s int
			if n := len(freeSlots); n > 0 {
				s = freeSlots[n-1]
				freeSlots = freeSlots[:n-1]
			} else {
				s = nextSlot
				nextSlot++
			}
			fm.slot[x] = s
			active = append(active, x)
		}
		snapshot := make([]int, len(active))
		copy(snapshot, active)
		sort.Ints(snapshot)
		fm.frontier[i] = snapshot

		sort.Ints(fm.leave[i])
		for _, x := range fm.leave[i] {
			freeSlots = append(freeSlots, fm.slot[x])
			for k, y := range active {
				if y == x {
					active = append(active[:k], active[k+1:]...)
					break
				}
			}
		}
	}
	fm.maxFrontier = nextSlot
	return fm
}

// Enter returns the vertices entering the frontier before processing edge
// step.
func (fm *FrontierManager) Enter(step int) []int { return fm.enter[step] }

// Leave returns the vertices leaving the frontier after processing edge
// step.
func (fm *FrontierManager) Leave(step int) []int { return fm.leave[step] }

// Frontier returns the vertices on the frontier while processing edge
// step, sorted by vertex id.
func (fm *FrontierManager) Frontier(step int) []int { return fm.frontier[step] }

// Slot returns the frontier slot assigned to vertex v, valid only while v
// is on the frontier.
func (fm *FrontierManager) Slot(v int) int { return fm.slot[v] }

// MaxFrontierSize returns max over steps of |frontier(step)|.
func (fm *FrontierManager) MaxFrontierSize() int { return fm.maxFrontier }
