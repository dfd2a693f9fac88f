// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cntun

// Sentinel component-representative values for SpanningTreeState: any
// non-negative value is an active vertex id serving as its own or another
// vertex's representative.
const (
	compUninitialized int32 = -2
	compRetired       int32 = -1
)

// SpanningTreeState is the frontier data array: one entry per
// currently-on-frontier vertex slot, holding that vertex's component
// representative within the partial subgraph induced by selected edges so
// far.
type SpanningTreeState struct {
	comp []int32
}

// Key packs comp into a byte string, the way BitMask.Key packs limbs, so
// the engine can hash and dedupe states discovered at the same level.
func (s SpanningTreeState) Key() string {
	buf := make([]byte, 4*len(s.comp))
	for i, c := range s.comp {
		buf[4*i] = byte(c)
		buf[4*i+1] = byte(c >> 8)
		buf[4*i+2] = byte(c >> 16)
		buf[4*i+3] = byte(c >> 24)
	}
	return string(buf)
}

func (s SpanningTreeState) clone() SpanningTreeState {
	comp := make([]int32, len(s.comp))
	copy(comp, s.comp)
	return SpanningTreeState{comp: comp}
}

// SpanningTree is the recursive ZDD specification of spanning trees over a
// Graph's ordered edge list, using a FrontierManager to track connected
// components and final connectivity with O(frontier) state per path.
type SpanningTree struct {
	graph *Graph
	fm    *FrontierManager
}

// NewSpanningTree builds the specification for g using fm, which must have
// been derived from the same graph.
func NewSpanningTree(g *Graph, fm *FrontierManager) *SpanningTree {
	return &SpanningTree{graph: g, fm: fm}
}

// Root returns the all-uninitialized frontier state at level E.
func (sp *SpanningTree) Root() (SpanningTreeState, int) {
	comp := make([]int32, sp.fm.MaxFrontierSize())
	for i := range comp {
		comp[i] = compUninitialized
	}
	return SpanningTreeState{comp: comp}, sp.graph.NumEdges()
}

// Child implements the admit/merge/accept-or-prune/retire steps, each
// described at its step below.
func (sp *SpanningTree) Child(state SpanningTreeState, level, value int) (SpanningTreeState, int) {
	e := sp.graph.NumEdges()
	i := e - level
	edge := sp.graph.Edge(i)
	a, b := edge.U, edge.V
	next := state.clone()

	// Step A: admit vertices entering the frontier at this edge.
	for _, x := range sp.fm.Enter(i) {
		next.comp[sp.fm.Slot(x)] = int32(x)
	}

	// Step B: on selection, merge components or detect a cycle.
	if value == 1 {
		ca, cb := next.comp[sp.fm.Slot(a)], next.comp[sp.fm.Slot(b)]
		if ca == cb {
			return SpanningTreeState{}, Prune
		}
		cmin, cmax := ca, cb
		if cmin > cmax {
			cmin, cmax = cmax, cmin
		}
		for _, w := range sp.fm.Frontier(i) {
			if next.comp[sp.fm.Slot(w)] == cmin {
				next.comp[sp.fm.Slot(w)] = cmax
			}
		}
	}

	// Step C: the last edge decides acceptance from final connectivity.
	if level == 1 {
		if next.comp[sp.fm.Slot(a)] == next.comp[sp.fm.Slot(b)] {
			return SpanningTreeState{}, Accept
		}
		return SpanningTreeState{}, Prune
	}

	// Step D: retire vertices whose last incident edge is this one; each
	// must have a still-active witness sharing its component, or it would
	// leave as an isolated island.
	for _, x := range sp.fm.Leave(i) {
		cx := next.comp[sp.fm.Slot(x)]
		witness := false
		for _, w := range sp.fm.Frontier(i) {
			if w == x {
				continue
			}
			if next.comp[sp.fm.Slot(w)] == cx {
				witness = true
				break
			}
		}
		if !witness {
			return SpanningTreeState{}, Prune
		}
		next.comp[sp.fm.Slot(x)] = compRetired
	}

	return next, level - 1
}
