// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cntun

// UnfoldingFilterState carries the residual bitmask: bits of the target
// MOPE's edge set not yet accounted for as excluded from the tree under
// construction.
type UnfoldingFilterState struct {
	mask BitMask
}

func (s UnfoldingFilterState) Key() string { return s.mask.Key() }

// UnfoldingFilter is the per-MOPE ZDD subsetter: intersecting a
// spanning-tree ZDD with one of these for each MOPE removes every tree that
// excludes all of that MOPE's edges; a tree selecting any MOPE edge survives.
//
// The residual-mask bookkeeping deliberately keeps an asymmetric prune
// polarity: the 0-branch prunes when clearing edge i empties the residual
// (every MOPE edge has then been excluded), while the 1-branch on a MOPE
// edge empties the residual without pruning, which disables the filter for
// the rest of the path.
type UnfoldingFilter struct {
	edges int
	width int
	mope  []int
}

// NewUnfoldingFilter builds the filter for one MOPE's edge index list over
// a graph with the given edge count.
func NewUnfoldingFilter(edges int, mope []int) (*UnfoldingFilter, error) {
	width, err := BitMaskWidth(edges)
	if err != nil {
		return nil, capacityErrorf(edges, edges)
	}
	return &UnfoldingFilter{edges: edges, width: width, mope: mope}, nil
}

// Root returns the mask with exactly the MOPE's edges set, at level E.
func (f *UnfoldingFilter) Root() (UnfoldingFilterState, int) {
	m := NewBitMask(f.width)
	for _, i := range f.mope {
		m.SetBit(i)
	}
	return UnfoldingFilterState{mask: m}, f.edges
}

// Child implements the residual-mask transition.
func (f *UnfoldingFilter) Child(state UnfoldingFilterState, level, value int) (UnfoldingFilterState, int) {
	i := f.edges - level
	next := UnfoldingFilterState{mask: state.mask.Clone()}

	if value == 0 {
		if !state.mask.IsZero() {
			next.mask.ClearBit(i)
			if next.mask.IsZero() {
				return UnfoldingFilterState{}, Prune
			}
		}
	} else if state.mask.TestBit(i) {
		// Selecting an edge of the MOPE breaks the unfolding outright:
		// the whole residual collapses, never to prune this branch again.
		next.mask = NewBitMask(f.width)
	}

	if level == 1 {
		return UnfoldingFilterState{}, Accept
	}
	return next, level - 1
}
