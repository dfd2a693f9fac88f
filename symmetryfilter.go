// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cntun

// SymmetryFilterState carries one bit per non-trivial orbit of the
// permutation this filter enforces, recording the inclusion decision made
// at that orbit's representative edge.
type SymmetryFilterState struct {
	mask BitMask
}

func (s SymmetryFilterState) Key() string { return s.mask.Key() }

// SymmetryFilter is the per-automorphism ZDD subsetter: it accepts only
// spanning trees that are unions of whole edge orbits of the given
// permutation, so that counting proceeds one automorphism's fixed trees at
// a time for the Burnside sum.
type SymmetryFilter struct {
	edges   int
	width   int
	orbitOf []int  // orbitOf[i]: orbit index of edge i, or -1 if fixed by the permutation
	isRep   []bool // isRep[i]: i is the minimum-indexed edge of its orbit
}

// NewSymmetryFilter builds the filter from a permutation of edge indices
// 0..edges-1, given as permutation[i] = image of edge i.
func NewSymmetryFilter(edges int, permutation []int) (*SymmetryFilter, error) {
	if len(permutation) != edges {
		return nil, schemaErrorf("<automorphism>", 0, "permutation has %d entries, graph has %d edges", len(permutation), edges)
	}

	orbitOf := make([]int, edges)
	isRep := make([]bool, edges)
	for i := range orbitOf {
		orbitOf[i] = -1
	}
	visited := make([]bool, edges)
	orbitCount := 0
	for i := 0; i < edges; i++ {
		if visited[i] {
			continue
		}
		var cycle []int
		for j := i; !visited[j]; j = permutation[j] {
			visited[j] = true
			cycle = append(cycle, j)
		}
		if len(cycle) <= 1 {
			continue
		}
		rep := cycle[0]
		for _, c := range cycle {
			if c < rep {
				rep = c
			}
		}
		for _, c := range cycle {
			orbitOf[c] = orbitCount
		}
		isRep[rep] = true
		orbitCount++
	}

	maskWidth := orbitCount
	if maskWidth == 0 {
		maskWidth = 1 // no non-trivial orbit: the mask is never consulted
	}
	width, err := BitMaskWidth(maskWidth)
	if err != nil {
		return nil, capacityErrorf(maskWidth, maskWidth)
	}
	return &SymmetryFilter{edges: edges, width: width, orbitOf: orbitOf, isRep: isRep}, nil
}

// Root returns the all-clear orbit mask, at level E.
func (f *SymmetryFilter) Root() (SymmetryFilterState, int) {
	return SymmetryFilterState{mask: NewBitMask(f.width)}, f.edges
}

// Child implements the representative/follower transition: the
// representative edge of an orbit records the branch's value; every other
// edge of the same orbit must agree with what was recorded, or the path is
// pruned as not a union of whole orbits. Edges fixed by the permutation
// (orbitOf == -1) carry no constraint.
func (f *SymmetryFilter) Child(state SymmetryFilterState, level, value int) (SymmetryFilterState, int) {
	i := f.edges - level
	o := f.orbitOf[i]
	next := SymmetryFilterState{mask: state.mask.Clone()}

	if o >= 0 {
		if f.isRep[i] {
			if value == 1 {
				next.mask.SetBit(o)
			}
		} else {
			included := state.mask.TestBit(o)
			if included != (value == 1) {
				return SymmetryFilterState{}, Prune
			}
		}
	}

	if level == 1 {
		return SymmetryFilterState{}, Accept
	}
	return next, level - 1
}
