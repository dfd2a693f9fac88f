// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cntun

// ProductState pairs the states of two specifications walked in lockstep,
// one level at a time.
type ProductState[A State, B State] struct {
	First  A
	Second B
}

// Key concatenates both component keys around a separator byte. The byte
// can also occur inside either key (both are binary packings), so
// distinctness rests on every First key of one spec having the same
// length, which holds for the fixed-width packings in this package; the
// engine needs distinctness, not parseability.
func (p ProductState[A, B]) Key() string {
	return p.First.Key() + "\x00" + p.Second.Key()
}

// Intersection composes two specifications sharing the same root level
// into one whose language is the intersection of both: a path survives
// only if neither component prunes it. The memory-partitioned driver uses
// this to build SpanningTree restricted to one EdgeRestrictor partition
// directly, rather than building the unrestricted spanning-tree ZDD and
// subsetting it afterward.
type Intersection[A State, B State] struct {
	first  Spec[A]
	second Spec[B]
}

// NewIntersection composes first and second. Both must report the same
// root level; every specification in this package decrements by exactly
// one level per step, so compositions built from them naturally satisfy
// this.
func NewIntersection[A State, B State](first Spec[A], second Spec[B]) *Intersection[A, B] {
	return &Intersection[A, B]{first: first, second: second}
}

// Root returns the paired root states; it panics if first and second
// disagree on the root level, which would indicate the two specs were not
// built over the same edge sequence.
func (it *Intersection[A, B]) Root() (ProductState[A, B], int) {
	sa, la := it.first.Root()
	sb, lb := it.second.Root()
	if la != lb {
		panic("cntun: Intersection requires specs with the same root level")
	}
	return ProductState[A, B]{First: sa, Second: sb}, la
}

// Child advances both components one level and combines their outcomes:
// Prune if either prunes, Accept only if both accept, otherwise the shared
// next level with both continuation states.
func (it *Intersection[A, B]) Child(state ProductState[A, B], level, value int) (ProductState[A, B], int) {
	na, la := it.first.Child(state.First, level, value)
	if la == Prune {
		return ProductState[A, B]{}, Prune
	}
	nb, lb := it.second.Child(state.Second, level, value)
	if lb == Prune {
		return ProductState[A, B]{}, Prune
	}
	if la == Accept && lb == Accept {
		return ProductState[A, B]{}, Accept
	}
	if la == Accept || lb == Accept || la != lb {
		panic("cntun: Intersection requires specs that decrement level in lockstep")
	}
	return ProductState[A, B]{First: na, Second: nb}, la
}
