// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cntun

// Accept and Prune are the terminal sentinels a Spec's Child method returns
// in place of a next level: Accept routes the path to the 1-terminal
// (member of the language), Prune routes it to the 0-terminal (not a
// member). Any other returned value is the next level to continue
// building at. Every specification in this package decrements by exactly
// one level per step; none of them skip levels.
const (
	Accept = -1
	Prune  = 0
)

// State is the capability every per-path state of a ZDD specification must
// provide: a comparable key, so the engine can merge equivalent states
// discovered at the same level into a single shared node instead of
// building a separate subtree for each.
type State interface {
	Key() string
}

// Spec is the recursive capability set a ZDD specification exposes to the
// engine: Root gives the initial state and level; Child advances one level
// given a 0/1 branch decision, returning either a continuation state and
// level or one of the Accept/Prune sentinels above.
//
// Where the reference algorithm this package is derived from models this
// as a C++ template capability (DdSpec-style getRoot/getChild), Go
// generics serve the same role directly: SpanningTree, UnfoldingFilter,
// SymmetryFilter and EdgeRestrictor each implement Spec with their own
// state type, and the engine in zdd.go is parametric over S — it only
// ever calls Root, Child and S.Key, never inspecting a state's shape.
type Spec[S State] interface {
	Root() (S, int)
	Child(state S, level, value int) (S, int)
}
