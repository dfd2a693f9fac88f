// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cntun

import "math/big"

// falseTerminal and trueTerminal are the fixed node ids of the two ZDD
// terminals, always kept at index 0 and 1 of the node arena.
const (
	falseTerminal = 0
	trueTerminal  = 1
)

// ddnode is one entry of the node arena: a level plus two child indices,
// never owning pointers. Both terminals live in the arena too, at level 0,
// which lets every level comparison in this file treat "terminal" and
// "real node whose level is below what we expected" uniformly (see
// Subset).
type ddnode struct {
	level, low, high int
}

// DD is a reduced, zero-suppressed decision diagram: a node arena plus the
// unicity table used while building it. Nodes are allocated in a flat
// slice and referenced by index; there is no incremental garbage
// collector; a DD is simply dropped by the caller when no longer needed.
type DD struct {
	nodes  []ddnode
	unique map[tripleKey]int
	root   int
	cfg    configs
}

type tripleKey struct {
	level, low, high int
}

func newDDWithConfig(c configs) *DD {
	nodes := make([]ddnode, 2, c.nodesize)
	nodes[0] = ddnode{level: 0, low: falseTerminal, high: falseTerminal}
	nodes[1] = ddnode{level: 0, low: trueTerminal, high: trueTerminal}
	return &DD{nodes: nodes, unique: make(map[tripleKey]int), cfg: c}
}

func newDD() *DD {
	return newDDWithConfig(defaultConfigs())
}

// ensureCapacity grows the node arena when free capacity drops below the
// configured minfreenodes ratio, in increments bounded by maxnodeincrease
// (0 = unbounded), per the nodesize/maxnodeincrease/minfreenodes tuning
// knobs from config.go. A resize that would pass maxnodesize (0 =
// unbounded) is clamped to it; once the arena is already at maxnodesize,
// it returns an error wrapping ErrOutOfMemory instead of growing.
func (dd *DD) ensureCapacity() error {
	c := cap(dd.nodes)
	free := c - len(dd.nodes)
	if c > 0 && free*100 >= dd.cfg.minfreenodes*c {
		return nil
	}
	if dd.cfg.maxnodesize > 0 && c >= dd.cfg.maxnodesize {
		return outOfMemoryErrorf(c, dd.cfg.maxnodesize)
	}
	growth := c
	if growth == 0 {
		growth = defaultNodesize
	}
	if dd.cfg.maxnodeincrease > 0 && growth > dd.cfg.maxnodeincrease {
		growth = dd.cfg.maxnodeincrease
	}
	newSize := c + growth
	if dd.cfg.maxnodesize > 0 && newSize > dd.cfg.maxnodesize {
		newSize = dd.cfg.maxnodesize
	}
	if newSize <= c {
		return outOfMemoryErrorf(c, dd.cfg.maxnodesize)
	}
	grown := make([]ddnode, len(dd.nodes), newSize)
	copy(grown, dd.nodes)
	dd.nodes = grown
	return nil
}

// Root returns the node id of T's root.
func (dd *DD) Root() int { return dd.root }

// NumNodes reports the size of the node arena, including the two
// terminals; useful for progress logging.
func (dd *DD) NumNodes() int { return len(dd.nodes) }

// False and True are the exported terminal node ids, for callers outside
// this package (the verify package's path enumeration) that walk a DD's
// structure directly instead of only calling Subset/Cardinality.
const (
	False = falseTerminal
	True  = trueTerminal
)

// NodeLevel returns the level recorded for node n. For a node reached
// while processing a higher level than this, the caller is in the
// zero-suppression case described atop ddnode: n should be treated as
// continuing unchanged on the 0-branch and as the false terminal on the
// 1-branch.
func (dd *DD) NodeLevel(n int) int { return dd.nodes[n].level }

// Children returns the low and high child ids of node n.
func (dd *DD) Children(n int) (low, high int) {
	return dd.nodes[n].low, dd.nodes[n].high
}

// makeNode returns the id of the (level, low, high) node, creating it if
// necessary. It applies both ZDD reduction rules as it goes: a node whose
// high child is the false terminal is redundant (zero-suppression) and is
// elided in favor of its low child directly; otherwise nodes are shared
// through the unicity table so no two live nodes have the same triple. It
// returns an error wrapping ErrOutOfMemory if a new node is needed and the
// arena cannot grow to hold it.
func (dd *DD) makeNode(level, low, high int) (int, error) {
	if high == falseTerminal {
		return low, nil
	}
	key := tripleKey{level: level, low: low, high: high}
	if id, ok := dd.unique[key]; ok {
		return id, nil
	}
	if err := dd.ensureCapacity(); err != nil {
		return 0, err
	}
	id := len(dd.nodes)
	dd.nodes = append(dd.nodes, ddnode{level: level, low: low, high: high})
	dd.unique[key] = id
	return id, nil
}

// childRef records, for one branch of one discovered state, either a
// terminal sentinel or the key of the next-level state to resolve once
// that level has been built.
type childRef struct {
	terminal int // 1 = accept, 0 = prune, -1 = not terminal, see key
	key      string
}

// Build performs a top-down expansion of spec: level by level from the
// root level down to 1, states are discovered and deduplicated by Key();
// nodes are then assembled bottom-up (level 1 first) through makeNode, so
// the result is reduced by construction rather than as a separate pass.
func Build[S State](spec Spec[S], opts ...Option) (*DD, error) {
	c, err := newConfigs(opts...)
	if err != nil {
		return nil, err
	}
	dd := newDDWithConfig(c)
	rootState, rootLevel := spec.Root()
	if rootLevel <= 0 {
		dd.root = falseTerminal
		return dd, nil
	}

	// Top-down discovery: childRefs[level][key] holds both branches of the
	// state named key at that level.
	childRefs := make(map[int]map[string][2]childRef, rootLevel)
	currentStates := map[string]S{rootState.Key(): rootState}
	for level := rootLevel; level >= 1; level-- {
		refs := make(map[string][2]childRef, len(currentStates))
		nextStates := make(map[string]S)
		for key, state := range currentStates {
			var pair [2]childRef
			for v := 0; v < 2; v++ {
				ns, nl := spec.Child(state, level, v)
				switch nl {
				case Accept:
					pair[v] = childRef{terminal: 1}
				case Prune:
					pair[v] = childRef{terminal: 0}
				default:
					nk := ns.Key()
					pair[v] = childRef{terminal: -1, key: nk}
					if _, ok := nextStates[nk]; !ok {
						nextStates[nk] = ns
					}
				}
			}
			refs[key] = pair
		}
		childRefs[level] = refs
		currentStates = nextStates
	}

	// Bottom-up assembly: nodeIDs[level][key] is filled once level's
	// children (all at level-1 or terminals) are known.
	nodeIDs := make(map[int]map[string]int, rootLevel+1)
	resolve := func(ref childRef, childLevel int) int {
		switch ref.terminal {
		case 1:
			return trueTerminal
		case 0:
			return falseTerminal
		default:
			return nodeIDs[childLevel][ref.key]
		}
	}
	for level := 1; level <= rootLevel; level++ {
		refs := childRefs[level]
		ids := make(map[string]int, len(refs))
		for key, pair := range refs {
			low := resolve(pair[0], level-1)
			high := resolve(pair[1], level-1)
			id, err := dd.makeNode(level, low, high)
			if err != nil {
				return nil, err
			}
			ids[key] = id
		}
		nodeIDs[level] = ids
	}

	dd.root = nodeIDs[rootLevel][rootState.Key()]
	return dd, nil
}

// Reduce rebuilds dd bottom-up through a fresh unicity table, collapsing
// any redundant or unshared nodes. Diagrams produced by Build or Subset in
// this package are already canonical, so Reduce is idempotent on them; it
// exists as its own operation because the reference pipeline calls it
// explicitly after every subsetting step, and because a DD assembled by
// other means is not guaranteed to be canonical without it. It returns an
// error wrapping
// ErrOutOfMemory if the rebuilt arena cannot grow enough to hold the
// result.
func Reduce(dd *DD) (*DD, error) {
	out := newDDWithConfig(dd.cfg)
	memo := map[int]int{falseTerminal: falseTerminal, trueTerminal: trueTerminal}
	var walkErr error
	var walk func(n int) int
	walk = func(n int) int {
		if id, ok := memo[n]; ok {
			return id
		}
		node := dd.nodes[n]
		low := walk(node.low)
		high := walk(node.high)
		if walkErr != nil {
			return 0
		}
		id, err := out.makeNode(node.level, low, high)
		if err != nil {
			walkErr = err
			return 0
		}
		memo[n] = id
		return id
	}
	out.root = walk(dd.root)
	if walkErr != nil {
		return nil, walkErr
	}
	return out, nil
}

// Copy returns a structural clone of dd sharing no mutable state with it:
// a fresh node slice and unicity table with the same contents.
func Copy(dd *DD) *DD {
	out := &DD{
		nodes:  make([]ddnode, len(dd.nodes)),
		unique: make(map[tripleKey]int, len(dd.unique)),
		root:   dd.root,
		cfg:    dd.cfg,
	}
	copy(out.nodes, dd.nodes)
	for k, v := range dd.unique {
		out.unique[k] = v
	}
	return out
}

// Subset intersects dd with the language accepted by spec: the result
// accepts exactly the paths accepted by both. It walks dd and spec in
// lockstep by level; where dd's zero-suppression has elided one or more
// intermediate levels (a node's recorded level is below the level
// currently being processed), those levels are treated as having been
// implicitly decided 0, which is exactly what elision means, and spec is
// still asked to process them so its own state stays correct. It returns
// an error wrapping ErrOutOfMemory if the result arena cannot grow enough
// to hold the subset.
func Subset[S State](dd *DD, spec Spec[S]) (*DD, error) {
	out := newDDWithConfig(dd.cfg)
	rootState, rootLevel := spec.Root()

	type pairKey struct {
		node, level int
		spec        string
	}
	memo := make(map[pairKey]int)
	var walkErr error

	var walk func(n, level int, s S) int
	walk = func(n, level int, s S) int {
		if level == 0 {
			return n
		}
		key := pairKey{node: n, level: level, spec: s.Key()}
		if id, ok := memo[key]; ok {
			return id
		}
		var ddChild [2]int
		if dd.nodes[n].level == level {
			ddChild[0], ddChild[1] = dd.nodes[n].low, dd.nodes[n].high
		} else {
			// n's recorded level is below `level`: this level was
			// zero-suppressed out of dd, meaning value 1 dies here and
			// value 0 simply continues at n.
			ddChild[0], ddChild[1] = n, falseTerminal
		}

		var result [2]int
		for v := 0; v < 2; v++ {
			if ddChild[v] == falseTerminal {
				result[v] = falseTerminal
				continue
			}
			ns, nl := spec.Child(s, level, v)
			switch nl {
			case Accept:
				result[v] = ddChild[v]
			case Prune:
				result[v] = falseTerminal
			default:
				result[v] = walk(ddChild[v], nl, ns)
			}
		}
		if walkErr != nil {
			return 0
		}
		id, err := out.makeNode(level, result[0], result[1])
		if err != nil {
			walkErr = err
			return 0
		}
		memo[key] = id
		return id
	}

	out.root = walk(dd.root, rootLevel, rootState)
	if walkErr != nil {
		return nil, walkErr
	}
	return out, nil
}

// Cardinality performs the bottom-up count of accepted paths: 0-terminal
// contributes 0, 1-terminal contributes 1, every other node contributes
// count(low) + count(high). It returns a decimal string, using
// math/big.Int internally; no power-of-two scaling for skipped variables
// is needed here, because a ZDD's zero-suppression already removes
// exactly those paths from the sum.
func Cardinality(dd *DD) string {
	memo := map[int]*big.Int{
		falseTerminal: big.NewInt(0),
		trueTerminal:  big.NewInt(1),
	}
	var walk func(n int) *big.Int
	walk = func(n int) *big.Int {
		if c, ok := memo[n]; ok {
			return c
		}
		node := dd.nodes[n]
		c := new(big.Int).Add(walk(node.low), walk(node.high))
		memo[n] = c
		return c
	}
	return walk(dd.root).String()
}
