// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package verify independently re-derives counts the core ZDD engine
// produces by subsetting: direct path enumeration plus canonical-form
// deduplication (property P7), and a Kirchhoff matrix-tree cross-check
// (property P1). It exists for tests and manual spot-checks on small
// graphs; it is explicitly not part of the normal execution path (see the
// core package's subset-vs-enumerate duality design note), since
// enumerating paths one at a time defeats the purpose of a decision
// diagram on any graph large enough to need one.
package verify

import cntun "github.com/ShiotaTakumi/CountingNonoverlappingUnfoldings"

// EnumeratePaths walks dd from its root down to the terminals, following
// every branch, and returns the sorted edge-index set of every path that
// reaches the true terminal. edges is the total edge count the ZDD was
// built over (its root level).
func EnumeratePaths(dd *cntun.DD, edges int) [][]int {
	var out [][]int
	var walk func(n, level int, prefix []int)
	walk = func(n, level int, prefix []int) {
		if level == 0 {
			if n == cntun.True {
				path := make([]int, len(prefix))
				copy(path, prefix)
				out = append(out, path)
			}
			return
		}
		var low, high int
		if dd.NodeLevel(n) == level {
			low, high = dd.Children(n)
		} else {
			// n's level is below `level`: zero-suppressed out, so the
			// 1-branch is dead and the 0-branch continues at n unchanged.
			low, high = n, cntun.False
		}
		i := edges - level
		if low != cntun.False {
			walk(low, level-1, prefix)
		}
		if high != cntun.False {
			next := make([]int, len(prefix)+1)
			copy(next, prefix)
			next[len(prefix)] = i
			walk(high, level-1, next)
		}
	}
	walk(dd.Root(), edges, nil)
	return out
}
