// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cntun

// BurnsideResult is the outcome of aggregating |T_g| over a group of
// automorphisms: the decimal-string sum, the floor-divided quotient, and
// the per-automorphism invariant counts (index-aligned with the input
// permutation list).
type BurnsideResult struct {
	Sum             string
	Quotient        string
	InvariantCounts []string
	GroupOrder      int
	Inconsistent    bool
}

// invariantCounts computes |T_g| for every automorphism against one ZDD,
// without summing or dividing: record 0 if zero-flagged, the full
// cardinality if it is the identity permutation, or else the cardinality
// of reduced restricted to that permutation's SymmetryFilter. Shared by
// Burnside (a single ZDD) and the partitioned driver (one call per
// partition, summed index-wise before dividing once over the grand total).
func invariantCounts(reduced *DD, edges int, permutations [][]int, zeroFlags []bool, progress ProgressFunc) ([]string, error) {
	counts := make([]string, len(permutations))
	for k, perm := range permutations {
		switch {
		case zeroFlags != nil && k < len(zeroFlags) && zeroFlags[k]:
			counts[k] = "0"
		case isIdentity(perm):
			counts[k] = Cardinality(reduced)
		default:
			filter, err := NewSymmetryFilter(edges, perm)
			if err != nil {
				return nil, err
			}
			subset, err := Subset(Copy(reduced), filter)
			if err != nil {
				return nil, err
			}
			fixed, err := Reduce(subset)
			if err != nil {
				return nil, err
			}
			counts[k] = Cardinality(fixed)
		}
		progress.report("automorphism", k+1, len(permutations))
	}
	return counts, nil
}

// Burnside runs Burnside's lemma over a single (already overlap-filtered,
// if applicable) ZDD: it computes invariantCounts, sums them, and divides
// by groupOrder.
//
// permutations holds one edge permutation per automorphism; zeroFlags, if
// non-nil, must be the same length and pre-certifies |T_g| = 0 for the
// flagged entries, letting the engine skip the ZDD pass for them.
// groupOrder is |Aut(Γ)|, used only for the final division and the
// divisibility check; it need not equal len(permutations) (a semantic
// warning, not an error).
//
// If the sum is not divisible by groupOrder, Burnside returns both a
// usable result (Quotient is the floor division, Inconsistent is true) and
// a non-nil error wrapping ErrInconsistent: this is a flagged invariant
// violation, not a failure that discards output.
func Burnside(reduced *DD, edges int, permutations [][]int, zeroFlags []bool, groupOrder int, progress ProgressFunc) (BurnsideResult, error) {
	counts, err := invariantCounts(reduced, edges, permutations, zeroFlags, progress)
	if err != nil {
		return BurnsideResult{}, err
	}
	return sumInvariantCounts(counts, groupOrder)
}

func sumInvariantCounts(counts []string, groupOrder int) (BurnsideResult, error) {
	sum := "0"
	for _, c := range counts {
		sum = bigAdd(sum, c)
	}
	quotient, remainder := bigDivide(sum, groupOrder)
	result := BurnsideResult{
		Sum:             sum,
		Quotient:        quotient,
		InvariantCounts: counts,
		GroupOrder:      groupOrder,
		Inconsistent:    remainder != 0,
	}
	if result.Inconsistent {
		return result, inconsistentErrorf(sum, groupOrder, remainder)
	}
	return result, nil
}

func isIdentity(perm []int) bool {
	for i, p := range perm {
		if p != i {
			return false
		}
	}
	return true
}
