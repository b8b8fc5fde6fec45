// Package qsort implements an in-place partition-exchange sort over
// generic slices.
//
// Ranges are processed from an explicit work stack instead of recursion.
// Each partition places its pivot in its final slot and excludes it from
// both sub-ranges, so every pushed range is strictly smaller than its parent
// and the loop always terminates. The larger sub-range is pushed first so the
// smaller one is handled next, which bounds the stack depth by log2(n).
//
// The sort is not stable.
package qsort

import "cmp"

// Sort sorts s in ascending order.
func Sort[S ~[]E, E cmp.Ordered](s S) {
	SortFunc(s, cmp.Compare[E])
}

// SortFunc sorts s in ascending order as determined by cmp, which must
// return a negative number when a < b, a positive number when a > b and zero
// when they are equal.
func SortFunc[S ~[]E, E any](s S, cmp func(a, b E) int) {
	if len(s) < 2 {
		return
	}
	type span struct{ lo, hi int } // inclusive bounds
	stack := []span{{0, len(s) - 1}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if r.hi <= r.lo {
			continue
		}
		p := partition(s, r.lo, r.hi, cmp)
		left, right := span{r.lo, p - 1}, span{p + 1, r.hi}
		if left.hi-left.lo > right.hi-right.lo {
			stack = append(stack, left, right)
		} else {
			stack = append(stack, right, left)
		}
	}
}

// partition uses the middle element as pivot, moves it to hi and runs a
// Lomuto pass. It returns the pivot's final index.
func partition[E any](s []E, lo, hi int, cmp func(a, b E) int) int {
	mid := lo + (hi-lo)/2
	s[mid], s[hi] = s[hi], s[mid]
	i := lo
	for j := lo; j < hi; j++ {
		if cmp(s[j], s[hi]) <= 0 {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[hi] = s[hi], s[i]
	return i
}
