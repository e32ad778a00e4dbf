// Package permute enumerates the distinct permutations of a sequence by
// stepping to the lexicographically previous arrangement in place.
package permute

import (
	"iter"
	"slices"
)

// Prev rearranges s into the lexicographically previous permutation under
// cmp and reports whether one existed. When s is already the smallest
// arrangement it is reset to the largest (descending) one and Prev returns false.
func Prev[T any](s []T, cmp func(a, b T) int) bool {
	n := len(s)
	if n < 2 {
		return false
	}

	// Longest non-decreasing suffix starts at i
	i := n - 1
	for i > 0 && cmp(s[i-1], s[i]) <= 0 {
		i--
	}
	if i == 0 {
		slices.Reverse(s)
		return false
	}

	// Rightmost element smaller than the pivot
	j := n - 1
	for cmp(s[j], s[i-1]) >= 0 {
		j--
	}
	s[i-1], s[j] = s[j], s[i-1]
	slices.Reverse(s[i:])
	return true
}

// Descending yields every distinct permutation of s exactly once, starting
// from s sorted in descending order and ending with the ascending order.
// The yielded slice is s itself, rearranged in place; copy it to retain it.
// An empty or single-element s is yielded once.
func Descending[T any](s []T, cmp func(a, b T) int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		slices.SortFunc(s, func(a, b T) int { return cmp(b, a) })
		for {
			if !yield(s) {
				return
			}
			if !Prev(s, cmp) {
				return
			}
		}
	}
}

// Count returns the number of distinct permutations of s under cmp, that is
// n! divided by the factorial of each run of equal elements. It saturates at
// the largest int.
func Count[T any](s []T, cmp func(a, b T) int) int {
	sorted := slices.Clone(s)
	slices.SortFunc(sorted, cmp)

	const maxInt = int(^uint(0) >> 1)
	total := 1
	run := 0
	for i := range sorted {
		if i > 0 && cmp(sorted[i-1], sorted[i]) == 0 {
			run++
		} else {
			run = 1
		}
		// total * (i+1) / run stays integral at every step
		k := i + 1
		if total > maxInt/k {
			return maxInt
		}
		total = total * k / run
	}
	return total
}
