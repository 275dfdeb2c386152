// Package perm provides index-permutation utilities for the scan engine.
//
// All reordering strategies in floret operate on permutations of [0, n)
// rather than on value arrays, so the same order can be applied to the
// angle and position arrays in lockstep and the mapping back to the
// original grid stays auditable.
package perm

import "slices"

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
// This is the identity permutation used as the starting point for every
// reordering scheme.
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	result := make([]int, max(n, 0))
	for i := range result {
		result[i] = i
	}
	return result
}

// Apply returns a new slice with xs reordered by order: out[i] = xs[order[i]].
// The input slices are not modified. Apply panics if an index in order is
// out of range for xs, matching the behaviour of a direct index expression.
func Apply[T any](order []int, xs []T) []T {
	out := make([]T, len(order))
	for i, j := range order {
		out[i] = xs[j]
	}
	return out
}

// Inverse returns the inverse permutation: if order maps acquisition slot i
// to source index order[i], Inverse(order) maps a source index back to its
// acquisition slot.
//
// The result is only meaningful when IsPermutation(order) is true.
func Inverse(order []int) []int {
	inv := make([]int, len(order))
	for i, j := range order {
		inv[j] = i
	}
	return inv
}

// IsPermutation reports whether order is a permutation of [0, len(order)):
// every index appears exactly once.
func IsPermutation(order []int) bool {
	seen := make([]bool, len(order))
	for _, j := range order {
		if j < 0 || j >= len(order) || seen[j] {
			return false
		}
		seen[j] = true
	}
	return true
}

// Reversed returns a reversed copy of xs, leaving the input untouched.
func Reversed[T any](xs []T) []T {
	out := slices.Clone(xs)
	slices.Reverse(out)
	return out
}
