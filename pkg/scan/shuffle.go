package scan

import (
	ferrors "github.com/floretscan/floret/pkg/errors"

	"github.com/floretscan/floret/pkg/perm"
)

// Shuffle reorders x into a two-sided interleaved pattern in batches of n.
//
// The sequence is split into two halves (the first taking the extra
// element when the length is odd), the second half is reversed, both are
// chunked into consecutive groups of n, and the chunks are interleaved
// pairwise: a0, b0, a1, b1, ... When one side runs out of chunks the
// remaining chunks of the other are appended in order.
//
// This is the dose-balancing primitive behind the higher symmetry
// orders: it pairs early angles from one side of the scan with late,
// wrap-reversed angles from the other so cumulative dose stays dispersed
// symmetrically.
//
// The batch size must satisfy 0 < n <= len(x)/2; violating the bound is
// a configuration error. The output is always a permutation of the
// input with the same length.
func Shuffle(x []int, n int) ([]int, error) {
	if n <= 0 || n > len(x)/2 {
		return nil, ferrors.New(ferrors.ErrCodeBatchSize,
			"batch size %d out of range (0, %d] for sequence of length %d", n, len(x)/2, len(x))
	}

	half := (len(x) + 1) / 2
	a := x[:half]
	b := perm.Reversed(x[half:])

	out := make([]int, 0, len(x))
	for start := 0; start < len(a) || start < len(b); start += n {
		out = append(out, batch(a, start, n)...)
		out = append(out, batch(b, start, n)...)
	}
	return out, nil
}

// batch returns the chunk s[start:start+n], clipped to the slice bounds.
func batch(s []int, start, n int) []int {
	if start >= len(s) {
		return nil
	}
	return s[start:min(start+n, len(s))]
}
