package scan

import (
	"math"
	"sort"

	ferrors "github.com/floretscan/floret/pkg/errors"

	"github.com/floretscan/floret/pkg/perm"
)

// DoseSymmetric returns the index order for a dose-symmetric scan over the
// given sorted angles.
//
// symmetry == 0 keeps the continuous order. symmetry >= 1 first sorts
// indices by absolute deviation of their angle from ref (stable, so ties
// keep natural index order), yielding the canonical zero-out-to-extremes
// order, then applies Shuffle symmetry-1 times with batch size 2^i on
// iteration i. Each pass doubles the interleaving granularity between
// positive- and negative-going excursions while preserving the
// zero-centred start.
//
// The returned order is a permutation of [0, len(angles)); angle values
// are looked up by applying it, never recomputed.
func DoseSymmetric(angles []float64, symmetry int, ref float64) ([]int, error) {
	if symmetry < 0 {
		return nil, ferrors.New(ferrors.ErrCodeBounds, "symmetry must be >= 0, got %d", symmetry)
	}

	order := perm.Seq(len(angles))
	if symmetry == 0 {
		return order, nil
	}

	sort.SliceStable(order, func(i, j int) bool {
		return math.Abs(angles[order[i]]-ref) < math.Abs(angles[order[j]]-ref)
	})

	for i := 0; i < symmetry-1; i++ {
		var err error
		if order, err = Shuffle(order, 1<<i); err != nil {
			return nil, ferrors.Wrap(ferrors.ErrCodeBatchSize, err,
				"symmetry %d too high for %d angles", symmetry, len(angles))
		}
	}
	return order, nil
}

// Spiral returns the index order visiting every arms-th angle in passes:
// offsets 0, 1, ... arms-1 concatenated. This is the transpose of an
// (n/arms x arms) grid read row-major into column-major traversal.
//
// arms <= 1 yields the identity order.
func Spiral(n, arms int) []int {
	if arms <= 1 {
		return perm.Seq(n)
	}
	out := make([]int, 0, n)
	for i := 0; i < arms; i++ {
		for j := i; j < n; j += arms {
			out = append(out, j)
		}
	}
	return out
}

// Swinging returns the boustrophedon variant of Spiral: the same offset
// slices are emitted back and forth, with output slice i taking
// splits[i/2] forward when i is even and splits[arms-i/2-1] reversed when
// i is odd. This minimizes mechanical travel between passes.
//
// arms <= 1 yields the identity order.
func Swinging(n, arms int) []int {
	if arms <= 1 {
		return perm.Seq(n)
	}

	splits := make([][]int, arms)
	for i := range splits {
		for j := i; j < n; j += arms {
			splits[i] = append(splits[i], j)
		}
	}

	out := make([]int, 0, n)
	for i := 0; i < arms; i++ {
		if i%2 == 0 {
			out = append(out, splits[i/2]...)
		} else {
			out = append(out, perm.Reversed(splits[arms-i/2-1])...)
		}
	}
	return out
}
