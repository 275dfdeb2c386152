package scan

import (
	"slices"
	"testing"

	ferrors "github.com/floretscan/floret/pkg/errors"

	"github.com/floretscan/floret/pkg/perm"
)

func TestShuffle(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{1, []int{0, 10, 1, 9, 2, 8, 3, 7, 4, 6, 5}},
		{2, []int{0, 1, 10, 9, 2, 3, 8, 7, 4, 5, 6}},
		{3, []int{0, 1, 2, 10, 9, 8, 3, 4, 5, 7, 6}},
		{4, []int{0, 1, 2, 3, 10, 9, 8, 7, 4, 5, 6}},
		{5, []int{0, 1, 2, 3, 4, 10, 9, 8, 7, 6, 5}},
	}
	for _, tt := range tests {
		got, err := Shuffle(perm.Seq(11), tt.n)
		if err != nil {
			t.Fatalf("Shuffle(n=%d): %v", tt.n, err)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("Shuffle(n=%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestShuffleIsBijection(t *testing.T) {
	for length := 2; length <= 64; length++ {
		for n := 1; n <= length/2; n++ {
			got, err := Shuffle(perm.Seq(length), n)
			if err != nil {
				t.Fatalf("Shuffle(len=%d, n=%d): %v", length, n, err)
			}
			if len(got) != length {
				t.Fatalf("Shuffle(len=%d, n=%d): output length %d", length, n, len(got))
			}
			if !perm.IsPermutation(got) {
				t.Errorf("Shuffle(len=%d, n=%d) is not a permutation: %v", length, n, got)
			}
		}
	}
}

func TestShuffleBatchBounds(t *testing.T) {
	for _, n := range []int{0, -1, 6, 100} {
		_, err := Shuffle(perm.Seq(11), n)
		if !ferrors.Is(err, ferrors.ErrCodeBatchSize) {
			t.Errorf("Shuffle(n=%d): got %v, want batch size error", n, err)
		}
	}
}
