package perm

import (
	"slices"
	"testing"
)

func TestSeq(t *testing.T) {
	if got := Seq(5); !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("Seq(5) = %v", got)
	}
	if got := Seq(0); len(got) != 0 {
		t.Errorf("Seq(0) = %v, want empty", got)
	}
	if got := Seq(-3); len(got) != 0 {
		t.Errorf("Seq(-3) = %v, want empty", got)
	}
}

func TestApply(t *testing.T) {
	xs := []float64{10, 20, 30, 40}
	order := []int{3, 1, 0, 2}

	got := Apply(order, xs)
	if !slices.Equal(got, []float64{40, 20, 10, 30}) {
		t.Errorf("Apply = %v", got)
	}
	// Input untouched.
	if !slices.Equal(xs, []float64{10, 20, 30, 40}) {
		t.Errorf("Apply modified input: %v", xs)
	}
}

func TestInverse(t *testing.T) {
	order := []int{3, 1, 0, 2}
	inv := Inverse(order)

	xs := []int{0, 1, 2, 3}
	if got := Apply(inv, Apply(order, xs)); !slices.Equal(got, xs) {
		t.Errorf("inverse round-trip = %v", got)
	}
}

func TestIsPermutation(t *testing.T) {
	tests := []struct {
		in   []int
		want bool
	}{
		{[]int{0, 1, 2}, true},
		{[]int{2, 0, 1}, true},
		{[]int{}, true},
		{[]int{0, 0, 1}, false},
		{[]int{0, 3}, false},
		{[]int{-1, 0}, false},
	}
	for _, tt := range tests {
		if got := IsPermutation(tt.in); got != tt.want {
			t.Errorf("IsPermutation(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestReversed(t *testing.T) {
	xs := []int{1, 2, 3}
	if got := Reversed(xs); !slices.Equal(got, []int{3, 2, 1}) {
		t.Errorf("Reversed = %v", got)
	}
	if !slices.Equal(xs, []int{1, 2, 3}) {
		t.Errorf("Reversed modified input: %v", xs)
	}
}
