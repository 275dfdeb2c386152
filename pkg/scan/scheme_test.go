package scan

import (
	"math"
	"slices"
	"sort"
	"testing"

	"github.com/floretscan/floret/pkg/perm"
)

// doseSymmetric1 is the canonical symmetry=1 order over arange(-90, 90, 4.5):
// zero first, then alternating to progressively larger magnitude.
var doseSymmetric1 = []float64{
	0.0, -4.5, 4.5, -9.0, 9.0, -13.5, 13.5, -18.0, 18.0, -22.5,
	22.5, -27.0, 27.0, -31.5, 31.5, -36.0, 36.0, -40.5, 40.5, -45.0,
	45.0, -49.5, 49.5, -54.0, 54.0, -58.5, 58.5, -63.0, 63.0, -67.5,
	67.5, -72.0, 72.0, -76.5, 76.5, -81.0, 81.0, -85.5, 85.5, -90.0,
}

var doseSymmetric2 = []float64{
	0.0, -90.0, -4.5, 85.5, 4.5, -85.5, -9.0, 81.0, 9.0, -81.0,
	-13.5, 76.5, 13.5, -76.5, -18.0, 72.0, 18.0, -72.0, -22.5, 67.5,
	22.5, -67.5, -27.0, 63.0, 27.0, -63.0, -31.5, 58.5, 31.5, -58.5,
	-36.0, 54.0, 36.0, -54.0, -40.5, 49.5, 40.5, -49.5, -45.0, 45.0,
}

var doseSymmetric5 = []float64{
	0.0, -90.0, 45.0, -45.0, 22.5, -67.5, 67.5, -22.5, -13.5, 76.5,
	-58.5, 31.5, -36.0, 54.0, -81.0, 9.0, -4.5, 85.5, -49.5, 40.5,
	-27.0, 63.0, -72.0, 18.0, 13.5, -76.5, 58.5, -31.5, 36.0, -54.0,
	81.0, -9.0, 4.5, -85.5, 49.5, -40.5, -18.0, 72.0, -63.0, 27.0,
}

func TestDoseSymmetric(t *testing.T) {
	angles := arange(-90, 90, 4.5)

	tests := []struct {
		symmetry int
		want     []float64
	}{
		{0, angles},
		{1, doseSymmetric1},
		{2, doseSymmetric2},
		{5, doseSymmetric5},
	}
	for _, tt := range tests {
		order, err := DoseSymmetric(angles, tt.symmetry, 0)
		if err != nil {
			t.Fatalf("DoseSymmetric(symmetry=%d): %v", tt.symmetry, err)
		}
		if !perm.IsPermutation(order) {
			t.Fatalf("DoseSymmetric(symmetry=%d): not a permutation: %v", tt.symmetry, order)
		}
		assertClose(t, perm.Apply(order, angles), tt.want)
	}
}

func TestDoseSymmetricAlternates(t *testing.T) {
	angles := arange(-90, 90, 4.5)
	order, err := DoseSymmetric(angles, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	got := perm.Apply(order, angles)

	if got[0] != 0 {
		t.Errorf("sequence starts at %v, want 0", got[0])
	}
	if got[len(got)-1] != -90 {
		t.Errorf("sequence ends at %v, want -90", got[len(got)-1])
	}
	for i := 1; i+1 < len(got); i += 2 {
		if got[i] != -got[i+1] {
			t.Errorf("pair %d not symmetric: %v, %v", i, got[i], got[i+1])
		}
	}
}

func TestDoseSymmetricTooHigh(t *testing.T) {
	// 4 angles survive one shuffle at batch 1 but not batch 2.
	if _, err := DoseSymmetric([]float64{-3, -1, 1, 3}, 10, 0); err == nil {
		t.Fatal("expected error for symmetry exceeding the sequence capacity")
	}
}

func TestSpiral(t *testing.T) {
	angles := arange(-90, 90, 4.5)

	if got := Spiral(len(angles), 1); !slices.Equal(got, perm.Seq(len(angles))) {
		t.Errorf("Spiral(arms=1) = %v, want identity", got)
	}

	for _, arms := range []int{2, 4} {
		order := Spiral(len(angles), arms)
		if !perm.IsPermutation(order) {
			t.Fatalf("Spiral(arms=%d): not a permutation", arms)
		}
		var want []float64
		for i := 0; i < arms; i++ {
			for j := i; j < len(angles); j += arms {
				want = append(want, angles[j])
			}
		}
		assertClose(t, perm.Apply(order, angles), want)
	}
}

func TestSwinging(t *testing.T) {
	angles := arange(-90, 90, 4.5)

	if got := Swinging(len(angles), 1); !slices.Equal(got, perm.Seq(len(angles))) {
		t.Errorf("Swinging(arms=1) = %v, want identity", got)
	}

	slice := func(off, arms int) []float64 {
		var out []float64
		for j := off; j < len(angles); j += arms {
			out = append(out, angles[j])
		}
		return out
	}

	order := Swinging(len(angles), 2)
	want := append(slice(0, 2), perm.Reversed(slice(1, 2))...)
	assertClose(t, perm.Apply(order, angles), want)

	order = Swinging(len(angles), 4)
	want = slice(0, 4)
	want = append(want, perm.Reversed(slice(3, 4))...)
	want = append(want, slice(1, 4)...)
	want = append(want, perm.Reversed(slice(2, 4))...)
	assertClose(t, perm.Apply(order, angles), want)
}

// Applying any scheme must preserve the multiset of angles.
func TestSchemesPreserveAngles(t *testing.T) {
	angles := arange(-90, 90, 4.5)
	sorted := slices.Clone(angles)

	orders := map[string][]int{
		"spiral":   Spiral(len(angles), 4),
		"swinging": Swinging(len(angles), 4),
	}
	ds, err := DoseSymmetric(angles, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	orders["symmetric"] = ds

	for name, order := range orders {
		got := perm.Apply(order, angles)
		sort.Float64s(got)
		for i := range got {
			if math.Abs(got[i]-sorted[i]) > 1e-9 {
				t.Fatalf("%s: angle multiset changed at %d: %v != %v", name, i, got[i], sorted[i])
			}
		}
	}
}
