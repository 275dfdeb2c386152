package scan

import (
	"testing"

	ferrors "github.com/floretscan/floret/pkg/errors"
)

func composeFixture(t *testing.T) (Grid, Grid) {
	t.Helper()
	angles := arange(0, 10, 1)
	positions, err := InitialPositions(1, 10)
	if err != nil {
		t.Fatal(err)
	}
	ag, pg, err := ShiftedPositions(angles, positions, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	return ag, pg
}

func TestComposeByPosition(t *testing.T) {
	ag, pg := composeFixture(t)

	seq, err := Compose(ag, pg, OrderByPosition, false)
	if err != nil {
		t.Fatal(err)
	}
	if seq.Len() != 20 {
		t.Fatalf("length %d, want 20", seq.Len())
	}

	// All angles for shift 0, then all angles for shift 1.
	want := make([]float64, 20)
	for i := 10; i < 20; i++ {
		want[i] = 1
	}
	assertClose(t, seq.Positions, want)
	assertClose(t, seq.Angles, append(arange(0, 10, 1), arange(0, 10, 1)...))
}

func TestComposeByAngle(t *testing.T) {
	ag, pg := composeFixture(t)

	seq, err := Compose(ag, pg, OrderByAngle, false)
	if err != nil {
		t.Fatal(err)
	}

	// Transposed: both shifts for angle 0, then angle 1, ...
	wantPos := make([]float64, 0, 20)
	wantAng := make([]float64, 0, 20)
	for a := 0; a < 10; a++ {
		wantPos = append(wantPos, 0, 1)
		wantAng = append(wantAng, float64(a), float64(a))
	}
	assertClose(t, seq.Positions, wantPos)
	assertClose(t, seq.Angles, wantAng)
}

func TestComposeInterleaved(t *testing.T) {
	angles := arange(0, 4, 1)
	positions := make([]float64, 4)
	ag, pg, err := ShiftedPositions(angles, positions, 0, 4)
	if err != nil {
		t.Fatal(err)
	}

	seq, err := Compose(ag, pg, OrderByAngle, true)
	if err != nil {
		t.Fatal(err)
	}

	// Even shifts for every angle first, then the skipped odd shifts.
	wantPos := []float64{
		0, 2, 0, 2, 0, 2, 0, 2,
		1, 3, 1, 3, 1, 3, 1, 3,
	}
	wantAng := []float64{
		0, 0, 1, 1, 2, 2, 3, 3,
		0, 0, 1, 1, 2, 2, 3, 3,
	}
	assertClose(t, seq.Positions, wantPos)
	assertClose(t, seq.Angles, wantAng)
}

func TestComposeInterleaveSingleShift(t *testing.T) {
	ag, pg, err := ShiftedPositions(arange(0, 5, 1), make([]float64, 5), 0, 1)
	if err != nil {
		t.Fatal(err)
	}

	// With one shift the skip pass has nothing to pick up; interleaving
	// must degrade to the plain angle order.
	seq, err := Compose(ag, pg, OrderByAngle, true)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, seq.Angles, arange(0, 5, 1))
}

func TestComposeErrors(t *testing.T) {
	ag, pg := composeFixture(t)

	if _, err := Compose(ag, pg, OrderBy("zigzag"), false); !ferrors.Is(err, ferrors.ErrCodeOrderBy) {
		t.Errorf("invalid order-by: got %v", err)
	}

	bad := Grid{Rows: 1, Cols: 3, Data: make([]float64, 3)}
	if _, err := Compose(ag, bad, OrderByAngle, false); !ferrors.Is(err, ferrors.ErrCodeShape) {
		t.Errorf("shape mismatch: got %v", err)
	}
}
