package scan

import (
	"slices"

	ferrors "github.com/floretscan/floret/pkg/errors"
)

// OrderBy selects the outer loop of the final acquisition sequence.
type OrderBy string

const (
	// OrderByAngle acquires all positions for an angle before moving on.
	OrderByAngle OrderBy = "angle"

	// OrderByPosition acquires all angles for a position before moving on.
	OrderByPosition OrderBy = "position"
)

// OrderBys lists the valid order-by values.
var OrderBys = []string{string(OrderByAngle), string(OrderByPosition)}

// Sequence is the final visitation order: parallel position and angle
// values of equal length.
type Sequence struct {
	Positions []float64 `json:"positions"`
	Angles    []float64 `json:"angles"`
}

// Len returns the number of (position, angle) acquisitions.
func (s Sequence) Len() int {
	return len(s.Angles)
}

// Compose flattens the shifted angle/position grids into the final
// acquisition sequence.
//
// With OrderByPosition the grids are flattened row-major: all angles for
// shift 0, then all angles for shift 1, and so on. With OrderByAngle the
// grids are transposed first, visiting all shifts for angle 0, then
// angle 1. If interleave is also set, even-numbered shifts are taken for
// every angle before the odd-numbered ones — the beam footprint overlaps
// adjacent positions, so the instrument skips one and returns for it.
func Compose(angles, positions Grid, orderBy OrderBy, interleave bool) (Sequence, error) {
	if err := ferrors.ValidateEnum(ferrors.ErrCodeOrderBy, "order-by", string(orderBy), OrderBys...); err != nil {
		return Sequence{}, err
	}
	if !angles.sameShape(positions) {
		return Sequence{}, ferrors.New(ferrors.ErrCodeShape,
			"angle grid %dx%d and position grid %dx%d must share shape",
			angles.Rows, angles.Cols, positions.Rows, positions.Cols)
	}

	if orderBy == OrderByPosition {
		return Sequence{
			Positions: slices.Clone(positions.Data),
			Angles:    slices.Clone(angles.Data),
		}, nil
	}

	shifts, n := angles.Rows, angles.Cols
	seq := Sequence{
		Positions: make([]float64, 0, shifts*n),
		Angles:    make([]float64, 0, shifts*n),
	}
	appendAt := func(s, a int) {
		seq.Positions = append(seq.Positions, positions.At(s, a))
		seq.Angles = append(seq.Angles, angles.At(s, a))
	}

	if interleave {
		for off := 0; off < 2; off++ {
			for a := 0; a < n; a++ {
				for s := off; s < shifts; s += 2 {
					appendAt(s, a)
				}
			}
		}
	} else {
		for a := 0; a < n; a++ {
			for s := 0; s < shifts; s++ {
				appendAt(s, a)
			}
		}
	}
	return seq, nil
}
