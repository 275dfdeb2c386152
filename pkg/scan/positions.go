package scan

import (
	"gonum.org/v1/gonum/floats"

	ferrors "github.com/floretscan/floret/pkg/errors"
)

// Grid is a dense rows x cols matrix over a flat row-major backing slice.
// The shifted angle and position grids always share an identical shape.
type Grid struct {
	Rows, Cols int
	Data       []float64 // row-major, len = Rows*Cols
}

// At returns the element at row r, column c.
func (g Grid) At(r, c int) float64 {
	return g.Data[r*g.Cols+c]
}

// Row returns the r-th row as a subslice of the backing data.
func (g Grid) Row(r int) []float64 {
	return g.Data[r*g.Cols : (r+1)*g.Cols]
}

// sameShape reports whether two grids have identical dimensions.
func (g Grid) sameShape(o Grid) bool {
	return g.Rows == o.Rows && g.Cols == o.Cols
}

// InitialPositions assigns a fractional helix sub-position to each of n
// angle indices: positions 0, 1/nhelix, ..., (m-1)/nhelix cycle across
// consecutive angles, with the final group truncated to m = n mod nhelix
// when the helix does not divide n evenly.
func InitialPositions(nhelix, n int) ([]float64, error) {
	if err := ferrors.ValidateAtLeast("nhelix", nhelix, 1); err != nil {
		return nil, err
	}
	if err := ferrors.ValidateAtLeast("number of angles", n, 1); err != nil {
		return nil, err
	}

	out := make([]float64, 0, n)
	for j := 0; j < n; j += nhelix {
		m := min(n-j, nhelix)
		for i := 0; i < m; i++ {
			out = append(out, float64(i)/float64(nhelix))
		}
	}
	return out, nil
}

// ShiftedPositions expands the per-angle positions into one row per
// discrete beam shift: row k holds positions + (pmin + k) for every
// angle, and the angle array is tiled across rows to match. The two
// returned grids always share the same shape.
//
// The shift window must span at least one position (pmax - pmin >= 1).
func ShiftedPositions(angles, positions []float64, pmin, pmax int) (Grid, Grid, error) {
	if err := ferrors.ValidateWindow("position", pmin, pmax, 1); err != nil {
		return Grid{}, Grid{}, err
	}
	if len(angles) != len(positions) {
		return Grid{}, Grid{}, ferrors.New(ferrors.ErrCodeShape,
			"angles (%d) and positions (%d) must have equal length", len(angles), len(positions))
	}

	rows, cols := pmax-pmin, len(positions)
	ag := Grid{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
	pg := Grid{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
	for r := 0; r < rows; r++ {
		copy(ag.Row(r), angles)
		row := pg.Row(r)
		copy(row, positions)
		floats.AddConst(float64(pmin+r), row)
	}
	return ag, pg, nil
}
