package render

import (
	"bytes"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/floretscan/floret/pkg/scan"
)

// PlotOrder renders the tilt angle at each acquisition step as a PNG
// line chart. The sawtooth or fan shape of the line makes the chosen
// scheme visible at a glance.
func PlotOrder(seq scan.Sequence) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Acquisition Order"
	p.X.Label.Text = "Step"
	p.Y.Label.Text = "Tilt Angle (deg)"

	pts := make(plotter.XYs, seq.Len())
	for i := range pts {
		pts[i].X = float64(i)
		pts[i].Y = seq.Angles[i]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("creating line plot: %w", err)
	}
	p.Add(line, plotter.NewGrid())

	return writePNG(p)
}

// PlotDose renders accumulated exposure per tilt angle over the scan.
// Each step deposits one unit of dose at its angle; the chart shows the
// cumulative dose-weighted mean angle offset after each step, which for
// a well-balanced scheme stays near zero.
func PlotDose(seq scan.Sequence) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Dose Balance"
	p.X.Label.Text = "Step"
	p.Y.Label.Text = "Mean |Angle| of Exposed Tilts (deg)"

	pts := make(plotter.XYs, seq.Len())
	var sum float64
	for i := range pts {
		sum += math.Abs(seq.Angles[i])
		pts[i].X = float64(i)
		pts[i].Y = sum / float64(i+1)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("creating line plot: %w", err)
	}
	p.Add(line, plotter.NewGrid())

	return writePNG(p)
}

// writePNG serializes a plot to PNG bytes at a wide aspect ratio suited
// to step-indexed series.
func writePNG(p *plot.Plot) ([]byte, error) {
	w, err := p.WriterTo(12*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("creating png writer: %w", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}
