// Package export serializes generated scan sequences for acquisition
// software. Two formats are supported: a two-column CSV understood by
// most microscope control scripts, and a JSON document for programmatic
// consumers.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/floretscan/floret/pkg/scan"
)

// Pair is one acquisition step: a beam-shift position and a tilt angle,
// in the order the microscope should visit them.
type Pair struct {
	Position float64 `json:"position"`
	Angle    float64 `json:"angle"`
}

// Pairs converts a sequence into its ordered (position, angle) pairs.
func Pairs(seq scan.Sequence) []Pair {
	pairs := make([]Pair, seq.Len())
	for i := range pairs {
		pairs[i] = Pair{Position: seq.Positions[i], Angle: seq.Angles[i]}
	}
	return pairs
}

// WriteCSV writes the sequence as "position, angle" rows without a header.
func WriteCSV(w io.Writer, seq scan.Sequence) error {
	for i := 0; i < seq.Len(); i++ {
		if _, err := fmt.Fprintf(w, "%g, %g\n", seq.Positions[i], seq.Angles[i]); err != nil {
			return err
		}
	}
	return nil
}

// document is the JSON export shape.
type document struct {
	Count int    `json:"count"`
	Pairs []Pair `json:"pairs"`
}

// WriteJSON writes the sequence as an indented JSON document.
func WriteJSON(w io.Writer, seq scan.Sequence) error {
	doc := document{
		Count: seq.Len(),
		Pairs: Pairs(seq),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ExportCSV writes the sequence to a CSV file at path.
func ExportCSV(path string, seq scan.Sequence) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := WriteCSV(f, seq); err != nil {
		return err
	}
	return f.Close()
}

// ExportJSON writes the sequence to a JSON file at path.
func ExportJSON(path string, seq scan.Sequence) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := WriteJSON(f, seq); err != nil {
		return err
	}
	return f.Close()
}
