// Package scan computes the acquisition order for a tilt series.
//
// Given a continuous range of tilt angles, the package produces a
// permutation (and, optionally, an interleaved set of spatial positions)
// that an instrument should visit to realize a particular dose-distribution
// or mechanical-motion strategy.
//
// # Pipeline
//
// The engine is a strict top-down pipeline of pure functions:
//
//  1. Angles generates the monotonically increasing tilt sequence.
//  2. One of DoseSymmetric, Spiral or Swinging maps the index sequence
//     to a visiting order.
//  3. InitialPositions assigns a fractional helix sub-position to each
//     angle, and ShiftedPositions expands each angle into one row per
//     discrete beam shift.
//  4. Compose flattens the (shift x angle) grid into the final sequence.
//
// Generate wires the stages together from a single Config.
//
// Every reordering is represented as an explicit index permutation
// ([]int); angle values are looked up through the order and never
// recomputed, so the same order can be applied to parallel arrays.
//
// All operations are deterministic functions of their inputs with no
// shared state; a Config can be generated concurrently from any number
// of goroutines.
package scan
