// Package ui provides the layout engine: a two-phase Measure/Arrange
// element protocol and a Grid container with pixel, auto, and
// proportional (star) tracks.
//
// Layout is synchronous and single-threaded. A parent's Measure invokes
// its children's Measure with no parallelism; nested grids own
// independent track state. All sizing arithmetic is float64 with an
// epsilon tolerance, never exact equality.
package ui
