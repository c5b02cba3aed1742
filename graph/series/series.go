// Package series derives named, time-ordered numeric series from coverage snapshots.
package series

import (
	"time"

	"github.com/iulianpascalau/coverage-graph/graph/coverage"
)

// Point is one derived value. Index is the position of the source snapshot in the chronological
// input, so series shortened by skip-zero still line up with the full domain.
type Point struct {
	Index     int
	Timestamp time.Time
	Value     float64
}

// Options carries the axis settings applied during derivation
type Options struct {
	Crop     *float64
	SkipZero bool
}

// Series is an immutable derived series
type Series struct {
	selector coverage.Selector
	crop     *float64
	skipped  int
	points   []Point
}

// Name returns the series name, e.g. "branch percentage"
func (s Series) Name() string {
	return s.selector.String()
}

// Selector returns what the series was derived from
func (s Series) Selector() coverage.Selector {
	return s.selector
}

// Crop returns the display bound carried for the renderer, or nil
func (s Series) Crop() *float64 {
	if s.crop == nil {
		return nil
	}

	bound := *s.crop
	return &bound
}

// Len returns the number of points
func (s Series) Len() int {
	return len(s.points)
}

// Skipped returns how many zero-valued points were dropped
func (s Series) Skipped() int {
	return s.skipped
}

// Points returns a copy of the points, oldest first
func (s Series) Points() []Point {
	result := make([]Point, len(s.points))
	copy(result, s.points)

	return result
}

// Values returns the point values, oldest first
func (s Series) Values() []float64 {
	result := make([]float64, 0, len(s.points))
	for _, p := range s.points {
		result = append(result, p.Value)
	}

	return result
}
