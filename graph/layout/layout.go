// Package layout holds the declarative description of a coverage graph: which series are plotted,
// on which axis and with which visual treatment. Layouts are declared through the fluent Builder
// and frozen into an immutable Layout before assembly.
package layout

import "github.com/iulianpascalau/coverage-graph/graph/coverage"

// DefaultBaseStroke is the stroke width used when BaseStroke is never called
const DefaultBaseStroke = 1.0

// Plot is one declared series
type Plot struct {
	coverage.Selector
	Color RGB
	// Stroke is the resolved stroke width: the plot override or the layout base stroke
	Stroke float64
}

// Axis groups plots sharing the same scale, crop bound and skip-zero policy
type Axis struct {
	Label string
	// Crop is a display bound for the renderer, nil when not set
	Crop     *float64
	SkipZero bool
	Plots    []Plot
}

// Layout is a validated graph layout. Axes and their plots are kept in declaration order.
type Layout struct {
	BaseStroke float64
	Axes       []Axis
}

// NumPlots returns the number of plots across all axes
func (l Layout) NumPlots() int {
	total := 0
	for _, axis := range l.Axes {
		total += len(axis.Plots)
	}

	return total
}
