// Package chart assembles a frozen layout and a coverage history into a renderer-agnostic chart model.
package chart

import (
	"time"

	"github.com/iulianpascalau/coverage-graph/graph/coverage"
	"github.com/iulianpascalau/coverage-graph/graph/layout"
)

// DomainEntry describes one plotted snapshot on the domain axis
type DomainEntry struct {
	Label     string    `json:"label"`
	Timestamp time.Time `json:"timestamp"`
}

// Point is one rendered value. Index refers to Chart.Domain.
type Point struct {
	Index     int       `json:"index"`
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// Series is a styled derived series
type Series struct {
	Name        string                 `json:"name"`
	Type        coverage.CoverageType  `json:"type"`
	Value       coverage.CoverageValue `json:"value"`
	Color       layout.RGB             `json:"color"`
	StrokeWidth float64                `json:"strokeWidth"`
	Crop        *float64               `json:"crop,omitempty"`
	Points      []Point                `json:"points"`
}

// Axis is a rendering lane holding series in declaration order
type Axis struct {
	Label    string   `json:"label"`
	Crop     *float64 `json:"crop,omitempty"`
	SkipZero bool     `json:"skipZero"`
	Series   []Series `json:"series"`
}

// Chart is the assembled output, axes in declaration order
type Chart struct {
	Domain []DomainEntry `json:"domain"`
	Axes   []Axis        `json:"axes"`
}

// NumSeries returns the number of series across all axes
func (c *Chart) NumSeries() int {
	total := 0
	for _, axis := range c.Axes {
		total += len(axis.Series)
	}

	return total
}
