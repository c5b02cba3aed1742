package chart

import (
	"fmt"

	"github.com/iulianpascalau/coverage-graph/graph/coverage"
	"github.com/iulianpascalau/coverage-graph/graph/layout"
	"github.com/iulianpascalau/coverage-graph/graph/series"
)

// Build freezes the spec, reconstructs the chronological history from the chain and derives every
// declared plot. Axes and series keep the declaration order of the spec. Any error aborts the build
// and no partial chart is returned.
func Build(chain coverage.Chain, spec *layout.Builder) (*Chart, error) {
	result, _, err := build(chain, spec)
	return result, err
}

func build(chain coverage.Chain, spec *layout.Builder) (*Chart, int, error) {
	if spec == nil {
		return nil, 0, fmt.Errorf("%w: nil layout", layout.ErrConfiguration)
	}

	frozen, err := spec.Freeze()
	if err != nil {
		return nil, 0, err
	}

	snapshots, err := chain.Chronological()
	if err != nil {
		return nil, 0, err
	}

	return assemble(snapshots, frozen)
}

// assemble also returns how many points skip-zero dropped across all series
func assemble(snapshots []coverage.Snapshot, frozen layout.Layout) (*Chart, int, error) {
	result := &Chart{
		Domain: make([]DomainEntry, 0, len(snapshots)),
		Axes:   make([]Axis, 0, len(frozen.Axes)),
	}
	for _, s := range snapshots {
		result.Domain = append(result.Domain, DomainEntry{
			Label:     s.Label,
			Timestamp: s.Timestamp,
		})
	}

	skipped := 0
	for i, axisSpec := range frozen.Axes {
		opts := series.Options{
			Crop:     axisSpec.Crop,
			SkipZero: axisSpec.SkipZero,
		}
		axis := Axis{
			Label:    axisSpec.Label,
			Crop:     copyBound(axisSpec.Crop),
			SkipZero: axisSpec.SkipZero,
			Series:   make([]Series, 0, len(axisSpec.Plots)),
		}

		for j, plot := range axisSpec.Plots {
			derived, err := series.Derive(snapshots, plot.Selector, opts)
			if err != nil {
				return nil, 0, fmt.Errorf("axis %d plot %d: %w", i+1, j+1, err)
			}

			skipped += derived.Skipped()
			axis.Series = append(axis.Series, newSeries(plot, derived))
		}

		result.Axes = append(result.Axes, axis)
	}

	return result, skipped, nil
}

func newSeries(plot layout.Plot, derived series.Series) Series {
	points := make([]Point, 0, derived.Len())
	for _, p := range derived.Points() {
		points = append(points, Point{
			Index:     p.Index,
			Timestamp: p.Timestamp,
			Value:     p.Value,
		})
	}

	return Series{
		Name:        derived.Name(),
		Type:        plot.Type,
		Value:       plot.Value,
		Color:       plot.Color,
		StrokeWidth: plot.Stroke,
		Crop:        derived.Crop(),
		Points:      points,
	}
}

func copyBound(bound *float64) *float64 {
	if bound == nil {
		return nil
	}

	value := *bound
	return &value
}
