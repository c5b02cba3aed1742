package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/iulianpascalau/coverage-graph/graph/coverage"
)

const noCursor = -1

type plotDraft struct {
	selector  coverage.Selector
	color     RGB
	hasColor  bool
	stroke    float64
	hasStroke bool
}

type axisDraft struct {
	label    string
	crop     *float64
	skipZero bool
	plots    []*plotDraft
}

// Builder declares a layout through chained calls. Axis-level calls (Label, Crop, SkipZero) target
// the most recently opened axis, plot-level calls (Type, Value, Color, Stroke) target the most
// recently declared plot. Plot, Label, Crop and SkipZero open an implicit unlabeled axis when none
// is open yet. Problems are collected and reported by Freeze, so intermediate states may be invalid.
// A Builder is not safe for concurrent use.
type Builder struct {
	baseStroke  float64
	axes        []*axisDraft
	currentAxis int
	currentPlot int
	misplaced   []string
}

// New creates an empty layout builder
func New() *Builder {
	return &Builder{
		baseStroke:  DefaultBaseStroke,
		currentAxis: noCursor,
		currentPlot: noCursor,
	}
}

// BaseStroke sets the stroke width of every plot that does not override it. When called more than
// once the last value wins and applies to all plots, including the ones declared before the call.
func (b *Builder) BaseStroke(width float64) *Builder {
	b.baseStroke = width
	return b
}

// Axis opens a new axis that receives the plots declared after it
func (b *Builder) Axis() *Builder {
	b.axes = append(b.axes, &axisDraft{})
	b.currentAxis = len(b.axes) - 1
	b.currentPlot = noCursor

	return b
}

// Label sets the label of the current axis
func (b *Builder) Label(text string) *Builder {
	b.axis().label = text
	return b
}

// Crop records a display bound on the current axis. Values are not altered, the renderer clamps.
func (b *Builder) Crop(bound float64) *Builder {
	b.axis().crop = &bound
	return b
}

// SkipZero drops the zero-valued points of every series on the current axis
func (b *Builder) SkipZero() *Builder {
	b.axis().skipZero = true
	return b
}

// Plot declares a new plot on the current axis
func (b *Builder) Plot() *Builder {
	axis := b.axis()
	axis.plots = append(axis.plots, &plotDraft{})
	b.currentPlot = len(axis.plots) - 1

	return b
}

// Type sets which counter pair the current plot reads
func (b *Builder) Type(t coverage.CoverageType) *Builder {
	if plot := b.plot("Type"); plot != nil {
		plot.selector.Type = t
	}
	return b
}

// Value sets which quantity the current plot renders
func (b *Builder) Value(v coverage.CoverageValue) *Builder {
	if plot := b.plot("Value"); plot != nil {
		plot.selector.Value = v
	}
	return b
}

// Color sets the color of the current plot
func (b *Builder) Color(c RGB) *Builder {
	if plot := b.plot("Color"); plot != nil {
		plot.color = c
		plot.hasColor = true
	}
	return b
}

// Stroke overrides the base stroke width for the current plot
func (b *Builder) Stroke(width float64) *Builder {
	if plot := b.plot("Stroke"); plot != nil {
		plot.stroke = width
		plot.hasStroke = true
	}
	return b
}

func (b *Builder) axis() *axisDraft {
	if b.currentAxis == noCursor {
		b.Axis()
	}

	return b.axes[b.currentAxis]
}

func (b *Builder) plot(setter string) *plotDraft {
	if b.currentPlot == noCursor {
		b.misplaced = append(b.misplaced, fmt.Sprintf("%s called before any Plot", setter))
		return nil
	}

	return b.axes[b.currentAxis].plots[b.currentPlot]
}

// Freeze validates the declarations and returns an independent Layout. Later builder calls do not
// affect the returned value. All problems are reported in one error wrapping ErrConfiguration.
func (b *Builder) Freeze() (Layout, error) {
	problems := make([]string, 0)
	problems = append(problems, b.misplaced...)

	if !isPositiveWidth(b.baseStroke) {
		problems = append(problems, fmt.Sprintf("base stroke must be positive, got %v", b.baseStroke))
	}
	if len(b.axes) == 0 {
		problems = append(problems, "no plots declared")
	}

	result := Layout{
		BaseStroke: b.baseStroke,
		Axes:       make([]Axis, 0, len(b.axes)),
	}
	for i, draft := range b.axes {
		axis := Axis{
			Label:    draft.label,
			SkipZero: draft.skipZero,
			Plots:    make([]Plot, 0, len(draft.plots)),
		}
		if draft.crop != nil {
			bound := *draft.crop
			axis.Crop = &bound
			if math.IsNaN(bound) || math.IsInf(bound, 0) {
				problems = append(problems, fmt.Sprintf("axis %d: crop must be finite, got %v", i+1, bound))
			}
		}
		if len(draft.plots) == 0 {
			problems = append(problems, fmt.Sprintf("axis %d has no plots", i+1))
		}

		for j, declared := range draft.plots {
			where := fmt.Sprintf("axis %d plot %d", i+1, j+1)
			problems = append(problems, validatePlot(where, declared)...)

			plot := Plot{
				Selector: declared.selector,
				Color:    declared.color,
				Stroke:   b.baseStroke,
			}
			if declared.hasStroke {
				plot.Stroke = declared.stroke
			}
			axis.Plots = append(axis.Plots, plot)
		}

		result.Axes = append(result.Axes, axis)
	}

	if len(problems) > 0 {
		return Layout{}, fmt.Errorf("%w: %s", ErrConfiguration, strings.Join(problems, "; "))
	}

	return result, nil
}

func validatePlot(where string, draft *plotDraft) []string {
	problems := make([]string, 0)
	switch {
	case draft.selector.Type == 0:
		problems = append(problems, where+": missing type")
	case !draft.selector.Type.IsValid():
		problems = append(problems, fmt.Sprintf("%s: unknown type %d", where, int(draft.selector.Type)))
	}
	switch {
	case draft.selector.Value == 0:
		problems = append(problems, where+": missing value")
	case !draft.selector.Value.IsValid():
		problems = append(problems, fmt.Sprintf("%s: unknown value %d", where, int(draft.selector.Value)))
	}
	if !draft.hasColor {
		problems = append(problems, where+": missing color")
	}
	if draft.hasStroke && !isPositiveWidth(draft.stroke) {
		problems = append(problems, fmt.Sprintf("%s: stroke must be positive, got %v", where, draft.stroke))
	}

	return problems
}

// isPositiveWidth rejects zero, negative, NaN and infinite widths
func isPositiveWidth(width float64) bool {
	return width > 0 && !math.IsInf(width, 0)
}
