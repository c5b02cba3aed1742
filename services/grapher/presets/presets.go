package presets

import (
	"errors"
	"fmt"
	"sort"

	"github.com/iulianpascalau/coverage-graph/services/grapher/common"
	"github.com/iulianpascalau/coverage-graph/services/grapher/converter"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("presets")

var errEmptyLayoutName = errors.New("empty layout name")

const (
	// LinesLayout plots the covered and missed line counts
	LinesLayout = "lines"
	// PercentageLayout plots the line and branch percentages on an axis cropped at 100
	PercentageLayout = "percentage"
	// TrendLayout plots the branch percentage, skipping zero points, above the line counts
	TrendLayout = "trend"
)

func percentCrop() *float64 {
	bound := 100.0
	return &bound
}

func builtIns() []common.LayoutDTO {
	return []common.LayoutDTO{
		{
			Name: LinesLayout,
			Axes: []common.AxisDTO{
				{
					Label: "lines",
					Plots: []common.PlotDTO{
						{Type: "line", Value: "covered", Color: "#00FF00"},
						{Type: "line", Value: "missed", Color: "#FF0000"},
					},
				},
			},
		},
		{
			Name: PercentageLayout,
			Axes: []common.AxisDTO{
				{
					Label: "%",
					Crop:  percentCrop(),
					Plots: []common.PlotDTO{
						{Type: "line", Value: "percentage", Color: "#0000FF"},
						{Type: "branch", Value: "percentage", Color: "#FFFF00"},
					},
				},
			},
		},
		{
			Name:       TrendLayout,
			BaseStroke: 2,
			SkipZero:   true,
			Plots: []common.PlotDTO{
				{Type: "branch", Value: "percentage", Color: "#0000FF", Stroke: 3},
			},
			Axes: []common.AxisDTO{
				{
					Label: "lines",
					Plots: []common.PlotDTO{
						{Type: "line", Value: "covered", Color: "#00FF00"},
						{Type: "line", Value: "missed", Color: "#FF0000"},
					},
				},
			},
		},
	}
}

type presets struct {
	layouts map[string]common.LayoutDTO
}

// NewPresets creates the named layout registry. The built-in layouts are registered first, the
// configured ones override them by name. Every layout is validated before being registered.
func NewPresets(configured []common.LayoutDTO) (*presets, error) {
	p := &presets{
		layouts: make(map[string]common.LayoutDTO),
	}

	for _, dto := range builtIns() {
		p.layouts[dto.Name] = dto
	}

	seen := make(map[string]struct{})
	for i, dto := range configured {
		if len(dto.Name) == 0 {
			return nil, fmt.Errorf("%w at index %d", errEmptyLayoutName, i)
		}
		if _, found := seen[dto.Name]; found {
			return nil, fmt.Errorf("duplicate layout name %s", dto.Name)
		}
		seen[dto.Name] = struct{}{}

		err := validate(dto)
		if err != nil {
			return nil, fmt.Errorf("%w for layout %s", err, dto.Name)
		}

		_, overridden := p.layouts[dto.Name]
		p.layouts[dto.Name] = dto
		log.Debug("registered layout", "name", dto.Name, "overrides built-in", overridden)
	}

	return p, nil
}

func validate(dto common.LayoutDTO) error {
	builder, err := converter.ToBuilder(dto)
	if err != nil {
		return err
	}

	_, err = builder.Freeze()
	return err
}

// Layout returns the layout registered under the provided name
func (p *presets) Layout(name string) (common.LayoutDTO, bool) {
	dto, found := p.layouts[name]
	return dto, found
}

// Names returns the sorted list of the registered layout names
func (p *presets) Names() []string {
	names := make([]string, 0, len(p.layouts))
	for name := range p.layouts {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// IsInterfaceNil returns true if there is no value under the interface
func (p *presets) IsInterfaceNil() bool {
	return p == nil
}
