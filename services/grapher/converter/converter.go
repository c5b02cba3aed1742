package converter

import (
	"fmt"
	"time"

	"github.com/iulianpascalau/coverage-graph/graph/coverage"
	"github.com/iulianpascalau/coverage-graph/graph/layout"
	"github.com/iulianpascalau/coverage-graph/services/grapher/common"
)

// ToBuilder replays a layout description into the fluent builder: the implicit axis first, then
// every explicit axis in order. Unparsable fields fail with layout.ErrConfiguration, missing ones
// are left for Freeze to report.
func ToBuilder(dto common.LayoutDTO) (*layout.Builder, error) {
	b := layout.New()
	if dto.BaseStroke != 0 {
		b.BaseStroke(dto.BaseStroke)
	}

	if dto.SkipZero {
		b.SkipZero()
	}
	for i, plot := range dto.Plots {
		err := addPlot(b, plot)
		if err != nil {
			return nil, fmt.Errorf("%w: plot %d: %s", layout.ErrConfiguration, i+1, err.Error())
		}
	}

	for i, axis := range dto.Axes {
		b.Axis()
		if axis.Label != "" {
			b.Label(axis.Label)
		}
		if axis.Crop != nil {
			b.Crop(*axis.Crop)
		}
		if axis.SkipZero {
			b.SkipZero()
		}

		for j, plot := range axis.Plots {
			err := addPlot(b, plot)
			if err != nil {
				return nil, fmt.Errorf("%w: axis %d plot %d: %s", layout.ErrConfiguration, i+1, j+1, err.Error())
			}
		}
	}

	return b, nil
}

func addPlot(b *layout.Builder, dto common.PlotDTO) error {
	b.Plot()

	if dto.Type != "" {
		coverageType, err := coverage.ParseCoverageType(dto.Type)
		if err != nil {
			return err
		}
		b.Type(coverageType)
	}
	if dto.Value != "" {
		value, err := coverage.ParseCoverageValue(dto.Value)
		if err != nil {
			return err
		}
		b.Value(value)
	}
	if dto.Color != "" {
		color, err := layout.ParseHex(dto.Color)
		if err != nil {
			return err
		}
		b.Color(color)
	}
	if dto.Stroke != 0 {
		b.Stroke(dto.Stroke)
	}

	return nil
}

// ToChain converts the request history into a coverage chain. A zero request length falls back
// to defaultLength. A linked history must reach every entry from its head, otherwise it fails with
// coverage.ErrChainIntegrity. Broken links are left for the chain walk to report.
func ToChain(req common.ChartRequest, defaultLength int) (coverage.Chain, error) {
	snapshots := make([]coverage.Snapshot, 0, len(req.History))
	linked := false
	for _, dto := range req.History {
		previous := coverage.NoPrevious
		if dto.Previous != nil {
			previous = *dto.Previous
			linked = true
		}

		snapshots = append(snapshots, coverage.Snapshot{
			Timestamp: time.Unix(dto.Timestamp, 0).UTC(),
			Label:     dto.Label,
			Line:      coverage.Counter{Covered: dto.Line.Covered, Missed: dto.Line.Missed},
			Branch:    coverage.Counter{Covered: dto.Branch.Covered, Missed: dto.Branch.Missed},
			Previous:  previous,
		})
	}

	chain := coverage.Chain{
		Snapshots: snapshots,
		Head:      len(snapshots) - 1,
	}
	if !linked {
		chain = coverage.NewLinearChain(snapshots...)
	}
	if req.Head != nil {
		chain.Head = *req.Head
	}

	chain.Length = req.Length
	if chain.Length == 0 {
		chain.Length = defaultLength
	}

	if linked {
		unreachable := firstUnreachable(chain)
		if unreachable != coverage.NoPrevious {
			return coverage.Chain{}, fmt.Errorf("%w: history entry %d is not reachable from head %d",
				coverage.ErrChainIntegrity, unreachable, chain.Head)
		}
	}

	return chain, nil
}

// firstUnreachable returns the lowest index the head walk does not visit, or coverage.NoPrevious when
// every entry is visited or the walk itself is broken
func firstUnreachable(chain coverage.Chain) int {
	numSnapshots := len(chain.Snapshots)
	visited := make([]bool, numSnapshots)
	for idx := chain.Head; idx != coverage.NoPrevious; idx = chain.Snapshots[idx].Previous {
		if idx < 0 || idx >= numSnapshots || visited[idx] {
			return coverage.NoPrevious
		}
		visited[idx] = true
	}

	for idx, seen := range visited {
		if !seen {
			return idx
		}
	}

	return coverage.NoPrevious
}
