package converter

import (
	"errors"
	"testing"
	"time"

	"github.com/iulianpascalau/coverage-graph/graph/coverage"
	"github.com/iulianpascalau/coverage-graph/graph/layout"
	"github.com/iulianpascalau/coverage-graph/services/grapher/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestToBuilder(t *testing.T) {
	t.Parallel()

	t.Run("implicit axis and explicit axes should keep order", func(t *testing.T) {
		t.Parallel()

		crop := 100.0
		dto := common.LayoutDTO{
			BaseStroke: 2,
			SkipZero:   true,
			Plots: []common.PlotDTO{
				{Type: "line", Value: "missed", Color: "#FF0000"},
			},
			Axes: []common.AxisDTO{
				{
					Label: "%",
					Crop:  &crop,
					Plots: []common.PlotDTO{
						{Type: "branch", Value: "percentage", Color: "#0000FF", Stroke: 3},
						{Type: "LINE", Value: "Percentage", Color: "ff0"},
					},
				},
			},
		}

		b, err := ToBuilder(dto)
		require.NoError(t, err)
		l, err := b.Freeze()
		require.NoError(t, err)

		require.Len(t, l.Axes, 2)
		assert.Empty(t, l.Axes[0].Label)
		assert.True(t, l.Axes[0].SkipZero)
		assert.Equal(t, layout.Red, l.Axes[0].Plots[0].Color)
		assert.Equal(t, 2.0, l.Axes[0].Plots[0].Stroke)

		percent := l.Axes[1]
		assert.Equal(t, "%", percent.Label)
		assert.Equal(t, 100.0, *percent.Crop)
		assert.False(t, percent.SkipZero)
		assert.Equal(t, coverage.Selector{Type: coverage.Branch, Value: coverage.Percentage}, percent.Plots[0].Selector)
		assert.Equal(t, 3.0, percent.Plots[0].Stroke)
		assert.Equal(t, layout.Yellow, percent.Plots[1].Color)
		assert.Equal(t, 2.0, percent.Plots[1].Stroke)
	})
	t.Run("zero base stroke keeps the default", func(t *testing.T) {
		t.Parallel()

		b, err := ToBuilder(common.LayoutDTO{Plots: []common.PlotDTO{{Type: "line", Value: "covered", Color: "#00FF00"}}})
		require.NoError(t, err)
		l, err := b.Freeze()
		require.NoError(t, err)
		assert.Equal(t, layout.DefaultBaseStroke, l.BaseStroke)
	})
	t.Run("unknown type should error", func(t *testing.T) {
		t.Parallel()

		b, err := ToBuilder(common.LayoutDTO{Axes: []common.AxisDTO{{Plots: []common.PlotDTO{{Type: "method", Value: "missed", Color: "#000"}}}}})
		assert.Nil(t, b)
		assert.True(t, errors.Is(err, layout.ErrConfiguration))
		assert.Contains(t, err.Error(), "axis 1 plot 1")
	})
	t.Run("unknown value should error", func(t *testing.T) {
		t.Parallel()

		b, err := ToBuilder(common.LayoutDTO{Plots: []common.PlotDTO{{Type: "line", Value: "ratio", Color: "#000"}}})
		assert.Nil(t, b)
		assert.True(t, errors.Is(err, layout.ErrConfiguration))
		assert.Contains(t, err.Error(), "plot 1")
	})
	t.Run("bad color should error", func(t *testing.T) {
		t.Parallel()

		_, err := ToBuilder(common.LayoutDTO{Plots: []common.PlotDTO{{Type: "line", Value: "missed", Color: "red"}}})
		assert.True(t, errors.Is(err, layout.ErrConfiguration))
	})
	t.Run("missing color is reported at freeze", func(t *testing.T) {
		t.Parallel()

		b, err := ToBuilder(common.LayoutDTO{Plots: []common.PlotDTO{{Type: "line", Value: "missed"}}})
		require.NoError(t, err)

		_, err = b.Freeze()
		assert.True(t, errors.Is(err, layout.ErrConfiguration))
		assert.Contains(t, err.Error(), "missing color")
	})
	t.Run("axis without plots is reported at freeze", func(t *testing.T) {
		t.Parallel()

		b, err := ToBuilder(common.LayoutDTO{Axes: []common.AxisDTO{{Label: "empty"}}})
		require.NoError(t, err)

		_, err = b.Freeze()
		assert.True(t, errors.Is(err, layout.ErrConfiguration))
	})
}

func TestToChain(t *testing.T) {
	t.Parallel()

	t.Run("unlinked history is chronological", func(t *testing.T) {
		t.Parallel()

		req := common.ChartRequest{
			History: []common.SnapshotDTO{
				{Timestamp: 100, Label: "#1", Branch: common.CounterDTO{Covered: 1, Missed: 2}},
				{Timestamp: 200, Label: "#2", Line: common.CounterDTO{Covered: 3, Missed: 4}},
			},
		}

		chain, err := ToChain(req, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, chain.Head)
		assert.Equal(t, 0, chain.Length)

		snapshots, err := chain.Chronological()
		require.NoError(t, err)
		require.Len(t, snapshots, 2)
		assert.Equal(t, "#1", snapshots[0].Label)
		assert.Equal(t, time.Unix(100, 0).UTC(), snapshots[0].Timestamp)
		assert.Equal(t, coverage.Counter{Covered: 1, Missed: 2}, snapshots[0].Branch)
		assert.Equal(t, coverage.Counter{Covered: 3, Missed: 4}, snapshots[1].Line)
	})
	t.Run("linked history follows previous", func(t *testing.T) {
		t.Parallel()

		req := common.ChartRequest{
			History: []common.SnapshotDTO{
				{Label: "#3", Previous: intPtr(2)},
				{Label: "#1"},
				{Label: "#2", Previous: intPtr(1)},
			},
			Head: intPtr(0),
		}

		chain, err := ToChain(req, 0)
		require.NoError(t, err)
		snapshots, err := chain.Chronological()
		require.NoError(t, err)
		require.Len(t, snapshots, 3)
		assert.Equal(t, "#1", snapshots[0].Label)
		assert.Equal(t, "#2", snapshots[1].Label)
		assert.Equal(t, "#3", snapshots[2].Label)
	})
	t.Run("linked history without head starts at the last entry", func(t *testing.T) {
		t.Parallel()

		req := common.ChartRequest{
			History: []common.SnapshotDTO{
				{Label: "#1"},
				{Label: "#2", Previous: intPtr(0)},
			},
		}

		chain, err := ToChain(req, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, chain.Head)
	})
	t.Run("linked history with an unreachable entry should error", func(t *testing.T) {
		t.Parallel()

		req := common.ChartRequest{
			History: []common.SnapshotDTO{
				{Label: "#1"},
				{Label: "orphan"},
				{Label: "#2", Previous: intPtr(0)},
			},
		}

		chain, err := ToChain(req, 0)
		assert.True(t, errors.Is(err, coverage.ErrChainIntegrity))
		assert.Contains(t, err.Error(), "history entry 1 is not reachable from head 2")
		assert.Empty(t, chain.Snapshots)
	})
	t.Run("head skipping newer entries should error", func(t *testing.T) {
		t.Parallel()

		req := common.ChartRequest{
			History: []common.SnapshotDTO{
				{Label: "#1"},
				{Label: "#2", Previous: intPtr(0)},
				{Label: "#3", Previous: intPtr(1)},
			},
			Head: intPtr(1),
		}

		_, err := ToChain(req, 0)
		assert.True(t, errors.Is(err, coverage.ErrChainIntegrity))
		assert.Contains(t, err.Error(), "history entry 2 is not reachable from head 1")
	})
	t.Run("cyclic history is reported by the chain", func(t *testing.T) {
		t.Parallel()

		req := common.ChartRequest{
			History: []common.SnapshotDTO{
				{Label: "#1", Previous: intPtr(1)},
				{Label: "#2", Previous: intPtr(0)},
			},
		}

		chain, err := ToChain(req, 0)
		require.NoError(t, err)
		_, err = chain.Chronological()
		assert.True(t, errors.Is(err, coverage.ErrChainIntegrity))
		assert.Contains(t, err.Error(), "cycle detected")
	})
	t.Run("length falls back to the default", func(t *testing.T) {
		t.Parallel()

		req := common.ChartRequest{History: []common.SnapshotDTO{{}, {}, {}}}
		chain, err := ToChain(req, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, chain.Length)

		req.Length = 3
		chain, err = ToChain(req, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, chain.Length)
	})
	t.Run("empty history", func(t *testing.T) {
		t.Parallel()

		chain, err := ToChain(common.ChartRequest{}, 0)
		require.NoError(t, err)
		snapshots, err := chain.Chronological()
		require.NoError(t, err)
		assert.Empty(t, snapshots)
	})
}
