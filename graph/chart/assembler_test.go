package chart

import (
	"errors"
	"testing"
	"time"

	"github.com/iulianpascalau/coverage-graph/graph/coverage"
	"github.com/iulianpascalau/coverage-graph/graph/layout"
	"github.com/iulianpascalau/coverage-graph/graph/testsCommon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssembler(t *testing.T) {
	t.Parallel()

	t.Run("nil observer should error", func(t *testing.T) {
		a, err := NewAssembler(ArgsAssembler{})

		assert.Nil(t, a)
		assert.True(t, a.IsInterfaceNil())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "nil observer")
	})
	t.Run("should work", func(t *testing.T) {
		a, err := NewAssembler(ArgsAssembler{Observer: &testsCommon.ObserverStub{}})

		assert.NotNil(t, a)
		assert.False(t, a.IsInterfaceNil())
		assert.Nil(t, err)
	})
}

func TestAssembler_Build(t *testing.T) {
	t.Parallel()

	type observation struct {
		outcome string
		skipped int
	}

	t.Run("success should be observed", func(t *testing.T) {
		var observed []observation
		a, _ := NewAssembler(ArgsAssembler{
			Observer: &testsCommon.ObserverStub{
				ObserveBuildHandler: func(outcome string, duration time.Duration, skippedPoints int) {
					assert.GreaterOrEqual(t, duration, time.Duration(0))
					observed = append(observed, observation{outcome: outcome, skipped: skippedPoints})
				},
			},
		})

		spec := layout.New().
			SkipZero().
			Plot().Type(coverage.Branch).Value(coverage.Percentage).Color(layout.Red).
			Plot().Type(coverage.Branch).Value(coverage.Covered).Color(layout.Green)

		result, err := a.Build(testsCommon.CreateBuildHistory(), spec)
		require.NoError(t, err)
		assert.Equal(t, 2, result.NumSeries())
		assert.Equal(t, []observation{{outcome: OutcomeSuccess, skipped: 2}}, observed)
	})
	t.Run("failure should be observed", func(t *testing.T) {
		var observed []observation
		a, _ := NewAssembler(ArgsAssembler{
			Observer: &testsCommon.ObserverStub{
				ObserveBuildHandler: func(outcome string, duration time.Duration, skippedPoints int) {
					observed = append(observed, observation{outcome: outcome, skipped: skippedPoints})
				},
			},
		})

		chain := testsCommon.CreateBuildHistory()
		chain.Snapshots[0].Branch.Covered = -3
		spec := layout.New().Plot().Type(coverage.Branch).Value(coverage.Percentage).Color(layout.Red)

		result, err := a.Build(chain, spec)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, coverage.ErrInvalidSnapshot))
		assert.Equal(t, []observation{{outcome: OutcomeInvalidSnapshot, skipped: 0}}, observed)
	})
}
