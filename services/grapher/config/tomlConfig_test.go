package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iulianpascalau/coverage-graph/services/grapher/common"
	"github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Parallel()

	testString := `
ListenAddress = "0.0.0.0:8080"
DefaultHistoryLength = 30

[RateLimit]
    RequestsPerSecond = 20.0
    Burst = 40

[[Layouts]]
    Name = "lines"
    [[Layouts.Axes]]
        Label = "lines"
        [[Layouts.Axes.Plots]]
            Type = "line"
            Value = "covered"
            Color = "#00FF00"
        [[Layouts.Axes.Plots]]
            Type = "line"
            Value = "missed"
            Color = "#FF0000"
`

	expectedCfg := Config{
		ListenAddress:        "0.0.0.0:8080",
		DefaultHistoryLength: 30,
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 20,
			Burst:             40,
		},
		Layouts: []common.LayoutDTO{
			{
				Name: "lines",
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
		},
	}

	cfg := Config{}

	err := toml.Unmarshal([]byte(testString), &cfg)
	assert.Nil(t, err)
	assert.Equal(t, expectedCfg, cfg)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file should error", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
		assert.Nil(t, cfg)
		assert.ErrorContains(t, err, "failed to read config file")
	})
	t.Run("malformed file should error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("ListenAddress = "), 0644))

		cfg, err := LoadConfig(path)
		assert.Nil(t, cfg)
		assert.ErrorContains(t, err, "failed to decode config file")
	})
	t.Run("should load layouts with crop and skip zero", func(t *testing.T) {
		t.Parallel()

		contents := `
ListenAddress = "127.0.0.1:0"

[[Layouts]]
    Name = "percentage"
    BaseStroke = 2.0
    [[Layouts.Axes]]
        Label = "%"
        Crop = 100.0
        SkipZero = true
        [[Layouts.Axes.Plots]]
            Type = "branch"
            Value = "percentage"
            Color = "#0000FF"
            Stroke = 3.0
`
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:0", cfg.ListenAddress)
		assert.Equal(t, 0, cfg.DefaultHistoryLength)
		require.Len(t, cfg.Layouts, 1)

		percentage := cfg.Layouts[0]
		assert.Equal(t, "percentage", percentage.Name)
		assert.Equal(t, 2.0, percentage.BaseStroke)
		require.Len(t, percentage.Axes, 1)
		require.NotNil(t, percentage.Axes[0].Crop)
		assert.Equal(t, 100.0, *percentage.Axes[0].Crop)
		assert.True(t, percentage.Axes[0].SkipZero)
		assert.Equal(t, common.PlotDTO{Type: "branch", Value: "percentage", Color: "#0000FF", Stroke: 3}, percentage.Axes[0].Plots[0])
	})
}
