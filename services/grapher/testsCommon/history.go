package testsCommon

import "github.com/iulianpascalau/coverage-graph/services/grapher/common"

// HistoryStartTimestamp is the unix timestamp of the oldest build in CreateHistoryDTO
const HistoryStartTimestamp = int64(1709294400)

// CreateHistoryDTO returns the five builds history used across the service tests, oldest first.
// The branch percentages are 32.5, 60.53, 85.37, 0 and 83.33.
func CreateHistoryDTO() []common.SnapshotDTO {
	return []common.SnapshotDTO{
		{
			Timestamp: HistoryStartTimestamp,
			Label:     "#1",
			Line:      common.CounterDTO{Covered: 18000, Missed: 12000},
			Branch:    common.CounterDTO{Covered: 13, Missed: 27},
		},
		{
			Timestamp: HistoryStartTimestamp + 3600,
			Label:     "#2",
			Line:      common.CounterDTO{Covered: 15000, Missed: 10000},
			Branch:    common.CounterDTO{Covered: 23, Missed: 15},
		},
		{
			Timestamp: HistoryStartTimestamp + 7200,
			Label:     "#3",
			Line:      common.CounterDTO{Covered: 19000, Missed: 5000},
			Branch:    common.CounterDTO{Covered: 35, Missed: 6},
		},
		{
			Timestamp: HistoryStartTimestamp + 10800,
			Label:     "#4",
			Line:      common.CounterDTO{Covered: 19000, Missed: 5000},
			Branch:    common.CounterDTO{Covered: 0, Missed: 6},
		},
		{
			Timestamp: HistoryStartTimestamp + 14400,
			Label:     "#5",
			Line:      common.CounterDTO{Covered: 19000, Missed: 5000},
			Branch:    common.CounterDTO{Covered: 30, Missed: 6},
		},
	}
}

// BranchPercentageLayout returns an inline layout with a single branch percentage plot
func BranchPercentageLayout() *common.LayoutDTO {
	return &common.LayoutDTO{
		Axes: []common.AxisDTO{
			{
				Label: "%",
				Plots: []common.PlotDTO{
					{Type: "branch", Value: "percentage", Color: "#0000FF"},
				},
			},
		},
	}
}
