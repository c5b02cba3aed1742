package testsCommon

import (
	"fmt"
	"time"

	"github.com/iulianpascalau/coverage-graph/graph/coverage"
)

// BuildHistoryStart is the timestamp of the oldest build in CreateBuildHistory
var BuildHistoryStart = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// CreateBuildHistory returns a five builds chain, oldest first:
//
//	build  branch covered/missed  line covered/missed
//	#1     13/27                  18000/12000
//	#2     23/15                  15000/10000
//	#3     35/6                   19000/5000
//	#4     0/6                    19000/5000
//	#5     30/6                   19000/5000
func CreateBuildHistory() coverage.Chain {
	counters := []struct {
		branch coverage.Counter
		line   coverage.Counter
	}{
		{coverage.Counter{Covered: 13, Missed: 27}, coverage.Counter{Covered: 18000, Missed: 12000}},
		{coverage.Counter{Covered: 23, Missed: 15}, coverage.Counter{Covered: 15000, Missed: 10000}},
		{coverage.Counter{Covered: 35, Missed: 6}, coverage.Counter{Covered: 19000, Missed: 5000}},
		{coverage.Counter{Covered: 0, Missed: 6}, coverage.Counter{Covered: 19000, Missed: 5000}},
		{coverage.Counter{Covered: 30, Missed: 6}, coverage.Counter{Covered: 19000, Missed: 5000}},
	}

	snapshots := make([]coverage.Snapshot, 0, len(counters))
	for i, c := range counters {
		snapshots = append(snapshots, coverage.Snapshot{
			Timestamp: BuildHistoryStart.Add(time.Duration(i) * time.Hour),
			Label:     fmt.Sprintf("#%d", i+1),
			Line:      c.line,
			Branch:    c.branch,
		})
	}

	return coverage.NewLinearChain(snapshots...)
}

// ExpectedBranchPercentages holds the branch percentages of CreateBuildHistory, oldest first
var ExpectedBranchPercentages = []float64{32.5, 60.526315, 85.365853, 0, 83.333333}
