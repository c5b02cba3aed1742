package series

import (
	"fmt"

	"github.com/iulianpascalau/coverage-graph/graph/coverage"
)

// Derive computes the selected value for each snapshot (oldest first). With SkipZero set, points
// whose value is exactly 0 are dropped. The crop bound is only carried along. A snapshot with a
// negative counter fails the whole derivation with coverage.ErrInvalidSnapshot.
func Derive(snapshots []coverage.Snapshot, sel coverage.Selector, opts Options) (Series, error) {
	result := Series{
		selector: sel,
		points:   make([]Point, 0, len(snapshots)),
	}
	if opts.Crop != nil {
		bound := *opts.Crop
		result.crop = &bound
	}

	for i, snapshot := range snapshots {
		err := snapshot.Validate()
		if err != nil {
			return Series{}, fmt.Errorf("%w at position %d", err, i)
		}

		value := sel.Of(snapshot)
		if opts.SkipZero && value == 0 {
			result.skipped++
			continue
		}

		result.points = append(result.points, Point{
			Index:     i,
			Timestamp: snapshot.Timestamp,
			Value:     value,
		})
	}

	return result, nil
}
