package coverage

import (
	"fmt"
	"time"
)

// NoPrevious marks the oldest snapshot of a chain
const NoPrevious = -1

// Counter holds a covered/missed pair
type Counter struct {
	Covered int `json:"covered"`
	Missed  int `json:"missed"`
}

// Total returns covered + missed, summed as float64 so very large counts cannot overflow
func (c Counter) Total() float64 {
	return float64(c.Covered) + float64(c.Missed)
}

// Percentage returns covered / (covered + missed) * 100. An empty pair yields exactly 0.
func (c Counter) Percentage() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}

	return float64(c.Covered) / total * 100
}

// Snapshot is one historical coverage measurement, usually one build
type Snapshot struct {
	Timestamp time.Time
	Label     string
	Line      Counter
	Branch    Counter
	// Previous is the arena index of the prior snapshot or NoPrevious
	Previous int
}

// Counter returns the counter pair read by the provided coverage type
func (s Snapshot) Counter(t CoverageType) Counter {
	if t == Branch {
		return s.Branch
	}

	return s.Line
}

// Validate returns ErrInvalidSnapshot if any counter is negative
func (s Snapshot) Validate() error {
	switch {
	case s.Line.Covered < 0:
		return fmt.Errorf("%w: negative line covered count %d", ErrInvalidSnapshot, s.Line.Covered)
	case s.Line.Missed < 0:
		return fmt.Errorf("%w: negative line missed count %d", ErrInvalidSnapshot, s.Line.Missed)
	case s.Branch.Covered < 0:
		return fmt.Errorf("%w: negative branch covered count %d", ErrInvalidSnapshot, s.Branch.Covered)
	case s.Branch.Missed < 0:
		return fmt.Errorf("%w: negative branch missed count %d", ErrInvalidSnapshot, s.Branch.Missed)
	}

	return nil
}
