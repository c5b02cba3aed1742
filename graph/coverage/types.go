package coverage

import (
	"fmt"
	"strings"
)

// CoverageType selects which counter pair of a snapshot is read
type CoverageType int

const (
	// Line reads the line counters
	Line CoverageType = iota + 1
	// Branch reads the branch counters
	Branch
)

// String returns the text form of the coverage type
func (t CoverageType) String() string {
	switch t {
	case Line:
		return "line"
	case Branch:
		return "branch"
	default:
		return fmt.Sprintf("CoverageType(%d)", int(t))
	}
}

// IsValid returns true if the coverage type is one of the known ones
func (t CoverageType) IsValid() bool {
	return t == Line || t == Branch
}

// ParseCoverageType converts "line" or "branch" (case-insensitive) into a CoverageType
func ParseCoverageType(s string) (CoverageType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line":
		return Line, nil
	case "branch":
		return Branch, nil
	default:
		return 0, fmt.Errorf("unknown coverage type %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (t CoverageType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("unknown coverage type %d", int(t))
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *CoverageType) UnmarshalText(text []byte) error {
	parsed, err := ParseCoverageType(string(text))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// CoverageValue selects which quantity is derived from a counter pair
type CoverageValue int

const (
	// Missed is the missed count
	Missed CoverageValue = iota + 1
	// Covered is the covered count
	Covered
	// Percentage is covered / (covered + missed) * 100
	Percentage
)

// String returns the text form of the coverage value
func (v CoverageValue) String() string {
	switch v {
	case Missed:
		return "missed"
	case Covered:
		return "covered"
	case Percentage:
		return "percentage"
	default:
		return fmt.Sprintf("CoverageValue(%d)", int(v))
	}
}

// IsValid returns true if the coverage value is one of the known ones
func (v CoverageValue) IsValid() bool {
	return v == Missed || v == Covered || v == Percentage
}

// ParseCoverageValue converts "missed", "covered" or "percentage" (case-insensitive) into a CoverageValue
func ParseCoverageValue(s string) (CoverageValue, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "missed":
		return Missed, nil
	case "covered":
		return Covered, nil
	case "percentage", "percent", "%":
		return Percentage, nil
	default:
		return 0, fmt.Errorf("unknown coverage value %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (v CoverageValue) MarshalText() ([]byte, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("unknown coverage value %d", int(v))
	}

	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (v *CoverageValue) UnmarshalText(text []byte) error {
	parsed, err := ParseCoverageValue(string(text))
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}

// Selector names one derivable quantity: a counter pair and the value taken from it
type Selector struct {
	Type  CoverageType
	Value CoverageValue
}

// String returns a human-readable series name, e.g. "branch percentage"
func (s Selector) String() string {
	return s.Type.String() + " " + s.Value.String()
}

// Of computes the selected value for one snapshot. The snapshot is expected to be valid.
func (s Selector) Of(snapshot Snapshot) float64 {
	counter := snapshot.Counter(s.Type)

	switch s.Value {
	case Missed:
		return float64(counter.Missed)
	case Covered:
		return float64(counter.Covered)
	case Percentage:
		return counter.Percentage()
	default:
		return 0
	}
}
