package common

// PlotDTO describes one plot as found in config files and API payloads
type PlotDTO struct {
	Type   string  `json:"type" toml:"Type"`
	Value  string  `json:"value" toml:"Value"`
	Color  string  `json:"color" toml:"Color"`
	Stroke float64 `json:"stroke,omitempty" toml:"Stroke"` // 0 inherits the base stroke
}

// AxisDTO describes one axis and the plots bound to it
type AxisDTO struct {
	Label    string    `json:"label,omitempty" toml:"Label"`
	Crop     *float64  `json:"crop,omitempty" toml:"Crop"`
	SkipZero bool      `json:"skipZero,omitempty" toml:"SkipZero"`
	Plots    []PlotDTO `json:"plots" toml:"Plots"`
}

// LayoutDTO describes a full graph layout. Plots and SkipZero at this level apply to the implicit
// unlabeled axis that precedes the explicit Axes.
type LayoutDTO struct {
	Name       string    `json:"name,omitempty" toml:"Name"`
	BaseStroke float64   `json:"baseStroke,omitempty" toml:"BaseStroke"` // 0 keeps the default
	SkipZero   bool      `json:"skipZero,omitempty" toml:"SkipZero"`
	Plots      []PlotDTO `json:"plots,omitempty" toml:"Plots"`
	Axes       []AxisDTO `json:"axes,omitempty" toml:"Axes"`
}

// CounterDTO holds a covered/missed pair
type CounterDTO struct {
	Covered int `json:"covered"`
	Missed  int `json:"missed"`
}

// SnapshotDTO is one build measurement of a chart request
type SnapshotDTO struct {
	Timestamp int64      `json:"timestamp"` // unix seconds
	Label     string     `json:"label,omitempty"`
	Line      CounterDTO `json:"line"`
	Branch    CounterDTO `json:"branch"`
	Previous  *int       `json:"previous,omitempty"` // index into the history, nil for the oldest build
}

// ChartRequest is the incoming JSON body on /api/chart. When no history entry sets Previous, the
// history is read as a chronological list, oldest first.
type ChartRequest struct {
	History    []SnapshotDTO `json:"history"`
	Head       *int          `json:"head,omitempty"`
	Length     int           `json:"length,omitempty"`
	LayoutName string        `json:"layoutName,omitempty"`
	Layout     *LayoutDTO    `json:"layout,omitempty"`
}

// ErrorResponse is returned on every failed request
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}
