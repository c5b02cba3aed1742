package layout

import "errors"

// ErrConfiguration signals a structurally invalid layout
var ErrConfiguration = errors.New("invalid graph layout")
