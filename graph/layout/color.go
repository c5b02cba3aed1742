package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is an opaque 8-bit-per-channel color
type RGB struct {
	R, G, B uint8
}

// Common plot colors
var (
	Red    = RGB{R: 255}
	Green  = RGB{G: 255}
	Blue   = RGB{B: 255}
	Yellow = RGB{R: 255, G: 255}
	Black  = RGB{}
)

// Hex returns the #RRGGBB form of the color
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String returns the #RRGGBB form of the color
func (c RGB) String() string {
	return c.Hex()
}

// ParseHex parses "#RGB" or "#RRGGBB", the leading '#' is optional
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q: expected #RGB or #RRGGBB", s)
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return RGB{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
	}, nil
}

// MarshalText implements encoding.TextMarshaler
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}
