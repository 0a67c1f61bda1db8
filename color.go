package mobject

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a packed 0xRRGGBB value. Opacity is carried separately by Style,
// matching the wire format of the control-point producers.
type Color uint32

// Common colors.
const (
	Black Color = 0x000000
	White Color = 0xFFFFFF
)

// RGB returns the color components in the range [0, 1].
func (c Color) RGB() (r, g, b float64) {
	r = float64(c>>16&0xFF) / 255
	g = float64(c>>8&0xFF) / 255
	b = float64(c&0xFF) / 255
	return r, g, b
}

// Floats4 returns the color as an RGBA float32 quad with the given opacity,
// the layout expected by mesh exporters and GPU uniforms.
func (c Color) Floats4(opacity float64) [4]float32 {
	r, g, b := c.RGB()
	return [4]float32{float32(r), float32(g), float32(b), float32(opacity)}
}

// String formats the color as "#RRGGBB".
func (c Color) String() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

// ParseColor parses "#RRGGBB" or "RRGGBB" into a packed Color.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("mobject: invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("mobject: invalid color %q: %w", s, err)
	}
	return Color(v), nil
}
