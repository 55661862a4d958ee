package scene

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color constants (RGBA packed as 0xAABBGGRR, the layout OpenGL expects for
// normalized uint8x4 vertex colors).
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorBlue        uint32 = 0xFFFF0000
	ColorYellow      uint32 = 0xFF00FFFF
	ColorCyan        uint32 = 0xFFFFFF00
	ColorMagenta     uint32 = 0xFFFF00FF
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorLightGray   uint32 = 0xFFC0C0C0
	ColorTransparent uint32 = 0x00000000
)

var namedColors = map[string]uint32{
	"white":       ColorWhite,
	"black":       ColorBlack,
	"red":         ColorRed,
	"green":       ColorGreen,
	"blue":        ColorBlue,
	"yellow":      ColorYellow,
	"cyan":        ColorCyan,
	"magenta":     ColorMagenta,
	"gray":        ColorGray,
	"darkgray":    ColorDarkGray,
	"lightgray":   ColorLightGray,
	"transparent": ColorTransparent,
}

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// ToColor converts a packed color to an image/color value.
func ToColor(c uint32) color.NRGBA {
	r, g, b, a := UnpackRGBA(c)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// ParseColor accepts a color name ("red"), "#rrggbb" or "#rrggbbaa".
// An empty string yields def.
func ParseColor(s string, def uint32) (uint32, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return def, nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return 0, fmt.Errorf("invalid color %q (expected name, #rrggbb or #rrggbbaa)", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
