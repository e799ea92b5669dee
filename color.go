package viz

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	// RGBA() returns alpha-premultiplied components.
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 65535,
	}
}

// Scale returns the color with its RGB channels multiplied by s,
// leaving alpha untouched. Used by the plot3d shading engine.
func (c RGBA) Scale(s float64) RGBA {
	return RGBA{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// ResolveColor maps a color specification to RGBA. It accepts hex
// strings ("#rgb", "#rgba", "#rrggbb", "#rrggbbaa") and SVG 1.1 color
// names ("rebeccapurple", "steelblue", ...).
//
// An unrecognized name is a caller mistake and returns an error.
func ResolveColor(name string) (RGBA, error) {
	if name == "" {
		return RGBA{}, fmt.Errorf("viz: empty color name")
	}
	if name[0] == '#' {
		c, ok := parseHexColor(name[1:])
		if !ok {
			return RGBA{}, fmt.Errorf("viz: malformed hex color %q", name)
		}
		return c, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return FromColor(c), nil
	}
	return RGBA{}, fmt.Errorf("viz: unknown color name %q", name)
}

// parseHexColor parses "RGB", "RGBA", "RRGGBB" and "RRGGBBAA" forms.
func parseHexColor(hex string) (RGBA, bool) {
	var r, g, b uint32
	a := uint32(255)

	switch len(hex) {
	case 3: // RGB
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return RGBA{}, false
		}
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) ||
			!parseHex(hex[2:3], &b) || !parseHex(hex[3:4], &a) {
			return RGBA{}, false
		}
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return RGBA{}, false
		}
	case 8: // RRGGBBAA
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) ||
			!parseHex(hex[4:6], &b) || !parseHex(hex[6:8], &a) {
			return RGBA{}, false
		}
	default:
		return RGBA{}, false
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)
