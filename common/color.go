package common

import (
	"fmt"
	"image/color"
)

// ParseHexColor parses "#rrggbb". The fallback is returned when s is empty
// or malformed.
func ParseHexColor(s string, fallback color.RGBA) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}
	var r, g, b uint32
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}

// Brighten adds delta to each channel, saturating at 255.
func Brighten(c color.RGBA, delta uint8) color.RGBA {
	add := func(v uint8) uint8 {
		if int(v)+int(delta) > 0xff {
			return 0xff
		}
		return v + delta
	}
	return color.RGBA{R: add(c.R), G: add(c.G), B: add(c.B), A: c.A}
}
