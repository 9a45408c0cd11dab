package raster

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Colour is a packed 0xRRGGBBAA value. Matching is exact equality,
// so two colours that differ in any channel are never the same region.
type Colour uint32

// RGB packs an opaque colour from 8-bit channels.
func RGB(r, g, b uint8) Colour {
	return Colour(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | 0xFF)
}

// FromColor converts any color.Color to a packed Colour.
func FromColor(c color.Color) Colour {
	r, g, b, a := c.RGBA()
	return Colour(uint32(r>>8)<<24 | uint32(g>>8)<<16 | uint32(b>>8)<<8 | uint32(a>>8))
}

// NRGBA unpacks the colour for encoding.
func (c Colour) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}
}

func (c Colour) String() string {
	n := c.NRGBA()
	return fmt.Sprintf("%d,%d,%d", n.R, n.G, n.B)
}

// ParseColour parses a user-supplied "R,G,B" triple with each channel
// in 0..255.
func ParseColour(s string) (Colour, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid colour %q: expected R,G,B", s)
	}

	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, fmt.Errorf("invalid colour %q: %q is not an integer", s, p)
		}
		if v < 0 || v > 255 {
			return 0, fmt.Errorf("invalid colour %q: channel %d out of range 0-255", s, v)
		}
		ch[i] = uint8(v)
	}

	return RGB(ch[0], ch[1], ch[2]), nil
}
