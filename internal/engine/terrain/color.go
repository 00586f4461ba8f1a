package terrain

import (
	"fmt"
	"strconv"
	"strings"
)

// Band colours a height range. A height belongs to the first band whose Above it exceeds.
type Band struct {
	Name  string
	Above float32
	Color RGB
}

// Bands is an altitude colour table, ordered from highest threshold to lowest.
// The last band is the fallback and its Above is ignored.
type Bands []Band

var (
	Snow       = RGB{0xf8 / 255.0, 0xf8 / 255.0, 0xff / 255.0}
	Rock       = RGB{0x88 / 255.0, 0x88 / 255.0, 0x88 / 255.0}
	DarkGrass  = RGB{0x3a / 255.0, 0x5f / 255.0, 0x3a / 255.0}
	LightGrass = RGB{0x7e / 255.0, 0xc8 / 255.0, 0x50 / 255.0}
)

// DefaultBands is snow above 45, rock above 30, dark grass above 10, meadow below.
var DefaultBands = Bands{
	{Name: "snow", Above: 45, Color: Snow},
	{Name: "rock", Above: 30, Color: Rock},
	{Name: "dark grass", Above: 10, Color: DarkGrass},
	{Name: "light grass", Color: LightGrass},
}

// ColorAt returns the default band colour for an elevation.
func ColorAt(y float32) RGB {
	return DefaultBands.ColorAt(y)
}

// ColorAt returns the colour of the band containing y. Thresholds are strict.
func (b Bands) ColorAt(y float32) RGB {
	return b.BandAt(y).Color
}

// BandAt returns the band containing y.
func (b Bands) BandAt(y float32) Band {
	if len(b) == 0 {
		return Band{}
	}
	for _, band := range b[:len(b)-1] {
		if y > band.Above {
			return band
		}
	}
	return b[len(b)-1]
}

// ParseHex parses "#rrggbb" (the leading '#' is optional).
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("colour %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return RGB{
		R: float32(v>>16&0xff) / 255,
		G: float32(v>>8&0xff) / 255,
		B: float32(v&0xff) / 255,
	}, nil
}
