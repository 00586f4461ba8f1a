package debug

import (
	"image"
	"image/color"

	"github.com/Faultbox/ridgeline/internal/engine/lighting"
	"github.com/Faultbox/ridgeline/internal/engine/terrain"
	"github.com/Faultbox/ridgeline/pkg/math"
)

// Preview renders a top-down, hill-shaded map of a height field covering
// [-halfSize, halfSize]². North (-Z) is up.
func Preview(field terrain.HeightField, halfSize float32, bands terrain.Bands, sun lighting.Sun, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if size <= 0 {
		return img
	}
	cell := 2 * halfSize / float32(size)

	for py := 0; py < size; py++ {
		z := -halfSize + (float32(py)+0.5)*cell
		for px := 0; px < size; px++ {
			x := -halfSize + (float32(px)+0.5)*cell
			y := field.Elevation(x, z)

			dx := field.Elevation(x+cell, z) - field.Elevation(x-cell, z)
			dz := field.Elevation(x, z+cell) - field.Elevation(x, z-cell)
			normal := math.Vec3{X: -dx / (2 * cell), Y: 1, Z: -dz / (2 * cell)}

			c := bands.ColorAt(y)
			shade := sun.Shade(normal)
			img.SetRGBA(px, py, color.RGBA{
				R: channel(c.R * shade),
				G: channel(c.G * shade),
				B: channel(c.B * shade),
				A: 0xff,
			})
		}
	}
	return img
}

func channel(v float32) uint8 {
	return uint8(math.Clamp(v, 0, 1)*255 + 0.5)
}
