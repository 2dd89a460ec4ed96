package material

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
)

// Image maps a row-major bitmap onto the surface. Row 0 is the top of the
// image, which corresponds to v = 1.
type Image struct {
	Width  int
	Height int
	Pixels []core.Colour
}

// NewImage creates an image texture from width*height row-major pixels
func NewImage(width, height int, pixels []core.Colour) *Image {
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// Colour returns the nearest pixel to (u, v); coordinates outside [0,1]
// are clamped to the image edge
func (img *Image) Colour(u, v float64, p core.Point3) core.Colour {
	if img.Width <= 0 || img.Height <= 0 {
		return core.Black
	}
	u = core.Clamp(u, 0, 1)
	v = 1 - core.Clamp(v, 0, 1)

	x := core.Clamp(int(u*float64(img.Width)), 0, img.Width-1)
	y := core.Clamp(int(v*float64(img.Height)), 0, img.Height-1)
	return img.Pixels[y*img.Width+x]
}
