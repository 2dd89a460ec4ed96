package renderer

import (
	"image"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// Image is a row-major grid of 8-bit pixels with the origin at the top left
type Image struct {
	Width  int
	Height int
	Pix    []core.RGB
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]core.RGB, width*height),
	}
}

// At returns the pixel in column x of row y
func (img *Image) At(x, y int) core.RGB {
	return img.Pix[y*img.Width+x]
}

// Set stores the pixel in column x of row y
func (img *Image) Set(x, y int, pixel core.RGB) {
	img.Pix[y*img.Width+x] = pixel
}

// ToRGBA converts the image for the standard library encoders
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			rgba.SetRGBA(x, y, img.At(x, y).RGBA())
		}
	}
	return rgba
}

// AverageLuminance returns the mean Rec. 709 luminance of the image in [0,1]
func (img *Image) AverageLuminance() float64 {
	if len(img.Pix) == 0 {
		return 0
	}
	var total float64
	for _, p := range img.Pix {
		total += core.NewColour(float64(p.R), float64(p.G), float64(p.B)).Luminance() / 255
	}
	return total / float64(len(img.Pix))
}
