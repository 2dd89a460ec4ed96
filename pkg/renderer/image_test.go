package renderer

import (
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

func TestImage_SetAt(t *testing.T) {
	img := NewImage(4, 3)
	red := core.RGB{R: 255}
	img.Set(3, 2, red)

	if got := img.At(3, 2); got != red {
		t.Errorf("Expected %v, got %v", red, got)
	}
	if got := img.At(2, 2); got != (core.RGB{}) {
		t.Errorf("Expected neighbouring pixel to stay black, got %v", got)
	}
	if got := img.Pix[len(img.Pix)-1]; got != red {
		t.Errorf("Expected bottom-right pixel last in row-major order, got %v", got)
	}

	rgba := img.ToRGBA()
	if got := rgba.RGBAAt(3, 2); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("Expected opaque red in RGBA image, got %v", got)
	}
	if got := rgba.RGBAAt(0, 0); got != (color.RGBA{A: 255}) {
		t.Errorf("Expected opaque black in RGBA image, got %v", got)
	}
}

func TestImage_AverageLuminance(t *testing.T) {
	tests := []struct {
		name     string
		fill     core.RGB
		width    int
		expected float64
	}{
		{"black", core.RGB{}, 3, 0},
		{"white", core.RGB{R: 255, G: 255, B: 255}, 3, 1},
		{"pure green", core.RGB{G: 255}, 2, 0.7152},
		{"empty", core.RGB{}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewImage(tt.width, 2)
			for i := range img.Pix {
				img.Pix[i] = tt.fill
			}
			if got := img.AverageLuminance(); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected luminance %v, got %v", tt.expected, got)
			}
		})
	}
}
