package core

import (
	"image/color"
	"math"
)

// Colour is a linear RGB triple
type Colour struct {
	R, G, B float64
}

var (
	Black = Colour{0, 0, 0}
	White = Colour{1, 1, 1}
)

// NewColour creates a new Colour
func NewColour(r, g, b float64) Colour {
	return Colour{R: r, G: g, B: b}
}

// Add returns the channel-wise sum
func (c Colour) Add(other Colour) Colour {
	return Colour{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply scales every channel
func (c Colour) Multiply(scalar float64) Colour {
	return Colour{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColour returns the channel-wise product (attenuation)
func (c Colour) MultiplyColour(other Colour) Colour {
	return Colour{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Lerp linearly interpolates from c (t=0) to other (t=1)
func (c Colour) Lerp(other Colour, t float64) Colour {
	return c.Multiply(1 - t).Add(other.Multiply(t))
}

// Luminance returns the Rec. 709 luminance of the colour
func (c Colour) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// GammaCorrect applies gamma 2 (square root) to each channel.
// Negative channels are clamped to zero first.
func (c Colour) GammaCorrect() Colour {
	return Colour{
		R: math.Sqrt(math.Max(0, c.R)),
		G: math.Sqrt(math.Max(0, c.G)),
		B: math.Sqrt(math.Max(0, c.B)),
	}
}

// RGB is an 8-bit per channel output pixel
type RGB struct {
	R, G, B uint8
}

// ToRGB clamps each channel into [0,1] and maps it to a byte. NaN
// channels come out black.
func (c Colour) ToRGB() RGB {
	return RGB{R: toByte(c.R), G: toByte(c.G), B: toByte(c.B)}
}

func toByte(x float64) uint8 {
	if math.IsNaN(x) {
		return 0
	}
	return uint8(255 * NewInterval(0, 1).Clamp(x))
}

// RGBA converts to an opaque standard library colour
func (p RGB) RGBA() color.RGBA {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}
