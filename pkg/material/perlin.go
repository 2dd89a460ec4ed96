package material

import (
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// Perlin is gradient noise over (u, v) scaled by a colour. The gradient at
// each lattice corner comes from a hash of the corner position, so the
// texture is deterministic and needs no random state.
type Perlin struct {
	Scale float64 // lattice cell size in texture space
	Tint  core.Colour
}

// NewPerlin creates a Perlin noise texture
func NewPerlin(scale float64, tint core.Colour) *Perlin {
	return &Perlin{Scale: scale, Tint: tint}
}

// Colour returns the tint multiplied by noise in [0, 1]
func (pn *Perlin) Colour(u, v float64, p core.Point3) core.Colour {
	return pn.Tint.Multiply(pn.Noise(u, v))
}

// Noise returns the noise value in [0, 1] at (u, v)
func (pn *Perlin) Noise(u, v float64) float64 {
	cellU := math.Floor(u / pn.Scale)
	cellV := math.Floor(v / pn.Scale)
	localU := u/pn.Scale - cellU
	localV := v/pn.Scale - cellV

	var corners [2][2]float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			gu, gv := hashGradient(cellU+float64(i), cellV+float64(j))
			dot := gu*(localU-float64(i)) + gv*(localV-float64(j))
			corners[i][j] = core.Clamp(dot, -1, 1)/2 + 0.5
		}
	}

	fu, fv := fade(localU), fade(localV)
	low := lerp(corners[0][0], corners[0][1], fv)
	high := lerp(corners[1][0], corners[1][1], fv)
	return lerp(low, high, fu)
}

// hashGradient maps a lattice corner to a pseudo-random vector in [-1, 1]².
// It is the sine-free hash22 from Dave Hoskins' "Hash without Sine".
func hashGradient(x, y float64) (float64, float64) {
	if math.Abs(x) < 1e-8 && math.Abs(y) < 1e-8 {
		x, y = 47, 103
	}
	p0 := fract(x * 0.1031)
	p1 := fract(y * 0.1030)
	p2 := fract(x * 0.0973)
	d := p0*(p1+33.33) + p1*(p2+33.33) + p2*(p0+33.33)
	p0, p1, p2 = p0+d, p1+d, p2+d
	hu := fract((p0 + p1) * p2)
	hv := fract((p0 + p2) * p1)
	return hu*2 - 1, hv*2 - 1
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
