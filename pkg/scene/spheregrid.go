package scene

import (
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH colour values to linear RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Colour {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	unit := core.NewInterval(0, 1)
	return core.NewColour(unit.Clamp(r), unit.Clamp(g), unit.Clamp(blue))
}

// sphereGridSize is the number of spheres along each side of the grid
const sphereGridSize = 20

// NewSphereGridScene creates a grid of rainbow-coloured spheres. With
// several hundred primitives it mostly exercises the BVH.
func NewSphereGridScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:       core.NewPoint3(4.5, 6, 18),
		LookAt:       core.NewPoint3(4.5, 0.8, 4.5), // Centre of the grid, slightly lower
		Up:           core.NewVec3(0, 1, 0),
		Width:        800,
		AspectRatio:  16.0 / 9.0,
		VFov:         40.0,
		DefocusAngle: 0.2,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := New("sphere-grid", cameraConfig)

	s.Add(geometry.NewSphere(core.NewPoint3(4.5, -1000, 4.5), 1000,
		material.NewOpaque(0, material.NewSolid(core.NewColour(0.5, 0.5, 0.5)))))

	// Fit the grid into roughly 9x9 units whatever its size
	spacing := 9.0 / float64(sphereGridSize-1)
	radius := core.Clamp(spacing*0.35, 0.02, 0.35)

	for i := 0; i < sphereGridSize; i++ {
		for j := 0; j < sphereGridSize; j++ {
			hue := 360 * float64(i*sphereGridSize+j) / float64(sphereGridSize*sphereGridSize)
			colour := oklchToRGB(0.7, 0.15, hue)
			smoothness := float64(j) / float64(sphereGridSize-1)

			center := core.NewPoint3(float64(i)*spacing, radius, float64(j)*spacing)
			s.Add(geometry.NewSphere(center, radius, material.NewOpaque(smoothness, material.NewSolid(colour))))
		}
	}

	s.AddSphereLight(core.NewPoint3(20, 25, 20), 8, core.NewColour(4, 3.8, 3.4))

	s.Optimise()
	return s
}
