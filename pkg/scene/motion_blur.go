package scene

import (
	"math/rand"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// NewMotionBlurScene scatters small bouncing spheres around three large
// ones. Diffuse spheres move upwards during the exposure.
func NewMotionBlurScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:        core.NewPoint3(13, 2, 3),
		LookAt:        core.NewPoint3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20,
		DefocusAngle:  0.6,
		FocusDistance: 10,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := New("motion-blur", cameraConfig)

	ground := material.NewOpaque(0, material.NewChecker(
		material.NewSolid(core.NewColour(0.2, 0.3, 0.1)),
		material.NewSolid(core.NewColour(0.9, 0.9, 0.9)),
		0.01,
	))
	s.Add(geometry.NewSphere(core.NewPoint3(0, -1000, 0), 1000, ground))

	// Fixed seed keeps the layout identical between runs
	random := rand.New(rand.NewSource(1))
	glass := material.NewGlass(1.5, material.NewSolid(core.White))
	for a := -6; a < 6; a++ {
		for b := -6; b < 6; b++ {
			center := core.NewPoint3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Sub(core.NewPoint3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			albedo := core.NewColour(random.Float64(), random.Float64(), random.Float64())
			switch choice := random.Float64(); {
			case choice < 0.7:
				end := center.Offset(core.NewVec3(0, core.RandomInRange(random, 0, 0.5), 0))
				s.Add(geometry.NewMovingSphere(center, end, 0.2,
					material.NewOpaque(0, material.NewSolid(albedo.MultiplyColour(albedo)))))
			case choice < 0.9:
				s.Add(geometry.NewSphere(center, 0.2,
					material.NewOpaque(1-0.5*random.Float64(), material.NewSolid(albedo.Lerp(core.White, 0.5)))))
			default:
				s.Add(geometry.NewSphere(center, 0.2, glass))
			}
		}
	}

	s.Add(
		geometry.NewSphere(core.NewPoint3(0, 1, 0), 1, glass),
		geometry.NewSphere(core.NewPoint3(-4, 1, 0), 1, material.NewOpaque(0, material.NewSolid(core.NewColour(0.4, 0.2, 0.1)))),
		geometry.NewSphere(core.NewPoint3(4, 1, 0), 1, material.NewOpaque(1, material.NewSolid(core.NewColour(0.7, 0.6, 0.5)))),
	)

	s.Optimise()
	return s
}
