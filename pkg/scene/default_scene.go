package scene

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// NewDefaultScene creates a default scene with spheres on a checkered ground
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:       core.NewPoint3(0, 0.75, 2), // Position camera higher and farther back
		LookAt:       core.NewPoint3(0, 0.5, -1), // Look at the sphere center
		Up:           core.NewVec3(0, 1, 0),
		Width:        400,
		AspectRatio:  16.0 / 9.0,
		VFov:         40.0,
		DefocusAngle: 0.6,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := New("default", cameraConfig)

	ground := material.NewOpaque(0, material.NewChecker(
		material.NewSolid(core.NewColour(0.2, 0.3, 0.1)),
		material.NewSolid(core.NewColour(0.9, 0.9, 0.9)),
		0.02,
	))
	red := material.NewOpaque(0, material.NewSolid(core.NewColour(0.65, 0.25, 0.2)))
	silver := material.NewOpaque(1, material.NewSolid(core.NewColour(0.8, 0.8, 0.8)))
	gold := material.NewOpaque(0.7, material.NewSolid(core.NewColour(0.8, 0.6, 0.2)))
	glass := material.NewGlass(1.5, material.NewSolid(core.White))
	blue := material.NewOpaque(0, material.NewSolid(core.NewColour(0.1, 0.2, 0.5)))

	// Ground is a very large sphere so the world stays bounded
	s.Add(geometry.NewSphere(core.NewPoint3(0, -1000, -1), 1000, ground))

	s.Add(
		geometry.NewSphere(core.NewPoint3(0, 0.5, -1), 0.5, red),
		geometry.NewSphere(core.NewPoint3(-1, 0.5, -1), 0.5, silver),
		geometry.NewSphere(core.NewPoint3(1, 0.5, -1), 0.5, gold),
		geometry.NewSphere(core.NewPoint3(0.5, 0.25, -0.5), 0.25, glass),
	)

	// Hollow glass sphere with blue sphere inside
	s.Add(
		geometry.NewSphere(core.NewPoint3(-0.5, 0.25, -0.5), 0.25, glass),
		geometry.NewSphere(core.NewPoint3(-0.5, 0.25, -0.5), -0.24, glass),
		geometry.NewSphere(core.NewPoint3(-0.5, 0.25, -0.5), 0.20, blue),
	)

	s.AddSphereLight(core.NewPoint3(30, 30.5, 15), 10, core.NewColour(3, 2.8, 2.6))

	s.Optimise()
	return s
}
