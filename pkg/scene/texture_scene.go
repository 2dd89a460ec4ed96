package scene

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// NewTextureScene lines up one sphere per texture variant above a
// checkered floor made of two triangles
func NewTextureScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewPoint3(0, 2, 7),
		LookAt:      core.NewPoint3(0, 0.6, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       600,
		AspectRatio: 16.0 / 9.0,
		VFov:        35,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := New("textures", cameraConfig)

	black := material.NewSolid(core.NewColour(0.05, 0.05, 0.05))
	white := material.NewSolid(core.NewColour(0.9, 0.9, 0.9))
	orange := material.NewSolid(core.NewColour(0.9, 0.5, 0.1))
	teal := material.NewSolid(core.NewColour(0.1, 0.6, 0.6))

	floor := material.NewOpaque(0, material.NewChecker(black, white, 0.1))
	s.AddQuad(core.NewPoint3(-10, 0, -10), core.NewVec3(20, 0, 0), core.NewVec3(0, 0, 20), floor)

	textures := []material.Texture{
		material.NewPerlin(8, core.NewColour(0.8, 0.8, 0.9)),
		material.NewStripe(orange, teal, 0.05, material.DirectionU),
		material.NewGradient(orange, teal, material.DirectionV),
		material.NewUV(),
		material.NewChecker(black, orange, 0.1),
	}

	spacing := 1.3
	left := -spacing * float64(len(textures)-1) / 2
	for i, texture := range textures {
		center := core.NewPoint3(left+float64(i)*spacing, 0.55, 0)
		s.Add(geometry.NewSphere(center, 0.55, material.NewOpaque(0.1, texture)))
	}

	s.AddSphereLight(core.NewPoint3(-5, 8, 5), 2, core.NewColour(5, 5, 5))

	s.Optimise()
	return s
}
