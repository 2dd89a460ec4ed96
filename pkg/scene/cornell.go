package scene

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// NewCornellScene creates a classic Cornell box built from triangles and
// lit by a single emissive panel. The sky is black.
func NewCornellScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewPoint3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewPoint3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        40.0,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := New("cornell", cameraConfig)
	s.SetSky(core.Black, core.Black)

	white := material.NewOpaque(0, material.NewSolid(core.NewColour(0.73, 0.73, 0.73)))
	red := material.NewOpaque(0, material.NewSolid(core.NewColour(0.65, 0.05, 0.05)))
	green := material.NewOpaque(0, material.NewSolid(core.NewColour(0.12, 0.45, 0.15)))
	light := material.NewLight(material.NewSolid(core.NewColour(15, 15, 15)))

	// Standard 555 unit box
	const size = 555.0
	x := core.NewVec3(size, 0, 0)
	y := core.NewVec3(0, size, 0)
	z := core.NewVec3(0, 0, size)

	s.AddQuad(core.NewPoint3(0, 0, 0), x, z, white)    // floor
	s.AddQuad(core.NewPoint3(0, size, 0), x, z, white) // ceiling
	s.AddQuad(core.NewPoint3(0, 0, size), x, y, white) // back wall
	s.AddQuad(core.NewPoint3(size, 0, 0), z, y, red)   // left wall as seen from the camera
	s.AddQuad(core.NewPoint3(0, 0, 0), z, y, green)    // right wall

	// Ceiling light, slightly below the ceiling
	s.AddQuad(core.NewPoint3(213, size-1, 227), core.NewVec3(130, 0, 0), core.NewVec3(0, 0, 105), light)

	s.Add(
		geometry.NewSphere(core.NewPoint3(190, 90, 190), 90, material.NewGlass(1.5, material.NewSolid(core.White))),
		geometry.NewSphere(core.NewPoint3(370, 90, 350), 90, material.NewOpaque(1, material.NewSolid(core.NewColour(0.8, 0.85, 0.88)))),
	)

	s.Optimise()
	return s
}
