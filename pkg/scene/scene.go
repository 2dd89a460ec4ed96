package scene

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/integrator"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering. It is built once
// and read concurrently by the render workers.
type Scene struct {
	Name      string
	Camera    geometry.CameraConfig
	World     *geometry.HittableList
	SkyTop    core.Colour // Sky colour straight up
	SkyBottom core.Colour // Sky colour straight down
}

// New creates an empty scene under the default blue sky
func New(name string, camera geometry.CameraConfig) *Scene {
	return &Scene{
		Name:      name,
		Camera:    camera,
		World:     geometry.NewHittableList(),
		SkyTop:    integrator.DefaultSkyTop,
		SkyBottom: integrator.DefaultSkyBottom,
	}
}

// Add appends objects to the world
func (s *Scene) Add(objects ...geometry.Hittable) {
	for _, object := range objects {
		s.World.Add(object)
	}
}

// AddQuad adds the parallelogram corner, corner+u+v as two triangles
func (s *Scene) AddQuad(corner core.Point3, u, v core.Vec3, mat *material.Material) {
	opposite := corner.Offset(u).Offset(v)
	s.Add(
		geometry.NewTriangle(corner, corner.Offset(u), opposite, mat),
		geometry.NewTriangle(corner, opposite, corner.Offset(v), mat),
	)
}

// AddSphereLight adds an emissive sphere
func (s *Scene) AddSphereLight(center core.Point3, radius float64, emission core.Colour) {
	s.Add(geometry.NewSphere(center, radius, material.NewLight(material.NewSolid(emission))))
}

// SetSky replaces the sky gradient colours
func (s *Scene) SetSky(top, bottom core.Colour) {
	s.SkyTop = top
	s.SkyBottom = bottom
}

// Optimise replaces the flat world list with a single BVH root. It must
// be called before rendering starts.
func (s *Scene) Optimise() {
	s.World = s.World.Optimise()
}

// PrimitiveCount returns the total number of primitives in the scene
func (s *Scene) PrimitiveCount() int {
	count := 0
	for _, object := range s.World.Objects {
		count += countPrimitives(object)
	}
	return count
}

func countPrimitives(object geometry.Hittable) int {
	switch o := object.(type) {
	case *geometry.BVHNode:
		return o.Stats().Leaves
	case *geometry.HittableList:
		count := 0
		for _, child := range o.Objects {
			count += countPrimitives(child)
		}
		return count
	default:
		return 1
	}
}
