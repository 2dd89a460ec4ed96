package geometry

import (
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// parallelEpsilon is the smallest determinant treated as a crossing ray
const parallelEpsilon = 1e-8

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Point3        // The three vertices
	Material   *material.Material // Material of the triangle
	normal     core.Vec3          // Cached normal vector
	bbox       core.AABB          // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Point3, material *material.Material) *Triangle {
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		normal:   v1.Sub(v0).Cross(v2.Sub(v0)).Normalize(),
		bbox:     core.NewAABBFromPoints(v0, v1, v2),
	}
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore
// algorithm. The barycentric coordinates become the hit's (u, v).
func (t *Triangle) Hit(ray core.Ray, window core.Interval) (*material.HitRecord, bool) {
	if !t.bbox.Hit(ray, window) {
		return nil, false
	}

	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)

	rayCrossE2 := ray.Direction.Cross(edge2)
	det := edge1.Dot(rayCrossE2)

	// Ray lies in the plane of the triangle
	if math.Abs(det) < parallelEpsilon {
		return nil, false
	}

	invDet := 1.0 / det
	s := ray.Origin.Sub(t.V0)
	u := invDet * s.Dot(rayCrossE2)
	if u < 0 || u > 1 {
		return nil, false
	}

	sCrossE1 := s.Cross(edge1)
	v := invDet * ray.Direction.Dot(sCrossE1)
	if v < 0 || u+v > 1 {
		return nil, false
	}

	tHit := invDet * edge2.Dot(sCrossE1)
	if tHit <= parallelEpsilon || !window.Surrounds(tHit) {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        tHit,
		Point:    ray.At(tHit),
		Material: t.Material,
		U:        u,
		V:        v,
	}
	hit.SetFaceNormal(ray, t.normal)
	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Normal returns the triangle's unit normal by the V0→V1→V2 winding
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
