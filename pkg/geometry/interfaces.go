package geometry

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// Hittable is anything a ray can be intersected with. The set of
// implementations is closed: *Sphere, *MovingSphere, *Triangle, *BVHNode and
// *HittableList.
type Hittable interface {
	// Hit returns the nearest intersection whose t lies strictly inside window
	Hit(ray core.Ray, window core.Interval) (*material.HitRecord, bool)
	BoundingBox() core.AABB
	hittable()
}

func (*Sphere) hittable()       {}
func (*MovingSphere) hittable() {}
func (*Triangle) hittable()     {}
func (*BVHNode) hittable()      {}
func (*HittableList) hittable() {}
