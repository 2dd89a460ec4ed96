package geometry

import (
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Point3
	Radius   float64
	Material *material.Material
	bbox     core.AABB
}

// NewSphere creates a new sphere. A negative radius flips the normals,
// which is useful for the inner wall of a hollow glass shell.
func NewSphere(center core.Point3, radius float64, material *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
		bbox:     sphereBox(center, radius),
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, window core.Interval) (*material.HitRecord, bool) {
	return hitSphere(ray, window, s.Center, s.Radius, s.Material)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// MovingSphere is a sphere whose centre moves linearly from Center0 at
// time 0 to Center1 at time 1
type MovingSphere struct {
	Center0, Center1 core.Point3
	Radius           float64
	Material         *material.Material
	bbox             core.AABB
}

// NewMovingSphere creates a sphere in linear motion
func NewMovingSphere(center0, center1 core.Point3, radius float64, material *material.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Radius:   radius,
		Material: material,
		bbox:     sphereBox(center0, radius).Enclose(sphereBox(center1, radius)),
	}
}

// CenterAt returns the centre at the given ray time
func (s *MovingSphere) CenterAt(time float64) core.Point3 {
	return s.Center0.Lerp(s.Center1, time)
}

// Hit tests the ray against the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, window core.Interval) (*material.HitRecord, bool) {
	return hitSphere(ray, window, s.CenterAt(ray.Time), s.Radius, s.Material)
}

// BoundingBox returns a box enclosing the whole path of motion
func (s *MovingSphere) BoundingBox() core.AABB {
	return s.bbox
}

func sphereBox(center core.Point3, radius float64) core.AABB {
	r := math.Abs(radius)
	extent := core.NewVec3(r, r, r)
	return core.NewAABBFromCorners(center.Offset(extent.Negate()), center.Offset(extent))
}

// hitSphere solves a·t² - 2h·t + c = 0 with a=|d|², h=d·(C-O), c=|C-O|²-r².
// The nearer root is preferred; the farther one is used when the nearer
// root lies outside the window, e.g. for a ray starting inside the sphere.
func hitSphere(ray core.Ray, window core.Interval, center core.Point3, radius float64, mat *material.Material) (*material.HitRecord, bool) {
	oc := center.Sub(ray.Origin)
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - radius*radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (h - sqrtD) / a
	if !window.Surrounds(root) {
		root = (h + sqrtD) / a
		if !window.Surrounds(root) {
			return nil, false
		}
	}

	hit := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: mat,
	}
	outwardNormal := hit.Point.Sub(center).Divide(radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.U, hit.V = sphereUV(outwardNormal)
	return hit, true
}

// sphereUV maps a unit outward normal to spherical texture coordinates
func sphereUV(direction core.Vec3) (u, v float64) {
	u = 0.5 + math.Atan2(direction.X, direction.Z)/(2*math.Pi)
	v = 0.5 + math.Asin(core.Clamp(direction.Y, -1, 1))/math.Pi
	return u, v
}
