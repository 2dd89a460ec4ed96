package geometry

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// HittableList is an ordered collection of objects tested linearly
type HittableList struct {
	Objects []Hittable
	bbox    core.AABB
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object and grows the list's box to include it
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
	l.bbox = l.bbox.Enclose(object.BoundingBox())
}

// Len returns the number of top-level objects
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the closest hit over all objects. Each hit narrows the window
// so later objects only count when strictly nearer.
func (l *HittableList) Hit(ray core.Ray, window core.Interval) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, window); ok {
			closest = hit
			window = window.WithMax(hit.T)
		}
	}
	return closest, closest != nil
}

// BoundingBox returns the box enclosing every object
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}

// Optimise returns a new list whose only element is a BVH over the current
// objects. An empty list is returned as an empty list.
func (l *HittableList) Optimise() *HittableList {
	if len(l.Objects) == 0 {
		return NewHittableList()
	}
	return NewHittableList(NewBVHNode(l.Objects))
}

// BVH returns the root of an optimised list, or nil if the list has not
// been optimised
func (l *HittableList) BVH() *BVHNode {
	if len(l.Objects) != 1 {
		return nil
	}
	root, _ := l.Objects[0].(*BVHNode)
	return root
}
