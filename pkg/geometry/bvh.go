package geometry

import (
	"sort"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// BVHNode is an interior node of a bounding volume hierarchy. Children are
// either primitives or further nodes; a node built from a single object
// holds that object on both sides.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	bbox  core.AABB
}

// BVHStats summarises the shape of a hierarchy
type BVHStats struct {
	Nodes    int // interior nodes
	Leaves   int // distinct primitive references
	MaxDepth int // longest root-to-leaf path in nodes
}

// NewBVHNode builds a hierarchy over objects. The slice is copied so the
// caller's order is left untouched. It panics on an empty slice.
func NewBVHNode(objects []Hittable) *BVHNode {
	if len(objects) == 0 {
		panic("geometry: BVH over no objects")
	}
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)
	return buildBVH(objectsCopy)
}

// buildBVH splits objects at the middle after sorting by box minimum on the
// longest axis of their combined box. Each level halves the slice, so the
// recursion depth is ceil(log2 n).
func buildBVH(objects []Hittable) *BVHNode {
	bbox := core.EmptyAABB
	for _, object := range objects {
		bbox = bbox.Enclose(object.BoundingBox())
	}

	node := &BVHNode{bbox: bbox}
	switch len(objects) {
	case 1:
		node.Left = objects[0]
		node.Right = objects[0]
	case 2:
		node.Left = objects[0]
		node.Right = objects[1]
	default:
		axis := bbox.LongestAxis()
		sort.SliceStable(objects, func(i, j int) bool {
			return objects[i].BoundingBox().Axis(axis).Min < objects[j].BoundingBox().Axis(axis).Min
		})
		mid := len(objects) / 2
		node.Left = buildBVH(objects[:mid])
		node.Right = buildBVH(objects[mid:])
	}
	return node
}

// Hit tests the left subtree first, then the right subtree with the window
// narrowed to the left hit so only strictly nearer hits replace it
func (n *BVHNode) Hit(ray core.Ray, window core.Interval) (*material.HitRecord, bool) {
	if !n.bbox.Hit(ray, window) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, window)
	if hitLeft {
		window = window.WithMax(leftHit.T)
	}
	if rightHit, hitRight := n.Right.Hit(ray, window); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the box enclosing both children
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// Stats walks the hierarchy and counts nodes, leaves and depth
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	n.collectStats(1, &stats)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	children := []Hittable{n.Left}
	if n.Right != n.Left {
		children = append(children, n.Right)
	}
	for _, child := range children {
		if inner, ok := child.(*BVHNode); ok {
			inner.collectStats(depth+1, stats)
		} else {
			stats.Leaves++
		}
	}
}
