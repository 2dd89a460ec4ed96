package core

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB encloses nothing; it is the identity for Enclose
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates an AABB from per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromCorners creates the box spanned by two opposite corners given in any order
func NewAABBFromCorners(a, b Point3) AABB {
	return AABB{
		X: NewInterval(min(a.X, b.X), max(a.X, b.X)),
		Y: NewInterval(min(a.Y, b.Y), max(a.Y, b.Y)),
		Z: NewInterval(min(a.Z, b.Z), max(a.Z, b.Z)),
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Point3) AABB {
	box := EmptyAABB
	for _, p := range points {
		box = box.Enclose(NewAABBFromCorners(p, p))
	}
	return box
}

// NewAABBFromBoxes creates the union of two boxes
func NewAABBFromBoxes(a, b AABB) AABB {
	return a.Enclose(b)
}

// Enclose returns the smallest box containing both boxes
func (b AABB) Enclose(other AABB) AABB {
	return AABB{
		X: b.X.Enclose(other.X),
		Y: b.Y.Enclose(other.Y),
		Z: b.Z.Enclose(other.Z),
	}
}

// Axis returns the interval for axis 0 (X), 1 (Y) or 2 (Z)
func (b AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return b.X
	case 1:
		return b.Y
	case 2:
		return b.Z
	}
	panic("core: axis out of range")
}

// Hit tests whether the ray enters the box within the interval using the
// slab method. A zero direction component gives an infinite inverse and the
// comparisons below accept or reject it without a special case; NaN slab
// times (origin exactly on a slab plane) fail every comparison and leave
// the running window unchanged.
func (b AABB) Hit(ray Ray, window Interval) bool {
	tMin, tMax := window.Min, window.Max
	for axis := 0; axis < 3; axis++ {
		slab := b.Axis(axis)
		origin := ray.Origin.Axis(axis)
		invDirection := 1.0 / ray.Direction.Axis(axis)

		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax < tMin {
			return false
		}
	}
	return true
}

// LongestAxis returns the axis with the largest extent. Ties are broken in
// the fixed order X, then Z, then Y.
func (b AABB) LongestAxis() int {
	longest := 0
	for _, axis := range [2]int{2, 1} {
		if b.Axis(axis).Size() > b.Axis(longest).Size() {
			longest = axis
		}
	}
	return longest
}

// Center returns the centre point of the box
func (b AABB) Center() Point3 {
	return NewPoint3(
		(b.X.Min+b.X.Max)/2,
		(b.Y.Min+b.Y.Max)/2,
		(b.Z.Min+b.Z.Max)/2,
	)
}

// Contains reports whether other lies entirely inside b
func (b AABB) Contains(other AABB) bool {
	for axis := 0; axis < 3; axis++ {
		outer, inner := b.Axis(axis), other.Axis(axis)
		if inner.Min < outer.Min || inner.Max > outer.Max {
			return false
		}
	}
	return true
}

// IsEmpty reports whether the box encloses nothing on some axis
func (b AABB) IsEmpty() bool {
	return b.X.Min > b.X.Max || b.Y.Min > b.Y.Max || b.Z.Min > b.Z.Max
}
