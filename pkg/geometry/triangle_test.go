package geometry

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

func unitTriangle() *Triangle {
	return NewTriangle(
		core.NewPoint3(0, 0, 0),
		core.NewPoint3(1, 0, 0),
		core.NewPoint3(0, 1, 0),
		testMaterial(),
	)
}

func TestTriangle_Hit(t *testing.T) {
	triangle := unitTriangle()

	tests := []struct {
		name          string
		origin        core.Point3
		direction     core.Vec3
		shouldHit     bool
		expectedT     float64
		expectedFront bool
	}{
		{
			name:          "centroid from front",
			origin:        core.NewPoint3(1.0/3, 1.0/3, 1),
			direction:     core.NewVec3(0, 0, -1),
			shouldHit:     true,
			expectedT:     1,
			expectedFront: true,
		},
		{
			name:          "centroid from behind",
			origin:        core.NewPoint3(1.0/3, 1.0/3, -2),
			direction:     core.NewVec3(0, 0, 1),
			shouldHit:     true,
			expectedT:     2,
			expectedFront: false,
		},
		{
			name:      "outside the hypotenuse",
			origin:    core.NewPoint3(0.8, 0.8, 1),
			direction: core.NewVec3(0, 0, -1),
			shouldHit: false,
		},
		{
			name:      "parallel to plane",
			origin:    core.NewPoint3(0.2, 0.2, 1),
			direction: core.NewVec3(1, 0, 0),
			shouldHit: false,
		},
		{
			name:      "triangle behind ray",
			origin:    core.NewPoint3(0.2, 0.2, -1),
			direction: core.NewVec3(0, 0, -1),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := triangle.Hit(core.NewRay(tt.origin, tt.direction), hitWindow)
			if ok != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, ok)
			}
			if !ok {
				return
			}
			if diff := cmp.Diff(tt.expectedT, hit.T, approx); diff != "" {
				t.Errorf("t mismatch (-want +got):\n%s", diff)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %v, got %v", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal.Dot(tt.direction) >= 0 {
				t.Errorf("Normal %v should face against the ray", hit.Normal)
			}
		})
	}
}

func TestTriangle_BarycentricUV(t *testing.T) {
	triangle := unitTriangle()
	ray := core.NewRay(core.NewPoint3(0.25, 0.5, 1), core.NewVec3(0, 0, -1))

	hit, ok := triangle.Hit(ray, hitWindow)
	if !ok {
		t.Fatal("Expected hit")
	}
	if diff := cmp.Diff([2]float64{0.25, 0.5}, [2]float64{hit.U, hit.V}, approx); diff != "" {
		t.Errorf("uv mismatch (-want +got):\n%s", diff)
	}
}

func TestTriangle_RespectsWindow(t *testing.T) {
	triangle := unitTriangle()
	ray := core.NewRay(core.NewPoint3(0.2, 0.2, 3), core.NewVec3(0, 0, -1))

	if _, ok := triangle.Hit(ray, core.NewInterval(0.001, 2)); ok {
		t.Error("Expected miss when the hit lies beyond the window")
	}
	if _, ok := triangle.Hit(ray, core.NewInterval(0.001, 3.5)); !ok {
		t.Error("Expected hit inside the window")
	}
}

func TestTriangle_BoundingBox(t *testing.T) {
	triangle := NewTriangle(core.NewPoint3(-1, 2, 0), core.NewPoint3(3, -1, 1), core.NewPoint3(0, 0, -2), testMaterial())
	want := core.NewAABBFromCorners(core.NewPoint3(-1, -1, -2), core.NewPoint3(3, 2, 1))
	if diff := cmp.Diff(want, triangle.BoundingBox()); diff != "" {
		t.Errorf("bounding box mismatch (-want +got):\n%s", diff)
	}
}
