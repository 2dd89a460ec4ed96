package geometry

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

func TestHittableList_ReturnsClosestHit(t *testing.T) {
	far := NewSphere(core.NewPoint3(0, 0, -10), 1, testMaterial())
	near := NewSphere(core.NewPoint3(0, 0, -4), 1, testMaterial())
	ray := core.NewRay(core.NewPoint3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Order must not matter
	for _, list := range []*HittableList{NewHittableList(far, near), NewHittableList(near, far)} {
		hit, ok := list.Hit(ray, hitWindow)
		if !ok {
			t.Fatal("Expected hit")
		}
		if hit.Material != near.Material {
			t.Error("Expected the nearer sphere")
		}
		if diff := cmp.Diff(3.0, hit.T, approx); diff != "" {
			t.Errorf("t mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()
	ray := core.NewRay(core.NewPoint3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, ok := list.Hit(ray, hitWindow); ok {
		t.Error("Expected empty list to miss")
	}
	if !list.BoundingBox().IsEmpty() {
		t.Error("Expected empty list to have an empty box")
	}
	if optimised := list.Optimise(); optimised.Len() != 0 || optimised.BVH() != nil {
		t.Error("Expected optimising an empty list to give an empty list")
	}
}

func TestHittableList_BoundingBoxGrows(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(core.NewPoint3(0, 0, 0), 1, testMaterial()))
	list.Add(NewTriangle(core.NewPoint3(2, 0, 0), core.NewPoint3(3, 0, 0), core.NewPoint3(2, 4, 0), testMaterial()))

	want := core.NewAABBFromCorners(core.NewPoint3(-1, -1, -1), core.NewPoint3(3, 4, 1))
	if diff := cmp.Diff(want, list.BoundingBox()); diff != "" {
		t.Errorf("bounding box mismatch (-want +got):\n%s", diff)
	}
}

func TestHittableList_Optimise(t *testing.T) {
	random := rand.New(rand.NewSource(5))
	objects := randomSphereField(random, 3)
	list := NewHittableList(objects...)

	optimised := list.Optimise()
	if optimised.Len() != 1 || optimised.BVH() == nil {
		t.Fatalf("Expected a single BVH root, got %d objects", optimised.Len())
	}
	if list.Len() != len(objects) {
		t.Error("Optimise must not modify the original list")
	}
	if diff := cmp.Diff(list.BoundingBox(), optimised.BoundingBox(), approx); diff != "" {
		t.Errorf("bounding box changed (-before +after):\n%s", diff)
	}

	for i := 0; i < 500; i++ {
		ray := core.NewRay(core.NewPoint3(-5, -5, -5), core.RandomUnitVector(random))
		want, wantOK := list.Hit(ray, hitWindow)
		got, gotOK := optimised.Hit(ray, hitWindow)
		if wantOK != gotOK || (wantOK && want.Material != got.Material) {
			t.Fatalf("ray %d: optimised list disagrees with linear scan", i)
		}
	}
}
