package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

func TestBuiltinScenes(t *testing.T) {
	for _, name := range BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			s, err := NewBuiltinScene(name, geometry.CameraConfig{Width: 32})
			if err != nil {
				t.Fatalf("NewBuiltinScene(%q) error: %v", name, err)
			}
			if s.Name != name {
				t.Errorf("Expected scene name %q, got %q", name, s.Name)
			}
			if s.Camera.Width != 32 {
				t.Errorf("Expected camera override width 32, got %d", s.Camera.Width)
			}
			if s.World.BVH() == nil {
				t.Error("Expected built-in scene to be optimised")
			}
			if s.PrimitiveCount() == 0 {
				t.Error("Expected primitives in scene")
			}
		})
	}
}

func TestNewBuiltinScene_Unknown(t *testing.T) {
	_, err := NewBuiltinScene("nope")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestPrimitiveCount(t *testing.T) {
	s := New("count", geometry.DefaultCameraConfig())
	mat := material.NewOpaque(0, material.NewSolid(core.White))
	s.Add(geometry.NewSphere(core.NewPoint3(0, 0, 0), 1, mat))
	s.AddQuad(core.NewPoint3(-1, -1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), mat)

	if got := s.PrimitiveCount(); got != 3 {
		t.Errorf("Expected 3 primitives before optimising, got %d", got)
	}
	s.Optimise()
	if got := s.PrimitiveCount(); got != 3 {
		t.Errorf("Expected 3 primitives after optimising, got %d", got)
	}
}

func TestAddQuadCoversParallelogram(t *testing.T) {
	s := New("quad", geometry.DefaultCameraConfig())
	mat := material.NewOpaque(0, material.NewSolid(core.White))
	s.AddQuad(core.NewPoint3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0), mat)

	window := core.NewInterval(0.001, math.Inf(1))
	tests := []struct {
		x, y float64
		hit  bool
	}{
		{0.1, 0.9, true},
		{1.9, 0.1, true},
		{1.0, 0.25, true},
		{2.1, 0.5, false},
		{1.0, 1.1, false},
	}
	for _, tt := range tests {
		ray := core.NewRay(core.NewPoint3(tt.x, tt.y, 1), core.NewVec3(0, 0, -1))
		if _, ok := s.World.Hit(ray, window); ok != tt.hit {
			t.Errorf("(%v,%v): expected hit=%v, got %v", tt.x, tt.y, tt.hit, ok)
		}
	}
}

func TestOklchToRGBInRange(t *testing.T) {
	for hue := 0.0; hue < 360; hue += 15 {
		c := oklchToRGB(0.7, 0.15, hue)
		for _, channel := range []float64{c.R, c.G, c.B} {
			if channel < 0 || channel > 1 {
				t.Fatalf("hue %v: channel %v outside [0,1]", hue, channel)
			}
		}
	}
}
