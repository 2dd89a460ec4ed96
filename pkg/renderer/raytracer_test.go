package renderer

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/integrator"
	"github.com/df07/go-scene-raytracer/pkg/material"
	"github.com/df07/go-scene-raytracer/pkg/scene"
)

// newSphereScene places a diffuse unit sphere at the origin seen from +z
func newSphereScene() *scene.Scene {
	s := scene.New("unit-sphere", geometry.CameraConfig{
		Center: core.NewPoint3(0, 0, 5),
		LookAt: core.NewPoint3(0, 0, 0),
		VFov:   40,
	})
	s.Add(geometry.NewSphere(core.NewPoint3(0, 0, 0), 1, material.NewOpaque(0, material.NewSolid(core.NewColour(0.8, 0.3, 0.3)))))
	s.Optimise()
	return s
}

func testConfig() Config {
	config := DefaultConfig()
	config.Width = 32
	config.SamplesPerPixel = 1
	config.MaxBounces = 1
	config.TileSize = 8
	config.NumWorkers = 2
	return config
}

func TestRaytracer_SingleSphere(t *testing.T) {
	s := newSphereScene()
	config := testConfig()

	rt, err := NewRaytracer(s, config, nil)
	if err != nil {
		t.Fatalf("NewRaytracer() error: %v", err)
	}
	img, stats := rt.Render()

	if img.Width != 32 || img.Height != 18 {
		t.Fatalf("Expected 32x18 image, got %dx%d", img.Width, img.Height)
	}

	// The corner ray misses and is the first draw of tile 0's generator
	random := rand.New(rand.NewSource(config.Seed))
	cornerRay := rt.Camera().GetRay(0, 0, random)
	sky := integrator.NewPathTracingIntegrator(config.MaxBounces, s.SkyTop, s.SkyBottom).SkyColour(cornerRay)
	expectedCorner := sky.GammaCorrect().ToRGB()
	if got := img.At(0, 0); got != expectedCorner {
		t.Errorf("Expected corner pixel %v, got %v", expectedCorner, got)
	}

	// A single bounce off the diffuse sphere exhausts the path
	centre := img.At(16, 9)
	if centre != (core.RGB{}) {
		t.Errorf("Expected black centre pixel with one bounce, got %v", centre)
	}
	if centre == expectedCorner {
		t.Error("Expected centre pixel to differ from the sky")
	}

	if stats.TotalPixels != 32*18 {
		t.Errorf("Expected %d pixels, got %d", 32*18, stats.TotalPixels)
	}
	if stats.TotalSamples != 32*18 {
		t.Errorf("Expected %d samples, got %d", 32*18, stats.TotalSamples)
	}
	if stats.Tiles != 4*3 {
		t.Errorf("Expected 12 tiles, got %d", stats.Tiles)
	}
	if stats.Workers != 2 {
		t.Errorf("Expected 2 workers, got %d", stats.Workers)
	}
	if stats.BVH.Leaves != 1 {
		t.Errorf("Expected BVH with one leaf, got %+v", stats.BVH)
	}
}

func TestRaytracer_DeterministicAcrossWorkers(t *testing.T) {
	s, err := scene.NewBuiltinScene("default")
	if err != nil {
		t.Fatalf("NewBuiltinScene() error: %v", err)
	}

	render := func(workers int) *Image {
		config := testConfig()
		config.SamplesPerPixel = 4
		config.MaxBounces = 5
		config.NumWorkers = workers
		rt, err := NewRaytracer(s, config, nil)
		if err != nil {
			t.Fatalf("NewRaytracer() error: %v", err)
		}
		img, _ := rt.Render()
		return img
	}

	single := render(1)
	for _, workers := range []int{3, 8} {
		if diff := cmp.Diff(single.Pix, render(workers).Pix); diff != "" {
			t.Errorf("Render with %d workers differs from single worker (-want +got):\n%s", workers, diff)
		}
	}
}

func TestRaytracer_SeedChangesNoise(t *testing.T) {
	s, err := scene.NewBuiltinScene("default")
	if err != nil {
		t.Fatalf("NewBuiltinScene() error: %v", err)
	}

	render := func(seed int64) *Image {
		config := testConfig()
		config.MaxBounces = 5
		config.Seed = seed
		rt, err := NewRaytracer(s, config, nil)
		if err != nil {
			t.Fatalf("NewRaytracer() error: %v", err)
		}
		img, _ := rt.Render()
		return img
	}

	if cmp.Equal(render(1).Pix, render(2).Pix) {
		t.Error("Expected different seeds to produce different noise")
	}
}

func TestRaytracer_Linear(t *testing.T) {
	s := newSphereScene()
	config := testConfig()
	config.Linear = true

	rt, err := NewRaytracer(s, config, nil)
	if err != nil {
		t.Fatalf("NewRaytracer() error: %v", err)
	}
	img, _ := rt.Render()

	random := rand.New(rand.NewSource(config.Seed))
	sky := integrator.NewPathTracingIntegrator(config.MaxBounces, s.SkyTop, s.SkyBottom).SkyColour(rt.Camera().GetRay(0, 0, random))
	if got := img.At(0, 0); got != sky.ToRGB() {
		t.Errorf("Expected linear corner pixel %v, got %v", sky.ToRGB(), got)
	}
}

func TestNewRaytracer_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero samples", func(c *Config) { c.SamplesPerPixel = 0 }},
		{"zero bounces", func(c *Config) { c.MaxBounces = 0 }},
		{"zero tile size", func(c *Config) { c.TileSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testConfig()
			tt.modify(&config)
			if _, err := NewRaytracer(newSphereScene(), config, nil); err == nil {
				t.Error("Expected error for invalid config")
			}
		})
	}
}

func TestNewRaytracer_WidthFromScene(t *testing.T) {
	s := newSphereScene()
	config := testConfig()
	config.Width = 0

	if _, err := NewRaytracer(s, config, nil); err == nil {
		t.Error("Expected error when neither scene nor config sets a width")
	}

	s.Camera.Width = 48
	rt, err := NewRaytracer(s, config, nil)
	if err != nil {
		t.Fatalf("NewRaytracer() error: %v", err)
	}
	if rt.Camera().Width() != 48 {
		t.Errorf("Expected scene width 48, got %d", rt.Camera().Width())
	}
}
