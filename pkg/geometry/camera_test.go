package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

func TestCamera_Height(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		aspect   float64
		expected int
	}{
		{"square", 100, 1, 100},
		{"16:9", 800, 16.0 / 9.0, 450},
		{"default aspect", 1920, 0, 1080},
		{"very wide clamps to one row", 10, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			config.Width = tt.width
			config.AspectRatio = tt.aspect
			if got := NewCamera(config).Height(); got != tt.expected {
				t.Errorf("Expected height %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestCamera_PixelGrid(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:      core.NewPoint3(0, 0, 0),
		LookAt:      core.NewPoint3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       2,
		AspectRatio: 1,
		VFov:        90,
	})

	// A 90 degree square viewport at distance 1 spans [-1,1]², so pixel
	// centres of a 2x2 image sit at ±0.5
	tests := []struct {
		i, j     int
		expected core.Point3
	}{
		{0, 0, core.NewPoint3(-0.5, 0.5, -1)},
		{1, 0, core.NewPoint3(0.5, 0.5, -1)},
		{0, 1, core.NewPoint3(-0.5, -0.5, -1)},
		{1, 1, core.NewPoint3(0.5, -0.5, -1)},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.expected, camera.PixelCenter(tt.i, tt.j), approx); diff != "" {
			t.Errorf("pixel (%d,%d) mismatch (-want +got):\n%s", tt.i, tt.j, diff)
		}
	}
}

func TestCamera_GetRayStaysInsidePixel(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:      core.NewPoint3(0, 0, 5),
		LookAt:      core.NewPoint3(0, 0, 0),
		Width:       64,
		AspectRatio: 1,
		VFov:        40,
	})
	random := rand.New(rand.NewSource(1))
	center := camera.PixelCenter(10, 20)
	halfPixel := camera.PixelCenter(11, 20).Sub(center).Length() / 2

	for k := 0; k < 200; k++ {
		ray := camera.GetRay(10, 20, random)
		if ray.Origin != camera.Config().Center {
			t.Fatalf("pinhole ray should start at the camera centre, got %v", ray.Origin)
		}
		if ray.Time < 0 || ray.Time >= 1 {
			t.Fatalf("ray time %v outside [0,1)", ray.Time)
		}
		// The focus plane is the look-at plane z=0, so the ray reaches it at t=1
		offset := ray.At(1).Sub(center)
		if math.Abs(offset.X) > halfPixel+1e-12 || math.Abs(offset.Y) > halfPixel+1e-12 || math.Abs(offset.Z) > 1e-12 {
			t.Fatalf("sample %v outside pixel around %v", ray.At(1), center)
		}
	}
}

func TestCamera_DefocusDisk(t *testing.T) {
	config := CameraConfig{
		Center:        core.NewPoint3(0, 0, 0),
		LookAt:        core.NewPoint3(0, 0, -10),
		Up:            core.NewVec3(0, 1, 0),
		Width:         32,
		AspectRatio:   1,
		VFov:          30,
		DefocusAngle:  2,
		FocusDistance: 10,
	}
	camera := NewCamera(config)
	radius := 10 * math.Tan(degreesToRadians(1))
	random := rand.New(rand.NewSource(4))

	moved := false
	for k := 0; k < 200; k++ {
		ray := camera.GetRay(16, 16, random)
		offset := ray.Origin.Sub(config.Center)
		if offset.Length() > radius+1e-12 {
			t.Fatalf("origin %v outside defocus disk of radius %v", ray.Origin, radius)
		}
		if math.Abs(offset.Z) > 1e-12 {
			t.Fatalf("defocus disk should lie in the image plane, got %v", offset)
		}
		if offset.Length() > 0 {
			moved = true
		}
	}
	if !moved {
		t.Error("Expected defocus to move ray origins")
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := DefaultCameraConfig()
	override := CameraConfig{Width: 123, VFov: 20, LookAt: core.NewPoint3(1, 2, 3)}

	want := base
	want.Width = 123
	want.VFov = 20
	want.LookAt = core.NewPoint3(1, 2, 3)

	if diff := cmp.Diff(want, MergeCameraConfig(base, override)); diff != "" {
		t.Errorf("merged config mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(base, MergeCameraConfig(base, CameraConfig{})); diff != "" {
		t.Errorf("empty override should change nothing (-want +got):\n%s", diff)
	}
}

func TestCameraConfig_ValidateOverrides(t *testing.T) {
	tests := []struct {
		name        string
		config      CameraConfig
		expectError bool
	}{
		{"empty", CameraConfig{}, false},
		{"usable values", CameraConfig{Width: 64, AspectRatio: 2, VFov: 40, DefocusAngle: 1, FocusDistance: 3}, false},
		{"negative width", CameraConfig{Width: -1}, true},
		{"negative aspect", CameraConfig{AspectRatio: -2}, true},
		{"nan aspect", CameraConfig{AspectRatio: math.NaN()}, true},
		{"fov of 180", CameraConfig{VFov: 180}, true},
		{"negative defocus", CameraConfig{DefocusAngle: -1}, true},
		{"infinite focus", CameraConfig{FocusDistance: math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.ValidateOverrides()
			if tt.expectError && err == nil {
				t.Error("Expected error, got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
