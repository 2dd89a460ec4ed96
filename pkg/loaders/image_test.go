package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// writeTestPNG saves a 2x2 image: white, red on top and green, blue below
func writeTestPNG(t *testing.T, filename string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, A: 255})
	img.Set(0, 1, color.RGBA{G: 255, A: 255})
	img.Set(1, 1, color.RGBA{B: 255, A: 255})

	f, err := os.Create(filename)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
}

func TestLoadImage(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.png")
	writeTestPNG(t, testFile)

	texture, err := LoadImage(testFile)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if texture.Width != 2 || texture.Height != 2 {
		t.Errorf("Expected 2x2 image, got %dx%d", texture.Width, texture.Height)
	}

	expected := []core.Colour{
		core.White,
		core.NewColour(1, 0, 0),
		core.NewColour(0, 1, 0),
		core.NewColour(0, 0, 1),
	}
	if diff := cmp.Diff(expected, texture.Pixels, cmpopts.EquateApprox(0, 0.01)); diff != "" {
		t.Errorf("Pixel mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadImage_Errors(t *testing.T) {
	dir := t.TempDir()
	notImage := filepath.Join(dir, "notes.png")
	if err := os.WriteFile(notImage, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	for _, filename := range []string{filepath.Join(dir, "missing.png"), notImage} {
		if _, err := LoadImage(filename); err == nil {
			t.Errorf("Expected error loading %s, got nil", filename)
		}
	}
}
