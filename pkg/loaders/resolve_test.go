package loaders

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/scene"
)

func TestResolveScene(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "orb", "(0,0,5),(0,0,0),30\ncolour;c;1,1,1\ntexture;t;solid;c\nmaterial;m;opaque;0,t\nobject;sphere;(0,0,0),1,m\n")
	// A file shadowing a built-in name is only reachable by path
	writeSceneFile(t, dir, "cornell", "(0,0,5),(0,0,0),30\n")

	tests := []struct {
		name          string
		ref           string
		expectedName  string
		expectedError error
	}{
		{"builtin", "default", "default", nil},
		{"builtin wins over file", "cornell", "cornell", nil},
		{"file by name", "orb", "orb", nil},
		{"file by path", filepath.Join(dir, "orb.scene"), "orb", nil},
		{"unknown", "nonexistent", "", scene.ErrUnknownScene},
		{"empty", "", "", scene.ErrUnknownScene},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ResolveScene(tt.ref, dir, geometry.CameraConfig{Width: 24})
			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("Expected %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveScene(%q) error: %v", tt.ref, err)
			}
			if s.Name != tt.expectedName {
				t.Errorf("Expected scene %q, got %q", tt.expectedName, s.Name)
			}
			if s.Camera.Width != 24 {
				t.Errorf("Expected camera override width 24, got %d", s.Camera.Width)
			}
		})
	}
}

func TestResolveScene_CornellIsBuiltin(t *testing.T) {
	s, err := ResolveScene("cornell", t.TempDir())
	if err != nil {
		t.Fatalf("ResolveScene() error: %v", err)
	}
	if s.PrimitiveCount() < 10 {
		t.Errorf("Expected the built-in Cornell box, got %d primitives", s.PrimitiveCount())
	}
}
