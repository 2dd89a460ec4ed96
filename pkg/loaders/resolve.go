package loaders

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/scene"
)

// ResolveScene turns a scene reference into a scene. A reference ending in
// .scene is read as a file path; otherwise built-in scenes take precedence
// over <scenesDir>/<name>.scene. Camera overrides apply to either kind.
func ResolveScene(ref, scenesDir string, cameraOverrides ...geometry.CameraConfig) (*scene.Scene, error) {
	if ref == "" {
		return nil, fmt.Errorf("%w: empty scene name", scene.ErrUnknownScene)
	}

	path := ref
	if !strings.HasSuffix(ref, scene.SceneFileExt) {
		s, err := scene.NewBuiltinScene(ref, cameraOverrides...)
		if !errors.Is(err, scene.ErrUnknownScene) {
			return s, err
		}
		path = filepath.Join(scenesDir, ref+scene.SceneFileExt)
		if _, statErr := os.Stat(path); statErr != nil {
			return nil, fmt.Errorf("%w: %q is neither built in nor in %s", scene.ErrUnknownScene, ref, scenesDir)
		}
	}

	s, err := LoadScene(path)
	if err != nil {
		return nil, err
	}
	if len(cameraOverrides) > 0 {
		s.Camera = geometry.MergeCameraConfig(s.Camera, cameraOverrides[0])
	}
	return s, nil
}
