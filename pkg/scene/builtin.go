package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-scene-raytracer/pkg/geometry"
)

// ErrUnknownScene is returned when no built-in scene has the requested name
var ErrUnknownScene = errors.New("unknown scene")

type builtinScene struct {
	description string
	build       func(cameraOverrides ...geometry.CameraConfig) *Scene
}

var builtins = map[string]builtinScene{
	"default":       {"Spheres of every material on a checkered ground", NewDefaultScene},
	"cornell":       {"Cornell box with a glass and a mirror sphere", NewCornellScene},
	"sphere-grid":   {"Grid of rainbow-coloured spheres of increasing smoothness", NewSphereGridScene},
	"motion-blur":   {"Bouncing spheres rendered with motion blur", NewMotionBlurScene},
	"textures":      {"One sphere per texture type", NewTextureScene},
	"triangle-mesh": {"Box, pyramid and icosphere built from triangles", NewTriangleMeshScene},
}

// NewBuiltinScene builds the named scene. The returned world is already
// optimised.
func NewBuiltinScene(name string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	builtin, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return builtin.build(cameraOverrides...), nil
}

// BuiltinNames returns the names of the built-in scenes in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
