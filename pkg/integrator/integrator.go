package integrator

import (
	"math/rand"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColour returns the radiance carried back along ray. random must not
	// be shared between goroutines.
	RayColour(ray core.Ray, world geometry.Hittable, random *rand.Rand) core.Colour
}
