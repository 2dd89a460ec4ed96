package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
)

// HitWindow is the ray parameter range searched at every bounce. The lower
// bound keeps a scattered ray from re-hitting the surface it leaves.
var HitWindow = core.NewInterval(0.001, math.Inf(1))

var (
	DefaultSkyTop    = core.NewColour(0.5, 0.7, 1.0)
	DefaultSkyBottom = core.NewColour(1, 1, 1)
)

// PathTracingIntegrator implements unidirectional path tracing. Each bounce
// multiplies the path throughput by the surface colour; radiance is only
// collected when the path escapes to the sky or reaches a light.
type PathTracingIntegrator struct {
	MaxBounces int
	SkyTop     core.Colour
	SkyBottom  core.Colour
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxBounces int, skyTop, skyBottom core.Colour) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxBounces: maxBounces,
		SkyTop:     skyTop,
		SkyBottom:  skyBottom,
	}
}

// RayColour walks the ray through the world for at most MaxBounces
// intersections. A path that runs out of bounces without reaching the sky
// or a light returns black.
func (pt *PathTracingIntegrator) RayColour(ray core.Ray, world geometry.Hittable, random *rand.Rand) core.Colour {
	throughput := core.White

	for depth := 0; depth < pt.MaxBounces; depth++ {
		hit, isHit := world.Hit(ray, HitWindow)
		if !isHit {
			return throughput.MultiplyColour(pt.SkyColour(ray))
		}

		throughput = throughput.MultiplyColour(hit.Material.Colour(hit))
		if hit.Material.IsLight {
			return throughput
		}

		ray = hit.Material.Scatter(ray, hit, random)
	}

	return core.Black
}

// SkyColour blends from SkyBottom to SkyTop by the vertical component of
// the ray's unit direction
func (pt *PathTracingIntegrator) SkyColour(ray core.Ray) core.Colour {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return pt.SkyBottom.Lerp(pt.SkyTop, t)
}
