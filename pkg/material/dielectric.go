package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// refract scatters through a dielectric boundary. Total internal reflection
// and a Schlick reflectance draw both turn the ray into a mirror bounce.
func (m *Material) refract(rayIn core.Ray, hit *HitRecord, random *rand.Rand) core.Ray {
	unitDirection := rayIn.Direction.Normalize()
	mirror := unitDirection.Reflect(hit.Normal)

	// A zero index has no transmitted direction
	if m.RefractiveIndex == 0 {
		return core.NewRayAtTime(hit.Point, mirror.Normalize(), rayIn.Time)
	}

	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / m.RefractiveIndex // entering the material
	} else {
		refractionRatio = m.RefractiveIndex // leaving the material
	}

	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = mirror
	} else {
		direction = unitDirection.Refract(hit.Normal, refractionRatio)
	}

	unit, ok := direction.TryNormalize()
	if !ok {
		unit = mirror.Normalize()
	}
	return core.NewRayAtTime(hit.Point, unit, rayIn.Time)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation.
// An index of exactly 0 reflects everything and exactly 1 transmits everything.
func Reflectance(cosine, refractiveIndex float64) float64 {
	switch refractiveIndex {
	case 0:
		return 1
	case 1:
		return 0
	}
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
