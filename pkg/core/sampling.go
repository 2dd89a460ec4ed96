package core

import (
	"math/rand"
)

// RandomUnitVector returns a direction uniformly distributed on the unit
// sphere. Three independent normal deviates give an isotropic direction.
func RandomUnitVector(random *rand.Rand) Vec3 {
	for {
		v := NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64())
		if unit, ok := v.TryNormalize(); ok {
			return unit
		}
	}
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		// Accept if inside unit disk
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomInRange returns a uniform value in [lo, hi)
func RandomInRange(random *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*random.Float64()
}
