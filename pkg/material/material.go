package material

import (
	"math/rand"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// minRefractiveIndex keeps glass away from a zero index
const minRefractiveIndex = 1e-7

// Material describes how a surface is coloured and how it scatters light.
//
// Smoothness blends between diffuse (0) and mirror (1) reflection. Glass
// materials ignore smoothness and refract or reflect by Schlick's
// approximation. Lights emit their texture colour and end the path.
type Material struct {
	Smoothness      float64
	Texture         Texture
	IsGlass         bool
	RefractiveIndex float64
	IsLight         bool
}

// NewMaterial creates a material with every property specified
func NewMaterial(smoothness float64, texture Texture, isGlass bool, refractiveIndex float64, isLight bool) *Material {
	return &Material{
		Smoothness:      core.Clamp(smoothness, 0, 1),
		Texture:         texture,
		IsGlass:         isGlass,
		RefractiveIndex: refractiveIndex,
		IsLight:         isLight,
	}
}

// NewOpaque creates a non-refractive material
func NewOpaque(smoothness float64, texture Texture) *Material {
	return NewMaterial(smoothness, texture, false, 0, false)
}

// NewGlass creates a dielectric material
func NewGlass(refractiveIndex float64, texture Texture) *Material {
	return NewMaterial(0, texture, true, max(refractiveIndex, minRefractiveIndex), false)
}

// NewLight creates an emissive material
func NewLight(texture Texture) *Material {
	return NewMaterial(0, texture, false, 0, true)
}

// Colour samples the material's texture at the hit
func (m *Material) Colour(hit *HitRecord) core.Colour {
	return m.Texture.Colour(hit.U, hit.V, hit.Point)
}

// Scatter returns the outgoing ray for a bounce at hit. The returned
// direction has unit length and the ray keeps the incoming ray's time.
func (m *Material) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) core.Ray {
	if m.IsGlass {
		return m.refract(rayIn, hit, random)
	}
	return m.lerpReflect(rayIn, hit, random)
}

// lerpReflect blends a diffuse and a specular bounce by smoothness
func (m *Material) lerpReflect(rayIn core.Ray, hit *HitRecord, random *rand.Rand) core.Ray {
	diffuse := diffuseDirection(hit.Normal, random)
	specular := rayIn.Direction.Normalize().Reflect(hit.Normal)

	direction, ok := diffuse.Lerp(specular, m.Smoothness).TryNormalize()
	if !ok {
		direction = hit.Normal
	}
	return core.NewRayAtTime(hit.Point, direction, rayIn.Time)
}

// diffuseDirection returns normal + a random unit vector, falling back to
// the normal itself when the two nearly cancel
func diffuseDirection(normal core.Vec3, random *rand.Rand) core.Vec3 {
	direction := normal.Add(core.RandomUnitVector(random))
	if direction.NearZero() {
		return normal
	}
	return direction.Normalize()
}
