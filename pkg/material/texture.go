package material

import (
	"fmt"
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// Texture provides spatially-varying colours for materials. The set of
// textures is closed: Solid, Checker, Stripe, Gradient, Perlin, Image and UV.
// Every texture is a pure function of its inputs.
type Texture interface {
	// Colour returns the colour at surface coordinates (u, v) and world point p
	Colour(u, v float64, p core.Point3) core.Colour
	texture()
}

// Solid provides a uniform colour
type Solid struct {
	Value core.Colour
}

// NewSolid creates a new solid colour texture
func NewSolid(colour core.Colour) *Solid {
	return &Solid{Value: colour}
}

// Colour returns the solid colour regardless of UV or position
func (s *Solid) Colour(u, v float64, p core.Point3) core.Colour {
	return s.Value
}

// Checker alternates between two textures on a u/v grid of cells
type Checker struct {
	Even, Odd Texture
	Scale     float64 // cell size in texture space
}

// NewChecker creates a checker texture with cells of the given size
func NewChecker(even, odd Texture, scale float64) *Checker {
	return &Checker{Even: even, Odd: odd, Scale: scale}
}

// Colour picks Even or Odd by the parity of floor(u/scale)+floor(v/scale)
func (c *Checker) Colour(u, v float64, p core.Point3) core.Colour {
	cell := int64(math.Floor(u/c.Scale)) + int64(math.Floor(v/c.Scale))
	if cell%2 == 0 {
		return c.Even.Colour(u, v, p)
	}
	return c.Odd.Colour(u, v, p)
}

// Direction selects which surface coordinate drives a stripe or gradient
type Direction int

const (
	DirectionU Direction = iota
	DirectionV
	DirectionUV
)

// ParseDirection converts "u", "v" or "uv" to a Direction
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "u":
		return DirectionU, nil
	case "v":
		return DirectionV, nil
	case "uv":
		return DirectionUV, nil
	}
	return 0, fmt.Errorf("unknown texture direction %q", name)
}

// coordinate returns the value of (u, v) along the direction
func (d Direction) coordinate(u, v float64) float64 {
	switch d {
	case DirectionV:
		return v
	case DirectionUV:
		return (u + v) / 2
	default:
		return u
	}
}

// Stripe alternates between two textures in bands along one coordinate
type Stripe struct {
	Even, Odd Texture
	Scale     float64
	Direction Direction
}

// NewStripe creates a stripe texture
func NewStripe(even, odd Texture, scale float64, direction Direction) *Stripe {
	return &Stripe{Even: even, Odd: odd, Scale: scale, Direction: direction}
}

// Colour picks Even or Odd by the parity of the band index
func (s *Stripe) Colour(u, v float64, p core.Point3) core.Colour {
	band := int64(math.Floor(s.Direction.coordinate(u, v) / s.Scale))
	if band%2 == 0 {
		return s.Even.Colour(u, v, p)
	}
	return s.Odd.Colour(u, v, p)
}

// Gradient blends from Bottom (coordinate 0) to Top (coordinate 1)
type Gradient struct {
	Bottom, Top Texture
	Direction   Direction
}

// NewGradient creates a gradient texture
func NewGradient(bottom, top Texture, direction Direction) *Gradient {
	return &Gradient{Bottom: bottom, Top: top, Direction: direction}
}

// Colour linearly interpolates between the two textures
func (g *Gradient) Colour(u, v float64, p core.Point3) core.Colour {
	t := core.Clamp(g.Direction.coordinate(u, v), 0, 1)
	return g.Bottom.Colour(u, v, p).Lerp(g.Top.Colour(u, v, p), t)
}

// UV visualises texture coordinates: u drives red and v drives blue
type UV struct{}

// NewUV creates a UV debug texture
func NewUV() *UV {
	return &UV{}
}

// Colour maps (u, v) to (u, 0, v)
func (UV) Colour(u, v float64, p core.Point3) core.Colour {
	return core.NewColour(u, 0, v)
}

func (*Solid) texture()    {}
func (*Checker) texture()  {}
func (*Stripe) texture()   {}
func (*Gradient) texture() {}
func (*Perlin) texture()   {}
func (*Image) texture()    {}
func (UV) texture()        {}
