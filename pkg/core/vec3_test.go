package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		v, n     Vec3
		expected Vec3
	}{
		{"head on", NewVec3(0, -1, 0), NewVec3(0, 1, 0), NewVec3(0, 1, 0)},
		{"45 degrees", NewVec3(1, -1, 0), NewVec3(0, 1, 0), NewVec3(1, 1, 0)},
		{"grazing", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, tt.v.Reflect(tt.n), approx); diff != "" {
				t.Errorf("Reflect mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVec3_RefractSnellsLaw(t *testing.T) {
	normal := NewVec3(0, 1, 0)
	incidentAngle := math.Pi / 6
	in := NewVec3(math.Sin(incidentAngle), -math.Cos(incidentAngle), 0)
	eta := 1.0 / 1.5

	out := in.Refract(normal, eta)

	sinOut := out.X / out.Length()
	if math.Abs(sinOut-eta*math.Sin(incidentAngle)) > 1e-9 {
		t.Errorf("Expected sin(theta_t)=%f, got %f", eta*math.Sin(incidentAngle), sinOut)
	}
	if out.Y >= 0 {
		t.Errorf("Refracted ray should continue below the surface, got %v", out)
	}
}

func TestVec3_RefractStraightThrough(t *testing.T) {
	// cos_theta is capped at 1 so round-off on a head-on ray cannot produce NaN
	in := NewVec3(0, -1.0000000001, 0)
	out := in.Refract(NewVec3(0, 1, 0), 1.0)
	if math.IsNaN(out.X) || math.IsNaN(out.Y) || math.IsNaN(out.Z) {
		t.Fatalf("Refract produced NaN: %v", out)
	}
}

func TestVec3_NormalizeZeroLength(t *testing.T) {
	got := Vec3{}.Normalize()
	if got != (Vec3{}) {
		t.Errorf("Expected zero vector fallback, got %v", got)
	}
	if _, ok := (Vec3{}).TryNormalize(); ok {
		t.Error("Expected TryNormalize to fail for the zero vector")
	}

	unit := NewVec3(3, 4, 0).Normalize()
	if math.Abs(unit.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", unit.Length())
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-9, 1e-7, 0).NearZero() {
		t.Error("Expected vector with one component above epsilon not to be near zero")
	}
}

func TestPoint3_Arithmetic(t *testing.T) {
	a := NewPoint3(1, 2, 3)
	b := NewPoint3(4, 6, 3)

	d := b.Sub(a)
	if d != NewVec3(3, 4, 0) {
		t.Errorf("Expected displacement (3,4,0), got %v", d)
	}
	if a.Offset(d) != b {
		t.Errorf("Expected a + (b - a) == b, got %v", a.Offset(d))
	}
	if mid := a.Lerp(b, 0.5); mid != NewPoint3(2.5, 4, 3) {
		t.Errorf("Expected midpoint (2.5,4,3), got %v", mid)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewPoint3(1, 0, 0), NewVec3(0, 2, 0))
	if got := ray.At(1.5); got != NewPoint3(1, 3, 0) {
		t.Errorf("Expected (1,3,0), got %v", got)
	}
}

func TestRandomUnitVector(t *testing.T) {
	random := rand.New(rand.NewSource(1))
	var sum Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		v := RandomUnitVector(random)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit vector, got length %f", v.Length())
		}
		sum = sum.Add(v)
	}
	mean := sum.Divide(n)
	if mean.Length() > 0.05 {
		t.Errorf("Expected isotropic distribution with mean near zero, got %v", mean)
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(random)
		if p.Z != 0 || p.LengthSquared() >= 1 {
			t.Fatalf("Point %v is outside the unit disk", p)
		}
	}
}

func TestColour_ToRGB(t *testing.T) {
	tests := []struct {
		name     string
		colour   Colour
		expected RGB
	}{
		{"black", Black, RGB{0, 0, 0}},
		{"white", White, RGB{255, 255, 255}},
		{"clamped", NewColour(2, -1, 0.5), RGB{255, 0, 127}},
		{"nan is black", NewColour(math.NaN(), 1, math.NaN()), RGB{0, 255, 0}},
		{"infinities clamp", NewColour(math.Inf(1), math.Inf(-1), 0), RGB{255, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.colour.ToRGB(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestColour_GammaCorrect(t *testing.T) {
	got := NewColour(0.25, 1, -0.5).GammaCorrect()
	if diff := cmp.Diff(NewColour(0.5, 1, 0), got, approx); diff != "" {
		t.Errorf("GammaCorrect mismatch (-want +got):\n%s", diff)
	}
}
