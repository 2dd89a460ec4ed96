package geometry

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center        core.Point3 // Camera position (look-from)
	LookAt        core.Point3 // Point the camera is looking at
	Up            core.Vec3   // Up direction (usually 0,1,0)
	Width         int         // Image width in pixels
	AspectRatio   float64     // Width / height
	VFov          float64     // Vertical field of view in degrees
	DefocusAngle  float64     // Aperture cone angle in degrees (0 = pinhole)
	FocusDistance float64     // Distance to the focus plane (0 = distance to LookAt)
}

// DefaultCameraConfig returns a pinhole camera at (0,0,0) looking down -z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewPoint3(0, 0, 0),
		LookAt:      core.NewPoint3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        90,
	}
}

// Camera generates jittered primary rays through a pixel grid
type Camera struct {
	config       CameraConfig
	height       int
	pixel00      core.Point3 // Centre of pixel (0,0), the top-left pixel
	pixelDeltaU  core.Vec3   // Offset to the pixel to the right
	pixelDeltaV  core.Vec3   // Offset to the pixel below
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
}

// NewCamera derives the pixel basis from the configuration. Missing values
// fall back to an up vector of +y and a 16:9 aspect ratio.
func NewCamera(config CameraConfig) *Camera {
	if config.Up.NearZero() {
		config.Up = core.NewVec3(0, 1, 0)
	}
	if config.AspectRatio <= 0 {
		config.AspectRatio = 16.0 / 9.0
	}
	if config.FocusDistance <= 0 {
		config.FocusDistance = config.Center.Sub(config.LookAt).Length()
	}

	height := max(1, int(float64(config.Width)/config.AspectRatio))

	theta := degreesToRadians(config.VFov)
	viewportHeight := 2 * math.Tan(theta/2) * config.FocusDistance
	viewportWidth := viewportHeight * float64(config.Width) / float64(height)

	// Orthonormal basis: w points backwards, u right, v up
	w := config.Center.Sub(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)
	pixelDeltaU := viewportU.Divide(float64(config.Width))
	pixelDeltaV := viewportV.Divide(float64(height))

	upperLeft := config.Center.
		Offset(w.Multiply(-config.FocusDistance)).
		Offset(viewportU.Multiply(-0.5)).
		Offset(viewportV.Multiply(-0.5))

	defocusRadius := config.FocusDistance * math.Tan(degreesToRadians(config.DefocusAngle/2))

	return &Camera{
		config:       config,
		height:       height,
		pixel00:      upperLeft.Offset(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5)),
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// GetRay returns a ray through a random point of pixel (i, j), where j
// counts rows from the top. With a non-zero defocus angle the origin is
// drawn from the defocus disk. The ray time is uniform in [0, 1).
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	offsetU := random.Float64() - 0.5
	offsetV := random.Float64() - 0.5
	pixelSample := c.pixel00.
		Offset(c.pixelDeltaU.Multiply(float64(i) + offsetU)).
		Offset(c.pixelDeltaV.Multiply(float64(j) + offsetV))

	origin := c.config.Center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(random)
	}

	return core.NewRayAtTime(origin, pixelSample.Sub(origin), random.Float64())
}

// PixelCenter returns the world position of the centre of pixel (i, j)
func (c *Camera) PixelCenter(i, j int) core.Point3 {
	return c.pixel00.
		Offset(c.pixelDeltaU.Multiply(float64(i))).
		Offset(c.pixelDeltaV.Multiply(float64(j)))
}

func (c *Camera) defocusDiskSample(random *rand.Rand) core.Point3 {
	p := core.RandomInUnitDisk(random)
	return c.config.Center.
		Offset(c.defocusDiskU.Multiply(p.X)).
		Offset(c.defocusDiskV.Multiply(p.Y))
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.height
}

// Config returns the configuration with defaults applied
func (c *Camera) Config() CameraConfig {
	return c.config
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// ValidateOverrides reports override values no camera can use. Zero fields
// mean "keep the scene's value" and are always accepted.
func (c CameraConfig) ValidateOverrides() error {
	if c.Width < 0 {
		return fmt.Errorf("camera width must not be negative, got %d", c.Width)
	}
	if !(c.AspectRatio >= 0) || math.IsInf(c.AspectRatio, 0) {
		return fmt.Errorf("camera aspect ratio must be positive, got %v", c.AspectRatio)
	}
	if !(c.VFov >= 0 && c.VFov < 180) {
		return fmt.Errorf("camera field of view must be in (0, 180) degrees, got %v", c.VFov)
	}
	if !(c.DefocusAngle >= 0 && c.DefocusAngle < 180) {
		return fmt.Errorf("camera defocus angle must be in [0, 180) degrees, got %v", c.DefocusAngle)
	}
	if !(c.FocusDistance >= 0) || math.IsInf(c.FocusDistance, 0) {
		return fmt.Errorf("camera focus distance must be positive, got %v", c.FocusDistance)
	}
	return nil
}

// MergeCameraConfig returns base with every non-zero field of override
// applied on top
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	if override.Center != (core.Point3{}) {
		merged.Center = override.Center
	}
	if override.LookAt != (core.Point3{}) {
		merged.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		merged.Up = override.Up
	}
	if override.Width != 0 {
		merged.Width = override.Width
	}
	if override.AspectRatio != 0 {
		merged.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		merged.VFov = override.VFov
	}
	if override.DefocusAngle != 0 {
		merged.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		merged.FocusDistance = override.FocusDistance
	}
	return merged
}
