package renderer

import (
	"time"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width            int
	Height           int
	TotalPixels      int               // Total number of pixels rendered
	TotalSamples     int               // Total number of camera rays traced
	Tiles            int               // Number of tiles scheduled
	Workers          int               // Number of parallel workers
	Elapsed          time.Duration     // Wall-clock time of the render
	AverageLuminance float64           // Mean output luminance in [0,1]
	BVH              geometry.BVHStats // Shape of the scene hierarchy, zero if unoptimised
}

// SamplesPerSecond returns camera rays traced per second of wall time
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}

// merge adds the counters of a finished tile
func (s *RenderStats) merge(tile RenderStats) {
	s.TotalPixels += tile.TotalPixels
	s.TotalSamples += tile.TotalSamples
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColourAccum core.Colour // Sum of sample radiance
	SampleCount int         // Number of samples taken
}

// AddSample adds a new colour sample to the pixel statistics
func (ps *PixelStats) AddSample(colour core.Colour) {
	ps.ColourAccum = ps.ColourAccum.Add(colour)
	ps.SampleCount++
}

// Colour returns the current average colour for this pixel
func (ps *PixelStats) Colour() core.Colour {
	if ps.SampleCount == 0 {
		return core.Black
	}
	return ps.ColourAccum.Multiply(1.0 / float64(ps.SampleCount))
}
