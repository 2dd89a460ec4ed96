package renderer

import (
	"math/rand"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// renderTile samples every pixel inside the tile bounds. Tiles never
// overlap so writes to img need no locking.
func (rt *Raytracer) renderTile(task TileTask, img *Image, progress *Progress) RenderStats {
	bounds := task.Tile.Bounds
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			var ps PixelStats
			for s := 0; s < rt.config.SamplesPerPixel; s++ {
				ps.AddSample(rt.sample(i, j, task.Random))
			}
			stats.TotalSamples += ps.SampleCount
			img.Set(i, j, rt.toRGB(ps.Colour()))
		}
	}

	progress.Add(stats.TotalPixels)
	return stats
}

// sample traces a single jittered camera ray through pixel (i, j)
func (rt *Raytracer) sample(i, j int, random *rand.Rand) core.Colour {
	ray := rt.camera.GetRay(i, j, random)
	return rt.integrator.RayColour(ray, rt.scene.World, random)
}

// toRGB converts averaged linear radiance to an output pixel
func (rt *Raytracer) toRGB(colour core.Colour) core.RGB {
	if !rt.config.Linear {
		colour = colour.GammaCorrect()
	}
	return colour.ToRGB()
}
