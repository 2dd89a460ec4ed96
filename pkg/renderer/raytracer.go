package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/integrator"
	"github.com/df07/go-scene-raytracer/pkg/log"
	"github.com/df07/go-scene-raytracer/pkg/scene"
)

// Raytracer renders a scene into an Image
type Raytracer struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	integrator integrator.Integrator
	config     Config
	logger     log.Logger
}

// NewRaytracer validates config and prepares the camera. A nil logger
// logs under the "renderer" module.
func NewRaytracer(scn *scene.Scene, config Config, logger log.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render config: %w", err)
	}
	if logger == nil {
		logger = log.New("renderer")
	}

	cameraConfig := scn.Camera
	if config.Width > 0 {
		cameraConfig.Width = config.Width
	}
	if cameraConfig.Width <= 0 {
		return nil, fmt.Errorf("scene %q has no image width", scn.Name)
	}

	return &Raytracer{
		scene:      scn,
		camera:     geometry.NewCamera(cameraConfig),
		integrator: integrator.NewPathTracingIntegrator(config.MaxBounces, scn.SkyTop, scn.SkyBottom),
		config:     config,
		logger:     logger,
	}, nil
}

// Camera returns the camera rays are generated from
func (rt *Raytracer) Camera() *geometry.Camera {
	return rt.camera
}

// Render traces every pixel and returns the image with its statistics.
// Pixels are independent; the output for a given seed does not depend on
// how tiles are scheduled.
func (rt *Raytracer) Render() (*Image, RenderStats) {
	start := time.Now()
	width, height := rt.camera.Width(), rt.camera.Height()
	img := NewImage(width, height)
	progress := NewProgress(width*height, rt.logger)

	tiles := NewTileGrid(width, height, rt.config.TileSize)
	pool := NewWorkerPool(rt.config.Workers(), func(task TileTask) RenderStats {
		return rt.renderTile(task, img, progress)
	})

	rt.logger.Infof("rendering %q at %dx%d, %d spp, %d bounces, %d tiles on %d workers",
		rt.scene.Name, width, height, rt.config.SamplesPerPixel, rt.config.MaxBounces, len(tiles), pool.NumWorkers())

	stats := RenderStats{
		Width:   width,
		Height:  height,
		Tiles:   len(tiles),
		Workers: pool.NumWorkers(),
	}
	for _, result := range pool.Run(NewTileTasks(tiles, rt.config.Seed)) {
		stats.merge(result.Stats)
	}

	stats.Elapsed = time.Since(start)
	stats.AverageLuminance = img.AverageLuminance()
	if root := rt.scene.World.BVH(); root != nil {
		stats.BVH = root.Stats()
	}
	return img, stats
}
