package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/loaders"
	"github.com/df07/go-scene-raytracer/pkg/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// RenderScene renders a built-in scene or scene file to a PNG image.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	config, err := renderConfig(ctx)
	if err != nil {
		return err
	}

	overrides, err := cameraOverrides(ctx)
	if err != nil {
		return err
	}

	ref := "default"
	if ctx.NArg() > 0 {
		ref = ctx.Args().First()
	}
	sc, err := loaders.ResolveScene(ref, ctx.String("scenes-dir"), overrides)
	if err != nil {
		return err
	}
	logger.Infof("loaded scene %q with %d primitives", sc.Name, sc.PrimitiveCount())

	rt, err := renderer.NewRaytracer(sc, config, logger)
	if err != nil {
		return err
	}
	img, stats := rt.Render()

	out := ctx.String("out")
	if out == "" {
		out = filepath.Join("output", sc.Name, fmt.Sprintf("render_%s.png", time.Now().Format("20060102_150405")))
	}
	if err := writePNG(out, img); err != nil {
		return err
	}

	displayRenderStats(stats)
	logger.Noticef("render saved as %s", out)
	return nil
}

// renderConfig starts from the selected profile and applies any flags the
// user set explicitly.
func renderConfig(ctx *cli.Context) (renderer.Config, error) {
	config, err := renderer.ProfileConfig(ctx.String("profile"))
	if err != nil {
		return config, err
	}

	if ctx.IsSet("width") {
		config.Width = ctx.Int("width")
	}
	if ctx.IsSet("spp") {
		config.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("bounces") {
		config.MaxBounces = ctx.Int("bounces")
	}
	if ctx.IsSet("tile") {
		config.TileSize = ctx.Int("tile")
	}
	if ctx.IsSet("workers") {
		config.NumWorkers = ctx.Int("workers")
	}
	if ctx.IsSet("seed") {
		config.Seed = ctx.Int64("seed")
	}
	config.Linear = ctx.Bool("linear")

	return config, config.Validate()
}

// cameraOverrides collects the camera flags. Unset flags stay zero and leave
// the scene's own camera value in place.
func cameraOverrides(ctx *cli.Context) (geometry.CameraConfig, error) {
	overrides := geometry.CameraConfig{
		VFov:          ctx.Float64("fov"),
		AspectRatio:   ctx.Float64("aspect"),
		DefocusAngle:  ctx.Float64("aperture"),
		FocusDistance: ctx.Float64("focus"),
	}
	return overrides, overrides.ValidateOverrides()
}

func writePNG(filename string, img *renderer.Image) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img.ToRGBA()); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return file.Close()
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Samples", "Tiles", "Workers", "BVH nodes", "BVH depth", "Luminance", "Samples/s"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.BVH.Nodes),
		fmt.Sprintf("%d", stats.BVH.MaxDepth),
		fmt.Sprintf("%.3f", stats.AverageLuminance),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
	})
	table.SetFooter([]string{"", "", "", "", "", "", "TOTAL", stats.Elapsed.Round(time.Millisecond).String()})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
