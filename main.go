package main

import (
	"os"

	"github.com/df07/go-scene-raytracer/cmd"
	"github.com/df07/go-scene-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("raytracer")

func newApp() *cli.App {
	scenesDirFlag := cli.StringFlag{
		Name:  "scenes-dir",
		Value: "scenes",
		Usage: "directory holding .scene files",
	}

	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-scene-raytracer"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to a PNG image",
			Description: `
Render a built-in scene or a .scene file. The scene argument is either the
name of a built-in scene, the name of a file in the scenes directory, or a
path ending in .scene.

Quality presets are selected with --profile; any explicitly given flag
overrides the preset value.`,
			ArgsUsage: "[scene]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "profile, p",
					Value: "debug",
					Usage: "quality preset: bounce, debug, insane, overnight or release",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width; the height follows the camera aspect ratio",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "bounces",
					Usage: "maximum surface interactions per path",
				},
				cli.IntFlag{
					Name:  "tile",
					Usage: "tile edge length in pixels",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers (0 = logical CPU count)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "base random seed",
				},
				cli.Float64Flag{
					Name:  "fov",
					Usage: "override the camera's vertical field of view in degrees",
				},
				cli.Float64Flag{
					Name:  "aspect",
					Usage: "override the camera's width/height ratio",
				},
				cli.Float64Flag{
					Name:  "aperture",
					Usage: "override the camera's defocus angle in degrees",
				},
				cli.Float64Flag{
					Name:  "focus",
					Usage: "override the camera's focus distance",
				},
				cli.BoolFlag{
					Name:  "linear",
					Usage: "skip gamma correction",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output image (default output/<scene>/render_<timestamp>.png)",
				},
				scenesDirFlag,
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes and scene files",
			Flags:  []cli.Flag{scenesDirFlag},
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve renders over HTTP",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port",
					Value: 8080,
					Usage: "port to listen on",
				},
				cli.IntFlag{
					Name:  "max-width",
					Value: 1920,
					Usage: "largest image width a request may ask for",
				},
				cli.IntFlag{
					Name:  "max-spp",
					Value: 1000,
					Usage: "largest sample count a request may ask for",
				},
				cli.IntFlag{
					Name:  "max-bounces",
					Value: 50,
					Usage: "largest bounce limit a request may ask for",
				},
				scenesDirFlag,
			},
			Action: cmd.Serve,
		},
	}
	return app
}

// run executes the CLI and reports any error the selected command returns.
func run(args []string) int {
	if err := newApp().Run(args); err != nil {
		logger.Error(err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args))
}
