package cmd

import (
	"github.com/df07/go-scene-raytracer/web/server"
	"github.com/urfave/cli"
)

// Serve starts the HTTP render service.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	srv := server.NewServer(server.Options{
		Port:      ctx.Int("port"),
		ScenesDir: ctx.String("scenes-dir"),
		Limits: server.Limits{
			MaxWidth:   ctx.Int("max-width"),
			MaxSamples: ctx.Int("max-spp"),
			MaxBounces: ctx.Int("max-bounces"),
		},
	})

	logger.Noticef("visit http://localhost:%d/api/scenes to list scenes", ctx.Int("port"))
	return srv.Start()
}
