package server

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/loaders"
	"github.com/df07/go-scene-raytracer/pkg/renderer"
	"github.com/df07/go-scene-raytracer/pkg/scene"
)

// defaultSamples keeps interactive requests quick when spp is not given
const defaultSamples = 10

// handleRenderUpload renders the scene description sent as the request body
func (s *Server) handleRenderUpload(c echo.Context) error {
	config, camera, err := s.parseRenderRequest(c)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	sc, err := loaders.ParseScene("upload", c.Request().Body, s.options.ScenesDir)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}
	sc.Camera = geometry.MergeCameraConfig(sc.Camera, camera)
	return s.render(c, sc, config)
}

// handleRenderScene renders a built-in scene or a file from the scenes directory
func (s *Server) handleRenderScene(c echo.Context) error {
	config, camera, err := s.parseRenderRequest(c)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	name := c.Param("scene")
	if strings.ContainsAny(name, `/\`) || strings.HasSuffix(name, scene.SceneFileExt) {
		return jsonError(c, http.StatusBadRequest, fmt.Errorf("invalid scene name %q", name))
	}

	sc, err := loaders.ResolveScene(name, s.options.ScenesDir, camera)
	if errors.Is(err, scene.ErrUnknownScene) {
		return jsonError(c, http.StatusNotFound, err)
	}
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}
	return s.render(c, sc, config)
}

// parseRenderRequest reads width, spp, bounces, seed and linear from the
// query string and checks them against the server limits. The fov and
// aspect parameters become camera overrides.
func (s *Server) parseRenderRequest(c echo.Context) (renderer.Config, geometry.CameraConfig, error) {
	limits := s.options.Limits
	config := renderer.DefaultConfig()
	config.SamplesPerPixel = min(defaultSamples, limits.MaxSamples)
	var camera geometry.CameraConfig

	err := echo.QueryParamsBinder(c).
		Int("width", &config.Width).
		Int("spp", &config.SamplesPerPixel).
		Int("bounces", &config.MaxBounces).
		Int64("seed", &config.Seed).
		Bool("linear", &config.Linear).
		Float64("fov", &camera.VFov).
		Float64("aspect", &camera.AspectRatio).
		BindError()
	if err != nil {
		return config, camera, err
	}

	if config.Width > limits.MaxWidth {
		return config, camera, fmt.Errorf("width %d exceeds the limit of %d", config.Width, limits.MaxWidth)
	}
	if config.SamplesPerPixel > limits.MaxSamples {
		return config, camera, fmt.Errorf("spp %d exceeds the limit of %d", config.SamplesPerPixel, limits.MaxSamples)
	}
	if config.MaxBounces > limits.MaxBounces {
		return config, camera, fmt.Errorf("bounces %d exceeds the limit of %d", config.MaxBounces, limits.MaxBounces)
	}
	if err := camera.ValidateOverrides(); err != nil {
		return config, camera, err
	}
	return config, camera, config.Validate()
}

func (s *Server) render(c echo.Context, sc *scene.Scene, config renderer.Config) error {
	if config.Width == 0 && sc.Camera.Width > s.options.Limits.MaxWidth {
		config.Width = s.options.Limits.MaxWidth
	}

	rt, err := renderer.NewRaytracer(sc, config, s.logger)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}
	img, stats := rt.Render()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img.ToRGBA()); err != nil {
		return jsonError(c, http.StatusInternalServerError, fmt.Errorf("failed to encode image: %w", err))
	}

	s.logger.Infof("rendered %q at %dx%d in %s", sc.Name, stats.Width, stats.Height, stats.Elapsed)
	c.Response().Header().Set("X-Render-Samples", fmt.Sprintf("%d", stats.TotalSamples))
	c.Response().Header().Set("X-Render-Elapsed", stats.Elapsed.String())
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
