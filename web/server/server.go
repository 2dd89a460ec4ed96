package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/df07/go-scene-raytracer/pkg/log"
	"github.com/df07/go-scene-raytracer/pkg/scene"
)

// Limits bounds the work a single request may ask for
type Limits struct {
	MaxWidth   int
	MaxSamples int
	MaxBounces int
}

// DefaultLimits returns the limits used for unset fields
func DefaultLimits() Limits {
	return Limits{MaxWidth: 1920, MaxSamples: 1000, MaxBounces: 50}
}

// Options configures the render service
type Options struct {
	Port      int
	ScenesDir string // Scene files listed by /api/scenes and used for inherit rows
	Limits    Limits
}

// Server renders scenes on request and returns PNG images
type Server struct {
	options Options
	echo    *echo.Echo
	logger  log.Logger
}

// NewServer creates a new web server
func NewServer(options Options) *Server {
	defaults := DefaultLimits()
	if options.Limits.MaxWidth <= 0 {
		options.Limits.MaxWidth = defaults.MaxWidth
	}
	if options.Limits.MaxSamples <= 0 {
		options.Limits.MaxSamples = defaults.MaxSamples
	}
	if options.Limits.MaxBounces <= 0 {
		options.Limits.MaxBounces = defaults.MaxBounces
	}

	s := &Server{
		options: options,
		echo:    echo.New(),
		logger:  log.New("server"),
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Use(middleware.Recover())

	s.echo.GET("/api/health", s.handleHealth)
	s.echo.GET("/api/scenes", s.handleScenes)
	s.echo.POST("/api/render", s.handleRenderUpload)
	s.echo.GET("/api/render/:scene", s.handleRenderScene)
	return s
}

// Handler exposes the routes for embedding or testing
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on the configured port until the server fails
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.options.Port)
	s.logger.Noticef("starting web server on http://localhost%s", addr)
	return s.echo.Start(addr)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes and the scene files on disk
func (s *Server) handleScenes(c echo.Context) error {
	scenes, err := scene.ListAllScenes(s.options.ScenesDir)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, scenes)
}

func jsonError(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]string{"error": err.Error()})
}
