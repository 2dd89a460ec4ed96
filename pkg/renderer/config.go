package renderer

import (
	"errors"
	"fmt"
	"runtime"
	"sort"

	"github.com/shirou/gopsutil/cpu"
)

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width, overrides the scene camera when > 0
	SamplesPerPixel int   // Number of rays per pixel
	MaxBounces      int   // Maximum number of surface interactions per path
	TileSize        int   // Edge length of the square tiles handed to workers
	NumWorkers      int   // Number of parallel workers (0 = logical CPU count)
	Seed            int64 // Base seed; tile k draws from Seed+k
	Linear          bool  // Skip gamma correction
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		SamplesPerPixel: 100,
		MaxBounces:      10,
		TileSize:        32,
		NumWorkers:      0,
		Seed:            42,
	}
}

// profiles mirror the quality presets of the command line
var profiles = map[string]Config{
	"debug":     {Width: 800, SamplesPerPixel: 10, MaxBounces: 10},
	"release":   {Width: 800, SamplesPerPixel: 100, MaxBounces: 10},
	"insane":    {Width: 800, SamplesPerPixel: 1000, MaxBounces: 10},
	"overnight": {Width: 1920, SamplesPerPixel: 5000, MaxBounces: 10},
	"bounce":    {Width: 800, SamplesPerPixel: 100, MaxBounces: 50},
}

// ErrUnknownProfile is returned by ProfileConfig for names with no preset
var ErrUnknownProfile = errors.New("unknown render profile")

// ProfileConfig returns the default configuration with the named preset's
// width, samples and bounces applied
func ProfileConfig(name string) (Config, error) {
	profile, ok := profiles[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownProfile, name, ProfileNames())
	}
	config := DefaultConfig()
	config.Width = profile.Width
	config.SamplesPerPixel = profile.SamplesPerPixel
	config.MaxBounces = profile.MaxBounces
	return config, nil
}

// ProfileNames returns the preset names in sorted order
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the configuration before a render starts
func (c Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", c.Width)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxBounces <= 0 {
		return fmt.Errorf("max bounces must be positive, got %d", c.MaxBounces)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %d", c.TileSize)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("worker count must not be negative, got %d", c.NumWorkers)
	}
	return nil
}

// Workers resolves NumWorkers, asking the host for its logical CPU count
// when it is zero
func (c Config) Workers() int {
	if c.NumWorkers > 0 {
		return c.NumWorkers
	}
	if count, err := cpu.Counts(true); err == nil && count > 0 {
		return count
	}
	return runtime.NumCPU()
}
