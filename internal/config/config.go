// Package config provides YAML-based engine configuration loading for the
// demo player: tick rate, transition timing and autoplay dwell.
package config

// Config contains all tunable engine settings.
type Config struct {
	// FPS is the render tick rate. The simulation step is always 1/60 s
	// regardless of render cadence.
	FPS int `yaml:"fps"`

	// Crossfade is the transition duration in seconds, shared by all
	// effect pairs.
	Crossfade float64 `yaml:"crossfade"`

	// Dwell is seconds each effect stays active before autoplay advances.
	Dwell float64 `yaml:"dwell"`

	// Transition names the blend used between effects:
	// cut, fade, dissolve, wipe-left or wipe-down.
	Transition string `yaml:"transition"`
}

// Default returns the hardcoded fallback configuration.
func Default() Config {
	return Config{
		FPS:        60,
		Crossfade:  1.5,
		Dwell:      20,
		Transition: "dissolve",
	}
}

// Validate clamps out-of-range values to sane bounds in place.
func (c *Config) Validate() {
	if c.FPS < 10 {
		c.FPS = 10
	}
	if c.FPS > 240 {
		c.FPS = 240
	}
	if c.Crossfade < 0.1 {
		c.Crossfade = 0.1
	}
	if c.Crossfade > 10 {
		c.Crossfade = 10
	}
	if c.Dwell < 2 {
		c.Dwell = 2
	}
	if c.Dwell > 600 {
		c.Dwell = 600
	}
	if c.Transition == "" {
		c.Transition = "dissolve"
	}
}
