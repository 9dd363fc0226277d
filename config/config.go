// Package config provides configuration loading and access for the engine.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all engine configuration parameters.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Framebuffer FramebufferConfig `yaml:"framebuffer"`
	Pixel       PixelConfig       `yaml:"pixel"`
	Effect      EffectConfig      `yaml:"effect"`
	Theme       ThemeConfig       `yaml:"theme"`
	Background  BackgroundConfig  `yaml:"background"`
	Border      BorderConfig      `yaml:"border"`
	Upscale     UpscaleConfig     `yaml:"upscale"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// FramebufferConfig holds the internal 16bpp framebuffer dimensions.
type FramebufferConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PixelConfig holds the video backend identity used to select the packed
// pixel encoding at startup.
type PixelConfig struct {
	Backend string `yaml:"backend"`
}

// EffectConfig holds the particle effect selection.
type EffectConfig struct {
	Type  string  `yaml:"type"`
	Speed float64 `yaml:"speed"` // Per-tick delta multiplier (<= 0 means 1x)
}

// ThemeConfig names the preset palette.
type ThemeConfig struct {
	Name string `yaml:"name"`
}

// BackgroundConfig holds the checkerboard background options.
type BackgroundConfig struct {
	Thick bool `yaml:"thick"` // 2x2 dither blocks instead of 1x1
}

// BorderConfig holds the frame border options.
type BorderConfig struct {
	Enable bool `yaml:"enable"`
	Thick  bool `yaml:"thick"`
	Shadow bool `yaml:"shadow"`
}

// UpscaleConfig holds the internal upscale level.
// 0 disables upscaling, -1 picks the next integer multiple covering the
// viewport, positive values are a fixed multiple.
type UpscaleConfig struct {
	Level int `yaml:"level"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow     int `yaml:"perf_window"`
	ReportInterval int `yaml:"report_interval"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	FBWidth32  float32 // Framebuffer.Width as float32
	FBHeight32 float32 // Framebuffer.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// Framebuffer dimensions default sensibly if unset or nonsense
	if c.Framebuffer.Width < 1 {
		c.Framebuffer.Width = 426
	}
	if c.Framebuffer.Height < 1 {
		c.Framebuffer.Height = 240
	}
	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = 120
	}
	if c.Telemetry.ReportInterval < 1 {
		c.Telemetry.ReportInterval = 300
	}

	c.Derived.FBWidth32 = float32(c.Framebuffer.Width)
	c.Derived.FBHeight32 = float32(c.Framebuffer.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
