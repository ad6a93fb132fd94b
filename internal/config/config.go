// Package config loads the viewer configuration from an optional YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFrameInterval is the ~60 Hz pacing of the render loop.
const DefaultFrameInterval = 16_666_667 * time.Nanosecond

// Config holds every setting of a run. Zero values mean "variant default".
type Config struct {
	Variant  string `yaml:"variant"`
	LogLevel string `yaml:"log_level"`
	HUD      bool   `yaml:"hud"`
	Depth    bool   `yaml:"depth"`

	// Hz overrides the frame rate; 0 keeps DefaultFrameInterval.
	Hz int `yaml:"hz,omitempty"`

	// Scale overrides the variant's fixed scale factor when non-zero.
	Scale float32 `yaml:"scale,omitempty"`

	Window   Window   `yaml:"window"`
	Headless Headless `yaml:"headless"`
}

// Window overrides the variant's surface placement.
type Window struct {
	Title  string `yaml:"title,omitempty"`
	X      *int   `yaml:"x,omitempty"` // pointer to distinguish unset vs 0
	Y      *int   `yaml:"y,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// Headless configures the no-window host.
type Headless struct {
	Enabled       bool   `yaml:"enabled"`
	Ticks         uint64 `yaml:"ticks,omitempty"`
	Snapshot      string `yaml:"snapshot,omitempty"`
	SnapshotScale int    `yaml:"snapshot_scale,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Variant:  "cube",
		LogLevel: "info",
	}
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("config file not found, using defaults", "path", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r into cfg. Unknown keys are rejected.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks ranges. It does not know the variant table; callers
// resolve Variant themselves.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Variant) == "" {
		return errors.New("variant must be set")
	}
	if c.Hz < 0 {
		return fmt.Errorf("invalid hz: %d", c.Hz)
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Headless.SnapshotScale < 0 {
		return fmt.Errorf("invalid snapshot scale: %d", c.Headless.SnapshotScale)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// FrameInterval returns the wait between frame deadlines.
func (c Config) FrameInterval() time.Duration {
	if c.Hz <= 0 {
		return DefaultFrameInterval
	}
	return time.Second / time.Duration(c.Hz)
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}
