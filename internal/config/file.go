package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

const (
	defaultMeshCount    = 16
	defaultWindowWidth  = 900
	defaultWindowHeight = 600
	defaultFPSLimit     = 144
	defaultSamples      = 4
	defaultRenderMode   = "wire"
	defaultLogLevel     = "info"

	maxMeshCount = 64
)

var defaultPaintColor = mgl32.Vec4{0.3, 0.9, 0.3, 1}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the on-disk editor configuration (voxedit.toml).
type Config struct {
	MeshCount    int        `toml:"mesh_count"`
	WindowWidth  int        `toml:"window_width"`
	WindowHeight int        `toml:"window_height"`
	FPSLimit     int        `toml:"fps_limit"`
	Samples      int        `toml:"samples"`
	DebugRay     bool       `toml:"debug_ray"`
	RenderMode   string     `toml:"render_mode"`
	PaintColor   [4]float32 `toml:"paint_color"`
	LogLevel     string     `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MeshCount:    defaultMeshCount,
		WindowWidth:  defaultWindowWidth,
		WindowHeight: defaultWindowHeight,
		FPSLimit:     defaultFPSLimit,
		Samples:      defaultSamples,
		RenderMode:   defaultRenderMode,
		PaintColor:   defaultPaintColor,
		LogLevel:     defaultLogLevel,
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Default(), err
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate rejects values the editor cannot run with and clamps the rest,
// the way the render settings setters do.
func (c *Config) Validate() error {
	if c.MeshCount <= 0 || c.MeshCount > maxMeshCount {
		return fmt.Errorf("%w: mesh_count %d not in [1, %d]", ErrInvalid, c.MeshCount, maxMeshCount)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.WindowWidth, c.WindowHeight)
	}
	switch strings.ToLower(c.RenderMode) {
	case "wire", "filled":
		c.RenderMode = strings.ToLower(c.RenderMode)
	default:
		return fmt.Errorf("%w: render_mode %q", ErrInvalid, c.RenderMode)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	c.FPSLimit = clampFPS(c.FPSLimit)
	c.PaintColor = clampColor(c.PaintColor)
	if c.Samples < 0 {
		c.Samples = 0
	}
	if c.Samples > 16 {
		c.Samples = 16
	}
	return nil
}

// SlogLevel returns the configured log level.
func (c Config) SlogLevel() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// Encode renders the config as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalid, s)
	}
	return l, nil
}
