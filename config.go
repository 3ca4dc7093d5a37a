package kynto

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/Mattiemus/Kynto2-sub008/graphics"
)

// GraphicsConfig selects the rendering backend.
type GraphicsConfig struct {
	// Backend is a registered backend name; empty picks the best
	// available backend by priority.
	Backend string `toml:"backend"`
	// VSync synchronizes presentation with the display refresh.
	VSync bool `toml:"vsync"`
}

// WindowConfig describes the native window the engine opens.
type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Resizable bool   `toml:"resizable"`
}

// Config is the engine configuration, decoded from TOML.
type Config struct {
	Graphics GraphicsConfig `toml:"graphics"`
	Window   WindowConfig   `toml:"window"`
}

// DefaultConfig returns the configuration used when nothing is
// specified: automatic backend selection, vsync on, a resizable
// 1280x720 window.
func DefaultConfig() Config {
	return Config{
		Graphics: GraphicsConfig{VSync: true},
		Window: WindowConfig{
			Title:     "Kynto",
			Width:     1280,
			Height:    720,
			Resizable: true,
		},
	}
}

// ParseConfig decodes TOML over the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("kynto: parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("kynto: read config: %w", err)
	}
	return ParseConfig(data)
}

func (c Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("kynto: window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Graphics.Backend == "" {
		return nil
	}
	for _, name := range graphics.Backends() {
		if name == c.Graphics.Backend {
			return nil
		}
	}
	return fmt.Errorf("kynto: unknown backend %q (registered: %v)",
		c.Graphics.Backend, graphics.Backends())
}
