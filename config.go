package quadra

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Config holds the settings a Game is created from.
//
// A config file is YAML:
//
//	title: My Game
//	width: 640
//	height: 480
//	debug: false
//	screenshot_dir: screenshots
//	bindings:
//	  back: [Escape, Backspace]
//	  menu: [Tab]
//
// Omitted fields keep their DefaultConfig values. A bindings section
// replaces the default bindings entirely.
type Config struct {
	Title         string              `yaml:"title"`
	Width         int                 `yaml:"width"`
	Height        int                 `yaml:"height"`
	Debug         bool                `yaml:"debug"`
	ScreenshotDir string              `yaml:"screenshot_dir"`
	Bindings      map[string][]string `yaml:"bindings"`
}

// DefaultConfig returns a 640x480 window titled "quadra" with default
// key bindings.
func DefaultConfig() Config {
	return Config{
		Title:         "quadra",
		Width:         640,
		Height:        480,
		ScreenshotDir: "screenshots",
	}
}

// ParseConfig decodes YAML config data on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("quadra: failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the config file name from fsys. A missing
// file yields DefaultConfig.
func LoadConfig(fsys fs.FS, name string) (Config, error) {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("quadra: failed to read %s: %w", name, err)
	}
	return ParseConfig(data)
}

// Validate reports configuration values that cannot produce a window.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("quadra: invalid window size %dx%d", c.Width, c.Height)
	}
	return nil
}

// KeyBindings returns the configured bindings, or DefaultKeyBindings when
// the config has no bindings section.
func (c Config) KeyBindings() (KeyBindings, error) {
	if len(c.Bindings) == 0 {
		return DefaultKeyBindings(), nil
	}
	return ParseKeyBindings(c.Bindings)
}
