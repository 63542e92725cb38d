// Package config handles loading and saving pianofolio configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config:  ~/.config/pianofolio/config.yaml
//   - Content: ~/.config/pianofolio/content.yaml (optional section overrides)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vanderheijden86/pianofolio/pkg/resume"
)

const appName = "pianofolio"

// ProfileConfig overrides the header identity and contact actions.
type ProfileConfig struct {
	Name      string `yaml:"name,omitempty"`
	Headline  string `yaml:"headline,omitempty"`
	Tagline   string `yaml:"tagline,omitempty"`
	Phone     string `yaml:"phone,omitempty"`
	Email     string `yaml:"email,omitempty"`
	Link      string `yaml:"link,omitempty"`
	LinkLabel string `yaml:"link_label,omitempty"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme           string `yaml:"theme,omitempty"`            // auto, dark, light
	SmallBreakpoint int    `yaml:"small_breakpoint,omitempty"` // columns below which the keyboard becomes a panel
}

// AudioConfig controls tone output.
type AudioConfig struct {
	Enabled    *bool `yaml:"enabled,omitempty"`
	SampleRate int   `yaml:"sample_rate,omitempty"`
}

// InputConfig controls keyboard routing.
type InputConfig struct {
	InitialRepeatMs int `yaml:"initial_repeat_ms,omitempty"`
	RepeatWindowMs  int `yaml:"repeat_window_ms,omitempty"`
}

// ContentConfig points at an optional section override file.
type ContentConfig struct {
	Path  string `yaml:"path,omitempty"`
	Watch bool   `yaml:"watch,omitempty"`
}

// Config is the top-level configuration.
type Config struct {
	Profile ProfileConfig `yaml:"profile,omitempty"`
	UI      UIConfig      `yaml:"ui,omitempty"`
	Audio   AudioConfig   `yaml:"audio,omitempty"`
	Input   InputConfig   `yaml:"input,omitempty"`
	Content ContentConfig `yaml:"content,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	enabled := true
	return Config{
		UI: UIConfig{
			Theme:           "auto",
			SmallBreakpoint: 100,
		},
		Audio: AudioConfig{
			Enabled:    &enabled,
			SampleRate: 44100,
		},
		Input: InputConfig{
			InitialRepeatMs: 600,
			RepeatWindowMs:  90,
		},
		Content: ContentConfig{
			Path:  defaultContentPath(),
			Watch: true,
		},
	}
}

// ConfigDir returns the XDG config directory.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

func defaultContentPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "content.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	def := DefaultConfig()

	switch strings.ToLower(strings.TrimSpace(c.UI.Theme)) {
	case "dark", "light":
		c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	default:
		c.UI.Theme = "auto"
	}
	if c.UI.SmallBreakpoint <= 0 {
		c.UI.SmallBreakpoint = def.UI.SmallBreakpoint
	}
	if c.Audio.Enabled == nil {
		c.Audio.Enabled = def.Audio.Enabled
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = def.Audio.SampleRate
	}
	if c.Input.InitialRepeatMs <= 0 {
		c.Input.InitialRepeatMs = def.Input.InitialRepeatMs
	}
	if c.Input.RepeatWindowMs <= 0 {
		c.Input.RepeatWindowMs = def.Input.RepeatWindowMs
	}
	c.Content.Path = expandHome(c.Content.Path)
}

// SoundEnabled reports whether tones should be produced.
func (c Config) SoundEnabled() bool {
	return c.Audio.Enabled == nil || *c.Audio.Enabled
}

// InitialRepeatDelay returns how long after a key-down the first auto-repeat
// may arrive.
func (c Config) InitialRepeatDelay() time.Duration {
	return time.Duration(c.Input.InitialRepeatMs) * time.Millisecond
}

// RepeatWindow returns the auto-repeat suppression window.
func (c Config) RepeatWindow() time.Duration {
	return time.Duration(c.Input.RepeatWindowMs) * time.Millisecond
}

// ResolvedProfile returns the built-in profile with config overrides applied.
func (c Config) ResolvedProfile() resume.Profile {
	return resume.DefaultProfile().Merge(resume.Profile{
		Name:      c.Profile.Name,
		Headline:  c.Profile.Headline,
		Tagline:   c.Profile.Tagline,
		Phone:     c.Profile.Phone,
		Email:     c.Profile.Email,
		Link:      c.Profile.Link,
		LinkLabel: c.Profile.LinkLabel,
	})
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
