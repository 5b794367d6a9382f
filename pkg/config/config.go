// Package config loads the optional mindgraph.toml configuration file.
//
// The file supplies defaults for canvas dimensions, theme colors, the
// watermark, and cache selection. Command-line flags always win over the
// file; the file wins over the built-in defaults.
//
// # Discovery
//
// When no explicit path is given, the loader looks for mindgraph.toml in
// the working directory, then for config.toml under the user config
// directory (~/.config/mindgraph on Linux). A missing file is not an
// error; it just means built-in defaults.
//
// # Example
//
//	[dimensions]
//	width = 900
//	height = 650
//
//	[theme]
//	background = "#fafafa"
//
//	[theme.topic]
//	fill = "#1f4e79"
//
//	[watermark]
//	text = "ClassroomAI"
//	opacity = 0.25
//
//	[cache]
//	redis_addr = "localhost:6379"
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lycosa9527/mindgraph/pkg/errors"
	"github.com/lycosa9527/mindgraph/pkg/theme"
)

// FileName is the config file name looked up in the working directory.
const FileName = "mindgraph.toml"

// Config mirrors the TOML file. Zero values mean "not configured" and
// leave the built-in defaults untouched.
type Config struct {
	Dimensions Dimensions `toml:"dimensions"`
	Theme      Theme      `toml:"theme"`
	Watermark  Watermark  `toml:"watermark"`
	Cache      Cache      `toml:"cache"`
}

// Dimensions configures the canvas floors and font sizes.
type Dimensions struct {
	Width         float64 `toml:"width"`
	Height        float64 `toml:"height"`
	Padding       float64 `toml:"padding"`
	TopicFontSize float64 `toml:"topic_font_size"`
	LabelFontSize float64 `toml:"label_font_size"`
}

// Style configures the colors for one node role.
type Style struct {
	Fill        string  `toml:"fill"`
	Text        string  `toml:"text"`
	Stroke      string  `toml:"stroke"`
	StrokeWidth float64 `toml:"stroke_width"`
}

// Theme configures colors and typography.
type Theme struct {
	Background string `toml:"background"`
	FontFamily string `toml:"font_family"`

	Topic      Style `toml:"topic"`
	Attribute  Style `toml:"attribute"`
	Similarity Style `toml:"similarity"`
	Difference Style `toml:"difference"`
	Context    Style `toml:"context"`
	Boundary   Style `toml:"boundary"`
	Accent     Style `toml:"accent"`

	UniformPairs bool `toml:"uniform_pairs"`
}

// Watermark configures the branding label.
type Watermark struct {
	Disabled bool    `toml:"disabled"`
	Text     string  `toml:"text"`
	Opacity  float64 `toml:"opacity"`
}

// Cache selects the cache backend. When RedisAddr is set the redis
// backend is used and Directory is ignored; otherwise the file backend
// under Directory (or the default cache directory when empty).
type Cache struct {
	Disabled      bool   `toml:"disabled"`
	Directory     string `toml:"directory"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads path when given, otherwise the discovered file.
// When nothing is found it returns an empty config, not an error.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	found, ok := Discover()
	if !ok {
		return &Config{}, nil
	}
	return Load(found)
}

// Discover returns the first config file found in the standard
// locations: the working directory, then the user config directory.
func Discover() (string, bool) {
	if _, err := os.Stat(FileName); err == nil {
		return FileName, true
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	path := filepath.Join(dir, "mindgraph", "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path, true
	}
	return "", false
}

// Validate checks every configured value. Unset fields are skipped, so
// a partial file stays valid.
func (c *Config) Validate() error {
	if c.Dimensions.Width < 0 || c.Dimensions.Height < 0 || c.Dimensions.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "dimensions must not be negative")
	}
	if s := c.Dimensions.TopicFontSize; s != 0 {
		if err := errors.ValidateFontSize("dimensions.topic_font_size", s); err != nil {
			return err
		}
	}
	if s := c.Dimensions.LabelFontSize; s != 0 {
		if err := errors.ValidateFontSize("dimensions.label_font_size", s); err != nil {
			return err
		}
	}

	if c.Theme.Background != "" {
		if err := errors.ValidateColor("theme.background", c.Theme.Background); err != nil {
			return err
		}
	}
	styles := []struct {
		name  string
		style Style
	}{
		{"topic", c.Theme.Topic},
		{"attribute", c.Theme.Attribute},
		{"similarity", c.Theme.Similarity},
		{"difference", c.Theme.Difference},
		{"context", c.Theme.Context},
		{"boundary", c.Theme.Boundary},
		{"accent", c.Theme.Accent},
	}
	for _, s := range styles {
		if err := validateStyle("theme."+s.name, s.style); err != nil {
			return err
		}
	}

	return errors.ValidateOpacity("watermark.opacity", c.Watermark.Opacity)
}

func validateStyle(prefix string, s Style) error {
	colors := []struct {
		name  string
		value string
	}{
		{prefix + ".fill", s.Fill},
		{prefix + ".text", s.Text},
		{prefix + ".stroke", s.Stroke},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		if err := errors.ValidateColor(c.name, c.value); err != nil {
			return err
		}
	}
	if s.StrokeWidth < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "%s.stroke_width must not be negative", prefix)
	}
	return nil
}

// ToTheme converts the theme and watermark sections into theme overrides
// suitable for Theme.Merge. Unset fields stay zero and keep defaults.
func (c *Config) ToTheme() theme.Theme {
	return theme.Theme{
		Background:   c.Theme.Background,
		FontFamily:   c.Theme.FontFamily,
		Topic:        toStyle(c.Theme.Topic),
		Attribute:    toStyle(c.Theme.Attribute),
		Similarity:   toStyle(c.Theme.Similarity),
		Difference:   toStyle(c.Theme.Difference),
		Context:      toStyle(c.Theme.Context),
		Boundary:     toStyle(c.Theme.Boundary),
		Accent:       toStyle(c.Theme.Accent),
		UniformPairs: c.Theme.UniformPairs,
		Watermark: theme.Watermark{
			Disabled: c.Watermark.Disabled,
			Text:     c.Watermark.Text,
			Opacity:  c.Watermark.Opacity,
		},
	}
}

func toStyle(s Style) theme.Style {
	return theme.Style{
		Fill:        s.Fill,
		Text:        s.Text,
		Stroke:      s.Stroke,
		StrokeWidth: s.StrokeWidth,
	}
}
