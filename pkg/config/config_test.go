package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lycosa9527/mindgraph/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[dimensions]
width = 900
height = 650
padding = 30
topic_font_size = 20

[theme]
background = "#fafafa"
font_family = "Georgia, serif"

[theme.topic]
fill = "#1f4e79"
stroke_width = 3

[watermark]
text = "ClassroomAI"
opacity = 0.25

[cache]
redis_addr = "localhost:6379"
redis_db = 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Dimensions.Width != 900 || cfg.Dimensions.Height != 650 {
		t.Errorf("dimensions = %vx%v, want 900x650", cfg.Dimensions.Width, cfg.Dimensions.Height)
	}
	if cfg.Dimensions.TopicFontSize != 20 {
		t.Errorf("TopicFontSize = %v, want 20", cfg.Dimensions.TopicFontSize)
	}
	if cfg.Theme.Background != "#fafafa" {
		t.Errorf("Background = %q, want #fafafa", cfg.Theme.Background)
	}
	if cfg.Theme.Topic.Fill != "#1f4e79" || cfg.Theme.Topic.StrokeWidth != 3 {
		t.Errorf("Topic style = %+v, want fill #1f4e79 width 3", cfg.Theme.Topic)
	}
	if cfg.Watermark.Text != "ClassroomAI" || cfg.Watermark.Opacity != 0.25 {
		t.Errorf("Watermark = %+v", cfg.Watermark)
	}
	if cfg.Cache.RedisAddr != "localhost:6379" || cfg.Cache.RedisDB != 2 {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if errors.GetCode(err) != errors.ErrCodeFileNotFound {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, `[dimensions`)
	_, err := Load(path)
	if errors.GetCode(err) != errors.ErrCodeInvalidConfig {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
	}
}

func TestLoadBadColor(t *testing.T) {
	path := writeConfig(t, `
[theme.topic]
fill = "url(javascript:alert(1))"
`)
	_, err := Load(path)
	if errors.GetCode(err) != errors.ErrCodeInvalidTheme {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidTheme)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "empty", cfg: Config{}, wantErr: false},
		{name: "negative width", cfg: Config{Dimensions: Dimensions{Width: -1}}, wantErr: true},
		{name: "huge font", cfg: Config{Dimensions: Dimensions{TopicFontSize: 400}}, wantErr: true},
		{name: "opacity above one", cfg: Config{Watermark: Watermark{Opacity: 1.5}}, wantErr: true},
		{name: "negative stroke", cfg: Config{Theme: Theme{Topic: Style{StrokeWidth: -2}}}, wantErr: true},
		{name: "named color", cfg: Config{Theme: Theme{Boundary: Style{Fill: "none"}}}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	// Explicit path
	path := writeConfig(t, `[dimensions]
width = 800`)
	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault() error: %v", err)
	}
	if cfg.Dimensions.Width != 800 {
		t.Errorf("Width = %v, want 800", cfg.Dimensions.Width)
	}

	// Nothing to discover yields an empty config
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err = LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault(\"\") error: %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestDiscoverWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(""), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)

	path, ok := Discover()
	if !ok {
		t.Fatal("Discover() should find the working directory file")
	}
	if path != FileName {
		t.Errorf("path = %q, want %q", path, FileName)
	}
}

func TestToTheme(t *testing.T) {
	cfg := Config{
		Theme: Theme{
			Background:   "#fafafa",
			Topic:        Style{Fill: "#1f4e79"},
			UniformPairs: true,
		},
		Watermark: Watermark{Text: "ClassroomAI", Opacity: 0.25},
	}

	th := cfg.ToTheme()
	if th.Background != "#fafafa" {
		t.Errorf("Background = %q, want #fafafa", th.Background)
	}
	if th.Topic.Fill != "#1f4e79" {
		t.Errorf("Topic.Fill = %q, want #1f4e79", th.Topic.Fill)
	}
	if !th.UniformPairs {
		t.Error("UniformPairs should carry over")
	}
	if th.Watermark.Text != "ClassroomAI" || th.Watermark.Opacity != 0.25 {
		t.Errorf("Watermark = %+v", th.Watermark)
	}

	// Unset fields stay zero so Merge keeps defaults
	if th.Attribute.Fill != "" {
		t.Errorf("Attribute.Fill = %q, want empty", th.Attribute.Fill)
	}
}
