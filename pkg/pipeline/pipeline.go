// Package pipeline runs the complete parse → layout → render flow.
//
// This package implements the spec-to-artifact pipeline shared by the
// library entry points and the CLI. Centralizing it keeps caching,
// logging, and failure behavior identical everywhere a diagram is made.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: decode and normalize the JSON/YAML spec
//  2. Layout: compute node and edge geometry for the spec's diagram type
//  3. Render: emit artifacts in the requested formats (SVG, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{Formats: []string{"svg"}}
//	result, err := runner.Execute(ctx, specBytes, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Callers that must always produce an image use [RenderGraph], which
// substitutes a rendered error artifact for any failure.
package pipeline

import (
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lycosa9527/mindgraph/pkg/cache"
	"github.com/lycosa9527/mindgraph/pkg/errors"
	"github.com/lycosa9527/mindgraph/pkg/layout"
	"github.com/lycosa9527/mindgraph/pkg/spec"
	"github.com/lycosa9527/mindgraph/pkg/theme"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library
// =============================================================================

// Canvas and typography defaults, shared with pkg/layout so cache keys
// stay stable whether the caller fills options or leaves zeros.
const (
	DefaultWidth         = layout.DefaultWidth
	DefaultHeight        = layout.DefaultHeight
	DefaultPadding       = layout.DefaultPadding
	DefaultTopicFontSize = layout.DefaultTopicFontSize
	DefaultLabelFontSize = layout.DefaultLabelFontSize
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// Engine constants for SVG emission.
const (
	// EngineNative is the built-in geometric renderer.
	EngineNative = "native"

	// EngineGraphviz renders through Graphviz via the DOT export. It
	// suits relational types where recomputed placement reads better
	// than the native geometry.
	EngineGraphviz = "graphviz"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidEngines is the set of supported SVG engines.
var ValidEngines = map[string]bool{
	EngineNative:   true,
	EngineGraphviz: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// The struct supports JSON serialization for request payloads.
type Options struct {
	// Parse options
	Type    string `json:"type,omitempty"` // overrides the spec's own type tag
	Refresh bool   `json:"refresh,omitempty"`

	// Layout options (canvas floors, never ceilings)
	Width         float64 `json:"width,omitempty"`
	Height        float64 `json:"height,omitempty"`
	Padding       float64 `json:"padding,omitempty"`
	TopicFontSize float64 `json:"topic_font_size,omitempty"`
	LabelFontSize float64 `json:"label_font_size,omitempty"`

	// Render options
	Formats []string    `json:"formats,omitempty"`
	Engine  string      `json:"engine,omitempty"`
	Theme   theme.Theme `json:"theme,omitempty"` // merged onto the defaults

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the parsed, normalized spec.
	Graph *spec.Graph

	// SpecHash is the content hash of the canonical spec encoding.
	SpecHash string

	// Layout is the positioned node and edge geometry.
	Layout *layout.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each cached pipeline stage. Parsing
// is pure and local, so it is never cached.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEngine checks that an SVG engine is valid.
func ValidateEngine(engine string) error {
	if !ValidEngines[engine] {
		return errors.New(errors.ErrCodeInvalidEngine,
			"invalid engine: %q (must be one of: native, graphviz)", engine)
	}
	return nil
}

// ValidateTheme checks every color and the watermark opacity in a theme
// override. Zero values are skipped, so partial overrides stay valid.
// Theme values end up inline in SVG output, which is why hostile colors
// must be rejected here rather than escaped later.
func ValidateTheme(th theme.Theme) error {
	if th.Background != "" {
		if err := errors.ValidateColor("theme.background", th.Background); err != nil {
			return err
		}
	}
	styles := []struct {
		name  string
		style theme.Style
	}{
		{"topic", th.Topic},
		{"attribute", th.Attribute},
		{"similarity", th.Similarity},
		{"difference", th.Difference},
		{"context", th.Context},
		{"boundary", th.Boundary},
		{"accent", th.Accent},
	}
	for _, s := range styles {
		fields := map[string]string{
			"fill":   s.style.Fill,
			"text":   s.style.Text,
			"stroke": s.style.Stroke,
		}
		for field, value := range fields {
			if value == "" {
				continue
			}
			if err := errors.ValidateColor("theme."+s.name+"."+field, value); err != nil {
				return err
			}
		}
		if s.style.StrokeWidth < 0 {
			return errors.New(errors.ErrCodeInvalidTheme,
				"theme.%s.stroke_width must not be negative", s.name)
		}
	}
	return errors.ValidateOpacity("theme.watermark.opacity", th.Watermark.Opacity)
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults for the
// full pipeline. The method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks fields consumed while parsing. The type
// override is resolved eagerly so an unknown name fails before any work.
func (o *Options) ValidateForParse() error {
	if o.Type != "" {
		if _, _, err := spec.Lookup(o.Type); err != nil {
			return err
		}
	}
	return nil
}

// SetLayoutDefaults fills zero-valued layout options with the defaults.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Padding == 0 {
		o.Padding = DefaultPadding
	}
	if o.TopicFontSize == 0 {
		o.TopicFontSize = DefaultTopicFontSize
	}
	if o.LabelFontSize == 0 {
		o.LabelFontSize = DefaultLabelFontSize
	}
}

// SetRenderDefaults fills zero-valued render options with the defaults.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Engine == "" {
		o.Engine = EngineNative
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateEngine(o.Engine); err != nil {
		return err
	}
	return ValidateTheme(o.Theme)
}

// Hints maps the layout options to engine hints.
func (o *Options) Hints() layout.Hints {
	return layout.Hints{
		Width:         o.Width,
		Height:        o.Height,
		Padding:       o.Padding,
		TopicFontSize: o.TopicFontSize,
		LabelFontSize: o.LabelFontSize,
	}
}

// ResolvedTheme is the full theme for this run: the defaults with the
// caller's overrides merged on top.
func (o *Options) ResolvedTheme() theme.Theme {
	return theme.Default().Merge(o.Theme)
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:         o.Width,
		Height:        o.Height,
		Padding:       o.Padding,
		TopicFontSize: o.TopicFontSize,
		LabelFontSize: o.LabelFontSize,
		UniformPairs:  o.Theme.UniformPairs,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	data, _ := json.Marshal(o.Theme)
	return cache.ArtifactKeyOpts{
		Format:    format,
		Engine:    o.Engine,
		ThemeHash: cache.Hash(data),
	}
}
