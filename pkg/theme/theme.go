// Package theme defines the visual styling model for rendered diagrams.
//
// A Theme assigns one Style per node role (topic, attribute, similarity,
// difference, context, boundary, accent). Callers merge partial overrides
// onto the built-in defaults; unset fields keep the default value, so a
// caller can recolor topic nodes without respecifying the whole palette.
package theme

import (
	"math"
	"strconv"
	"strings"
)

// Role identifies the visual function of a node within a diagram.
// Layout assigns roles; rendering resolves them to styles via Theme.Style.
type Role string

const (
	RoleTopic      Role = "topic"      // primary subject nodes
	RoleAttribute  Role = "attribute"  // secondary label nodes
	RoleSimilarity Role = "similarity" // shared traits in comparison maps
	RoleDifference Role = "difference" // distinct traits in comparison maps
	RoleContext    Role = "context"    // outer context and leaf nodes
	RoleBoundary   Role = "boundary"   // unfilled frames and spines
	RoleAccent     Role = "accent"     // highlighted nodes such as decisions
)

// Style holds the visual attributes for one node role.
type Style struct {
	Fill        string  `json:"fill,omitempty"`
	Text        string  `json:"text,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
}

// TextColor returns the text color for the style, deriving a legible one
// from the fill when no explicit text color is set.
func (s Style) TextColor() string {
	if s.Text != "" {
		return s.Text
	}
	return ContrastText(s.Fill)
}

// Watermark configures the branding label stamped onto finished diagrams.
type Watermark struct {
	Disabled bool    `json:"disabled,omitempty"`
	Text     string  `json:"text,omitempty"`
	Opacity  float64 `json:"opacity,omitempty"`
}

// Watermark font bounds in pixels. The label scales with canvas size
// between these limits.
const (
	WatermarkMinFont = 10
	WatermarkMaxFont = 18
)

// FontSize returns the watermark font size for a canvas, proportional to
// the smaller canvas edge and clamped to the watermark font bounds.
func (w Watermark) FontSize(width, height float64) float64 {
	size := math.Min(width, height) / 40
	return math.Min(math.Max(size, WatermarkMinFont), WatermarkMaxFont)
}

// Theme is the complete visual configuration for one render.
type Theme struct {
	Background string `json:"background,omitempty"`
	FontFamily string `json:"fontFamily,omitempty"`

	Topic      Style `json:"topic,omitempty"`
	Attribute  Style `json:"attribute,omitempty"`
	Similarity Style `json:"similarity,omitempty"`
	Difference Style `json:"difference,omitempty"`
	Context    Style `json:"context,omitempty"`
	Boundary   Style `json:"boundary,omitempty"`
	Accent     Style `json:"accent,omitempty"`

	// UniformPairs disables the emphasis bridge maps put on their first
	// analogy pair, rendering every pair alike.
	UniformPairs bool `json:"uniformPairs,omitempty"`

	Watermark Watermark `json:"watermark,omitempty"`
}

// Default returns the built-in color palette.
func Default() Theme {
	return Theme{
		Background: "#ffffff",
		FontFamily: "Inter, Segoe UI, sans-serif",
		Topic:      Style{Fill: "#4e79a7", Text: "#ffffff", Stroke: "#2c3e50", StrokeWidth: 2},
		Attribute:  Style{Fill: "#a7c7e7", Text: "#2c3e50", Stroke: "#4e79a7", StrokeWidth: 2},
		Similarity: Style{Fill: "#a7c7e7", Text: "#2c3e50", Stroke: "#4e79a7", StrokeWidth: 2},
		Difference: Style{Fill: "#f4f6fb", Text: "#2c3e50", Stroke: "#a7c7e7", StrokeWidth: 2},
		Context:    Style{Fill: "#f4f6fb", Text: "#2c3e50", Stroke: "#a7c7e7", StrokeWidth: 1},
		Boundary:   Style{Fill: "none", Text: "#2c3e50", Stroke: "#2c3e50", StrokeWidth: 2},
		Accent:     Style{Fill: "#f28e2b", Text: "#ffffff", Stroke: "#2c3e50", StrokeWidth: 2},
		Watermark:  Watermark{Text: "D3.js_Dify", Opacity: 0.35},
	}
}

// Style returns the style for a role. Unknown roles resolve to the
// attribute style.
func (t Theme) Style(role Role) Style {
	switch role {
	case RoleTopic:
		return t.Topic
	case RoleSimilarity:
		return t.Similarity
	case RoleDifference:
		return t.Difference
	case RoleContext:
		return t.Context
	case RoleBoundary:
		return t.Boundary
	case RoleAccent:
		return t.Accent
	default:
		return t.Attribute
	}
}

// Merge overlays override onto t field by field. Empty strings and zero
// stroke widths keep the base value; a disabled watermark stays disabled.
func (t Theme) Merge(override Theme) Theme {
	merged := t
	if override.Background != "" {
		merged.Background = override.Background
	}
	if override.FontFamily != "" {
		merged.FontFamily = override.FontFamily
	}
	merged.Topic = mergeStyle(t.Topic, override.Topic)
	merged.Attribute = mergeStyle(t.Attribute, override.Attribute)
	merged.Similarity = mergeStyle(t.Similarity, override.Similarity)
	merged.Difference = mergeStyle(t.Difference, override.Difference)
	merged.Context = mergeStyle(t.Context, override.Context)
	merged.Boundary = mergeStyle(t.Boundary, override.Boundary)
	merged.Accent = mergeStyle(t.Accent, override.Accent)
	if override.UniformPairs {
		merged.UniformPairs = true
	}
	if override.Watermark.Disabled {
		merged.Watermark.Disabled = true
	}
	if override.Watermark.Text != "" {
		merged.Watermark.Text = override.Watermark.Text
	}
	if override.Watermark.Opacity > 0 {
		merged.Watermark.Opacity = override.Watermark.Opacity
	}
	return merged
}

func mergeStyle(base, override Style) Style {
	merged := base
	if override.Fill != "" {
		merged.Fill = override.Fill
	}
	if override.Text != "" {
		merged.Text = override.Text
	}
	if override.Stroke != "" {
		merged.Stroke = override.Stroke
	}
	if override.StrokeWidth > 0 {
		merged.StrokeWidth = override.StrokeWidth
	}
	return merged
}

// ContrastText returns black or white, whichever is legible against the
// given hex fill color. Colors that cannot be parsed are assumed light.
func ContrastText(fill string) string {
	r, g, b, ok := parseHex(fill)
	if !ok {
		return "#000000"
	}
	luminance := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
	if luminance > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}

// parseHex decodes "#rgb" and "#rrggbb" color strings.
func parseHex(color string) (r, g, b uint8, ok bool) {
	hex := strings.TrimPrefix(color, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
