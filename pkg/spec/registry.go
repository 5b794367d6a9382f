package spec

import (
	"sort"
	"strings"

	"github.com/lycosa9527/mindgraph/pkg/errors"
	"github.com/lycosa9527/mindgraph/pkg/theme"
)

// Config describes one diagram type: its layout family, the spec fields it
// requires, and theme overrides merged on top of the built-in defaults.
type Config struct {
	Family   Family
	Required []string
	Theme    theme.Theme
}

// registry is the single lookup table for per-type behavior. Adding a
// diagram type means adding a row here, not a new code path.
var registry = map[Type]Config{
	TypeBubbleMap: {
		Family:   FamilyRadial,
		Required: []string{"topic", "attributes"},
		Theme:    theme.Theme{Topic: theme.Style{StrokeWidth: 3}},
	},
	TypeCircleMap: {
		Family:   FamilyRadial,
		Required: []string{"topic", "context"},
	},
	TypeDoubleBubbleMap: {
		Family:   FamilyPaired,
		Required: []string{"left", "right", "similarities", "left_differences", "right_differences"},
		Theme:    theme.Theme{Topic: theme.Style{StrokeWidth: 3}},
	},
	TypeBridgeMap: {
		Family:   FamilyPaired,
		Required: []string{"analogies"},
	},
	TypeTreeMap: {
		Family:   FamilyVertical,
		Required: []string{"topic", "children"},
	},
	TypeFlowMap: {
		Family:   FamilyVertical,
		Required: []string{"title", "steps"},
	},
	TypeMultiFlowMap: {
		Family:   FamilyRadial,
		Required: []string{"event", "causes", "effects"},
	},
	TypeBraceMap: {
		Family:   FamilyBrace,
		Required: []string{"topic", "parts"},
	},
	TypeFlowchart: {
		Family:   FamilyVertical,
		Required: []string{"title", "steps"},
	},
	TypeMindMap: {
		Family:   FamilyRadial,
		Required: []string{"topic", "children"},
	},
	TypeConceptMap: {
		Family:   FamilyRadial,
		Required: []string{"topic", "concepts"},
	},
	TypeSemanticWeb: {
		Family:   FamilyRadial,
		Required: []string{"topic", "branches"},
	},
	TypeTimeline: {
		Family:   FamilyVertical,
		Required: []string{"title", "events"},
	},
}

// aliases maps accepted spellings to canonical type names.
var aliases = map[string]Type{
	"mindmap":        TypeMindMap,
	"mind_map":       TypeMindMap,
	"mind-map":       TypeMindMap,
	"concept":        TypeConceptMap,
	"flow_chart":     TypeFlowchart,
	"bubble":         TypeBubbleMap,
	"circle":         TypeCircleMap,
	"flow":           TypeFlowMap,
	"tree":           TypeTreeMap,
	"double_bubble":  TypeDoubleBubbleMap,
	"multi_flow":     TypeMultiFlowMap,
	"semantic-web":   TypeSemanticWeb,
	"brace":          TypeBraceMap,
	"bridge":         TypeBridgeMap,
	"time_line":      TypeTimeline,
	"characteristic": TypeCircleMap,
}

// Resolve canonicalizes a type name, following the alias table. The second
// return reports whether the name is a known type.
func Resolve(name string) (Type, bool) {
	t := Type(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := registry[t]; ok {
		return t, true
	}
	if canonical, ok := aliases[string(t)]; ok {
		return canonical, true
	}
	return t, false
}

// Lookup resolves a type name to its canonical tag and configuration.
// Unknown names fail with UNKNOWN_TYPE and list the supported types.
func Lookup(name string) (Type, Config, error) {
	t, ok := Resolve(name)
	if !ok {
		return t, Config{}, errors.New(errors.ErrCodeUnknownType,
			"unsupported graph type: %s (supported: %s)", name, strings.Join(Supported(), ", "))
	}
	return t, registry[t], nil
}

// Supported returns the canonical type names in sorted order.
func Supported() []string {
	names := make([]string, 0, len(registry))
	for t := range registry {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return names
}

// Aliases returns the accepted alternate spellings for a canonical type,
// sorted. Types without aliases return nil.
func Aliases(t Type) []string {
	var names []string
	for alias, canonical := range aliases {
		if canonical == t {
			names = append(names, alias)
		}
	}
	sort.Strings(names)
	return names
}
