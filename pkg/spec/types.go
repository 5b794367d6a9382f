package spec

import (
	"encoding/json"
	"strings"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Type identifies a diagram type.
type Type string

// Canonical diagram types.
const (
	TypeBubbleMap       Type = "bubble_map"
	TypeCircleMap       Type = "circle_map"
	TypeDoubleBubbleMap Type = "double_bubble_map"
	TypeBridgeMap       Type = "bridge_map"
	TypeTreeMap         Type = "tree_map"
	TypeFlowMap         Type = "flow_map"
	TypeMultiFlowMap    Type = "multi_flow_map"
	TypeBraceMap        Type = "brace_map"
	TypeFlowchart       Type = "flowchart"
	TypeMindMap         Type = "mindmap"
	TypeConceptMap      Type = "concept_map"
	TypeSemanticWeb     Type = "semantic_web"
	TypeTimeline        Type = "timeline"
)

// Family identifies the geometric strategy a diagram type is laid out with.
type Family string

// Layout families.
const (
	FamilyRadial   Family = "radial"   // center topic, satellites on a ring
	FamilyVertical Family = "vertical" // top-to-bottom sequences and trees
	FamilyPaired   Family = "paired"   // symmetric columns and analogy spines
	FamilyBrace    Family = "brace"    // whole-part columns joined by braces
)

// Flowchart step kinds.
const (
	StepStart    = "start"
	StepProcess  = "process"
	StepDecision = "decision"
	StepEnd      = "end"
)

// DefaultRelatingFactor labels the analogy relation on bridge maps.
const DefaultRelatingFactor = "as"

// =============================================================================
// Graph - Unified Diagram Spec
// =============================================================================

// Graph is the unified spec type for all diagrams. The Type tag selects
// which fields are meaningful; everything else stays at its zero value.
// The same struct is the canonical JSON format for files, caching, and
// API payloads.
type Graph struct {
	Type Type `json:"type,omitempty"`

	// Primary label. Exactly one is set depending on type.
	Topic string `json:"topic,omitempty"`
	Title string `json:"title,omitempty"`
	Event string `json:"event,omitempty"`

	// Radial collections.
	Attributes []string `json:"attributes,omitempty"`
	Context    []string `json:"context,omitempty"`
	Causes     []string `json:"causes,omitempty"`
	Effects    []string `json:"effects,omitempty"`

	// Comparison columns (double bubble map).
	Left             string   `json:"left,omitempty"`
	Right            string   `json:"right,omitempty"`
	Similarities     []string `json:"similarities,omitempty"`
	LeftDifferences  []string `json:"left_differences,omitempty"`
	RightDifferences []string `json:"right_differences,omitempty"`

	// Analogy pairs (bridge map).
	RelatingFactor string    `json:"relating_factor,omitempty"`
	Analogies      []Analogy `json:"analogies,omitempty"`

	// Hierarchies (tree map, mindmap, semantic web).
	Children []Branch `json:"children,omitempty"`
	Branches []Branch `json:"branches,omitempty"`

	// Sequences (flowchart, flow map, timeline).
	Steps    []Step          `json:"steps,omitempty"`
	Substeps []SubstepGroup  `json:"substeps,omitempty"`
	Events   []TimelineEvent `json:"events,omitempty"`

	// Whole-part decomposition (brace map).
	Parts []Part `json:"parts,omitempty"`

	// Networks (concept map).
	Concepts      []string       `json:"concepts,omitempty"`
	Relationships []Relationship `json:"relationships,omitempty"`

	// Legacy synonym for Context, folded by Normalize.
	Characteristics []string `json:"characteristics,omitempty"`

	// Upstream enhancement metadata. When Layout carries positions the
	// engine uses them verbatim instead of computing geometry itself.
	Layout      *Precomputed `json:"_layout,omitempty"`
	Recommended *Dimensions  `json:"_recommended_dimensions,omitempty"`
	Agent       string       `json:"_agent,omitempty"`
}

// Primary returns the diagram's primary label: topic, title, event, or the
// left/right pairing for comparison maps.
func (g *Graph) Primary() string {
	switch {
	case g.Topic != "":
		return g.Topic
	case g.Title != "":
		return g.Title
	case g.Event != "":
		return g.Event
	case g.Left != "" || g.Right != "":
		return strings.TrimSpace(g.Left + " vs " + g.Right)
	default:
		return ""
	}
}

// HasPrecomputedLayout reports whether upstream supplied node positions.
func (g *Graph) HasPrecomputedLayout() bool {
	return g.Layout != nil && len(g.Layout.Positions) > 0
}

// =============================================================================
// Nested Spec Elements
// =============================================================================

// Branch is a node in hierarchical diagrams (tree map, mindmap, semantic
// web). Input may name its label "label", "name", or "text"; all decode
// into Label.
type Branch struct {
	ID       string   `json:"id,omitempty"`
	Label    string   `json:"label"`
	Children []Branch `json:"children,omitempty"`
}

// UnmarshalJSON accepts the label synonyms the upstream generators emit.
func (b *Branch) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       string   `json:"id"`
		Label    string   `json:"label"`
		Name     string   `json:"name"`
		Text     string   `json:"text"`
		Children []Branch `json:"children"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.ID = raw.ID
	b.Label = firstNonEmpty(raw.Label, raw.Name, raw.Text)
	b.Children = raw.Children
	return nil
}

// Step is one element of a flowchart or flow map sequence. Flow map specs
// carry steps as bare strings; those decode as process steps.
type Step struct {
	ID   string `json:"id,omitempty"`
	Kind string `json:"type,omitempty"`
	Text string `json:"text"`
}

// UnmarshalJSON accepts both the object form and the bare string form.
func (s *Step) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*s = Step{Kind: StepProcess, Text: text}
		return nil
	}
	var raw struct {
		ID   string `json:"id"`
		Kind string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Step{ID: raw.ID, Kind: raw.Kind, Text: raw.Text}
	return nil
}

// SubstepGroup attaches detail steps to a flow map step, matched by the
// parent step's text.
type SubstepGroup struct {
	Step     string   `json:"step"`
	Substeps []string `json:"substeps"`
}

// Analogy is one left/right pair on a bridge map spine.
type Analogy struct {
	Left  string `json:"left"`
	Right string `json:"right"`
	ID    int    `json:"id,omitempty"`
}

// Part is a brace map part with optional subparts.
type Part struct {
	Name     string    `json:"name"`
	Subparts []Subpart `json:"subparts,omitempty"`
}

// Subpart is a leaf element of a brace map part.
type Subpart struct {
	Name string `json:"name"`
}

// TimelineEvent is one dated entry on a timeline.
type TimelineEvent struct {
	Date        string `json:"date,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Relationship is a labeled directed link between two concepts.
type Relationship struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

// =============================================================================
// Enhancement Metadata
// =============================================================================

// Precomputed carries node positions supplied by an upstream agent. Keys
// are node IDs as produced by layout for the same spec.
type Precomputed struct {
	Positions map[string]Position `json:"positions,omitempty"`
}

// Position is a precomputed node placement, center-anchored.
type Position struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// Dimensions are canvas size recommendations. Layout treats them as a
// floor, never a ceiling.
type Dimensions struct {
	Width   float64 `json:"baseWidth,omitempty"`
	Height  float64 `json:"baseHeight,omitempty"`
	Padding float64 `json:"padding,omitempty"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
