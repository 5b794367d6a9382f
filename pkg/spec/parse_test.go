package spec

import (
	"testing"

	"github.com/lycosa9527/mindgraph/pkg/errors"
)

func TestParseJSON(t *testing.T) {
	data := []byte(`{
		"type": "bubble_map",
		"topic": "Cats",
		"attributes": ["Furry", "Four legs", "Meows"]
	}`)

	g, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if g.Type != TypeBubbleMap {
		t.Errorf("Type = %q, want %q", g.Type, TypeBubbleMap)
	}
	if g.Topic != "Cats" {
		t.Errorf("Topic = %q, want %q", g.Topic, "Cats")
	}
	if len(g.Attributes) != 3 {
		t.Errorf("len(Attributes) = %d, want 3", len(g.Attributes))
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
type: circle_map
topic: Photosynthesis
characteristics:
  - Sunlight
  - Chlorophyll
  - Carbon dioxide
`)

	g, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if g.Type != TypeCircleMap {
		t.Errorf("Type = %q, want %q", g.Type, TypeCircleMap)
	}
	if len(g.Context) != 3 {
		t.Fatalf("len(Context) = %d, want 3 (folded from characteristics)", len(g.Context))
	}
	if g.Context[0] != "Sunlight" {
		t.Errorf("Context[0] = %q, want %q", g.Context[0], "Sunlight")
	}
	if g.Characteristics != nil {
		t.Errorf("Characteristics = %v, want nil after folding", g.Characteristics)
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse([]byte("  \n ")); errors.GetCode(err) != errors.ErrCodeInvalidSpec {
		t.Errorf("Parse(empty) code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidSpec)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"topic": `)); errors.GetCode(err) != errors.ErrCodeInvalidSpec {
		t.Errorf("Parse(bad json) code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidSpec)
	}
}

func TestNormalizeAlias(t *testing.T) {
	g := &Graph{Type: "mind_map", Topic: "Go"}
	Normalize(g)
	if g.Type != TypeMindMap {
		t.Errorf("Type = %q, want %q", g.Type, TypeMindMap)
	}
}

func TestNormalizeBridgeDefaults(t *testing.T) {
	g := &Graph{Type: TypeBridgeMap, Analogies: []Analogy{{Left: "sun", Right: "day"}}}
	Normalize(g)
	if g.RelatingFactor != DefaultRelatingFactor {
		t.Errorf("RelatingFactor = %q, want %q", g.RelatingFactor, DefaultRelatingFactor)
	}

	g = &Graph{Type: TypeBridgeMap, RelatingFactor: "is to"}
	Normalize(g)
	if g.RelatingFactor != "is to" {
		t.Errorf("RelatingFactor = %q, want caller value kept", g.RelatingFactor)
	}
}

func TestNormalizeStepKinds(t *testing.T) {
	g := &Graph{Type: TypeFlowMap, Steps: []Step{{Text: "Mix"}, {Kind: StepDecision, Text: "Done?"}}}
	Normalize(g)
	if g.Steps[0].Kind != StepProcess {
		t.Errorf("Steps[0].Kind = %q, want %q", g.Steps[0].Kind, StepProcess)
	}
	if g.Steps[1].Kind != StepDecision {
		t.Errorf("Steps[1].Kind = %q, want %q kept", g.Steps[1].Kind, StepDecision)
	}
}

func TestBranchLabelSynonyms(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{name: "label", json: `{"label": "Mammals"}`, want: "Mammals"},
		{name: "name", json: `{"name": "Mammals"}`, want: "Mammals"},
		{name: "text", json: `{"text": "Mammals"}`, want: "Mammals"},
		{name: "label wins", json: `{"label": "A", "name": "B"}`, want: "A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse([]byte(`{"type": "tree_map", "topic": "Animals", "children": [` + tt.json + `]}`))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := g.Children[0].Label; got != tt.want {
				t.Errorf("Children[0].Label = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStepStringForm(t *testing.T) {
	g, err := Parse([]byte(`{
		"type": "flow_map",
		"title": "Brewing",
		"steps": ["Grind", "Brew", "Pour"],
		"substeps": [{"step": "Brew", "substeps": ["Heat water", "Steep"]}]
	}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(g.Steps) != 3 {
		t.Fatalf("len(Steps) = %d, want 3", len(g.Steps))
	}
	if g.Steps[0].Text != "Grind" || g.Steps[0].Kind != StepProcess {
		t.Errorf("Steps[0] = %+v, want process step %q", g.Steps[0], "Grind")
	}
	if len(g.Substeps) != 1 || g.Substeps[0].Step != "Brew" {
		t.Errorf("Substeps = %+v, want one group for %q", g.Substeps, "Brew")
	}
}

func TestParsePrecomputedLayout(t *testing.T) {
	g, err := Parse([]byte(`{
		"type": "bubble_map",
		"topic": "Cats",
		"attributes": ["Furry"],
		"_layout": {"positions": {"topic": {"x": 350, "y": 250}}},
		"_recommended_dimensions": {"baseWidth": 900, "baseHeight": 600},
		"_agent": "qwen"
	}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !g.HasPrecomputedLayout() {
		t.Fatal("HasPrecomputedLayout() = false, want true")
	}
	if pos := g.Layout.Positions["topic"]; pos.X != 350 || pos.Y != 250 {
		t.Errorf("Positions[topic] = %+v, want {350 250}", pos)
	}
	if g.Recommended == nil || g.Recommended.Width != 900 {
		t.Errorf("Recommended = %+v, want baseWidth 900", g.Recommended)
	}
	if g.Agent != "qwen" {
		t.Errorf("Agent = %q, want %q", g.Agent, "qwen")
	}
}

func TestPrimary(t *testing.T) {
	tests := []struct {
		name string
		g    Graph
		want string
	}{
		{name: "topic", g: Graph{Topic: "Cats"}, want: "Cats"},
		{name: "title", g: Graph{Title: "Brewing"}, want: "Brewing"},
		{name: "event", g: Graph{Event: "Eruption"}, want: "Eruption"},
		{name: "pair", g: Graph{Left: "Cats", Right: "Dogs"}, want: "Cats vs Dogs"},
		{name: "none", g: Graph{}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.Primary(); got != tt.want {
				t.Errorf("Primary() = %q, want %q", got, tt.want)
			}
		})
	}
}
