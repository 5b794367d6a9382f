package spec

import (
	"sort"
	"strings"
	"testing"

	"github.com/lycosa9527/mindgraph/pkg/errors"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantType   Type
		wantFamily Family
	}{
		{name: "canonical", input: "bubble_map", wantType: TypeBubbleMap, wantFamily: FamilyRadial},
		{name: "alias", input: "mind_map", wantType: TypeMindMap, wantFamily: FamilyRadial},
		{name: "bare alias", input: "flow", wantType: TypeFlowMap, wantFamily: FamilyVertical},
		{name: "case and space", input: "  Tree_Map ", wantType: TypeTreeMap, wantFamily: FamilyVertical},
		{name: "paired", input: "bridge_map", wantType: TypeBridgeMap, wantFamily: FamilyPaired},
		{name: "brace", input: "brace_map", wantType: TypeBraceMap, wantFamily: FamilyBrace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, cfg, err := Lookup(tt.input)
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.input, err)
			}
			if typ != tt.wantType {
				t.Errorf("type = %q, want %q", typ, tt.wantType)
			}
			if cfg.Family != tt.wantFamily {
				t.Errorf("family = %q, want %q", cfg.Family, tt.wantFamily)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, _, err := Lookup("starburst")
	if err == nil {
		t.Fatal("Lookup(starburst) = nil, want error")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeUnknownType {
		t.Errorf("code = %v, want %v", code, errors.ErrCodeUnknownType)
	}
	// The message must name the supported types so callers can self-correct.
	if msg := err.Error(); !strings.Contains(msg, "bubble_map") || !strings.Contains(msg, "supported") {
		t.Errorf("error = %q, want supported type listing", msg)
	}
}

func TestSupported(t *testing.T) {
	names := Supported()
	if len(names) != len(registry) {
		t.Fatalf("len(Supported()) = %d, want %d", len(names), len(registry))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Supported() = %v, want sorted", names)
	}
	for _, name := range names {
		if _, ok := registry[Type(name)]; !ok {
			t.Errorf("Supported() lists %q which is not registered", name)
		}
	}
}

func TestAliases(t *testing.T) {
	got := Aliases(TypeMindMap)
	want := []string{"mind-map", "mind_map", "mindmap"}
	if len(got) != len(want) {
		t.Fatalf("Aliases(mind_map) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Aliases(mind_map)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	// Every alias must resolve back to its canonical type.
	for _, name := range Supported() {
		for _, alias := range Aliases(Type(name)) {
			resolved, ok := Resolve(alias)
			if !ok || resolved != Type(name) {
				t.Errorf("Resolve(%q) = %q, %v, want %q, true", alias, resolved, ok, name)
			}
		}
	}
}

func TestRegistryRequiredFieldsResolve(t *testing.T) {
	// Every required field name must be recognized by hasField, or the
	// presence check would silently pass validation.
	for typ, cfg := range registry {
		g := minimalSpecs()[typ]
		for _, field := range cfg.Required {
			if !hasField(g, field) {
				t.Errorf("%s: required field %q not detected on a valid spec", typ, field)
			}
		}
	}
}
