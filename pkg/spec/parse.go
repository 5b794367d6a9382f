package spec

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/lycosa9527/mindgraph/pkg/errors"
)

// Parse decodes a spec from JSON or YAML bytes and normalizes it. The
// format is sniffed: input starting with '{' parses as JSON, anything
// else as YAML.
func Parse(data []byte) (*Graph, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSpec, "spec is empty")
	}
	if trimmed[0] == '{' {
		return ParseJSON(trimmed)
	}
	return ParseYAML(trimmed)
}

// ParseJSON decodes a spec from JSON bytes and normalizes it.
func ParseJSON(data []byte) (*Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "invalid spec JSON")
	}
	Normalize(&g)
	return &g, nil
}

// ParseYAML decodes a spec from YAML bytes and normalizes it. YAML decodes
// through the JSON field names, so both formats share one schema.
func ParseYAML(data []byte) (*Graph, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "invalid spec YAML")
	}
	bridged, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "invalid spec YAML")
	}
	return ParseJSON(bridged)
}

// Marshal serializes a spec to canonical JSON.
func Marshal(g *Graph) ([]byte, error) {
	return json.Marshal(g)
}

// Normalize canonicalizes a spec in place: resolves the type alias, folds
// legacy field synonyms, and fills per-type defaults. Validation assumes
// normalized input; Parse normalizes automatically.
func Normalize(g *Graph) {
	if g == nil {
		return
	}
	if t, ok := Resolve(string(g.Type)); ok {
		g.Type = t
	}
	// "characteristics" is the legacy spelling of the circle map context
	// ring; fold it unless the canonical field is already set.
	if len(g.Context) == 0 && len(g.Characteristics) > 0 {
		g.Context = g.Characteristics
	}
	g.Characteristics = nil

	if g.Type == TypeBridgeMap && g.RelatingFactor == "" {
		g.RelatingFactor = DefaultRelatingFactor
	}
	for i := range g.Steps {
		if g.Steps[i].Kind == "" {
			g.Steps[i].Kind = StepProcess
		}
	}
}
