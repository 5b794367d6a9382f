package pipeline

import (
	"github.com/lycosa9527/mindgraph/pkg/spec"
)

// Parse decodes, normalizes, and validates a JSON or YAML spec.
//
// When opts.Type is set it takes precedence over the spec's own type
// tag. Agent payloads often omit the tag because the request already
// names the diagram type.
func Parse(raw []byte, opts Options) (*spec.Graph, error) {
	if err := opts.ValidateForParse(); err != nil {
		return nil, err
	}

	g, err := spec.Parse(raw)
	if err != nil {
		return nil, err
	}

	if opts.Type != "" {
		t, _, err := spec.Lookup(opts.Type)
		if err != nil {
			return nil, err
		}
		g.Type = t
		// Re-run normalization so type-dependent defaults apply.
		spec.Normalize(g)
	}

	if err := spec.Validate(g); err != nil {
		return nil, err
	}
	return g, nil
}
