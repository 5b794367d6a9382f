package pipeline

import (
	"context"

	"github.com/lycosa9527/mindgraph/pkg/layout"
	"github.com/lycosa9527/mindgraph/pkg/loader"
	"github.com/lycosa9527/mindgraph/pkg/spec"
)

// ComputeLayout positions a parsed spec using the engine for its
// diagram type. The loader memoizes engines, so repeated calls for the
// same type share one text measurer.
func ComputeLayout(ctx context.Context, ld *loader.Loader, g *spec.Graph, opts Options) (*layout.Result, error) {
	opts.SetLayoutDefaults()

	mod, err := ld.Load(ctx, string(g.Type))
	if err != nil {
		return nil, err
	}
	return mod.Engine.Compute(g, opts.ResolvedTheme(), opts.Hints())
}
