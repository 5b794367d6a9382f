package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lycosa9527/mindgraph/pkg/errors"
	"github.com/lycosa9527/mindgraph/pkg/export"
	"github.com/lycosa9527/mindgraph/pkg/layout"
	"github.com/lycosa9527/mindgraph/pkg/render"
	"github.com/lycosa9527/mindgraph/pkg/spec"
	"github.com/lycosa9527/mindgraph/pkg/theme"
)

// RenderFromLayout generates output artifacts in the requested formats.
// The context is only consulted by the graphviz engine.
func RenderFromLayout(ctx context.Context, l *layout.Result, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, l, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// renderFormat emits one artifact.
func renderFormat(ctx context.Context, l *layout.Result, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		if opts.Engine == EngineGraphviz {
			return export.RenderSVG(ctx, export.ToDOT(l, exportTheme(l.Type, opts.Theme)))
		}
		return render.SVG(l, render.WithTheme(opts.Theme)), nil
	case FormatJSON:
		return json.MarshalIndent(l, "", "  ")
	case FormatDOT:
		return []byte(export.ToDOT(l, exportTheme(l.Type, opts.Theme))), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
}

// exportTheme resolves the theme for DOT-based outputs the same way the
// native renderer does: defaults, then the type's registry overrides,
// then the caller's overrides.
func exportTheme(t spec.Type, overrides theme.Theme) theme.Theme {
	th := theme.Default()
	if _, cfg, err := spec.Lookup(string(t)); err == nil {
		th = th.Merge(cfg.Theme)
	}
	return th.Merge(overrides)
}

// RenderGraph runs the complete pipeline and always returns SVG bytes.
// Failures render as an error artifact instead of propagating, so a
// caller embedding the result never shows a broken image. Details stay
// in the logs.
func (r *Runner) RenderGraph(ctx context.Context, raw []byte, opts Options) []byte {
	opts.Formats = []string{FormatSVG}

	result, err := r.Execute(ctx, raw, opts)
	if err != nil {
		r.Logger.Error("render failed", "err", err)
		return render.ErrorArtifact(errors.UserMessage(err))
	}
	return result.Artifacts[FormatSVG]
}
