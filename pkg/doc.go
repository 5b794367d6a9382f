// Package pkg provides the core libraries for MindGraph diagram rendering.
//
// # Overview
//
// MindGraph converts structured JSON/YAML graph specifications — bubble maps,
// tree maps, flow charts, brace maps, concept maps, and friends — into SVG
// diagrams. The pkg directory is organized into four main areas:
//
//  1. [spec] - Diagram spec types, the type registry, parsing, validation
//  2. [layout] - Geometry: the four layout families plus shared machinery
//  3. [render] - SVG emission, themes, watermark, error artifacts
//  4. [pipeline] - Orchestration (parse → layout → render) with caching
//
// # Architecture
//
// The typical data flow through MindGraph:
//
//	JSON/YAML spec
//	         ↓
//	    [spec] package (normalize type aliases, validate required fields)
//	         ↓
//	    [layout] package (measure text, compute collision-free geometry)
//	         ↓
//	    [render] package (emit SVG primitives, apply theme, watermark)
//	         ↓
//	    SVG/JSON/DOT output
//
// # Quick Start
//
// Parse a spec and render it to SVG:
//
//	import (
//	    "context"
//	    "github.com/lycosa9527/mindgraph/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(context.Background(), specBytes, pipeline.Options{
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    // a spec or options problem; render pipelines that must always
//	    // produce an image use pipeline.RenderGraph instead
//	}
//	svg := result.Artifacts["svg"]
//
// # Main Packages
//
// ## Core Domain Logic
//
// [spec] - The unified Graph spec type (a tagged union keyed by diagram
// type), the registry mapping each type to its required fields, layout
// family, and theme overrides, alias normalization, and per-type
// validation. Parsing accepts JSON and YAML.
//
// [measure] - Text measurement: font-backed bounding boxes with a
// deterministic character-count fallback when font parsing is unavailable.
//
// [layout] - The four geometric families (radial, vertical, paired, brace)
// behind one Engine, plus boundary-clipped edge routing, precomputed
// position adoption, bounded-iteration overlap relaxation, and canvas
// sizing that never clips content.
//
// ## Rendering
//
// [render] - SVG emission over the computed layout: shapes, labels with
// contrast-aware text color, arrow markers, curly braces, the watermark,
// and the error artifact substituted when rendering cannot proceed.
//
// [export] - DOT generation and Graphviz-engine SVG rendering for
// relational diagram types.
//
// [theme] - Per-role visual styles, shallow caller-wins merging, and the
// luminance-based contrast helper.
//
// ## Infrastructure
//
// [pipeline] - Complete rendering pipeline (parse → layout → render) used
// by the CLI and library callers. Ensures consistent behavior across all
// entry points, with per-stage caching and correlation-ID logging.
//
// [loader] - Per-type module construction, deduplicated via singleflight
// and memoized for the process lifetime.
//
// [cache] - Cache interface with file, Redis, and null backends, plus
// content-hash key derivation.
//
// [config] - TOML configuration discovery and merging for the CLI.
//
// [errors] - Typed error codes, wrapping, and conservative input
// validators for labels, colors, and font sizes.
//
// [observability] - Optional hooks for pipeline and cache events,
// registered by main, no-op by default.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/layout/...    # Specific package
//	go test -run Example        # Examples only
//
// [spec]: https://pkg.go.dev/github.com/lycosa9527/mindgraph/pkg/spec
// [measure]: https://pkg.go.dev/github.com/lycosa9527/mindgraph/pkg/measure
// [layout]: https://pkg.go.dev/github.com/lycosa9527/mindgraph/pkg/layout
// [render]: https://pkg.go.dev/github.com/lycosa9527/mindgraph/pkg/render
// [export]: https://pkg.go.dev/github.com/lycosa9527/mindgraph/pkg/export
// [theme]: https://pkg.go.dev/github.com/lycosa9527/mindgraph/pkg/theme
// [pipeline]: https://pkg.go.dev/github.com/lycosa9527/mindgraph/pkg/pipeline
// [loader]: https://pkg.go.dev/github.com/lycosa9527/mindgraph/pkg/loader
// [cache]: https://pkg.go.dev/github.com/lycosa9527/mindgraph/pkg/cache
// [config]: https://pkg.go.dev/github.com/lycosa9527/mindgraph/pkg/config
// [errors]: https://pkg.go.dev/github.com/lycosa9527/mindgraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/lycosa9527/mindgraph/pkg/observability
package pkg
