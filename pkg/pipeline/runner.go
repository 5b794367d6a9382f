package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lycosa9527/mindgraph/pkg/cache"
	"github.com/lycosa9527/mindgraph/pkg/errors"
	"github.com/lycosa9527/mindgraph/pkg/layout"
	"github.com/lycosa9527/mindgraph/pkg/loader"
	"github.com/lycosa9527/mindgraph/pkg/observability"
	"github.com/lycosa9527/mindgraph/pkg/spec"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and library callers can use this to avoid duplicating
// caching logic.
//
// The Runner is stateless except for the cache, loader, and logger -
// it doesn't store pipeline results. Multiple goroutines can safely
// use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Loader *loader.Loader
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Loader: loader.New(nil, logger),
		Logger: logger,
	}
}

// Execute runs the complete parse → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, raw []byte, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)
	logger := opts.Logger.With("render_id", renderID())

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Parse
	parseStart := time.Now()
	observability.Pipeline().OnParseStart(ctx, opts.Type)
	g, err := Parse(raw, opts)
	observability.Pipeline().OnParseComplete(ctx, opts.Type, time.Since(parseStart), err)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Graph = g
	result.Stats.ParseTime = time.Since(parseStart)

	// Compute the spec hash for cache keys and caller bookkeeping.
	if data, err := spec.Marshal(g); err == nil {
		result.SpecHash = cache.Hash(data)
	}

	logger.Info("parsed spec",
		"type", g.Type,
		"duration", result.Stats.ParseTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, string(g.Type))
	l, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, g, opts)
	nodeCount := 0
	if l != nil {
		nodeCount = len(l.Nodes)
	}
	observability.Pipeline().OnLayoutComplete(ctx, string(g.Type), nodeCount, time.Since(layoutStart), err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.NodeCount = len(l.Nodes)
	result.Stats.EdgeCount = len(l.Edges)
	result.CacheInfo.LayoutHit = layoutHit

	logger.Info("computed layout",
		"nodes", len(l.Nodes),
		"edges", len(l.Edges),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeLayoutWithCacheInfo positions a spec with caching and returns
// cache hit info. Refresh skips the cache read but still refreshes the
// stored entry.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, g *spec.Graph, opts Options) (*layout.Result, bool, error) {
	opts.SetLayoutDefaults()
	r.applyLogger(&opts)

	// Compute cache key from the canonical spec encoding
	specData, err := spec.Marshal(g)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize spec for cache key")
	}
	cacheKey := r.Keyer.LayoutKey(cache.Hash(specData), opts.LayoutKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached layout.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return &cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	// Compute layout
	l, err := ComputeLayout(ctx, r.Loader, g, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if data, err := json.Marshal(l); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.LayoutTTL)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return l, false, nil // Cache miss
}

// ComputeLayout is a convenience wrapper that calls ComputeLayoutWithCacheInfo
// and discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, g *spec.Graph, opts Options) (*layout.Result, error) {
	l, _, err := r.ComputeLayoutWithCacheInfo(ctx, g, opts)
	return l, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache
// hit info. The hit flag is true only when every requested format came
// from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l *layout.Result, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from layout data
	layoutData, err := json.Marshal(l)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize layout for cache key")
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	if !opts.Refresh {
		allCached := true
		artifacts := make(map[string][]byte)

		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}

		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil // All artifacts from cache
		}
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all formats
	rendered, err := RenderFromLayout(ctx, l, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.ArtifactTTL)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l *layout.Result, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// renderID returns a short correlation ID for log lines belonging to
// one pipeline run.
func renderID() string {
	return uuid.NewString()[:8]
}
