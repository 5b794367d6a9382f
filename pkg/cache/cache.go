// Package cache provides content-addressed caching for computed layouts
// and rendered artifacts.
//
// Keys derive from content hashes, so an entry stays valid for as long
// as its inputs are unchanged; TTLs only bound storage growth. Backends:
// [FileCache] for CLI use, [RedisCache] for shared deployments,
// [NullCache] to disable caching.
package cache

import (
	"context"
	"time"
)

// Default retention. Layouts are cheap to recompute; artifacts are what
// embedders fetch repeatedly.
const (
	LayoutTTL   = 24 * time.Hour
	ArtifactTTL = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key-value store with per-entry TTLs.
type Cache interface {
	// Get returns the cached data and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys for the pipeline stages.
type Keyer interface {
	// SpecKey identifies a normalized spec by content.
	SpecKey(data []byte) string

	// LayoutKey identifies a computed layout by spec hash plus the
	// options that change geometry.
	LayoutKey(specHash string, opts LayoutKeyOpts) string

	// ArtifactKey identifies rendered bytes by layout hash plus the
	// options that change emission.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the inputs that change computed geometry for a
// fixed spec.
type LayoutKeyOpts struct {
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Padding       float64 `json:"padding"`
	TopicFontSize float64 `json:"topicFontSize"`
	LabelFontSize float64 `json:"labelFontSize"`
	UniformPairs  bool    `json:"uniformPairs"`
}

// ArtifactKeyOpts are the inputs that change rendered bytes for a
// fixed layout.
type ArtifactKeyOpts struct {
	Format    string `json:"format"`
	Engine    string `json:"engine"`
	ThemeHash string `json:"themeHash"`
}

// DefaultKeyer hashes key parts with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SpecKey returns "spec:" plus the content hash of data.
func (k *DefaultKeyer) SpecKey(data []byte) string {
	return "spec:" + Hash(data)
}

// LayoutKey hashes the spec hash together with the layout options.
func (k *DefaultKeyer) LayoutKey(specHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", specHash, opts)
}

// ArtifactKey hashes the layout hash together with the render options.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
