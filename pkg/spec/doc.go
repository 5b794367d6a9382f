// Package spec defines the diagram specification model and its validation.
//
// A [Graph] is the structural input to rendering: a tagged union keyed by
// diagram type, carrying one primary label (topic, title, or event) plus the
// collections that type needs. The package is the single source of truth for
// diagram types, their layout families, required fields, and limits.
//
// # Core Types
//
//   - [Graph]: the unified spec type for every diagram
//   - [Type], [Family]: diagram type tags and layout family tags
//   - [Branch], [Step], [Analogy], [Part], [TimelineEvent]: nested spec elements
//
// # Spec Lifecycle
//
// Specs arrive as JSON or YAML, get normalized, then validated:
//
//	g, _ := spec.Parse(data)      // bytes → *Graph (normalized)
//	err := spec.Validate(g)       // shape and limit checks
//
// [Normalize] resolves type aliases ("mind_map" → "mindmap"), folds legacy
// field synonyms ("characteristics" → "context"), and fills defaults such as
// the bridge map relating factor. [Parse] normalizes automatically.
//
// # Registry
//
// Per-type configuration lives in one lookup table instead of per-type code
// paths:
//
//	cfg, _ := spec.Lookup("bubble_map")
//	cfg.Family    // spec.FamilyRadial
//	cfg.Required  // ["topic", "attributes"]
//
// # Limits
//
// Collections carry at most 20 items and labels at most 100 characters;
// violations fail validation before any layout work happens.
package spec
