// Package layout converts validated specs into positioned geometry.
//
// The [Engine] routes a spec to one of four family strategies — radial,
// vertical, paired, or brace — measures every label through a
// [Measurer], and produces a [Result]: center-anchored nodes, connecting
// edges, and the final canvas size.
//
// # Coordinate Conventions
//
// Every node is positioned by its center. Strategies compute geometry in
// an unconstrained content space; a shared finalize step translates the
// content onto the canvas, applies the padding, and grows the canvas to
// the caller's dimension hints. Hints are a floor, never a ceiling: the
// canvas never clips a node, whatever the content size.
//
// # Precomputed Positions
//
// Specs may carry upstream-computed node positions. When positions cover
// every node the engine adopts them verbatim and skips its own placement;
// partial position sets are ignored and the engine lays out normally.
//
// # Determinism
//
// Layout is deterministic: the same spec, theme, and hints always produce
// the same geometry. The overlap relaxation pass is a fixed-iteration
// solver with no randomness.
package layout
