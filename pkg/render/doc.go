// Package render turns positioned layouts into SVG documents.
//
// # Overview
//
// The renderer walks a [layout.Result] and emits one SVG element per node
// and edge: circles, rounded rectangles, diamonds, separator triangles,
// curly braces, and text labels. Visual attributes come from a
// [theme.Theme]; the layout carries geometry only, so the same result can
// be re-rendered under different themes without recomputing positions.
//
//	result, _ := engine.Compute(g, th, layout.Hints{})
//	svg := render.SVG(result, render.WithTheme(th))
//
// # Drawing Order
//
// Edges draw first, then nodes, then edge labels, then the watermark.
// Edge endpoints are already clipped to node outlines by the layout, so
// the ordering only matters for labels, which must stay legible above
// everything else.
//
// # Error Artifacts
//
// [ErrorArtifact] renders a failure message as a small self-contained
// SVG. Callers that must always produce an image (the render pipeline,
// the CLI) substitute it for the diagram when layout or validation fails,
// so the failure is visible where the diagram would have been.
package render
