package render

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/lycosa9527/mindgraph/pkg/layout"
	"github.com/lycosa9527/mindgraph/pkg/spec"
	"github.com/lycosa9527/mindgraph/pkg/theme"
)

const (
	cornerRadius  = 8    // rounded rectangle corner radius in pixels
	edgeWidth     = 1.5  // connector stroke width
	braceDepth    = 12.0 // horizontal bow of a curly brace
	edgeLabelFont = 12.0
	edgeLabelLift = 6 // pixels an edge label floats above its midpoint
	emphasisPad   = 6 // border clearance around emphasized bare labels
	lineSpacing   = 1.2
)

// Option adjusts renderer behavior.
type Option func(*renderer)

// WithTheme merges a theme override onto the defaults for this render.
// Unset fields keep their default values.
func WithTheme(th theme.Theme) Option {
	return func(r *renderer) { r.theme = r.theme.Merge(th) }
}

// WithoutWatermark suppresses the watermark label.
func WithoutWatermark() Option {
	return func(r *renderer) { r.theme.Watermark.Disabled = true }
}

// WithWatermarkText replaces the watermark label text.
func WithWatermarkText(text string) Option {
	return func(r *renderer) { r.theme.Watermark.Text = text }
}

type renderer struct {
	theme theme.Theme
}

// SVG renders a layout to a standalone SVG document. The theme starts
// from the defaults merged with the diagram type's own overrides; options
// apply on top.
func SVG(result *layout.Result, opts ...Option) []byte {
	r := &renderer{theme: theme.Default()}
	if _, cfg, err := spec.Lookup(string(result.Type)); err == nil {
		r.theme = r.theme.Merge(cfg.Theme)
	}
	for _, opt := range opts {
		opt(r)
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(px(result.Width), px(result.Height))
	canvas.Rect(0, 0, px(result.Width), px(result.Height), "fill:"+r.theme.Background)
	r.defineMarkers(canvas)

	canvas.Gstyle("font-family:" + r.theme.FontFamily)
	for _, edge := range result.Edges {
		r.drawEdge(canvas, edge)
	}
	for _, node := range result.Nodes {
		r.drawNode(canvas, node)
	}
	for _, edge := range result.Edges {
		r.drawEdgeLabel(canvas, edge)
	}
	r.drawWatermark(canvas, result.Width, result.Height)
	canvas.Gend()
	canvas.End()
	return buf.Bytes()
}

func px(v float64) int {
	return int(math.Round(v))
}

func (r *renderer) defineMarkers(canvas *svg.SVG) {
	canvas.Def()
	canvas.Marker("arrow", 10, 5, 10, 10, `orient="auto"`, `markerUnits="userSpaceOnUse"`)
	canvas.Path("M0,0 L10,5 L0,10 z", "fill:"+r.theme.Boundary.Stroke)
	canvas.MarkerEnd()
	canvas.DefEnd()
}

func (r *renderer) drawEdge(canvas *svg.SVG, edge layout.Edge) {
	stroke := r.theme.Boundary.Stroke
	switch edge.Kind {
	case layout.EdgeArrow:
		canvas.Line(px(edge.X1), px(edge.Y1), px(edge.X2), px(edge.Y2),
			fmt.Sprintf("stroke:%s;stroke-width:%g;marker-end:url(#arrow)", stroke, edgeWidth))
	case layout.EdgeBrace:
		canvas.Path(bracePath(edge),
			fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", stroke, r.theme.Boundary.StrokeWidth))
	default:
		canvas.Line(px(edge.X1), px(edge.Y1), px(edge.X2), px(edge.Y2),
			fmt.Sprintf("stroke:%s;stroke-width:%g", stroke, edgeWidth))
	}
}

// bracePath builds a curly brace along the vertical segment of a brace
// edge: two S-curves meeting at a cusp that points left, toward the node
// the brace groups for.
func bracePath(edge layout.Edge) string {
	x, top, bottom := edge.X1, edge.Y1, edge.Y2
	mid := (top + bottom) / 2
	xl := x - braceDepth/2
	xr := x + braceDepth/2
	return fmt.Sprintf("M%g,%g C%g,%g %g,%g %g,%g M%g,%g C%g,%g %g,%g %g,%g",
		xr, top, xl, top, xr, mid, xl, mid,
		xr, bottom, xl, bottom, xr, mid, xl, mid)
}

func (r *renderer) drawNode(canvas *svg.SVG, n layout.Node) {
	st := r.theme.Style(n.Role)
	shapeStyle := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g", fillOrNone(st.Fill), st.Stroke, st.StrokeWidth)
	x, y := px(n.X), px(n.Y)
	w, h := px(n.Width), px(n.Height)

	switch n.Shape {
	case layout.ShapeCircle:
		canvas.Circle(x, y, px(n.Width/2), shapeStyle)
	case layout.ShapeRect:
		canvas.Roundrect(x-w/2, y-h/2, w, h, cornerRadius, cornerRadius, shapeStyle)
	case layout.ShapeDiamond:
		canvas.Polygon([]int{x, x + w/2, x, x - w/2}, []int{y - h/2, y, y + h/2, y}, shapeStyle)
	case layout.ShapeTriangle:
		canvas.Polygon([]int{x - w/2, x + w/2, x}, []int{y + h/2, y + h/2, y - h/2},
			fmt.Sprintf("fill:%s;stroke:none", st.Stroke))
		if n.Label != "" {
			canvas.Text(x, y+h/2+px(n.FontSize),
				n.Label, fmt.Sprintf("text-anchor:middle;font-size:%gpx;fill:%s", n.FontSize, st.TextColor()))
		}
		return
	case layout.ShapeText:
		if n.Emphasis {
			// Emphasized bare labels get a bordered box around the text.
			canvas.Roundrect(x-w/2-emphasisPad, y-h/2-emphasisPad, w+2*emphasisPad, h+2*emphasisPad,
				cornerRadius, cornerRadius,
				fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", r.theme.Accent.Fill, edgeWidth))
		}
	}
	r.drawLabel(canvas, n, st)
}

// drawLabel writes a node's label centered on the node, one text element
// per line. Emphasized labels render bold in the accent color.
func (r *renderer) drawLabel(canvas *svg.SVG, n layout.Node, st theme.Style) {
	if n.Label == "" {
		return
	}
	fill := st.TextColor()
	weight := ""
	if n.Emphasis {
		fill = r.theme.Accent.Fill
		weight = ";font-weight:bold"
	}
	style := fmt.Sprintf("text-anchor:middle;dominant-baseline:central;font-size:%gpx;fill:%s%s",
		n.FontSize, fill, weight)

	lines := strings.Split(n.Label, "\n")
	lineH := lineSpacing * n.FontSize
	for i, line := range lines {
		dy := (float64(i) - float64(len(lines)-1)/2) * lineH
		canvas.Text(px(n.X), px(n.Y+dy), line, style)
	}
}

func (r *renderer) drawEdgeLabel(canvas *svg.SVG, edge layout.Edge) {
	if edge.Label == "" {
		return
	}
	mx := (edge.X1 + edge.X2) / 2
	my := (edge.Y1 + edge.Y2) / 2
	canvas.Text(px(mx), px(my)-edgeLabelLift, edge.Label,
		fmt.Sprintf("text-anchor:middle;font-size:%gpx;fill:%s", edgeLabelFont, r.theme.Boundary.Text))
}

func fillOrNone(fill string) string {
	if fill == "" {
		return "none"
	}
	return fill
}
