// Package export converts computed layouts into interchange formats.
//
// The DOT export preserves labels, shapes, colors, and connectivity but
// hands placement to Graphviz, which suits relational diagrams (concept
// maps, mindmaps, semantic webs, tree maps) where structure matters more
// than the computed geometry. [RenderSVG] runs the Graphviz engine for
// callers that want the alternate rendering rather than the DOT text.
package export

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/lycosa9527/mindgraph/pkg/errors"
	"github.com/lycosa9527/mindgraph/pkg/layout"
	"github.com/lycosa9527/mindgraph/pkg/theme"
)

// ToDOT converts a layout to Graphviz DOT. Decorative edges with no
// endpoints (spines, ticks, braces) are dropped; they only exist as
// geometry, which DOT recomputes anyway.
func ToDOT(result *layout.Result, th theme.Theme) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [fontname=%q, fontsize=14, margin=\"0.2,0.1\"];\n", th.FontFamily)
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range result.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(nodeAttrs(n, th), ", "))
	}

	buf.WriteString("\n")
	for _, e := range result.Edges {
		if e.From == "" || e.To == "" {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q%s;\n", e.From, e.To, edgeAttrs(e))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n layout.Node, th theme.Theme) []string {
	st := th.Style(n.Role)
	attrs := []string{fmt.Sprintf("label=%q", n.Label)}

	switch n.Shape {
	case layout.ShapeCircle:
		attrs = append(attrs, "shape=circle", "style=filled")
	case layout.ShapeDiamond:
		attrs = append(attrs, "shape=diamond", "style=filled")
	case layout.ShapeTriangle:
		attrs = append(attrs, "shape=triangle", "style=filled")
	case layout.ShapeText:
		return append(attrs, "shape=plaintext", fmt.Sprintf("fontcolor=%q", st.TextColor()))
	default:
		attrs = append(attrs, "shape=box", `style="rounded,filled"`)
	}

	fill := st.Fill
	if fill == "" || fill == "none" {
		fill = "white"
	}
	return append(attrs,
		fmt.Sprintf("fillcolor=%q", fill),
		fmt.Sprintf("fontcolor=%q", st.TextColor()),
		fmt.Sprintf("color=%q", st.Stroke),
	)
}

func edgeAttrs(e layout.Edge) string {
	var attrs []string
	if e.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
	}
	if e.Kind != layout.EdgeArrow {
		attrs = append(attrs, "arrowhead=none")
	}
	if len(attrs) == 0 {
		return ""
	}
	return " [" + strings.Join(attrs, ", ") + "]"
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeExport, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeExport, err, "parse DOT")
	}
	defer func() { _ = g.Close() }()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeExport, err, "render DOT")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz svg element to a zero-origin
// viewBox with pixel dimensions, so embedders can size it like the
// native renderer's output.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
