package layout

import (
	"fmt"
	"math"

	"github.com/lycosa9527/mindgraph/pkg/spec"
	"github.com/lycosa9527/mindgraph/pkg/theme"
)

// brace lays out whole/part decompositions in three text columns: the
// topic, its parts, and their subparts. A large brace spans the parts
// column and each part with subparts gets its own smaller brace. Braces
// travel as edges with explicit coordinates so the renderer can shape
// them without re-deriving the column geometry.
func (e *Engine) brace(g *spec.Graph, hints Hints) (*Result, error) {
	result := &Result{}

	topic := e.textNode("topic", g.Topic, theme.RoleTopic, hints.TopicFontSize)
	parts := make([]Node, len(g.Parts))
	subs := make([][]Node, len(g.Parts))
	var maxPartW, maxSubW float64
	for i, part := range g.Parts {
		parts[i] = e.textNode(fmt.Sprintf("part-%d", i), part.Name, theme.RoleAttribute, hints.LabelFontSize)
		maxPartW = math.Max(maxPartW, parts[i].Width)
		for j, sp := range part.Subparts {
			n := e.textNode(fmt.Sprintf("part-%d-sub-%d", i, j), sp.Name, theme.RoleContext, hints.LabelFontSize)
			subs[i] = append(subs[i], n)
			maxSubW = math.Max(maxSubW, n.Width)
		}
	}

	partsX := topic.Width + columnGap + maxPartW/2
	subX := topic.Width + columnGap + maxPartW + columnGap + maxSubW/2

	var cursor float64
	for i := range parts {
		groupH := columnHeight(subs[i], subpartSpacing)
		blockH := math.Max(parts[i].Height, groupH)

		parts[i].X = partsX
		parts[i].Y = cursor + blockH/2
		subTop := cursor + (blockH-groupH)/2
		groupTop := subTop
		for j := range subs[i] {
			subs[i][j].X = subX
			subs[i][j].Y = subTop + subs[i][j].Height/2
			subTop += subs[i][j].Height + subpartSpacing
		}
		if len(subs[i]) > 0 {
			x := topic.Width + columnGap + maxPartW + columnGap/2
			result.Edges = append(result.Edges, Edge{Kind: EdgeBrace, X1: x, Y1: groupTop, X2: x, Y2: groupTop + groupH})
		}

		result.Nodes = append(result.Nodes, parts[i])
		result.Nodes = append(result.Nodes, subs[i]...)
		cursor += blockH + itemSpacing
	}

	totalH := math.Max(cursor-itemSpacing, 0)
	topic.Y = totalH / 2
	result.Nodes = append(result.Nodes, topic)
	if len(parts) > 0 {
		x := topic.Width + columnGap/2
		result.Edges = append(result.Edges, Edge{Kind: EdgeBrace, X1: x, Y1: 0, X2: x, Y2: totalH})
	}
	return result, nil
}
