package layout

import (
	"fmt"
	"math"

	"github.com/lycosa9527/mindgraph/pkg/errors"
	"github.com/lycosa9527/mindgraph/pkg/spec"
	"github.com/lycosa9527/mindgraph/pkg/theme"
)

// paired lays out the two comparison types: double bubble maps and
// bridge maps.
func (e *Engine) paired(g *spec.Graph, t spec.Type, th theme.Theme, hints Hints) (*Result, error) {
	switch t {
	case spec.TypeDoubleBubbleMap:
		return e.doubleBubble(g, hints), nil
	case spec.TypeBridgeMap:
		return e.bridge(g, th, hints), nil
	default:
		return nil, errors.New(errors.ErrCodeInternal, "paired layout cannot handle type: %s", t)
	}
}

// doubleBubble arranges five columns around the horizontal midline: left
// differences, the left topic, shared similarities, the right topic, and
// right differences. Both topics sit at the same distance from the
// similarity column.
func (e *Engine) doubleBubble(g *spec.Graph, hints Hints) *Result {
	result := &Result{}

	left := e.circleNode("left", g.Left, theme.RoleTopic, hints.TopicFontSize)
	right := e.circleNode("right", g.Right, theme.RoleTopic, hints.TopicFontSize)
	sims := e.circleColumn("sim", g.Similarities, theme.RoleSimilarity, hints.LabelFontSize)
	ldiffs := e.circleColumn("ldiff", g.LeftDifferences, theme.RoleDifference, hints.LabelFontSize)
	rdiffs := e.circleColumn("rdiff", g.RightDifferences, theme.RoleDifference, hints.LabelFontSize)

	topicR := math.Max(left.Radius(), right.Radius())
	halfSep := topicR + maxRadius(sims) + pairGap
	halfSep = math.Max(halfSep, minSeparation/2)
	left.X = -halfSep
	right.X = halfSep

	stackCircles(sims, itemSpacing)
	stackCircles(ldiffs, itemSpacing)
	stackCircles(rdiffs, itemSpacing)
	shiftX(ldiffs, -(halfSep + left.Radius() + maxRadius(ldiffs) + pairGap))
	shiftX(rdiffs, halfSep+right.Radius()+maxRadius(rdiffs)+pairGap)

	result.Nodes = append(result.Nodes, left, right)
	result.Nodes = append(result.Nodes, sims...)
	result.Nodes = append(result.Nodes, ldiffs...)
	result.Nodes = append(result.Nodes, rdiffs...)
	for _, n := range sims {
		result.Edges = append(result.Edges,
			Edge{From: "left", To: n.ID, Kind: EdgeLine},
			Edge{From: "right", To: n.ID, Kind: EdgeLine})
	}
	for _, n := range ldiffs {
		result.Edges = append(result.Edges, Edge{From: "left", To: n.ID, Kind: EdgeLine})
	}
	for _, n := range rdiffs {
		result.Edges = append(result.Edges, Edge{From: "right", To: n.ID, Kind: EdgeLine})
	}
	return result
}

// circleColumn builds one circle per label, prefixed IDs, unpositioned.
func (e *Engine) circleColumn(prefix string, labels []string, role theme.Role, fontSize float64) []Node {
	nodes := make([]Node, len(labels))
	for i, label := range labels {
		nodes[i] = e.circleNode(fmt.Sprintf("%s-%d", prefix, i), label, role, fontSize)
	}
	return nodes
}

// stackCircles places circles in a vertical column centered on y=0.
func stackCircles(nodes []Node, spacing float64) {
	var total float64
	for _, n := range nodes {
		total += n.Height
	}
	total += spacing * float64(max(len(nodes)-1, 0))
	y := -total / 2
	for i := range nodes {
		nodes[i].Y = y + nodes[i].Height/2
		y += nodes[i].Height + spacing
	}
}

func shiftX(nodes []Node, x float64) {
	for i := range nodes {
		nodes[i].X = x
	}
}

// Separator triangles on a bridge spine.
const (
	bridgeSepWidth  = 24.0
	bridgeSepHeight = 14.0
	bridgeLift      = 14.0
)

// bridge lays analogy pairs across a horizontal spine: the left term of
// each pair above the line, the right term below, triangle separators
// between consecutive pairs, and the relating factor labelling the left
// end of the spine. The first pair renders emphasized unless the theme
// asks for uniform pairs.
func (e *Engine) bridge(g *spec.Graph, th theme.Theme, hints Hints) *Result {
	result := &Result{}

	uppers := make([]Node, len(g.Analogies))
	lowers := make([]Node, len(g.Analogies))
	var maxPairW float64
	for i, pair := range g.Analogies {
		uppers[i] = e.textNode(fmt.Sprintf("pair-%d-left", i), pair.Left, theme.RoleAttribute, hints.LabelFontSize)
		lowers[i] = e.textNode(fmt.Sprintf("pair-%d-right", i), pair.Right, theme.RoleAttribute, hints.LabelFontSize)
		maxPairW = math.Max(maxPairW, math.Max(uppers[i].Width, lowers[i].Width))
	}

	spacing := maxPairW + pairGap
	for i := range uppers {
		x := float64(i) * spacing
		uppers[i].X = x
		uppers[i].Y = -(bridgeLift + uppers[i].Height/2)
		lowers[i].X = x
		lowers[i].Y = bridgeLift + lowers[i].Height/2
		if i == 0 && !th.UniformPairs {
			uppers[i].Emphasis = true
			lowers[i].Emphasis = true
		}
		result.Nodes = append(result.Nodes, uppers[i], lowers[i])
	}

	for i := 0; i < len(g.Analogies)-1; i++ {
		result.Nodes = append(result.Nodes, Node{
			ID:     fmt.Sprintf("sep-%d", i),
			Role:   theme.RoleBoundary,
			Shape:  ShapeTriangle,
			X:      (float64(i) + 0.5) * spacing,
			Y:      0,
			Width:  bridgeSepWidth,
			Height: bridgeSepHeight,
		})
	}

	if n := len(g.Analogies); n > 0 {
		relating := e.textNode("relating", g.RelatingFactor, theme.RoleBoundary, hints.LabelFontSize)
		relating.X = -maxPairW/2 - pairGap/2 - relating.Width/2
		relating.Y = 0
		result.Nodes = append(result.Nodes, relating)
		result.Edges = append(result.Edges, Edge{
			Kind: EdgeLine,
			X1:   -maxPairW / 2,
			Y1:   0,
			X2:   float64(n-1)*spacing + maxPairW/2,
			Y2:   0,
		})
	}
	return result
}
