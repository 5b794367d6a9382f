package layout

import (
	"fmt"
	"math"

	"github.com/lycosa9527/mindgraph/pkg/errors"
	"github.com/lycosa9527/mindgraph/pkg/spec"
	"github.com/lycosa9527/mindgraph/pkg/theme"
)

// radial lays out diagrams with a central topic and satellites on one or
// more rings: bubble maps, circle maps, mindmaps, concept maps, semantic
// webs, and multi-flow maps.
func (e *Engine) radial(g *spec.Graph, t spec.Type, hints Hints) (*Result, error) {
	switch t {
	case spec.TypeBubbleMap:
		return e.radialRing(g.Topic, g.Attributes, "attr", theme.RoleAttribute, hints, nil), nil
	case spec.TypeCircleMap:
		return e.circleMap(g, hints), nil
	case spec.TypeConceptMap:
		return e.conceptMap(g, hints), nil
	case spec.TypeMultiFlowMap:
		return e.multiFlow(g, hints), nil
	case spec.TypeMindMap:
		return e.branchWeb(g.Topic, g.Children, ShapeRect, hints), nil
	case spec.TypeSemanticWeb:
		return e.branchWeb(g.Topic, g.Branches, ShapeCircle, hints), nil
	default:
		return nil, errors.New(errors.ErrCodeInternal, "radial layout cannot handle type: %s", t)
	}
}

// ringAngles returns n angles in radians spaced exactly 360/n degrees
// apart, starting at twelve o'clock.
func ringAngles(n int) []float64 {
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	}
	return angles
}

// spreadAngles returns n angles centered on mid and fanned across span,
// both in radians. A single angle sits exactly at mid.
func spreadAngles(mid, span float64, n int) []float64 {
	angles := make([]float64, n)
	if n == 1 {
		angles[0] = mid
		return angles
	}
	step := span / float64(n-1)
	for i := range angles {
		angles[i] = mid - span/2 + float64(i)*step
	}
	return angles
}

// ringRadius grows a ring's base radius until n nodes of radius nodeR
// fit around it: the chord between adjacent centers must cover two node
// radii plus the relaxation clearance. Rings that fit keep their exact
// geometry instead of entering the relaxation pass.
func ringRadius(base float64, n int, nodeR float64) float64 {
	if n < 2 {
		return base
	}
	return math.Max(base, (2*nodeR+relaxGap)/(2*math.Sin(math.Pi/float64(n))))
}

// fanRadius is ringRadius for a partial fan: n nodes spread evenly
// across span radians.
func fanRadius(base float64, n int, span, nodeR float64) float64 {
	if n < 2 || span <= 0 {
		return base
	}
	half := span / float64(n-1) / 2
	if half >= math.Pi/2 {
		return base
	}
	return math.Max(base, (2*nodeR+relaxGap)/(2*math.Sin(half)))
}

// onRing places a node center at the given angle and radius.
func onRing(n *Node, angle, radius float64) {
	n.X = radius * math.Cos(angle)
	n.Y = radius * math.Sin(angle)
}

// maxRadius returns the largest effective radius among nodes.
func maxRadius(nodes []Node) float64 {
	var r float64
	for _, n := range nodes {
		r = math.Max(r, n.Radius())
	}
	return r
}

// radialRing is the shared single-ring layout: a topic circle at the
// origin with satellites spaced evenly around it, every satellite at the
// same distance from center. The extend hook runs after relaxation so
// callers can add geometry sized to the settled positions.
func (e *Engine) radialRing(topic string, items []string, idPrefix string, role theme.Role, hints Hints, extend func(r *Result)) *Result {
	result := &Result{}
	center := e.circleNode("topic", topic, theme.RoleTopic, hints.TopicFontSize)
	result.Nodes = append(result.Nodes, center)

	satellites := make([]Node, len(items))
	for i, label := range items {
		satellites[i] = e.circleNode(fmt.Sprintf("%s-%d", idPrefix, i), label, role, hints.LabelFontSize)
	}
	satMax := maxRadius(satellites)
	ring := ringRadius(center.Radius()+satMax+ringGap, len(satellites), satMax)

	angles := ringAngles(len(satellites))
	for i := range satellites {
		onRing(&satellites[i], angles[i], ring)
	}
	result.Nodes = append(result.Nodes, satellites...)
	for i := range satellites {
		result.Edges = append(result.Edges, Edge{From: "topic", To: satellites[i].ID, Kind: EdgeLine})
	}

	relaxNodes(result.Nodes, 0, e.relax)
	if extend != nil {
		extend(result)
	}
	return result
}

// circleMap is a bubble-style ring wrapped in an unfilled boundary circle
// that frames the topic's context. The frame is sized to the settled
// positions so it contains every context node even after relaxation.
func (e *Engine) circleMap(g *spec.Graph, hints Hints) *Result {
	return e.radialRing(g.Topic, g.Context, "context", theme.RoleContext, hints,
		func(r *Result) {
			var frame float64
			for _, n := range r.Nodes {
				frame = math.Max(frame, math.Hypot(n.X, n.Y)+n.Radius())
			}
			frame += boundaryGap
			r.Nodes = append(r.Nodes, Node{
				ID:    "boundary",
				Role:  theme.RoleBoundary,
				Shape: ShapeCircle,
				Width: 2 * frame, Height: 2 * frame,
			})
		})
}

// conceptMap is a single ring of concepts with labeled relationship edges
// drawn between arbitrary pairs. The ring only places nodes; connectivity
// comes entirely from the spec's relationships, so the ring spokes are
// dropped rather than drawn under them.
func (e *Engine) conceptMap(g *spec.Graph, hints Hints) *Result {
	result := e.radialRing(g.Topic, g.Concepts, "concept", theme.RoleAttribute, hints, nil)
	result.Edges = result.Edges[:0]

	idByLabel := map[string]string{g.Topic: "topic"}
	for i, label := range g.Concepts {
		idByLabel[label] = fmt.Sprintf("concept-%d", i)
	}
	for _, rel := range g.Relationships {
		result.Edges = append(result.Edges, Edge{
			From:  idByLabel[rel.From],
			To:    idByLabel[rel.To],
			Kind:  EdgeArrow,
			Label: rel.Label,
		})
	}
	return result
}

// multiFlow places causes on the left semicircle and effects on the
// right, mirroring the event-centered cause/effect reading order.
func (e *Engine) multiFlow(g *spec.Graph, hints Hints) *Result {
	result := &Result{}
	center := e.circleNode("topic", g.Event, theme.RoleTopic, hints.TopicFontSize)
	result.Nodes = append(result.Nodes, center)

	causes := make([]Node, len(g.Causes))
	for i, label := range g.Causes {
		causes[i] = e.circleNode(fmt.Sprintf("cause-%d", i), label, theme.RoleAttribute, hints.LabelFontSize)
	}
	effects := make([]Node, len(g.Effects))
	for i, label := range g.Effects {
		effects[i] = e.circleNode(fmt.Sprintf("effect-%d", i), label, theme.RoleAttribute, hints.LabelFontSize)
	}

	base := center.Radius() + math.Max(maxRadius(causes), maxRadius(effects)) + ringGap
	span := 2 * math.Pi / 3 // 120 degree fan per side
	ring := math.Max(
		fanRadius(base, len(causes), span, maxRadius(causes)),
		fanRadius(base, len(effects), span, maxRadius(effects)))
	for i, angle := range spreadAngles(math.Pi, span, len(causes)) {
		onRing(&causes[i], angle, ring)
	}
	for i, angle := range spreadAngles(0, span, len(effects)) {
		onRing(&effects[i], angle, ring)
	}

	result.Nodes = append(result.Nodes, causes...)
	result.Nodes = append(result.Nodes, effects...)
	for _, n := range causes {
		result.Edges = append(result.Edges, Edge{From: n.ID, To: "topic", Kind: EdgeArrow})
	}
	for _, n := range effects {
		result.Edges = append(result.Edges, Edge{From: "topic", To: n.ID, Kind: EdgeArrow})
	}
	relaxNodes(result.Nodes, 0, e.relax)
	return result
}

// branchWeb is the two-ring hierarchy shared by mindmaps and semantic
// webs: branches on an inner ring, each branch's children fanned across
// its own angular sector on an outer ring.
func (e *Engine) branchWeb(topic string, branches []spec.Branch, shape string, hints Hints) *Result {
	result := &Result{}
	makeNode := e.circleNode
	if shape == ShapeRect {
		makeNode = e.rectNode
	}

	center := makeNode("topic", topic, theme.RoleTopic, hints.TopicFontSize)
	result.Nodes = append(result.Nodes, center)

	branchNodes := make([]Node, len(branches))
	for i, b := range branches {
		branchNodes[i] = makeNode(branchID(b, i), b.Label, theme.RoleAttribute, hints.LabelFontSize)
	}
	branchMax := maxRadius(branchNodes)
	innerRing := ringRadius(center.Radius()+branchMax+ringGap, len(branchNodes), branchMax)
	angles := ringAngles(len(branchNodes))
	for i := range branchNodes {
		onRing(&branchNodes[i], angles[i], innerRing)
	}
	result.Nodes = append(result.Nodes, branchNodes...)
	for _, b := range branchNodes {
		result.Edges = append(result.Edges, Edge{From: "topic", To: b.ID, Kind: EdgeLine})
	}

	// Children fan across 80% of their parent's sector on the outer ring,
	// keeping a visual gap between neighboring branch groups.
	sector := 2 * math.Pi / float64(len(branchNodes))
	var childMax float64
	var biggestGroup, groups int
	childNodes := make([][]Node, len(branches))
	for i, b := range branches {
		childNodes[i] = make([]Node, len(b.Children))
		for j, c := range b.Children {
			childNodes[i][j] = makeNode(childBranchID(b, i, c, j), c.Label, theme.RoleContext, hints.LabelFontSize)
		}
		childMax = math.Max(childMax, maxRadius(childNodes[i]))
		if len(b.Children) > 0 {
			groups++
			biggestGroup = max(biggestGroup, len(b.Children))
		}
	}
	outerRing := fanRadius(innerRing+branchMax+childMax+ringGap, biggestGroup, sector*0.8, childMax)
	if groups > 1 {
		// Edge children of neighboring sectors sit 0.2 sectors apart.
		outerRing = math.Max(outerRing, (2*childMax+relaxGap)/(2*math.Sin(sector*0.1)))
	}

	for i := range branches {
		if len(childNodes[i]) == 0 {
			continue
		}
		for j, angle := range spreadAngles(angles[i], sector*0.8, len(childNodes[i])) {
			onRing(&childNodes[i][j], angle, outerRing)
		}
		for _, c := range childNodes[i] {
			result.Edges = append(result.Edges, Edge{From: branchNodes[i].ID, To: c.ID, Kind: EdgeLine})
		}
		result.Nodes = append(result.Nodes, childNodes[i]...)
	}
	relaxNodes(result.Nodes, 0, e.relax)
	return result
}

// branchID prefers the spec-supplied ID, falling back to a positional one.
func branchID(b spec.Branch, i int) string {
	if b.ID != "" {
		return b.ID
	}
	return fmt.Sprintf("branch-%d", i)
}

func childBranchID(parent spec.Branch, i int, child spec.Branch, j int) string {
	if child.ID != "" {
		return child.ID
	}
	return fmt.Sprintf("%s-%d", branchID(parent, i), j)
}
