package layout

import (
	"fmt"
	"math"

	"github.com/lycosa9527/mindgraph/pkg/errors"
	"github.com/lycosa9527/mindgraph/pkg/spec"
	"github.com/lycosa9527/mindgraph/pkg/theme"
)

// vertical lays out top-to-bottom sequences: flowcharts, flow maps, tree
// maps, and timelines. Hierarchies render two levels deep, matching the
// spec shapes upstream generators produce.
func (e *Engine) vertical(g *spec.Graph, t spec.Type, hints Hints) (*Result, error) {
	switch t {
	case spec.TypeFlowchart:
		return e.flowchart(g, hints), nil
	case spec.TypeFlowMap:
		return e.flowMap(g, hints), nil
	case spec.TypeTreeMap:
		return e.treeMap(g, hints), nil
	case spec.TypeTimeline:
		return e.timeline(g, hints), nil
	default:
		return nil, errors.New(errors.ErrCodeInternal, "vertical layout cannot handle type: %s", t)
	}
}

// flowchart stacks steps beneath the title, decisions as diamonds and
// everything else as rounded rectangles, with an arrow between each
// consecutive pair.
func (e *Engine) flowchart(g *spec.Graph, hints Hints) *Result {
	result := &Result{}
	title := e.textNode("title", g.Title, theme.RoleTopic, hints.TopicFontSize)
	title.Y = title.Height / 2
	result.Nodes = append(result.Nodes, title)

	cursor := title.Height + titleGap
	var prev string
	for i, step := range g.Steps {
		n := e.rectNode(stepID(step, i), step.Text, stepRole(step.Kind), hints.LabelFontSize)
		if step.Kind == spec.StepDecision {
			n.Shape = ShapeDiamond
		}
		n.Y = cursor + n.Height/2
		cursor += n.Height + stepSpacing
		result.Nodes = append(result.Nodes, n)
		if prev != "" {
			result.Edges = append(result.Edges, Edge{From: prev, To: n.ID, Kind: EdgeArrow})
		}
		prev = n.ID
	}
	return result
}

// stepRole maps flowchart step kinds onto theme roles: terminals take the
// topic style, decisions the accent style.
func stepRole(kind string) theme.Role {
	switch kind {
	case spec.StepStart, spec.StepEnd:
		return theme.RoleTopic
	case spec.StepDecision:
		return theme.RoleAccent
	default:
		return theme.RoleAttribute
	}
}

func stepID(s spec.Step, i int) string {
	if s.ID != "" {
		return s.ID
	}
	return fmt.Sprintf("step-%d", i)
}

// flowMap stacks major steps in one column with their substeps in a
// parallel column to the right. Substeps are placed first and each parent
// step is then centered against its group's vertical span, so a step
// never floats away from its detail.
func (e *Engine) flowMap(g *spec.Graph, hints Hints) *Result {
	result := &Result{}
	title := e.textNode("title", g.Title, theme.RoleTopic, hints.TopicFontSize)
	title.Y = title.Height / 2
	result.Nodes = append(result.Nodes, title)

	groups := make(map[string][]string, len(g.Substeps))
	for _, group := range g.Substeps {
		groups[group.Step] = group.Substeps
	}

	steps := make([]Node, len(g.Steps))
	subNodes := make([][]Node, len(g.Steps))
	var maxStepW, maxSubW float64
	for i, step := range g.Steps {
		steps[i] = e.rectNode(stepID(step, i), step.Text, theme.RoleAttribute, hints.LabelFontSize)
		maxStepW = math.Max(maxStepW, steps[i].Width)
		for j, sub := range groups[step.Text] {
			n := e.rectNode(fmt.Sprintf("%s-sub-%d", steps[i].ID, j), sub, theme.RoleContext, hints.LabelFontSize)
			subNodes[i] = append(subNodes[i], n)
			maxSubW = math.Max(maxSubW, n.Width)
		}
	}
	subX := maxStepW/2 + columnGap + maxSubW/2

	cursor := title.Height + titleGap
	var prev string
	for i := range steps {
		groupH := columnHeight(subNodes[i], substepSpacing)
		blockH := math.Max(steps[i].Height, groupH)

		steps[i].Y = cursor + blockH/2
		subTop := cursor + (blockH-groupH)/2
		for j := range subNodes[i] {
			subNodes[i][j].X = subX
			subNodes[i][j].Y = subTop + subNodes[i][j].Height/2
			subTop += subNodes[i][j].Height + substepSpacing
			result.Edges = append(result.Edges, Edge{From: steps[i].ID, To: subNodes[i][j].ID, Kind: EdgeLine})
		}

		result.Nodes = append(result.Nodes, steps[i])
		result.Nodes = append(result.Nodes, subNodes[i]...)
		if prev != "" {
			result.Edges = append(result.Edges, Edge{From: prev, To: steps[i].ID, Kind: EdgeArrow})
		}
		prev = steps[i].ID
		cursor += blockH + stepSpacing
	}
	return result
}

// treeMap hangs category columns beneath a root topic: each category
// node heads a column of its leaves, and the root is centered over the
// span of the columns it parents.
func (e *Engine) treeMap(g *spec.Graph, hints Hints) *Result {
	result := &Result{}

	type column struct {
		head   Node
		leaves []Node
		width  float64
	}
	columns := make([]column, len(g.Children))
	for i, cat := range g.Children {
		col := column{head: e.rectNode(branchID(cat, i), cat.Label, theme.RoleAttribute, hints.LabelFontSize)}
		col.width = col.head.Width
		for j, leaf := range cat.Children {
			n := e.rectNode(childBranchID(cat, i, leaf, j), leaf.Label, theme.RoleContext, hints.LabelFontSize)
			col.leaves = append(col.leaves, n)
			col.width = math.Max(col.width, n.Width)
		}
		columns[i] = col
	}

	topic := e.rectNode("topic", g.Topic, theme.RoleTopic, hints.TopicFontSize)
	headTop := topic.Height + titleGap

	var x float64
	for i := range columns {
		col := &columns[i]
		colX := x + col.width/2
		col.head.X = colX
		col.head.Y = headTop + col.head.Height/2

		leafY := headTop + col.head.Height + itemSpacing
		for j := range col.leaves {
			col.leaves[j].X = colX
			col.leaves[j].Y = leafY + col.leaves[j].Height/2
			leafY += col.leaves[j].Height + subpartSpacing
			result.Edges = append(result.Edges, Edge{From: col.head.ID, To: col.leaves[j].ID, Kind: EdgeLine})
		}
		x += col.width + columnGap
	}

	// Root sits over the midpoint of its columns, placed after them.
	span := x - columnGap
	topic.X = span / 2
	topic.Y = topic.Height / 2
	result.Nodes = append(result.Nodes, topic)
	for i := range columns {
		result.Nodes = append(result.Nodes, columns[i].head)
		result.Nodes = append(result.Nodes, columns[i].leaves...)
		result.Edges = append(result.Edges, Edge{From: "topic", To: columns[i].head.ID, Kind: EdgeLine})
	}
	return result
}

// timeline runs a vertical spine beneath the title with one dated entry
// per event: date text left of the spine, the event box to the right.
func (e *Engine) timeline(g *spec.Graph, hints Hints) *Result {
	result := &Result{}
	title := e.textNode("title", g.Title, theme.RoleTopic, hints.TopicFontSize)
	title.Y = title.Height / 2
	result.Nodes = append(result.Nodes, title)

	const tickLength = 16.0
	cursor := title.Height + titleGap
	first, last := 0.0, 0.0
	for i, ev := range g.Events {
		label := ev.Title
		if ev.Description != "" {
			label += "\n" + ev.Description
		}
		box := e.rectNode(fmt.Sprintf("event-%d", i), label, theme.RoleAttribute, hints.LabelFontSize)
		rowH := box.Height

		var date Node
		hasDate := ev.Date != ""
		if hasDate {
			date = e.textNode(fmt.Sprintf("event-%d-date", i), ev.Date, theme.RoleContext, hints.LabelFontSize)
			rowH = math.Max(rowH, date.Height)
		}

		y := cursor + rowH/2
		box.X = tickLength + box.Width/2
		box.Y = y
		result.Nodes = append(result.Nodes, box)
		if hasDate {
			date.X = -(tickLength + date.Width/2)
			date.Y = y
			result.Nodes = append(result.Nodes, date)
		}
		result.Edges = append(result.Edges, Edge{Kind: EdgeLine, X1: 0, Y1: y, X2: tickLength, Y2: y})

		if i == 0 {
			first = y
		}
		last = y
		cursor += rowH + itemSpacing
	}
	// Spine drawn last so its extent covers every settled row.
	if len(g.Events) > 0 {
		result.Edges = append(result.Edges, Edge{Kind: EdgeLine, X1: 0, Y1: first, X2: 0, Y2: last})
	}
	return result
}

// columnHeight sums node heights plus spacing between them.
func columnHeight(nodes []Node, spacing float64) float64 {
	if len(nodes) == 0 {
		return 0
	}
	var h float64
	for _, n := range nodes {
		h += n.Height
	}
	return h + spacing*float64(len(nodes)-1)
}
