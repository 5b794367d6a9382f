package layout

import (
	"fmt"
	"math"
	"testing"
)

func TestFlowchartStacking(t *testing.T) {
	result := computeSpec(t, layoutSpecs["flowchart"], Hints{})

	title := mustNode(t, result, "title")
	ids := []string{"s", "c", "e"}
	prevY := title.Y
	for _, id := range ids {
		n := mustNode(t, result, id)
		if n.Y <= prevY {
			t.Errorf("step %q y = %v, want below %v", id, n.Y, prevY)
		}
		prevY = n.Y
	}

	if got := mustNode(t, result, "c").Shape; got != ShapeDiamond {
		t.Errorf("decision shape = %q, want %q", got, ShapeDiamond)
	}
	for _, id := range []string{"s", "e"} {
		if got := mustNode(t, result, id).Shape; got != ShapeRect {
			t.Errorf("step %q shape = %q, want %q", id, got, ShapeRect)
		}
	}

	if got := len(result.Edges); got != 2 {
		t.Fatalf("len(Edges) = %d, want 2", got)
	}
	for i, edge := range result.Edges {
		if edge.Kind != EdgeArrow {
			t.Errorf("edge %d kind = %q, want %q", i, edge.Kind, EdgeArrow)
		}
	}
	if result.Edges[0].From != "s" || result.Edges[0].To != "c" ||
		result.Edges[1].From != "c" || result.Edges[1].To != "e" {
		t.Errorf("edges = %+v, want s->c->e", result.Edges)
	}
}

func TestFlowchartDecisionSizedLikeProcess(t *testing.T) {
	src := `{"type":"flowchart","title":"T","steps":[` +
		`{"id":"a","type":"process","text":"check input"},` +
		`{"id":"b","type":"decision","text":"check input"}]}`
	result := computeSpec(t, src, Hints{})
	a := mustNode(t, result, "a")
	b := mustNode(t, result, "b")
	if a.Width != b.Width || a.Height != b.Height {
		t.Errorf("decision = %vx%v, process = %vx%v; same text must produce equal boxes",
			b.Width, b.Height, a.Width, a.Height)
	}
}

func TestFlowMapSubstepCentering(t *testing.T) {
	result := computeSpec(t, layoutSpecs["flow_map"], Hints{})

	parent := mustNode(t, result, "step-1")
	first := mustNode(t, result, "step-1-sub-0")
	last := mustNode(t, result, "step-1-sub-1")

	top := first.Y - first.Height/2
	bottom := last.Y + last.Height/2
	if got, want := parent.Y, (top+bottom)/2; math.Abs(got-want) > 1e-6 {
		t.Errorf("parent center y = %v, want %v (midpoint of its substep group)", got, want)
	}

	if first.X <= parent.X {
		t.Errorf("substep x = %v, want right of parent x %v", first.X, parent.X)
	}
	if first.X != last.X {
		t.Errorf("substep column x = %v and %v, want aligned", first.X, last.X)
	}
}

func TestFlowMapEdges(t *testing.T) {
	result := computeSpec(t, layoutSpecs["flow_map"], Hints{})

	var arrows, lines int
	for _, edge := range result.Edges {
		switch edge.Kind {
		case EdgeArrow:
			arrows++
		case EdgeLine:
			lines++
		}
	}
	if arrows != 2 {
		t.Errorf("arrow count = %d, want 2 (between consecutive steps)", arrows)
	}
	if lines != 2 {
		t.Errorf("line count = %d, want 2 (step to each substep)", lines)
	}
}

func TestTreeMapColumns(t *testing.T) {
	result := computeSpec(t, layoutSpecs["tree_map"], Hints{})

	topic := mustNode(t, result, "topic")
	head0 := mustNode(t, result, "branch-0")
	head1 := mustNode(t, result, "branch-1")

	if head0.Y != head1.Y {
		t.Errorf("category heads y = %v and %v, want aligned", head0.Y, head1.Y)
	}
	if topic.Y >= head0.Y {
		t.Errorf("topic y = %v, want above heads at %v", topic.Y, head0.Y)
	}
	if head0.X >= head1.X {
		t.Errorf("heads x = %v, %v, want left-to-right spec order", head0.X, head1.X)
	}
	if topic.X <= head0.X || topic.X >= head1.X {
		t.Errorf("topic x = %v, want between %v and %v", topic.X, head0.X, head1.X)
	}

	for i, want := range []int{2, 1} {
		head := mustNode(t, result, fmt.Sprintf("branch-%d", i))
		prevY := head.Y
		for j := 0; j < want; j++ {
			leaf := mustNode(t, result, fmt.Sprintf("branch-%d-%d", i, j))
			if leaf.X != head.X {
				t.Errorf("leaf branch-%d-%d x = %v, want column x %v", i, j, leaf.X, head.X)
			}
			if leaf.Y <= prevY {
				t.Errorf("leaf branch-%d-%d y = %v, want below %v", i, j, leaf.Y, prevY)
			}
			prevY = leaf.Y
		}
	}
}

func TestTimelineRows(t *testing.T) {
	result := computeSpec(t, layoutSpecs["timeline"], Hints{})

	var spine *Edge
	for i := range result.Edges {
		e := &result.Edges[i]
		if e.X1 == e.X2 && e.Y1 != e.Y2 {
			spine = e
		}
	}
	if spine == nil {
		t.Fatal("no vertical spine edge found")
	}

	prevY := mustNode(t, result, "title").Y
	for i := 0; i < 2; i++ {
		box := mustNode(t, result, fmt.Sprintf("event-%d", i))
		date := mustNode(t, result, fmt.Sprintf("event-%d-date", i))
		if date.Y != box.Y {
			t.Errorf("event %d date y = %v, box y = %v, want same row", i, date.Y, box.Y)
		}
		if date.X >= spine.X1 {
			t.Errorf("event %d date x = %v, want left of spine %v", i, date.X, spine.X1)
		}
		if box.X <= spine.X1 {
			t.Errorf("event %d box x = %v, want right of spine %v", i, box.X, spine.X1)
		}
		if box.Y <= prevY {
			t.Errorf("event %d y = %v, want below %v", i, box.Y, prevY)
		}
		prevY = box.Y
	}
}

func TestTimelineDescriptionJoinsLabel(t *testing.T) {
	result := computeSpec(t, layoutSpecs["timeline"], Hints{})
	box := mustNode(t, result, "event-1")
	if want := "Republic\nKings expelled"; box.Label != want {
		t.Errorf("event label = %q, want %q", box.Label, want)
	}
}
