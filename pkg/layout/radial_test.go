package layout

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"testing"
)

func TestBubbleRingGeometry(t *testing.T) {
	result := computeSpec(t, layoutSpecs["bubble_map"], Hints{})
	topic := mustNode(t, result, "topic")

	var angles, distances []float64
	for i := 0; i < 4; i++ {
		n := mustNode(t, result, fmt.Sprintf("attr-%d", i))
		angles = append(angles, math.Atan2(n.Y-topic.Y, n.X-topic.X))
		distances = append(distances, math.Hypot(n.X-topic.X, n.Y-topic.Y))
	}

	const eps = 1e-6
	for i := 1; i < len(distances); i++ {
		if math.Abs(distances[i]-distances[0]) > eps {
			t.Errorf("attribute %d distance = %v, want %v (all satellites equidistant)", i, distances[i], distances[0])
		}
	}

	sort.Float64s(angles)
	want := 2 * math.Pi / 4
	for i := 1; i < len(angles); i++ {
		if got := angles[i] - angles[i-1]; math.Abs(got-want) > eps {
			t.Errorf("angular gap %d = %v rad, want %v rad", i, got, want)
		}
	}

	// The first satellite starts at twelve o'clock.
	first := mustNode(t, result, "attr-0")
	if math.Abs(first.X-topic.X) > eps {
		t.Errorf("attr-0 x = %v, want %v (directly above the topic)", first.X, topic.X)
	}
	if first.Y >= topic.Y {
		t.Errorf("attr-0 y = %v, want above topic y %v", first.Y, topic.Y)
	}
}

// Crowded rings grow instead of relaxing: equal-size satellites keep
// exact spacing even when they no longer fit on the base ring.
func TestBubbleRingGeometryDense(t *testing.T) {
	for _, count := range []int{12, 16, 20} {
		t.Run(fmt.Sprintf("n=%d", count), func(t *testing.T) {
			attrs := make([]string, count)
			for i := range attrs {
				attrs[i] = fmt.Sprintf("%02d", i)
			}
			src := fmt.Sprintf(`{"type":"bubble_map","topic":"Sun","attributes":["%s"]}`,
				strings.Join(attrs, `","`))
			result := computeSpec(t, src, Hints{})
			topic := mustNode(t, result, "topic")

			var angles, distances []float64
			for i := 0; i < count; i++ {
				n := mustNode(t, result, fmt.Sprintf("attr-%d", i))
				angles = append(angles, math.Atan2(n.Y-topic.Y, n.X-topic.X))
				distances = append(distances, math.Hypot(n.X-topic.X, n.Y-topic.Y))
			}

			const eps = 1e-6
			for i := 1; i < len(distances); i++ {
				if math.Abs(distances[i]-distances[0]) > eps {
					t.Errorf("attribute %d distance = %v, want %v (all satellites equidistant)", i, distances[i], distances[0])
				}
			}
			sort.Float64s(angles)
			want := 2 * math.Pi / float64(count)
			for i := 1; i < len(angles); i++ {
				if got := angles[i] - angles[i-1]; math.Abs(got-want) > eps {
					t.Errorf("angular gap %d = %v rad, want %v rad", i, got, want)
				}
			}
		})
	}
}

func TestBubbleSingleAttribute(t *testing.T) {
	result := computeSpec(t, `{"type":"bubble_map","topic":"T","attributes":["only"]}`, Hints{})
	topic := mustNode(t, result, "topic")
	sat := mustNode(t, result, "attr-0")
	if sat.Y >= topic.Y {
		t.Errorf("single attribute y = %v, want above topic y %v", sat.Y, topic.Y)
	}
	if len(result.Edges) != 1 {
		t.Fatalf("len(Edges) = %d, want 1", len(result.Edges))
	}
}

func TestCircleMapBoundaryContainsContext(t *testing.T) {
	result := computeSpec(t, layoutSpecs["circle_map"], Hints{})
	boundary := mustNode(t, result, "boundary")
	if boundary.Shape != ShapeCircle {
		t.Fatalf("boundary shape = %q, want %q", boundary.Shape, ShapeCircle)
	}

	const eps = 1e-6
	for _, n := range result.Nodes {
		if n.ID == "boundary" {
			continue
		}
		reach := math.Hypot(n.X-boundary.X, n.Y-boundary.Y) + n.Radius()
		if reach > boundary.Radius()+eps {
			t.Errorf("node %q reaches %v, outside boundary radius %v", n.ID, reach, boundary.Radius())
		}
	}
}

func TestMultiFlowSides(t *testing.T) {
	result := computeSpec(t, layoutSpecs["multi_flow_map"], Hints{})
	event := mustNode(t, result, "topic")

	for i := 0; i < 2; i++ {
		cause := mustNode(t, result, fmt.Sprintf("cause-%d", i))
		if cause.X >= event.X {
			t.Errorf("cause-%d x = %v, want left of event x %v", i, cause.X, event.X)
		}
	}
	effect := mustNode(t, result, "effect-0")
	if effect.X <= event.X {
		t.Errorf("effect-0 x = %v, want right of event x %v", effect.X, event.X)
	}

	var intoEvent, outOfEvent int
	for _, edge := range result.Edges {
		if edge.Kind != EdgeArrow {
			t.Errorf("edge kind = %q, want %q", edge.Kind, EdgeArrow)
		}
		switch {
		case edge.To == "topic":
			intoEvent++
		case edge.From == "topic":
			outOfEvent++
		}
	}
	if intoEvent != 2 || outOfEvent != 1 {
		t.Errorf("arrows into/out of event = %d/%d, want 2/1", intoEvent, outOfEvent)
	}
}

func TestConceptMapRelationshipEdges(t *testing.T) {
	result := computeSpec(t, layoutSpecs["concept_map"], Hints{})

	if got := len(result.Edges); got != 2 {
		t.Fatalf("len(Edges) = %d, want 2 (relationships only)", got)
	}
	labels := map[string]bool{}
	for _, edge := range result.Edges {
		if edge.Kind != EdgeArrow {
			t.Errorf("edge kind = %q, want %q", edge.Kind, EdgeArrow)
		}
		if edge.From != "topic" {
			t.Errorf("edge from = %q, want %q", edge.From, "topic")
		}
		labels[edge.Label] = true
	}
	if !labels["freezes"] || !labels["boils"] {
		t.Errorf("edge labels = %v, want freezes and boils", labels)
	}
}

func TestMindmapTwoLevels(t *testing.T) {
	result := computeSpec(t, layoutSpecs["mindmap"], Hints{})

	topic := mustNode(t, result, "topic")
	if topic.Shape != ShapeRect {
		t.Errorf("mindmap topic shape = %q, want %q", topic.Shape, ShapeRect)
	}
	branch := mustNode(t, result, "branch-0")
	child := mustNode(t, result, "branch-0-0")

	branchDist := math.Hypot(branch.X-topic.X, branch.Y-topic.Y)
	childDist := math.Hypot(child.X-topic.X, child.Y-topic.Y)
	if childDist <= branchDist {
		t.Errorf("child distance = %v, want beyond branch distance %v", childDist, branchDist)
	}

	var haveChildEdge bool
	for _, edge := range result.Edges {
		if edge.From == "branch-0" && edge.To == "branch-0-0" {
			haveChildEdge = true
		}
	}
	if !haveChildEdge {
		t.Error("missing edge from branch-0 to branch-0-0")
	}
}

func TestSemanticWebUsesCircles(t *testing.T) {
	result := computeSpec(t, layoutSpecs["semantic_web"], Hints{})
	for _, id := range []string{"topic", "branch-0", "branch-0-0"} {
		n := mustNode(t, result, id)
		if n.Shape != ShapeCircle {
			t.Errorf("node %q shape = %q, want %q", id, n.Shape, ShapeCircle)
		}
	}
}

func TestRingAngles(t *testing.T) {
	got := ringAngles(4)
	want := []float64{-math.Pi / 2, 0, math.Pi / 2, math.Pi}
	const eps = 1e-9
	for i := range want {
		if math.Abs(got[i]-want[i]) > eps {
			t.Errorf("ringAngles(4)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSpreadAngles(t *testing.T) {
	if got := spreadAngles(math.Pi, math.Pi/2, 1); got[0] != math.Pi {
		t.Errorf("single angle = %v, want %v", got[0], math.Pi)
	}
	got := spreadAngles(0, math.Pi/2, 3)
	want := []float64{-math.Pi / 4, 0, math.Pi / 4}
	const eps = 1e-9
	for i := range want {
		if math.Abs(got[i]-want[i]) > eps {
			t.Errorf("spreadAngles(0, pi/2, 3)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
