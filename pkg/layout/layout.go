package layout

import (
	"math"

	"github.com/lycosa9527/mindgraph/pkg/errors"
	"github.com/lycosa9527/mindgraph/pkg/measure"
	"github.com/lycosa9527/mindgraph/pkg/spec"
	"github.com/lycosa9527/mindgraph/pkg/theme"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Default canvas dimensions in pixels.
const (
	DefaultWidth         = 700.0
	DefaultHeight        = 500.0
	DefaultPadding       = 40.0
	DefaultTopicFontSize = 18.0
	DefaultLabelFontSize = 14.0
)

// Node shapes.
const (
	ShapeCircle   = "circle"
	ShapeRect     = "rect"
	ShapeDiamond  = "diamond"
	ShapeTriangle = "triangle"
	ShapeText     = "text"
)

// Edge kinds.
const (
	EdgeLine  = "line"
	EdgeArrow = "arrow"
	EdgeBrace = "brace"
)

// Layout sources reported on Result.
const (
	SourceComputed    = "computed"
	SourcePrecomputed = "precomputed"
)

// Geometry constants shared by the family strategies.
const (
	minCircleRadius   = 30.0 // legibility and touch-target floor
	circleTextPadding = 8.0
	rectPadX          = 12.0
	rectPadY          = 8.0
	minRectWidth      = 60.0
	minRectHeight     = 30.0
	ringGap           = 60.0 // clearance between topic and satellite rings
	boundaryGap       = 20.0 // clearance inside the circle map frame
	columnGap         = 60.0
	stepSpacing       = 30.0
	substepSpacing    = 30.0
	itemSpacing       = 24.0
	subpartSpacing    = 12.0
	pairGap           = 60.0
	minSeparation     = 220.0 // double bubble topic center distance floor
	titleGap          = 40.0  // space between a title and the first item
)

// =============================================================================
// Result Types
// =============================================================================

// Node is one positioned element. X and Y locate the node's center.
type Node struct {
	ID       string     `json:"id"`
	Role     theme.Role `json:"role"`
	Shape    string     `json:"shape"`
	Label    string     `json:"label,omitempty"`
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
	FontSize float64    `json:"fontSize,omitempty"`
	Emphasis bool       `json:"emphasis,omitempty"`
}

// Radius returns the node's effective radius: the true radius for
// circles, the half-diagonal for everything else.
func (n Node) Radius() float64 {
	if n.Shape == ShapeCircle {
		return n.Width / 2
	}
	return math.Hypot(n.Width, n.Height) / 2
}

// Edge connects two nodes or spans explicit coordinates. Connecting edges
// reference node IDs and get boundary-clipped endpoints; spine and brace
// edges carry their coordinates directly.
type Edge struct {
	From  string  `json:"from,omitempty"`
	To    string  `json:"to,omitempty"`
	Kind  string  `json:"kind"`
	Label string  `json:"label,omitempty"`
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
}

// Result is the positioned output for one spec, sized to its final canvas.
// It is the canonical JSON format for cached and exported layouts.
type Result struct {
	Type   spec.Type `json:"type"`
	Source string    `json:"source"`
	Nodes  []Node    `json:"nodes"`
	Edges  []Edge    `json:"edges"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
}

// Node returns the node with the given ID, if present.
func (r *Result) Node(id string) (Node, bool) {
	for _, n := range r.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Hints are caller-supplied canvas minimums and font sizes. Zero fields
// fall back to the package defaults.
type Hints struct {
	Width         float64 `json:"baseWidth,omitempty"`
	Height        float64 `json:"baseHeight,omitempty"`
	Padding       float64 `json:"padding,omitempty"`
	TopicFontSize float64 `json:"topicFontSize,omitempty"`
	LabelFontSize float64 `json:"charFontSize,omitempty"`
}

func (h Hints) withDefaults() Hints {
	if h.Width <= 0 {
		h.Width = DefaultWidth
	}
	if h.Height <= 0 {
		h.Height = DefaultHeight
	}
	if h.Padding < 0 {
		h.Padding = 0
	} else if h.Padding == 0 {
		h.Padding = DefaultPadding
	}
	if h.TopicFontSize <= 0 {
		h.TopicFontSize = DefaultTopicFontSize
	}
	if h.LabelFontSize <= 0 {
		h.LabelFontSize = DefaultLabelFontSize
	}
	return h
}

// =============================================================================
// Engine
// =============================================================================

// Measurer provides text dimensions for node sizing.
type Measurer interface {
	Measure(text string, fontSize float64) measure.Size
}

// Engine computes layouts. It is safe for concurrent use when its
// Measurer is.
type Engine struct {
	measurer Measurer
	relax    RelaxParams
}

// Option configures an Engine.
type Option func(*Engine)

// WithRelax overrides the overlap relaxation tuning.
func WithRelax(p RelaxParams) Option {
	return func(e *Engine) { e.relax = p }
}

// New returns an Engine backed by the given measurer, or the default
// font-backed measurer when nil.
func New(m Measurer, opts ...Option) *Engine {
	if m == nil {
		m = measure.New()
	}
	e := &Engine{measurer: m, relax: DefaultRelax}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compute validates the spec, routes it to its family strategy, and
// returns the positioned result. Dimension hints from the spec's
// enhancement metadata take precedence over smaller caller hints.
func (e *Engine) Compute(g *spec.Graph, th theme.Theme, hints Hints) (*Result, error) {
	if err := spec.Validate(g); err != nil {
		return nil, err
	}
	t, cfg, err := spec.Lookup(string(g.Type))
	if err != nil {
		return nil, err
	}
	hints = hints.withDefaults()
	if rec := g.Recommended; rec != nil {
		hints.Width = max(hints.Width, rec.Width)
		hints.Height = max(hints.Height, rec.Height)
		hints.Padding = max(hints.Padding, rec.Padding)
	}

	var result *Result
	switch cfg.Family {
	case spec.FamilyRadial:
		result, err = e.radial(g, t, hints)
	case spec.FamilyVertical:
		result, err = e.vertical(g, t, hints)
	case spec.FamilyPaired:
		result, err = e.paired(g, t, th, hints)
	case spec.FamilyBrace:
		result, err = e.brace(g, hints)
	default:
		return nil, errors.New(errors.ErrCodeInternal, "no layout strategy for family: %s", cfg.Family)
	}
	if err != nil {
		return nil, err
	}
	result.Type = t
	result.Source = SourceComputed

	applyPrecomputed(g, result)
	connectEdges(result)
	finalize(result, hints)
	return result, nil
}

// =============================================================================
// Shared Geometry
// =============================================================================

// circleNode sizes a circle around measured text. The radius is the text
// half-diagonal plus padding, floored for legibility.
func (e *Engine) circleNode(id, label string, role theme.Role, fontSize float64) Node {
	size := e.measurer.Measure(label, fontSize)
	r := math.Max(minCircleRadius, math.Ceil(math.Hypot(size.Width, size.Height)/2+circleTextPadding))
	return Node{ID: id, Role: role, Shape: ShapeCircle, Label: label, Width: 2 * r, Height: 2 * r, FontSize: fontSize}
}

// rectNode sizes a rounded rectangle around measured text.
func (e *Engine) rectNode(id, label string, role theme.Role, fontSize float64) Node {
	size := e.measurer.Measure(label, fontSize)
	w := math.Max(minRectWidth, math.Ceil(size.Width+2*rectPadX))
	h := math.Max(minRectHeight, math.Ceil(size.Height+2*rectPadY))
	return Node{ID: id, Role: role, Shape: ShapeRect, Label: label, Width: w, Height: h, FontSize: fontSize}
}

// textNode sizes a bare label with no enclosing shape.
func (e *Engine) textNode(id, label string, role theme.Role, fontSize float64) Node {
	size := e.measurer.Measure(label, fontSize)
	return Node{ID: id, Role: role, Shape: ShapeText, Label: label, Width: size.Width, Height: size.Height, FontSize: fontSize}
}

// applyPrecomputed adopts upstream positions when they cover every node.
// Partial position sets are ignored: mixing upstream and self-computed
// coordinates would place nodes in two different coordinate spaces.
func applyPrecomputed(g *spec.Graph, r *Result) {
	if !g.HasPrecomputedLayout() {
		return
	}
	positions := g.Layout.Positions
	for _, n := range r.Nodes {
		if _, ok := positions[n.ID]; !ok {
			return
		}
	}
	for i := range r.Nodes {
		pos := positions[r.Nodes[i].ID]
		r.Nodes[i].X = pos.X
		r.Nodes[i].Y = pos.Y
		if pos.Width > 0 {
			r.Nodes[i].Width = pos.Width
		}
		if pos.Height > 0 {
			r.Nodes[i].Height = pos.Height
		}
	}
	r.Source = SourcePrecomputed
}

// connectEdges computes endpoints for node-referencing edges, clipped to
// each node's boundary so lines never pierce the shapes they join.
func connectEdges(r *Result) {
	byID := make(map[string]Node, len(r.Nodes))
	for _, n := range r.Nodes {
		byID[n.ID] = n
	}
	for i, edge := range r.Edges {
		if edge.From == "" || edge.To == "" {
			continue
		}
		from, okF := byID[edge.From]
		to, okT := byID[edge.To]
		if !okF || !okT {
			continue
		}
		x1, y1 := clipToBoundary(from, to.X, to.Y)
		x2, y2 := clipToBoundary(to, from.X, from.Y)
		r.Edges[i].X1, r.Edges[i].Y1 = x1, y1
		r.Edges[i].X2, r.Edges[i].Y2 = x2, y2
	}
}

// clipToBoundary returns the point where the segment from n's center
// toward (tx, ty) crosses n's outline.
func clipToBoundary(n Node, tx, ty float64) (float64, float64) {
	dx, dy := tx-n.X, ty-n.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return n.X, n.Y
	}
	var t float64
	switch n.Shape {
	case ShapeCircle:
		t = (n.Width / 2) / dist
	case ShapeDiamond:
		// |dx|/(w/2) + |dy|/(h/2) = 1 on a diamond boundary.
		t = 1 / (math.Abs(dx)/(n.Width/2) + math.Abs(dy)/(n.Height/2))
	default:
		t = math.Inf(1)
		if dx != 0 {
			t = (n.Width / 2) / math.Abs(dx)
		}
		if dy != 0 {
			t = math.Min(t, (n.Height/2)/math.Abs(dy))
		}
	}
	if t >= 1 {
		// Nodes touch or overlap; fall back to the center.
		return n.X, n.Y
	}
	return n.X + dx*t, n.Y + dy*t
}

// finalize translates content onto the canvas and sizes the canvas. The
// hinted dimensions are a floor: content larger than the hint grows the
// canvas, content smaller than the hint is centered within it.
func finalize(r *Result, hints Hints) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, n := range r.Nodes {
		minX = math.Min(minX, n.X-n.Width/2)
		maxX = math.Max(maxX, n.X+n.Width/2)
		minY = math.Min(minY, n.Y-n.Height/2)
		maxY = math.Max(maxY, n.Y+n.Height/2)
	}
	for _, edge := range r.Edges {
		minX = math.Min(minX, math.Min(edge.X1, edge.X2))
		maxX = math.Max(maxX, math.Max(edge.X1, edge.X2))
		minY = math.Min(minY, math.Min(edge.Y1, edge.Y2))
		maxY = math.Max(maxY, math.Max(edge.Y1, edge.Y2))
	}
	if len(r.Nodes) == 0 && len(r.Edges) == 0 {
		r.Width, r.Height = hints.Width, hints.Height
		return
	}

	contentW := maxX - minX + 2*hints.Padding
	contentH := maxY - minY + 2*hints.Padding
	r.Width = math.Ceil(max(hints.Width, contentW))
	r.Height = math.Ceil(max(hints.Height, contentH))

	dx := hints.Padding - minX + (r.Width-contentW)/2
	dy := hints.Padding - minY + (r.Height-contentH)/2
	for i := range r.Nodes {
		r.Nodes[i].X += dx
		r.Nodes[i].Y += dy
	}
	for i := range r.Edges {
		r.Edges[i].X1 += dx
		r.Edges[i].Y1 += dy
		r.Edges[i].X2 += dx
		r.Edges[i].Y2 += dy
	}
}
