package layout

import "math"

// relaxGap is the minimum clearance between node boundaries in pixels.
// Ring radii are sized against the same clearance, so layouts that fit
// never enter the solver.
const relaxGap = 16.0

// RelaxParams tunes the overlap relaxation pass.
type RelaxParams struct {
	// Iterations bounds the solver; it never runs to convergence.
	Iterations int

	// Repulse scales the separating force between colliding nodes.
	Repulse float64

	// Spring scales the restoring force toward each node's ideal
	// position.
	Spring float64

	// Step is the fraction of the accumulated forces applied each
	// iteration.
	Step float64
}

// DefaultRelax is the tuning used by New unless WithRelax overrides it.
var DefaultRelax = RelaxParams{
	Iterations: 50,
	Repulse:    0.035,
	Spring:     0.025,
	Step:       0.18,
}

// relaxNodes nudges overlapping nodes apart while pulling each toward its
// ideal position. It is a fixed-iteration heuristic: rare residual overlap
// is tolerated in exchange for determinism and bounded cost. Layouts with
// no overlap keep their exact ideal positions. The pinned index marks a
// node that never moves, usually the central topic.
func relaxNodes(nodes []Node, pinned int, p RelaxParams) {
	if len(nodes) < 2 || !hasOverlap(nodes, relaxGap) {
		return
	}

	targetX := make([]float64, len(nodes))
	targetY := make([]float64, len(nodes))
	for i, n := range nodes {
		targetX[i], targetY[i] = n.X, n.Y
	}

	fx := make([]float64, len(nodes))
	fy := make([]float64, len(nodes))
	for range p.Iterations {
		for i := range fx {
			fx[i], fy[i] = 0, 0
		}
		for i := 0; i < len(nodes); i++ {
			for j := i + 1; j < len(nodes); j++ {
				dx := nodes[j].X - nodes[i].X
				dy := nodes[j].Y - nodes[i].Y
				dist := math.Hypot(dx, dy)
				minDist := nodes[i].Radius() + nodes[j].Radius() + relaxGap
				if dist >= minDist {
					continue
				}
				var ux, uy float64
				if dist > 0 {
					ux, uy = dx/dist, dy/dist
				} else {
					// Coincident centers: separate along a stable axis.
					angle := float64(i*31+j) * 0.7
					ux, uy = math.Cos(angle), math.Sin(angle)
				}
				// Repulsion grows with penetration depth, scaled by the
				// pair's contact distance: grazing contacts barely move
				// while deep overlaps clear within the iteration budget.
				f := p.Repulse * minDist * (minDist - dist)
				fx[i] -= ux * f
				fy[i] -= uy * f
				fx[j] += ux * f
				fy[j] += uy * f
			}
		}
		for i := range nodes {
			if i == pinned {
				continue
			}
			fx[i] += (targetX[i] - nodes[i].X) * p.Spring
			fy[i] += (targetY[i] - nodes[i].Y) * p.Spring
			nodes[i].X += fx[i] * p.Step
			nodes[i].Y += fy[i] * p.Step
		}
	}
}

func hasOverlap(nodes []Node, gap float64) bool {
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			minDist := nodes[i].Radius() + nodes[j].Radius() + gap
			if math.Hypot(nodes[j].X-nodes[i].X, nodes[j].Y-nodes[i].Y) < minDist {
				return true
			}
		}
	}
	return false
}
