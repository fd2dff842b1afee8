package obstacle

import "github.com/katalvlaran/orca2d/vec2"

// QueryNeighbors walks the BSP tree rooted at the last Build and invokes
// insert for every edge (identified by its first vertex id) that has pos
// strictly to its right and whose supporting line lies within rangeSq of
// pos. Edges with pos on or to the left of their line are not reported,
// and the range test uses the distance to the infinite line, not to the
// segment. Unlike the agent k-D tree's neighbor query, rangeSq is
// never shrunk here — every edge within the original range is wanted,
// since an obstacle edge list is not bounded the way an agent neighbor
// list is, and this asymmetry with the agent k-D tree's query is
// deliberate, not something to "optimize" away.
func (s *Store) QueryNeighbors(pos vec2.Vec2, rangeSq float64, insert func(edgeVertexID int)) {
	s.queryNeighbors(s.root, pos, rangeSq, insert)
}

func (s *Store) queryNeighbors(nodeIdx int, pos vec2.Vec2, rangeSq float64, insert func(int)) {
	if nodeIdx < 0 {
		return
	}
	n := s.nodes[nodeIdx]
	e := s.vertices[n.edge]
	eNext := s.vertices[e.Next]

	sVal := vec2.LeftOf(e.Point, eNext.Point, pos)
	if sVal >= 0 {
		s.queryNeighbors(n.left, pos, rangeSq, insert)
	} else {
		s.queryNeighbors(n.right, pos, rangeSq, insert)
	}

	lenSq := vec2.AbsSq(vec2.Sub(eNext.Point, e.Point))
	if lenSq == 0 {
		return
	}
	if (sVal*sVal)/lenSq < rangeSq {
		if sVal < 0 {
			insert(n.edge)
		}
		if sVal >= 0 {
			s.queryNeighbors(n.right, pos, rangeSq, insert)
		} else {
			s.queryNeighbors(n.left, pos, rangeSq, insert)
		}
	}
}

// QueryVisibility reports whether the segment q1-q2 is unobstructed by any
// obstacle edge, keeping a clearance of radius from every edge. It is only
// meaningful after Build has run; before that the tree is empty and every
// query trivially reports visible.
func (s *Store) QueryVisibility(q1, q2 vec2.Vec2, radius float64) bool {
	return s.queryVisibility(s.root, q1, q2, radius)
}

func (s *Store) queryVisibility(nodeIdx int, q1, q2 vec2.Vec2, radius float64) bool {
	if nodeIdx < 0 {
		return true
	}
	n := s.nodes[nodeIdx]
	e := s.vertices[n.edge]
	eNext := s.vertices[e.Next]

	left1 := vec2.LeftOf(e.Point, eNext.Point, q1)
	left2 := vec2.LeftOf(e.Point, eNext.Point, q2)

	switch {
	case left1 >= 0 && left2 >= 0:
		return s.queryVisibility(n.left, q1, q2, radius) &&
			(s.clears(e, eNext, q1, q2, radius) || s.queryVisibility(n.right, q1, q2, radius))
	case left1 <= 0 && left2 <= 0:
		return s.queryVisibility(n.right, q1, q2, radius) &&
			(s.clears(e, eNext, q1, q2, radius) || s.queryVisibility(n.left, q1, q2, radius))
	case left1 >= 0 && left2 <= 0:
		// q1 left, q2 right: segment straddles the splitter's line; it must
		// be visible with respect to both halves independently.
		return s.queryVisibility(n.left, q1, q2, radius) && s.queryVisibility(n.right, q1, q2, radius)
	default:
		// q1 right, q2 left: the splitter itself might lie between q1-q2
		// and the obstacle. Require both its endpoints to sit on the same
		// side of q1-q2 and at least radius away from it before trusting
		// both subtrees.
		invLenSq := 1 / vec2.AbsSq(vec2.Sub(q2, q1))
		p1 := vec2.LeftOf(q1, q2, e.Point)
		p2 := vec2.LeftOf(q1, q2, eNext.Point)
		if p1*p2 >= 0 && vec2.Sqr(p1)*invLenSq > vec2.Sqr(radius) && vec2.Sqr(p2)*invLenSq > vec2.Sqr(radius) {
			return s.queryVisibility(n.left, q1, q2, radius) && s.queryVisibility(n.right, q1, q2, radius)
		}

		return false
	}
}

// clears reports whether both endpoints of edge e->eNext are at least
// radius away from the segment q1-q2.
func (s *Store) clears(e, eNext Vertex, q1, q2 vec2.Vec2, radius float64) bool {
	r2 := vec2.Sqr(radius)
	return vec2.DistSqPointLineSegment(q1, q2, e.Point) >= r2 &&
		vec2.DistSqPointLineSegment(q1, q2, eNext.Point) >= r2
}
