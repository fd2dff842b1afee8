package obstacle

import "github.com/katalvlaran/orca2d/vec2"

// side classifies an edge against a candidate splitting line.
type side int

const (
	sideLeft side = iota
	sideRight
	sideStraddle
)

// classify returns how edge j (identified by its first vertex id) falls
// against the line through splitter i's two endpoints.
func (s *Store) classify(splitP, splitDir vec2.Vec2, j int) side {
	jv := s.vertices[j]
	jNext := s.vertices[jv.Next]
	splitQ := vec2.Add(splitP, splitDir)
	a := vec2.LeftOf(splitP, splitQ, jv.Point)
	b := vec2.LeftOf(splitP, splitQ, jNext.Point)
	if a >= -vec2.Epsilon && b >= -vec2.Epsilon {
		return sideLeft
	}
	if a <= vec2.Epsilon && b <= vec2.Epsilon {
		return sideRight
	}

	return sideStraddle
}

// Build (re)constructs the BSP tree over every edge currently in the store
// (one edge per vertex, running to that vertex's Next). Straddling edges
// are physically split, appending new vertices to the arena. After Build
// returns, the tree is ready for QueryNeighbors and QueryVisibility.
func (s *Store) Build() {
	edges := make([]int, len(s.vertices))
	for i := range s.vertices {
		edges[i] = i
	}
	s.nodes = s.nodes[:0]
	s.root = s.buildNode(edges)
}

// buildNode recursively partitions edges and returns the index of the new
// node in s.nodes, or -1 if edges is empty.
func (s *Store) buildNode(edges []int) int {
	if len(edges) == 0 {
		return -1
	}

	splitterPos, bestMax, bestMin := -1, len(edges)+1, len(edges)+1
	for cand := 0; cand < len(edges); cand++ {
		i := edges[cand]
		iv := s.vertices[i]
		iNext := s.vertices[iv.Next]
		dir := vec2.Sub(iNext.Point, iv.Point)

		l, r := 0, 0
		beaten := false
		for _, j := range edges {
			if j == i {
				continue
			}
			switch s.classify(iv.Point, dir, j) {
			case sideLeft:
				l++
			case sideRight:
				r++
			default:
				l++
				r++
			}
			if maxInt(l, r) > bestMax {
				beaten = true
				break
			}
		}
		if beaten {
			continue
		}
		m := maxInt(l, r)
		n := minInt(l, r)
		if m < bestMax || (m == bestMax && n < bestMin) {
			bestMax, bestMin, splitterPos = m, n, cand
		}
	}

	splitter := edges[splitterPos]
	sv := s.vertices[splitter]
	sNext := s.vertices[sv.Next]
	splitDir := vec2.Sub(sNext.Point, sv.Point)

	var left, right []int
	for _, j := range edges {
		if j == splitter {
			continue
		}
		switch s.classify(sv.Point, splitDir, j) {
		case sideLeft:
			left = append(left, j)
		case sideRight:
			right = append(right, j)
		case sideStraddle:
			lj, rj := s.splitEdge(sv.Point, splitDir, j)
			left = append(left, lj)
			right = append(right, rj)
		}
	}

	leftIdx := s.buildNode(left)
	rightIdx := s.buildNode(right)
	s.nodes = append(s.nodes, node{edge: splitter, left: leftIdx, right: rightIdx})

	return len(s.nodes) - 1
}

// splitEdge cuts edge j (straddling the splitter line through splitP with
// direction splitDir) at its intersection with that line, splicing a fresh
// convex vertex into j's polygon chain. It returns the two half-edges
// (identified by their first vertex id) assigned to left and right
// respectively, by the sign of leftOf at j's original endpoints.
func (s *Store) splitEdge(splitP, splitDir vec2.Vec2, j int) (leftHalf, rightHalf int) {
	jv := s.vertices[j]
	jNextID := jv.Next
	jNext := s.vertices[jNextID]

	t := vec2.Det(splitDir, vec2.Sub(jv.Point, splitP)) / vec2.Det(splitDir, vec2.Sub(jv.Point, jNext.Point))
	newPoint := vec2.Add(jv.Point, vec2.Scale(vec2.Sub(jNext.Point, jv.Point), t))

	newID := len(s.vertices)
	s.vertices = append(s.vertices, Vertex{
		ID:        newID,
		Point:     newPoint,
		Direction: jv.Direction,
		Convex:    true,
		Prev:      j,
		Next:      jNextID,
	})
	s.vertices[j].Next = newID
	s.vertices[jNextID].Prev = newID

	splitQ := vec2.Add(splitP, splitDir)
	a := vec2.LeftOf(splitP, splitQ, jv.Point)
	b := vec2.LeftOf(splitP, splitQ, jNext.Point)

	firstHalf, secondHalf := j, newID
	if a >= 0 {
		leftHalf = firstHalf
	} else {
		rightHalf = firstHalf
	}
	if b >= 0 {
		leftHalf = secondHalf
	} else {
		rightHalf = secondHalf
	}

	return leftHalf, rightHalf
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
