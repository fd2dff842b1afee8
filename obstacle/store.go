package obstacle

import "github.com/katalvlaran/orca2d/vec2"

// Store owns the vertex arena and the BSP tree built over it.
type Store struct {
	vertices []Vertex
	nodes    []node
	root     int // index into nodes, -1 if the tree is empty or not yet built
}

// NewStore returns an empty obstacle store.
func NewStore() *Store {
	return &Store{root: -1}
}

// AddPolygon appends the given vertices as a new polygon chain and returns
// the id of the first inserted vertex. It requires at least two points; for
// fewer it returns ok=false and does not mutate the store, mirroring
// addObstacle's sentinel-failure contract at the Simulator layer.
//
// Direction is set to the normalized edge to the next vertex (wrapping for
// the last vertex back to the first); Convex is set per vertex by
// leftOf(prev, cur, next) >= 0, and is unconditionally true when only two
// points are supplied (a degenerate "line" obstacle has no reflex vertex).
func (s *Store) AddPolygon(points []vec2.Vec2) (firstID int, ok bool) {
	if len(points) < 2 {
		return -1, false
	}

	n := len(points)
	base := len(s.vertices)
	for i := 0; i < n; i++ {
		s.vertices = append(s.vertices, Vertex{
			ID:    base + i,
			Point: points[i],
			Next:  base + (i+1)%n,
			Prev:  base + (i-1+n)%n,
		})
	}

	for i := 0; i < n; i++ {
		v := &s.vertices[base+i]
		next := s.vertices[v.Next].Point
		v.Direction = vec2.Normalize(vec2.Sub(next, v.Point))
		if n == 2 {
			v.Convex = true
			continue
		}
		prev := s.vertices[v.Prev].Point
		v.Convex = vec2.LeftOf(prev, v.Point, next) >= 0
	}

	return base, true
}

// VertexCount returns the number of vertices currently in the store,
// including any split vertices introduced by Build.
func (s *Store) VertexCount() int { return len(s.vertices) }

// Vertex returns a copy of the vertex with the given id. Panics if id is
// out of range, matching the arena's append-only, never-shrinking contract.
func (s *Store) Vertex(id int) Vertex { return s.vertices[id] }

// NextVertexNo returns the id of the vertex following id in its polygon chain.
func (s *Store) NextVertexNo(id int) int { return s.vertices[id].Next }

// PrevVertexNo returns the id of the vertex preceding id in its polygon chain.
func (s *Store) PrevVertexNo(id int) int { return s.vertices[id].Prev }

// SetVertexPoint updates the position of vertex id and refreshes the
// Direction of it and of its Prev neighbor. Convexity is not recomputed
// (mirrors the source: vertex position mutators are cheap accessors, not a
// re-validation pass over the polygon).
func (s *Store) SetVertexPoint(id int, p vec2.Vec2) {
	s.vertices[id].Point = p
	v := &s.vertices[id]
	next := s.vertices[v.Next].Point
	v.Direction = vec2.Normalize(vec2.Sub(next, p))
	prev := &s.vertices[v.Prev]
	prev.Direction = vec2.Normalize(vec2.Sub(p, prev.Point))
}
