// Package obstacle: vertex arena and BSP node types.
package obstacle

import "github.com/katalvlaran/orca2d/vec2"

// Vertex is one node of a doubly-linked obstacle polygon chain.
//
// Direction is the unit vector from this vertex's Point to its Next
// vertex's Point. Convex is true iff the polygon is non-reflex at this
// vertex (leftOf(prev, cur, next) >= 0), and is unconditionally true for
// both vertices of a 2-vertex degenerate "line" obstacle and for every
// vertex introduced by a BSP straddle split.
type Vertex struct {
	ID        int
	Point     vec2.Vec2
	Direction vec2.Vec2
	Convex    bool
	Next      int
	Prev      int
}

// node is one BSP tree node: a splitting edge (identified by the id of its
// first vertex; the edge runs to that vertex's Next) plus left/right
// subtrees. A child index of -1 denotes an empty subtree.
type node struct {
	edge  int
	left  int
	right int
}
