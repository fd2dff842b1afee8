// Package obstacle owns the static, polygonal part of an orca2d scene: the
// doubly-linked chain of obstacle vertices that makes up each polygon (or
// degenerate two-vertex "line" obstacle), the binary space partition built
// once over all of their edges, and the two queries the agent solver needs
// against that partition — bounded-range neighbor collection and
// line-of-sight visibility.
//
// # Vertex arena
//
// Vertices live in a single growable arena (Store.vertices); Next/Prev are
// indices into that arena rather than pointers, so the doubly-linked chain
// survives arena growth (e.g. re-slicing on append) without invalidating any
// previously handed-out id. Ids are stable for the life of the Store and
// equal to insertion index, matching the Agent id contract in package
// agent. Vertices are append-only: AddPolygon and the BSP build's straddle
// splits are the only ways new vertices are created, and nothing is ever
// removed.
//
// # BSP build
//
// Build walks the flat set of polygon edges and recursively partitions it:
// at each node it picks, as the splitting edge, the edge i minimizing the
// lexicographic pair (max(L, R), min(L, R)), where L and R count how many
// of the remaining edges fall strictly left and strictly right of edge i's
// line. Edges straddling the splitter are physically cut — a new vertex is
// spliced into the straddling edge's polygon chain at the intersection
// point — so that every edge below a node lies wholly on one side of that
// node's line. This invariant is what makes QueryVisibility correct: a
// segment can only be occluded by an edge whose half of the tree it
// actually passes through.
//
// Build is meant to run exactly once, after every call to Store.AddPolygon
// that will ever happen; the resulting tree is immutable. Calling it again
// recomputes the tree from the vertices present at that time (including any
// splits from a previous Build), which is wasteful but not unsafe — it is
// simply not part of the supported lifecycle (see Simulator.ProcessObstacles).
package obstacle
