package kdtree

import "github.com/katalvlaran/orca2d/vec2"

// MaxLeafSize is the largest number of agents a leaf node may hold before
// the build recurses into children.
const MaxLeafSize = 10

// treeNode is one node of the flat tree array. Left/Right are -1 for a leaf.
type treeNode struct {
	begin, end     int
	minX, maxX     float64
	minY, maxY     float64
	left, right    int
}

// PositionFunc resolves an agent id to its current position. The tree
// never stores positions itself; it only ever calls this function, so the
// caller's agent slice is the single source of truth.
type PositionFunc func(id int) vec2.Vec2

// Tree is a k-D tree (k=2) over a set of agent ids, split on the longer
// bounding-box axis at the midpoint of its value range.
type Tree struct {
	order []int
	nodes []treeNode
	pos   PositionFunc
}

// New returns an empty tree. Call Build before querying.
func New() *Tree { return &Tree{} }

// Build constructs the tree over the given ids using pos to resolve each
// id's current position. ids is copied; the tree does not retain the
// caller's backing array but does retain pos for the lifetime of queries
// against this build.
func (t *Tree) Build(ids []int, pos PositionFunc) {
	t.pos = pos
	t.order = append(t.order[:0], ids...)
	if len(t.order) == 0 {
		t.nodes = t.nodes[:0]
		return
	}
	t.nodes = make([]treeNode, 2*len(t.order))
	t.build(0, 0, len(t.order))
}

func (t *Tree) build(nodeIdx, begin, end int) {
	minX, maxX := t.pos(t.order[begin]).X, t.pos(t.order[begin]).X
	minY, maxY := t.pos(t.order[begin]).Y, t.pos(t.order[begin]).Y
	for i := begin + 1; i < end; i++ {
		p := t.pos(t.order[i])
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	t.nodes[nodeIdx] = treeNode{begin: begin, end: end, minX: minX, maxX: maxX, minY: minY, maxY: maxY, left: -1, right: -1}

	if end-begin <= MaxLeafSize {
		return
	}

	splitOnX := (maxX - minX) > (maxY - minY)
	var splitValue float64
	if splitOnX {
		splitValue = (minX + maxX) / 2
	} else {
		splitValue = (minY + maxY) / 2
	}

	axis := func(p vec2.Vec2) float64 {
		if splitOnX {
			return p.X
		}
		return p.Y
	}

	lo, hi := begin, end-1
	for lo <= hi {
		for lo <= hi && axis(t.pos(t.order[lo])) < splitValue {
			lo++
		}
		for lo <= hi && axis(t.pos(t.order[hi])) >= splitValue {
			hi--
		}
		if lo < hi {
			t.order[lo], t.order[hi] = t.order[hi], t.order[lo]
			lo++
			hi--
		}
	}

	leftSize := lo - begin
	if leftSize == 0 {
		leftSize = 1
	}

	leftIdx := nodeIdx + 1
	rightIdx := nodeIdx + 2*leftSize
	t.nodes[nodeIdx].left = leftIdx
	t.nodes[nodeIdx].right = rightIdx
	t.build(leftIdx, begin, begin+leftSize)
	t.build(rightIdx, begin+leftSize, end)
}

// QueryNeighbors visits every agent within *rangeSq of pos, closest
// bounding box first, calling consider for each. rangeSq is read fresh
// before each descent decision, so consider is free to shrink it in place
// (e.g. once a bounded neighbor list fills up) and the remaining search
// will respect the tighter bound; the search never visits a subtree whose
// bounding-box distance is not strictly less than the current *rangeSq.
func (t *Tree) QueryNeighbors(pos vec2.Vec2, rangeSq *float64, consider func(id int)) {
	if len(t.nodes) == 0 {
		return
	}
	t.queryNeighbors(0, pos, rangeSq, consider)
}

func (t *Tree) queryNeighbors(nodeIdx int, pos vec2.Vec2, rangeSq *float64, consider func(int)) {
	n := t.nodes[nodeIdx]
	if n.left < 0 {
		for i := n.begin; i < n.end; i++ {
			consider(t.order[i])
		}
		return
	}

	left := t.nodes[n.left]
	right := t.nodes[n.right]
	distLeft := bboxDistSq(pos, left)
	distRight := bboxDistSq(pos, right)

	if distLeft < distRight {
		if distLeft < *rangeSq {
			t.queryNeighbors(n.left, pos, rangeSq, consider)
		}
		if distRight < *rangeSq {
			t.queryNeighbors(n.right, pos, rangeSq, consider)
		}
	} else {
		if distRight < *rangeSq {
			t.queryNeighbors(n.right, pos, rangeSq, consider)
		}
		if distLeft < *rangeSq {
			t.queryNeighbors(n.left, pos, rangeSq, consider)
		}
	}
}

func bboxDistSq(p vec2.Vec2, n treeNode) float64 {
	dx := axisGapSq(p.X, n.minX, n.maxX)
	dy := axisGapSq(p.Y, n.minY, n.maxY)
	return dx + dy
}

func axisGapSq(v, lo, hi float64) float64 {
	d := 0.0
	if lo-v > d {
		d = lo - v
	}
	if v-hi > d {
		d = v - hi
	}
	return d * d
}
