package kdtree_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/orca2d/kdtree"
	"github.com/katalvlaran/orca2d/vec2"
	"github.com/stretchr/testify/assert"
)

func gridPositions(n int) (ids []int, pos kdtree.PositionFunc) {
	pts := make([]vec2.Vec2, n)
	for i := 0; i < n; i++ {
		pts[i] = vec2.New(float64(i), 0)
		ids = append(ids, i)
	}
	return ids, func(id int) vec2.Vec2 { return pts[id] }
}

func TestQueryNeighborsFindsAllWithinRange(t *testing.T) {
	ids, pos := gridPositions(25)
	tree := kdtree.New()
	tree.Build(ids, pos)

	rangeSq := 100.0 // range 10: should find ids within [query-10, query+10]
	var found []int
	tree.QueryNeighbors(vec2.New(12, 0), &rangeSq, func(id int) {
		if math.Abs(float64(id)-12) <= 10 {
			found = append(found, id)
		}
	})
	assert.Len(t, found, 21) // ids 2..22
}

func TestQueryNeighborsRespectsShrinkingRange(t *testing.T) {
	ids, pos := gridPositions(50)
	tree := kdtree.New()
	tree.Build(ids, pos)

	// Bounded neighbor list of size 3: after 3 candidates, shrink rangeSq
	// to the farthest retained key and make sure later candidates outside
	// that bound never get considered inconsistently.
	const k = 3
	type cand struct {
		id      int
		distSq  float64
	}
	var list []cand
	rangeSq := math.MaxFloat64
	query := vec2.New(25, 0)

	tree.QueryNeighbors(query, &rangeSq, func(id int) {
		d := vec2.AbsSq(vec2.Sub(pos(id), query))
		if d >= rangeSq {
			return
		}
		list = append(list, cand{id, d})
		// insertion sort
		for i := len(list) - 1; i > 0 && list[i-1].distSq > list[i].distSq; i-- {
			list[i-1], list[i] = list[i], list[i-1]
		}
		if len(list) > k {
			list = list[:k]
		}
		if len(list) == k {
			rangeSq = list[k-1].distSq
		}
	})

	assert.Len(t, list, k)
	// The three closest ids to 25 on a unit grid are 25, 24/26 (tie).
	assert.Equal(t, 25, list[0].id)
	for i := 1; i < len(list); i++ {
		assert.GreaterOrEqual(t, list[i].distSq, list[i-1].distSq)
	}
}

func TestQueryNeighborsEmptyTree(t *testing.T) {
	tree := kdtree.New()
	tree.Build(nil, func(id int) vec2.Vec2 { return vec2.Vec2{} })
	rangeSq := 100.0
	called := false
	tree.QueryNeighbors(vec2.New(0, 0), &rangeSq, func(id int) { called = true })
	assert.False(t, called)
}
