package obstacle_test

import (
	"testing"

	"github.com/katalvlaran/orca2d/obstacle"
	"github.com/katalvlaran/orca2d/vec2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPolygonRequiresTwoVertices(t *testing.T) {
	s := obstacle.NewStore()
	id, ok := s.AddPolygon([]vec2.Vec2{{X: 0, Y: 0}})
	assert.False(t, ok)
	assert.Equal(t, -1, id)
	assert.Equal(t, 0, s.VertexCount())
}

func TestAddPolygonChainIsACycle(t *testing.T) {
	s := obstacle.NewStore()
	pts := []vec2.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	first, ok := s.AddPolygon(pts)
	require.True(t, ok)
	require.Equal(t, 0, first)

	n := len(pts)
	for i := 0; i < n; i++ {
		v := s.Vertex(first + i)
		assert.Equal(t, first+(i+1)%n, v.Next, "next of vertex %d", i)
		assert.Equal(t, first+(i-1+n)%n, v.Prev, "prev of vertex %d", i)
		assert.Equal(t, v.ID, s.Vertex(v.Next).Prev, "next.prev == self for %d", i)
	}
}

func TestTwoVertexObstacleIsUnconditionallyConvex(t *testing.T) {
	s := obstacle.NewStore()
	first, ok := s.AddPolygon([]vec2.Vec2{{X: 5, Y: -1}, {X: 5, Y: 1}})
	require.True(t, ok)
	assert.True(t, s.Vertex(first).Convex)
	assert.True(t, s.Vertex(first+1).Convex)
}

func TestConvexFlagOnSquare(t *testing.T) {
	s := obstacle.NewStore()
	// CCW square: every interior angle is convex.
	first, _ := s.AddPolygon([]vec2.Vec2{{X: -5, Y: -5}, {X: 5, Y: -5}, {X: 5, Y: 5}, {X: -5, Y: 5}})
	for i := 0; i < 4; i++ {
		assert.True(t, s.Vertex(first+i).Convex)
	}
}

func TestBuildPreservesChainAfterSplits(t *testing.T) {
	s := obstacle.NewStore()
	// Two crossing-ish segments force a straddle split when partitioned.
	s.AddPolygon([]vec2.Vec2{{X: -5, Y: -5}, {X: -5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: -5}})
	s.AddPolygon([]vec2.Vec2{{X: -10, Y: 0}, {X: 10, Y: 0}})
	s.Build()

	for id := 0; id < s.VertexCount(); id++ {
		v := s.Vertex(id)
		assert.Equal(t, id, s.Vertex(v.Next).Prev, "next.prev == self for vertex %d", id)
		assert.Equal(t, id, s.Vertex(v.Prev).Next, "prev.next == self for vertex %d", id)
	}
}

// BSP visibility correctness around a closed square obstacle.
func TestQueryVisibilityAroundSquare(t *testing.T) {
	s := obstacle.NewStore()
	s.AddPolygon([]vec2.Vec2{{X: -5, Y: -5}, {X: -5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: -5}})
	s.Build()

	assert.False(t, s.QueryVisibility(vec2.New(-10, 0), vec2.New(10, 0), 0))
	assert.True(t, s.QueryVisibility(vec2.New(-10, 10), vec2.New(10, 10), 0))
}

func TestQueryNeighborsFindsNearbyEdge(t *testing.T) {
	s := obstacle.NewStore()
	s.AddPolygon([]vec2.Vec2{{X: 5, Y: -1}, {X: 5, Y: 1}})
	s.Build()

	var found []int
	s.QueryNeighbors(vec2.New(0, 0), 100, func(id int) { found = append(found, id) })
	assert.NotEmpty(t, found)

	found = nil
	s.QueryNeighbors(vec2.New(0, 0), 1, func(id int) { found = append(found, id) })
	assert.Empty(t, found)
}
