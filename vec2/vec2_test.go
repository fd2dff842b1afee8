package vec2_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/orca2d/vec2"
	"github.com/stretchr/testify/assert"
)

func TestAddSub(t *testing.T) {
	a := vec2.New(1, 2)
	b := vec2.New(3, -1)
	assert.Equal(t, vec2.New(4, 1), vec2.Add(a, b))
	assert.Equal(t, vec2.New(-2, 3), vec2.Sub(a, b))
}

func TestDotDet(t *testing.T) {
	a := vec2.New(1, 0)
	b := vec2.New(0, 1)
	assert.Equal(t, 0.0, vec2.Dot(a, b))
	assert.Equal(t, 1.0, vec2.Det(a, b))
	assert.Equal(t, -1.0, vec2.Det(b, a))
}

func TestAbsAndNormalize(t *testing.T) {
	v := vec2.New(3, 4)
	assert.Equal(t, 25.0, vec2.AbsSq(v))
	assert.Equal(t, 5.0, vec2.Abs(v))

	n := vec2.Normalize(v)
	assert.InDelta(t, 1.0, vec2.Abs(n), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
}

func TestLeftOf(t *testing.T) {
	a := vec2.New(0, 0)
	b := vec2.New(1, 0)
	left := vec2.New(0, 1)
	right := vec2.New(0, -1)
	on := vec2.New(0.5, 0)

	assert.Greater(t, vec2.LeftOf(a, b, left), 0.0)
	assert.Less(t, vec2.LeftOf(a, b, right), 0.0)
	assert.InDelta(t, 0.0, vec2.LeftOf(a, b, on), 1e-12)
}

func TestDistSqPointLineSegment(t *testing.T) {
	p := vec2.New(0, 0)
	q := vec2.New(10, 0)

	// Projects inside the segment.
	assert.InDelta(t, 4.0, vec2.DistSqPointLineSegment(p, q, vec2.New(5, 2)), 1e-9)
	// Clamped to p.
	assert.InDelta(t, vec2.AbsSq(vec2.New(-1, 1)), vec2.DistSqPointLineSegment(p, q, vec2.New(-1, 1)), 1e-9)
	// Clamped to q.
	assert.InDelta(t, vec2.AbsSq(vec2.New(1, 1)), vec2.DistSqPointLineSegment(p, q, vec2.New(11, 1)), 1e-9)
	// Degenerate segment.
	assert.InDelta(t, 2.0, vec2.DistSqPointLineSegment(p, p, vec2.New(1, 1)), 1e-9)
}

func TestEpsilonIsSmall(t *testing.T) {
	assert.Less(t, vec2.Epsilon, 1e-3)
	assert.Greater(t, vec2.Epsilon, 0.0)
	assert.False(t, math.IsNaN(vec2.Epsilon))
}
