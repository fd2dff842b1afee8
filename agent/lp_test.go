package agent

import (
	"math"
	"testing"

	"github.com/katalvlaran/orca2d/vec2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLP1ClipsAgainstDisc(t *testing.T) {
	// A single line through the origin with direction (0,1): the 1-D
	// problem along it is bounded only by the radius-2 disc.
	lines := []Line{{Point: vec2.New(0, 0), Direction: vec2.New(0, 1)}}
	result, ok := lp1(lines, 0, 2, vec2.New(0, 0), false)
	require.True(t, ok)
	assert.InDelta(t, 0, result.X, 1e-9)
	assert.InDelta(t, 0, result.Y, 1e-9)
}

func TestLP1InfeasibleWhenDiscMissesLine(t *testing.T) {
	// Line far outside a small disc: discriminant negative.
	lines := []Line{{Point: vec2.New(10, 0), Direction: vec2.New(0, 1)}}
	_, ok := lp1(lines, 0, 1, vec2.New(0, 0), false)
	assert.False(t, ok)
}

func TestLP1RejectsParallelLineWithNegativeNumerator(t *testing.T) {
	lines := []Line{
		{Point: vec2.New(0, 1), Direction: vec2.New(1, 0)},
		{Point: vec2.New(0, -1), Direction: vec2.New(1, 0)},
	}
	// Line 1 is parallel to line 0 but on the wrong side: infeasible.
	_, ok := lp1(lines, 1, 5, vec2.New(0, 0), false)
	assert.False(t, ok)
}

func TestLP2NoConstraintsReturnsClampedPref(t *testing.T) {
	result, failed := lp2(nil, 2, vec2.New(10, 0), false)
	assert.Equal(t, 0, failed)
	assert.InDelta(t, 2, result.X, 1e-9)
	assert.InDelta(t, 0, result.Y, 1e-9)
}

func TestLP2SatisfiesHalfPlane(t *testing.T) {
	// A line whose admissible side excludes the unclamped preference (5,0);
	// the result must end up inside that half-plane.
	line := Line{Point: vec2.New(1, 0), Direction: vec2.New(0, 1)} // admissible: v.x <= 1
	result, failed := lp2([]Line{line}, 10, vec2.New(5, 0), false)
	assert.Equal(t, 1, failed)
	assert.LessOrEqual(t, vec2.Det(line.Direction, vec2.Sub(line.Point, result)), vec2.Epsilon)
}

func TestLP3NeverPanicsOnConflictingConstraints(t *testing.T) {
	// Three half-planes whose mutual intersection is empty: boxed by
	// three directions 120 degrees apart, each excluding the origin by
	// more than the speed disc allows.
	mk := func(angleDeg float64) Line {
		rad := angleDeg * math.Pi / 180
		dir := vec2.New(math.Sin(rad), -math.Cos(rad))
		point := vec2.Scale(vec2.New(math.Cos(rad), math.Sin(rad)), 0.9)
		return Line{Point: point, Direction: dir}
	}
	lines := []Line{mk(0), mk(120), mk(240)}

	result, failed := lp2(lines, 1, vec2.New(0, 0), false)
	require.Less(t, failed, len(lines), "expected lp2 to fail on a conflicting set")
	final := lp3(lines, 0, failed, 1, result)
	assert.LessOrEqual(t, vec2.Abs(final), 1+1e-6)
}
