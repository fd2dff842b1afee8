package simulator_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/orca2d/simulator"
	"github.com/katalvlaran/orca2d/vec2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultSim() *simulator.Simulator {
	s := simulator.New()
	s.SetAgentDefaults(15, 10, 10, 10, 2, 2, vec2.Vec2{})
	return s
}

// P1: agent ids are stable and equal to insertion order.
func TestAgentIDStability(t *testing.T) {
	s := newDefaultSim()
	for i := 0; i < 5; i++ {
		id := s.AddAgent(vec2.New(float64(i), 0))
		assert.Equal(t, i, id)
	}
	assert.Equal(t, 5, s.AgentCount())
}

// addAgent without defaults fails with the sentinel.
func TestAddAgentWithoutDefaultsFails(t *testing.T) {
	s := simulator.New()
	assert.Equal(t, simulator.NoAgent, s.AddAgent(vec2.New(0, 0)))
}

func TestAddObstacleRequiresTwoVertices(t *testing.T) {
	s := newDefaultSim()
	assert.Equal(t, simulator.NoAgent, s.AddObstacle([]vec2.Vec2{{X: 0, Y: 0}}))
}

// P2: polygon chain integrity, including after ProcessObstacles' splits.
func TestPolygonChainIntegrityAfterProcessObstacles(t *testing.T) {
	s := newDefaultSim()
	s.AddObstacle([]vec2.Vec2{{X: -5, Y: -5}, {X: -5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: -5}})
	s.AddObstacle([]vec2.Vec2{{X: -10, Y: 0}, {X: 10, Y: 0}})
	s.ProcessObstacles()

	for id := 0; id < s.VertexCount(); id++ {
		next := s.NextVertex(id)
		prev := s.PrevVertex(id)
		assert.Equal(t, id, s.PrevVertex(next), "next.prev == self for %d", id)
		assert.Equal(t, id, s.NextVertex(prev), "prev.next == self for %d", id)
	}
}

// Scenario 2: single agent, no obstacles, exact displacement.
func TestSingleAgentExactDisplacement(t *testing.T) {
	s := simulator.New(simulator.WithTimeStep(1))
	s.SetAgentDefaults(15, 10, 10, 10, 1, 1, vec2.Vec2{})
	id := s.AddAgent(vec2.New(0, 0))

	const n = 10
	for i := 0; i < n; i++ {
		s.SetAgentPrefVelocity(id, vec2.New(1, 0))
		s.Step()
	}

	pos := s.AgentPosition(id)
	assert.InDelta(t, n, pos.X, 1e-9)
	assert.InDelta(t, 0, pos.Y, 1e-9)
}

// Scenario 1: head-on pass between two reciprocating agents.
func TestHeadOnPass(t *testing.T) {
	s := simulator.New(simulator.WithTimeStep(0.25))
	s.SetAgentDefaults(15, 10, 10, 10, 2, 2, vec2.Vec2{})
	a0 := s.AddAgent(vec2.New(-5, 0))
	a1 := s.AddAgent(vec2.New(5, 0))

	for i := 0; i < 20; i++ {
		s.SetAgentPrefVelocity(a0, vec2.New(2, 0))
		s.SetAgentPrefVelocity(a1, vec2.New(-2, 0))
		s.Step()

		d := vec2.Abs(vec2.Sub(s.AgentPosition(a0), s.AgentPosition(a1)))
		assert.GreaterOrEqual(t, d, 4-1e-4, "tick %d: agents must keep combined radius clearance", i)

		// P4: speed bound.
		assert.LessOrEqual(t, vec2.Abs(s.AgentVelocity(a0)), 2+vec2.Epsilon)
		assert.LessOrEqual(t, vec2.Abs(s.AgentVelocity(a1)), 2+vec2.Epsilon)
	}

	assert.Greater(t, s.AgentPosition(a0).X, 0.0)
	assert.Less(t, s.AgentPosition(a1).X, 0.0)
}

// Scenario 3: wall avoidance against a degenerate 2-vertex obstacle.
func TestWallAvoidance(t *testing.T) {
	s := simulator.New(simulator.WithTimeStep(0.1))
	s.SetAgentDefaults(15, 10, 10, 5, 1, 10, vec2.Vec2{})
	id := s.AddAgent(vec2.New(0, 0))
	s.AddObstacle([]vec2.Vec2{{X: 5, Y: -1}, {X: 5, Y: 1}})
	s.ProcessObstacles()

	for i := 0; i < 30; i++ {
		s.SetAgentPrefVelocity(id, vec2.New(10, 0))
		s.Step()

		assert.LessOrEqual(t, s.AgentPosition(id).X, 5-1+1e-3)
		assert.LessOrEqual(t, vec2.Abs(s.AgentVelocity(id)), 10+vec2.Epsilon)
	}
}

// Scenario 4: BSP correctness on a square, driven through Simulator.
func TestQueryVisibilityThroughSimulator(t *testing.T) {
	s := newDefaultSim()
	s.AddObstacle([]vec2.Vec2{{X: -5, Y: -5}, {X: -5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: -5}})
	s.ProcessObstacles()

	assert.False(t, s.QueryVisibility(vec2.New(-10, 0), vec2.New(10, 0), 0))
	assert.True(t, s.QueryVisibility(vec2.New(-10, 10), vec2.New(10, 10), 0))
}

// Scenario 6: an agent boxed in by three neighbors must still get a
// finite, speed-bounded velocity; lp3 never panics.
func TestDegenerateFeasibilityNeverPanics(t *testing.T) {
	s := newDefaultSim()
	center := s.AddAgent(vec2.New(0, 0))
	for i, angle := range []float64{0, 120, 240} {
		rad := angle * math.Pi / 180
		p := vec2.New(1.5*math.Cos(rad), 1.5*math.Sin(rad))
		id := s.AddAgent(p)
		require.Equal(t, i+1, id)
		s.SetAgentVelocity(id, vec2.Vec2{})
	}

	assert.NotPanics(t, func() {
		for tick := 0; tick < 5; tick++ {
			s.SetAgentPrefVelocity(center, vec2.New(3, 3))
			for id := 1; id <= 3; id++ {
				s.SetAgentPrefVelocity(id, vec2.Vec2{})
			}
			s.Step()
		}
	})

	assert.LessOrEqual(t, vec2.Abs(s.AgentVelocity(center)), 2+vec2.Epsilon)
}

// P6: zero preferred velocity everywhere leaves positions unchanged and,
// after two ticks, velocities at zero.
func TestIdempotentZeroPrefCommit(t *testing.T) {
	s := newDefaultSim()
	id := s.AddAgent(vec2.New(0, 0))
	s.Step()
	s.Step()

	assert.InDelta(t, 0, s.AgentPosition(id).X, 1e-9)
	assert.InDelta(t, 0, s.AgentPosition(id).Y, 1e-9)
	assert.InDelta(t, 0, vec2.Abs(s.AgentVelocity(id)), 1e-9)
}

// P7: determinism, sequential vs. worker-pool stepping over the same scene.
func TestStepDeterministicAcrossWorkerPool(t *testing.T) {
	build := func(opts ...simulator.Option) *simulator.Simulator {
		s := simulator.New(opts...)
		s.SetAgentDefaults(15, 10, 10, 10, 1, 2, vec2.Vec2{})
		for i := 0; i < 8; i++ {
			id := s.AddAgent(vec2.New(float64(i)*2-8, 0))
			s.SetAgentPrefVelocity(id, vec2.New(-float64(i)*2+8, 1))
		}
		return s
	}

	seq := build()
	par := build(simulator.WithWorkerPool(4))

	for tick := 0; tick < 10; tick++ {
		for id := 0; id < 8; id++ {
			seq.SetAgentPrefVelocity(id, vec2.New(float64(id), 0))
			par.SetAgentPrefVelocity(id, vec2.New(float64(id), 0))
		}
		seq.Step()
		par.Step()
	}

	for id := 0; id < 8; id++ {
		assert.InDelta(t, seq.AgentPosition(id).X, par.AgentPosition(id).X, 1e-12)
		assert.InDelta(t, seq.AgentPosition(id).Y, par.AgentPosition(id).Y, 1e-12)
	}
}
