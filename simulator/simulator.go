package simulator

import (
	"github.com/katalvlaran/orca2d/agent"
	"github.com/katalvlaran/orca2d/kdtree"
	"github.com/katalvlaran/orca2d/obstacle"
	"github.com/katalvlaran/orca2d/vec2"
)

// SetAgentDefaults installs the template new agents are created from by
// AddAgent. It must be called at least once after construction (or after
// Clear) before AddAgent will succeed.
func (s *Simulator) SetAgentDefaults(neighborDist float64, maxNeighbors int, timeHorizon, timeHorizonObst, radius, maxSpeed float64, velocity vec2.Vec2) {
	s.defaults = agent.Params{
		Radius:          radius,
		MaxSpeed:        maxSpeed,
		NeighborDist:    neighborDist,
		MaxNeighbors:    maxNeighbors,
		TimeHorizon:     timeHorizon,
		TimeHorizonObst: timeHorizonObst,
	}
	s.defaultVelocity = velocity
	s.hasDefaults = true
}

// SetTimeStep overrides the tick length used by Step.
func (s *Simulator) SetTimeStep(dt float64) { s.timeStep = dt }

// TimeStep returns the current tick length.
func (s *Simulator) TimeStep() float64 { return s.timeStep }

// GlobalTime returns the simulator's elapsed time, advanced by TimeStep on
// every call to Step.
func (s *Simulator) GlobalTime() float64 { return s.globalTime }

// Clear drops every agent, obstacle, and the default-agent template and
// resets GlobalTime to zero. The time step and worker-pool setting are
// kept.
func (s *Simulator) Clear() {
	s.agents = nil
	s.obstacles = obstacle.NewStore()
	s.tree = kdtree.New()
	s.globalTime = 0
	s.hasDefaults = false
}

// AgentCount returns the number of agents added so far.
func (s *Simulator) AgentCount() int { return len(s.agents) }

// AddAgent appends a new agent at pos configured from the default
// template, returning its id, or NoAgent if SetAgentDefaults has not been
// called since construction or the last Clear.
func (s *Simulator) AddAgent(pos vec2.Vec2) int {
	if !s.hasDefaults {
		return NoAgent
	}
	return s.AddAgentWithParams(pos, s.defaults, s.defaultVelocity)
}

// AddAgentWithParams appends a new agent at pos with explicit params and
// initial velocity, bypassing the default template entirely. Always
// succeeds and returns the new agent's id.
func (s *Simulator) AddAgentWithParams(pos vec2.Vec2, params agent.Params, velocity vec2.Vec2) int {
	id := len(s.agents)
	a := agent.New(id, pos, velocity, params)
	s.agents = append(s.agents, a)
	return id
}

// AddObstacle appends verts as a new polygon chain (or, for exactly two
// points, a degenerate "line" obstacle) and returns the id of the first
// inserted vertex, or NoAgent if fewer than two points were supplied.
// ProcessObstacles must be called (again) after this for the BSP tree and
// QueryVisibility to reflect the new polygon.
func (s *Simulator) AddObstacle(verts []vec2.Vec2) int {
	id, ok := s.obstacles.AddPolygon(verts)
	if !ok {
		return NoAgent
	}
	return id
}

// ProcessObstacles (re)builds the obstacle BSP tree over every vertex
// added so far, splitting straddling edges and appending the resulting
// vertices to the store. Call once after every AddObstacle that will ever
// run; the tree is immutable afterward.
func (s *Simulator) ProcessObstacles() { s.obstacles.Build() }

// QueryVisibility reports whether the segment p-q is unobstructed by any
// committed obstacle edge, keeping a clearance of radius from every edge.
// Only meaningful after the first ProcessObstacles call.
func (s *Simulator) QueryVisibility(p, q vec2.Vec2, radius float64) bool {
	return s.obstacles.QueryVisibility(p, q, radius)
}
