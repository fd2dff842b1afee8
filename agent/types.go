package agent

import "github.com/katalvlaran/orca2d/vec2"

// Params holds an agent's tunable scalar parameters. All are in the same
// length/time units as Position/Velocity and the simulator's time step.
type Params struct {
	// Radius is the agent's disc radius, used for both agent-agent and
	// agent-obstacle collision terms. Must be positive; zero radii are not
	// guarded against.
	Radius float64
	// MaxSpeed bounds |Velocity| after every Commit.
	MaxSpeed float64
	// NeighborDist is the search radius (not squared) used to seed both
	// the agent-neighbor and the obstacle-neighbor query.
	NeighborDist float64
	// MaxNeighbors bounds the size of AgentNeighbors.
	MaxNeighbors int
	// TimeHorizon is the look-ahead window used when building ORCA lines
	// against other agents.
	TimeHorizon float64
	// TimeHorizonObst is the look-ahead window used when building ORCA
	// lines against obstacle edges.
	TimeHorizonObst float64
}

// Line is a directed line in velocity space. The admissible half-plane is
// { v : det(Direction, Point - v) <= 0 }, the side to the left of
// Direction.
type Line struct {
	Point     vec2.Vec2
	Direction vec2.Vec2
}

// agentNeighbor is one bounded-list entry: the squared center-to-center
// distance to a neighboring agent and that agent's id.
type agentNeighbor struct {
	distSq float64
	id     int
}

// obstacleNeighbor is one unbounded-list entry: the squared point-to-
// segment distance to an obstacle edge and the id of the edge's first
// vertex (its Next gives the second).
type obstacleNeighbor struct {
	distSq float64
	edgeID int
}

// Agent is one mobile disc in the simulation.
type Agent struct {
	ID int

	Position     vec2.Vec2
	Velocity     vec2.Vec2
	PrefVelocity vec2.Vec2
	NewVelocity  vec2.Vec2

	Params Params

	agentNeighbors    []agentNeighbor
	obstacleNeighbors []obstacleNeighbor
	orcaLines         []Line
}

// New returns an agent at pos configured with params and an initial
// Velocity; PrefVelocity starts at the zero vector until the caller sets
// one for the next tick.
func New(id int, pos, velocity vec2.Vec2, params Params) *Agent {
	return &Agent{ID: id, Position: pos, Velocity: velocity, Params: params}
}

// AgentNeighborCount returns the number of agent neighbors found on the
// most recent ComputeNeighbors call.
func (a *Agent) AgentNeighborCount() int { return len(a.agentNeighbors) }

// AgentNeighborID returns the id of the i-th closest agent neighbor.
func (a *Agent) AgentNeighborID(i int) int { return a.agentNeighbors[i].id }

// ORCALineCount returns the number of ORCA lines built on the most recent
// ComputeNewVelocity call.
func (a *Agent) ORCALineCount() int { return len(a.orcaLines) }

// ORCALine returns the i-th ORCA line built on the most recent
// ComputeNewVelocity call.
func (a *Agent) ORCALine(i int) Line { return a.orcaLines[i] }

// Commit copies NewVelocity into Velocity and integrates Position forward
// by timeStep. Must be called only after every agent in the simulation has
// finished ComputeNewVelocity for this tick.
func (a *Agent) Commit(timeStep float64) {
	a.Velocity = a.NewVelocity
	a.Position = vec2.Add(a.Position, vec2.Scale(a.Velocity, timeStep))
}
