package simulator

import "github.com/katalvlaran/orca2d/vec2"

// AgentPosition returns agent id's current position.
func (s *Simulator) AgentPosition(id int) vec2.Vec2 { return s.agents[id].Position }

// SetAgentPosition overrides agent id's position directly, bypassing
// integration. Intended for scene setup/teleport, not per-tick use.
func (s *Simulator) SetAgentPosition(id int, p vec2.Vec2) { s.agents[id].Position = p }

// AgentVelocity returns agent id's current (post-commit) velocity.
func (s *Simulator) AgentVelocity(id int) vec2.Vec2 { return s.agents[id].Velocity }

// SetAgentVelocity overrides agent id's velocity directly.
func (s *Simulator) SetAgentVelocity(id int, v vec2.Vec2) { s.agents[id].Velocity = v }

// AgentPrefVelocity returns agent id's preferred velocity for the next Step.
func (s *Simulator) AgentPrefVelocity(id int) vec2.Vec2 { return s.agents[id].PrefVelocity }

// SetAgentPrefVelocity sets agent id's preferred velocity for the next
// Step. Callers (a higher-level planner) drive the simulation by calling
// this for every agent before each Step.
func (s *Simulator) SetAgentPrefVelocity(id int, v vec2.Vec2) { s.agents[id].PrefVelocity = v }

// AgentRadius returns agent id's disc radius.
func (s *Simulator) AgentRadius(id int) float64 { return s.agents[id].Params.Radius }

// SetAgentRadius sets agent id's disc radius.
func (s *Simulator) SetAgentRadius(id int, r float64) { s.agents[id].Params.Radius = r }

// AgentMaxSpeed returns agent id's speed bound.
func (s *Simulator) AgentMaxSpeed(id int) float64 { return s.agents[id].Params.MaxSpeed }

// SetAgentMaxSpeed sets agent id's speed bound.
func (s *Simulator) SetAgentMaxSpeed(id int, v float64) { s.agents[id].Params.MaxSpeed = v }

// AgentNeighborDist returns agent id's neighbor search radius.
func (s *Simulator) AgentNeighborDist(id int) float64 { return s.agents[id].Params.NeighborDist }

// SetAgentNeighborDist sets agent id's neighbor search radius.
func (s *Simulator) SetAgentNeighborDist(id int, d float64) { s.agents[id].Params.NeighborDist = d }

// AgentMaxNeighbors returns agent id's agent-neighbor list bound.
func (s *Simulator) AgentMaxNeighbors(id int) int { return s.agents[id].Params.MaxNeighbors }

// SetAgentMaxNeighbors sets agent id's agent-neighbor list bound.
func (s *Simulator) SetAgentMaxNeighbors(id, n int) { s.agents[id].Params.MaxNeighbors = n }

// AgentTimeHorizon returns agent id's agent-agent ORCA look-ahead window.
func (s *Simulator) AgentTimeHorizon(id int) float64 { return s.agents[id].Params.TimeHorizon }

// SetAgentTimeHorizon sets agent id's agent-agent ORCA look-ahead window.
func (s *Simulator) SetAgentTimeHorizon(id int, tau float64) { s.agents[id].Params.TimeHorizon = tau }

// AgentTimeHorizonObst returns agent id's agent-obstacle ORCA look-ahead window.
func (s *Simulator) AgentTimeHorizonObst(id int) float64 {
	return s.agents[id].Params.TimeHorizonObst
}

// SetAgentTimeHorizonObst sets agent id's agent-obstacle ORCA look-ahead window.
func (s *Simulator) SetAgentTimeHorizonObst(id int, tau float64) {
	s.agents[id].Params.TimeHorizonObst = tau
}

// AgentNeighborCount returns the number of agent neighbors agent id found
// on the most recent Step.
func (s *Simulator) AgentNeighborCount(id int) int { return s.agents[id].AgentNeighborCount() }

// AgentNeighborID returns the id of agent id's i-th closest agent
// neighbor from the most recent Step.
func (s *Simulator) AgentNeighborID(id, i int) int { return s.agents[id].AgentNeighborID(i) }

// VertexCount returns the number of obstacle vertices committed so far,
// including split vertices introduced by the most recent ProcessObstacles.
func (s *Simulator) VertexCount() int { return s.obstacles.VertexCount() }

// VertexPosition returns obstacle vertex id's position.
func (s *Simulator) VertexPosition(id int) vec2.Vec2 { return s.obstacles.Vertex(id).Point }

// SetVertexPosition moves obstacle vertex id, refreshing the edge
// direction of it and its chain predecessor. Must be followed by a
// ProcessObstacles call before the BSP tree reflects the change.
func (s *Simulator) SetVertexPosition(id int, p vec2.Vec2) { s.obstacles.SetVertexPoint(id, p) }

// NextVertex returns the id of the vertex following id in its polygon chain.
func (s *Simulator) NextVertex(id int) int { return s.obstacles.NextVertexNo(id) }

// PrevVertex returns the id of the vertex preceding id in its polygon chain.
func (s *Simulator) PrevVertex(id int) int { return s.obstacles.PrevVertexNo(id) }
