package transport

import "github.com/katalvlaran/orca2d/vec2"

// AgentState is one agent's broadcastable state.
type AgentState struct {
	ID       int       `json:"id"`
	Position vec2.Vec2 `json:"position"`
	Velocity vec2.Vec2 `json:"velocity"`
}

// Snapshot is a full, idempotent description of a simulator's state after
// one Step: a subscriber that misses frames can still render correctly
// from the next one it receives.
type Snapshot struct {
	Tick   int          `json:"tick"`
	Time   float64      `json:"time"`
	Agents []AgentState `json:"agents"`
}
