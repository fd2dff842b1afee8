// Package simulator owns a complete orca2d scene: the agents, the static
// obstacles, the two spatial indices that serve them, global time, and the
// per-tick drive loop.
//
// # Lifecycle
//
// A fresh Simulator has no default agent template; AddAgent fails (returns
// NoAgent) until SetAgentDefaults has been called at least once.
// AddAgentWithParams bypasses the template entirely. Agents and obstacle
// polygons are append-only: ids are stable for the life of the Simulator
// and equal to insertion order. Clear drops all agents, obstacles and the
// template and resets global time; the time step is kept.
//
// Obstacles are committed in two phases: AddObstacle appends a polygon's
// vertex chain, and ProcessObstacles (re)builds the obstacle BSP tree over
// every vertex added so far, splitting straddling edges as needed. The
// resulting tree is immutable until ProcessObstacles runs again.
// QueryVisibility is only meaningful after that first call.
//
// # Step
//
// Step rebuilds the agent k-D tree from the current (pre-tick) positions,
// computes every agent's neighbors and new velocity against that frozen
// state, and only then commits — writing every agent's new velocity and
// integrating its position. This ordering is what makes a tick's result
// independent of agent iteration order. By default the per-agent compute
// phase runs sequentially; WithWorkerPool
// fans it across a bounded goroutine pool, which is still safe because
// every worker only ever reads pre-tick state and writes to its own
// agent's NewVelocity slot.
package simulator
