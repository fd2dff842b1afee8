// Command wallavoid drives a wall avoidance scenario: a single agent
// preferring full speed straight into a degenerate two-vertex wall
// obstacle, for thirty ticks. It prints each tick's position so the
// wall-clamping behavior can be eyeballed.
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/orca2d/simulator"
	"github.com/katalvlaran/orca2d/vec2"
)

func main() {
	sim := simulator.New(simulator.WithTimeStep(0.1))
	sim.SetAgentDefaults(15, 10, 10, 5, 1, 10, vec2.Vec2{})

	id := sim.AddAgent(vec2.New(0, 0))
	if id < 0 {
		log.Fatal("wallavoid: failed to add agent")
	}

	if sim.AddObstacle([]vec2.Vec2{{X: 5, Y: -1}, {X: 5, Y: 1}}) < 0 {
		log.Fatal("wallavoid: failed to add wall")
	}
	sim.ProcessObstacles()

	for tick := 0; tick < 30; tick++ {
		sim.SetAgentPrefVelocity(id, vec2.New(10, 0))
		now := sim.Step()

		p := sim.AgentPosition(id)
		fmt.Printf("t=%.2f pos=(%.3f,%.3f) speed=%.3f\n", now, p.X, p.Y, vec2.Abs(sim.AgentVelocity(id)))
	}
}
