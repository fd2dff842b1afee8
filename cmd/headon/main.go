// Command headon drives a two-agent head-on pass scenario: two
// reciprocating agents starting ten units apart on the x-axis, each
// preferring to fly straight through the other, for twenty ticks. It
// prints each tick's positions so the pass-without-collision behavior
// can be eyeballed.
//
// Playground equivalent: go run ./cmd/headon
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/orca2d/simulator"
	"github.com/katalvlaran/orca2d/vec2"
)

func main() {
	sim := simulator.New(simulator.WithTimeStep(0.25))
	sim.SetAgentDefaults(15, 10, 10, 10, 2, 2, vec2.Vec2{})

	left := sim.AddAgent(vec2.New(-5, 0))
	right := sim.AddAgent(vec2.New(5, 0))
	if left < 0 || right < 0 {
		log.Fatal("headon: failed to add agents")
	}

	for tick := 0; tick < 20; tick++ {
		sim.SetAgentPrefVelocity(left, vec2.New(2, 0))
		sim.SetAgentPrefVelocity(right, vec2.New(-2, 0))
		now := sim.Step()

		lp, rp := sim.AgentPosition(left), sim.AgentPosition(right)
		fmt.Printf("t=%.2f left=(%.3f,%.3f) right=(%.3f,%.3f) clearance=%.3f\n",
			now, lp.X, lp.Y, rp.X, rp.Y, vec2.Abs(vec2.Sub(lp, rp)))
	}
}
