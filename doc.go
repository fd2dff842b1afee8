// Package orca2d is a 2D multi-agent reciprocal collision-avoidance
// simulator: reciprocal velocity obstacles (ORCA) computed per tick from
// each agent's nearby agents and nearby static obstacle edges, resolved
// to a collision-free velocity by a three-layer 2D/3D linear program.
//
// The module is organized as small, flat top-level packages, each
// independently testable and free of I/O in its core:
//
//	vec2/      — 2D vector primitives shared by every other package
//	obstacle/  — polygon-chain obstacle storage, BSP preprocessing, visibility queries
//	kdtree/    — flat k-D tree over agent positions, rebuilt every tick
//	agent/     — per-agent ORCA line construction and the 2D/3D linear program
//	simulator/ — owns agents, obstacles and spatial indices; drives Step
//	transport/ — optional websocket broadcaster for streaming Simulator snapshots
//	cmd/       — small runnable scenes exercising the simulator package
//
// A typical caller builds a Simulator, seeds agent defaults, adds agents
// and obstacles, sets each agent's preferred velocity every tick, and
// calls Step in a loop:
//
//	sim := simulator.New(simulator.WithTimeStep(0.1))
//	sim.SetAgentDefaults(15, 10, 10, 10, radius, maxSpeed, vec2.Vec2{})
//	a := sim.AddAgent(start)
//	sim.ProcessObstacles()
//	for {
//		sim.SetAgentPrefVelocity(a, goalDirection)
//		sim.Step()
//	}
package orca2d
