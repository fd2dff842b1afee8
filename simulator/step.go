package simulator

import (
	"sync"

	"github.com/katalvlaran/orca2d/agent"
	"github.com/katalvlaran/orca2d/vec2"
)

// Step drives one tick: it rebuilds the agent k-D tree from the current
// (pre-tick) positions, computes every agent's neighbors and new velocity
// against that frozen snapshot, commits every agent's new velocity and
// integrated position, and advances GlobalTime by TimeStep. It returns the
// new GlobalTime.
func (s *Simulator) Step() float64 {
	ids := make([]int, len(s.agents))
	for i := range s.agents {
		ids[i] = i
	}
	s.tree.Build(ids, func(id int) vec2.Vec2 { return s.agents[id].Position })

	lookup := func(id int) *agent.Agent { return s.agents[id] }
	compute := func(i int) {
		a := s.agents[i]
		a.ComputeNeighbors(s.tree, s.obstacles, lookup)
		a.ComputeNewVelocity(s.obstacles, s.timeStep, lookup)
	}

	if s.workers > 1 && len(s.agents) > 1 {
		s.stepParallel(compute)
	} else {
		for i := range s.agents {
			compute(i)
		}
	}

	for _, a := range s.agents {
		a.Commit(s.timeStep)
	}

	s.globalTime += s.timeStep

	return s.globalTime
}

// stepParallel fans compute out across a bounded pool of s.workers
// goroutines. Safe because every call only reads pre-tick agent state
// and writes to its own agent's NewVelocity, never another agent's
// Velocity/Position.
func (s *Simulator) stepParallel(compute func(int)) {
	workers := s.workers
	if workers > len(s.agents) {
		workers = len(s.agents)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				compute(i)
			}
		}()
	}
	for i := range s.agents {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}
