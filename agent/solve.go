package agent

import "github.com/katalvlaran/orca2d/obstacle"

// ComputeNewVelocity builds this tick's ORCA lines (obstacle lines first,
// then agent lines) and solves the resulting linear program for the
// velocity closest to PrefVelocity that satisfies every line and the
// MaxSpeed disc, writing the result to NewVelocity. lookup resolves the
// agent-neighbor ids (populated by an earlier ComputeNeighbors call) to
// their current, pre-tick state.
//
// lp3 never throws: when the half-planes admit no common point inside the
// disc (an agent boxed by conflicting constraints), it returns the
// velocity that minimizes the worst violation, still bounded by MaxSpeed.
func (a *Agent) ComputeNewVelocity(store *obstacle.Store, timeStep float64, lookup Lookup) {
	a.orcaLines = a.orcaLines[:0]

	a.buildObstacleLines(store)
	numObstacleLines := len(a.orcaLines)
	a.buildAgentLines(timeStep, lookup)

	result, failedLine := lp2(a.orcaLines, a.Params.MaxSpeed, a.PrefVelocity, false)
	if failedLine < len(a.orcaLines) {
		result = lp3(a.orcaLines, numObstacleLines, failedLine, a.Params.MaxSpeed, result)
	}

	a.NewVelocity = result
}
