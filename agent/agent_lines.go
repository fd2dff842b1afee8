package agent

import (
	"math"

	"github.com/katalvlaran/orca2d/vec2"
)

// buildAgentLines appends one ORCA line per agent neighbor: the
// reciprocal half of the velocity obstacle that neighbor induces on a.
// Must run after buildObstacleLines so obstacle lines occupy indices
// [0, numObstacleLines) in a.orcaLines, which is what lp3 relies on to
// never relax an obstacle constraint.
func (a *Agent) buildAgentLines(timeStep float64, lookup Lookup) {
	invTimeHorizon := 1 / a.Params.TimeHorizon

	for _, nb := range a.agentNeighbors {
		other := lookup(nb.id)

		relPos := vec2.Sub(other.Position, a.Position)
		relVel := vec2.Sub(a.Velocity, other.Velocity)
		distSq := vec2.AbsSq(relPos)
		combinedRadius := a.Params.Radius + other.Params.Radius
		combinedRadiusSq := vec2.Sqr(combinedRadius)

		var direction, u vec2.Vec2

		if distSq > combinedRadiusSq {
			w := vec2.Sub(relVel, vec2.Scale(relPos, invTimeHorizon))
			wLengthSq := vec2.AbsSq(w)
			dotProduct1 := vec2.Dot(w, relPos)

			if dotProduct1 < 0 && vec2.Sqr(dotProduct1) > combinedRadiusSq*wLengthSq {
				wLength := math.Sqrt(wLengthSq)
				unitW := vec2.Scale(w, 1/wLength)

				direction = vec2.New(unitW.Y, -unitW.X)
				u = vec2.Scale(unitW, combinedRadius*invTimeHorizon-wLength)
			} else {
				leg := math.Sqrt(distSq - combinedRadiusSq)

				if vec2.Det(relPos, w) > 0 {
					direction = vec2.Scale(vec2.New(
						relPos.X*leg-relPos.Y*combinedRadius,
						relPos.X*combinedRadius+relPos.Y*leg,
					), 1/distSq)
				} else {
					direction = vec2.Neg(vec2.Scale(vec2.New(
						relPos.X*leg+relPos.Y*combinedRadius,
						-relPos.X*combinedRadius+relPos.Y*leg,
					), 1/distSq))
				}

				dotProduct2 := vec2.Dot(relVel, direction)
				u = vec2.Sub(vec2.Scale(direction, dotProduct2), relVel)
			}
		} else {
			invTimeStep := 1 / timeStep
			w := vec2.Sub(relVel, vec2.Scale(relPos, invTimeStep))
			wLength := vec2.Abs(w)
			unitW := vec2.Scale(w, 1/wLength)

			direction = vec2.New(unitW.Y, -unitW.X)
			u = vec2.Scale(unitW, combinedRadius*invTimeStep-wLength)
		}

		a.orcaLines = append(a.orcaLines, Line{
			Point:     vec2.Add(a.Velocity, vec2.Scale(u, 0.5)),
			Direction: direction,
		})
	}
}
