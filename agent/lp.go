package agent

import (
	"math"

	"github.com/katalvlaran/orca2d/vec2"
)

// lp1 solves the 1-D problem of clipping line lines[lineNo] by the disc of
// radius radius and by every earlier line in lines[:lineNo], then returns
// the point of the clipped segment closest to optVelocity (or, if
// directionOpt, the endpoint furthest in the +optVelocity sense). ok is
// false if the clipped segment or the disc leaves nothing feasible.
//
// lines[lineNo] is represented parametrically as point + t*direction; tLeft
// and tRight bound the feasible interval of t.
func lp1(lines []Line, lineNo int, radius float64, optVelocity vec2.Vec2, directionOpt bool) (result vec2.Vec2, ok bool) {
	line := lines[lineNo]
	dotProduct := vec2.Dot(line.Point, line.Direction)
	discriminant := vec2.Sqr(dotProduct) + vec2.Sqr(radius) - vec2.AbsSq(line.Point)

	if discriminant < 0 {
		return vec2.Vec2{}, false
	}

	sqrtDiscriminant := math.Sqrt(discriminant)
	tLeft := -dotProduct - sqrtDiscriminant
	tRight := -dotProduct + sqrtDiscriminant

	for i := 0; i < lineNo; i++ {
		denominator := vec2.Det(line.Direction, lines[i].Direction)
		numerator := vec2.Det(lines[i].Direction, vec2.Sub(line.Point, lines[i].Point))

		if math.Abs(denominator) <= vec2.Epsilon {
			// lines[lineNo] and lines[i] are (near-)parallel.
			if numerator < 0 {
				return vec2.Vec2{}, false
			}
			continue
		}

		t := numerator / denominator
		if denominator >= 0 {
			tRight = math.Min(tRight, t)
		} else {
			tLeft = math.Max(tLeft, t)
		}

		if tLeft > tRight {
			return vec2.Vec2{}, false
		}
	}

	if directionOpt {
		if vec2.Dot(optVelocity, line.Direction) > 0 {
			return vec2.Add(line.Point, vec2.Scale(line.Direction, tRight)), true
		}
		return vec2.Add(line.Point, vec2.Scale(line.Direction, tLeft)), true
	}

	t := vec2.Dot(line.Direction, vec2.Sub(optVelocity, line.Point))
	switch {
	case t < tLeft:
		t = tLeft
	case t > tRight:
		t = tRight
	}

	return vec2.Add(line.Point, vec2.Scale(line.Direction, t)), true
}

// lp2 seeds a candidate velocity (optVelocity clamped into the radius disc,
// or optVelocity scaled onto the disc boundary if directionOpt) and walks
// lines in order, invoking lp1 whenever the candidate violates one. It
// returns the resulting velocity and the index of the first line at which
// lp1 reported infeasible (len(lines) if every line was satisfiable).
func lp2(lines []Line, radius float64, optVelocity vec2.Vec2, directionOpt bool) (result vec2.Vec2, failedLine int) {
	if directionOpt {
		result = vec2.Scale(optVelocity, radius)
	} else if vec2.AbsSq(optVelocity) > vec2.Sqr(radius) {
		result = vec2.Scale(vec2.Normalize(optVelocity), radius)
	} else {
		result = optVelocity
	}

	for i, line := range lines {
		if vec2.Det(line.Direction, vec2.Sub(line.Point, result)) > 0 {
			candidate, ok := lp1(lines, i, radius, optVelocity, directionOpt)
			if !ok {
				return result, i
			}
			result = candidate
		}
	}

	return result, len(lines)
}

// lp3 is the 2-D fallback invoked when lp2 fails at some line beginLine
// (a line at or beyond numObstacleLines, since obstacle constraints are
// never relaxed). It minimizes the maximum penetration across
// lines[beginLine:], never discarding an obstacle line, by re-running lp2
// on a "projected" line set built from each violated line i paired with
// every obstacle line and every earlier agent line.
func lp3(lines []Line, numObstacleLines, beginLine int, radius float64, result vec2.Vec2) vec2.Vec2 {
	distance := 0.0

	for i := beginLine; i < len(lines); i++ {
		if vec2.Det(lines[i].Direction, vec2.Sub(lines[i].Point, result)) <= distance {
			continue
		}

		projected := make([]Line, 0, numObstacleLines+i)
		projected = append(projected, lines[:numObstacleLines]...)

		for j := numObstacleLines; j < i; j++ {
			var line Line
			determinant := vec2.Det(lines[i].Direction, lines[j].Direction)

			if math.Abs(determinant) <= vec2.Epsilon {
				if vec2.Dot(lines[i].Direction, lines[j].Direction) > 0 {
					// Parallel, same direction: line j contributes nothing
					// beyond what line i already constrains.
					continue
				}
				line.Point = vec2.Scale(vec2.Add(lines[i].Point, lines[j].Point), 0.5)
			} else {
				t := vec2.Det(lines[j].Direction, vec2.Sub(lines[i].Point, lines[j].Point)) / determinant
				line.Point = vec2.Add(lines[i].Point, vec2.Scale(lines[i].Direction, t))
			}

			line.Direction = vec2.Normalize(vec2.Sub(lines[j].Direction, lines[i].Direction))
			projected = append(projected, line)
		}

		optDirection := vec2.New(-lines[i].Direction.Y, lines[i].Direction.X)
		candidate, failed := lp2(projected, radius, optDirection, true)
		if failed < len(projected) {
			// Numerical drift made the true feasible point look infeasible
			// in the projected subproblem; keep the previous best rather
			// than accept a worse result.
		} else {
			result = candidate
		}

		distance = vec2.Det(lines[i].Direction, vec2.Sub(lines[i].Point, result))
	}

	return result
}
