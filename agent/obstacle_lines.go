package agent

import (
	"math"

	"github.com/katalvlaran/orca2d/obstacle"
	"github.com/katalvlaran/orca2d/vec2"
)

// buildObstacleLines appends one ORCA line per obstacle neighbor not
// already covered by an earlier line. It must run before buildAgentLines
// so that numObstacleLines is meaningful to lp3 (obstacle lines are
// never relaxed there).
func (a *Agent) buildObstacleLines(store *obstacle.Store) {
	invTau := 1 / a.Params.TimeHorizonObst
	radius := a.Params.Radius
	radiusSq := vec2.Sqr(radius)

	for _, on := range a.obstacleNeighbors {
		e1 := store.Vertex(on.edgeID)
		e2 := store.Vertex(e1.Next)

		relPos1 := vec2.Sub(e1.Point, a.Position)
		relPos2 := vec2.Sub(e2.Point, a.Position)

		if a.obstacleCovered(relPos1, relPos2, invTau) {
			continue
		}

		distSq1 := vec2.AbsSq(relPos1)
		distSq2 := vec2.AbsSq(relPos2)

		edgeVec := vec2.Sub(e2.Point, e1.Point)
		s := vec2.Dot(vec2.Neg(relPos1), edgeVec) / vec2.AbsSq(edgeVec)
		distSqLine := vec2.AbsSq(vec2.Sub(vec2.Neg(relPos1), vec2.Scale(edgeVec, s)))

		switch {
		case s < 0 && distSq1 <= radiusSq:
			if e1.Convex {
				a.orcaLines = append(a.orcaLines, Line{
					Direction: vec2.Normalize(vec2.New(-relPos1.Y, relPos1.X)),
				})
			}
			continue
		case s > 1 && distSq2 <= radiusSq:
			if e2.Convex {
				a.orcaLines = append(a.orcaLines, Line{
					Direction: vec2.Normalize(vec2.New(-relPos2.Y, relPos2.X)),
				})
			}
			continue
		case s >= 0 && s <= 1 && distSqLine <= radiusSq:
			a.orcaLines = append(a.orcaLines, Line{Direction: vec2.Neg(e1.Direction)})
			continue
		}

		line, ok := a.obstacleLegLine(store, e1, e2, relPos1, relPos2, distSq1, distSq2, distSqLine, s, invTau)
		if ok {
			a.orcaLines = append(a.orcaLines, line)
		}
	}
}

// obstacleCovered reports whether every existing ORCA line already admits
// both scaled relative positions with the radius/tau margin, i.e. whether
// this edge's constraint is implied by an earlier one.
func (a *Agent) obstacleCovered(relPos1, relPos2 vec2.Vec2, invTau float64) bool {
	margin := a.Params.Radius * invTau
	for _, line := range a.orcaLines {
		c1 := vec2.Sub(vec2.Scale(relPos1, invTau), line.Point)
		c2 := vec2.Sub(vec2.Scale(relPos2, invTau), line.Point)
		if vec2.Det(c1, line.Direction)-margin >= -vec2.Epsilon &&
			vec2.Det(c2, line.Direction)-margin >= -vec2.Epsilon {
			return true
		}
	}
	return false
}

// obstacleLegLine handles the general (non-colliding) case: the two tangent
// leg directions from the agent to the capsule around the edge, clamped at
// non-convex vertices or when a leg is "foreign" (points through the
// neighboring edge of the chain), and the cut-off/leg projection that picks
// which of the three candidate half-planes to emit.
func (a *Agent) obstacleLegLine(store *obstacle.Store, e1, e2 obstacle.Vertex, relPos1, relPos2 vec2.Vec2, distSq1, distSq2, distSqLine, s, invTau float64) (Line, bool) {
	radius := a.Params.Radius
	radiusSq := vec2.Sqr(radius)

	var leftLegDir, rightLegDir vec2.Vec2
	sameEdge := false

	switch {
	case s < 0 && distSqLine <= radiusSq:
		if !e1.Convex {
			return Line{}, false
		}
		e2 = e1
		sameEdge = true
		leg1 := math.Sqrt(distSq1 - radiusSq)
		leftLegDir = vec2.New(
			(relPos1.X*leg1-relPos1.Y*radius)/distSq1,
			(relPos1.X*radius+relPos1.Y*leg1)/distSq1,
		)
		rightLegDir = vec2.New(
			(relPos1.X*leg1+relPos1.Y*radius)/distSq1,
			(-relPos1.X*radius+relPos1.Y*leg1)/distSq1,
		)
	case s > 1 && distSqLine <= radiusSq:
		if !e2.Convex {
			return Line{}, false
		}
		e1 = e2
		sameEdge = true
		leg2 := math.Sqrt(distSq2 - radiusSq)
		leftLegDir = vec2.New(
			(relPos2.X*leg2-relPos2.Y*radius)/distSq2,
			(relPos2.X*radius+relPos2.Y*leg2)/distSq2,
		)
		rightLegDir = vec2.New(
			(relPos2.X*leg2+relPos2.Y*radius)/distSq2,
			(-relPos2.X*radius+relPos2.Y*leg2)/distSq2,
		)
	default:
		if e1.Convex {
			leg1 := math.Sqrt(distSq1 - radiusSq)
			leftLegDir = vec2.New(
				(relPos1.X*leg1-relPos1.Y*radius)/distSq1,
				(relPos1.X*radius+relPos1.Y*leg1)/distSq1,
			)
		} else {
			leftLegDir = vec2.Neg(e1.Direction)
		}

		if e2.Convex {
			leg2 := math.Sqrt(distSq2 - radiusSq)
			rightLegDir = vec2.New(
				(relPos2.X*leg2+relPos2.Y*radius)/distSq2,
				(-relPos2.X*radius+relPos2.Y*leg2)/distSq2,
			)
		} else {
			rightLegDir = e1.Direction
		}
	}

	leftNeighborDir := store.Vertex(e1.Prev).Direction
	isLeftForeign := false
	isRightForeign := false

	if e1.Convex && vec2.Det(leftLegDir, vec2.Neg(leftNeighborDir)) >= 0 {
		leftLegDir = vec2.Neg(leftNeighborDir)
		isLeftForeign = true
	}
	if e2.Convex && vec2.Det(rightLegDir, e2.Direction) <= 0 {
		rightLegDir = e2.Direction
		isRightForeign = true
	}

	leftCutOff := vec2.Scale(vec2.Sub(e1.Point, a.Position), invTau)
	rightCutOff := vec2.Scale(vec2.Sub(e2.Point, a.Position), invTau)
	cutOffVec := vec2.Sub(rightCutOff, leftCutOff)

	t := 0.5
	if !sameEdge {
		t = vec2.Dot(vec2.Sub(a.Velocity, leftCutOff), cutOffVec) / vec2.AbsSq(cutOffVec)
	}
	tLeft := vec2.Dot(vec2.Sub(a.Velocity, leftCutOff), leftLegDir)
	tRight := vec2.Dot(vec2.Sub(a.Velocity, rightCutOff), rightLegDir)

	if (t < 0 && tLeft < 0) || (sameEdge && tLeft < 0 && tRight < 0) {
		unitW := vec2.Normalize(vec2.Sub(a.Velocity, leftCutOff))
		dir := vec2.New(unitW.Y, -unitW.X)
		return Line{Direction: dir, Point: vec2.Add(leftCutOff, vec2.Scale(unitW, radius*invTau))}, true
	}
	if t > 1 && tRight < 0 {
		unitW := vec2.Normalize(vec2.Sub(a.Velocity, rightCutOff))
		dir := vec2.New(unitW.Y, -unitW.X)
		return Line{Direction: dir, Point: vec2.Add(rightCutOff, vec2.Scale(unitW, radius*invTau))}, true
	}

	inf := math.Inf(1)
	distSqCutOff := inf
	if !(t < 0 || t > 1 || sameEdge) {
		distSqCutOff = vec2.AbsSq(vec2.Sub(a.Velocity, vec2.Add(leftCutOff, vec2.Scale(cutOffVec, t))))
	}
	distSqLeft := inf
	if tLeft >= 0 {
		distSqLeft = vec2.AbsSq(vec2.Sub(a.Velocity, vec2.Add(leftCutOff, vec2.Scale(leftLegDir, tLeft))))
	}
	distSqRight := inf
	if tRight >= 0 {
		distSqRight = vec2.AbsSq(vec2.Sub(a.Velocity, vec2.Add(rightCutOff, vec2.Scale(rightLegDir, tRight))))
	}

	if distSqCutOff <= distSqLeft && distSqCutOff <= distSqRight {
		dir := vec2.Neg(e1.Direction)
		normal := vec2.New(-dir.Y, dir.X)
		return Line{Direction: dir, Point: vec2.Add(leftCutOff, vec2.Scale(normal, radius*invTau))}, true
	}

	if distSqLeft <= distSqRight {
		if isLeftForeign {
			return Line{}, false
		}
		normal := vec2.New(-leftLegDir.Y, leftLegDir.X)
		return Line{Direction: leftLegDir, Point: vec2.Add(leftCutOff, vec2.Scale(normal, radius*invTau))}, true
	}

	if isRightForeign {
		return Line{}, false
	}
	normal := vec2.New(-rightLegDir.Y, rightLegDir.X)
	return Line{Direction: rightLegDir, Point: vec2.Add(rightCutOff, vec2.Scale(normal, radius*invTau))}, true
}
