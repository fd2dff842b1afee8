package agent

import (
	"github.com/katalvlaran/orca2d/kdtree"
	"github.com/katalvlaran/orca2d/obstacle"
	"github.com/katalvlaran/orca2d/vec2"
)

// Lookup resolves an agent id to the agent itself, used when walking the
// k-D tree's candidate ids.
type Lookup func(id int) *Agent

// ComputeNeighbors clears and repopulates AgentNeighbors and
// ObstacleNeighbors from the given spatial indices. tree must have been
// built from the current tick's pre-commit agent positions; obstacles must
// have had Build called at least once (an obstacle store with no polygons
// yet is queried safely and simply yields no neighbors).
func (a *Agent) ComputeNeighbors(tree *kdtree.Tree, obstacles *obstacle.Store, lookup Lookup) {
	a.agentNeighbors = a.agentNeighbors[:0]
	a.obstacleNeighbors = a.obstacleNeighbors[:0]

	rangeSq := vec2.Sqr(a.Params.NeighborDist)

	agentRangeSq := rangeSq
	tree.QueryNeighbors(a.Position, &agentRangeSq, func(id int) {
		if id == a.ID {
			return
		}
		other := lookup(id)
		d := vec2.AbsSq(vec2.Sub(other.Position, a.Position))
		a.insertAgentNeighbor(d, id, &agentRangeSq)
	})

	obstacles.QueryNeighbors(a.Position, rangeSq, func(edgeID int) {
		e1 := obstacles.Vertex(edgeID)
		e2 := obstacles.Vertex(e1.Next)
		d := vec2.DistSqPointLineSegment(e1.Point, e2.Point, a.Position)
		if d < rangeSq {
			a.insertObstacleNeighbor(d, edgeID)
		}
	})
}

// insertAgentNeighbor keeps the bounded, ascending-by-distSq agent
// neighbor list. Once the list reaches Params.MaxNeighbors, rangeSq is
// tightened to the new largest retained key, so the caller's k-D tree
// search can stop visiting subtrees that could no longer place in range.
func (a *Agent) insertAgentNeighbor(distSq float64, id int, rangeSq *float64) {
	if distSq >= *rangeSq {
		return
	}
	if len(a.agentNeighbors) < a.Params.MaxNeighbors {
		a.agentNeighbors = append(a.agentNeighbors, agentNeighbor{})
	} else if len(a.agentNeighbors) == 0 {
		return
	}

	i := len(a.agentNeighbors) - 1
	for i > 0 && a.agentNeighbors[i-1].distSq > distSq {
		a.agentNeighbors[i] = a.agentNeighbors[i-1]
		i--
	}
	a.agentNeighbors[i] = agentNeighbor{distSq: distSq, id: id}

	if len(a.agentNeighbors) == a.Params.MaxNeighbors {
		*rangeSq = a.agentNeighbors[len(a.agentNeighbors)-1].distSq
	}
}

// insertObstacleNeighbor keeps the unbounded, ascending-by-distSq obstacle
// neighbor list; the obstacle query never shrinks its range (see package
// obstacle's QueryNeighbors doc), so every edge within NeighborDist is
// retained.
func (a *Agent) insertObstacleNeighbor(distSq float64, edgeID int) {
	a.obstacleNeighbors = append(a.obstacleNeighbors, obstacleNeighbor{})
	i := len(a.obstacleNeighbors) - 1
	for i > 0 && a.obstacleNeighbors[i-1].distSq > distSq {
		a.obstacleNeighbors[i] = a.obstacleNeighbors[i-1]
		i--
	}
	a.obstacleNeighbors[i] = obstacleNeighbor{distSq: distSq, edgeID: edgeID}
}
