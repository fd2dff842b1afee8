// Package agent implements the per-agent ORCA velocity solver: the ~45%
// of orca2d that constructs a set of linear constraints (ORCA lines) from
// nearby agents and obstacle edges, and solves a 2-D linearly-constrained
// convex program — maximize closeness to a preferred velocity subject to
// every ORCA half-plane and a circular speed bound — with a 3-D fallback
// for the (rare, geometrically unavoidable) case where the half-planes
// have no common intersection inside the speed disc.
//
// # Pipeline
//
// Each tick, for every agent:
//
//  1. ComputeNeighbors walks the agent k-D tree and the obstacle BSP tree
//     (package kdtree, package obstacle) to populate the agent's neighbor
//     lists: a bounded, distance-sorted list of at most Params.MaxNeighbors
//     agents and an unbounded, distance-sorted list of edges.
//  2. ComputeNewVelocity builds one ORCA line per obstacle neighbor, then
//     one per agent neighbor (the reciprocal half of each pair's velocity
//     obstacle), then solves the resulting linear program for the new
//     velocity, writing it to NewVelocity.
//  3. Commit copies NewVelocity into Velocity and integrates Position. All
//     reads during steps 1-2 must see pre-tick state (package simulator
//     enforces this by calling Commit only after every agent has finished
//     step 2).
//
// # The linear program
//
// lp1 solves the 1-D problem of clipping a single ORCA line by every
// earlier line and by the speed disc. lp2 seeds a candidate velocity and
// walks the lines in order, invoking lp1 whenever the candidate violates
// one. lp3 is the fallback when lp2 fails: it minimizes the maximum
// penetration across the remaining lines while still honoring every
// obstacle line unconditionally, by running lp2 again on a set of
// "projected" lines built from pairs of the violated line and every
// obstacle/earlier-agent line. All three are pure functions of the lines
// and the current best velocity — no shared mutable state survives a
// call, unlike some reference implementations that thread a class-level
// "best so far" field through the recursion.
package agent
