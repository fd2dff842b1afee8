// Package kdtree implements the agent spatial index: a flat, bounding-box
// annotated binary tree over the positions of the agents present at the
// start of a tick, rebuilt from scratch every tick (positions never move
// mid-build — see package simulator's commit ordering).
//
// The tree never touches an Agent type. It is handed a slice of ids and a
// position lookup at Build time, and at query time a squared range that it
// is free to shrink in place as the caller's bounded neighbor list fills
// up — exactly the bounded-range query package agent drives to populate
// an Agent's agent-neighbor list. This intentionally severs the historical coupling
// some reference k-D tree implementations have to a single global agent
// array: the tree only ever borrows the positions it is given, so multiple
// independent trees (and simulations) can coexist in one process.
package kdtree
