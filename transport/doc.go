// Package transport streams a running simulator's per-tick state to any
// number of websocket subscribers. It is ambient: it never reaches back
// into package simulator's internals beyond the read-only Snapshot the
// caller hands it after a Step.
//
// # Design
//
// Broadcaster fans a Snapshot out, non-blocking, to every subscriber
// channel currently registered; a slow or stalled subscriber drops frames
// rather than ever stalling Publish (and therefore the simulator's own
// tick loop, if Publish is called from it). Client wraps one upgraded
// websocket connection and runs three concurrent loops: a read loop that
// exists only to keep the pong handler firing, a ping/pong liveness loop
// driven by channerics.NewTicker, and a throttled publish loop that
// discards updates arriving faster than its publish resolution (Snapshots
// are idempotent full-state frames, so only the latest matters).
package transport
