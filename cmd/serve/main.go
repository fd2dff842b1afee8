// Command serve runs a small multi-agent scene and streams its per-tick
// state over a websocket at /ws, for any external renderer to consume
// (package transport's Broadcaster/Client; this command does no
// rendering of its own).
package main

import (
	"context"
	"log"
	"math"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/orca2d/simulator"
	"github.com/katalvlaran/orca2d/transport"
	"github.com/katalvlaran/orca2d/vec2"
)

const agentCount = 8

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sim := simulator.New(simulator.WithTimeStep(0.1))
	sim.SetAgentDefaults(15, 10, 10, 10, 1, 2, vec2.Vec2{})

	for i := 0; i < agentCount; i++ {
		angle := 2 * math.Pi * float64(i) / agentCount
		pos := vec2.New(8*math.Cos(angle), 8*math.Sin(angle))
		sim.AddAgent(pos)
	}

	broadcaster := transport.NewBroadcaster()
	srv := transport.NewServer(broadcaster)
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.Handler())

	httpServer := &http.Server{Addr: ":8080", Handler: mux}
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("serve: %v", err)
		}
	}()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for tick := 0; ; tick++ {
		select {
		case <-ctx.Done():
			_ = httpServer.Shutdown(context.Background())
			return
		case <-ticker.C:
			// Every agent prefers to head toward the origin, producing a
			// continuous reciprocal-avoidance traffic jam worth watching.
			for id := 0; id < sim.AgentCount(); id++ {
				pos := sim.AgentPosition(id)
				pref := vec2.Scale(pos, -1)
				if l := vec2.Abs(pref); l > 0 {
					pref = vec2.Scale(pref, 1/l)
				}
				sim.SetAgentPrefVelocity(id, pref)
			}
			now := sim.Step()

			snap := transport.Snapshot{Tick: tick, Time: now}
			for id := 0; id < sim.AgentCount(); id++ {
				snap.Agents = append(snap.Agents, transport.AgentState{
					ID:       id,
					Position: sim.AgentPosition(id),
					Velocity: sim.AgentVelocity(id),
				})
			}
			broadcaster.Publish(snap)
		}
	}
}
