package transport

import (
	"context"
	"log"
	"net/http"
)

// Server upgrades incoming HTTP requests to websocket subscribers of a
// Broadcaster. It serves exactly one route and does no rendering,
// routing, or asset serving of its own — any canvas or other rendering
// is the caller's concern.
type Server struct {
	broadcaster *Broadcaster
}

// NewServer returns a Server that subscribes each incoming connection to b.
func NewServer(b *Broadcaster) *Server {
	return &Server{broadcaster: b}
}

// Handler returns an http.HandlerFunc suitable for mux.HandleFunc("/ws", ...).
func (s *Server) Handler() http.HandlerFunc {
	return s.serveWebsocket
}

func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	id, updates := s.broadcaster.Subscribe()
	defer s.broadcaster.Unsubscribe(id)

	client, err := NewClient(id, updates, w, r)
	if err != nil {
		log.Printf("transport: upgrade failed: %v", err)
		return
	}
	defer client.Close()

	if err := client.Sync(r.Context()); err != nil && err != context.Canceled {
		log.Printf("transport: client %s disconnected: %v", id, err)
	}
}
