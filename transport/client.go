package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"
)

const (
	// writeWait bounds how long a single write to the peer may take.
	writeWait = time.Second
	// pingResolution is the rate at which liveness pings are sent.
	pingResolution = 200 * time.Millisecond
	// pongWait is how long a missing pong is tolerated before the client
	// is declared disconnected; a small multiple of pingResolution so a
	// few lost pings don't trip it.
	pongWait = pingResolution * 4
	// pubResolution throttles outgoing Snapshots; intervening updates
	// received faster than this are discarded (Snapshots are idempotent).
	pubResolution = 100 * time.Millisecond
)

var upgrader = websocket.Upgrader{}

// Client publishes Snapshots to one upgraded websocket connection.
type Client struct {
	id      uuid.UUID
	conn    *websocket.Conn
	updates <-chan Snapshot
}

// NewClient upgrades the HTTP request to a websocket and returns a Client
// that will forward Snapshots read from updates to it.
func NewClient(id uuid.UUID, updates <-chan Snapshot, w http.ResponseWriter, r *http.Request) (*Client, error) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, err
	}

	return &Client{id: id, conn: conn, updates: updates}, nil
}

// ID returns the client's subscriber session id.
func (c *Client) ID() uuid.UUID { return c.id }

// Close closes the underlying websocket connection.
func (c *Client) Close() error { return c.conn.Close() }

// Sync runs the client's read, ping/pong, and publish loops and returns
// once all three have stopped, with the first error any of them returned.
// A canceled ctx or a closed updates channel stops the ping/pong and
// publish loops, but the read loop checks ctx only between inbound
// messages, so Sync returns only after the connection delivers another
// message or a read fails.
func (c *Client) Sync(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error { return c.readLoop(groupCtx) })
	group.Go(func() error { return c.pingPong(groupCtx) })
	group.Go(func() error { return c.publish(groupCtx) })

	return group.Wait()
}

// readLoop does nothing with inbound messages (this transport is
// unidirectional) but must run continuously: gorilla/websocket only
// invokes the pong handler while a read is in flight.
func (c *Client) readLoop(ctx context.Context) error {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		default:
		}
	}
}

func (c *Client) pingPong(ctx context.Context) error {
	pong := make(chan struct{}, 1)
	c.conn.SetPongHandler(func(string) error {
		select {
		case pong <- struct{}{}:
		default:
		}
		return nil
	})

	pinger := channerics.NewTicker(ctx.Done(), pingResolution)
	lastPong := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pinger:
			if time.Since(lastPong) > pongWait {
				return ErrPongDeadlineExceeded
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return err
			}
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return err
			}
		case <-pong:
			lastPong = time.Now()
		}
	}
}

func (c *Client) publish(ctx context.Context) error {
	lastPub := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-c.updates:
			if !ok {
				return nil
			}
			if time.Since(lastPub) < pubResolution {
				continue
			}
			lastPub = time.Now()

			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return err
			}
			if err := c.conn.WriteJSON(snap); err != nil {
				return err
			}
		}
	}
}
