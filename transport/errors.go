package transport

import "errors"

// ErrPongDeadlineExceeded indicates a subscribed client stopped answering
// pings and must be treated as disconnected.
var ErrPongDeadlineExceeded = errors.New("transport: pong deadline exceeded")
