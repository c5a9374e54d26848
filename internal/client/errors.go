package client

import (
	"errors"
	"fmt"
)

// ErrSocket is the single error kind reported by the runner. It covers name
// resolution, connect, send and receive failures alike.
var ErrSocket = errors.New("socket error")

// SocketError records which step of the exchange failed.
type SocketError struct {
	Op   string // "connect", "send" or "receive"
	Addr string
	Err  error
}

func (e *SocketError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
}

func (e *SocketError) Unwrap() error { return e.Err }

func (e *SocketError) Is(target error) bool { return target == ErrSocket }
