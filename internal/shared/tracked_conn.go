// FILE: internal/shared/tracked_conn.go
package shared

import (
	"net"
	"sync"
	"sync/atomic"
)

// TrackedConn 是一个 net.Conn 的包装器，统计收发字节数，并保证底层连接只被关闭一次。
type TrackedConn struct {
	net.Conn
	sent     atomic.Uint64
	received atomic.Uint64

	closeCalls atomic.Int32
	closeOnce  sync.Once
	closeErr   error
}

// NewTrackedConn 创建一个新的 TrackedConn 实例。
func NewTrackedConn(conn net.Conn) *TrackedConn {
	return &TrackedConn{Conn: conn}
}

// Read 从底层连接读取数据，并增加接收计数。
func (c *TrackedConn) Read(b []byte) (int, error) {
	n, err := c.Conn.Read(b)
	if n > 0 {
		c.received.Add(uint64(n))
	}
	return n, err
}

// Write 将数据写入底层连接，并增加发送计数。
func (c *TrackedConn) Write(b []byte) (int, error) {
	n, err := c.Conn.Write(b)
	if n > 0 {
		c.sent.Add(uint64(n))
	}
	return n, err
}

// Close releases the underlying connection on the first call. Later calls
// return the first call's result without touching the socket again.
func (c *TrackedConn) Close() error {
	c.closeCalls.Add(1)
	c.closeOnce.Do(func() {
		c.closeErr = c.Conn.Close()
	})
	return c.closeErr
}

// Closed reports whether Close has been called.
func (c *TrackedConn) Closed() bool {
	return c.closeCalls.Load() > 0
}

// CloseCalls returns how many times Close was called.
func (c *TrackedConn) CloseCalls() int {
	return int(c.closeCalls.Load())
}

func (c *TrackedConn) BytesSent() uint64     { return c.sent.Load() }
func (c *TrackedConn) BytesReceived() uint64 { return c.received.Load() }
