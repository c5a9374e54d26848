// Package client performs a single request/response exchange with a TCP peer.
package client

import (
	"errors"
	"io"
	"net"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/unicode"

	"gx_client/internal/shared"
	"gx_client/internal/shared/logger"
	"gx_client/internal/shared/types"
)

// DefaultBufferSize is the capacity of the single read.
const DefaultBufferSize = 1024

// DialFunc opens a stream connection, like net.Dial.
type DialFunc func(network, address string) (net.Conn, error)

// Runner sends one payload to one endpoint and reads one reply.
type Runner struct {
	endpoint   types.Endpoint
	payload    []byte
	bufferSize int

	dial     DialFunc
	notifier Notifier // nil means a LogNotifier bound to each run's logger
	log      zerolog.Logger

	conn *shared.TrackedConn
}

type Option func(*Runner)

// WithNotifier replaces the default LogNotifier.
func WithNotifier(n Notifier) Option {
	return func(r *Runner) { r.notifier = n }
}

// WithLogger replaces the component logger the runner derives run loggers from.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// WithDialer replaces net.Dial.
func WithDialer(d DialFunc) Option {
	return func(r *Runner) { r.dial = d }
}

// New creates a Runner for cfg. A non-positive BufferSize falls back to
// DefaultBufferSize.
func New(cfg types.ClientConf, opts ...Option) *Runner {
	r := &Runner{
		endpoint:   cfg.Endpoint(),
		payload:    []byte(cfg.Message),
		bufferSize: cfg.BufferSize,
		dial:       net.Dial,
		log:        logger.WithComponent("client"),
	}
	if r.bufferSize <= 0 {
		r.bufferSize = DefaultBufferSize
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run performs one exchange. Socket errors are reported to the notifier and
// absorbed; Run never fails.
func (r *Runner) Run() {
	_, _ = r.Exchange()
}

// Exchange performs one exchange, emitting the same notices as Run, and also
// returns the decoded reply or the *SocketError that ended it. The connection
// is closed before Exchange returns on every path.
func (r *Runner) Exchange() (string, error) {
	addr := r.endpoint.Address()
	runLog := r.log.With().Str("run_id", uuid.NewString()).Str("addr", addr).Logger()

	notifier := r.notifier
	if notifier == nil {
		notifier = NewLogNotifier(runLog)
	}

	r.conn = nil
	defer r.release(notifier, runLog)

	conn, err := r.dial("tcp", addr)
	if err != nil {
		return "", fail(notifier, "connect", addr, err)
	}
	r.conn = shared.NewTrackedConn(conn)
	notifier.Connected(r.endpoint)

	if err := writeFull(r.conn, r.payload); err != nil {
		return "", fail(notifier, "send", addr, err)
	}
	notifier.Sent(string(r.payload))

	// One read only: whatever the first segment carries is the reply.
	buf := make([]byte, r.bufferSize)
	n, err := r.conn.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fail(notifier, "receive", addr, err)
	}
	if n == 0 {
		runLog.Debug().Msg("peer closed without replying")
	}

	reply := decodeUTF8(buf[:n])
	notifier.Received(reply)
	return reply, nil
}

// Conn returns the connection handle of the last exchange, or nil when the
// connect step failed.
func (r *Runner) Conn() *shared.TrackedConn {
	return r.conn
}

func (r *Runner) release(notifier Notifier, runLog zerolog.Logger) {
	if r.conn != nil {
		if err := r.conn.Close(); err != nil {
			runLog.Debug().Err(err).Msg("close returned an error")
		}
		runLog.Debug().
			Uint64("bytes_sent", r.conn.BytesSent()).
			Uint64("bytes_received", r.conn.BytesReceived()).
			Msg("connection released")
	}
	notifier.Closed()
}

func fail(notifier Notifier, op, addr string, err error) error {
	serr := &SocketError{Op: op, Addr: addr, Err: err}
	notifier.SocketError(serr)
	return serr
}

func writeFull(w io.Writer, p []byte) error {
	n, err := w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return err
}

// decodeUTF8 replaces ill-formed sequences with U+FFFD.
func decodeUTF8(b []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
