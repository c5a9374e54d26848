package client

import (
	"github.com/rs/zerolog"

	"gx_client/internal/shared/types"
)

// Notifier receives the notices emitted while a Runner works through one
// exchange. On success the order is Connected, Sent, Received, Closed; on
// failure it is SocketError then Closed.
type Notifier interface {
	Connected(ep types.Endpoint)
	Sent(message string)
	Received(text string)
	SocketError(err error)
	Closed()
}

// LogNotifier writes notices through a zerolog logger. The runner gives each
// exchange its own LogNotifier so every notice carries that run's run_id.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(l zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: l}
}

func (n *LogNotifier) Connected(ep types.Endpoint) {
	n.log.Info().Str("host", ep.Host).Int("port", ep.Port).
		Msgf("Connected to server %s on port %d", ep.Host, ep.Port)
}

func (n *LogNotifier) Sent(message string) {
	n.log.Info().Int("bytes", len(message)).Msgf("Sent: %s", message)
}

func (n *LogNotifier) Received(text string) {
	n.log.Info().Int("bytes", len(text)).Msgf("Received from server: %s", text)
}

func (n *LogNotifier) SocketError(err error) {
	n.log.Error().Msgf("Socket error: %v", err)
}

func (n *LogNotifier) Closed() {
	n.log.Info().Msg("Connection closed")
}
