package types

import (
	"net"
	"strconv"
)

// Endpoint identifies the remote peer. It is not validated here; whatever
// the dialer rejects surfaces as a connect error.
type Endpoint struct {
	Host string
	Port int
}

// Address returns the "host:port" form accepted by net.Dial.
func (e Endpoint) Address() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

func (e Endpoint) String() string {
	return e.Address()
}
