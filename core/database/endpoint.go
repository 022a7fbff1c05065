package database

import (
	"net"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const (
	unixScheme = "unix://"
	pipeScheme = "pipe://"
	tcpScheme  = "tcp://"

	// pipeNet is the network name the named-pipe dialer is registered under.
	pipeNet = "pipe"
)

func init() {
	mysql.RegisterDialContext(pipeNet, dialPipe)
}

// Endpoint describes where the engine lives.
//
// The driver cannot take "unix://path" or "pipe://name" in its address: a '/' in the
// host is read as the start of a database name, and a scheme prefix is otherwise
// dialed as TCP. So for sockets and pipes HostName is reduced to a loopback
// placeholder and the real path travels in LocalSocket or Pipe.
type Endpoint struct {
	// HostName is the engine-facing host.
	HostName string
	// LocalSocket is the unix socket path, if any.
	LocalSocket string
	// Pipe is the named pipe, if any.
	Pipe string
}

// ParseHost splits a configured host string into an Endpoint.
// TCP hosts pass through unmodified.
func ParseHost(host string) Endpoint {
	switch {
	case strings.HasPrefix(host, unixScheme):
		return Endpoint{
			HostName:    unixScheme + "localhost",
			LocalSocket: strings.TrimPrefix(host, unixScheme),
		}
	case strings.HasPrefix(host, pipeScheme):
		return Endpoint{
			HostName: pipeScheme + "localhost",
			Pipe:     strings.TrimPrefix(host, pipeScheme),
		}
	default:
		return Endpoint{HostName: host}
	}
}

// IsLocal reports whether the endpoint uses a unix socket or a named pipe.
func (e Endpoint) IsLocal() bool {
	return e.LocalSocket != "" || e.Pipe != ""
}

// Network returns the driver network and address for the endpoint.
// defaultPort is appended to TCP hosts that carry no port.
func (e Endpoint) Network(defaultPort int) (string, string) {
	if e.LocalSocket != "" {
		return "unix", e.LocalSocket
	}
	if e.Pipe != "" {
		return pipeNet, e.Pipe
	}

	addr := strings.TrimPrefix(e.HostName, tcpScheme)
	// "host:port/schema" style strings carry a database name we select separately.
	if i := strings.Index(addr, "/"); i >= 0 {
		addr = addr[:i]
	}
	if addr == "" {
		addr = "localhost"
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		if defaultPort <= 0 {
			defaultPort = 3306
		}
		addr = net.JoinHostPort(strings.Trim(addr, "[]"), strconv.Itoa(defaultPort))
	}
	return "tcp", addr
}
