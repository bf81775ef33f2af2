// File: sock/tcp.go
// Package sock
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Local TCP stream handle.

package sock

import (
	"net"

	"github.com/momentics/hioload-sock/api"
)

// TCP wraps a connected stream socket.
type TCP struct {
	Base
	conn net.Conn
}

// NewTCP builds a handle around an established connection, seeding the
// mixin from params and back-filling the addresses the OS actually chose.
func NewTCP(conn net.Conn, p *api.Params) *TCP {
	s := &TCP{conn: conn}
	s.Init(p)
	s.setLocalAddr(conn.LocalAddr())
	s.setPeerAddr(conn.RemoteAddr())
	return s
}

// Type implements api.Socket.
func (s *TCP) Type() (string, error) { return "tcp", nil }

func (s *TCP) Read(b []byte) (int, error)  { return s.conn.Read(b) }
func (s *TCP) Write(b []byte) (int, error) { return s.conn.Write(b) }
func (s *TCP) Close() error                { return s.conn.Close() }

// Conn exposes the underlying connection for callers that need deadlines
// or option tweaks.
func (s *TCP) Conn() net.Conn { return s.conn }

// Shutdown half-closes the stream in the given direction. Only the native
// TCP connection type supports directional shutdown.
func (s *TCP) Shutdown(mode api.ShutdownMode) error {
	tc, ok := s.conn.(*net.TCPConn)
	if !ok {
		if mode == api.ShutBoth {
			return s.conn.Close()
		}
		return api.ErrNotSupported
	}
	switch mode {
	case api.ShutRead:
		return tc.CloseRead()
	case api.ShutWrite:
		return tc.CloseWrite()
	case api.ShutBoth:
		return tc.Close()
	default:
		return api.ErrNotSupported
	}
}
