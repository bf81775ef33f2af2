// File: sock/tcp_server.go
// Package sock
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Local TCP listener handle.

package sock

import (
	"net"

	"github.com/momentics/hioload-sock/api"
)

// TCPServer wraps a listening stream socket.
type TCPServer struct {
	Base
	ln net.Listener
}

// NewTCPServer builds a handle around a bound listener. The local address
// is back-filled from the OS so an ephemeral bind reports its real port.
func NewTCPServer(ln net.Listener, p *api.Params) *TCPServer {
	s := &TCPServer{ln: ln}
	s.Init(p)
	s.setLocalAddr(ln.Addr())
	return s
}

// Type implements api.Socket.
func (s *TCPServer) Type() (string, error) { return "tcp", nil }

// Accept waits for one inbound connection and wraps it as a TCP handle.
// The caller context is cloned into every accepted socket.
func (s *TCPServer) Accept() (*TCP, error) {
	conn, err := s.ln.Accept()
	if err != nil {
		return nil, err
	}
	p := &api.Params{
		Proto:   api.ProtoTCP,
		Context: s.Context().Clone(),
	}
	return NewTCP(conn, p), nil
}

func (s *TCPServer) Close() error { return s.ln.Close() }

// Listener exposes the underlying listener.
func (s *TCPServer) Listener() net.Listener { return s.ln }
