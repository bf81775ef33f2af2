// File: sock/udp.go
// Package sock
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Local UDP datagram handle, connected or unconnected.

package sock

import (
	"fmt"
	"net"

	"github.com/momentics/hioload-sock/addr"
	"github.com/momentics/hioload-sock/api"
)

// UDP wraps a datagram socket. A connected handle uses Read/Write toward
// its fixed peer; an unconnected one uses SendTo/RecvFrom.
type UDP struct {
	Base
	conn      *net.UDPConn
	connected bool
}

// NewUDP builds a handle around a bound datagram socket.
func NewUDP(conn *net.UDPConn, connected bool, p *api.Params) *UDP {
	s := &UDP{conn: conn, connected: connected}
	s.Init(p)
	s.setLocalAddr(conn.LocalAddr())
	if connected {
		s.setPeerAddr(conn.RemoteAddr())
	}
	return s
}

// Type implements api.Socket.
func (s *UDP) Type() (string, error) { return "udp", nil }

// Connected reports whether the socket has a fixed peer.
func (s *UDP) Connected() bool { return s.connected }

func (s *UDP) Read(b []byte) (int, error) { return s.conn.Read(b) }

func (s *UDP) Write(b []byte) (int, error) {
	if !s.connected {
		return 0, fmt.Errorf("write on unconnected udp socket: %w", api.ErrNotSupported)
	}
	return s.conn.Write(b)
}

// SendTo transmits one datagram to host:port, resolving host first with
// the literal short-circuit.
func (s *UDP) SendTo(b []byte, host string, port int) (int, error) {
	a, err := addr.GetAddress(host)
	if err != nil {
		return 0, err
	}
	ip := net.ParseIP(a)
	if ip == nil {
		return 0, fmt.Errorf("%q: %w", a, api.ErrInvalidAddressFormat)
	}
	return s.conn.WriteToUDP(b, &net.UDPAddr{IP: ip, Port: port})
}

// RecvFrom receives one datagram and reports its origin.
func (s *UDP) RecvFrom(b []byte) (n int, host string, port int, err error) {
	n, ua, err := s.conn.ReadFromUDP(b)
	if err != nil {
		return n, "", 0, err
	}
	return n, ua.IP.String(), ua.Port, nil
}

func (s *UDP) Close() error { return s.conn.Close() }

// Conn exposes the underlying datagram connection.
func (s *UDP) Conn() *net.UDPConn { return s.conn }
