// File: sock/base.go
// Package sock
// Author: momentics <momentics@gmail.com>
//
// Base capability mixin shared by every concrete socket variant.

package sock

import (
	"fmt"
	"net"
	"strconv"

	"github.com/momentics/hioload-sock/addr"
	"github.com/momentics/hioload-sock/api"
)

// Base carries the read-only address fields and context of a socket
// handle. Fields are settable only during construction: Init seeds them
// from Params, then the concrete variant back-fills what the OS reports.
type Base struct {
	peerHost  string
	peerPort  int
	localHost string
	localPort int
	ctx       api.Context
}

// Init seeds the mixin from creation parameters.
func (b *Base) Init(p *api.Params) {
	if p == nil {
		b.ctx = api.NewContext()
		return
	}
	b.peerHost = p.PeerHost
	b.peerPort = p.PeerPort
	b.localHost = p.LocalHost
	b.localPort = p.LocalPort
	b.ctx = p.Context
	if b.ctx == nil {
		b.ctx = api.NewContext()
	}
}

func (b *Base) PeerHost() string    { return b.peerHost }
func (b *Base) PeerPort() int       { return b.peerPort }
func (b *Base) LocalHost() string   { return b.localHost }
func (b *Base) LocalPort() int      { return b.localPort }
func (b *Base) Context() api.Context { return b.ctx }

// Type on the base capability always fails: every concrete variant must
// report its own transport name.
func (b *Base) Type() (string, error) {
	return "", api.ErrNotSupported
}

// LoadLocalSockaddr decodes a raw getsockname result into the local
// address fields. Relayed variants that only see sockaddr bytes use this
// instead of net.Addr back-fill.
func (b *Base) LoadLocalSockaddr(sa []byte) error {
	_, host, port, err := addr.FromSockaddr(sa)
	if err != nil {
		return fmt.Errorf("getsockname: %w", err)
	}
	b.localHost, b.localPort = host, port
	return nil
}

// LoadPeerSockaddr decodes a raw getpeername result into the peer address
// fields.
func (b *Base) LoadPeerSockaddr(sa []byte) error {
	_, host, port, err := addr.FromSockaddr(sa)
	if err != nil {
		return fmt.Errorf("getpeername: %w", err)
	}
	b.peerHost, b.peerPort = host, port
	return nil
}

// setLocalAddr / setPeerAddr back-fill from the runtime's net.Addr view.
func (b *Base) setLocalAddr(a net.Addr) {
	if a == nil {
		return
	}
	b.localHost, b.localPort = hostPort(a)
}

func (b *Base) setPeerAddr(a net.Addr) {
	if a == nil {
		return
	}
	b.peerHost, b.peerPort = hostPort(a)
}

func hostPort(a net.Addr) (string, int) {
	switch v := a.(type) {
	case *net.TCPAddr:
		return v.IP.String(), v.Port
	case *net.UDPAddr:
		return v.IP.String(), v.Port
	}
	host, portStr, err := net.SplitHostPort(a.String())
	if err != nil {
		return a.String(), 0
	}
	port, _ := strconv.Atoi(portStr)
	return host, port
}
