// File: channel/local.go
// Package channel
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Local is the default channel: it opens sockets directly on the host
// network stack. Proto and Server in the parameters fully determine the
// concrete variant; transport errors (refused, timeout, address in use,
// unreachable) propagate to the caller unchanged, with no retry.

package channel

import (
	"fmt"
	"net"
	"strconv"

	"go.uber.org/zap"

	"github.com/momentics/hioload-sock/addr"
	"github.com/momentics/hioload-sock/api"
	"github.com/momentics/hioload-sock/sock"
)

// Local materializes sockets on the local stack.
type Local struct {
	log *zap.Logger
}

// LocalOption customizes Local initialization.
type LocalOption func(*Local)

// WithLogger attaches a logger; default is a nop logger.
func WithLogger(log *zap.Logger) LocalOption {
	return func(l *Local) { l.log = log }
}

// NewLocal creates the default local channel.
func NewLocal(opts ...LocalOption) *Local {
	l := &Local{log: zap.NewNop()}
	for _, o := range opts {
		o(l)
	}
	return l
}

var _ api.Channel = (*Local)(nil)

// Create implements api.Channel.
func (l *Local) Create(p *api.Params) (api.Socket, error) {
	switch {
	case p.TCP() && p.Server:
		return l.listenTCP(p)
	case p.TCP():
		return l.dialTCP(p)
	case p.UDP():
		return l.openUDP(p)
	default:
		return nil, fmt.Errorf("proto %q: %w", p.Proto, api.ErrInvalidArgument)
	}
}

func (l *Local) dialTCP(p *api.Params) (api.Socket, error) {
	peer, err := addr.GetAddress(p.PeerHost)
	if err != nil {
		return nil, err
	}
	d := net.Dialer{Timeout: p.Timeout}
	if p.LocalHost != "" || p.LocalPort != 0 {
		ip, err := localIP(p.LocalHost)
		if err != nil {
			return nil, err
		}
		d.LocalAddr = &net.TCPAddr{IP: ip, Port: p.LocalPort}
	}
	l.log.Debug("local tcp connect",
		zap.String("peer", peer), zap.Int("port", p.PeerPort))
	conn, err := d.Dial("tcp", net.JoinHostPort(peer, strconv.Itoa(p.PeerPort)))
	if err != nil {
		return nil, err
	}
	return sock.NewTCP(conn, p), nil
}

func (l *Local) listenTCP(p *api.Params) (api.Socket, error) {
	laddr := net.JoinHostPort(p.LocalHost, strconv.Itoa(p.LocalPort))
	l.log.Debug("local tcp listen", zap.String("laddr", laddr))
	ln, err := net.Listen("tcp", laddr)
	if err != nil {
		return nil, err
	}
	return sock.NewTCPServer(ln, p), nil
}

func (l *Local) openUDP(p *api.Params) (api.Socket, error) {
	lip, err := localIP(p.LocalHost)
	if err != nil {
		return nil, err
	}
	laddr := &net.UDPAddr{IP: lip, Port: p.LocalPort}

	if p.PeerHost == "" {
		l.log.Debug("local udp bind", zap.String("laddr", laddr.String()))
		conn, err := net.ListenUDP("udp", laddr)
		if err != nil {
			return nil, err
		}
		return sock.NewUDP(conn, false, p), nil
	}

	peer, err := addr.GetAddress(p.PeerHost)
	if err != nil {
		return nil, err
	}
	pip := net.ParseIP(peer)
	if pip == nil {
		return nil, fmt.Errorf("%q: %w", peer, api.ErrInvalidAddressFormat)
	}
	raddr := &net.UDPAddr{IP: pip, Port: p.PeerPort}
	l.log.Debug("local udp connect", zap.String("raddr", raddr.String()))
	conn, err := net.DialUDP("udp", laddr, raddr)
	if err != nil {
		return nil, err
	}
	return sock.NewUDP(conn, true, p), nil
}

// localIP resolves an optional local binding host; empty means wildcard.
func localIP(host string) (net.IP, error) {
	if host == "" {
		return nil, nil
	}
	a, err := addr.GetAddress(host)
	if err != nil {
		return nil, err
	}
	ip := net.ParseIP(a)
	if ip == nil {
		return nil, fmt.Errorf("%q: %w", a, api.ErrInvalidAddressFormat)
	}
	return ip, nil
}
