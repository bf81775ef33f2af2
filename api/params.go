// File: api/params.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Declarative socket-creation parameters shared between factories and
// channels.

package api

import "time"

// Proto selects the transport protocol of a requested socket.
type Proto string

const (
	ProtoTCP Proto = "tcp"
	ProtoUDP Proto = "udp"
)

// Params describes one socket-creation request.
//
// A Params value is normalized exactly once by the factory and is treated
// as read-only by every layer below it; channels must not mutate it.
// Proto and Server together fully determine which concrete socket variant
// a channel produces.
type Params struct {
	// PeerHost/PeerPort name the remote endpoint for client sockets.
	PeerHost string
	PeerPort int

	// LocalHost/LocalPort name the local binding. Empty LocalHost means
	// the wildcard address.
	LocalHost string
	LocalPort int

	// Proto is tcp or udp.
	Proto Proto

	// Server requests a listening socket instead of an outbound one.
	Server bool

	// Timeout bounds connection establishment. Zero means no bound.
	// The layer never retries after a timeout.
	Timeout time.Duration

	// Channel is the capability that will materialize the socket. It is
	// resolved before creation runs; a nil Channel at creation time is a
	// routing failure.
	Channel Channel

	// Context carries opaque caller metadata into the resulting socket.
	Context Context
}

// TCP reports whether the request is for a TCP socket.
func (p *Params) TCP() bool { return p.Proto == ProtoTCP }

// UDP reports whether the request is for a UDP socket.
func (p *Params) UDP() bool { return p.Proto == ProtoUDP }
