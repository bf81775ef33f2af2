// File: api/channel.go
// Package api
// Author: momentics <momentics@gmail.com>
//
// Defines the communication channel abstraction that decouples "what
// socket is wanted" from "how bytes reach the wire".

package api

// Channel materializes sockets from declarative parameters.
//
// The default implementation opens sockets directly on the local network
// stack. Relay or pivot implementations may instead forward the request
// through an already-established transport; any component offering Create
// qualifies. Selection among channels for a destination is owned by the
// caller (typically a routing table keyed on subnet) — Params arrives here
// with its Channel already resolved.
//
// Create either returns a live socket or the underlying transport error
// unchanged. Channels never retry.
type Channel interface {
	Create(params *Params) (Socket, error)
}

// ChannelFunc adapts a plain function to the Channel interface.
type ChannelFunc func(params *Params) (Socket, error)

// Create implements Channel.
func (f ChannelFunc) Create(params *Params) (Socket, error) {
	return f(params)
}
