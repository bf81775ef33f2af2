// File: api/socket.go
// Package api
// Author: momentics <momentics@gmail.com>
//
// Defines the socket handle capability shared by every concrete socket
// variant, local or relayed.

package api

// Socket is the handle a Channel returns for a satisfied request.
//
// Address accessors are read-only after construction. Concrete variants
// (stream client, stream listener, datagram) additionally expose their
// native I/O surface; this capability covers only what every variant has.
type Socket interface {
	// PeerHost/PeerPort describe the remote endpoint ("" / 0 for
	// unconnected or listening sockets).
	PeerHost() string
	PeerPort() int

	// LocalHost/LocalPort describe the bound local endpoint.
	LocalHost() string
	LocalPort() int

	// Context returns the caller metadata carried in from Params.
	Context() Context

	// Type reports the transport name of the concrete variant ("tcp",
	// "udp"). The base capability fails with ErrNotSupported.
	Type() (string, error)

	// Close releases the underlying descriptor.
	Close() error
}
