// File: api/router.go
// Package api
// Author: momentics <momentics@gmail.com>

package api

// Router selects the channel that should materialize sockets toward a
// destination host. Implementations own the routing table and must be
// safe for concurrent reads; the factory consults a Router only when
// Params carries no channel. A nil result means no route.
type Router interface {
	Route(peerHost string) Channel
}
