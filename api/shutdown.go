// File: api/shutdown.go
// Package api defines the socket shutdown-mode contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// ShutdownMode selects which direction of a duplex socket to shut down.
// Values mirror the platform socket API (SHUT_RD / SHUT_WR / SHUT_RDWR)
// so they can be passed straight to the native shutdown call.
type ShutdownMode int
