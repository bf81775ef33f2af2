//go:build windows
// +build windows

// File: resolv/pair_windows.go
// Package resolv
// Author: momentics <momentics@gmail.com>
//
// Windows has no AF_UNIX socketpair primitive usable through the runtime
// poller; SocketPair always takes the loopback emulation path.

package resolv

import (
	"net"

	"github.com/momentics/hioload-sock/api"
)

func nativePair() (net.Conn, net.Conn, error) {
	return nil, nil, api.ErrNotSupported
}
