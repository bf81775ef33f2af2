//go:build !windows
// +build !windows

// File: api/shutdown_unix.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "golang.org/x/sys/unix"

// Shutdown modes, taken from the platform constants at compile time.
const (
	ShutRead  ShutdownMode = unix.SHUT_RD
	ShutWrite ShutdownMode = unix.SHUT_WR
	ShutBoth  ShutdownMode = unix.SHUT_RDWR
)
