//go:build windows
// +build windows

// File: api/shutdown_windows.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// WinSock SD_RECEIVE / SD_SEND / SD_BOTH. x/sys/windows exports no names
// for these, so the literals are pinned here; they equal the unix values.
const (
	ShutRead  ShutdownMode = 0
	ShutWrite ShutdownMode = 1
	ShutBoth  ShutdownMode = 2
)
