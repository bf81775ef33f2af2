//go:build windows
// +build windows

// File: addr/family_windows.go
// Package addr
// Author: momentics <momentics@gmail.com>

package addr

import "golang.org/x/sys/windows"

// Address families, pinned from the platform at compile time.
const (
	AFInet  = windows.AF_INET
	AFInet6 = windows.AF_INET6
)
