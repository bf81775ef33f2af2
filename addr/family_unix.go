//go:build !windows
// +build !windows

// File: addr/family_unix.go
// Package addr
// Author: momentics <momentics@gmail.com>

package addr

import "golang.org/x/sys/unix"

// Address families, pinned from the platform at compile time.
const (
	AFInet  = unix.AF_INET
	AFInet6 = unix.AF_INET6
)
