//go:build !windows
// +build !windows

// File: resolv/pair_unix.go
// Package resolv
// Author: momentics <momentics@gmail.com>
//
// Native connected pair via AF_UNIX socketpair.

package resolv

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/sys/unix"
)

func nativePair() (net.Conn, net.Conn, error) {
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("socketpair: %w", err)
	}
	unix.CloseOnExec(fds[0])
	unix.CloseOnExec(fds[1])

	a, err := fdConn(fds[0], "socketpair-0")
	if err != nil {
		unix.Close(fds[1])
		return nil, nil, err
	}
	b, err := fdConn(fds[1], "socketpair-1")
	if err != nil {
		a.Close()
		return nil, nil, err
	}
	return a, b, nil
}

// fdConn hands the descriptor to the runtime poller. net.FileConn dups the
// fd, so the original is closed here either way.
func fdConn(fd int, name string) (net.Conn, error) {
	f := os.NewFile(uintptr(fd), name)
	defer f.Close()
	c, err := net.FileConn(f)
	if err != nil {
		return nil, fmt.Errorf("fileconn %s: %w", name, err)
	}
	return c, nil
}
