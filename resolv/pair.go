// File: resolv/pair.go
// Package resolv
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package resolv

import (
	"fmt"
	"net"
)

// SocketPair returns two connected in-process stream endpoints for duplex
// use. It prefers the native local-pair primitive (AF_UNIX socketpair);
// where that is unavailable it falls back to a loopback TCP emulation.
func SocketPair() (net.Conn, net.Conn, error) {
	if a, b, err := nativePair(); err == nil {
		return a, b, nil
	}
	return loopbackPair()
}

// loopbackPair emulates a socket pair: start a loopback listener, connect
// one client, accept exactly once, close the listener, keep the two ends.
//
// Between listener creation and the single expected accept a third party
// could race the intended connection. The window is accepted for this
// emulation path only; the native path has no such window.
func loopbackPair() (net.Conn, net.Conn, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, nil, fmt.Errorf("loopback listen: %w", err)
	}
	defer l.Close()

	type accepted struct {
		conn net.Conn
		err  error
	}
	acceptCh := make(chan accepted, 1)
	go func() {
		c, err := l.Accept()
		acceptCh <- accepted{c, err}
	}()

	client, err := net.Dial("tcp", l.Addr().String())
	if err != nil {
		return nil, nil, fmt.Errorf("loopback connect: %w", err)
	}
	srv := <-acceptCh
	if srv.err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("loopback accept: %w", srv.err)
	}
	return client, srv.conn, nil
}
