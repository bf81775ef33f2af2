// File: fake/socket.go
// Package fake
// Author: momentics <momentics@gmail.com>

package fake

import (
	"io"
	"net"
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-sock/api"
	"github.com/momentics/hioload-sock/sock"
)

// Socket is an in-memory duplex socket handle. Writes land in the peer's
// FIFO inbox; reads drain it in order, blocking until data arrives or the
// peer closes.
type Socket struct {
	sock.Base

	mu      *sync.Mutex
	cond    *sync.Cond
	inbox   *queue.Queue
	partial []byte
	closed  bool
	peer    *Socket
	typ     string
}

// NewSocketPair returns two connected fake sockets seeded from params.
func NewSocketPair(p *api.Params) (*Socket, *Socket) {
	mu := &sync.Mutex{}
	typ := string(api.ProtoTCP)
	if p != nil && p.Proto != "" {
		typ = string(p.Proto)
	}
	a := &Socket{mu: mu, inbox: queue.New(), typ: typ}
	b := &Socket{mu: mu, inbox: queue.New(), typ: typ}
	a.cond = sync.NewCond(mu)
	b.cond = sync.NewCond(mu)
	a.peer, b.peer = b, a
	a.Init(p)
	b.Init(p)
	return a, b
}

// Type implements api.Socket.
func (s *Socket) Type() (string, error) { return s.typ, nil }

// Write queues a copy of b into the peer's inbox.
func (s *Socket) Write(b []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, net.ErrClosed
	}
	if s.peer.closed {
		return 0, io.ErrClosedPipe
	}
	data := make([]byte, len(b))
	copy(data, b)
	s.peer.inbox.Add(data)
	s.peer.cond.Signal()
	return len(b), nil
}

// Read drains queued data in FIFO order, blocking while the inbox is
// empty and both ends are open. A closed peer yields io.EOF once the
// inbox is drained.
func (s *Socket) Read(b []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.partial) == 0 && s.inbox.Length() == 0 && !s.closed && !s.peer.closed {
		s.cond.Wait()
	}
	if s.closed {
		return 0, net.ErrClosed
	}
	if len(s.partial) == 0 {
		if s.inbox.Length() == 0 {
			return 0, io.EOF
		}
		s.partial = s.inbox.Remove().([]byte)
	}
	n := copy(b, s.partial)
	s.partial = s.partial[n:]
	return n, nil
}

// Pending reports how many queued messages the inbox holds.
func (s *Socket) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.inbox.Length()
	if len(s.partial) > 0 {
		n++
	}
	return n
}

// Close implements api.Socket. Both ends' readers are woken.
func (s *Socket) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.cond.Broadcast()
	s.peer.cond.Broadcast()
	return nil
}

var _ api.Socket = (*Socket)(nil)
