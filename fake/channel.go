// File: fake/channel.go
// Package fake
// Author: momentics <momentics@gmail.com>

package fake

import (
	"sync"

	"github.com/momentics/hioload-sock/api"
)

// Channel is a fake api.Channel for testing dispatch. It records every
// Create call, optionally fails with a configured error, and otherwise
// hands out one end of an in-memory socket pair.
type Channel struct {
	mu        sync.Mutex
	createErr error
	calls     []*api.Params
	peers     []*Socket
}

// NewChannel creates a fake channel with default settings.
func NewChannel() *Channel {
	return &Channel{}
}

var _ api.Channel = (*Channel)(nil)

// Create implements api.Channel.
func (c *Channel) Create(p *api.Params) (api.Socket, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, p)
	if c.createErr != nil {
		return nil, c.createErr
	}
	local, remote := NewSocketPair(p)
	c.peers = append(c.peers, remote)
	return local, nil
}

// SetCreateError configures the channel to fail every Create with err.
func (c *Channel) SetCreateError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.createErr = err
}

// Calls returns the recorded creation parameters in order.
func (c *Channel) Calls() []*api.Params {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*api.Params, len(c.calls))
	copy(out, c.calls)
	return out
}

// LastPeer returns the remote end of the most recent socket pair, nil if
// none.
func (c *Channel) LastPeer() *Socket {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.peers) == 0 {
		return nil
	}
	return c.peers[len(c.peers)-1]
}
