// File: channel/switchboard.go
// Package channel
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Switchboard is the routing table that selects a channel for a
// destination: ordered CIDR routes with longest-prefix match and an
// optional default. Mutation is external and rare; reads are concurrent
// and lock-shared, matching how the factory consults it per creation.

package channel

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/momentics/hioload-sock/addr"
	"github.com/momentics/hioload-sock/api"
)

type route struct {
	cidr   string
	base   uint32
	mask   uint32
	prefix int
	ch     api.Channel
}

// Switchboard maps destination subnets to channels.
type Switchboard struct {
	mu     sync.RWMutex
	routes []route
	def    api.Channel
}

var _ api.Router = (*Switchboard)(nil)

// NewSwitchboard creates a routing table with a default channel (nil for
// no default).
func NewSwitchboard(def api.Channel) *Switchboard {
	return &Switchboard{def: def}
}

// AddRoute binds a subnet to a channel. Re-adding an existing CIDR
// replaces its channel.
func (sb *Switchboard) AddRoute(cidr string, ch api.Channel) error {
	base, mask, prefix, err := parseRoute(cidr)
	if err != nil {
		return err
	}
	sb.mu.Lock()
	defer sb.mu.Unlock()
	for i := range sb.routes {
		if sb.routes[i].cidr == cidr {
			sb.routes[i].ch = ch
			return nil
		}
	}
	sb.routes = append(sb.routes, route{cidr: cidr, base: base, mask: mask, prefix: prefix, ch: ch})
	return nil
}

// RemoveRoute deletes a subnet binding, reporting whether it existed.
func (sb *Switchboard) RemoveRoute(cidr string) bool {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	for i := range sb.routes {
		if sb.routes[i].cidr == cidr {
			sb.routes = append(sb.routes[:i], sb.routes[i+1:]...)
			return true
		}
	}
	return false
}

// Flush removes every route, keeping the default channel.
func (sb *Switchboard) Flush() {
	sb.mu.Lock()
	sb.routes = nil
	sb.mu.Unlock()
}

// SetDefault replaces the default channel.
func (sb *Switchboard) SetDefault(ch api.Channel) {
	sb.mu.Lock()
	sb.def = ch
	sb.mu.Unlock()
}

// Routes lists the bound CIDRs, for inspection probes.
func (sb *Switchboard) Routes() []string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	out := make([]string, len(sb.routes))
	for i, r := range sb.routes {
		out[i] = r.cidr
	}
	return out
}

// Route implements api.Router: longest-prefix match over the bound
// subnets, falling back to the default channel. IPv4 only — an IPv6 or
// unresolvable destination gets the default.
func (sb *Switchboard) Route(peerHost string) api.Channel {
	if peerHost == "" {
		sb.mu.RLock()
		defer sb.mu.RUnlock()
		return sb.def
	}
	// Resolution may block on DNS; keep it outside the lock.
	v, err := addr.Atoi(peerHost)
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	if err != nil {
		return sb.def
	}
	best := -1
	ch := sb.def
	for _, r := range sb.routes {
		if v&r.mask == r.base && r.prefix > best {
			best = r.prefix
			ch = r.ch
		}
	}
	return ch
}

func parseRoute(cidr string) (base, mask uint32, prefix int, err error) {
	addrPart, bitsPart, ok := strings.Cut(cidr, "/")
	if !ok {
		return 0, 0, 0, fmt.Errorf("route %q missing prefix: %w", cidr, api.ErrInvalidAddressFormat)
	}
	prefix, err = strconv.Atoi(bitsPart)
	if err != nil || prefix < 0 || prefix > 32 {
		return 0, 0, 0, fmt.Errorf("route %q prefix: %w", cidr, api.ErrInvalidAddressFormat)
	}
	base, err = addr.Atoi(addrPart)
	if err != nil {
		return 0, 0, 0, err
	}
	mask = uint32(^uint64(0) << (32 - uint(prefix)))
	base &= mask
	return base, mask, prefix, nil
}
