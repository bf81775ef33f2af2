// File: sock/options.go
// Package sock defines creation options and their normalization.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package sock

import (
	"fmt"
	"time"

	"github.com/momentics/hioload-sock/api"
)

// Options is the declarative configuration a caller hands to the factory.
// Zero values mean "default": Proto defaults to tcp, Context to an empty
// context, Channel to whatever the factory's router resolves.
type Options struct {
	PeerHost  string
	PeerPort  int
	LocalHost string
	LocalPort int
	Proto     string
	Server    bool
	Timeout   time.Duration
	Channel   api.Channel
	Context   map[string]any
}

// Normalize validates Options and produces the read-only Params record.
// Normalization happens exactly once per creation call; no layer below
// mutates the result.
func Normalize(o Options) (*api.Params, error) {
	proto := api.Proto(o.Proto)
	switch proto {
	case "":
		proto = api.ProtoTCP
	case api.ProtoTCP, api.ProtoUDP:
	default:
		return nil, fmt.Errorf("proto %q: %w", o.Proto, api.ErrInvalidArgument)
	}
	if o.PeerPort < 0 || o.PeerPort > 0xFFFF {
		return nil, fmt.Errorf("peer port %d: %w", o.PeerPort, api.ErrInvalidArgument)
	}
	if o.LocalPort < 0 || o.LocalPort > 0xFFFF {
		return nil, fmt.Errorf("local port %d: %w", o.LocalPort, api.ErrInvalidArgument)
	}
	ctx := api.NewContext()
	if o.Context != nil {
		ctx = api.ContextFrom(o.Context)
	}
	return &api.Params{
		PeerHost:  o.PeerHost,
		PeerPort:  o.PeerPort,
		LocalHost: o.LocalHost,
		LocalPort: o.LocalPort,
		Proto:     proto,
		Server:    o.Server,
		Timeout:   o.Timeout,
		Channel:   o.Channel,
		Context:   ctx,
	}, nil
}
