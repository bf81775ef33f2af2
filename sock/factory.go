// File: sock/factory.go
// Package sock
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The public socket-creation entry point. Pure dispatch: the factory
// normalizes options, resolves a channel, and delegates. It never opens a
// socket itself and holds no mutable state, so one factory is safe for
// any number of concurrent callers.

package sock

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/momentics/hioload-sock/api"
	"github.com/momentics/hioload-sock/control"
)

// Factory dispatches creation requests to channels.
type Factory struct {
	log     *zap.Logger
	metrics *control.MetricsRegistry
	router  api.Router
	def     api.Channel
}

// FactoryOption customizes factory initialization.
type FactoryOption func(*Factory)

// WithLogger attaches a logger for dispatch debugging. Default is a nop
// logger.
func WithLogger(log *zap.Logger) FactoryOption {
	return func(f *Factory) { f.log = log }
}

// WithMetrics attaches a counter registry; the factory counts successful
// creations per variant under "sock.create.*".
func WithMetrics(mr *control.MetricsRegistry) FactoryOption {
	return func(f *Factory) { f.metrics = mr }
}

// WithRouter attaches the routing table consulted when options carry no
// channel.
func WithRouter(r api.Router) FactoryOption {
	return func(f *Factory) { f.router = r }
}

// WithDefaultChannel sets the channel of last resort after router lookup.
func WithDefaultChannel(ch api.Channel) FactoryOption {
	return func(f *Factory) { f.def = ch }
}

// NewFactory creates a socket factory.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{log: zap.NewNop()}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Create normalizes options and dispatches to the resolved channel.
func (f *Factory) Create(o Options) (api.Socket, error) {
	p, err := Normalize(o)
	if err != nil {
		return nil, err
	}
	return f.CreateParam(p)
}

// CreateTCP forces Proto=tcp before delegating.
func (f *Factory) CreateTCP(o Options) (api.Socket, error) {
	o.Proto = string(api.ProtoTCP)
	return f.Create(o)
}

// CreateTCPServer forces Proto=tcp and Server before delegating.
func (f *Factory) CreateTCPServer(o Options) (api.Socket, error) {
	o.Proto = string(api.ProtoTCP)
	o.Server = true
	return f.Create(o)
}

// CreateUDP forces Proto=udp before delegating.
func (f *Factory) CreateUDP(o Options) (api.Socket, error) {
	o.Proto = string(api.ProtoUDP)
	return f.Create(o)
}

// CreateParam dispatches an already-normalized request. Channel
// resolution order: the channel carried in params, then the router, then
// the default channel; if none applies the request fails with
// api.ErrNoRoute. Whatever the channel returns — socket or transport
// error — propagates unchanged.
func (f *Factory) CreateParam(p *api.Params) (api.Socket, error) {
	if p.Channel == nil {
		if f.router != nil {
			p.Channel = f.router.Route(p.PeerHost)
		}
		if p.Channel == nil {
			p.Channel = f.def
		}
	}
	if p.Channel == nil {
		return nil, fmt.Errorf("destination %q: %w", p.PeerHost, api.ErrNoRoute)
	}

	f.log.Debug("dispatching socket create",
		zap.String("proto", string(p.Proto)),
		zap.Bool("server", p.Server),
		zap.String("peer", p.PeerHost),
		zap.Int("peer_port", p.PeerPort))

	s, err := p.Channel.Create(p)
	if err != nil {
		return nil, err
	}
	f.count(p)
	return s, nil
}

// RegisterProbes exposes the factory's counters through a debug probe
// registry.
func (f *Factory) RegisterProbes(dp *control.DebugProbes) {
	if f.metrics == nil {
		return
	}
	dp.RegisterProbe("sock.metrics", func() any {
		return f.metrics.Snapshot()
	})
}

func (f *Factory) count(p *api.Params) {
	if f.metrics == nil {
		return
	}
	key := "sock.create." + string(p.Proto)
	if p.Server {
		key += ".server"
	}
	f.metrics.Inc(key)
}
