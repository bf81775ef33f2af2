// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe counter registry with dynamic key registration. Keys are
// dotted paths, e.g. "sock.create.tcp".

package control

import (
	"sync"
	"time"
)

// MetricsRegistry holds monotonically increasing counters.
type MetricsRegistry struct {
	mu       sync.RWMutex
	counters map[string]uint64
	updated  time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		counters: make(map[string]uint64),
	}
}

// Inc increments a counter by one, creating it on first use.
func (mr *MetricsRegistry) Inc(key string) {
	mr.Add(key, 1)
}

// Add increments a counter by n, creating it on first use.
func (mr *MetricsRegistry) Add(key string, n uint64) {
	mr.mu.Lock()
	mr.counters[key] += n
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Get returns the current value of one counter.
func (mr *MetricsRegistry) Get(key string) uint64 {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.counters[key]
}

// Snapshot returns a copy of all counters.
func (mr *MetricsRegistry) Snapshot() map[string]uint64 {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]uint64, len(mr.counters))
	for k, v := range mr.counters {
		out[k] = v
	}
	return out
}

// Updated returns the time of the last counter change.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
