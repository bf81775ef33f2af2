// File: api/context.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lightweight key-value context carried from creation parameters into
// socket handles. Not compatible with standard context.Context.

package api

import "sync"

// Context provides a lightweight key-value store for caller metadata.
type Context interface {
	// Set assigns a value for a key.
	Set(key string, value any)
	// Get fetches a value, returning (value, exists).
	Get(key string) (any, bool)
	// Delete removes a value/key.
	Delete(key string)
	// Clone returns a shallow copy of the context suitable for child operations.
	Clone() Context
	// Keys returns all present keys.
	Keys() []string
}

// kvContext is the default map-backed Context implementation.
type kvContext struct {
	mu   sync.RWMutex
	data map[string]any
}

// NewContext creates an empty Context.
func NewContext() Context {
	return &kvContext{data: make(map[string]any)}
}

// ContextFrom creates a Context pre-populated from a plain map.
func ContextFrom(m map[string]any) Context {
	ctx := &kvContext{data: make(map[string]any, len(m))}
	for k, v := range m {
		ctx.data[k] = v
	}
	return ctx
}

func (c *kvContext) Set(key string, value any) {
	c.mu.Lock()
	c.data[key] = value
	c.mu.Unlock()
}

func (c *kvContext) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *kvContext) Delete(key string) {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
}

func (c *kvContext) Clone() Context {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := &kvContext{data: make(map[string]any, len(c.data))}
	for k, v := range c.data {
		out.data[k] = v
	}
	return out
}

func (c *kvContext) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.data))
	for k := range c.data {
		keys = append(keys, k)
	}
	return keys
}
