// File: fake/doc.go
// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake implementations for testing and development.
// Provides predictable, controllable behavior for the Channel and Socket
// contracts without touching the network stack.

package fake
