// File: channel/doc.go
// Package channel
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Channel implementations and channel selection. Local opens sockets
// directly on the host network stack; any other api.Channel (relay, pivot,
// tunnel) plugs into the same dispatch unchanged. Switchboard is the
// routing table that picks a channel for a destination by subnet.

package channel
