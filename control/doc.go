// File: control/doc.go
// Package control
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Runtime counters and debug probes for the socket layer. The factory
// feeds creation counters here when a registry is injected; probes expose
// internal state snapshots for external inspection tools.

package control
