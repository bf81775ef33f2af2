// File: resolv/doc.go
// Package resolv
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Resolver shims: outbound source-address detection and connected local
// socket pairs. Platform-specific pieces are strictly separated by build
// tags behind a shared facade, with a portable loopback emulation as the
// fallback path.

package resolv
