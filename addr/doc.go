// File: addr/doc.go
// Package addr
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Byte-exact address manipulation for hioload-sock: textual/binary/integer
// address conversions, native sockaddr encoding, and netmask/CIDR
// arithmetic. Every conversion here must match the OS wire format
// bit-for-bit; all functions are pure and safe for concurrent use.
//
// Resolution policy: literal dotted-quad input never touches the system
// resolver. Reverse-lookup-capable resolver paths can stall for seconds on
// some platforms, so the literal short-circuit is a correctness property,
// not an optimization.

package addr
