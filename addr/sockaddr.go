// File: addr/sockaddr.go
// Package addr
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Binary sockaddr encoding. Layouts must match the native structures
// bit-for-bit:
//
//	IPv4 (16 bytes): family(2, native) + port(2, big-endian) + addr(4) + zero(8)
//	IPv6 (28 bytes): family(2, native) + port(2, big-endian) + flow(4, zero) +
//	                 addr(16) + scope(4, zero)

package addr

import (
	"encoding/binary"
	"fmt"
	"net"

	"github.com/momentics/hioload-sock/api"
)

const (
	sockaddrLen4 = 16
	sockaddrLen6 = 28
)

// ToSockaddr builds the binary sockaddr for ip:port. An empty ip defaults
// to "0.0.0.0"; a hostname is resolved first.
func ToSockaddr(ip string, port int) ([]byte, error) {
	if ip == "" {
		ip = "0.0.0.0"
	}
	if port < 0 || port > 0xFFFF {
		return nil, fmt.Errorf("port %d out of range: %w", port, api.ErrInvalidArgument)
	}
	raw, err := ResolveNBO(ip)
	if err != nil {
		return nil, err
	}
	switch len(raw) {
	case 4:
		sa := make([]byte, sockaddrLen4)
		binary.NativeEndian.PutUint16(sa[0:2], uint16(AFInet))
		binary.BigEndian.PutUint16(sa[2:4], uint16(port))
		copy(sa[4:8], raw)
		return sa, nil
	case 16:
		sa := make([]byte, sockaddrLen6)
		binary.NativeEndian.PutUint16(sa[0:2], uint16(AFInet6))
		binary.BigEndian.PutUint16(sa[2:4], uint16(port))
		copy(sa[8:24], raw)
		return sa, nil
	default:
		return nil, fmt.Errorf("%d address bytes: %w", len(raw), api.ErrInvalidAddressFormat)
	}
}

// FromSockaddr decodes a binary sockaddr into (family, address, port).
//
// IPv6 addresses are rendered in the verbose 8-group form
// ("0000:0000:...:0001"), never zero-compressed: downstream consumers may
// depend on the fixed-width shape, so it is preserved as-is rather than
// canonicalized. Unknown families fail with ErrUnsupportedFamily.
func FromSockaddr(sa []byte) (family int, host string, port int, err error) {
	if len(sa) < 4 {
		return 0, "", 0, fmt.Errorf("sockaddr too short (%d bytes): %w", len(sa), api.ErrInvalidAddressFormat)
	}
	family = int(binary.NativeEndian.Uint16(sa[0:2]))
	port = int(binary.BigEndian.Uint16(sa[2:4]))
	switch family {
	case AFInet:
		if len(sa) < 8 {
			return 0, "", 0, fmt.Errorf("ipv4 sockaddr too short (%d bytes): %w", len(sa), api.ErrInvalidAddressFormat)
		}
		host = net.IP(sa[4:8]).String()
	case AFInet6:
		if len(sa) < 24 {
			return 0, "", 0, fmt.Errorf("ipv6 sockaddr too short (%d bytes): %w", len(sa), api.ErrInvalidAddressFormat)
		}
		host = verboseIPv6(sa[8:24])
	default:
		return 0, "", 0, fmt.Errorf("family %d: %w", family, api.ErrUnsupportedFamily)
	}
	return family, host, port, nil
}

// verboseIPv6 renders 16 address bytes as 8 colon-joined groups of 4 hex
// digits, with no zero-run compression.
func verboseIPv6(b []byte) string {
	const hexdigits = "0123456789abcdef"
	out := make([]byte, 0, 39)
	for i := 0; i < 16; i += 2 {
		if i > 0 {
			out = append(out, ':')
		}
		out = append(out,
			hexdigits[b[i]>>4], hexdigits[b[i]&0xf],
			hexdigits[b[i+1]>>4], hexdigits[b[i+1]&0xf])
	}
	return string(out)
}
