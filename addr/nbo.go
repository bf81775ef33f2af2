// File: addr/nbo.go
// Package addr
// Author: momentics <momentics@gmail.com>
//
// Network-byte-order raw and integer address forms.

package addr

import (
	"fmt"
	"math/big"
	"net"

	"github.com/momentics/hioload-sock/api"
)

// ResolveNBO returns host's raw address bytes in network byte order:
// 4 bytes for IPv4, 16 for IPv6.
func ResolveNBO(host string) ([]byte, error) {
	a, err := GetAddress(host)
	if err != nil {
		return nil, err
	}
	ip := net.ParseIP(a)
	if ip == nil {
		return nil, fmt.Errorf("%q: %w", a, api.ErrInvalidAddressFormat)
	}
	if v4 := ip.To4(); v4 != nil {
		return v4, nil
	}
	return ip.To16(), nil
}

// NBOInt reinterprets network-order address bytes as an unsigned integer.
// A single 32-bit word (4 bytes) yields that word big-endian; four words
// (16 bytes) yield the word-shifted big-endian 128-bit interpretation.
// Any other word count fails with ErrInvalidAddressFormat.
func NBOInt(b []byte) (*big.Int, error) {
	switch len(b) {
	case 4, 16:
		return new(big.Int).SetBytes(b), nil
	default:
		return nil, fmt.Errorf("%d address bytes: %w", len(b), api.ErrInvalidAddressFormat)
	}
}

// ResolveNBOInt resolves host and returns its NBOInt form.
func ResolveNBOInt(host string) (*big.Int, error) {
	b, err := ResolveNBO(host)
	if err != nil {
		return nil, err
	}
	return NBOInt(b)
}
