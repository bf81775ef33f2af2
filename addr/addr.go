// File: addr/addr.go
// Package addr
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Textual address classification and resolution shims.

package addr

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/momentics/hioload-sock/api"
)

// IsDottedQuad reports whether s matches the strict dotted-quad grammar:
// exactly four decimal octets, each in 0..255. Nothing else (hostnames,
// IPv6 literals, CIDR suffixes) matches.
func IsDottedQuad(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		if len(p) == 0 || len(p) > 3 {
			return false
		}
		for i := 0; i < len(p); i++ {
			if p[i] < '0' || p[i] > '9' {
				return false
			}
		}
		if v, _ := strconv.Atoi(p); v > 255 {
			return false
		}
	}
	return true
}

// GetAddress returns the textual address for addr. A literal dotted-quad
// is returned unchanged without touching the resolver; anything else is
// forward-resolved and the first result is returned, IPv4 preferred.
func GetAddress(addr string) (string, error) {
	if IsDottedQuad(addr) {
		return addr, nil
	}
	addrs, err := net.LookupHost(addr)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", addr, err)
	}
	if len(addrs) == 0 {
		return "", fmt.Errorf("resolve %q: %w", addr, api.ErrInvalidAddressFormat)
	}
	for _, a := range addrs {
		if !strings.Contains(a, ":") {
			return a, nil
		}
	}
	return addrs[0], nil
}

// IsIPv4 reports whether addr resolves to an IPv4 address. Classification
// looks at the resolved textual form, so non-literal input triggers
// resolution.
func IsIPv4(addr string) bool {
	a, err := GetAddress(addr)
	if err != nil {
		return false
	}
	return !strings.Contains(a, ":")
}

// IsIPv6 reports whether addr resolves to an IPv6 address.
func IsIPv6(addr string) bool {
	if strings.Contains(addr, ":") {
		return net.ParseIP(addr) != nil || strings.Contains(addr, "%")
	}
	a, err := GetAddress(addr)
	if err != nil {
		return false
	}
	return strings.Contains(a, ":")
}

// Hostent mirrors the classic gethostbyname result shape.
type Hostent struct {
	Name    string
	Aliases []string
	Family  int
	Addrs   [][]byte
}

// GetHostByName resolves host to a Hostent. For a dotted-quad the result
// is synthesized locally (name, no aliases, AF_INET, 4 packed bytes)
// without any resolver call; otherwise the system resolver is consulted.
func GetHostByName(host string) (*Hostent, error) {
	if IsDottedQuad(host) {
		packed := net.ParseIP(host).To4()
		return &Hostent{
			Name:   host,
			Family: AFInet,
			Addrs:  [][]byte{packed},
		}, nil
	}
	ips, err := net.LookupIP(host)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", host, err)
	}
	if len(ips) == 0 {
		return nil, fmt.Errorf("resolve %q: %w", host, api.ErrInvalidAddressFormat)
	}
	he := &Hostent{Name: host, Family: AFInet6}
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			he.Family = AFInet
			he.Addrs = append(he.Addrs, v4)
		} else {
			he.Addrs = append(he.Addrs, ip.To16())
		}
	}
	return he, nil
}

// Atoi converts a dotted-quad (or resolvable host) to its unsigned 32-bit
// big-endian integer form. Round-trips exactly with Itoa over all 2^32
// values.
func Atoi(host string) (uint32, error) {
	b, err := ResolveNBO(host)
	if err != nil {
		return 0, err
	}
	if len(b) != 4 {
		return 0, fmt.Errorf("%q is not an IPv4 address: %w", host, api.ErrInvalidAddressFormat)
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// Itoa converts an unsigned 32-bit big-endian integer to its dotted-quad
// form.
func Itoa(v uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
