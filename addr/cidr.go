// File: addr/cidr.go
// Package addr
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Netmask and CIDR arithmetic (IPv4 only).

package addr

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/momentics/hioload-sock/api"
)

// NetmaskBits converts a dotted-quad netmask to its prefix length by
// locating the lowest set bit of the big-endian 32-bit value: 255.255.255.0
// yields 24; an all-zero mask yields 0.
//
// Precondition: the mask must be contiguous and left-aligned. A
// non-contiguous mask yields an unspecified result; callers own
// validation.
func NetmaskBits(netmask string) (int, error) {
	v, err := Atoi(netmask)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, nil
	}
	return 32 - bits.TrailingZeros32(v), nil
}

// BitsNetmask converts a prefix length in 0..32 to its dotted-quad
// netmask.
func BitsNetmask(prefix int) (string, error) {
	if prefix < 0 || prefix > 32 {
		return "", fmt.Errorf("prefix length %d: %w", prefix, api.ErrInvalidArgument)
	}
	mask := uint32(^uint64(0) << (32 - uint(prefix)))
	return Itoa(mask), nil
}

// CrackCidr parses "A.B.C.D/N" and returns the inclusive [first, last]
// host range of the subnet as dotted quads. N must be in 0..32; the base
// address is masked down to the subnet boundary first.
func CrackCidr(cidr string) (first, last string, err error) {
	base, prefix, err := splitCidr(cidr)
	if err != nil {
		return "", "", err
	}
	span := uint64(1) << (32 - uint(prefix))
	mask := uint32(0)
	if prefix > 0 {
		mask = uint32(0xFFFFFFFF << (32 - uint(prefix)))
	}
	lo := base & mask
	hi := uint32(uint64(lo) + span - 1)
	return Itoa(lo), Itoa(hi), nil
}

func splitCidr(cidr string) (base uint32, prefix int, err error) {
	addrPart, bitsPart, ok := strings.Cut(cidr, "/")
	if !ok {
		return 0, 0, fmt.Errorf("cidr %q missing prefix: %w", cidr, api.ErrInvalidAddressFormat)
	}
	prefix, err = strconv.Atoi(bitsPart)
	if err != nil || prefix < 0 || prefix > 32 {
		return 0, 0, fmt.Errorf("cidr %q prefix: %w", cidr, api.ErrInvalidAddressFormat)
	}
	base, err = Atoi(addrPart)
	if err != nil {
		return 0, 0, err
	}
	return base, prefix, nil
}
