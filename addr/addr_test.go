// File: addr/addr_test.go
// Author: momentics <momentics@gmail.com>

package addr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDottedQuad(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"1.2.3.4", true},
		{"0.0.0.0", true},
		{"255.255.255.255", true},
		{"256.1.1.1", false},
		{"1.2.3", false},
		{"1.2.3.4.5", false},
		{"1.2.3.four", false},
		{"1.2.3.", false},
		{"", false},
		{"example.test", false},
		{"::1", false},
		{"10.0.0.0/8", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsDottedQuad(c.in), "input %q", c.in)
	}
}

func TestGetAddressLiteralShortCircuit(t *testing.T) {
	// Literals must come back unchanged with no resolver involvement.
	got, err := GetAddress("10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", got)

	got, err = GetAddress("0.0.0.0")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", got)
}

func TestGetAddressResolves(t *testing.T) {
	got, err := GetAddress("localhost")
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestClassification(t *testing.T) {
	assert.True(t, IsIPv4("10.0.0.1"))
	assert.False(t, IsIPv4("::1"))
	assert.True(t, IsIPv6("::1"))
	assert.True(t, IsIPv6("fe80:0000:0000:0000:0000:0000:0000:0001"))
	assert.False(t, IsIPv6("10.0.0.1"))
}

func TestGetHostByNameLiteral(t *testing.T) {
	he, err := GetHostByName("10.9.8.7")
	require.NoError(t, err)
	assert.Equal(t, "10.9.8.7", he.Name)
	assert.Empty(t, he.Aliases)
	assert.Equal(t, AFInet, he.Family)
	require.Len(t, he.Addrs, 1)
	assert.Equal(t, []byte{10, 9, 8, 7}, he.Addrs[0])
}

func TestAtoiItoaRoundTrip(t *testing.T) {
	cases := []struct {
		q string
		v uint32
	}{
		{"0.0.0.0", 0},
		{"0.0.0.1", 1},
		{"1.2.3.4", 0x01020304},
		{"127.0.0.1", 0x7F000001},
		{"192.168.1.128", 0xC0A80180},
		{"255.255.255.255", 0xFFFFFFFF},
	}
	for _, c := range cases {
		got, err := Atoi(c.q)
		require.NoError(t, err, c.q)
		assert.Equal(t, c.v, got, c.q)
		assert.Equal(t, c.q, Itoa(c.v))
	}

	// Sampled sweep across the 32-bit space; a dense walk would take too
	// long but the stride hits every octet boundary pattern.
	for v := uint64(0); v <= 0xFFFFFFFF; v += 16777259 {
		q := Itoa(uint32(v))
		back, err := Atoi(q)
		require.NoError(t, err, q)
		require.Equal(t, uint32(v), back, q)
	}
}

func TestAtoiRejectsNonIPv4(t *testing.T) {
	_, err := Atoi("::1")
	assert.Error(t, err)
}
