// File: resolv/resolv_test.go
// Author: momentics <momentics@gmail.com>

package resolv

import (
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceAddressNeverFails(t *testing.T) {
	got := SourceAddress()
	require.NotEmpty(t, got)
	assert.NotNil(t, net.ParseIP(got), "not an IP literal: %q", got)
}

func TestSourceAddressFallsBackToLoopback(t *testing.T) {
	// An unresolvable destination must yield the documented fallback, not
	// an error.
	got := SourceAddress("unresolvable.invalid")
	assert.Equal(t, "127.0.0.1", got)
}

func TestSocketPairDuplex(t *testing.T) {
	a, b, err := SocketPair()
	require.NoError(t, err)
	defer a.Close()
	defer b.Close()

	_, err = a.Write([]byte("ping"))
	require.NoError(t, err)
	buf := make([]byte, 4)
	_, err = io.ReadFull(b, buf)
	require.NoError(t, err)
	assert.Equal(t, "ping", string(buf))

	_, err = b.Write([]byte("pong"))
	require.NoError(t, err)
	_, err = io.ReadFull(a, buf)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(buf))
}

func TestLoopbackPairFallbackPath(t *testing.T) {
	a, b, err := loopbackPair()
	require.NoError(t, err)
	defer a.Close()
	defer b.Close()

	_, err = a.Write([]byte{0x2a})
	require.NoError(t, err)
	buf := make([]byte, 1)
	_, err = b.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, byte(0x2a), buf[0])
}
