// File: fake/fake_test.go
// Author: momentics <momentics@gmail.com>

package fake

import (
	"errors"
	"io"
	"testing"

	"github.com/momentics/hioload-sock/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocketPairDuplexFIFO(t *testing.T) {
	a, b := NewSocketPair(&api.Params{Proto: api.ProtoTCP, PeerHost: "10.0.0.1", PeerPort: 80})
	defer a.Close()
	defer b.Close()

	_, err := a.Write([]byte("one"))
	require.NoError(t, err)
	_, err = a.Write([]byte("two"))
	require.NoError(t, err)
	assert.Equal(t, 2, b.Pending())

	buf := make([]byte, 3)
	_, err = io.ReadFull(b, buf)
	require.NoError(t, err)
	assert.Equal(t, "one", string(buf))
	_, err = io.ReadFull(b, buf)
	require.NoError(t, err)
	assert.Equal(t, "two", string(buf))

	_, err = b.Write([]byte("ack"))
	require.NoError(t, err)
	_, err = io.ReadFull(a, buf)
	require.NoError(t, err)
	assert.Equal(t, "ack", string(buf))
}

func TestSocketReadAfterPeerClose(t *testing.T) {
	a, b := NewSocketPair(nil)
	_, err := a.Write([]byte{1})
	require.NoError(t, err)
	require.NoError(t, a.Close())

	// queued data drains first, then EOF
	buf := make([]byte, 1)
	n, err := b.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, err = b.Read(buf)
	assert.Equal(t, io.EOF, err)

	_, err = b.Write([]byte{2})
	assert.Equal(t, io.ErrClosedPipe, err)
}

func TestSocketHandleFields(t *testing.T) {
	a, _ := NewSocketPair(&api.Params{
		Proto:    api.ProtoUDP,
		PeerHost: "10.1.2.3",
		PeerPort: 53,
		Context:  api.ContextFrom(map[string]any{"origin": "test"}),
	})
	assert.Equal(t, "10.1.2.3", a.PeerHost())
	assert.Equal(t, 53, a.PeerPort())
	typ, err := a.Type()
	require.NoError(t, err)
	assert.Equal(t, "udp", typ)
	v, ok := a.Context().Get("origin")
	require.True(t, ok)
	assert.Equal(t, "test", v)
}

func TestChannelRecordsCallsAndErrors(t *testing.T) {
	ch := NewChannel()
	s, err := ch.Create(&api.Params{Proto: api.ProtoTCP, PeerHost: "10.0.0.9"})
	require.NoError(t, err)
	require.NotNil(t, s)
	require.NotNil(t, ch.LastPeer())
	require.Len(t, ch.Calls(), 1)
	assert.Equal(t, "10.0.0.9", ch.Calls()[0].PeerHost)

	boom := errors.New("refused")
	ch.SetCreateError(boom)
	_, err = ch.Create(&api.Params{Proto: api.ProtoTCP})
	assert.Equal(t, boom, err)
	assert.Len(t, ch.Calls(), 2)
}
