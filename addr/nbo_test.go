// File: addr/nbo_test.go
// Author: momentics <momentics@gmail.com>

package addr

import (
	"errors"
	"math/big"
	"testing"

	"github.com/momentics/hioload-sock/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNBO(t *testing.T) {
	b, err := ResolveNBO("1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, b)

	b, err = ResolveNBO("::1")
	require.NoError(t, err)
	require.Len(t, b, 16)
	assert.Equal(t, byte(1), b[15])
}

func TestNBOInt(t *testing.T) {
	v, err := NBOInt([]byte{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Zero(t, v.Cmp(big.NewInt(0x01020304)))

	// Four words shift big-endian into one 128-bit value.
	b := make([]byte, 16)
	b[0] = 0xfe
	b[1] = 0x80
	b[15] = 0x01
	v, err = NBOInt(b)
	require.NoError(t, err)
	want := new(big.Int).Lsh(big.NewInt(0xfe80), 112)
	want.Or(want, big.NewInt(1))
	assert.Zero(t, v.Cmp(want))
}

func TestNBOIntRejectsOddWordCounts(t *testing.T) {
	for _, n := range []int{0, 1, 3, 5, 8, 12, 17} {
		_, err := NBOInt(make([]byte, n))
		assert.True(t, errors.Is(err, api.ErrInvalidAddressFormat), "len %d: %v", n, err)
	}
}

func TestResolveNBOInt(t *testing.T) {
	v, err := ResolveNBOInt("255.255.255.255")
	require.NoError(t, err)
	assert.Zero(t, v.Cmp(new(big.Int).SetUint64(0xFFFFFFFF)))
}
