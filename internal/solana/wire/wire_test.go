package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selesy/x402-svm-buyer/internal/solana/wire"
)

func TestPutU64LE(t *testing.T) {
	w := wire.NewWriter(8)
	require.NoError(t, w.PutU64LE(1_000_000))
	assert.Equal(t, []byte{0x40, 0x42, 0x0f, 0, 0, 0, 0, 0}, w.Bytes())
}

func TestShortVecLenBoundaries(t *testing.T) {
	cases := []struct {
		n    int
		want []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{16383, []byte{0xff, 0x7f}},
		{16384, []byte{0x80, 0x80, 0x01}},
	}

	for _, c := range cases {
		w := wire.NewWriter(3)
		require.NoError(t, w.PutShortVecLen(c.n))
		assert.Equal(t, c.want, w.Bytes())
		assert.Equal(t, len(c.want), wire.ShortVecLen(c.n))
	}
}

func TestOverflowIsReported(t *testing.T) {
	w := wire.NewWriter(1)
	require.NoError(t, w.PutU8(1))
	require.ErrorIs(t, w.PutU8(2), wire.ErrOverflow)
}
