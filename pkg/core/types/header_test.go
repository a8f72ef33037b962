package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBlockHeaderSerializeLayout(t *testing.T) {
	h := BlockHeader{
		Version:   0x20000000,
		Timestamp: 1569945600,
		Bits:      0x1d00ffff,
		Nonce:     0xdeadbeef,
	}
	for i := range h.PrevBlock {
		h.PrevBlock[i] = byte(i)
	}
	for i := range h.MerkleRoot {
		h.MerkleRoot[i] = byte(0xff - i)
	}

	buf := h.Serialize()
	require.Len(t, buf, HeaderSize)

	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x20}, buf[0:4])
	require.Equal(t, h.PrevBlock[:], buf[4:36])
	require.Equal(t, h.MerkleRoot[:], buf[36:68])
	require.Equal(t, []byte{0x00, 0x78, 0x93, 0x5d}, buf[68:72])
	require.Equal(t, []byte{0xff, 0xff, 0x00, 0x1d}, buf[72:76])
	require.Equal(t, []byte{0xef, 0xbe, 0xad, 0xde}, buf[76:80])

	// The order window is the first half of the previous block hash.
	require.Equal(t, h.PrevBlock[:16], buf[4:20])
}

func TestBlockHeaderTime(t *testing.T) {
	h := BlockHeader{Timestamp: 1569945600}
	require.True(t, h.Time().Equal(time.Date(2019, 10, 1, 16, 0, 0, 0, time.UTC)))
}

func TestHashDisplayOrder(t *testing.T) {
	var h Hash
	h[0] = 0xab
	h[HashSize-1] = 0x01

	require.Equal(t, "ab", h.Hex()[:2])
	require.Equal(t, "01", h.String()[:2])
	require.Equal(t, "ab", h.String()[2*HashSize-2:])

	require.Equal(t, h, h.Reversed().Reversed())
}

func TestHashFromBytesLength(t *testing.T) {
	_, err := HashFromBytes(make([]byte, 31))
	require.Error(t, err)

	h, err := HashFromBytes(make([]byte, HashSize))
	require.NoError(t, err)
	require.Equal(t, Hash{}, h)
}

func TestParseBlockHeader(t *testing.T) {
	want := BlockHeader{
		Version:   -1,
		Timestamp: 1514999494,
		Bits:      0x1e00ffff,
		Nonce:     25023712,
	}
	want.PrevBlock[0] = 0x01
	want.MerkleRoot[HashSize-1] = 0x02

	got, err := ParseBlockHeader(want.Serialize())
	require.NoError(t, err)
	require.Equal(t, want, *got)

	for _, n := range []int{0, 20, HeaderSize - 1, HeaderSize + 1} {
		_, err := ParseBlockHeader(make([]byte, n))
		require.ErrorIs(t, err, ErrHeaderSize, "len %d", n)
	}
}
