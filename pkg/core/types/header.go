package types

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

// HeaderSize is the length of a serialized block header.
const HeaderSize = 80

var ErrHeaderSize = errors.New("invalid block header size")

// BlockHeader is the fixed-size header a proof-of-work digest is computed
// over. The hash engine only needs the serialized bytes; this type exists so
// callers and tests can build them without hand-placing offsets.
type BlockHeader struct {
	Version    int32
	PrevBlock  Hash
	MerkleRoot Hash
	Timestamp  uint32
	Bits       uint32
	Nonce      uint32
}

// Serialize returns the 80-byte little-endian encoding of the header.
// Field order: Version(4) || PrevBlock(32) || MerkleRoot(32) || Timestamp(4) ||
//
//	Bits(4) || Nonce(4)
//
// Bytes [4,20) are the leading half of PrevBlock, which is where the hash
// engine reads its algorithm order from.
func (h *BlockHeader) Serialize() []byte {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(h.Version))
	copy(buf[4:36], h.PrevBlock[:])
	copy(buf[36:68], h.MerkleRoot[:])
	binary.LittleEndian.PutUint32(buf[68:72], h.Timestamp)
	binary.LittleEndian.PutUint32(buf[72:76], h.Bits)
	binary.LittleEndian.PutUint32(buf[76:80], h.Nonce)
	return buf
}

// Time returns the header timestamp as a time.Time.
func (h *BlockHeader) Time() time.Time {
	return time.Unix(int64(h.Timestamp), 0).UTC()
}

// ParseBlockHeader decodes the 80-byte encoding produced by Serialize.
func ParseBlockHeader(b []byte) (*BlockHeader, error) {
	if len(b) != HeaderSize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrHeaderSize, HeaderSize, len(b))
	}
	prev, err := HashFromBytes(b[4:36])
	if err != nil {
		return nil, err
	}
	merkle, err := HashFromBytes(b[36:68])
	if err != nil {
		return nil, err
	}
	return &BlockHeader{
		Version:    int32(binary.LittleEndian.Uint32(b[0:4])),
		PrevBlock:  prev,
		MerkleRoot: merkle,
		Timestamp:  binary.LittleEndian.Uint32(b[68:72]),
		Bits:       binary.LittleEndian.Uint32(b[72:76]),
		Nonce:      binary.LittleEndian.Uint32(b[76:80]),
	}, nil
}
