package types

import (
	"encoding/hex"
	"fmt"
)

// HashSize is the length of a proof-of-work digest in bytes.
const HashSize = 32

// Hash is a 32-byte digest stored in the byte order the hash function
// produced it. Block explorers show these values byte-reversed; String does
// the same.
type Hash [HashSize]byte

// HashFromBytes creates a Hash from a byte slice. Returns error if len != 32.
func HashFromBytes(b []byte) (Hash, error) {
	if len(b) != HashSize {
		return Hash{}, fmt.Errorf("hash must be %d bytes, got %d", HashSize, len(b))
	}
	var h Hash
	copy(h[:], b)
	return h, nil
}

// Hex returns the lowercase hex encoding in stored byte order.
func (h Hash) Hex() string {
	return hex.EncodeToString(h[:])
}

// Reversed returns a copy with the byte order flipped.
func (h Hash) Reversed() Hash {
	var r Hash
	for i := range h {
		r[i] = h[HashSize-1-i]
	}
	return r
}

// String implements fmt.Stringer using display (reversed) byte order.
func (h Hash) String() string {
	return h.Reversed().Hex()
}
