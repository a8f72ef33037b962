// Package primitive supplies the hash functions the x16r chain is built from,
// each presented as a single-call Func over a fixed 64-byte output buffer.
package primitive

import "fmt"

// DigestSize is the width of every round buffer.
const DigestSize = 64

// Digest is the working buffer a primitive writes into.
type Digest [DigestSize]byte

// Func computes one primitive over in and writes its digest into the leading
// bytes of dst. Implementations initialise a fresh context on every call and
// must consume in completely before writing dst.
type Func func(dst *Digest, in []byte) error

// ID identifies a hash primitive.
type ID uint8

const (
	None ID = iota
	Blake
	BMW
	Groestl
	JH
	Keccak
	Skein
	Luffa
	CubeHash
	Shavite
	SIMD
	Echo
	Hamsi
	Fugue
	Shabal
	Whirlpool
	SHA512
	Tiger

	idCount
)

var names = [idCount]string{
	None:      "none",
	Blake:     "blake",
	BMW:       "bmw",
	Groestl:   "groestl",
	JH:        "jh",
	Keccak:    "keccak",
	Skein:     "skein",
	Luffa:     "luffa",
	CubeHash:  "cubehash",
	Shavite:   "shavite",
	SIMD:      "simd",
	Echo:      "echo",
	Hamsi:     "hamsi",
	Fugue:     "fugue",
	Shabal:    "shabal",
	Whirlpool: "whirlpool",
	SHA512:    "sha512",
	Tiger:     "tiger",
}

// TigerSize is the digest length of Tiger, the only primitive narrower than
// a round buffer.
const TigerSize = 24

// All returns every real primitive id in declaration order.
func All() []ID {
	ids := make([]ID, 0, idCount-1)
	for id := Blake; id < idCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Valid reports whether id names a primitive.
func (id ID) Valid() bool {
	return id > None && id < idCount
}

// Size returns the number of digest bytes the primitive writes.
func (id ID) Size() int {
	if id == Tiger {
		return TigerSize
	}
	return DigestSize
}

func (id ID) String() string {
	if id < idCount {
		return names[id]
	}
	return fmt.Sprintf("primitive(%d)", uint8(id))
}

// Registry resolves primitive ids to capabilities.
type Registry interface {
	Lookup(id ID) (Func, bool)
}
