package primitive

import (
	"crypto/sha512"
	"hash"

	"github.com/cxmcc/tiger"
	"github.com/jzelinskie/whirlpool"
	"github.com/bitbandi/go-x11/blake"
	"github.com/bitbandi/go-x11/bmw"
	"github.com/bitbandi/go-x11/cubed"
	"github.com/bitbandi/go-x11/echo"
	"github.com/bitbandi/go-x11/groest"
	"github.com/bitbandi/go-x11/jhash"
	"github.com/bitbandi/go-x11/luffa"
	"github.com/bitbandi/go-x11/shavite"
	"github.com/bitbandi/go-x11/simd"
	"github.com/bitbandi/go-x11/skein"
	"golang.org/x/crypto/sha3"
)

// x11Digest is the streaming interface of the go-x11 primitives. Close writes
// the 64-byte digest into dst; the bit arguments are always zero here.
type x11Digest interface {
	Write(src []byte) (int, error)
	Close(dst []byte, bits uint8, bcnt uint8) error
}

// fromX11 adapts a go-x11 constructor to a Func.
func fromX11(newDigest func() x11Digest) Func {
	return func(dst *Digest, in []byte) error {
		d := newDigest()
		if _, err := d.Write(in); err != nil {
			return err
		}
		return d.Close(dst[:], 0, 0)
	}
}

// FromHash adapts a hash.Hash constructor to a Func. The digest is written
// into dst without allocating; bytes past the hash size are left untouched.
func FromHash(newHash func() hash.Hash) Func {
	return func(dst *Digest, in []byte) error {
		h := newHash()
		if _, err := h.Write(in); err != nil {
			return err
		}
		h.Sum(dst[:0])
		return nil
	}
}

// Builtin returns a table holding every primitive implemented in Go.
// Hamsi, Fugue and Shabal have no Go implementation and are only present in
// Default when the sphlib backend is compiled in.
func Builtin() *Table {
	t := NewTable()
	t.MustRegister(Blake, fromX11(func() x11Digest { return blake.New() }))
	t.MustRegister(BMW, fromX11(func() x11Digest { return bmw.New() }))
	t.MustRegister(Groestl, fromX11(func() x11Digest { return groest.New() }))
	t.MustRegister(JH, fromX11(func() x11Digest { return jhash.New() }))
	t.MustRegister(Keccak, FromHash(sha3.NewLegacyKeccak512))
	t.MustRegister(Skein, fromX11(func() x11Digest { return skein.New() }))
	t.MustRegister(Luffa, fromX11(func() x11Digest { return luffa.New() }))
	t.MustRegister(CubeHash, fromX11(func() x11Digest { return cubed.New() }))
	t.MustRegister(Shavite, fromX11(func() x11Digest { return shavite.New() }))
	t.MustRegister(SIMD, fromX11(func() x11Digest { return simd.New() }))
	t.MustRegister(Echo, fromX11(func() x11Digest { return echo.New() }))
	t.MustRegister(Whirlpool, FromHash(whirlpool.New))
	t.MustRegister(SHA512, FromHash(sha512.New))
	t.MustRegister(Tiger, FromHash(tiger.New))
	return t
}

// Default returns the builtin table extended with whatever the native
// backend provides.
func Default() *Table {
	t := Builtin()
	registerNative(t)
	return t
}
