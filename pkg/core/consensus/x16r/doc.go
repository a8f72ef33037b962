// Package x16r computes X16R and X16Rv2 proof-of-work digests.
//
// Sixteen rounds of 512-bit hash primitives are chained, each round hashing
// the previous round's digest. The primitive used in each round is chosen by
// nibbles of the header itself, bytes 4 through 19, so the path through the
// chain is only known once the header is. The final 64-byte digest is
// truncated to 32 bytes.
//
// The two variants share the decoder and the chain loop and differ only in
// their Variant tables. X16Rv2 replaces Keccak, Luffa and SHA-512 with
// composite rounds that first run Tiger, zero bytes 24 through 63 of its
// output buffer, and hash the full 64 bytes with the replaced primitive.
package x16r
