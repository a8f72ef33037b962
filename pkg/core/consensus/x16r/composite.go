package x16r

import "github.com/chronodrachma/x16r/pkg/core/consensus/x16r/primitive"

// padOffset is where zero padding starts in a composite round. It is the
// Tiger digest width and does not depend on the primitive that follows.
const padOffset = primitive.TigerSize

// composite chains prefix into next through a zero-padded 64-byte buffer.
func composite(prefix, next primitive.Func) primitive.Func {
	return func(dst *primitive.Digest, in []byte) error {
		var mid primitive.Digest
		if err := prefix(&mid, in); err != nil {
			return err
		}
		clear(mid[padOffset:])
		return next(dst, mid[:])
	}
}
