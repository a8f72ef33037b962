//go:build cgo && sphlib

package primitive

/*
#cgo CFLAGS: -I${SRCDIR}/../../../../../third_party/sphlib/c
#cgo LDFLAGS: -L${SRCDIR}/../../../../../third_party/sphlib/build -lsph
#include "sph_hamsi.h"
#include "sph_fugue.h"
#include "sph_shabal.h"
*/
import "C"

import "unsafe"

// NativeBackend reports whether the sphlib primitives are compiled in.
const NativeBackend = true

func registerNative(t *Table) {
	t.MustRegister(Hamsi, hamsi512)
	t.MustRegister(Fugue, fugue512)
	t.MustRegister(Shabal, shabal512)
}

// inPtr returns a pointer usable for a zero-length update.
func inPtr(in []byte) (unsafe.Pointer, C.size_t) {
	if len(in) == 0 {
		return nil, 0
	}
	return unsafe.Pointer(&in[0]), C.size_t(len(in))
}

func hamsi512(dst *Digest, in []byte) error {
	var cc C.sph_hamsi512_context
	p, n := inPtr(in)
	C.sph_hamsi512_init(unsafe.Pointer(&cc))
	C.sph_hamsi512(unsafe.Pointer(&cc), p, n)
	C.sph_hamsi512_close(unsafe.Pointer(&cc), unsafe.Pointer(&dst[0]))
	return nil
}

func fugue512(dst *Digest, in []byte) error {
	var cc C.sph_fugue512_context
	p, n := inPtr(in)
	C.sph_fugue512_init(unsafe.Pointer(&cc))
	C.sph_fugue512(unsafe.Pointer(&cc), p, n)
	C.sph_fugue512_close(unsafe.Pointer(&cc), unsafe.Pointer(&dst[0]))
	return nil
}

func shabal512(dst *Digest, in []byte) error {
	var cc C.sph_shabal512_context
	p, n := inPtr(in)
	C.sph_shabal512_init(unsafe.Pointer(&cc))
	C.sph_shabal512(unsafe.Pointer(&cc), p, n)
	C.sph_shabal512_close(unsafe.Pointer(&cc), unsafe.Pointer(&dst[0]))
	return nil
}
