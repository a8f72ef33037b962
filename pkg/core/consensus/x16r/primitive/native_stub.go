//go:build !(cgo && sphlib)

package primitive

// NativeBackend reports whether the sphlib primitives are compiled in.
const NativeBackend = false

func registerNative(*Table) {}
