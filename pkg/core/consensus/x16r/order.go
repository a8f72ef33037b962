package x16r

import "fmt"

const (
	// Rounds is the fixed length of every hash chain.
	Rounds = 16

	// IdentifierCount is the size of the identifier universe, one per nibble value.
	IdentifierCount = 16

	orderOffset = 4
	orderWindow = 16

	// MinInputSize is the shortest input the order window fits in.
	MinInputSize = orderOffset + orderWindow

	// minWindow is the number of window bytes the decoder actually reads.
	minWindow = Rounds / 2
)

// Algo is the identifier selecting a round's step within a Variant.
type Algo uint8

func (a Algo) String() string {
	return string(hexDigit(a))
}

func hexDigit(a Algo) byte {
	const digits = "0123456789ABCDEF"
	if int(a) < len(digits) {
		return digits[a]
	}
	return '?'
}

// Order is the per-round sequence of identifiers decoded from a header.
type Order [Rounds]Algo

// DecodeOrder reads the algorithm order out of a header window. The window
// is scanned back to front, one nibble per round, high nibble first:
// round j reads byte (15-j)/2, taking the low nibble when j is odd.
func DecodeOrder(window []byte) (Order, error) {
	var o Order
	if len(window) < minWindow {
		return o, fmt.Errorf("%w: window is %d bytes, need %d", ErrInputTooShort, len(window), minWindow)
	}
	for j := 0; j < Rounds; j++ {
		b := window[(Rounds-1-j)>>1]
		if j&1 == 1 {
			o[j] = Algo(b & 0x0f)
		} else {
			o[j] = Algo(b >> 4)
		}
	}
	return o, nil
}

// OrderFromHeader decodes the order from bytes [4,20) of a serialized header.
func OrderFromHeader(input []byte) (Order, error) {
	if len(input) < MinInputSize {
		return Order{}, fmt.Errorf("%w: got %d bytes, need %d", ErrInputTooShort, len(input), MinInputSize)
	}
	return DecodeOrder(input[orderOffset:MinInputSize])
}

// String renders the order as the sixteen-character hex algorithm string,
// e.g. "0706050403020100".
func (o Order) String() string {
	var buf [Rounds]byte
	for i, a := range o {
		buf[i] = hexDigit(a)
	}
	return string(buf[:])
}
