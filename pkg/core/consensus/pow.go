package consensus

import (
	"github.com/chronodrachma/x16r/pkg/core/consensus/x16r"
	"github.com/chronodrachma/x16r/pkg/core/types"
)

// Hasher computes Proof-of-Work hashes. *x16r.Engine hashes with one fixed
// variant; *HeaderHasher switches variant at the network's activation time.
type Hasher interface {
	// Hash computes the PoW hash of the given block header bytes.
	Hash(headerBytes []byte) (types.Hash, error)

	// Close releases any resources held by the hasher.
	Close()
}

var _ Hasher = (*x16r.Engine)(nil)
