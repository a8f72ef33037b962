package consensus

import (
	"time"

	"github.com/chronodrachma/x16r/pkg/config"
	"github.com/chronodrachma/x16r/pkg/core/consensus/x16r"
	"github.com/chronodrachma/x16r/pkg/core/consensus/x16r/primitive"
	"github.com/chronodrachma/x16r/pkg/core/types"
)

// VariantAt returns the variant net uses for a header stamped t.
func VariantAt(net config.NetworkConfig, t time.Time) x16r.Variant {
	if t.Before(net.X16RV2ActivationTime) {
		return x16r.V1
	}
	return x16r.V2
}

// HeaderHasher hashes headers with whichever variant is active at their
// timestamp.
type HeaderHasher struct {
	net config.NetworkConfig
	v1  *x16r.Engine
	v2  *x16r.Engine
}

var _ Hasher = (*HeaderHasher)(nil)

// NewHeaderHasher builds engines for both variants over reg.
func NewHeaderHasher(net config.NetworkConfig, reg primitive.Registry, opts ...x16r.Option) (*HeaderHasher, error) {
	v1, err := x16r.New(x16r.V1, reg, opts...)
	if err != nil {
		return nil, err
	}
	v2, err := x16r.New(x16r.V2, reg, opts...)
	if err != nil {
		return nil, err
	}
	return &HeaderHasher{net: net, v1: v1, v2: v2}, nil
}

// Network returns the network whose schedule h follows.
func (h *HeaderHasher) Network() config.NetworkConfig {
	return h.net
}

// Engine returns the engine used for headers stamped t.
func (h *HeaderHasher) Engine(t time.Time) *x16r.Engine {
	if VariantAt(h.net, t).Name == x16r.V1.Name {
		return h.v1
	}
	return h.v2
}

// Hash computes the PoW hash of a serialized header. The variant is picked
// from the timestamp at bytes [68,72), so headerBytes must be exactly
// types.HeaderSize long.
func (h *HeaderHasher) Hash(headerBytes []byte) (types.Hash, error) {
	hdr, err := types.ParseBlockHeader(headerBytes)
	if err != nil {
		return types.Hash{}, err
	}
	return h.Engine(hdr.Time()).Sum(headerBytes)
}

// HashHeader computes the PoW hash of header.
func (h *HeaderHasher) HashHeader(header *types.BlockHeader) (types.Hash, error) {
	return h.Engine(header.Time()).Sum(header.Serialize())
}

// Close releases both engines.
func (h *HeaderHasher) Close() {
	h.v1.Close()
	h.v2.Close()
}
