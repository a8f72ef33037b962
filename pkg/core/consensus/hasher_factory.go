package consensus

import (
	"errors"
	"fmt"

	"github.com/chronodrachma/x16r/pkg/config"
	"github.com/chronodrachma/x16r/pkg/core/consensus/x16r"
	"github.com/chronodrachma/x16r/pkg/core/consensus/x16r/primitive"
	"github.com/rs/zerolog"
)

var ErrUnknownAlgorithm = errors.New("unknown proof-of-work algorithm")

// NewHasher returns a hasher over the default primitives. A non-empty
// cfg.Algorithm forces that variant for every header; otherwise the result is
// a *HeaderHasher following cfg.Network's X16Rv2 activation.
//
// Without the sphlib build tag Hamsi, Fugue and Shabal are missing and
// headers that select them fail with x16r.ErrPrimitiveUnavailable.
func NewHasher(cfg config.HasherConfig, log zerolog.Logger, opts ...x16r.Option) (Hasher, error) {
	var v x16r.Variant
	if cfg.Algorithm != "" {
		var ok bool
		if v, ok = x16r.VariantByName(cfg.Algorithm); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, cfg.Algorithm)
		}
	} else if cfg.Network.Name == "" {
		return nil, fmt.Errorf("%w: no algorithm forced and no network set", config.ErrUnknownNetwork)
	}

	log = log.With().Str("network", cfg.Network.Name).Logger()
	algorithm := v.Name
	if algorithm == "" {
		algorithm = "scheduled"
	}

	reg := primitive.Default()
	if missing := reg.Missing(); len(missing) > 0 {
		log.Warn().
			Str("algorithm", algorithm).
			Strs("missing", primitiveNames(missing)).
			Msg("sphlib build tag not found; some algorithm orders cannot be hashed. Build with -tags sphlib")
	} else {
		log.Info().Str("algorithm", algorithm).Msg("initializing hasher with native primitives")
	}

	opts = append([]x16r.Option{x16r.WithLogger(log)}, opts...)
	if cfg.Algorithm == "" {
		log.Info().
			Time("x16rv2_activation", cfg.Network.X16RV2ActivationTime).
			Msg("selecting variant by header timestamp")
		hh, err := NewHeaderHasher(cfg.Network, reg, opts...)
		if err != nil {
			return nil, err
		}
		return hh, nil
	}

	e, err := x16r.New(v, reg, opts...)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func primitiveNames(ids []primitive.ID) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return names
}
