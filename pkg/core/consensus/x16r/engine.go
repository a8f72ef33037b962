package x16r

import (
	"errors"
	"fmt"
	"sync"

	"github.com/chronodrachma/x16r/pkg/core/consensus/x16r/primitive"
	"github.com/chronodrachma/x16r/pkg/core/types"
	"github.com/chronodrachma/x16r/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Engine computes digests for one Variant. Its round table is resolved from
// the registry once, in New; an Engine is immutable afterwards and safe for
// concurrent use.
type Engine struct {
	variant Variant
	rounds  [IdentifierCount]primitive.Func
	missing [IdentifierCount]error

	log      zerolog.Logger
	hashes   prometheus.Counter
	hashErrs prometheus.Counter
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithMetrics counts completed and failed digests in m. A nil m disables
// counting.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		if m == nil {
			return
		}
		e.hashes = m.Hashes.WithLabelValues(e.variant.Name)
		e.hashErrs = m.HashErrors.WithLabelValues(e.variant.Name)
	}
}

// New builds an engine for v over the primitives in reg. Identifiers whose
// primitives reg does not provide are kept as unavailable: hashing a header
// whose order selects one fails before any round runs.
func New(v Variant, reg primitive.Registry, opts ...Option) (*Engine, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, errors.New("x16r: nil primitive registry")
	}

	e := &Engine{
		variant: v,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	for i, s := range v.Steps {
		fn, err := resolve(reg, s)
		if err != nil {
			e.missing[i] = fmt.Errorf("identifier %s (%s): %w", Algo(i), s, err)
			e.log.Warn().
				Str("variant", v.Name).
				Stringer("algo", Algo(i)).
				Stringer("step", s).
				Msg("hash primitive not available")
			continue
		}
		e.rounds[i] = fn
	}

	e.log.Debug().
		Str("variant", v.Name).
		Int("unavailable", len(e.Missing())).
		Msg("hash engine ready")

	return e, nil
}

func resolve(reg primitive.Registry, s Step) (primitive.Func, error) {
	next, ok := reg.Lookup(s.Primitive)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPrimitiveUnavailable, s.Primitive)
	}
	if !s.Composite() {
		return next, nil
	}
	prefix, ok := reg.Lookup(s.Prefix)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPrimitiveUnavailable, s.Prefix)
	}
	return composite(prefix, next), nil
}

// Variant returns the variant the engine was built for.
func (e *Engine) Variant() Variant {
	return e.variant
}

// Missing lists the identifiers the engine cannot run.
func (e *Engine) Missing() []Algo {
	var out []Algo
	for i, err := range e.missing {
		if err != nil {
			out = append(out, Algo(i))
		}
	}
	return out
}

// Order decodes the algorithm order of input without hashing it.
func (e *Engine) Order(input []byte) (Order, error) {
	return OrderFromHeader(input)
}

// Sum computes the 32-byte digest of input. The whole slice is hashed in the
// first round; bytes [4,20) select the order.
func (e *Engine) Sum(input []byte) (types.Hash, error) {
	h, err := e.sum(input)
	if err != nil {
		if e.hashErrs != nil {
			e.hashErrs.Inc()
		}
		return types.Hash{}, err
	}
	if e.hashes != nil {
		e.hashes.Inc()
	}
	return h, nil
}

func (e *Engine) sum(input []byte) (types.Hash, error) {
	order, err := OrderFromHeader(input)
	if err != nil {
		return types.Hash{}, err
	}
	e.log.Debug().Str("variant", e.variant.Name).Stringer("order", order).Msg("decoded algorithm order")

	for _, a := range order {
		if int(a) >= IdentifierCount {
			return types.Hash{}, fmt.Errorf("%w: %d", ErrUnreachableIdentifier, a)
		}
		if e.missing[a] != nil {
			return types.Hash{}, e.missing[a]
		}
		if e.rounds[a] == nil {
			return types.Hash{}, fmt.Errorf("%w: %s has no round", ErrUnreachableIdentifier, a)
		}
	}

	// Rounds alternate between two buffers so a round never writes the
	// buffer it is reading.
	var bufs [2]primitive.Digest
	in := input
	for i, a := range order {
		out := &bufs[i&1]
		if err := e.rounds[a](out, in); err != nil {
			return types.Hash{}, &RoundError{Round: i, Algo: a, Step: e.variant.Steps[a], Err: err}
		}
		in = out[:]
	}

	var h types.Hash
	copy(h[:], in[:types.HashSize])
	return h, nil
}

// Hash computes the digest of a serialized header.
func (e *Engine) Hash(headerBytes []byte) (types.Hash, error) {
	return e.Sum(headerBytes)
}

// Close is a no-op; engines hold no external resources.
func (e *Engine) Close() {}

var (
	defaultV1 = sync.OnceValues(func() (*Engine, error) { return New(V1, primitive.Default()) })
	defaultV2 = sync.OnceValues(func() (*Engine, error) { return New(V2, primitive.Default()) })
)

// Sum computes the X16R digest of input over the default primitives.
func Sum(input []byte) (types.Hash, error) {
	e, err := defaultV1()
	if err != nil {
		return types.Hash{}, err
	}
	return e.Sum(input)
}

// SumV2 computes the X16Rv2 digest of input over the default primitives.
func SumV2(input []byte) (types.Hash, error) {
	e, err := defaultV2()
	if err != nil {
		return types.Hash{}, err
	}
	return e.Sum(input)
}
