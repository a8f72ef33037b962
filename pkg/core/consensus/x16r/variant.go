package x16r

import (
	"fmt"

	"github.com/chronodrachma/x16r/pkg/core/consensus/x16r/primitive"
)

// Step is what one identifier runs: a single primitive, or for composite
// rounds a Prefix primitive whose zero-padded output feeds Primitive.
type Step struct {
	Primitive primitive.ID
	Prefix    primitive.ID
}

// Composite reports whether the step runs a prefix primitive first.
func (s Step) Composite() bool {
	return s.Prefix != primitive.None
}

func (s Step) String() string {
	if s.Composite() {
		return s.Prefix.String() + "+" + s.Primitive.String()
	}
	return s.Primitive.String()
}

func (s Step) validate() error {
	if !s.Primitive.Valid() {
		return fmt.Errorf("primitive %s", s.Primitive)
	}
	if s.Composite() && !s.Prefix.Valid() {
		return fmt.Errorf("prefix %s", s.Prefix)
	}
	return nil
}

// Variant describes one member of the hash family: which step each
// identifier selects.
type Variant struct {
	Name  string
	Steps [IdentifierCount]Step
}

// Validate checks that every identifier maps to a real step.
func (v Variant) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidVariant)
	}
	for i, s := range v.Steps {
		if err := s.validate(); err != nil {
			return fmt.Errorf("%w: %s identifier %s: %v", ErrInvalidVariant, v.Name, Algo(i), err)
		}
	}
	return nil
}

// Primitives returns the distinct primitives the variant uses, prefixes included.
func (v Variant) Primitives() []primitive.ID {
	var seen [256]bool
	var ids []primitive.ID
	add := func(id primitive.ID) {
		if id != primitive.None && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, s := range v.Steps {
		add(s.Prefix)
		add(s.Primitive)
	}
	return ids
}

func single(id primitive.ID) Step {
	return Step{Primitive: id}
}

func afterTiger(id primitive.ID) Step {
	return Step{Primitive: id, Prefix: primitive.Tiger}
}

// V1 is the first-generation X16R table.
var V1 = Variant{
	Name: "x16r",
	Steps: [IdentifierCount]Step{
		single(primitive.Blake),
		single(primitive.BMW),
		single(primitive.Groestl),
		single(primitive.JH),
		single(primitive.Keccak),
		single(primitive.Skein),
		single(primitive.Luffa),
		single(primitive.CubeHash),
		single(primitive.Shavite),
		single(primitive.SIMD),
		single(primitive.Echo),
		single(primitive.Hamsi),
		single(primitive.Fugue),
		single(primitive.Shabal),
		single(primitive.Whirlpool),
		single(primitive.SHA512),
	},
}

// V2 is X16Rv2: identifiers 4, 6 and 15 run Tiger before their primitive.
var V2 = Variant{
	Name: "x16rv2",
	Steps: [IdentifierCount]Step{
		single(primitive.Blake),
		single(primitive.BMW),
		single(primitive.Groestl),
		single(primitive.JH),
		afterTiger(primitive.Keccak),
		single(primitive.Skein),
		afterTiger(primitive.Luffa),
		single(primitive.CubeHash),
		single(primitive.Shavite),
		single(primitive.SIMD),
		single(primitive.Echo),
		single(primitive.Hamsi),
		single(primitive.Fugue),
		single(primitive.Shabal),
		single(primitive.Whirlpool),
		afterTiger(primitive.SHA512),
	},
}

// VariantByName returns V1 for "x16r" and V2 for "x16rv2".
func VariantByName(name string) (Variant, bool) {
	switch name {
	case V1.Name:
		return V1, true
	case V2.Name:
		return V2, true
	}
	return Variant{}, false
}
