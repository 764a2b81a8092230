package proof

import (
	"crypto/rand"
	"io"

	"github.com/tezansahu/aztec-prove/bn128"
)

// RandomnessSource supplies fresh blinding scalars. Threading it through
// every constructor - rather than reaching for a package-level CSPRNG -
// means tests can inject a deterministic source and production code
// cannot accidentally fall back to a weak one (spec 9, "Randomness").
type RandomnessSource interface {
	Scalar() (bn128.Scalar, error)
}

// csprng is the production RandomnessSource, backed by crypto/rand.
type csprng struct {
	reader io.Reader
}

// DefaultRandomness returns a RandomnessSource backed by the operating
// system's CSPRNG (crypto/rand.Reader). Use this in production; use a
// FixedRandomness (below) only in tests.
func DefaultRandomness() RandomnessSource {
	return csprng{reader: rand.Reader}
}

func (c csprng) Scalar() (bn128.Scalar, error) {
	return bn128.RandomScalar(c.reader)
}

// FixedRandomness replays a pre-supplied sequence of scalars, for
// deterministic unit tests of blinding-factor algebra. Scalar returns an
// error once the sequence is exhausted rather than looping or falling
// back to crypto/rand, so a test can never silently pick up live
// randomness.
type FixedRandomness struct {
	values []bn128.Scalar
	next   int
}

// NewFixedRandomness builds a RandomnessSource that yields values in order.
func NewFixedRandomness(values ...bn128.Scalar) *FixedRandomness {
	return &FixedRandomness{values: values}
}

func (f *FixedRandomness) Scalar() (bn128.Scalar, error) {
	if f.next >= len(f.values) {
		return bn128.Scalar{}, io.EOF
	}
	v := f.values[f.next]
	f.next++
	return v, nil
}
