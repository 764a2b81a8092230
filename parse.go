package aztec

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/tezansahu/aztec-prove/aztecerror"
	"github.com/tezansahu/aztec-prove/bn128"
)

// ParseScalar converts a decimal or 0x-prefixed hex string into a Scalar,
// the shape callers receive proof-specific values in (kPublic, note
// values) from JSON request bodies or CLI flags before invoking a Prove* function.
func ParseScalar(s string) (bn128.Scalar, error) {
	v, err := parseBigIntString(s)
	if err != nil {
		return bn128.Scalar{}, err
	}
	if v.Sign() < 0 || v.Cmp(bn128.N) >= 0 {
		return bn128.Scalar{}, aztecerror.New(aztecerror.ScalarTooBig, "value out of range mod n")
	}
	return bn128.NewScalar(v), nil
}

// ParseScalars converts a batch of decimal or hex strings in one call,
// for the common case of parsing an entire notes array's values at once.
func ParseScalars(values []string) ([]bn128.Scalar, error) {
	out := make([]bn128.Scalar, 0, len(values))
	for i, s := range values {
		v, err := ParseScalar(s)
		if err != nil {
			return nil, errors.Wrapf(err, "aztec: parsing value %d", i)
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseBigInt converts a decimal or 0x-prefixed hex string into an
// arbitrary-precision integer, for the za/zb dividend parameters which
// are not themselves scalars reduced mod n.
func ParseBigInt(s string) (*big.Int, error) {
	return parseBigIntString(s)
}

func parseBigIntString(s string) (*big.Int, error) {
	base := 10
	if strings.HasPrefix(s, "0x") {
		base = 16
		s = strings.TrimPrefix(s, "0x")
	}
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, errors.Errorf("aztec: cannot parse %q as an integer", s)
	}
	return v, nil
}
