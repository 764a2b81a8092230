package bn128

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarArithmetic(t *testing.T) {
	a := ScalarFromUint64(5)
	b := ScalarFromUint64(7)

	assert.True(t, a.Add(b).Equal(ScalarFromUint64(12)))
	assert.True(t, b.Sub(a).Equal(ScalarFromUint64(2)))
	assert.True(t, a.Mul(b).Equal(ScalarFromUint64(35)))
}

func TestScalarInverse(t *testing.T) {
	a := ScalarFromUint64(12345)
	inv := a.Inverse()
	assert.True(t, a.Mul(inv).Equal(ScalarFromUint64(1)))
}

func TestScalarInverseOfZeroPanics(t *testing.T) {
	assert.Panics(t, func() {
		ScalarZero().Inverse()
	})
}

func TestScalarFromBytesRejectsOutOfRange(t *testing.T) {
	tooLarge := N.Bytes()
	_, err := ScalarFromBytes(tooLarge)
	require.Error(t, err)
}

func TestScalarFromBytesRejectsWrongLength(t *testing.T) {
	_, err := ScalarFromBytes([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestScalarBytesRoundTrip(t *testing.T) {
	v, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	s := NewScalar(v)
	b := s.Bytes()
	back, err := ScalarFromBytes(b[:])
	require.NoError(t, err)
	assert.True(t, s.Equal(back))
}

func TestScalarZeroize(t *testing.T) {
	s := ScalarFromUint64(42)
	s.Zeroize()
	assert.True(t, s.IsZero())
}
