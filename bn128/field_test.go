package bn128

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldArithmetic(t *testing.T) {
	a := NewFieldElement(big.NewInt(10))
	b := NewFieldElement(big.NewInt(3))

	assert.True(t, a.Add(b).Equal(NewFieldElement(big.NewInt(13))))
	assert.True(t, a.Sub(b).Equal(NewFieldElement(big.NewInt(7))))
	assert.True(t, a.Mul(b).Equal(NewFieldElement(big.NewInt(30))))
	assert.True(t, a.Square().Equal(NewFieldElement(big.NewInt(100))))
}

func TestFieldInverse(t *testing.T) {
	a := NewFieldElement(big.NewInt(98765))
	inv := a.Inverse()
	assert.True(t, a.Mul(inv).Equal(NewFieldElement(big.NewInt(1))))
}

func TestFieldSqrt(t *testing.T) {
	a := NewFieldElement(big.NewInt(25))
	root, ok := a.sqrt()
	require.True(t, ok)
	assert.True(t, root.Square().Equal(a))
}

func TestFieldElementFromBytesRejectsOutOfRange(t *testing.T) {
	_, err := FieldElementFromBytes(P.Bytes())
	require.Error(t, err)
}

func TestFieldElementBytesRoundTrip(t *testing.T) {
	f := NewFieldElement(big.NewInt(424242))
	b := f.Bytes()
	back, err := FieldElementFromBytes(b[:])
	require.NoError(t, err)
	assert.True(t, f.Equal(back))
}
