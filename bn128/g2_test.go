package bn128

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestG2MarshalUnmarshalRoundTrip(t *testing.T) {
	g := G2Point{
		Xi: NewFieldElement(big.NewInt(1)),
		Xr: NewFieldElement(big.NewInt(2)),
		Yi: NewFieldElement(big.NewInt(3)),
		Yr: NewFieldElement(big.NewInt(4)),
	}
	b := g.Marshal()
	back, err := UnmarshalG2(b[:])
	require.NoError(t, err)
	assert.True(t, g.Xi.Equal(back.Xi))
	assert.True(t, g.Xr.Equal(back.Xr))
	assert.True(t, g.Yi.Equal(back.Yi))
	assert.True(t, g.Yr.Equal(back.Yr))
}

func TestUnmarshalG2RejectsWrongLength(t *testing.T) {
	_, err := UnmarshalG2(make([]byte, 64))
	require.Error(t, err)
}
