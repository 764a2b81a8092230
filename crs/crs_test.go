package crs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParses(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)
	require.NotNil(t, table)
	assert.True(t, table.H.IsOnCurve())
}

func TestDefaultIsCached(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestMarshalParseRoundTrip(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	blob := table.Marshal()
	require.Len(t, blob, byteLen)

	parsed, err := Parse(blob)
	require.NoError(t, err)
	assert.True(t, table.H.Equal(parsed.H))
	assert.True(t, table.T2.Xi.Equal(parsed.T2.Xi))
	assert.True(t, table.T2.Xr.Equal(parsed.T2.Xr))
	assert.True(t, table.T2.Yi.Equal(parsed.T2.Yi))
	assert.True(t, table.T2.Yr.Equal(parsed.T2.Yr))
}

func TestParseRejectsWrongLength(t *testing.T) {
	_, err := Parse(make([]byte, 100))
	require.Error(t, err)
}

func TestDeriveHIsDeterministicAndOnCurve(t *testing.T) {
	a, err := DeriveH([]byte("custom-ceremony-seed"))
	require.NoError(t, err)
	b, err := DeriveH([]byte("custom-ceremony-seed"))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.True(t, a.IsOnCurve())
}

func TestDeriveHDiffersForDifferentSeeds(t *testing.T) {
	a, err := DeriveH([]byte("seed-one"))
	require.NoError(t, err)
	b, err := DeriveH([]byte("seed-two"))
	require.NoError(t, err)
	assert.False(t, a.Equal(b))
}
