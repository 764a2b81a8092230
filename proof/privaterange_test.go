package proof

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tezansahu/aztec-prove/aztecerror"
	"github.com/tezansahu/aztec-prove/bn128"
	"github.com/tezansahu/aztec-prove/note"
)

// TestProvePrivateRangeThirdSlotIsCanonicalZero covers spec's relational
// property ("the third kBar slot is unused by the verifier") under the
// rewrite decision to emit a canonical zero rather than a random filler.
func TestProvePrivateRangeThirdSlotIsCanonicalZero(t *testing.T) {
	table := testTable(t)
	notes := []*note.Note{
		buildNote(t, table, 10),
		buildNote(t, table, 4),
		buildNote(t, table, 6),
	}

	result, err := ProvePrivateRange(DefaultRandomness(), table, common.Address{}, notes)
	require.NoError(t, err)
	require.Len(t, result.Records, 3)
	assert.True(t, result.Records[2].KBar.Equal(bn128.ScalarZero()))
}

func TestProvePrivateRangeRequiresThreeNotes(t *testing.T) {
	table := testTable(t)
	notes := []*note.Note{buildNote(t, table, 1), buildNote(t, table, 1)}
	_, err := ProvePrivateRange(DefaultRandomness(), table, common.Address{}, notes)
	require.Error(t, err)
	assert.ErrorIs(t, err, aztecerror.ErrIncorrectNoteNumber)
}

func TestPrivateRangeSchemaChainsThroughRollingHash(t *testing.T) {
	table := testTable(t)
	notes := []*note.Note{
		buildNote(t, table, 10),
		buildNote(t, table, 4),
		buildNote(t, table, 6),
	}

	factors, err := PrivateRangeSchema{}.Derive(NewFixedRandomness(
		bn128.ScalarFromUint64(1), bn128.ScalarFromUint64(2), bn128.ScalarFromUint64(3),
		bn128.ScalarFromUint64(4), bn128.ScalarFromUint64(5),
	), table, rollingNoteHash(notes), notes, -1, bn128.ScalarZero())
	require.NoError(t, err)
	require.Len(t, factors, 3)
	for _, f := range factors {
		assert.False(t, f.B.IsIdentity())
	}
}
