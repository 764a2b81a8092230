package proof

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tezansahu/aztec-prove/bn128"
	"github.com/tezansahu/aztec-prove/note"
)

func TestProveMintProducesOneRecordPerNote(t *testing.T) {
	table := testTable(t)
	oldTotal := buildNote(t, table, 100)
	minted := []*note.Note{buildNote(t, table, 20), buildNote(t, table, 80)}
	newTotal := buildNote(t, table, 180)

	result, err := ProveMint(DefaultRandomness(), table, common.Address{}, oldTotal, minted, newTotal, bn128.ScalarZero())
	require.NoError(t, err)
	assert.Len(t, result.Records, 4)
}

// TestProveMintScenario follows spec's concrete scenario 5: current-total
// 0, new-total 30, minted [10, 20] -> balances as 0 + 10 + 20 = 30, with
// oldTotal and the minted notes as inputs and newTotal the sole output.
func TestProveMintScenario(t *testing.T) {
	table := testTable(t)
	oldTotal := buildNote(t, table, 0)
	minted := []*note.Note{buildNote(t, table, 10), buildNote(t, table, 20)}
	newTotal := buildNote(t, table, 30)
	kPublic := bn128.ScalarFromUint64(777)

	result, err := ProveMint(DefaultRandomness(), table, common.Address{}, oldTotal, minted, newTotal, kPublic)
	require.NoError(t, err)
	require.Len(t, result.Records, 4)
	// newTotal is the join-split's sole output and thus the last note,
	// so its record carries the repurposed kPublic commitment hash.
	assert.True(t, result.Records[3].KBar.Equal(kPublic))
}

func TestProveBurnProducesOneRecordPerNote(t *testing.T) {
	table := testTable(t)
	oldTotal := buildNote(t, table, 100)
	burned := []*note.Note{buildNote(t, table, 20), buildNote(t, table, 80)}
	newTotal := buildNote(t, table, 0)

	result, err := ProveBurn(DefaultRandomness(), table, common.Address{}, oldTotal, burned, newTotal, bn128.ScalarZero())
	require.NoError(t, err)
	assert.Len(t, result.Records, 4)
}

func TestProveBurnScenario(t *testing.T) {
	table := testTable(t)
	oldTotal := buildNote(t, table, 100)
	burned := []*note.Note{buildNote(t, table, 20), buildNote(t, table, 80)}
	newTotal := buildNote(t, table, 0)
	kPublic := bn128.ScalarFromUint64(42)

	result, err := ProveBurn(DefaultRandomness(), table, common.Address{}, oldTotal, burned, newTotal, kPublic)
	require.NoError(t, err)
	require.Len(t, result.Records, 4)
	assert.True(t, result.Records[3].KBar.Equal(kPublic))
}
