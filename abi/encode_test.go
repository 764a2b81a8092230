package abi

import (
	"crypto/ecdsa"
	"crypto/rand"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tezansahu/aztec-prove/bn128"
	"github.com/tezansahu/aztec-prove/crs"
	"github.com/tezansahu/aztec-prove/note"
	"github.com/tezansahu/aztec-prove/proof"
)

func testTable(t *testing.T) *crs.CRS {
	t.Helper()
	table, err := crs.Default()
	require.NoError(t, err)
	return table
}

func buildNote(t *testing.T, table *crs.CRS, k uint64) *note.Note {
	t.Helper()
	a, err := bn128.RandomScalar(rand.Reader)
	require.NoError(t, err)
	n, err := note.FromViewingKey(rand.Reader, table, k, a, common.Address{})
	require.NoError(t, err)
	return n
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	table := testTable(t)
	notes := []*note.Note{buildNote(t, table, 10), buildNote(t, table, 10)}

	result, err := proof.ProveJoinSplit(proof.DefaultRandomness(), table, common.Address{}, notes, 1, bn128.ScalarZero())
	require.NoError(t, err)

	m := 1
	owner := common.HexToAddress("0x0000000000000000000000000000000000ca11")
	kPublic := bn128.ScalarZero()
	inputOwners := []common.Address{owner}
	outputOwners := []common.Address{owner}

	blob, err := Encode(ProofOutputs{
		Challenge:    result.Challenge,
		M:            &m,
		PublicOwner:  &owner,
		KPublic:      &kPublic,
		Records:      result.Records,
		InputOwners:  inputOwners,
		OutputOwners: outputOwners,
	})
	require.NoError(t, err)

	decoded, err := Decode(blob)
	require.NoError(t, err)
	assert.True(t, decoded.Challenge.Equal(result.Challenge))
	assert.Equal(t, *decoded.M, m)
	assert.Equal(t, *decoded.PublicOwner, owner)
	assert.True(t, decoded.KPublic.Equal(kPublic))
	require.Len(t, decoded.Records, len(result.Records))
	for i := range result.Records {
		assert.Equal(t, result.Records[i].Fields(), decoded.Records[i].Fields())
	}
	assert.Equal(t, inputOwners, decoded.InputOwners)
	assert.Equal(t, outputOwners, decoded.OutputOwners)
}

func TestDecodeRejectsTruncatedBlob(t *testing.T) {
	_, err := Decode([]byte{0, 0, 0})
	require.Error(t, err)
}

func TestDecodeRejectsMismatchedLength(t *testing.T) {
	blob, err := Encode(ProofOutputs{Challenge: bn128.ScalarZero()})
	require.NoError(t, err)
	blob = append(blob, 0xFF)
	_, err = Decode(blob)
	require.Error(t, err)
}

func TestEncodeWithMetadataRoundTrips(t *testing.T) {
	table := testTable(t)
	recipientPriv, err := ecdsa.GenerateKey(ethcrypto.S256(), rand.Reader)
	require.NoError(t, err)

	n := buildNote(t, table, 50)
	meta, err := note.ExportMetadata(rand.Reader, n, &recipientPriv.PublicKey)
	require.NoError(t, err)

	blob, err := Encode(ProofOutputs{
		Challenge:      bn128.ScalarZero(),
		OutputMetadata: []note.Metadata{*meta},
	})
	require.NoError(t, err)

	decoded, err := Decode(blob)
	require.NoError(t, err)
	require.Len(t, decoded.OutputMetadata, 1)
	assert.Equal(t, meta.NoteHash, decoded.OutputMetadata[0].NoteHash)
	assert.Equal(t, meta.Ciphertext, decoded.OutputMetadata[0].Ciphertext)
	assert.Equal(t, meta.EphemeralPubKey, decoded.OutputMetadata[0].EphemeralPubKey)
}

func TestComputeExpectedOutputIsDeterministic(t *testing.T) {
	in := [][32]byte{{1}, {2}}
	out := [][32]byte{{3}}
	a := ComputeExpectedOutput(in, out)
	b := ComputeExpectedOutput(in, out)
	assert.Equal(t, a, b)
	assert.True(t, VerifyExpectedOutput(in, out, a))
}
