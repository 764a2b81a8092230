package note

import (
	"crypto/ecdsa"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tezansahu/aztec-prove/bn128"
	"github.com/tezansahu/aztec-prove/crs"
)

func testTable(t *testing.T) *crs.CRS {
	t.Helper()
	table, err := crs.Default()
	require.NoError(t, err)
	return table
}

func TestFromViewingKeyBuildsValidNote(t *testing.T) {
	table := testTable(t)
	owner := common.HexToAddress("0x0000000000000000000000000000000000dEaD")
	a := bn128.ScalarFromUint64(999)

	n, err := FromViewingKey(rand.Reader, table, 42, a, owner)
	require.NoError(t, err)
	require.NoError(t, n.Validate())
	assert.True(t, n.K.Equal(bn128.ScalarFromUint64(42)))
	assert.Equal(t, owner, n.Owner)
}

func TestFromViewingKeyRejectsZeroViewingKey(t *testing.T) {
	table := testTable(t)
	_, err := FromViewingKey(rand.Reader, table, 1, bn128.ScalarZero(), common.Address{})
	require.Error(t, err)
}

func TestFromViewingKeyRejectsValueAboveKMax(t *testing.T) {
	table := testTable(t)
	tooLarge := bn128.KMax.Uint64() + 1
	_, err := FromViewingKey(rand.Reader, table, tooLarge, bn128.ScalarFromUint64(1), common.Address{})
	require.Error(t, err)
}

func TestNoteHashIsDeterministicOverGammaSigma(t *testing.T) {
	table := testTable(t)
	owner := common.Address{}
	a := bn128.ScalarFromUint64(7)

	n, err := FromViewingKey(rand.Reader, table, 5, a, owner)
	require.NoError(t, err)
	assert.Equal(t, computeNoteHash(n.Gamma, n.Sigma), n.NoteHash)
}

func TestFromPublicKeyIsDeterministicForSameNonce(t *testing.T) {
	priv, err := ecdsa.GenerateKey(ethcrypto.S256(), rand.Reader)
	require.NoError(t, err)
	nonce := []byte("note-nonce-1")

	a1, err := deriveViewingKey(&priv.PublicKey, nonce)
	require.NoError(t, err)
	a2, err := deriveViewingKey(&priv.PublicKey, nonce)
	require.NoError(t, err)
	assert.True(t, a1.Equal(a2))
}

func TestFromPublicKeyRejectsNilKey(t *testing.T) {
	table := testTable(t)
	_, err := FromPublicKey(rand.Reader, table, 1, nil, []byte("x"), common.Address{})
	require.Error(t, err)
}

func TestValidateRejectsOffCurveGamma(t *testing.T) {
	table := testTable(t)
	n, err := FromViewingKey(rand.Reader, table, 1, bn128.ScalarFromUint64(1), common.Address{})
	require.NoError(t, err)

	n.Gamma = bn128.NewPoint(bn128.NewFieldElement(big.NewInt(1)), bn128.NewFieldElement(big.NewInt(1)))
	assert.Error(t, n.Validate())
}
