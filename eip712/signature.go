// Package eip712 verifies note-spending authorization signatures. The
// proof engine only consumes pre-computed (v, r, s) triples - it never
// produces them, per spec 6 ("the core consumes pre-computed signatures
// as opaque (v, r, s) triples; it does not produce them").
package eip712

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/pkg/errors"
)

// Domain identifies the AZTEC note-spending typed-data domain.
type Domain struct {
	Name              string
	Version           string
	VerifyingContract common.Address
	ChainID           *big.Int
}

// SpendAuthorization is the schema signed to authorize spending a note:
// {noteHash, spender, status}.
type SpendAuthorization struct {
	NoteHash [32]byte
	Spender  common.Address
	Status   uint8
}

// Signature is an opaque (v, r, s) triple as produced by a wallet.
type Signature struct {
	V uint8
	R [32]byte
	S [32]byte
}

// typedData builds the EIP-712 TypedData structure for a spend
// authorization under the given domain.
func typedData(domain Domain, auth SpendAuthorization) apitypes.TypedData {
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			"SpendAuthorization": []apitypes.Type{
				{Name: "noteHash", Type: "bytes32"},
				{Name: "spender", Type: "address"},
				{Name: "status", Type: "uint8"},
			},
		},
		PrimaryType: "SpendAuthorization",
		Domain: apitypes.TypedDataDomain{
			Name:              domain.Name,
			Version:           domain.Version,
			ChainId:           (*math.HexOrDecimal256)(domain.ChainID),
			VerifyingContract: domain.VerifyingContract.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"noteHash": auth.NoteHash[:],
			"spender":  auth.Spender.Hex(),
			"status":   float64(auth.Status),
		},
	}
}

// Verify recovers the signer of a SpendAuthorization and checks it
// matches expectedSigner. v must be 27 or 28. Any other v, 0 included,
// recovers no signer (as with ecrecover, which yields the zero address)
// and is rejected with "signer address cannot be 0" (spec 8, scenario 6);
// an all-zero recovered address is rejected with the same error.
func Verify(domain Domain, auth SpendAuthorization, sig Signature, expectedSigner common.Address) error {
	td := typedData(domain, auth)
	hash, _, err := apitypes.TypedDataAndHash(td)
	if err != nil {
		return errors.Wrap(err, "eip712: hashing typed data")
	}

	if sig.V != 27 && sig.V != 28 {
		return errors.New("signer address cannot be 0")
	}
	v := sig.V - 27

	rawSig := make([]byte, 65)
	copy(rawSig[0:32], sig.R[:])
	copy(rawSig[32:64], sig.S[:])
	rawSig[64] = v

	pubKey, err := ethcrypto.SigToPub(hash, rawSig)
	if err != nil {
		return errors.Wrap(err, "eip712: recovering signer")
	}
	signer := ethcrypto.PubkeyToAddress(*pubKey)
	if signer == (common.Address{}) {
		return errors.New("signer address cannot be 0")
	}
	if signer != expectedSigner {
		return errors.Errorf("eip712: signature recovered to %s, expected %s", signer.Hex(), expectedSigner.Hex())
	}
	return nil
}

// VerifyBatch verifies a note-per-signature batch, short-circuiting on
// the first failure and naming which index failed - convenient for a
// wallet checking every input note's spend authorization before
// assembling a join-split.
func VerifyBatch(domain Domain, auths []SpendAuthorization, sigs []Signature, expectedSigners []common.Address) error {
	if len(auths) != len(sigs) || len(sigs) != len(expectedSigners) {
		return errors.New("eip712: auths, sigs and expectedSigners must have equal length")
	}
	for i := range auths {
		if err := Verify(domain, auths[i], sigs[i], expectedSigners[i]); err != nil {
			return errors.Wrapf(err, "eip712: signature %d", i)
		}
	}
	return nil
}
