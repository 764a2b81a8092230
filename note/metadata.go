package note

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"io"
	"math/big"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/tezansahu/aztec-prove/aztecerror"
	"github.com/tezansahu/aztec-prove/bn128"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"
)

// Metadata is the off-chain payload a note creator publishes alongside the
// on-chain commitment so the intended recipient - and only the intended
// recipient - can recover the viewing key needed to spend it: an ephemeral
// secp256k1 public key plus the viewing key XORed with an HKDF-derived
// keystream over the ECDH shared secret (ECIES-style, grounded on the
// ElGamal encrypt/decrypt pair other example repos use for shielded
// transfers, adapted here to a stream cipher since the plaintext is a
// scalar rather than a curve point).
type Metadata struct {
	NoteHash        [32]byte
	EphemeralPubKey []byte // 65-byte uncompressed secp256k1 point
	Ciphertext      [32]byte
}

const metadataHKDFInfo = "AZTEC-note-metadata"

// ExportMetadata encrypts n's viewing key to recipientPubKey, generating a
// fresh ephemeral keypair for this export only.
func ExportMetadata(rng io.Reader, n *Note, recipientPubKey *ecdsa.PublicKey) (*Metadata, error) {
	if recipientPubKey == nil || recipientPubKey.X == nil {
		return nil, aztecerror.New(aztecerror.ViewingKeyMalformed, "recipient public key is nil")
	}
	ephemeral, err := ecdsa.GenerateKey(ethcrypto.S256(), rng)
	if err != nil {
		return nil, errors.Wrap(err, "note: generating ephemeral key")
	}

	sharedX, _ := ethcrypto.S256().ScalarMult(recipientPubKey.X, recipientPubKey.Y, ephemeral.D.Bytes())
	keystream, err := metadataKeystream(sharedX.Bytes())
	if err != nil {
		return nil, err
	}

	aBytes := n.A.Bytes()
	var ciphertext [32]byte
	for i := range ciphertext {
		ciphertext[i] = aBytes[i] ^ keystream[i]
	}

	return &Metadata{
		NoteHash:        n.NoteHash,
		EphemeralPubKey: ethcrypto.FromECDSAPub(&ephemeral.PublicKey),
		Ciphertext:      ciphertext,
	}, nil
}

// RecoverViewingKey inverts ExportMetadata given the recipient's private key,
// returning the viewing key a that was encrypted for them.
func RecoverViewingKey(meta *Metadata, recipientPriv *ecdsa.PrivateKey) (bn128.Scalar, error) {
	x, y := elliptic.Unmarshal(ethcrypto.S256(), meta.EphemeralPubKey)
	if x == nil {
		return bn128.Scalar{}, aztecerror.New(aztecerror.ViewingKeyMalformed, "malformed ephemeral public key")
	}
	sharedX, _ := ethcrypto.S256().ScalarMult(x, y, recipientPriv.D.Bytes())
	keystream, err := metadataKeystream(sharedX.Bytes())
	if err != nil {
		return bn128.Scalar{}, err
	}

	var aBytes [32]byte
	for i := range aBytes {
		aBytes[i] = meta.Ciphertext[i] ^ keystream[i]
	}
	a := bn128.NewScalar(new(big.Int).SetBytes(aBytes[:]))
	if a.IsZero() {
		return bn128.Scalar{}, aztecerror.New(aztecerror.ViewingKeyMalformed, "recovered viewing key is zero")
	}
	return a, nil
}

func metadataKeystream(secret []byte) ([]byte, error) {
	reader := hkdf.New(sha3.New256, secret, nil, []byte(metadataHKDFInfo))
	out := make([]byte, 32)
	if _, err := io.ReadFull(reader, out); err != nil {
		return nil, errors.Wrap(err, "note: deriving metadata keystream")
	}
	return out, nil
}
