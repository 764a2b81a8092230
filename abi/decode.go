package abi

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/tezansahu/aztec-prove/aztecerror"
	"github.com/tezansahu/aztec-prove/bn128"
	"github.com/tezansahu/aztec-prove/note"
	"github.com/tezansahu/aztec-prove/proof"
)

// cursor is a small bounds-checked reader over an encoded blob, used only
// by Decode; every read advances past the consumed bytes.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) word() ([]byte, error) {
	if c.pos+wordSize > len(c.buf) {
		return nil, aztecerror.New(aztecerror.EncodingInvalidLength, "blob truncated")
	}
	w := c.buf[c.pos : c.pos+wordSize]
	c.pos += wordSize
	return w, nil
}

func (c *cursor) uint() (uint64, error) {
	w, err := c.word()
	if err != nil {
		return 0, err
	}
	return new(big.Int).SetBytes(w).Uint64(), nil
}

func (c *cursor) bytesN(n int) ([]byte, error) {
	if c.pos+n > len(c.buf) {
		return nil, aztecerror.New(aztecerror.EncodingInvalidLength, "blob truncated")
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Decode is Encode's inverse: it parses a blob produced by Encode (or by
// an on-chain/off-chain peer following the same layout) back into a
// ProofOutputs. M and PublicOwner are populated whenever present in the
// blob; a zero value there is indistinguishable from "not applicable"
// since the wire format has no separate presence flag for them (spec
// 4.G leaves this "where applicable" phrasing unresolved) - callers that
// care about the distinction must track it out of band, the same way
// the constructor that produced the blob did.
func Decode(blob []byte) (*ProofOutputs, error) {
	c := &cursor{buf: blob}

	total, err := c.uint()
	if err != nil {
		return nil, err
	}
	if int(total) != len(blob) {
		return nil, aztecerror.New(aztecerror.EncodingInvalidLength, "declared length does not match blob size")
	}

	challengeWord, err := c.word()
	if err != nil {
		return nil, err
	}
	challenge, err := bn128.ScalarFromBytes(challengeWord)
	if err != nil {
		return nil, err
	}

	mVal, err := c.uint()
	if err != nil {
		return nil, err
	}
	m := int(mVal)

	ownerWord, err := c.word()
	if err != nil {
		return nil, err
	}
	publicOwner := common.BytesToAddress(ownerWord)

	kPublicWord, err := c.word()
	if err != nil {
		return nil, err
	}
	kPublic, err := bn128.ScalarFromBytes(kPublicWord)
	if err != nil {
		return nil, err
	}

	records, err := decodeRecords(c)
	if err != nil {
		return nil, err
	}
	inputOwners, err := decodeAddressArray(c)
	if err != nil {
		return nil, err
	}
	outputOwners, err := decodeAddressArray(c)
	if err != nil {
		return nil, err
	}
	metadata, err := decodeMetadataArray(c)
	if err != nil {
		return nil, err
	}

	return &ProofOutputs{
		Challenge:      challenge,
		M:              &m,
		PublicOwner:    &publicOwner,
		KPublic:        &kPublic,
		Records:        records,
		InputOwners:    inputOwners,
		OutputOwners:   outputOwners,
		OutputMetadata: metadata,
	}, nil
}

func decodeRecords(c *cursor) ([]proof.NoteRecord, error) {
	count, err := c.uint()
	if err != nil {
		return nil, err
	}
	records := make([]proof.NoteRecord, 0, count)
	for i := uint64(0); i < count; i++ {
		fieldCount, err := c.uint()
		if err != nil {
			return nil, err
		}
		if fieldCount != 6 {
			return nil, aztecerror.New(aztecerror.EncodingInvalidLength, "note record must have 6 fields")
		}
		var words [6][]byte
		for j := 0; j < 6; j++ {
			w, err := c.word()
			if err != nil {
				return nil, err
			}
			words[j] = w
		}
		kBar, err := bn128.ScalarFromBytes(words[0])
		if err != nil {
			return nil, err
		}
		aBar, err := bn128.ScalarFromBytes(words[1])
		if err != nil {
			return nil, err
		}
		gammaX, err := bn128.FieldElementFromBytes(words[2])
		if err != nil {
			return nil, err
		}
		gammaY, err := bn128.FieldElementFromBytes(words[3])
		if err != nil {
			return nil, err
		}
		sigmaX, err := bn128.FieldElementFromBytes(words[4])
		if err != nil {
			return nil, err
		}
		sigmaY, err := bn128.FieldElementFromBytes(words[5])
		if err != nil {
			return nil, err
		}
		records = append(records, proof.NoteRecord{
			KBar: kBar, ABar: aBar,
			GammaX: gammaX, GammaY: gammaY,
			SigmaX: sigmaX, SigmaY: sigmaY,
		})
	}
	return records, nil
}

func decodeAddressArray(c *cursor) ([]common.Address, error) {
	count, err := c.uint()
	if err != nil {
		return nil, err
	}
	out := make([]common.Address, 0, count)
	for i := uint64(0); i < count; i++ {
		w, err := c.word()
		if err != nil {
			return nil, err
		}
		out = append(out, common.BytesToAddress(w))
	}
	return out, nil
}

func decodeMetadataArray(c *cursor) ([]note.Metadata, error) {
	count, err := c.uint()
	if err != nil {
		return nil, err
	}
	out := make([]note.Metadata, 0, count)
	for i := uint64(0); i < count; i++ {
		hashWord, err := c.word()
		if err != nil {
			return nil, err
		}
		var noteHash [32]byte
		copy(noteHash[:], hashWord)

		pubKeyLen, err := c.uint()
		if err != nil {
			return nil, err
		}
		pubKey, err := c.bytesN(int(pubKeyLen))
		if err != nil {
			return nil, err
		}
		ciphertextWord, err := c.word()
		if err != nil {
			return nil, err
		}
		var ciphertext [32]byte
		copy(ciphertext[:], ciphertextWord)

		out = append(out, note.Metadata{
			NoteHash:        noteHash,
			EphemeralPubKey: append([]byte(nil), pubKey...),
			Ciphertext:      ciphertext,
		})
	}
	return out, nil
}
