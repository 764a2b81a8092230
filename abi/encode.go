package abi

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/tezansahu/aztec-prove/aztecerror"
	"github.com/tezansahu/aztec-prove/bn128"
	"github.com/tezansahu/aztec-prove/note"
	"github.com/tezansahu/aztec-prove/proof"
)

const wordSize = 32

// ProofOutputs bundles everything a proof constructor produces that the
// wire format needs to carry: the sigma-protocol records and challenge
// from proof.Result, the proof-kind-specific public fields, and the
// owner/metadata tail a caller attaches for relayers and recipients.
type ProofOutputs struct {
	Challenge      bn128.Scalar
	M              *int
	PublicOwner    *common.Address
	KPublic        *bn128.Scalar
	Records        []proof.NoteRecord
	InputOwners    []common.Address
	OutputOwners   []common.Address
	OutputMetadata []note.Metadata
}

// Encode serializes out into the hex-ready blob spec 4.G lays out:
//
//	[0x00..0x20]  total length
//	[0x20..0x40]  challenge
//	[0x40..0x60]  m (0 when not applicable)
//	[0x60..0x80]  publicOwner (left-padded to 32, zero address when absent)
//	[0x80..0xA0]  kPublic (0 when not applicable)
//	[0xA0..]      length-prefixed note records, each length-prefixed,
//	              each containing kBar, aBar, gamma.x, gamma.y, sigma.x,
//	              sigma.y as 32-byte words
//	tail:         length-prefixed inputOwners, outputOwners, then
//	              length-prefixed output-note metadata entries
//
// encodeRecords checks every record field for a 32-byte length and would
// fail with ENCODING_INVALID_LENGTH otherwise, but proof.NoteRecord.Fields
// returns fixed [32]byte arrays, so for any ProofOutputs, hand-built ones
// included, that error is never returned.
func Encode(out ProofOutputs) ([]byte, error) {
	var body []byte

	body = append(body, word32(out.Challenge.Bytes())...)
	body = append(body, wordUint(mOrZero(out.M))...)
	body = append(body, wordAddress(ownerOrZero(out.PublicOwner))...)
	body = append(body, wordScalarOrZero(out.KPublic)...)

	recordsBlob, err := encodeRecords(out.Records)
	if err != nil {
		return nil, err
	}
	body = append(body, recordsBlob...)

	body = append(body, encodeAddressArray(out.InputOwners)...)
	body = append(body, encodeAddressArray(out.OutputOwners)...)
	body = append(body, encodeMetadataArray(out.OutputMetadata)...)

	total := wordSize + len(body)
	blob := make([]byte, 0, total)
	blob = append(blob, wordUint(uint64(total))...)
	blob = append(blob, body...)
	return blob, nil
}

func encodeRecords(records []proof.NoteRecord) ([]byte, error) {
	var out []byte
	out = append(out, wordUint(uint64(len(records)))...)
	for _, r := range records {
		fields := r.Fields()
		out = append(out, wordUint(uint64(len(fields)))...)
		for _, f := range fields {
			if len(f) != wordSize {
				return nil, aztecerror.New(aztecerror.EncodingInvalidLength, "record field exceeds 32 bytes")
			}
			out = append(out, f[:]...)
		}
	}
	return out, nil
}

func encodeAddressArray(addrs []common.Address) []byte {
	out := wordUint(uint64(len(addrs)))
	for _, a := range addrs {
		out = append(out, wordAddress(a)...)
	}
	return out
}

func encodeMetadataArray(metas []note.Metadata) []byte {
	out := wordUint(uint64(len(metas)))
	for _, m := range metas {
		out = append(out, word32(m.NoteHash)...)
		out = append(out, wordUint(uint64(len(m.EphemeralPubKey)))...)
		out = append(out, m.EphemeralPubKey...)
		out = append(out, word32(m.Ciphertext)...)
	}
	return out
}

func word32(b [32]byte) []byte {
	out := make([]byte, wordSize)
	copy(out, b[:])
	return out
}

func wordUint(v uint64) []byte {
	return common.LeftPadBytes(new(big.Int).SetUint64(v).Bytes(), wordSize)
}

func wordAddress(a common.Address) []byte {
	return common.LeftPadBytes(a.Bytes(), wordSize)
}

func wordScalarOrZero(s *bn128.Scalar) []byte {
	if s == nil {
		return make([]byte, wordSize)
	}
	b := s.Bytes()
	return word32(b)
}

func mOrZero(m *int) uint64 {
	if m == nil {
		return 0
	}
	return uint64(*m)
}

func ownerOrZero(o *common.Address) common.Address {
	if o == nil {
		return common.Address{}
	}
	return *o
}
