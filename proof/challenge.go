package proof

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/tezansahu/aztec-prove/bn128"
	"github.com/tezansahu/aztec-prove/keccak"
	"github.com/tezansahu/aztec-prove/note"
)

// ChallengeParams bundles the optional fields computeChallenge appends
// only when they are set (spec 4.E). ProveJoinSplit (and so ProveMint and
// ProveBurn) sets KPublic and M; no constructor in this package sets
// PublicOwner.
type ChallengeParams struct {
	KPublic     *bn128.Scalar
	M           *int
	PublicOwner *common.Address
}

// ComputeChallenge appends, to a fresh transcript, sender, then the
// optional kPublic/m/publicOwner fields in that exact order, then every
// note's (gamma, sigma), then every blinding factor's B point - and
// reduces the result mod N. This ordering is part of the protocol: any
// verifier recomputing the challenge must hash the identical byte
// sequence (spec 4.E).
func ComputeChallenge(sender common.Address, params ChallengeParams, notes []*note.Note, blindingFactors []BlindingFactor) bn128.Scalar {
	t := keccak.New()
	t.AppendAddress(sender)

	if params.KPublic != nil {
		t.AppendScalar(*params.KPublic)
	}
	if params.M != nil {
		t.AppendScalar(bn128.ScalarFromUint64(uint64(*params.M)))
	}
	if params.PublicOwner != nil {
		t.AppendAddress(*params.PublicOwner)
	}
	for _, n := range notes {
		t.AppendPoint(n.Gamma)
		t.AppendPoint(n.Sigma)
	}
	for _, bf := range blindingFactors {
		t.AppendPoint(bf.B)
	}
	return t.Finalize()
}

// rollingNoteHash seeds a fresh transcript with every note's (gamma,
// sigma) pair, matching spec 4.F step 1 ("initialize rolling hash over
// all notes' (gamma, sigma)"). The returned transcript is then available
// to blinding-factor schemas (private range chains it further via x).
func rollingNoteHash(notes []*note.Note) *keccak.Transcript {
	t := keccak.New()
	for _, n := range notes {
		t.AppendPoint(n.Gamma)
		t.AppendPoint(n.Sigma)
	}
	return t
}
