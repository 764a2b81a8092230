package proof

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/tezansahu/aztec-prove/bn128"
	"github.com/tezansahu/aztec-prove/crs"
	"github.com/tezansahu/aztec-prove/note"
)

// mintBurnNotes lays out the full structure spec 4.F names: 1 input
// "current total" note, 1 output "new total" note, and k minted/burned
// notes on whichever side of the balance equation they belong - inputs
// for mint (oldTotal + sum(minted) = newTotal), outputs for burn
// (oldTotal = newTotal + sum(burned)). newTotal is always placed last so
// its record is the one whose kBar slot the caller repurposes afterward.
func mintBurnNotes(oldTotal *note.Note, middle []*note.Note, newTotal *note.Note, middleAreInputs bool) ([]*note.Note, int) {
	notes := make([]*note.Note, 0, 2+len(middle))
	notes = append(notes, oldTotal)
	notes = append(notes, middle...)
	notes = append(notes, newTotal)

	m := 1
	if middleAreInputs {
		m += len(middle)
	}
	return notes, m
}

// ProveMint constructs a minting proof: oldTotal and the newly minted
// notes are the join-split's inputs, the single newTotal note its sole
// output, so the balance equation enforces oldTotal + sum(minted) ==
// newTotal. kPublic carries no real public value here - it is the
// newTotalMinted commitment hash spec 4.F repurposes the final record's
// kBar slot for, and is written into that slot after the join-split's
// own (zero) balance derivation completes.
func ProveMint(rng RandomnessSource, table *crs.CRS, sender common.Address, oldTotal *note.Note, minted []*note.Note, newTotal *note.Note, kPublic bn128.Scalar) (*Result, error) {
	notes, m := mintBurnNotes(oldTotal, minted, newTotal, true)
	result, err := ProveJoinSplit(rng, table, sender, notes, m, bn128.ScalarZero())
	if err != nil {
		return nil, err
	}
	result.Records[len(result.Records)-1].KBar = kPublic
	return result, nil
}

// ProveBurn constructs a burning proof: oldTotal is the join-split's sole
// input, newTotal and the burned notes its outputs, so the balance
// equation enforces oldTotal == newTotal + sum(burned). kPublic is the
// newTotalBurned commitment hash, written into newTotal's kBar slot the
// same way ProveMint repurposes it.
func ProveBurn(rng RandomnessSource, table *crs.CRS, sender common.Address, oldTotal *note.Note, burned []*note.Note, newTotal *note.Note, kPublic bn128.Scalar) (*Result, error) {
	notes, m := mintBurnNotes(oldTotal, burned, newTotal, false)
	result, err := ProveJoinSplit(rng, table, sender, notes, m, bn128.ScalarZero())
	if err != nil {
		return nil, err
	}
	result.Records[len(result.Records)-1].KBar = kPublic
	return result, nil
}
