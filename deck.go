package skull

import (
	"fmt"
	"io"

	"github.com/bwesterb/go-ristretto"
)

// CommitDeck commits to every position of deck in order. The i-th commitment
// is opened by the i-th revelation. The deck order is the caller's business.
func CommitDeck(gens *Generators, deck []Card, rng io.Reader) ([]*Commitment, []*Revelation, error) {
	commitments := make([]*Commitment, len(deck))
	revelations := make([]*Revelation, len(deck))
	for i, card := range deck {
		c, r, err := Commit(gens, card, rng)
		if err != nil {
			return nil, nil, fmt.Errorf("CommitDeck position %d: %w", i, err)
		}
		commitments[i] = c
		revelations[i] = r
	}
	return commitments, revelations, nil
}

// DecommitDeck reports whether every revelation opens the commitment at the
// same position.
func DecommitDeck(gens *Generators, commitments []*Commitment, revelations []*Revelation) bool {
	if len(commitments) != len(revelations) {
		panic(fmt.Sprintf("DecommitDeck lengths do not match %d, %d", len(commitments), len(revelations)))
	}
	ok := true
	for i := range commitments {
		if !Decommit(gens, commitments[i], revelations[i]) {
			ok = false
		}
	}
	return ok
}

func Blindings(revelations []*Revelation) []*ristretto.Scalar {
	rs := make([]*ristretto.Scalar, len(revelations))
	for i, r := range revelations {
		if r == nil || r.R == nil {
			panic(fmt.Sprintf("Blindings nil revelation at %d", i))
		}
		rs[i] = r.R
	}
	return rs
}
