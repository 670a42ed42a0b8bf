package skull

import (
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/bwesterb/go-ristretto"
)

// Commitment is C = v*g + r*h for a card value v and blinding r. It is
// never modified after Commit returns it.
type Commitment struct {
	point ristretto.Point
}

// Revelation opens a commitment. R stays secret until the owner decides to
// show the card.
type Revelation struct {
	R    *ristretto.Scalar
	Card Card
}

func newCommitment(p *ristretto.Point) *Commitment {
	return &Commitment{point: *p}
}

// Point returns a copy of the committed group element.
func (c *Commitment) Point() *ristretto.Point {
	return clonePoint(&c.point)
}

func (c *Commitment) Equal(o *Commitment) bool {
	if c == nil || o == nil {
		return false
	}
	return subtle.ConstantTimeCompare(c.point.Bytes(), o.point.Bytes()) == 1
}

// Commit hides card behind a fresh blinding factor drawn from rng.
func Commit(gens *Generators, card Card, rng io.Reader) (*Commitment, *Revelation, error) {
	v := CardToScalar(card)
	r, err := randomScalar(rng)
	if err != nil {
		return nil, nil, fmt.Errorf("Commit %s: %w", card, err)
	}
	return newCommitment(gens.Commit(v, r)), &Revelation{R: r, Card: card}, nil
}

// Decommit reports whether revelation opens commitment.
func Decommit(gens *Generators, commitment *Commitment, revelation *Revelation) bool {
	if commitment == nil || revelation == nil || revelation.R == nil || !revelation.Card.Valid() {
		return false
	}
	expected := gens.Commit(CardToScalar(revelation.Card), revelation.R)
	return subtle.ConstantTimeCompare(expected.Bytes(), commitment.point.Bytes()) == 1
}
