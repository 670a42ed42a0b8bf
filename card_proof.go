package skull

import (
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/bwesterb/go-ristretto"
	"github.com/gtank/merlin"
)

// CardProof shows that a commitment holds a given card without giving away
// the blinding factor. With P = C - v*g it proves knowledge of r in P = r*h.
type CardProof struct {
	// A = k*h
	A *ristretto.Point
	// Z = k + e*r
	Z *ristretto.Scalar
}

func cardStatement(gens *Generators, commitment *Commitment, card Card) *ristretto.Point {
	var vg, p ristretto.Point
	vg.ScalarMult(&gens.g, CardToScalar(card))
	return p.Sub(&commitment.point, &vg)
}

func cardTranscript(commitment *Commitment, card Card, A *ristretto.Point) *merlin.Transcript {
	t := CardProofDomainSep(InitialTranscript(CARD_PROOF_DOMAIN_TAG))
	appendBytes([]byte("C"), commitment.Bytes(), t)
	appendBytes([]byte("card"), []byte{byte(card)}, t)
	appendPoint("A", A, t)
	return t
}

// ProveCard proves that commitment opens to revelation.Card.
func ProveCard(rng io.Reader, gens *Generators, commitment *Commitment, revelation *Revelation) (*CardProof, error) {
	if !Decommit(gens, commitment, revelation) {
		return nil, fmt.Errorf("ProveCard revelation does not open commitment")
	}
	k, err := randomScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("ProveCard nonce: %w", err)
	}
	var A ristretto.Point
	A.ScalarMult(&gens.h, k)
	e := ChallengeScalar("e", cardTranscript(commitment, revelation.Card, &A))

	var z, er ristretto.Scalar
	z.Add(k, er.Mul(e, revelation.R))
	return &CardProof{A: &A, Z: &z}, nil
}

// VerifyCard checks Z*h == A + e*(C - v*g).
func VerifyCard(gens *Generators, commitment *Commitment, card Card, proof *CardProof) bool {
	if commitment == nil || proof == nil || proof.A == nil || proof.Z == nil || !card.Valid() {
		return false
	}
	P := cardStatement(gens, commitment, card)
	e := ChallengeScalar("e", cardTranscript(commitment, card, proof.A))

	var lhs, eP, rhs ristretto.Point
	lhs.ScalarMult(&gens.h, proof.Z)
	rhs.Add(proof.A, eP.ScalarMult(P, e))
	return subtle.ConstantTimeCompare(lhs.Bytes(), rhs.Bytes()) == 1
}
