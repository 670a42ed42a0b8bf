package skull

import (
	"fmt"
	"io"

	"github.com/bwesterb/go-ristretto"
)

// FAIR_SKULL_COUNT is how many Skulls an honest hand puts under the
// aggregate proof.
const FAIR_SKULL_COUNT = 1

// SchnorrSignature proves knowledge of x with Y = x*h, where Y is the
// aggregate of a set of commitments minus the target multiple of g.
type SchnorrSignature struct {
	S *ristretto.Scalar
	E *ristretto.Scalar
}

// SchnorrSign signs with key = rs[0] + ... + rs[n-1], the blinding factors of
// the revealed positions in the same order as their commitments.
func SchnorrSign(rng io.Reader, h *ristretto.Point, rs []*ristretto.Scalar) (*SchnorrSignature, error) {
	if len(rs) == 0 {
		panic("SchnorrSign empty blinding factors")
	}
	for i, r := range rs {
		if r == nil {
			panic(fmt.Sprintf("SchnorrSign nil blinding factor at %d", i))
		}
	}
	key := cloneScalar(rs[0])
	for _, r := range rs[1:] {
		key.Add(key, r)
	}

	k, err := randomScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("SchnorrSign nonce: %w", err)
	}
	var R ristretto.Point
	R.ScalarMult(h, k)
	e := challenge(&R)

	var s, ke ristretto.Scalar
	s.Sub(k, ke.Mul(key, e))
	return &SchnorrSignature{S: &s, E: e}, nil
}

// SignRevelations signs over the blinding factors of revelations.
func SignRevelations(rng io.Reader, gens *Generators, revelations []*Revelation) (*SchnorrSignature, error) {
	return SchnorrSign(rng, &gens.h, Blindings(revelations))
}

// CheckSchnorrSignature accepts iff the committed cards hold exactly
// FAIR_SKULL_COUNT Skulls and sig was made from their blinding factors.
func CheckSchnorrSignature(gens *Generators, cs []*Commitment, sig *SchnorrSignature) bool {
	return CheckSchnorrSignatureTarget(gens, cs, sig, FAIR_SKULL_COUNT)
}

// CheckSchnorrSignatureTarget is CheckSchnorrSignature with the Skull count
// given by the caller.
func CheckSchnorrSignatureTarget(gens *Generators, cs []*Commitment, sig *SchnorrSignature, skulls uint64) bool {
	if len(cs) == 0 {
		panic("CheckSchnorrSignature empty commitments")
	}
	if sig == nil || sig.S == nil || sig.E == nil {
		return false
	}
	for _, c := range cs {
		if c == nil {
			return false
		}
	}

	y := clonePoint(&cs[0].point)
	for _, c := range cs[1:] {
		y.Add(y, &c.point)
	}
	var target ristretto.Point
	y.Sub(y, target.ScalarMult(&gens.g, uint64ToScalar(skulls)))

	// R = s*h + e*y
	R := multiscalarMul([]*ristretto.Scalar{sig.S, sig.E}, []*ristretto.Point{&gens.h, y})
	return challenge(R).Equals(sig.E)
}

func challenge(R *ristretto.Point) *ristretto.Scalar {
	return hashToScalar(R.Bytes())
}
