// Package skull commits to Skull hands with Pedersen commitments on
// ristretto255 and proves how many Skulls a set of commitments holds.
package skull

import (
	"github.com/bwesterb/go-ristretto"
)

const (
	G_LABEL = "AMONI"
	H_LABEL = "SAGOD"
)

// Generators holds the two independent commitment bases. g carries the card
// value and h the blinding factor. Nobody knows log_g(h) since both come out
// of hashFromBytes.
//
// A Generators value is read-only once built and may be shared freely.
type Generators struct {
	g ristretto.Point
	h ristretto.Point
}

func NewGenerators() *Generators {
	return &Generators{
		g: *hashFromBytes([]byte(G_LABEL)),
		h: *hashFromBytes([]byte(H_LABEL)),
	}
}

// G returns a copy of the value base.
func (gens *Generators) G() *ristretto.Point {
	return clonePoint(&gens.g)
}

// H returns a copy of the blinding base.
func (gens *Generators) H() *ristretto.Point {
	return clonePoint(&gens.h)
}

// Commit computes value*g + blinding*h.
func (gens *Generators) Commit(value, blinding *ristretto.Scalar) *ristretto.Point {
	return multiscalarMul([]*ristretto.Scalar{value, blinding}, []*ristretto.Point{&gens.g, &gens.h})
}
