package skull

import (
	"fmt"
	"strings"

	"github.com/bwesterb/go-ristretto"
)

// Card is one of the two faces in a Skull hand. Values outside Rose and
// Skull are not cards.
type Card uint8

const (
	Rose Card = iota
	Skull
)

// DEFAULT_DECK is the four-card hand each player starts with.
var DEFAULT_DECK = [4]Card{Skull, Rose, Rose, Rose}

func DefaultDeck() []Card {
	deck := make([]Card, len(DEFAULT_DECK))
	copy(deck, DEFAULT_DECK[:])
	return deck
}

// CardToScalar is the public encoding: Skull is 1, Rose is 0.
func CardToScalar(c Card) *ristretto.Scalar {
	switch c {
	case Rose:
		return uint64ToScalar(0)
	case Skull:
		return uint64ToScalar(1)
	default:
		panic(fmt.Errorf("CardToScalar invalid card %d", uint8(c)))
	}
}

func (c Card) Scalar() *ristretto.Scalar {
	return CardToScalar(c)
}

func (c Card) Valid() bool {
	return c == Rose || c == Skull
}

func (c Card) String() string {
	switch c {
	case Rose:
		return "rose"
	case Skull:
		return "skull"
	default:
		return fmt.Sprintf("card(%d)", uint8(c))
	}
}

func ParseCard(s string) (Card, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rose":
		return Rose, nil
	case "skull":
		return Skull, nil
	default:
		return 0, fmt.Errorf("invalid card %q", s)
	}
}

// ParseDeck reads a comma separated list such as "skull,rose,rose,rose".
func ParseDeck(s string) ([]Card, error) {
	parts := strings.Split(s, ",")
	deck := make([]Card, 0, len(parts))
	for _, p := range parts {
		c, err := ParseCard(p)
		if err != nil {
			return nil, err
		}
		deck = append(deck, c)
	}
	return deck, nil
}
