package skull

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardToScalar(t *testing.T) {
	assert := assert.New(t)

	assert.True(CardToScalar(Skull).Equals(uint64ToScalar(1)))
	assert.True(CardToScalar(Rose).Equals(uint64ToScalar(0)))
	assert.True(Skull.Scalar().Equals(CardToScalar(Skull)))
	assert.Panics(func() { CardToScalar(Card(7)) })
}

func TestParseCard(t *testing.T) {
	assert := assert.New(t)

	for _, c := range []Card{Rose, Skull} {
		p, err := ParseCard(c.String())
		assert.Nil(err)
		assert.Equal(c, p)
	}
	c, err := ParseCard(" SKULL ")
	assert.Nil(err)
	assert.Equal(Skull, c)

	_, err = ParseCard("crown")
	assert.NotNil(err)
	assert.False(Card(2).Valid())
	assert.Equal("card(2)", Card(2).String())
}

func TestParseDeck(t *testing.T) {
	assert := assert.New(t)

	deck, err := ParseDeck("skull,rose,rose,rose")
	assert.Nil(err)
	assert.Equal(DefaultDeck(), deck)

	_, err = ParseDeck("skull,,rose")
	assert.NotNil(err)
}

func TestDefaultDeckIsCopy(t *testing.T) {
	assert := assert.New(t)

	deck := DefaultDeck()
	deck[0] = Rose
	assert.Equal(Skull, DEFAULT_DECK[0])
	assert.Len(DefaultDeck(), 4)
}
