package skull

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"testing"

	"github.com/bwesterb/go-ristretto"
	"github.com/stretchr/testify/assert"
)

func TestCardProof(t *testing.T) {
	assert := assert.New(t)

	gens := NewGenerators()
	cs, rs, err := CommitDeck(gens, DefaultDeck(), rand.Reader)
	assert.Nil(err)

	for i := range cs {
		proof, err := ProveCard(rand.Reader, gens, cs[i], rs[i])
		assert.Nil(err)
		assert.True(VerifyCard(gens, cs[i], rs[i].Card, proof))

		wrong := Rose
		if rs[i].Card == Rose {
			wrong = Skull
		}
		assert.False(VerifyCard(gens, cs[i], wrong, proof))
		assert.False(VerifyCard(gens, cs[(i+1)%len(cs)], rs[i].Card, proof))
		log.Println("card proof", i, hex.EncodeToString(proof.Bytes()))
	}
}

func TestCardProofRejects(t *testing.T) {
	assert := assert.New(t)

	gens := NewGenerators()
	c, r, err := Commit(gens, Skull, rand.Reader)
	assert.Nil(err)

	_, err = ProveCard(rand.Reader, gens, c, &Revelation{R: r.R, Card: Rose})
	assert.NotNil(err)

	proof, err := ProveCard(rand.Reader, gens, c, r)
	assert.Nil(err)

	var one, z ristretto.Scalar
	one.SetOne()
	assert.False(VerifyCard(gens, c, Skull, &CardProof{A: proof.A, Z: z.Add(proof.Z, &one)}))
	assert.False(VerifyCard(gens, c, Skull, nil))
	assert.False(VerifyCard(gens, c, Card(5), proof))
}

func TestCardProofEncoding(t *testing.T) {
	assert := assert.New(t)

	gens := NewGenerators()
	c, r, err := Commit(gens, Rose, rand.Reader)
	assert.Nil(err)
	proof, err := ProveCard(rand.Reader, gens, c, r)
	assert.Nil(err)

	buf := proof.Bytes()
	assert.Len(buf, CARD_PROOF_SIZE)
	dec, err := CardProofFromBytes(buf)
	assert.Nil(err)
	assert.True(VerifyCard(gens, c, Rose, dec))

	_, err = CardProofFromBytes(buf[:10])
	assert.True(errors.Is(err, ErrInvalidLength))
	for i := 0; i < POINT_SIZE; i++ {
		buf[i] = 0
	}
	buf[0] = 1
	_, err = CardProofFromBytes(buf)
	assert.True(errors.Is(err, ErrInvalidPoint))
}
