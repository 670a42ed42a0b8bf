package skull

import (
	"fmt"

	"github.com/ChainSafe/go-schnorrkel"
)

const SEAL_CONTEXT = "skull deck seal"

// SealDeck signs the deck digest with a player's sr25519 identity key so the
// commitments cannot later be disowned.
func SealDeck(sk *schnorrkel.SecretKey, commitments []*Commitment) ([]byte, error) {
	t := schnorrkel.NewSigningContext([]byte(SEAL_CONTEXT), DeckDigest(commitments))
	sig, err := sk.Sign(t)
	if err != nil {
		return nil, fmt.Errorf("SealDeck: %w", err)
	}
	sig64 := sig.Encode()
	return sig64[:], nil
}

func VerifyDeckSeal(pk *schnorrkel.PublicKey, commitments []*Commitment, seal []byte) (bool, error) {
	if len(seal) != 64 {
		return false, fmt.Errorf("VerifyDeckSeal: %w: %d", ErrInvalidLength, len(seal))
	}
	var sig64 [64]byte
	copy(sig64[:], seal)
	signature := schnorrkel.Signature{}
	if err := signature.Decode(sig64); err != nil {
		return false, fmt.Errorf("VerifyDeckSeal: %w", err)
	}
	t := schnorrkel.NewSigningContext([]byte(SEAL_CONTEXT), DeckDigest(commitments))
	return pk.Verify(&signature, t), nil
}
