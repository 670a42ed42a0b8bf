package skull

import (
	"github.com/bwesterb/go-ristretto"
	"github.com/gtank/merlin"
)

const CARD_PROOF_DOMAIN_TAG = "skull card proof"

func InitialTranscript(label string) *merlin.Transcript {
	return merlin.NewTranscript(label)
}

func CardProofDomainSep(t *merlin.Transcript) *merlin.Transcript {
	appendBytes([]byte("dom-sep"), []byte("card proof v1"), t)
	return t
}

func appendBytes(field, data []byte, t *merlin.Transcript) {
	t.AppendMessage(field, data)
}

func appendPoint(label string, p *ristretto.Point, t *merlin.Transcript) {
	appendBytes([]byte(label), p.Bytes(), t)
}

func ChallengeScalar(label string, t *merlin.Transcript) *ristretto.Scalar {
	return fromBytesModOrderWide(t.ExtractBytes([]byte(label), 64))
}
