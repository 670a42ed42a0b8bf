package skull

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/bwesterb/go-ristretto"
)

const (
	POINT_SIZE      = 32
	SCALAR_SIZE     = 32
	SIGNATURE_SIZE  = 2 * SCALAR_SIZE
	CARD_PROOF_SIZE = POINT_SIZE + SCALAR_SIZE
)

var (
	ErrInvalidLength = errors.New("invalid encoding length")
	ErrInvalidPoint  = errors.New("invalid ristretto point encoding")
	ErrInvalidScalar = errors.New("non-canonical scalar encoding")
)

func decodePoint(b []byte) (*ristretto.Point, error) {
	if len(b) != POINT_SIZE {
		return nil, fmt.Errorf("%w: point %d", ErrInvalidLength, len(b))
	}
	var buf [32]byte
	copy(buf[:], b)
	var p ristretto.Point
	if !p.SetBytes(&buf) {
		return nil, ErrInvalidPoint
	}
	return &p, nil
}

func EncodeScalar(s *ristretto.Scalar) []byte {
	return s.Bytes()
}

// DecodeScalar only accepts the reduced little-endian form.
func DecodeScalar(b []byte) (*ristretto.Scalar, error) {
	if len(b) != SCALAR_SIZE {
		return nil, fmt.Errorf("%w: scalar %d", ErrInvalidLength, len(b))
	}
	var buf [32]byte
	copy(buf[:], b)
	var s ristretto.Scalar
	s.SetBytes(&buf)
	if !bytes.Equal(s.Bytes(), b) {
		return nil, ErrInvalidScalar
	}
	return &s, nil
}

func (c *Commitment) Bytes() []byte {
	return c.point.Bytes()
}

func (c *Commitment) Hex() string {
	return hex.EncodeToString(c.Bytes())
}

func CommitmentFromBytes(b []byte) (*Commitment, error) {
	p, err := decodePoint(b)
	if err != nil {
		return nil, fmt.Errorf("commitment: %w", err)
	}
	return newCommitment(p), nil
}

func CommitmentFromHex(h string) (*Commitment, error) {
	buf, err := hex.DecodeString(h)
	if err != nil {
		return nil, err
	}
	return CommitmentFromBytes(buf)
}

// Bytes encodes s || e.
func (sig *SchnorrSignature) Bytes() []byte {
	buf := make([]byte, 0, SIGNATURE_SIZE)
	buf = append(buf, sig.S.Bytes()...)
	buf = append(buf, sig.E.Bytes()...)
	return buf
}

func SchnorrSignatureFromBytes(b []byte) (*SchnorrSignature, error) {
	if len(b) != SIGNATURE_SIZE {
		return nil, fmt.Errorf("signature: %w: %d", ErrInvalidLength, len(b))
	}
	s, err := DecodeScalar(b[:SCALAR_SIZE])
	if err != nil {
		return nil, fmt.Errorf("signature s: %w", err)
	}
	e, err := DecodeScalar(b[SCALAR_SIZE:])
	if err != nil {
		return nil, fmt.Errorf("signature e: %w", err)
	}
	return &SchnorrSignature{S: s, E: e}, nil
}

// Bytes encodes A || Z.
func (p *CardProof) Bytes() []byte {
	buf := make([]byte, 0, CARD_PROOF_SIZE)
	buf = append(buf, p.A.Bytes()...)
	buf = append(buf, p.Z.Bytes()...)
	return buf
}

func CardProofFromBytes(b []byte) (*CardProof, error) {
	if len(b) != CARD_PROOF_SIZE {
		return nil, fmt.Errorf("card proof: %w: %d", ErrInvalidLength, len(b))
	}
	a, err := decodePoint(b[:POINT_SIZE])
	if err != nil {
		return nil, fmt.Errorf("card proof A: %w", err)
	}
	z, err := DecodeScalar(b[POINT_SIZE:])
	if err != nil {
		return nil, fmt.Errorf("card proof Z: %w", err)
	}
	return &CardProof{A: a, Z: z}, nil
}
