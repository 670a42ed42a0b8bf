package skull

import (
	"errors"
	"fmt"
	"io"

	"github.com/bwesterb/go-ristretto"
	"golang.org/x/crypto/sha3"
)

const SEEDED_READER_DOMAIN_TAG = "SeededReader"

// ErrRandomness means the randomness source could not deliver. Nothing
// produced before the failure is returned.
var ErrRandomness = errors.New("randomness source failed")

// randomScalar reads 64 bytes and reduces them mod l, like Scalar::random.
func randomScalar(rng io.Reader) (*ristretto.Scalar, error) {
	var data [64]byte
	if _, err := io.ReadFull(rng, data[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomness, err)
	}
	var s ristretto.Scalar
	return s.SetReduced(&data), nil
}

// SeededReader is an endless SHAKE256 stream keyed by a seed. Two readers
// with the same seed yield the same bytes, which is all it is good for:
// tests and reproducible demos. Use crypto/rand.Reader for real games.
type SeededReader struct {
	xof sha3.ShakeHash
}

func NewSeededReader(seed []byte) *SeededReader {
	h := sha3.NewShake256()
	h.Write([]byte(SEEDED_READER_DOMAIN_TAG))
	h.Write(seed)
	return &SeededReader{xof: h}
}

func (r *SeededReader) Read(p []byte) (int, error) {
	return r.xof.Read(p)
}
