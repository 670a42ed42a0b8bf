package skull

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/bwesterb/go-ristretto"
)

// hashFromBytes maps data to a group element with no known discrete log
// relative to any other output: SHA-512, then from-uniform-bytes.
func hashFromBytes(data []byte) *ristretto.Point {
	sum := sha512.Sum512(data)
	return pointFromUniformBytes(sum[:])
}

// pointFromUniformBytes adds the Elligator images of both 32-byte halves.
func pointFromUniformBytes(key []byte) *ristretto.Point {
	var r1Bytes, r2Bytes [32]byte
	copy(r1Bytes[:], key[:32])
	copy(r2Bytes[:], key[32:])
	var r, r1, r2 ristretto.Point
	return r.Add(r1.SetElligator(&r1Bytes), r2.SetElligator(&r2Bytes))
}

// hashToScalar is Scalar::from_hash over SHA-512.
func hashToScalar(data ...[]byte) *ristretto.Scalar {
	hash := sha512.New()
	for _, d := range data {
		hash.Write(d)
	}
	return fromBytesModOrderWide(hash.Sum(nil))
}

func fromBytesModOrderWide(data []byte) *ristretto.Scalar {
	var data64 [64]byte
	copy(data64[:], data)
	var hs ristretto.Scalar
	return hs.SetReduced(&data64)
}

func uint64ToScalar(i uint64) *ristretto.Scalar {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[:], i)
	var s ristretto.Scalar
	return s.SetBytes(&buf)
}

func multiscalarMul(scalars []*ristretto.Scalar, points []*ristretto.Point) *ristretto.Point {
	var p ristretto.Point
	p.SetZero()
	for i := range scalars {
		var t ristretto.Point
		t.ScalarMult(points[i], scalars[i])
		p.Add(&p, &t)
	}
	return &p
}

func clonePoint(p *ristretto.Point) *ristretto.Point {
	var z ristretto.Point
	z.SetZero()
	return z.Add(&z, p)
}

func cloneScalar(s *ristretto.Scalar) *ristretto.Scalar {
	var z ristretto.Scalar
	z.SetZero()
	return z.Add(&z, s)
}
