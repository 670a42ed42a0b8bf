package skull

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/btcsuite/btcutil/base58"
	"github.com/dchest/blake2b"
)

const DECK_DIGEST_DOMAIN_TAG = "skull_deck_digest"

// DeckDigest hashes the ordered commitments of a deck. Reordering or
// replacing any commitment changes it.
func DeckDigest(commitments []*Commitment) []byte {
	hash := blake2b.New256()
	hash.Write([]byte(DECK_DIGEST_DOMAIN_TAG))
	count := make([]byte, 8)
	binary.LittleEndian.PutUint64(count, uint64(len(commitments)))
	hash.Write(count)
	for _, c := range commitments {
		hash.Write(c.Bytes())
	}
	return hash.Sum(nil)
}

// DeckFingerprint is a printable form of DeckDigest for players to compare
// out of band: base58(crc32 || digest).
func DeckFingerprint(commitments []*Commitment) string {
	digest := DeckDigest(commitments)
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, crc32.ChecksumIEEE(digest))
	buf = append(buf, digest...)
	return base58.Encode(buf)
}
