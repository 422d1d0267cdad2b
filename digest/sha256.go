package digest

import (
	"crypto/sha256"
	"hash"
)

// sha256Hasher adapts crypto/sha256 to the Hasher interface. The stdlib
// SHA-256 hash.Hash resets cheaply in place, so Reset reuses the same
// context rather than constructing a new one.
type sha256Hasher struct {
	h hash.Hash
}

func newSHA256Hasher() Hasher {
	return &sha256Hasher{h: sha256.New()}
}

func (s *sha256Hasher) Write(p []byte) {
	_, _ = s.h.Write(p)
}

func (s *sha256Hasher) Sum() H256 {
	return FromBytes(s.h.Sum(nil))
}

func (s *sha256Hasher) Reset() {
	s.h.Reset()
}
