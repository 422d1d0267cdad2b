// Package digest provides the 256-bit digest value used throughout mmrng,
// and the pluggable hasher abstraction that produces it.
package digest

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Size is the width, in bytes, of an H256.
const Size = 32

// H256 is a fixed-width 256-bit digest, big-endian.
type H256 [Size]byte

// Zero is the all-zero digest, returned for empty trees and failed lookups.
var Zero = H256{}

// Bytes returns a copy of the digest's raw bytes.
func (h H256) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, h[:])
	return out
}

// FromBytes builds an H256 from a byte slice. Panics if b is not exactly
// Size bytes long: a caller handing us the wrong width is a programmer
// error, not a recoverable condition.
func FromBytes(b []byte) H256 {
	if len(b) != Size {
		panic(fmt.Sprintf("digest: FromBytes: want %d bytes, got %d", Size, len(b)))
	}
	var h H256
	copy(h[:], b)
	return h
}

// Hex renders the digest as lowercase, zero-padded hex, always 64 characters.
func (h H256) Hex() string {
	return hex.EncodeToString(h[:])
}

// ParseHex parses a 64-character hex string into an H256. Panics on a
// malformed or short string.
func ParseHex(s string) H256 {
	if len(s) != Size*2 {
		panic(fmt.Sprintf("digest: ParseHex: want %d hex chars, got %d", Size*2, len(s)))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(fmt.Sprintf("digest: ParseHex: %v", err))
	}
	return FromBytes(b)
}

// String satisfies fmt.Stringer with the same lowercase hex rendering as Hex.
func (h H256) String() string { return h.Hex() }

// Equal reports whether h and o hold the same bytes.
func (h H256) Equal(o H256) bool { return h == o }

// Less reports whether h sorts before o under big-endian lexicographic order.
func (h H256) Less(o H256) bool { return bytes.Compare(h[:], o[:]) < 0 }

// Compare returns -1, 0, or 1 as h is less than, equal to, or greater than o.
func (h H256) Compare(o H256) int { return bytes.Compare(h[:], o[:]) }

// IsZero reports whether h is the all-zero digest.
func (h H256) IsZero() bool { return h == Zero }

// Hashable is implemented by anything that can produce an H256 under a
// given Hasher. H256 itself is Hashable: hashing a digest re-digests its 32
// raw bytes.
type Hashable interface {
	Hash(h Hasher) H256
}

// Hash implements Hashable by re-digesting the receiver's raw bytes.
func (h H256) Hash(hasher Hasher) H256 {
	hasher.Reset()
	hasher.Write(h[:])
	return hasher.Sum()
}

// Bytes is a convenience Hashable wrapper for callers whose leaves are plain
// byte slices rather than typed values.
type Bytes []byte

// Hash implements Hashable by digesting the raw bytes directly.
func (b Bytes) Hash(hasher Hasher) H256 {
	hasher.Reset()
	hasher.Write(b)
	return hasher.Sum()
}
