package digest

// Hasher is a streaming 256-bit hash context. Implementations must reset
// cheaply: both the SHA-256 and the BLAKE3 adapters call the underlying
// hash.Hash's own in-place Reset.
type Hasher interface {
	// Write absorbs more input. Never returns an error; these are
	// in-memory hash functions, not I/O.
	Write(p []byte)

	// Sum finalizes the digest over everything written since the last
	// Reset, without consuming the hasher's state.
	Sum() H256

	// Reset clears the hasher back to its initial state for reuse.
	Reset()
}

// Variant names one of the two supported hash families. All hash operations
// within a single MMR must use the same variant consistently; this package
// never mixes them, and callers do not choose per-operation, only at
// construction.
type Variant uint8

const (
	// SHA256 selects the standard library's crypto/sha256.
	SHA256 Variant = iota
	// Blake3 selects lukechampine.com/blake3.
	Blake3
)

func (v Variant) String() string {
	switch v {
	case SHA256:
		return "sha256"
	case Blake3:
		return "blake3"
	default:
		return "unknown"
	}
}

// NewVariant constructs a fresh Hasher for the given variant explicitly,
// bypassing the build-time Default. Tests that pin a variant regardless of
// build configuration should use this rather than New.
func NewVariant(v Variant) Hasher {
	switch v {
	case Blake3:
		return newBlake3Hasher()
	case SHA256:
		return newSHA256Hasher()
	default:
		panic("digest: unknown hasher variant")
	}
}

// New constructs a Hasher for the build-selected Default variant: SHA-256 in
// debug builds, BLAKE3 in release builds (see variant_debug.go /
// variant_release.go).
func New() Hasher {
	return NewVariant(Default)
}

// HashPair hashes left‖right with the given hasher, resetting it first; the
// digest is that hasher's variant. Internal nodes throughout mmr and
// merkletree are built from this.
func HashPair(hasher Hasher, left, right H256) H256 {
	hasher.Reset()
	hasher.Write(left[:])
	hasher.Write(right[:])
	return hasher.Sum()
}
