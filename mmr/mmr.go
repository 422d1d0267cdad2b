package mmr

import "github.com/hunterfred/mmrng/digest"

// MMR is an append-only Merkle Mountain Range over digest.H256 nodes. The
// zero value is not ready for use; construct with New or NewFrom.
//
// MMR has value-ish semantics in spirit (nothing here mutates a leaf once
// written) but is held behind a pointer because nodes/heights grow via
// append — copying an *MMR copies the header, not a fresh backing array.
// It is a single-writer structure: concurrent mutation is not supported,
// concurrent read-only access to a stable snapshot is safe.
type MMR struct {
	nodes     []digest.H256
	heights   []uint64
	maxHeight uint64
	hasher    digest.Hasher
}

// New creates an empty MMR using the build-selected default hasher variant.
func New() *MMR {
	return NewWithVariant(digest.Default)
}

// NewWithVariant creates an empty MMR pinned to an explicit hasher variant,
// for callers (tests, cross-variant tooling) that must not depend on the
// build-time Default.
func NewWithVariant(v digest.Variant) *MMR {
	return &MMR{hasher: digest.NewVariant(v)}
}

// NewFrom creates an MMR and bulk-appends leaves, using the default hasher
// variant. Equivalent to New() followed by AppendMany(leaves); see
// mmr_test.go for the construction-path-equivalence property this relies on.
func NewFrom(leaves []digest.Hashable) *MMR {
	m := New()
	m.AppendMany(leaves)
	return m
}

// Size returns the current number of nodes (leaves and internal nodes
// together) in the MMR.
func (m *MMR) Size() uint64 {
	return uint64(len(m.nodes))
}

// MaxHeight returns the height of the tallest node seen so far; zero for an
// empty or single-leaf MMR.
func (m *MMR) MaxHeight() uint64 {
	return m.maxHeight
}
