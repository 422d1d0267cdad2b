// Package merkletree implements a classic, SHA-256-only binary Merkle tree:
// a sibling primitive kept alongside the Merkle Mountain Range for callers
// that want a single fixed-size batch commitment rather than an
// append-only accumulator. It is not used by the mmr package itself.
package merkletree

import "github.com/hunterfred/mmrng/digest"

// Tree is a classic bottom-up binary Merkle tree. Odd levels are folded by
// duplicating the last node's hash as its own sibling, rather than by
// inserting a duplicate node — a level with an odd count of nodes produces
// a parent level of exactly ceil(count/2) nodes, never an evened-up count.
//
// Always SHA-256: the classic tree is kept only for interop with the
// sibling primitives documented alongside the MMR, which fixes it to one
// hash function rather than the MMR's pluggable variant.
type Tree struct {
	levels    [][]digest.H256
	numLeaves int
}

// New builds a Tree over leaves, bottom-up. Panics if leaves is empty: an
// empty tree has no root to request, and that is a caller bug, not a
// recoverable condition.
func New(leaves []digest.Hashable) *Tree {
	if len(leaves) == 0 {
		panic("merkletree: cannot build a tree from zero leaves")
	}

	hasher := digest.NewVariant(digest.SHA256)

	level := make([]digest.H256, len(leaves))
	for i, l := range leaves {
		level[i] = l.Hash(hasher)
	}

	levels := [][]digest.H256{level}
	for len(level) > 1 {
		next := make([]digest.H256, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left := level[i]
			right := left
			if i+1 < len(level) {
				right = level[i+1]
			}
			next = append(next, digest.HashPair(hasher, left, right))
		}
		levels = append(levels, next)
		level = next
	}

	return &Tree{levels: levels, numLeaves: len(leaves)}
}

// Root returns the tree's root digest: for a single-leaf tree this is
// simply that leaf's own hash, with no pairing.
func (t *Tree) Root() digest.H256 {
	top := t.levels[len(t.levels)-1]
	return top[0]
}

// NumLeaves returns the number of leaves the tree was built from.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}
