package merkletree

import "github.com/hunterfred/mmrng/digest"

// Proof builds an inclusion proof for the leaf at index i: the sibling
// digest at each level from the bottom up, but returned top-down (the
// level just under the root first, the leaf's immediate sibling last) —
// Verify walks it in reverse to fold bottom-up again.
//
// Panics if i is out of range: requesting a proof for a leaf that doesn't
// exist is a caller bug, same as any other precondition violation in this
// package.
func (t *Tree) Proof(i int) []digest.H256 {
	if i < 0 || i >= t.numLeaves {
		panic("merkletree: proof requested for a non-existing leaf")
	}

	path := make([]digest.H256, 0, len(t.levels)-1)
	idx := i
	for lvl := 0; lvl < len(t.levels)-1; lvl++ {
		level := t.levels[lvl]

		var sibling digest.H256
		if idx%2 == 0 {
			if idx+1 < len(level) {
				sibling = level[idx+1]
			} else {
				sibling = level[idx]
			}
		} else {
			sibling = level[idx-1]
		}
		path = append(path, sibling)
		idx /= 2
	}

	// Reverse in place: siblings were collected bottom-up, but the proof
	// is handed to callers top-down.
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}
