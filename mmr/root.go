package mmr

import "github.com/hunterfred/mmrng/digest"

// GetRoot bags the current peaks into a single root digest.
//
// An empty MMR has the zero digest as its root; a single-leaf MMR's root is
// that leaf's own hash, with no pairing. Otherwise the peaks are folded
// right to left: the rightmost peak seeds the accumulator, and each peak to
// its left is hashed in front of it, so the leftmost (tallest) peak ends up
// outermost in the final hash.
func (m *MMR) GetRoot() digest.H256 {
	size := m.Size()
	if size == 0 {
		return digest.Zero
	}

	peaks := GetPeaks(size)
	root := m.nodes[peaks[len(peaks)-1].Index]
	for i := len(peaks) - 2; i >= 0; i-- {
		root = digest.HashPair(m.hasher, m.nodes[peaks[i].Index], root)
	}
	return root
}
