package mmr

import "github.com/hunterfred/mmrng/digest"

// Append adds one leaf to the MMR, cascading parent hashes up for as long
// as the new node completes a pair with its left sibling.
//
// Grounded on the insert cascade in original_source's MMR::insert: compute
// how many parents this append will trigger (from the heights array as it
// stood *before* the append), push the leaf, then fold left-right pairs
// bottom-up for that many steps.
func (m *MMR) Append(leaf digest.Hashable) {
	k := m.Size()
	needed := HashesNeeded(m.heights, m.maxHeight, k)

	m.nodes = append(m.nodes, leaf.Hash(m.hasher))
	m.heights = append(m.heights, 0)

	height := uint64(0)
	for i := uint64(0); i < needed; i++ {
		newIdx := m.Size()
		right := m.nodes[newIdx-1]
		leftIdx := newIdx - (uint64(2) << height)
		left := m.nodes[leftIdx]

		parent := digest.HashPair(m.hasher, left, right)
		m.nodes = append(m.nodes, parent)

		height++
		m.heights = append(m.heights, height)
	}

	if height > m.maxHeight {
		m.maxHeight = height
	}
}

// AppendMany appends leaves in order, one at a time.
func (m *MMR) AppendMany(leaves []digest.Hashable) {
	for _, leaf := range leaves {
		m.Append(leaf)
	}
}
