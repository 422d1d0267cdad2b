package mmr

import "github.com/hunterfred/mmrng/digest"

// GetHashAt returns the node hash at the given MMR index, or the zero
// digest if idx is out of range.
//
// The bound is idx >= size rather than idx > size-1: the two are
// arithmetically equivalent for any size > 0, but the former also handles
// size == 0 correctly without an underflowing size-1 subtraction.
func (m *MMR) GetHashAt(idx uint64) digest.H256 {
	if idx >= m.Size() {
		return digest.Zero
	}
	return m.nodes[idx]
}
