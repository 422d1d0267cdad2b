package mmr

import "math/bits"

// GetHeights computes the canonical heights array for an MMR of the given
// size: GetHeights(m.Size())[i] always equals the live heights of any MMR
// holding that many nodes, regardless of how it was built up to that size.
//
// The algorithm simulates binary carry. Walking positions left to right, we
// track how many nodes we've placed at the current level. Once that counter
// reaches 2, the pair has just been merged into a parent one level up, so we
// carry: bump the level, and the counter for the level we just left resets.
// After placing a node, if its level doesn't yet have a pair (counter < 2),
// the next node must start back at level 0 — there is nothing left to merge
// until a fresh leaf arrives.
func GetHeights(size uint64) []uint64 {
	heights := make([]uint64, size)
	if size == 0 {
		return heights
	}

	// One counter per level that could plausibly appear: size itself
	// bounds the tree depth, so bits.Len64(size) levels is always enough.
	counters := make([]uint64, bits.Len64(size)+1)
	level := uint64(0)

	for i := range heights {
		if counters[level] == 2 {
			level++
			counters[level-1] = 0
		}
		heights[i] = level
		counters[level]++

		if counters[level] < 2 {
			level = 0
		}
	}
	return heights
}
