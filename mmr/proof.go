package mmr

import "github.com/hunterfred/mmrng/digest"

// Proof is a self-contained inclusion proof: everything Verify needs to
// check that TargetNode sits at TargetIndex in an MMR of the stated Size
// with the stated Root, without consulting the live MMR at all.
//
// Proofs is built in three phases, and Verify must consume it in the same
// order: first the siblings encountered while climbing from TargetIndex up
// to its local peak, then (if that peak isn't the rightmost) one entry
// holding every peak to its right already bagged together, then the peaks
// to its left, right to left, one entry each.
type Proof struct {
	TargetNode  digest.H256
	TargetIndex uint64
	Proofs      []digest.H256
	Size        uint64
	Root        digest.H256
}

// Proof builds an inclusion proof for the node currently at idx. An
// out-of-range idx yields the zero-valued Proof, which Verify always
// rejects — proof construction never panics or errors.
func (m *MMR) Proof(idx uint64) Proof {
	if idx >= m.Size() {
		return Proof{}
	}
	return m.buildProof(idx, m.nodes[idx])
}

// ProofWithHash builds an inclusion proof for the first node carrying the
// given hash. Returns the zero-valued Proof if hash isn't present.
func (m *MMR) ProofWithHash(hash digest.H256) Proof {
	for i, n := range m.nodes {
		if n == hash {
			return m.buildProof(uint64(i), hash)
		}
	}
	return Proof{}
}

func (m *MMR) buildProof(idx uint64, target digest.H256) Proof {
	size := m.Size()
	peaks := GetPeaks(size)

	// Phase 1: climb from idx to its local peak, recording the sibling
	// merged in at each step.
	var siblings []digest.H256
	cur := idx
	h := m.heights[cur]
	for !isPeakIndex(peaks, cur) {
		isRight := cur+1 < size && m.heights[cur+1] == h+1

		var sibling, parent uint64
		if isRight {
			sibling = cur - ((uint64(2) << h) - 1)
			parent = cur + 1
		} else {
			sibling = cur + ((uint64(2) << h) - 1)
			parent = cur + (uint64(2) << h)
		}

		siblings = append(siblings, m.nodes[sibling])
		cur = parent
		h++
	}

	peakPos := peakPosition(peaks, cur)
	proofs := siblings

	// Phase 2: bag everything right of the local peak into a single entry.
	if peakPos < len(peaks)-1 {
		right := peaks[peakPos+1:]
		bagged := m.nodes[right[len(right)-1].Index]
		for i := len(right) - 2; i >= 0; i-- {
			bagged = digest.HashPair(m.hasher, m.nodes[right[i].Index], bagged)
		}
		proofs = append(proofs, bagged)
	}

	// Phase 3: append the peaks left of the local peak, right to left.
	for i := peakPos - 1; i >= 0; i-- {
		proofs = append(proofs, m.nodes[peaks[i].Index])
	}

	return Proof{
		TargetNode:  target,
		TargetIndex: idx,
		Proofs:      proofs,
		Size:        size,
		Root:        m.GetRoot(),
	}
}

func isPeakIndex(peaks []Peak, idx uint64) bool {
	for _, p := range peaks {
		if p.Index == idx {
			return true
		}
	}
	return false
}

func peakPosition(peaks []Peak, idx uint64) int {
	for i, p := range peaks {
		if p.Index == idx {
			return i
		}
	}
	return -1
}
