package merkletree

import "github.com/hunterfred/mmrng/digest"

// Verify checks a Merkle proof: starting from datumHash at idx, it folds
// proof entries bottom-up (consuming the top-down-ordered slice in
// reverse) using idx%2 to pick concatenation order at each level, and
// accepts iff the final fold equals root.
//
// leafCount is accepted for interface symmetry with the tree it verifies
// against but does not otherwise constrain the fold: a mismatched idx or
// proof length simply fails to reconstruct root.
func Verify(root, datumHash digest.H256, proof []digest.H256, idx, leafCount int) bool {
	hasher := digest.NewVariant(digest.SHA256)

	cur := datumHash
	cursor := idx
	for i := len(proof) - 1; i >= 0; i-- {
		if cursor%2 == 0 {
			cur = digest.HashPair(hasher, cur, proof[i])
		} else {
			cur = digest.HashPair(hasher, proof[i], cur)
		}
		cursor /= 2
	}
	return cur == root
}
