// Package mmr implements an append-only Merkle Mountain Range: a forest of
// perfect binary Merkle trees ("peaks"), strictly decreasing in height
// left-to-right, that together commit to every leaf ever appended.
//
// # Why a forest instead of one tree
//
// A classic Merkle tree needs to know its final leaf count before it can be
// built, or it has to pad to the next power of two. An MMR never pads: each
// append either starts a brand new one-node peak, or triggers a cascade of
// merges wherever two peaks of equal height meet. The layout is the
// post-order traversal of the conceptual (infinite) binary tree the leaves
// are filling in — children before parents, left before right — which is
// also exactly the order nodes are appended in. That coincidence is what
// lets the whole structure live in two flat, append-only slices (nodes and
// their heights) instead of a tree of boxed nodes: no node ever needs to
// know about a node to its right, because nothing to its right exists yet
// when it is created.
//
//	     6
//	   /   \
//	  2     5      9
//	 / \   / \    / \
//	0   1 3   4  7   8
//
// # Bagging the peaks
//
// At any point the forest may have more than one peak (whenever the leaf
// count isn't itself a run of merges down to one tree). The root is the
// single digest produced by folding the peaks right to left:
// root = H(peak[0], H(peak[1], H(peak[2], peak[3]))). Folding right to left
// rather than left to right is what lets an inclusion proof for a leaf
// behind several peaks bag all of the peaks to its right into one digest,
// rather than carrying one sibling hash per peak.
//
// # Heights, not pointers
//
// Every node's height is cheap to recompute from nothing but the total
// node count — heights is a parallel slice purely for O(1) lookup, not
// because it can't be derived (GetHeights derives exactly this slice from
// a size alone). Given a node's index and height, its sibling and parent
// indices are simple arithmetic on powers of two: a node at height h
// occupies a subtree of 2^(h+1)-1 nodes, so jumping to its sibling or to
// the tree to its left is "add or subtract (2 << h) - 1", and the parent of
// a pair sits immediately after its right child.
// That arithmetic, not pointer chasing, is the whole of proof generation
// and verification.
package mmr
