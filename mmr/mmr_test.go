package mmr

import (
	"testing"

	"github.com/hunterfred/mmrng/digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Leaf values from the spec's concrete scenario table, SHA-256 variant.
var (
	leafA = digest.ParseHex("0a0b0c0d0e0f0e0d0a0b0c0d0e0f0e0d0a0b0c0d0e0f0e0d0a0b0c0d0e0f0e0d")
	leafB = digest.ParseHex("0101010101010101010101010101010101010101010101010101010101010202")
	leafC = digest.ParseHex("0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f")
	leafD = digest.ParseHex(repeatHex("0a"))
	leafE = digest.ParseHex(repeatHex("0b"))
)

func repeatHex(byteHex string) string {
	s := ""
	for i := 0; i < 32; i++ {
		s += byteHex
	}
	return s
}

func hashables(leaves ...digest.H256) []digest.Hashable {
	out := make([]digest.Hashable, len(leaves))
	for i, l := range leaves {
		out[i] = l
	}
	return out
}

func TestGetRootVectors(t *testing.T) {
	cases := []struct {
		name  string
		input []digest.H256
		want  string
	}{
		{"A", []digest.H256{leafA}, "b69566be6e1720872f73651d1851a0eae0060a132cf0f64a0ffaea248de6cba0"},
		{"AB", []digest.H256{leafA, leafB}, "6b787718210e0b3b608814e04e61fde06d0df794319a12162f287412df3ec920"},
		{"ABC", []digest.H256{leafA, leafB, leafC}, "803132c20187edf39bf8bda091f5a18b7636a561e7baea8a44b66abbb5233459"},
		{"ABCD", []digest.H256{leafA, leafB, leafC, leafD}, "9fa2c4790f864188b21964c64ed2b819093a0f8355ef26bb0e21272fa138568f"},
		{"ABCDE", []digest.H256{leafA, leafB, leafC, leafD, leafE}, "027c60a23121a81d3462b38dffdce03e824c22374f2a5b91e52a0c8dbe4d27cd"},
		{"ABCDED", []digest.H256{leafA, leafB, leafC, leafD, leafE, leafD}, "a692508f99fdb399c150548429c82bebc1449272d0332f87a9f75d5236bb2b8f"},
		{"ABCDEDE", []digest.H256{leafA, leafB, leafC, leafD, leafE, leafD, leafE}, "a6234d1190212b5cf597809a1dc8921315ba598dbb3ac173b360b57b57a89290"},
		{"ABCDEDED", []digest.H256{leafA, leafB, leafC, leafD, leafE, leafD, leafE, leafD}, "9c3bc81f464a27fdb12619fcd6113aea2dae2b9bdb438d03630ad32f6a1b4a65"},
		{"ABCDEDEDA", []digest.H256{leafA, leafB, leafC, leafD, leafE, leafD, leafE, leafD, leafA}, "64431e691d526bb429e74c08392725c30bdd4267e26a40fa67aef4e23a3e1d22"},
		{"ABCDEDEDAB", []digest.H256{leafA, leafB, leafC, leafD, leafE, leafD, leafE, leafD, leafA, leafB}, "aded7e7dea5572260a5855163e8fff2665305020d93bbf43215128441f2ac6f8"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewWithVariant(digest.SHA256)
			m.AppendMany(hashables(tc.input...))

			want := digest.ParseHex(tc.want)
			assert.Equal(t, want, m.GetRoot())
		})
	}
}

func TestGetRootEmptyIsZero(t *testing.T) {
	m := NewWithVariant(digest.SHA256)
	assert.Equal(t, digest.Zero, m.GetRoot())
}

func TestConstructionPathEquivalence(t *testing.T) {
	leaves := hashables(leafA, leafB, leafC, leafD, leafE, leafD, leafE, leafD, leafA, leafB)

	bulk := NewWithVariant(digest.SHA256)
	bulk.AppendMany(leaves)

	incremental := NewWithVariant(digest.SHA256)
	for _, l := range leaves {
		incremental.Append(l)
	}

	require.Equal(t, bulk.Size(), incremental.Size())
	assert.Equal(t, bulk.nodes, incremental.nodes)
	assert.Equal(t, bulk.heights, incremental.heights)
	assert.Equal(t, bulk.GetRoot(), incremental.GetRoot())
}

func TestVerifyRoundTripSmallSizes(t *testing.T) {
	for n := 1; n <= 25; n++ {
		m := NewWithVariant(digest.SHA256)
		leaves := make([]digest.Hashable, n)
		for i := range leaves {
			leaves[i] = leafA
		}
		m.AppendMany(leaves)

		// verify every leaf position in the *leaf* sequence, converted to
		// its MMR node index.
		for k := uint64(0); k < uint64(n); k++ {
			idx := ConvertToMMRIndex(k)
			proof := m.Proof(idx)
			assert.Truef(t, m.VerifyLive(proof), "n=%d leaf=%d mmrIdx=%d", n, k, idx)
			assert.True(t, Verify(digest.NewVariant(digest.SHA256), proof))
		}
	}
}

func TestVerifyRoundTripLarge(t *testing.T) {
	const n = 1000
	m := NewWithVariant(digest.SHA256)
	leaves := make([]digest.Hashable, n)
	for i := range leaves {
		leaves[i] = leafA
	}
	m.AppendMany(leaves)

	for k := uint64(0); k < n; k++ {
		idx := ConvertToMMRIndex(k)
		proof := m.Proof(idx)
		require.True(t, m.VerifyLive(proof), "leaf=%d mmrIdx=%d", k, idx)
	}
}

func TestVerifyRejectsOutOfRange(t *testing.T) {
	m := NewWithVariant(digest.SHA256)
	m.AppendMany(hashables(leafA, leafB, leafC))

	proof := m.Proof(m.Size())
	assert.Equal(t, Proof{}, proof)
	assert.False(t, Verify(digest.NewVariant(digest.SHA256), proof))
}

func TestVerifyRejectsTamperedTarget(t *testing.T) {
	m := NewWithVariant(digest.SHA256)
	m.AppendMany(hashables(leafA, leafB, leafC, leafD, leafE))

	proof := m.Proof(2)
	require.True(t, m.VerifyLive(proof))

	tampered := proof
	tampered.TargetNode[0] ^= 0xff
	assert.False(t, Verify(digest.NewVariant(digest.SHA256), tampered))
}

func TestVerifyRejectsTamperedProofElement(t *testing.T) {
	m := NewWithVariant(digest.SHA256)
	m.AppendMany(hashables(leafA, leafB, leafC, leafD, leafE, leafD, leafE, leafD, leafA, leafB))

	proof := m.Proof(4)
	require.True(t, m.VerifyLive(proof))
	require.NotEmpty(t, proof.Proofs)

	tampered := proof
	tampered.Proofs = append([]digest.H256(nil), proof.Proofs...)
	tampered.Proofs[0][0] ^= 0xff
	assert.False(t, Verify(digest.NewVariant(digest.SHA256), tampered))
}

func TestProofWithHashFindsFirstOccurrence(t *testing.T) {
	m := NewWithVariant(digest.SHA256)
	m.AppendMany(hashables(leafA, leafB, leafC))

	target := leafA.Hash(digest.NewVariant(digest.SHA256))
	proof := m.ProofWithHash(target)
	assert.Equal(t, uint64(0), proof.TargetIndex)
	assert.True(t, m.VerifyLive(proof))
}

func TestProofWithHashUnknownIsRejected(t *testing.T) {
	m := NewWithVariant(digest.SHA256)
	m.AppendMany(hashables(leafA, leafB, leafC))

	proof := m.ProofWithHash(digest.Zero)
	assert.False(t, Verify(digest.NewVariant(digest.SHA256), proof))
}

func TestGetHashAtOutOfRangeIsZero(t *testing.T) {
	m := NewWithVariant(digest.SHA256)
	m.AppendMany(hashables(leafA, leafB))

	assert.Equal(t, digest.Zero, m.GetHashAt(m.Size()))
	assert.Equal(t, digest.Zero, m.GetHashAt(1000))

	empty := NewWithVariant(digest.SHA256)
	assert.Equal(t, digest.Zero, empty.GetHashAt(0))
}
