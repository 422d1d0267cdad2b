// Package bloom implements a classical Bloom filter: a probabilistic
// set-membership sibling primitive layered on top of bitvec, sized by the
// standard m/k formulas and hashed with MurmurHash3.
package bloom

import (
	"math"

	"github.com/spaolacci/murmur3"

	"github.com/hunterfred/mmrng/bitvec"
)

// Filter is a Bloom filter over raw byte-slice values.
type Filter struct {
	bits      *bitvec.BitVec
	numHashes uint32
}

// New creates a Filter sized for expectedInserts elements at the given
// false-positive rate fpr. Bit count m and hash count k follow the
// standard formulas: m = ceil(-n*ln(fpr) / ln(2)^2), k = ceil((m/n)*ln(2)).
//
// Panics if fpr <= 0: an invalid false-positive rate is a caller bug.
func New(expectedInserts uint64, fpr float64) *Filter {
	if fpr <= 0.0 {
		panic("bloom: false positive rate must be larger than 0.0")
	}

	n := float64(expectedInserts)
	m := uint64(math.Ceil(-1.0 * n * math.Log(fpr) / (math.Ln2 * math.Ln2)))
	k := uint32(math.Ceil((float64(m) / n) * math.Ln2))

	return &Filter{
		bits:      bitvec.New(m),
		numHashes: k,
	}
}

// Insert adds value to the filter.
func (f *Filter) Insert(value []byte) {
	size := f.bits.Size()
	for i := uint32(0); i < f.numHashes; i++ {
		bit := uint64(murmur3.Sum32WithSeed(value, i)) % size
		f.bits.Set(bit)
	}
}

// MaybePresent reports whether value may have been inserted. False means
// definitely not inserted; true means possibly inserted (subject to the
// filter's false-positive rate).
func (f *Filter) MaybePresent(value []byte) bool {
	size := f.bits.Size()
	for i := uint32(0); i < f.numHashes; i++ {
		bit := uint64(murmur3.Sum32WithSeed(value, i)) % size
		if !f.bits.IsSet(bit) {
			return false
		}
	}
	return true
}
