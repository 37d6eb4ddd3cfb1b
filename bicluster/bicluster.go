package bicluster

import (
	"encoding/binary"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/zeebo/xxh3"

	"github.com/hupe1980/bibit/bitword"
)

// Bicluster is a constant all-ones submatrix: a row set and a column set such
// that every row has a 1 in every column. Immutable after Search returns it.
type Bicluster struct {
	// Rows holds the indices of all member rows (size >= the search's
	// minimum row threshold).
	Rows *roaring.Bitmap

	// Cols holds the indices of the shared columns (size >= the search's
	// minimum column threshold).
	Cols *roaring.Bitmap

	// Pattern is the shared column pattern as a length-J bit vector:
	// bit j set means column j is part of the bicluster.
	Pattern *bitset.BitSet

	// words is the bitword representation of Pattern, tail word masked.
	words []uint64
}

// NumRows returns the number of member rows.
func (b *Bicluster) NumRows() int { return int(b.Rows.GetCardinality()) }

// NumCols returns the number of shared columns.
func (b *Bicluster) NumCols() int { return int(b.Cols.GetCardinality()) }

// Words returns a copy of the pattern's bitword representation.
func (b *Bicluster) Words() []uint64 {
	out := make([]uint64, len(b.words))
	copy(out, b.words)
	return out
}

// Fingerprint returns a 64-bit xxh3 hash of the canonical pattern bytes.
// Two biclusters from any run share a fingerprint iff they share a pattern
// (up to hash collision), which makes cross-run comparisons cheap. Exact
// dedup inside one search call does not rely on it.
func (b *Bicluster) Fingerprint() uint64 {
	return xxh3.Hash(b.canonical(nil))
}

// canonical appends the little-endian bytes of the pattern words to dst.
func (b *Bicluster) canonical(dst []byte) []byte {
	for _, w := range b.words {
		dst = binary.LittleEndian.AppendUint64(dst, w)
	}
	return dst
}

// Summary is a serialization-friendly projection of a Bicluster for the
// external reporting stage.
type Summary struct {
	Rows    []uint32 `json:"rows"`
	Cols    []uint32 `json:"cols"`
	Pattern string   `json:"pattern"`
}

// Summarize converts the bicluster into plain index slices and a '0'/'1'
// pattern string.
func (b *Bicluster) Summarize() Summary {
	buf := make([]byte, b.Pattern.Len())
	for j := range buf {
		if b.Pattern.Test(uint(j)) {
			buf[j] = '1'
		} else {
			buf[j] = '0'
		}
	}
	return Summary{
		Rows:    b.Rows.ToArray(),
		Cols:    b.Cols.ToArray(),
		Pattern: string(buf),
	}
}

// newBicluster materializes the final record from a grown candidate.
func newBicluster(enc *bitword.EncodedMatrix, rows *roaring.Bitmap, rho []uint64) *Bicluster {
	words := make([]uint64, len(rho))
	copy(words, rho)

	pattern := bitset.New(uint(enc.Cols()))
	cols := roaring.New()
	for j, v := range enc.DecodeWords(words) {
		if v == 1 {
			pattern.Set(uint(j))
			cols.Add(uint32(j))
		}
	}

	return &Bicluster{
		Rows:    rows,
		Cols:    cols,
		Pattern: pattern,
		words:   words,
	}
}
