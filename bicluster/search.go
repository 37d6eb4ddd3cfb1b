package bicluster

import (
	"context"
	"encoding/binary"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bibit/bitword"
)

// MinThreshold is the smallest meaningful row/column threshold. A one-row or
// one-column cluster is trivial and excluded by convention.
const MinThreshold = 2

// Search enumerates all unordered row pairs of enc in ascending (m, n) order
// and returns every bicluster with at least minRows rows and minCols columns.
//
// For each pair the candidate pattern is the word-level AND of the two rows,
// with the tail word masked to its valid bits. A pattern is explored at most
// once per call: the first pair to produce it keeps it (first-found wins) and
// the grow step runs only for patterns that are both new and wide enough.
// Growth tests every remaining row q with rho AND row(q) == rho.
//
// Search never mutates enc. It is deterministic: identical inputs yield an
// identical, order-stable result. Cancellation is cooperative, checked once
// per outer row.
func Search(ctx context.Context, enc *bitword.EncodedMatrix, minRows, minCols int) ([]*Bicluster, error) {
	if enc == nil {
		return nil, ErrNilEncodedMatrix
	}
	if minRows < MinThreshold {
		return nil, &ErrInvalidThreshold{Name: "minRows", Value: minRows}
	}
	if minCols < MinThreshold {
		return nil, &ErrInvalidThreshold{Name: "minCols", Value: minCols}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows := enc.Rows()
	wordsPerRow := enc.WordsPerRow()
	tail := wordsPerRow - 1
	tailMask := enc.TailMask()

	var out []*Bicluster
	seen := make(map[string]struct{})

	rho := make([]uint64, wordsPerRow)
	key := make([]byte, wordsPerRow*8)

	for m := 0; m < rows-1; m++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rowM := enc.Row(m)

		for n := m + 1; n < rows; n++ {
			rowN := enc.Row(n)

			for k := range rho {
				rho[k] = rowM[k] & rowN[k]
			}
			// The tail word's unused high bits are undefined after AND;
			// mask them before counting, keying, or comparing.
			rho[tail] &= tailMask

			if enc.OnesCount(rho) < minCols {
				continue
			}

			for k, w := range rho {
				binary.LittleEndian.PutUint64(key[k*8:], w)
			}
			if _, dup := seen[string(key)]; dup {
				continue
			}
			seen[string(key)] = struct{}{}

			members := grow(enc, rho, m, n)
			if int(members.GetCardinality()) >= minRows {
				out = append(out, newBicluster(enc, members, rho))
			}
		}
	}

	return out, nil
}

// grow collects every row whose columns contain the candidate pattern rho.
// rho must already have its tail word masked, which makes the word-level
// containment test immune to undefined padding bits in the compared rows.
func grow(enc *bitword.EncodedMatrix, rho []uint64, m, n int) *roaring.Bitmap {
	members := roaring.New()
	members.Add(uint32(m))
	members.Add(uint32(n))

	rows := enc.Rows()
	for q := 0; q < rows; q++ {
		if q == m || q == n {
			continue
		}
		rowQ := enc.Row(q)
		contained := true
		for k, w := range rho {
			if w&rowQ[k] != w {
				contained = false
				break
			}
		}
		if contained {
			members.Add(uint32(q))
		}
	}

	return members
}
