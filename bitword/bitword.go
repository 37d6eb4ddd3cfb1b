// Package bitword packs binary matrix rows into fixed-width unsigned words so
// that column comparisons run as word-level bitwise AND instead of per-cell
// loops.
//
// A width of w packs w consecutive columns into one uint64, most-significant
// bit first: the lowest column index of a group lands on the highest bit of
// its word. The trailing word of each row carries only the leftover columns
// as a narrower binary number; its unused high bits are never set by the
// encoder, and EncodedMatrix exposes TailBits/TailMask so consumers can mask
// them off before any equality comparison.
package bitword

import (
	"math/bits"

	"github.com/hupe1980/bibit/matrix"
)

const (
	// MinWidth is the smallest useful bitword width. A width of 1 would
	// degenerate to per-column comparison.
	MinWidth = 2

	// MaxWidth is bounded by the uint64 backing word.
	MaxWidth = 64
)

// EncodedMatrix is the bit-packed form of a BinaryMatrix at one width.
//
// It is immutable after Encode returns and is owned by a single sweep run;
// search never mutates it, so a run may share it across its own goroutines.
type EncodedMatrix struct {
	rows        int
	cols        int // original column count
	width       int
	wordsPerRow int
	tailBits    int    // semantically valid low bits of the last word per row
	tailMask    uint64 // (1<<tailBits)-1
	words       []uint64
}

// Encode packs every row of m into ceil(cols/width) words of the given width.
// The output is deterministic: identical inputs produce identical words.
func Encode(m *matrix.BinaryMatrix, width int) (*EncodedMatrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if width < MinWidth || width > MaxWidth {
		return nil, &ErrInvalidWidth{Width: width}
	}

	rows, cols := m.Rows(), m.Cols()
	wordsPerRow := (cols + width - 1) / width
	tailBits := cols - (wordsPerRow-1)*width

	e := &EncodedMatrix{
		rows:        rows,
		cols:        cols,
		width:       width,
		wordsPerRow: wordsPerRow,
		tailBits:    tailBits,
		tailMask:    (uint64(1) << tailBits) - 1,
		words:       make([]uint64, rows*wordsPerRow),
	}

	for i := 0; i < rows; i++ {
		row := m.Row(i)
		out := e.words[i*wordsPerRow : (i+1)*wordsPerRow]
		for k := range out {
			var w uint64
			end := (k + 1) * width
			if end > cols {
				end = cols
			}
			// MSB-first: the group's first column is the value's highest bit.
			for j := k * width; j < end; j++ {
				w = w<<1 | uint64(row[j])
			}
			out[k] = w
		}
	}

	return e, nil
}

// Rows returns the row count of the original matrix.
func (e *EncodedMatrix) Rows() int { return e.rows }

// Cols returns the column count of the original matrix.
func (e *EncodedMatrix) Cols() int { return e.cols }

// Width returns the bitword width used for encoding.
func (e *EncodedMatrix) Width() int { return e.width }

// WordsPerRow returns the number of words each row occupies.
func (e *EncodedMatrix) WordsPerRow() int { return e.wordsPerRow }

// TailBits returns how many low-order bits of the last word per row are
// semantically valid.
func (e *EncodedMatrix) TailBits() int { return e.tailBits }

// TailMask returns the mask selecting the valid bits of the last word.
func (e *EncodedMatrix) TailMask() uint64 { return e.tailMask }

// Row returns a read-only view of row i's words. Callers must not modify it.
func (e *EncodedMatrix) Row(i int) []uint64 {
	return e.words[i*e.wordsPerRow : (i+1)*e.wordsPerRow : (i+1)*e.wordsPerRow]
}

// DecodeRow expands row i back into one 0/1 value per original column.
func (e *EncodedMatrix) DecodeRow(i int) []uint8 {
	return e.DecodeWords(e.Row(i))
}

// DecodeWords expands a row-shaped word slice (for example the AND of two
// rows) into one 0/1 value per original column. The trailing word contributes
// only its TailBits low bits.
func (e *EncodedMatrix) DecodeWords(words []uint64) []uint8 {
	out := make([]uint8, e.cols)
	for k, w := range words {
		width := e.width
		if k == e.wordsPerRow-1 {
			w &= e.tailMask
			width = e.tailBits
		}
		base := k * e.width
		for b := 0; b < width; b++ {
			out[base+b] = uint8(w >> (width - 1 - b) & 1)
		}
	}
	return out
}

// OnesCount returns the number of set, semantically valid bits in a
// row-shaped word slice. The trailing word is masked first.
func (e *EncodedMatrix) OnesCount(words []uint64) int {
	var n int
	last := e.wordsPerRow - 1
	for k, w := range words {
		if k == last {
			w &= e.tailMask
		}
		n += bits.OnesCount64(w)
	}
	return n
}
