package compute

import (
	"github.com/YuminosukeSato/goebm/core/alloc"
	"github.com/YuminosukeSato/goebm/core/safemath"
	"github.com/YuminosukeSato/goebm/ebm/bridge"
	"github.com/YuminosukeSato/goebm/pkg/errors"
)

// BitsPerIndex returns the storage bits available to one index in a word
// holding packWidth indexes. Widths that do not divide the word evenly
// leave the top bits unused.
func BitsPerIndex(packWidth int) int {
	return safemath.WordBits / packWidth
}

// PackWidthFor returns the densest pack width for bin indexes up to
// maxIndex: as many indexes per word as fit when each one gets just enough
// bits.
func PackWidthFor(maxIndex uint64) int {
	bits := safemath.BitsFor(maxIndex)
	if bits == 0 {
		bits = 1
	}
	return safemath.WordBits / bits
}

// PackIndexes packs bin indexes into 64-bit storage words, packWidth
// indexes per word with the first index in the lowest bits. Indexes that do
// not fit in their slot are rejected.
func PackIndexes(indexes []uint64, packWidth int) ([]uint64, error) {
	if packWidth < 1 || packWidth > safemath.WordBits {
		return nil, errors.NewShapeError("pack_indexes", "pack_width", safemath.WordBits, packWidth)
	}

	// Shift counts of 64 yield 0, so the full-width mask falls out of the
	// same expression.
	bitsPer := uint(BitsPerIndex(packWidth))
	limit := uint64(1)<<bitsPer - 1

	words, err := alloc.Slice[uint64](bridge.PackedWords(len(indexes), packWidth))
	if err != nil {
		return nil, err
	}

	for i, idx := range indexes {
		if idx > limit {
			return nil, errors.Wrapf(errors.ErrBatchShape,
				"pack_indexes: index %d at position %d exceeds %d bits", idx, i, bitsPer)
		}
		slot := uint(i % packWidth)
		words[i/packWidth] |= idx << (slot * bitsPer)
	}
	return words, nil
}

// UnpackIndex extracts the index in the given slot of a storage word.
func UnpackIndex(word uint64, slot, bitsPer int) uint64 {
	mask := uint64(1)<<uint(bitsPer) - 1
	return (word >> (uint(slot) * uint(bitsPer))) & mask
}
