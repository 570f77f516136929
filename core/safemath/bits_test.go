package safemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitsFor(t *testing.T) {
	testCases := []struct {
		max  uint64
		bits int
	}{
		{max: 0, bits: 0},
		{max: 1, bits: 1},
		{max: 2, bits: 2},
		{max: 3, bits: 2},
		{max: 4, bits: 3},
		{max: 7, bits: 3},
		{max: 8, bits: 4},
		{max: 127, bits: 7},
		{max: 128, bits: 8},
		{max: 255, bits: 8},
		{max: 256, bits: 9},
		{max: math.MaxUint16, bits: 16},
		{max: math.MaxUint32, bits: 32},
		{max: math.MaxInt64, bits: 63},
		{max: math.MaxUint64, bits: 64},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.bits, BitsFor(tc.max), "BitsFor(%d)", tc.max)
	}
}

func TestBitsForNarrowTypes(t *testing.T) {
	assert.Equal(t, 8, BitsFor(uint8(math.MaxUint8)))
	assert.Equal(t, 7, BitsFor(uint8(math.MaxInt8)))
	assert.Equal(t, 16, BitsFor(uint16(math.MaxUint16)))
	assert.Equal(t, 15, BitsFor(uint16(math.MaxInt16)))
	assert.Equal(t, 32, BitsFor(uint32(math.MaxUint32)))
	assert.Equal(t, 31, BitsFor(uint32(math.MaxInt32)))
}

func TestWordBits(t *testing.T) {
	assert.Equal(t, 64, WordBits)
	assert.GreaterOrEqual(t, MaxTensorDims, 31)
}
