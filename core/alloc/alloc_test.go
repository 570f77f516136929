package alloc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/goebm/pkg/errors"
)

func TestSlice(t *testing.T) {
	t.Run("Float64", func(t *testing.T) {
		s, err := Slice[float64](100)
		require.NoError(t, err)
		assert.Len(t, s, 100)
	})

	t.Run("Struct", func(t *testing.T) {
		type gradHess struct {
			Grad float64
			Hess float64
		}
		s, err := Slice[gradHess](64)
		require.NoError(t, err)
		assert.Len(t, s, 64)
	})

	t.Run("Zero count", func(t *testing.T) {
		s, err := Slice[uint64](0)
		require.NoError(t, err)
		assert.Len(t, s, 0)
	})

	t.Run("Byte elements skip the multiply", func(t *testing.T) {
		s, err := Slice[byte](4096)
		require.NoError(t, err)
		assert.Len(t, s, 4096)
	})

	t.Run("Negative count", func(t *testing.T) {
		s, err := Slice[float64](-1)
		assert.Nil(t, s)
		assert.True(t, errors.Is(err, errors.ErrAllocFailed))
	})

	t.Run("Size computation overflows", func(t *testing.T) {
		// 8バイト要素 × 2^61要素 = 2^64バイト
		s, err := Slice[float64](1 << 61)
		assert.Nil(t, s)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrAllocFailed))

		var allocErr *errors.AllocError
		require.True(t, errors.As(err, &allocErr))
		assert.Equal(t, uint64(8), allocErr.ElemSize)
	})

	t.Run("Size exceeds address space", func(t *testing.T) {
		// 乗算自体は収まるがintの上限を超える
		s, err := Slice[uint16]((1 << 62) + 1)
		assert.Nil(t, s)
		assert.True(t, errors.Is(err, errors.ErrAllocFailed))
	})
}

func TestBytes(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		b, err := Bytes(10, 3)
		require.NoError(t, err)
		assert.Len(t, b, 30)
	})

	t.Run("Unit element size", func(t *testing.T) {
		b, err := Bytes(128, 1)
		require.NoError(t, err)
		assert.Len(t, b, 128)
	})

	t.Run("Zero element size", func(t *testing.T) {
		b, err := Bytes(100, 0)
		require.NoError(t, err)
		assert.Len(t, b, 0)
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := Bytes(-1, 8)
		assert.True(t, errors.Is(err, errors.ErrAllocFailed))

		_, err = Bytes(8, -1)
		assert.True(t, errors.Is(err, errors.ErrAllocFailed))
	})

	t.Run("Overflow", func(t *testing.T) {
		_, err := Bytes(math.MaxInt, 16)
		assert.True(t, errors.Is(err, errors.ErrAllocFailed))
	})

	t.Run("Exceeds address space", func(t *testing.T) {
		_, err := Bytes((1<<62)+1, 2)
		assert.True(t, errors.Is(err, errors.ErrAllocFailed))
	})
}
