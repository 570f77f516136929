// Package alloc はサイズ計算を検査してからメモリを確保します。
// 要素数×要素サイズの乗算がオーバーフローする場合や、合計バイト数が
// アドレス空間を超える場合は、確保を試みずにエラーを返します。
// 呼び出し側は返り値のエラーを必ず確認してください。
package alloc

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/YuminosukeSato/goebm/core/safemath"
	"github.com/YuminosukeSato/goebm/pkg/errors"
)

// Slice は要素数countの[]Tを確保します。
// 要素サイズが1バイトの場合は乗算検査を省略します。要素数が負の場合、
// サイズ計算がオーバーフローする場合、合計バイト数がintの上限を超える
// 場合は ErrAllocFailed に対応付くエラーを返します。
func Slice[T any](count int) ([]T, error) {
	var zero T
	elemSize := uint64(unsafe.Sizeof(zero))

	if count < 0 {
		return nil, errors.NewAllocError(0, elemSize, fmt.Sprintf("negative element count %d", count))
	}

	if elemSize > 1 {
		n := uint64(count)
		if safemath.MulOverflows(elemSize, n) {
			return nil, errors.NewAllocError(n, elemSize, "size computation overflows")
		}
		if elemSize*n > uint64(math.MaxInt) {
			return nil, errors.NewAllocError(n, elemSize, "size exceeds address space")
		}
	}

	return make([]T, count), nil
}

// Bytes は count×elemSize バイトのバッファを確保します。
// 要素サイズが実行時にしか決まらない場合（精度で切り替わるゾーンの
// ステージングバッファなど）に使用します。検査内容はSliceと同じです。
func Bytes(count, elemSize int) ([]byte, error) {
	if count < 0 || elemSize < 0 {
		return nil, errors.NewAllocError(0, 0, fmt.Sprintf("negative size %d x %d", count, elemSize))
	}

	if elemSize == 1 {
		return make([]byte, count), nil
	}

	n, sz := uint64(count), uint64(elemSize)
	if safemath.MulOverflows(sz, n) {
		return nil, errors.NewAllocError(n, sz, "size computation overflows")
	}
	total := sz * n
	if total > uint64(math.MaxInt) {
		return nil, errors.NewAllocError(n, sz, "size exceeds address space")
	}

	return make([]byte, total), nil
}
