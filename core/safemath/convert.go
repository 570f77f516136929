package safemath

import "unsafe"

// isSigned は型Tが符号付きかどうかを返します。
// 型パラメータごとにコンパイル時に定数化されるため、実行時コストはありません。
func isSigned[T Integer]() bool {
	var z T
	z--
	return z < 0
}

// widthOf は型Tのビット幅を返します。
func widthOf[T Integer]() uint {
	var z T
	return 8 * uint(unsafe.Sizeof(z))
}

// upperBound は型Tで表現可能な最大値をuint64として返します。
func upperBound[T Integer]() uint64 {
	w := widthOf[T]()
	if isSigned[T]() {
		return 1<<(w-1) - 1
	}
	return ^uint64(0) >> (64 - w)
}

// lowerMagnitude は型Tで表現可能な最小値の絶対値をuint64として返します。
// 符号なし型では0です。
func lowerMagnitude[T Integer]() uint64 {
	if !isSigned[T]() {
		return 0
	}
	return 1 << (widthOf[T]() - 1)
}

// negMagnitude は負の値vの絶対値をuint64として返します。
// 2の補数表現により、最小値（例: int64の最小値）でも正しい絶対値が得られます。
func negMagnitude[T Integer](v T) uint64 {
	return uint64(-int64(v))
}

// Fits は値vが型TToで正確に表現可能かどうかを判定します。
// 符号の組み合わせ4通りすべてに対して定義され、どの組み合わせでも
// 判定は完全です（表現可能ならtrue、不可能ならfalse）。
// 符号・ビット幅による分岐は型パラメータごとに定数化されます。
//
// 例:
//
//	safemath.Fits[int8](int16(-128))  // true
//	safemath.Fits[int8](int16(128))   // false
//	safemath.Fits[uint8](int16(-1))   // false
func Fits[TTo, TFrom Integer](v TFrom) bool {
	switch {
	case isSigned[TFrom]() && isSigned[TTo]():
		return fitsSignedToSigned[TTo](v)
	case isSigned[TFrom]():
		return fitsSignedToUnsigned[TTo](v)
	case isSigned[TTo]():
		return fitsUnsignedToSigned[TTo](v)
	default:
		return fitsUnsignedToUnsigned[TTo](v)
	}
}

// FitsBoth は値vが型TTo1とTTo2の両方で正確に表現可能かどうかを判定します。
func FitsBoth[TTo1, TTo2, TFrom Integer](v TFrom) bool {
	return Fits[TTo1](v) && Fits[TTo2](v)
}

// fitsSignedToSigned は符号付き→符号付きの変換可能性を判定します。
// 変換先の幅が変換元以上なら常に可能です。
func fitsSignedToSigned[TTo, TFrom Integer](v TFrom) bool {
	if widthOf[TTo]() >= widthOf[TFrom]() {
		return true
	}
	if v < 0 {
		return negMagnitude(v) <= lowerMagnitude[TTo]()
	}
	return uint64(v) <= upperBound[TTo]()
}

// fitsSignedToUnsigned は符号付き→符号なしの変換可能性を判定します。
// 負の値は幅に関わらず表現不可能です。
func fitsSignedToUnsigned[TTo, TFrom Integer](v TFrom) bool {
	if v < 0 {
		return false
	}
	if widthOf[TTo]() >= widthOf[TFrom]() {
		return true
	}
	return uint64(v) <= upperBound[TTo]()
}

// fitsUnsignedToSigned は符号なし→符号付きの変換可能性を判定します。
// 同じ幅では上位半分の値が表現不可能なため、境界判定が必要です。
func fitsUnsignedToSigned[TTo, TFrom Integer](v TFrom) bool {
	if widthOf[TTo]() > widthOf[TFrom]() {
		return true
	}
	return uint64(v) <= upperBound[TTo]()
}

// fitsUnsignedToUnsigned は符号なし→符号なしの変換可能性を判定します。
func fitsUnsignedToUnsigned[TTo, TFrom Integer](v TFrom) bool {
	if widthOf[TTo]() >= widthOf[TFrom]() {
		return true
	}
	return uint64(v) <= upperBound[TTo]()
}
