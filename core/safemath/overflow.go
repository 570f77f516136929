// Package safemath は符号なし整数演算のオーバーフロー検査と、
// 整数型間の変換可能性判定を提供します。
// ヒストグラムのビン数×次元数×出力数のようなサイズ計算は、
// 乗算・加算の連鎖がオーバーフローしないことを確認してから実行する必要があります。
package safemath

// Unsigned はオーバーフロー検査の対象となる符号なし整数型の制約です。
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed は符号付き整数型の制約です。
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Integer は変換可能性判定の対象となる整数型の制約です。
type Integer interface {
	Unsigned | Signed
}

// maxVal は型Tで表現可能な最大値を返します。
func maxVal[T Unsigned]() T {
	return ^T(0)
}

// MulOverflows は a*b*rest... の左から右への累積積のいずれかの段階で
// オーバーフローが発生するかどうかを判定します。
// 一度オーバーフローが検出されると、以降の乗数が0であっても結果はtrueのままです。
// 各段階の検査は乗算を実行する前に除算1回で行います。
func MulOverflows[T Unsigned](a, b T, rest ...T) bool {
	if mulPairOverflows(a, b) {
		return true
	}
	p := a * b
	for _, m := range rest {
		if mulPairOverflows(p, m) {
			return true
		}
		p *= m
	}
	return false
}

// mulPairOverflows は a*b がオーバーフローするかどうかを判定します。
// a が 0 または 1 の場合はオーバーフローしません。
func mulPairOverflows[T Unsigned](a, b T) bool {
	return a > 1 && maxVal[T]()/a < b
}

// AddOverflows は a+b+rest... の左から右への累積和のいずれかの段階で
// オーバーフローが発生するかどうかを判定します。
// 符号なし加算はラップアラウンドするため、和が第一項より小さくなった時点で
// オーバーフローと判定できます。
func AddOverflows[T Unsigned](a, b T, rest ...T) bool {
	if a+b < a {
		return true
	}
	s := a + b
	for _, v := range rest {
		if s+v < s {
			return true
		}
		s += v
	}
	return false
}
