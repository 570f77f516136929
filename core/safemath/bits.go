package safemath

import "math/bits"

const (
	// WordBits はビンインデックスをビットパックする際のストレージワード幅です。
	WordBits = 64

	// MaxTensorDims はテンソルの次元数の上限です。
	// 各次元が最低2ビン持つため、これを超える次元数のテンソルは
	// セル数がアドレス空間を超えてしまい、確保できません。
	MaxTensorDims = bits.UintSize - 1
)

// BitsFor は [0, max] の範囲の値を表現するのに必要なビット数を返します。
// max が 0 の場合は 0 を返します。
func BitsFor[T Unsigned](max T) int {
	return bits.Len64(uint64(max))
}
