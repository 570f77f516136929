package errors

import (
	"math"
)

// 数値ガードヘルパー。勾配バッファやスコアバッファ、集約済みメトリックが
// NaN/Infに汚染されていないかをブースティングラウンドの境界で検査し、
// 目的関数の外側で使う対数・指数・除算を飽和域でも安全に評価します。

// CheckNumericalStability はバッファにNaNまたはInfが含まれていないかを
// 検査します。検出時はNumericalInstabilityErrorを返し、問題の値は
// エラーメッセージの表示上限までしか収集しません。
func CheckNumericalStability(operation string, values []float64, iteration int) error {
	const keep = 5

	var bad []float64
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad = append(bad, v)
			if len(bad) == keep {
				break
			}
		}
	}
	if bad != nil {
		return NewNumericalInstabilityError(operation, bad, iteration)
	}
	return nil
}

// CheckScalar はFinishMetric後の集約値など、単一のfloat64を検査します。
func CheckScalar(operation string, value float64, iteration int) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewNumericalInstabilityError(operation, []float64{value}, iteration)
	}
	return nil
}

// SafeDivide はニュートン更新の勾配和/ヘシアン和のような除算を保護します。
// 分母が実質ゼロのビンは更新なし（0）として扱います。
func SafeDivide(numerator, denominator float64) float64 {
	if math.Abs(denominator) < 1e-10 {
		return 0
	}
	return numerator / denominator
}

// ClipValue はvalueを[lo, hi]に制限します。
func ClipValue(value, lo, hi float64) float64 {
	return math.Min(math.Max(value, lo), hi)
}

// StabilizeLog はlog(0)を避けるため、epsilon未満の入力を底上げして
// 評価します。確率空間のメトリック計算で使います。
func StabilizeLog(value float64) float64 {
	const epsilon = 1e-10
	if value < epsilon {
		value = epsilon
	}
	return math.Log(value)
}

// StabilizeExp は入力を飽和させてからexpを評価します。上側はfloat64で
// 表現できる範囲に、下側はアンダーフローとして正確に0に落とします。
func StabilizeExp(value float64) float64 {
	const maxExp = 700.0
	switch {
	case value > maxExp:
		return math.Exp(maxExp)
	case value < -maxExp:
		return 0
	default:
		return math.Exp(value)
	}
}

// LogSumExp はlog(Σ exp(values))を最大値シフトで安定に計算します。
// 空入力はlog(0)すなわち-Infです。
func LogSumExp(values []float64) float64 {
	if len(values) == 0 {
		return math.Inf(-1)
	}

	shift := values[0]
	for _, v := range values[1:] {
		if v > shift {
			shift = v
		}
	}
	if math.IsInf(shift, -1) {
		return math.Inf(-1)
	}

	var sum float64
	for _, v := range values {
		sum += math.Exp(v - shift)
	}
	return shift + math.Log(sum)
}
