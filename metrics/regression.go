package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goebm/pkg/errors"
)

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if err := checkPair("mse", n, yPred.Len()); err != nil {
		return 0, err
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}

	return sum / float64(n), nil
}

// MSEMatrix は行列形式の入力に対してMSEを計算する
func MSEMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue != rPred || cTrue != cPred {
		return 0, errors.NewShapeError("mse", "predictions", rTrue*cTrue, rPred*cPred)
	}
	if cTrue != 1 {
		return 0, errors.Wrapf(errors.ErrBatchShape, "mse: expected a column vector, got %d columns", cTrue)
	}

	yTrueVec := mat.NewVecDense(rTrue, nil)
	yPredVec := mat.NewVecDense(rPred, nil)
	for i := 0; i < rTrue; i++ {
		yTrueVec.SetVec(i, yTrue.At(i, 0))
		yPredVec.SetVec(i, yPred.At(i, 0))
	}

	return MSE(yTrueVec, yPredVec)
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if err := checkPair("mae", n, yPred.Len()); err != nil {
		return 0, err
	}

	// MAE = (1/n) * Σ|yTrue - yPred|
	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue.AtVec(i) - yPred.AtVec(i))
	}

	return sum / float64(n), nil
}

// R2Score は決定係数（R²）を計算する
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if err := checkPair("r2", n, yPred.Len()); err != nil {
		return 0, err
	}

	var yMean float64
	for i := 0; i < n; i++ {
		yMean += yTrue.AtVec(i)
	}
	yMean /= float64(n)

	// 全変動（TSS）と残差変動（RSS）を計算
	var tss, rss float64
	for i := 0; i < n; i++ {
		yTrueVal := yTrue.AtVec(i)
		yPredVal := yPred.AtVec(i)

		tss += (yTrueVal - yMean) * (yTrueVal - yMean)
		rss += (yTrueVal - yPredVal) * (yTrueVal - yPredVal)
	}

	// 全変動が0の場合（すべてのyTrueが同じ値）
	if tss == 0 {
		return 0, errors.Newf("r2: total sum of squares is zero (no variance in yTrue)")
	}

	// R² = 1 - RSS/TSS
	return 1 - rss/tss, nil
}

// LogLoss は二値分類の対数損失を計算する。yProbは正例確率で、
// log(0)を避けるため確率は[eps, 1-eps]にクリップされる。
func LogLoss(yTrue, yProb *mat.VecDense) (float64, error) {
	// StabilizeLogの下限と同じ値。これより狭くクリップしても対数側で飽和する。
	const eps = 1e-10

	n := yTrue.Len()
	if err := checkPair("log_loss", n, yProb.Len()); err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		t := yTrue.AtVec(i)
		p := errors.ClipValue(yProb.AtVec(i), eps, 1-eps)
		sum -= t*errors.StabilizeLog(p) + (1-t)*errors.StabilizeLog(1-p)
	}

	return sum / float64(n), nil
}

// PinballLoss は分位点回帰のピンボール損失を計算する。
// alphaは(0, 1)の分位点レベルを指定する。
func PinballLoss(yTrue, yPred *mat.VecDense, alpha float64) (float64, error) {
	if !(alpha > 0 && alpha < 1) {
		return 0, errors.NewLossParamError("quantile", "alpha", "must be strictly between 0 and 1", alpha)
	}

	n := yTrue.Len()
	if err := checkPair("pinball", n, yPred.Len()); err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		if diff > 0 {
			sum += alpha * diff
		} else {
			sum += (alpha - 1) * diff
		}
	}

	return sum / float64(n), nil
}

func checkPair(op string, nTrue, nPred int) error {
	if nTrue == 0 {
		return errors.Wrapf(errors.ErrBatchShape, "%s: empty input", op)
	}
	if nPred != nTrue {
		return errors.NewShapeError(op, "predictions", nTrue, nPred)
	}
	return nil
}
