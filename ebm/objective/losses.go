package objective

import "math"

// MSELoss implements squared error boosting.
//
// It is the one loss whose gradients update incrementally: the gradient is
// score minus target, so adding a score delta to the score adds the same
// delta to the gradient and the kernel never needs targets after setup.
type MSELoss[F Float] struct{}

func NewMSELoss[F Float]() *MSELoss[F] {
	return &MSELoss[F]{}
}

func (*MSELoss[F]) Name() string { return "mse" }

func (*MSELoss[F]) Traits() Traits {
	return Traits{UpdateScale: 1, NoTargets: true}
}

func (*MSELoss[F]) GradHess(score, target F) (F, F) {
	return score - target, 1
}

func (*MSELoss[F]) Metric(score, target F) F {
	diff := score - target
	return diff * diff
}

func (*MSELoss[F]) FinishMetric(sum float64) float64 { return sum }

// LogLoss implements binary cross-entropy on a single raw score.
type LogLoss[F Float] struct{}

func NewLogLoss[F Float]() *LogLoss[F] {
	return &LogLoss[F]{}
}

func (*LogLoss[F]) Name() string { return "log_loss" }

func (*LogLoss[F]) Traits() Traits {
	return Traits{UpdateScale: 1, NeedsHessian: true}
}

func (*LogLoss[F]) GradHess(score, target F) (F, F) {
	p := sigmoid(score)
	return p - target, p * (1 - p)
}

func (*LogLoss[F]) Metric(score, target F) F {
	// Negative log likelihood: log(1+exp(score)) - target*score.
	return softplus(score) - target*score
}

func (*LogLoss[F]) FinishMetric(sum float64) float64 { return sum }

// PseudoHuberLoss implements the pseudo-Huber loss, a smooth approximation
// of Huber loss that is quadratic near zero and linear for large residuals.
type PseudoHuberLoss[F Float] struct {
	delta   F
	deltaSq F
}

func NewPseudoHuberLoss[F Float](delta float64) *PseudoHuberLoss[F] {
	return &PseudoHuberLoss[F]{
		delta:   F(delta),
		deltaSq: F(delta * delta),
	}
}

func (*PseudoHuberLoss[F]) Name() string { return "pseudo_huber" }

func (*PseudoHuberLoss[F]) Traits() Traits {
	return Traits{UpdateScale: 1, NeedsHessian: true}
}

func (o *PseudoHuberLoss[F]) GradHess(score, target F) (F, F) {
	residual := score - target
	scaled := residual / o.delta
	root := F(math.Sqrt(float64(1 + scaled*scaled)))
	return residual / root, 1 / (root * root * root)
}

func (o *PseudoHuberLoss[F]) Metric(score, target F) F {
	residual := score - target
	scaled := residual / o.delta
	root := F(math.Sqrt(float64(1 + scaled*scaled)))
	return o.deltaSq * (root - 1)
}

func (*PseudoHuberLoss[F]) FinishMetric(sum float64) float64 { return sum }

// GammaDevianceLoss implements gamma deviance regression with a log link:
// the prediction is exp(score).
type GammaDevianceLoss[F Float] struct{}

func NewGammaDevianceLoss[F Float]() *GammaDevianceLoss[F] {
	return &GammaDevianceLoss[F]{}
}

func (*GammaDevianceLoss[F]) Name() string { return "gamma_deviance" }

func (*GammaDevianceLoss[F]) Traits() Traits {
	return Traits{UpdateScale: 1, NeedsHessian: true}
}

func (*GammaDevianceLoss[F]) GradHess(score, target F) (F, F) {
	ratio := target / expClamped(score)
	return 1 - ratio, ratio
}

func (*GammaDevianceLoss[F]) Metric(score, target F) F {
	frac := float64(target) / (float64(expClamped(score)) + 1e-9)
	return F(frac - 1 - math.Log(frac))
}

// FinishMetric reports the deviance, twice the accumulated half-deviance.
func (*GammaDevianceLoss[F]) FinishMetric(sum float64) float64 { return 2 * sum }

// PoissonDevianceLoss implements Poisson deviance regression with a log
// link: the prediction is exp(score).
type PoissonDevianceLoss[F Float] struct{}

func NewPoissonDevianceLoss[F Float]() *PoissonDevianceLoss[F] {
	return &PoissonDevianceLoss[F]{}
}

func (*PoissonDevianceLoss[F]) Name() string { return "poisson_deviance" }

func (*PoissonDevianceLoss[F]) Traits() Traits {
	return Traits{UpdateScale: 1, NeedsHessian: true}
}

func (*PoissonDevianceLoss[F]) GradHess(score, target F) (F, F) {
	pred := expClamped(score)
	return pred - target, pred
}

func (*PoissonDevianceLoss[F]) Metric(score, target F) F {
	pred := float64(expClamped(score))
	term := pred - float64(target)
	// target*log(target/pred) vanishes as target approaches zero.
	if target > 0 {
		term += float64(target) * math.Log(float64(target)/pred)
	}
	return F(term)
}

// FinishMetric reports the deviance, twice the accumulated half-deviance.
func (*PoissonDevianceLoss[F]) FinishMetric(sum float64) float64 { return 2 * sum }

// QuantileLoss implements quantile regression with the pinball loss.
// Under-prediction costs alpha per unit, so high alpha values fit upper
// quantiles. With alpha 0.5 it reduces to half the absolute error.
type QuantileLoss[F Float] struct {
	alpha F
}

func NewQuantileLoss[F Float](alpha float64) *QuantileLoss[F] {
	return &QuantileLoss[F]{alpha: F(alpha)}
}

func (*QuantileLoss[F]) Name() string { return "quantile" }

func (*QuantileLoss[F]) Traits() Traits {
	return Traits{UpdateScale: 1}
}

func (o *QuantileLoss[F]) GradHess(score, target F) (F, F) {
	diff := score - target
	if diff > 0 {
		return 1 - o.alpha, 1
	}
	if diff < 0 {
		return -o.alpha, 1
	}
	return 0, 1
}

func (o *QuantileLoss[F]) Metric(score, target F) F {
	diff := score - target
	if diff > 0 {
		return (1 - o.alpha) * diff
	}
	return o.alpha * -diff
}

func (*QuantileLoss[F]) FinishMetric(sum float64) float64 { return sum }
