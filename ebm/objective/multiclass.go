package objective

// hessianFloor keeps softmax hessians positive: a class probability of
// exactly 0 or 1 would zero the hessian and break leaf value updates.
const hessianFloor = 1e-16

// SoftmaxLoss implements multiclass cross-entropy with a softmax over one
// raw score per class.
type SoftmaxLoss[F Float] struct {
	classes int
}

func NewSoftmaxLoss[F Float](classes int) *SoftmaxLoss[F] {
	return &SoftmaxLoss[F]{classes: classes}
}

func (*SoftmaxLoss[F]) Name() string { return "log_loss" }

// Classes returns the number of score columns per sample.
func (o *SoftmaxLoss[F]) Classes() int { return o.classes }

func (*SoftmaxLoss[F]) Traits() Traits {
	return Traits{UpdateScale: 1, NeedsHessian: true}
}

func (o *SoftmaxLoss[F]) RowGradHess(scores, temp []F, target int, gradHess []F) {
	softmaxInto(scores, temp[:len(scores)])

	for k, p := range temp[:len(scores)] {
		grad := p
		if k == target {
			grad = p - 1
		}

		// Diagonal approximation of the softmax hessian.
		hess := p * (1 - p)
		if hess < hessianFloor {
			hess = hessianFloor
		}

		gradHess[2*k] = grad
		gradHess[2*k+1] = hess
	}
}

func (o *SoftmaxLoss[F]) RowMetric(scores, temp []F, target int) F {
	// Cross entropy of the true class: log(sum(exp(scores))) - scores[target].
	return logSumExp(scores) - scores[target]
}

func (*SoftmaxLoss[F]) FinishMetric(sum float64) float64 { return sum }
