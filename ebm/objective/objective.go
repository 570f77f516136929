// Package objective implements the loss functions of the boosting engine.
//
// A loss is resolved from a textual specification like "mse" or
// "pseudo_huber:delta=1.5" through Build, which returns either a scalar
// objective (one score per sample) or a multiclass objective (one score per
// class). Objectives are pure per-sample math: buffer layout, packing and
// parallelism belong to the compute zones that drive them.
package objective

// Float constrains the floating point width a loss instance computes in.
// Compute zones instantiate each loss once per precision.
type Float interface {
	~float32 | ~float64
}

// Traits describe the kernel contract of a loss: how its gradient buffer is
// laid out and what inputs it reads.
type Traits struct {
	// UpdateScale multiplies leaf updates before they are added to the
	// sample scores. 1 for all built-in losses.
	UpdateScale float64

	// NeedsHessian reports whether the gradient buffer interleaves a
	// hessian after every gradient (stride 2 instead of 1).
	NeedsHessian bool

	// NoTargets reports that gradients are maintained incrementally from
	// score deltas alone and the kernel never reads targets.
	NoTargets bool
}

// Objective computes per-sample gradients and metric terms for losses with a
// single score per sample.
type Objective[F Float] interface {
	// Name returns the canonical loss name.
	Name() string

	// Traits returns the kernel contract for this loss.
	Traits() Traits

	// GradHess returns the gradient and hessian of the loss at the given
	// raw score. Losses without a usable hessian return 1.
	GradHess(score, target F) (grad, hess F)

	// Metric returns the per-sample metric term. The driver accumulates
	// terms sample-weighted and maps the sum through FinishMetric.
	Metric(score, target F) F

	// FinishMetric maps the accumulated metric sum to its reported form.
	// Averaging over the total weight is the caller's concern.
	FinishMetric(sum float64) float64
}

// MulticlassObjective computes row-wise gradients for losses with one score
// per class. The target is a class index into the score row.
type MulticlassObjective[F Float] interface {
	// Name returns the canonical loss name.
	Name() string

	// Traits returns the kernel contract for this loss.
	Traits() Traits

	// RowGradHess fills gradHess with one gradient/hessian pair per class
	// for a single sample. temp receives per-class intermediates and must
	// be at least len(scores) long; callers reuse it across rows but
	// never share it between goroutines.
	RowGradHess(scores, temp []F, target int, gradHess []F)

	// RowMetric returns the metric term for a single sample.
	RowMetric(scores, temp []F, target int) F

	// FinishMetric maps the accumulated metric sum to its reported form.
	FinishMetric(sum float64) float64
}
