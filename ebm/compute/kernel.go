package compute

import (
	"github.com/YuminosukeSato/goebm/ebm/bridge"
	"github.com/YuminosukeSato/goebm/ebm/objective"
	"github.com/YuminosukeSato/goebm/pkg/errors"
)

const kernelOp = "apply_update"

// kernelBatch is the precision-typed view the generic kernels run over. The
// 64-bit zone aliases batch buffers directly; the 32-bit zone stages
// converted copies through one and writes the results back.
type kernelBatch[F objective.Float] struct {
	outputs    int
	packWidth  int
	bitsPer    int
	calcMetric bool
	samples    int
	packed     []uint64

	update   []F
	targetsF []F
	targetsC []int
	weights  []F
	scores   []F
	gradHess []F
	temp     []F

	// metric accumulates in float64 regardless of the zone precision.
	metric float64
}

func (k *kernelBatch[F]) binAt(i int) int {
	word := k.packed[i/k.packWidth]
	return int(UnpackIndex(word, i%k.packWidth, k.bitsPer))
}

// runKernel dispatches a staged batch to the kernel matching the loss form.
func runKernel[F objective.Float](built *objective.Built[F], k *kernelBatch[F]) error {
	switch {
	case built.Multi != nil:
		return runMulticlass(built.Multi, k)
	case built.Traits.NoTargets:
		return runIncremental(k)
	default:
		return runScalar(built.Scalar, k, built.Traits.NeedsHessian)
	}
}

// runScalar updates scores and recomputes gradients for single-score losses.
func runScalar[F objective.Float](obj objective.Objective[F], k *kernelBatch[F], hasHessian bool) error {
	if k.targetsF == nil {
		return errors.Wrap(errors.ErrBatchShape, kernelOp+": loss requires []float64 targets")
	}

	stride := bridge.GradStride(hasHessian)
	bins := len(k.update)
	for i := 0; i < k.samples; i++ {
		bin := k.binAt(i)
		if bin >= bins {
			return errors.NewShapeError(kernelOp, "bin", bins, bin)
		}

		score := k.scores[i] + k.update[bin]
		k.scores[i] = score

		target := k.targetsF[i]
		grad, hess := obj.GradHess(score, target)
		k.gradHess[i*stride] = grad
		if hasHessian {
			k.gradHess[i*stride+1] = hess
		}

		if k.calcMetric {
			m := float64(obj.Metric(score, target))
			if k.weights != nil {
				m *= float64(k.weights[i])
			}
			k.metric += m
		}
	}
	return nil
}

// runIncremental is the targetless fast path: the gradient is score minus
// target, so it absorbs score deltas directly and the squared gradient is
// the metric term.
func runIncremental[F objective.Float](k *kernelBatch[F]) error {
	bins := len(k.update)
	for i := 0; i < k.samples; i++ {
		bin := k.binAt(i)
		if bin >= bins {
			return errors.NewShapeError(kernelOp, "bin", bins, bin)
		}

		delta := k.update[bin]
		k.scores[i] += delta
		grad := k.gradHess[i] + delta
		k.gradHess[i] = grad

		if k.calcMetric {
			m := float64(grad) * float64(grad)
			if k.weights != nil {
				m *= float64(k.weights[i])
			}
			k.metric += m
		}
	}
	return nil
}

// runMulticlass updates one score row per sample and fills interleaved
// gradient/hessian pairs for every class.
func runMulticlass[F objective.Float](obj objective.MulticlassObjective[F], k *kernelBatch[F]) error {
	if k.targetsC == nil {
		return errors.Wrap(errors.ErrBatchShape, kernelOp+": multiclass loss requires []int targets")
	}

	bins := len(k.update) / k.outputs
	for i := 0; i < k.samples; i++ {
		bin := k.binAt(i)
		if bin >= bins {
			return errors.NewShapeError(kernelOp, "bin", bins, bin)
		}

		target := k.targetsC[i]
		if target < 0 || target >= k.outputs {
			return errors.NewShapeError(kernelOp, "target", k.outputs, target)
		}

		row := k.scores[i*k.outputs : (i+1)*k.outputs]
		upd := k.update[bin*k.outputs : (bin+1)*k.outputs]
		for c := range row {
			row[c] += upd[c]
		}

		obj.RowGradHess(row, k.temp, target, k.gradHess[i*k.outputs*2:(i+1)*k.outputs*2])

		if k.calcMetric {
			m := float64(obj.RowMetric(row, k.temp, target))
			if k.weights != nil {
				m *= float64(k.weights[i])
			}
			k.metric += m
		}
	}
	return nil
}
