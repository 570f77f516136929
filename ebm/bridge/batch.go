package bridge

import (
	"github.com/YuminosukeSato/goebm/core/safemath"
	"github.com/YuminosukeSato/goebm/pkg/errors"
)

// UpdateBatch aggregates everything one ApplyUpdate call reads and writes.
// The caller owns every slice; the handle never retains the batch or any of
// its buffers past the call.
//
// Bin indexes arrive bit-packed: each storage word in Packed holds PackWidth
// indexes of WordBits/PackWidth bits each, first index in the lowest bits.
// PackWidth 1 means one index per word, i.e. effectively unpacked.
type UpdateBatch struct {
	// Outputs is the score dimensionality per sample. Must match the
	// handle's Config.
	Outputs int

	// PackWidth is the number of bin indexes per storage word, in [1, 64].
	PackWidth int

	// CalcMetric requests metric accumulation into Metric during the pass.
	CalcMetric bool

	// MulticlassTemp is per-call scratch for multiclass losses; required
	// with len >= Outputs when Outputs >= 2. Never shared between
	// concurrent callers.
	MulticlassTemp []float64

	// UpdateScores is the additive update tensor, laid out as
	// bins x Outputs.
	UpdateScores []float64

	// Samples is the number of samples covered by this batch.
	Samples int

	// Packed holds the bit-packed per-sample bin indexes,
	// ceil(Samples/PackWidth) words.
	Packed []uint64

	// Targets is []float64 for single-score losses (binary classification
	// encodes targets as 0/1) or []int class indexes for multiclass
	// losses, len Samples. May be nil only when the handle reports
	// NoTargets.
	Targets any

	// Weights is optional per-sample weights, nil or len Samples.
	Weights []float64

	// SampleScores is the running per-sample score matrix,
	// Samples x Outputs, updated in place.
	SampleScores []float64

	// GradHess receives gradients, or interleaved gradient/hessian pairs
	// when the handle has hessians: Samples x Outputs x stride.
	GradHess []float64

	// Metric accumulates the weighted metric sum when CalcMetric is set.
	// Callers zero it before the pass and map the total through the
	// handle's FinishMetric.
	Metric float64
}

// GradStride returns the per-score stride of GradHess.
func GradStride(hasHessian bool) int {
	if hasHessian {
		return 2
	}
	return 1
}

// PackedWords returns the number of storage words needed for samples indexes
// at the given pack width.
func PackedWords(samples, packWidth int) int {
	return (samples + packWidth - 1) / packWidth
}

// Validate checks every length agreement the kernels rely on. It runs in
// O(fields), not O(samples): per-sample content such as bin bounds is the
// kernel's responsibility.
func (b *UpdateBatch) Validate(hasHessian, noTargets bool) error {
	const op = "apply_update"

	if b.Outputs < 1 {
		return errors.NewShapeError(op, "outputs", 1, b.Outputs)
	}
	if b.Samples < 0 {
		return errors.NewShapeError(op, "samples", 0, b.Samples)
	}
	if b.PackWidth < 1 || b.PackWidth > safemath.WordBits {
		return errors.NewShapeError(op, "pack_width", safemath.WordBits, b.PackWidth)
	}
	if safemath.MulOverflows(uint64(b.Samples), uint64(b.Outputs), 2) {
		return errors.NewShapeError(op, "samples*outputs", 0, b.Samples)
	}

	if want := PackedWords(b.Samples, b.PackWidth); len(b.Packed) != want {
		return errors.NewShapeError(op, "packed", want, len(b.Packed))
	}

	if len(b.UpdateScores) == 0 || len(b.UpdateScores)%b.Outputs != 0 {
		return errors.NewShapeError(op, "update_scores", b.Outputs, len(b.UpdateScores))
	}

	if !noTargets {
		switch targets := b.Targets.(type) {
		case []float64:
			if len(targets) != b.Samples {
				return errors.NewShapeError(op, "targets", b.Samples, len(targets))
			}
		case []int:
			if len(targets) != b.Samples {
				return errors.NewShapeError(op, "targets", b.Samples, len(targets))
			}
		case nil:
			return errors.NewShapeError(op, "targets", b.Samples, 0)
		default:
			return errors.Wrapf(errors.ErrBatchShape, "%s: unsupported targets type %T", op, b.Targets)
		}
	}

	if b.Weights != nil && len(b.Weights) != b.Samples {
		return errors.NewShapeError(op, "weights", b.Samples, len(b.Weights))
	}

	if want := b.Samples * b.Outputs; len(b.SampleScores) != want {
		return errors.NewShapeError(op, "sample_scores", want, len(b.SampleScores))
	}

	if want := b.Samples * b.Outputs * GradStride(hasHessian); len(b.GradHess) != want {
		return errors.NewShapeError(op, "grad_hess", want, len(b.GradHess))
	}

	if b.Outputs >= 2 && len(b.MulticlassTemp) < b.Outputs {
		return errors.NewShapeError(op, "multiclass_temp", b.Outputs, len(b.MulticlassTemp))
	}

	return nil
}

// Slice returns a view of the batch covering samples [start, end). start
// must land on a storage word boundary (a multiple of PackWidth) so that no
// word is split between two workers; end is unconstrained. The sub-batch
// aliases the parent's buffers at the shifted offsets, carries its own zeroed
// Metric, and drops MulticlassTemp: concurrent workers must each supply
// their own scratch.
func (b *UpdateBatch) Slice(start, end int) (*UpdateBatch, error) {
	const op = "batch_slice"

	if start < 0 || end < start || end > b.Samples {
		return nil, errors.Wrapf(errors.ErrBatchShape, "%s: range [%d, %d) outside %d samples", op, start, end, b.Samples)
	}
	if b.PackWidth < 1 {
		return nil, errors.NewShapeError(op, "pack_width", 1, b.PackWidth)
	}
	if start%b.PackWidth != 0 {
		return nil, errors.Wrapf(errors.ErrBatchShape, "%s: start %d not aligned to pack width %d", op, start, b.PackWidth)
	}

	sub := *b
	sub.Samples = end - start
	sub.Metric = 0
	sub.MulticlassTemp = nil

	firstWord := start / b.PackWidth
	sub.Packed = b.Packed[firstWord : firstWord+PackedWords(sub.Samples, b.PackWidth)]

	switch targets := b.Targets.(type) {
	case []float64:
		sub.Targets = targets[start:end]
	case []int:
		sub.Targets = targets[start:end]
	}

	if b.Weights != nil {
		sub.Weights = b.Weights[start:end]
	}

	sub.SampleScores = b.SampleScores[start*b.Outputs : end*b.Outputs]

	// The gradient stride (1 or 2) is recovered from the buffer itself so
	// that slicing needs no handle traits.
	if b.Samples > 0 {
		perSample := len(b.GradHess) / b.Samples
		sub.GradHess = b.GradHess[start*perSample : end*perSample]
	}

	return &sub, nil
}
