package objective

import (
	"math"

	"github.com/YuminosukeSato/goebm/pkg/errors"
)

// Built is a resolved loss instance. Exactly one of Scalar and Multi is set:
// Scalar for single-score losses, Multi for one-score-per-class losses.
type Built[F Float] struct {
	Scalar Objective[F]
	Multi  MulticlassObjective[F]
	Traits Traits
}

// Name returns the canonical name of the underlying loss.
func (b *Built[F]) Name() string {
	if b.Scalar != nil {
		return b.Scalar.Name()
	}
	return b.Multi.Name()
}

// FinishMetric maps an accumulated metric sum to its reported form.
func (b *Built[F]) FinishMetric(sum float64) float64 {
	if b.Scalar != nil {
		return b.Scalar.FinishMetric(sum)
	}
	return b.Multi.FinishMetric(sum)
}

// Build resolves a textual loss specification against outputs score columns.
//
// Unknown loss names yield ErrUnknownLoss, malformed or out-of-range
// parameters yield ErrLossParams, and a loss that cannot serve the requested
// output count yields ErrConfigMismatch. Parameters no loss consumes are
// rejected rather than ignored.
func Build[F Float](outputs int, spec string) (*Built[F], error) {
	recipe, err := Parse(spec)
	if err != nil {
		return nil, err
	}

	if outputs < 1 {
		return nil, errors.NewConfigMismatchError(recipe.Name, outputs, "outputs must be at least 1")
	}

	b := &Built[F]{}
	switch recipe.Name {
	case "mse":
		if err := requireSingleOutput(recipe.Name, outputs); err != nil {
			return nil, err
		}
		b.Scalar = NewMSELoss[F]()

	case "log_loss":
		if outputs == 1 {
			b.Scalar = NewLogLoss[F]()
		} else {
			b.Multi = NewSoftmaxLoss[F](outputs)
		}

	case "pseudo_huber":
		if err := requireSingleOutput(recipe.Name, outputs); err != nil {
			return nil, err
		}
		delta := recipe.Take("delta", 1.0)
		if !(delta > 0) || math.IsInf(delta, 0) {
			return nil, errors.NewLossParamError(recipe.Name, "delta", "must be a positive finite number", delta)
		}
		b.Scalar = NewPseudoHuberLoss[F](delta)

	case "gamma_deviance":
		if err := requireSingleOutput(recipe.Name, outputs); err != nil {
			return nil, err
		}
		b.Scalar = NewGammaDevianceLoss[F]()

	case "poisson_deviance":
		if err := requireSingleOutput(recipe.Name, outputs); err != nil {
			return nil, err
		}
		b.Scalar = NewPoissonDevianceLoss[F]()

	case "quantile":
		if err := requireSingleOutput(recipe.Name, outputs); err != nil {
			return nil, err
		}
		alpha := recipe.Take("alpha", 0.5)
		if !(alpha > 0 && alpha < 1) {
			return nil, errors.NewLossParamError(recipe.Name, "alpha", "must be strictly between 0 and 1", alpha)
		}
		b.Scalar = NewQuantileLoss[F](alpha)

	default:
		return nil, errors.NewUnknownLossError(spec)
	}

	if key, ok := recipe.Leftover(); ok {
		return nil, errors.NewLossParamError(recipe.Name, key, "unknown parameter", nil)
	}

	if b.Scalar != nil {
		b.Traits = b.Scalar.Traits()
	} else {
		b.Traits = b.Multi.Traits()
	}
	return b, nil
}

func requireSingleOutput(loss string, outputs int) error {
	if outputs != 1 {
		return errors.NewConfigMismatchError(loss, outputs, "loss produces a single score per sample")
	}
	return nil
}

// ValidateMetric checks a textual metric specification against outputs score
// columns. Metric evaluation itself runs through the loss handles; this only
// answers whether the combination is computable.
func ValidateMetric(outputs int, spec string) error {
	recipe, err := Parse(spec)
	if err != nil {
		return err
	}

	if outputs < 1 {
		return errors.NewConfigMismatchError(recipe.Name, outputs, "outputs must be at least 1")
	}

	switch recipe.Name {
	case "rmse":
		if err := requireSingleOutput(recipe.Name, outputs); err != nil {
			return err
		}
	case "log_loss":
		// Valid for both the binary and the softmax form.
	default:
		return errors.NewUnknownLossError(spec)
	}

	if key, ok := recipe.Leftover(); ok {
		return errors.NewLossParamError(recipe.Name, key, "unknown parameter", nil)
	}
	return nil
}
