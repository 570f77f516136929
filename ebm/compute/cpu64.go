package compute

import (
	"github.com/YuminosukeSato/goebm/ebm/bridge"
	"github.com/YuminosukeSato/goebm/ebm/objective"
	"github.com/YuminosukeSato/goebm/pkg/log"
)

func init() {
	bridge.RegisterZone(bridge.ZoneCPU64, newLossCPU64, newMetricCPU64)
}

// newLossCPU64 builds a handle computing in float64. Batch buffers are
// already float64, so the kernels run on them in place.
func newLossCPU64(cfg bridge.Config, spec string) (*bridge.Handle, error) {
	built, err := objective.Build[float64](cfg.Outputs, spec)
	if err != nil {
		return nil, err
	}

	info := bridge.HandleInfo{
		Zone:        bridge.ZoneCPU64,
		Loss:        built.Name(),
		UpdateScale: built.Traits.UpdateScale,
		HasHessian:  built.Traits.NeedsHessian,
		NoTargets:   built.Traits.NoTargets,
	}
	h := bridge.NewHandle(info, applyCPU64, built, nil, nil)

	log.GetLoggerWithName("compute.cpu64").Debug("loss handle created",
		log.OperationKey, log.OperationCreateLoss,
		log.LossNameKey, info.Loss,
		log.LossSpecKey, spec,
		log.OutputsKey, cfg.Outputs,
	)
	return h, nil
}

func newMetricCPU64(cfg bridge.Config, spec string) error {
	return objective.ValidateMetric(cfg.Outputs, spec)
}

func applyCPU64(h *bridge.Handle, batch *bridge.UpdateBatch) error {
	built := h.LossState().(*objective.Built[float64])

	k := &kernelBatch[float64]{
		outputs:    batch.Outputs,
		packWidth:  batch.PackWidth,
		bitsPer:    BitsPerIndex(batch.PackWidth),
		calcMetric: batch.CalcMetric,
		samples:    batch.Samples,
		packed:     batch.Packed,
		update:     batch.UpdateScores,
		weights:    batch.Weights,
		scores:     batch.SampleScores,
		gradHess:   batch.GradHess,
		temp:       batch.MulticlassTemp,
	}
	switch targets := batch.Targets.(type) {
	case []float64:
		k.targetsF = targets
	case []int:
		k.targetsC = targets
	}

	if err := runKernel(built, k); err != nil {
		return err
	}
	if batch.CalcMetric {
		batch.Metric += k.metric
	}
	return nil
}
