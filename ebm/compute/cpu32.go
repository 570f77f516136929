package compute

import (
	"sync"

	"github.com/YuminosukeSato/goebm/ebm/bridge"
	"github.com/YuminosukeSato/goebm/ebm/objective"
	"github.com/YuminosukeSato/goebm/pkg/log"
)

func init() {
	bridge.RegisterZone(bridge.ZoneCPU32, newLossCPU32, nil)
}

// f32Scratch holds the converted copies of one staging block. Instances are
// pooled per handle; a scratch is never shared between concurrent calls.
type f32Scratch struct {
	update   []float32
	targets  []float32
	weights  []float32
	scores   []float32
	gradHess []float32
	temp     []float32
}

func growF32(buf []float32, n int) []float32 {
	if cap(buf) < n {
		return make([]float32, n)
	}
	return buf[:n]
}

// newLossCPU32 builds a handle computing in float32. Batch buffers stay
// float64 at the boundary; each call stages blocks of them through pooled
// float32 scratch and writes scores and gradients back.
func newLossCPU32(cfg bridge.Config, spec string) (*bridge.Handle, error) {
	built, err := objective.Build[float32](cfg.Outputs, spec)
	if err != nil {
		return nil, err
	}

	info := bridge.HandleInfo{
		Zone:        bridge.ZoneCPU32,
		Loss:        built.Name(),
		UpdateScale: built.Traits.UpdateScale,
		HasHessian:  built.Traits.NeedsHessian,
		NoTargets:   built.Traits.NoTargets,
	}
	pool := &sync.Pool{New: func() any { return new(f32Scratch) }}
	h := bridge.NewHandle(info, applyCPU32, built, pool, nil)

	log.GetLoggerWithName("compute.cpu32").Debug("loss handle created",
		log.OperationKey, log.OperationCreateLoss,
		log.LossNameKey, info.Loss,
		log.LossSpecKey, spec,
		log.OutputsKey, cfg.Outputs,
	)
	return h, nil
}

// stagingBlock returns the samples per staging pass, a multiple of the pack
// width so blocks never split a storage word. The base size follows the
// detected vector width to keep converted buffers cache resident.
func stagingBlock(packWidth int) int {
	target := f32Lanes * 2048
	return ((target + packWidth - 1) / packWidth) * packWidth
}

func applyCPU32(h *bridge.Handle, batch *bridge.UpdateBatch) error {
	built := h.LossState().(*objective.Built[float32])
	pool := h.Scratch().(*sync.Pool)

	s := pool.Get().(*f32Scratch)
	defer pool.Put(s)

	s.update = growF32(s.update, len(batch.UpdateScores))
	for i, v := range batch.UpdateScores {
		s.update[i] = float32(v)
	}
	if batch.Outputs >= 2 {
		s.temp = growF32(s.temp, batch.Outputs)
	}

	block := stagingBlock(batch.PackWidth)
	for start := 0; start < batch.Samples; start += block {
		end := start + block
		if end > batch.Samples {
			end = batch.Samples
		}

		sub, err := batch.Slice(start, end)
		if err != nil {
			return err
		}
		if err := applyBlock32(built, s, sub); err != nil {
			return err
		}
		if batch.CalcMetric {
			batch.Metric += sub.Metric
		}
	}
	return nil
}

// applyBlock32 stages one word-aligned block into float32, runs the kernel
// and writes scores and gradients back to the batch buffers.
func applyBlock32(built *objective.Built[float32], s *f32Scratch, sub *bridge.UpdateBatch) error {
	s.scores = growF32(s.scores, len(sub.SampleScores))
	for i, v := range sub.SampleScores {
		s.scores[i] = float32(v)
	}
	s.gradHess = growF32(s.gradHess, len(sub.GradHess))
	for i, v := range sub.GradHess {
		s.gradHess[i] = float32(v)
	}

	k := &kernelBatch[float32]{
		outputs:    sub.Outputs,
		packWidth:  sub.PackWidth,
		bitsPer:    BitsPerIndex(sub.PackWidth),
		calcMetric: sub.CalcMetric,
		samples:    sub.Samples,
		packed:     sub.Packed,
		update:     s.update,
		scores:     s.scores,
		gradHess:   s.gradHess,
		temp:       s.temp,
	}

	switch targets := sub.Targets.(type) {
	case []float64:
		s.targets = growF32(s.targets, len(targets))
		for i, v := range targets {
			s.targets[i] = float32(v)
		}
		k.targetsF = s.targets
	case []int:
		k.targetsC = targets
	}
	if sub.Weights != nil {
		s.weights = growF32(s.weights, len(sub.Weights))
		for i, v := range sub.Weights {
			s.weights[i] = float32(v)
		}
		k.weights = s.weights
	}

	if err := runKernel(built, k); err != nil {
		return err
	}

	for i, v := range k.scores {
		sub.SampleScores[i] = float64(v)
	}
	for i, v := range k.gradHess {
		sub.GradHess[i] = float64(v)
	}
	sub.Metric = k.metric
	return nil
}
