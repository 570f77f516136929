package bridge

import (
	"sync"
	"sync/atomic"

	"github.com/YuminosukeSato/goebm/pkg/errors"
)

// Config carries the immutable requirements a loss factory builds against.
// Factories validate it, derive their instance from it, and do not retain it.
type Config struct {
	// Outputs is the score dimensionality per sample: 1 for regression and
	// binary classification, K for K-class classification.
	Outputs int
}

// ApplyUpdateFunc is the single polymorphic entry point a zone installs on a
// handle. It receives the handle back so it can reach its own state and
// scratch without package-level lookups.
type ApplyUpdateFunc func(h *Handle, batch *UpdateBatch) error

// HandleInfo describes a constructed handle: where it runs, what loss it
// computes, and the traits the driver reads to lay out buffers.
type HandleInfo struct {
	Zone Zone
	Loss string

	// UpdateScale is the multiplier the driver applies to leaf updates
	// before handing them to ApplyUpdate. 1 for all built-in losses.
	UpdateScale float64

	// HasHessian reports whether the gradient buffer is interleaved
	// gradient/hessian pairs (stride 2) or gradients only (stride 1).
	HasHessian bool

	// NoTargets reports that ApplyUpdate never reads batch targets: the
	// loss maintains its gradients incrementally from score deltas alone.
	NoTargets bool
}

// handle lifecycle states.
const (
	handleUninitialized int32 = iota
	handleReady
	handleFreed
)

// Handle is an opaque capability for one constructed loss instance.
// The zero value is an uninitialized handle: ApplyUpdate fails on it and
// Close is a no-op, so partially constructed call sites can always clean up
// unconditionally.
//
// A ready handle is immutable apart from Close; concurrent ApplyUpdate calls
// on disjoint batch ranges are safe.
type Handle struct {
	info    HandleInfo
	apply   ApplyUpdateFunc
	state   any
	scratch any

	closer    func()
	closeOnce sync.Once
	lifecycle atomic.Int32
}

// NewHandle assembles a ready handle. state and scratch are the two opaque
// resources the zone owns; closer, if non-nil, runs exactly once on Close.
// apply must be non-nil.
func NewHandle(info HandleInfo, apply ApplyUpdateFunc, state, scratch any, closer func()) *Handle {
	if apply == nil {
		panic("bridge: NewHandle requires an apply function")
	}
	h := &Handle{
		info:    info,
		apply:   apply,
		state:   state,
		scratch: scratch,
		closer:  closer,
	}
	h.lifecycle.Store(handleReady)
	return h
}

// Info returns the handle description.
func (h *Handle) Info() HandleInfo {
	if h == nil {
		return HandleInfo{}
	}
	return h.info
}

// UpdateScale returns the multiplier for leaf updates.
func (h *Handle) UpdateScale() float64 {
	if h == nil {
		return 0
	}
	return h.info.UpdateScale
}

// HasHessian reports whether ApplyUpdate writes interleaved hessians.
func (h *Handle) HasHessian() bool {
	return h != nil && h.info.HasHessian
}

// NoTargets reports whether ApplyUpdate ignores batch targets.
func (h *Handle) NoTargets() bool {
	return h != nil && h.info.NoTargets
}

// Ready reports whether the handle can serve ApplyUpdate.
func (h *Handle) Ready() bool {
	return h != nil && h.lifecycle.Load() == handleReady
}

// LossState returns the zone's opaque loss state. Only the zone that built
// the handle should interpret it.
func (h *Handle) LossState() any {
	if h == nil {
		return nil
	}
	return h.state
}

// Scratch returns the zone's opaque scratch resource.
func (h *Handle) Scratch() any {
	if h == nil {
		return nil
	}
	return h.scratch
}

// metricFinisher is the optional behavior of a loss state that transforms
// the accumulated metric sum before it is reported.
type metricFinisher interface {
	FinishMetric(sum float64) float64
}

// FinishMetric maps an accumulated metric sum to its reported form, asking
// the loss state when it knows how. The deviance losses double their
// half-deviance sums here; everything else reports the sum unchanged, as
// does a nil or closed handle.
func (h *Handle) FinishMetric(sum float64) float64 {
	if h == nil {
		return sum
	}
	if f, ok := h.state.(metricFinisher); ok {
		return f.FinishMetric(sum)
	}
	return sum
}

// ApplyUpdate validates the batch against the handle traits and dispatches
// to the zone kernel. Panics inside the kernel surface as errors; they never
// cross the boundary.
func (h *Handle) ApplyUpdate(batch *UpdateBatch) (err error) {
	if !h.Ready() {
		return errors.Wrap(errors.ErrHandleNotReady, "apply_update")
	}
	if batch == nil {
		return errors.Wrap(errors.ErrBatchShape, "apply_update: nil batch")
	}
	if err := batch.Validate(h.info.HasHessian, h.info.NoTargets); err != nil {
		return err
	}

	defer errors.Recover(&err, "apply_update")
	return h.apply(h, batch)
}

// Close releases the handle's owned resources. It runs the closer exactly
// once no matter how many times it is called, succeeds on an uninitialized
// or already freed handle, and is safe on a nil receiver.
func (h *Handle) Close() error {
	if h == nil {
		return nil
	}
	h.closeOnce.Do(func() {
		h.lifecycle.Store(handleFreed)
		if h.closer != nil {
			h.closer()
		}
		h.apply = nil
		h.state = nil
		h.scratch = nil
	})
	return nil
}
