package compute

import (
	"github.com/YuminosukeSato/goebm/ebm/bridge"
)

// CreateLossCPU64 builds a loss handle in the 64-bit CPU zone. This is the
// reference zone: every loss is available here at full precision.
func CreateLossCPU64(cfg bridge.Config, spec string) (*bridge.Handle, error) {
	return bridge.NewLoss(bridge.ZoneCPU64, cfg, spec)
}

// CreateLossCPU32 builds a loss handle in the 32-bit CPU zone. Results track
// the 64-bit zone to single precision accuracy.
func CreateLossCPU32(cfg bridge.Config, spec string) (*bridge.Handle, error) {
	return bridge.NewLoss(bridge.ZoneCPU32, cfg, spec)
}

// CreateLossCUDA32 resolves the 32-bit CUDA zone. No CUDA zone registers
// itself in this build, so the call fails with ErrUnsupportedBackend unless
// an external package has installed one.
func CreateLossCUDA32(cfg bridge.Config, spec string) (*bridge.Handle, error) {
	return bridge.NewLoss(bridge.ZoneCUDA32, cfg, spec)
}

// CreateMetricCPU64 checks that the 64-bit CPU zone can evaluate the metric
// described by spec.
func CreateMetricCPU64(cfg bridge.Config, spec string) error {
	return bridge.NewMetric(bridge.ZoneCPU64, cfg, spec)
}
