// Package goebm provides the native numerical core of an explainable
// boosting machine for Go, designed for training services that need
// predictable memory use and tight control over floating point behavior.
//
// goebm packages the low-level machinery a cyclic gradient boosting engine
// runs on: overflow-checked arithmetic, guarded allocation, bit-packed
// sample storage, and pluggable loss objectives behind opaque handles that
// never leak panics across the call boundary.
//
// # Features
//
// - Pluggable Losses: textual loss specifications resolved to typed objectives
// - Precision Zones: float64 and float32 kernels behind one handle API
// - Robust Error Handling: typed errors with stack traces on every boundary
// - Safe Numerics: overflow-checked sizing and clamped transcendentals
// - Concurrent Training: disjoint batch ranges update in parallel
//
// # Installation
//
// Install goebm using go get:
//
//	go get github.com/YuminosukeSato/goebm
//
// # Quick Start
//
// Here's a minimal boosting update on a binary classification loss:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/goebm/ebm/bridge"
//	    "github.com/YuminosukeSato/goebm/ebm/compute"
//	)
//
//	func main() {
//	    h, err := compute.CreateLossCPU64(bridge.Config{Outputs: 1}, "log_loss")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer h.Close()
//
//	    packed, err := compute.PackIndexes([]uint64{0, 1, 0, 1}, 4)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    batch := &bridge.UpdateBatch{
//	        Outputs:      1,
//	        PackWidth:    4,
//	        CalcMetric:   true,
//	        UpdateScores: []float64{0.5, -0.5},
//	        Samples:      4,
//	        Packed:       packed,
//	        Targets:      []float64{1, 0, 1, 0},
//	        SampleScores: make([]float64, 4),
//	        GradHess:     make([]float64, 8),
//	    }
//	    if err := h.ApplyUpdate(batch); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println("mean log loss:", h.FinishMetric(batch.Metric)/4)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - ebm/bridge: loss handles, update batches, and the zone registry
//   - ebm/objective: the loss catalog and its specification parser
//   - ebm/compute: cpu_64 and cpu_32 kernels plus the bit-packed index codec
//   - metrics: evaluation metrics (MSE, RMSE, MAE, R², log loss, pinball)
//   - core/safemath: overflow-checked integer arithmetic and conversions
//   - core/alloc: overflow-guarded slice allocation
//   - core/parallel: parallel range partitioning
//   - pkg/errors: typed errors, sentinels, and panic recovery
//   - pkg/log: structured logging setup
//
// # Precision Zones
//
// Every loss is constructed for a (backend, precision) zone. The cpu_64
// zone computes in float64 end to end; the cpu_32 zone stages batches
// through float32 buffers sized to the CPU's vector width while keeping
// the caller-visible buffers in float64:
//
//	h, err := compute.CreateLossCPU32(bridge.Config{Outputs: 1}, "mse")
//
// Handles from either zone accept the same batches and report metrics in
// float64. Zones register themselves at init time, so linking a package
// that provides a new backend is enough to make it constructible.
//
// # Contributing
//
// Contributions are welcome! Please see our GitHub repository:
// https://github.com/YuminosukeSato/goebm
//
// # License
//
// goebm is released under the MIT License.
package goebm
