// Package bridge defines the boundary between the training driver and the
// compute zones that implement loss mathematics.
//
// The central type is Handle, an opaque capability object created by a zone
// factory from a Config and a textual loss specification. A Handle owns the
// zone's loss state and scratch buffers, exposes the traits the driver needs
// for buffer layout (update scale, hessian presence, target-free updates),
// and is invoked exclusively through ApplyUpdate. Close releases the owned
// resources; it is idempotent and safe on nil and zero-value handles.
//
// Zones identify themselves by a (Backend, Precision) pair. Each zone
// registers its factories with RegisterZone at init time; NewLoss and
// NewMetric resolve a Zone to its factories and fail with
// ErrUnsupportedBackend when no factory is registered, which is what callers
// see for backends that are not linked into the binary.
//
// UpdateBatch is the per-iteration aggregate the driver passes to
// ApplyUpdate: bit-packed bin indexes, the update tensor, per-sample scores,
// gradient/hessian output and an optional metric accumulator. The batch is
// caller-owned; the handle never retains it. Batches can be partitioned into
// word-aligned sub-ranges with Slice so disjoint workers can share one
// handle concurrently.
package bridge
