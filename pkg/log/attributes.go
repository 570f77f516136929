// Package log defines standard attribute keys for engine operations.
//
// Using these keys consistently across loss factories, compute zones and the
// update driver keeps the JSON output filterable: every record about the same
// concern carries the same key. The keys follow a hierarchical naming
// convention (e.g. "loss.name", "data.samples").

package log

// Loss and Zone Context
// These attributes identify the loss being computed and where it runs.
const (
	// LossNameKey identifies the canonical loss name.
	// Examples: "mse", "log_loss", "pseudo_huber"
	LossNameKey = "loss.name"

	// LossSpecKey carries the full textual loss specification as received,
	// including parameters. Example: "pseudo_huber:delta=1.5"
	LossSpecKey = "loss.spec"

	// OutputsKey indicates the score dimensionality per sample.
	// 1 for regression and binary classification, >=2 for multiclass.
	OutputsKey = "loss.outputs"

	// ZoneKey identifies the compute zone handling an operation.
	// Examples: "cpu_64", "cpu_32", "cuda_32"
	ZoneKey = "compute.zone"

	// BackendKey identifies the compute backend in isolation.
	// Examples: "cpu", "cuda"
	BackendKey = "compute.backend"

	// PrecisionKey records the floating point width of a zone (32 or 64).
	PrecisionKey = "compute.precision"

	// OperationKey specifies the engine operation being performed.
	// Standard values: "create_loss", "create_metric", "apply_update", "close"
	OperationKey = "engine.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "compute.cpu64", "bridge.registry", "objective.catalog"
	ComponentKey = "engine.component"
)

// Data Shape
// These attributes describe the batch being processed.
const (
	// SamplesKey indicates the number of samples in the batch.
	SamplesKey = "data.samples"

	// PackWidthKey indicates how many bin indexes share one storage word.
	PackWidthKey = "data.pack_width"

	// BinsKey indicates the number of histogram bins addressed by the batch.
	BinsKey = "data.bins"

	// WeightedKey indicates whether the batch carries per-sample weights.
	WeightedKey = "data.weighted"
)

// Training Progress
const (
	// RoundKey records the boosting round an update belongs to.
	RoundKey = "training.round"

	// MetricKey records an accumulated metric value.
	MetricKey = "metrics.value"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "UNKNOWN_LOSS", "UNSUPPORTED_BACKEND"
	ErrorCodeKey = "error.code"

	// SuggestionKey provides a hint for resolving the failure.
	// Example: "register the zone before requesting it"
	SuggestionKey = "error.suggestion"
)

// Standard attribute value constants for common operations.
const (
	OperationCreateLoss   = "create_loss"
	OperationCreateMetric = "create_metric"
	OperationApplyUpdate  = "apply_update"
	OperationClose        = "close"

	ErrorUnknownLoss        = "UNKNOWN_LOSS"
	ErrorLossParams         = "INVALID_LOSS_PARAMS"
	ErrorConfigMismatch     = "CONFIG_MISMATCH"
	ErrorAllocFailed        = "ALLOC_FAILED"
	ErrorUnsupportedBackend = "UNSUPPORTED_BACKEND"
	ErrorBatchShape         = "BATCH_SHAPE"
)
