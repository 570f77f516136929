package bridge

import "fmt"

// Backend identifies a compute device family.
type Backend int

const (
	// BackendCPU is the portable CPU backend.
	BackendCPU Backend = iota

	// BackendCUDA is the NVIDIA GPU backend. No in-tree zone registers for
	// it; an external implementation can claim it through RegisterZone.
	BackendCUDA
)

// String returns the lowercase backend name.
func (b Backend) String() string {
	switch b {
	case BackendCPU:
		return "cpu"
	case BackendCUDA:
		return "cuda"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// Precision is the floating point width a zone computes in.
type Precision int

const (
	Precision32 Precision = 32
	Precision64 Precision = 64
)

// Zone identifies one compute implementation: a backend at a precision.
// The same loss mathematics is instantiated once per zone, so the pair fully
// determines which kernel set serves a handle.
type Zone struct {
	Backend   Backend
	Precision Precision
}

// String renders the zone key, e.g. "cpu_64".
func (z Zone) String() string {
	return fmt.Sprintf("%s_%d", z.Backend, int(z.Precision))
}

// Predefined zone keys for the in-tree and conventional external zones.
var (
	ZoneCPU64  = Zone{Backend: BackendCPU, Precision: Precision64}
	ZoneCPU32  = Zone{Backend: BackendCPU, Precision: Precision32}
	ZoneCUDA32 = Zone{Backend: BackendCUDA, Precision: Precision32}
)
