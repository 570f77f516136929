package compute

import "golang.org/x/sys/cpu"

// f32Lanes is the float32 vector width of the host, used to size staging
// blocks in the 32-bit zone.
var f32Lanes = detectLanes()

func detectLanes() int {
	switch {
	case cpu.X86.HasAVX512F:
		return 16
	case cpu.X86.HasAVX2:
		return 8
	default:
		// SSE2 is the amd64 baseline.
		return 4
	}
}
