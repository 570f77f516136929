//go:build !amd64

package compute

// f32Lanes assumes 128-bit vectors where the width cannot be probed.
var f32Lanes = 4
