// Package compute implements the CPU compute zones of the boosting engine.
//
// A zone is a (backend, precision) pairing registered with the bridge: this
// package installs cpu_64 and cpu_32 from init and exposes the flat entry
// points callers use to create loss handles without touching the registry.
// The update kernels are generic over the zone precision; the 32-bit zone
// stages batch buffers through pooled float32 scratch and writes results
// back, trading accuracy for memory bandwidth.
//
// Bin indexes reach the kernels bit-packed, several per 64-bit storage word.
// The packing codec lives here too so data preparation and kernels agree on
// the layout.
package compute
