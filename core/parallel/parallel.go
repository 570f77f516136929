// Package parallel partitions sample ranges across worker goroutines.
// A training driver splits each update batch into disjoint [start, end)
// ranges and runs them concurrently against one loss handle; the helpers
// here own the partition arithmetic and the fan-out/join.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits [0, items) into one contiguous range per available
// CPU core and runs fn on each range concurrently, returning after every
// range has finished. fn must be safe to call from multiple goroutines
// on disjoint ranges.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// 天井除算。最後のワーカーの範囲だけ短くなることがあります。
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn(0, items) on the calling goroutine when
// items is at or below threshold, and fans out like Parallelize above it.
// Small batches stay sequential so goroutine startup never dominates the
// kernel work.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}

// ParallelizeAligned is like Parallelize but rounds every chunk boundary up
// to a multiple of align, so each range except possibly the last covers whole
// blocks. Bit-packed sample batches are partitioned this way: a storage word
// must never be split between two workers.
func ParallelizeAligned(items, align int, fn func(start, end int)) {
	if items == 0 {
		return
	}
	if align <= 1 {
		Parallelize(items, fn)
		return
	}

	blocks := (items + align - 1) / align
	numWorkers := runtime.NumCPU()
	if numWorkers > blocks {
		numWorkers = blocks
	}

	blocksPerWorker := (blocks + numWorkers - 1) / numWorkers
	chunkSize := blocksPerWorker * align

	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}

		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
