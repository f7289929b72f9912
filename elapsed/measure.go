// Copyright (c) 2019-2022 Wibowo Arindrarto <contact@arindrarto.dev>
// SPDX-License-Identifier: BSD-3-Clause

package elapsed

import "time"

// Measure runs `op` exactly once on the calling goroutine and returns the wall-clock time it
// took alongside its result. The interval is read from the platform monotonic clock, sampled
// just before invocation and just after return.
//
// Measure adds no error handling of its own: a panic inside `op` propagates unchanged, and no
// measurement is produced in that case. No timeout is enforced; if `op` never returns, neither
// does Measure.
func Measure[T any](op func() T) (Elapsed, T) {
	start := time.Now()
	result := op()

	return From(time.Since(start)), result
}
