// Copyright (c) 2019-2022 Wibowo Arindrarto <contact@arindrarto.dev>
// SPDX-License-Identifier: BSD-3-Clause

// Package elapsed measures the wall-clock execution time of a single operation and renders the
// resulting duration as a short, human-readable string. The duration is captured once, wrapped in
// an immutable Elapsed value, and formatted with an automatically chosen unit (s, ms, μs, or ns)
// at two-decimal precision.
package elapsed
