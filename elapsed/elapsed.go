// Copyright (c) 2019-2022 Wibowo Arindrarto <contact@arindrarto.dev>
// SPDX-License-Identifier: BSD-3-Clause

package elapsed

import (
	"fmt"
	"math"
	"math/bits"
	"time"

	"github.com/gomlx/exceptions"
)

const (
	nanosPerSecond = 1_000_000_000
	nanosPerMilli  = 1_000_000
	nanosPerMicro  = 1_000

	millisPerSecond = 1_000
	microsPerSecond = 1_000_000
)

// Elapsed is a single wall-clock measurement, stored canonically as whole seconds plus a
// sub-second nanosecond remainder. It is immutable after construction and safe to copy, store,
// or share freely.
type Elapsed struct {
	secs  uint64
	nanos uint32
}

// New creates an Elapsed from whole seconds and additional nanoseconds. Nanoseconds of one second
// or more are carried over into the seconds field, so the stored remainder is always below one
// second. The carry panics if it would push the seconds count past the uint64 range.
func New(secs uint64, nanos uint32) Elapsed {
	if nanos >= nanosPerSecond {
		carried, carry := bits.Add64(secs, uint64(nanos/nanosPerSecond), 0)
		if carry != 0 {
			exceptions.Panicf("elapsed.New(%d, %d): seconds overflow uint64", secs, nanos)
		}
		secs = carried
		nanos %= nanosPerSecond
	}

	return Elapsed{secs: secs, nanos: nanos}
}

// From wraps a platform duration. Negative durations are clamped to zero, since a monotonic
// interval never runs backwards.
func From(d time.Duration) Elapsed {
	if d < 0 {
		d = 0
	}

	return Elapsed{
		secs:  uint64(d / time.Second),
		nanos: uint32(d % time.Second),
	}
}

// Seconds returns the measurement as a whole number of seconds, discarding the sub-second
// remainder.
func (e Elapsed) Seconds() uint64 {
	return e.secs
}

// Millis returns the measurement as a whole number of milliseconds, truncated.
func (e Elapsed) Millis() uint64 {
	return e.scaled(millisPerSecond, nanosPerMilli)
}

// Micros returns the measurement as a whole number of microseconds, truncated.
func (e Elapsed) Micros() uint64 {
	return e.scaled(microsPerSecond, nanosPerMicro)
}

// Nanos returns the measurement as a whole number of nanoseconds.
func (e Elapsed) Nanos() uint64 {
	return e.scaled(nanosPerSecond, 1)
}

// Duration returns the measurement as a platform duration. Measurements beyond the
// time.Duration range (about 292 years) saturate at the maximum representable duration.
func (e Elapsed) Duration() time.Duration {
	const (
		maxSecs  = math.MaxInt64 / nanosPerSecond
		maxNanos = math.MaxInt64 % nanosPerSecond
	)

	if e.secs > maxSecs || (e.secs == maxSecs && uint64(e.nanos) > maxNanos) {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(e.secs)*time.Second + time.Duration(e.nanos)
}

// scaled converts the canonical fields into a single count of a finer unit: seconds scaled up by
// `perSecond`, the nanosecond remainder scaled down by `perUnit`. Both conversions truncate.
// Scaling up can exceed the uint64 range for extreme second counts; that is a fatal condition and
// panics rather than returning a silently wrong count.
func (e Elapsed) scaled(perSecond, perUnit uint64) uint64 {
	hi, lo := bits.Mul64(e.secs, perSecond)
	if hi != 0 {
		exceptions.Panicf(
			"elapsed: %d seconds overflow uint64 when scaled by %d", e.secs, perSecond,
		)
	}

	val, carry := bits.Add64(lo, uint64(e.nanos)/perUnit, 0)
	if carry != 0 {
		exceptions.Panicf(
			"elapsed: %d seconds overflow uint64 when scaled by %d", e.secs, perSecond,
		)
	}

	return val
}

// String renders the measurement with the coarsest unit whose whole-number value is nonzero,
// at two-decimal precision. An exactly-zero measurement renders as "0.00 ns".
//
// The fractional digits come from the next-finer unit's exact integer count, not from dividing
// the raw nanosecond value, so no floating-point error accumulates.
func (e Elapsed) String() string {
	var (
		coarse, fine uint64
		suffix       string
	)

	switch {
	case e.Seconds() > 0:
		coarse, fine, suffix = e.Seconds(), e.Millis(), "s"
	case e.Millis() > 0:
		coarse, fine, suffix = e.Millis(), e.Micros(), "ms"
	case e.Micros() > 0:
		coarse, fine, suffix = e.Micros(), e.Nanos(), "μs"
	default:
		coarse, fine, suffix = e.Nanos(), e.Nanos()*1000, "ns"
	}

	val := float64(coarse) + float64(fine-coarse*1000)/1000.0

	return fmt.Sprintf("%.2f %s", val, suffix)
}
