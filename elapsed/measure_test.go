package elapsed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	t.Parallel()

	et, sum := Measure(func() uint64 {
		var total uint64
		for i := uint64(0); i < 10_000; i++ {
			total += i
		}
		return total
	})

	assert.Equal(t, uint64(49_995_000), sum)
	assert.NotEmpty(t, et.String())
}

func TestMeasureSleep(t *testing.T) {
	t.Parallel()

	et, result := Measure(func() string {
		time.Sleep(100 * time.Millisecond)
		return "done"
	})

	assert.Equal(t, "done", result)

	// Allow for scheduler jitter in both directions.
	assert.Greater(t, et.Millis(), uint64(90))
	assert.Less(t, et.Millis(), uint64(5_000))
}

func TestMeasurePanicPropagates(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "boom", func() {
		_, _ = Measure(func() any { panic("boom") })
	})
}
