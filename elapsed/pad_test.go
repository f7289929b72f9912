package elapsed

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPad(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name    string
		inWidth int
		inAlign Alignment
		inFill  rune
		exp     string
	}{
		{"right", 20, AlignRight, ' ', "             20.00 s"},
		{"left", 20, AlignLeft, ' ', "20.00 s             "},
		{"center", 21, AlignCenter, ' ', "       20.00 s       "},
		{"fill char", 12, AlignRight, '.', ".....20.00 s"},
		{"width below content", 4, AlignRight, ' ', "20.00 s"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			obs := New(20, 0).Pad(test.inWidth, test.inAlign, test.inFill)

			assert.Equal(t, test.exp, obs)
		})
	}
}

// Sub-second values render a non-ASCII unit suffix; padding must count cells, not bytes.
func TestPadMicroSuffix(t *testing.T) {
	t.Parallel()

	obs := New(0, 1_300).Pad(10, AlignRight, ' ')

	assert.Equal(t, "   1.30 μs", obs)
}

func TestFmtWidthDirectives(t *testing.T) {
	t.Parallel()

	e := New(20, 0)

	assert.Equal(t, "             20.00 s", fmt.Sprintf("%20s", e))
	assert.Equal(t, "20.00 s             ", fmt.Sprintf("%-20s", e))
}

func TestAlignmentString(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		in  Alignment
		exp string
	}{
		{AlignLeft, "left"},
		{AlignRight, "right"},
		{AlignCenter, "center"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.exp, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.exp, test.in.String())
		})
	}
}

func TestParseAlignment(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"left", "right", "center"} {
		a, err := ParseAlignment(name)
		require.NoError(t, err)
		assert.Equal(t, name, a.String())
	}

	_, err := ParseAlignment("justified")
	assert.Error(t, err)
}
