package elapsed

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Alignment selects which side of a padded field the rendered duration sticks to.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

func (a Alignment) String() string {
	return [...]string{"left", "right", "center"}[a]
}

// position maps an Alignment onto the lipgloss placement scale.
func (a Alignment) position() lipgloss.Position {
	switch a {
	case AlignRight:
		return lipgloss.Right
	case AlignCenter:
		return lipgloss.Center
	default:
		return lipgloss.Left
	}
}

// ParseAlignment converts an alignment name ("left", "right", or "center") into its Alignment
// value.
func ParseAlignment(name string) (Alignment, error) {
	for _, a := range []Alignment{AlignLeft, AlignRight, AlignCenter} {
		if name == a.String() {
			return a, nil
		}
	}

	return AlignLeft, fmt.Errorf("unknown alignment: %q", name)
}

// Pad renders the measurement into a field of at least `width` cells, aligned as requested and
// filled with `fill`. A width at or below the rendered length returns the bare string.
//
// For plain space-filled left or right alignment the value also composes directly with fmt width
// directives ("%20s", "%-20s"), since Elapsed is a fmt.Stringer.
func (e Elapsed) Pad(width int, align Alignment, fill rune) string {
	return lipgloss.PlaceHorizontal(
		width,
		align.position(),
		e.String(),
		lipgloss.WithWhitespaceChars(string(fill)),
	)
}
