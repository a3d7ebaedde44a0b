package components

import "strings"

// Spacer renders blank space. It has no theme.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer with the given dimensions.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: width, height: height}
}

// HorizontalSpacer creates a one line spacer.
func HorizontalSpacer(width int) *Spacer {
	return NewSpacer(width, 1)
}

// VerticalSpacer creates a spacer of empty lines.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(0, height)
}

// View renders the spacer as empty space.
func (s *Spacer) View() string {
	w, h := max(s.width, 0), max(s.height, 0)
	if w == 0 && h == 0 {
		return ""
	}
	line := strings.Repeat(" ", w)
	if h <= 1 {
		return line
	}
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
