package app

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/folios/internal/wm"
	"github.com/charmbracelet/x/ansi"
)

// border returns the window border for the configured style.
func (d *Desktop) border() lipgloss.Border {
	if d.ascii() {
		return lipgloss.ASCIIBorder()
	}
	switch d.Config.Appearance.BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// controlGlyph is the three-cell label of a header control.
func (d *Desktop) controlGlyph(c wm.Control, maximized bool) string {
	if d.ascii() {
		switch c {
		case wm.ControlMinimize:
			return " _ "
		case wm.ControlMaximize:
			if maximized {
				return " O "
			}
			return " o "
		default:
			return " x "
		}
	}
	switch c {
	case wm.ControlMinimize:
		return " _ "
	case wm.ControlMaximize:
		if maximized {
			return " ▣ "
		}
		return " □ "
	default:
		return " × "
	}
}

// fitLine truncates s to width cells and pads it with fill.
func fitLine(s string, width int, fill lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += fill.Render(strings.Repeat(" ", pad))
	}
	return s
}

// centerLine centers s in width cells.
func centerLine(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	pad := width - ansi.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// clipWindowContent cuts a block drawn at (x, y) to the viewport and returns
// the visible part with its new origin. Windows may be dragged partly off
// screen.
func clipWindowContent(content string, x, y, viewportWidth, viewportHeight int) (string, int, int) {
	lines := strings.Split(content, "\n")
	windowHeight := len(lines)
	windowWidth := 0
	if windowHeight > 0 {
		windowWidth = ansi.StringWidth(lines[0])
	}

	if x+windowWidth <= 0 || x >= viewportWidth || y+windowHeight <= 0 || y >= viewportHeight {
		return "", max(x, 0), max(y, 0)
	}

	clipTop, clipLeft := 0, 0
	finalX, finalY := x, y
	if y < 0 {
		clipTop = -y
		finalY = 0
	}
	if x < 0 {
		clipLeft = -x
		finalX = 0
	}

	visible := lines[clipTop:]
	if maxLines := viewportHeight - finalY; maxLines < len(visible) {
		visible = visible[:maxLines]
	}

	maxWidth := viewportWidth - finalX
	if clipLeft == 0 && finalX+windowWidth <= viewportWidth {
		return strings.Join(visible, "\n"), finalX, finalY
	}

	clipped := make([]string, len(visible))
	for i, line := range visible {
		clipped[i] = ansi.Cut(line, clipLeft, clipLeft+maxWidth)
	}
	return strings.Join(clipped, "\n"), finalX, finalY
}
