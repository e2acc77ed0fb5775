// Package wm implements the desktop window manager: a registry of open
// windows, the taskbar kept in sync with it, stacking order and pointer
// dragging. It has no rendering dependency; the desktop draws whatever
// Windows and Chips report.
package wm

import "github.com/google/uuid"

// State is the display state of a window. The states are mutually exclusive.
type State int

const (
	// Normal windows are drawn at their own bounds.
	Normal State = iota
	// Minimized windows are hidden but keep their taskbar chip.
	Minimized
	// Maximized windows fill the work area.
	Maximized
)

func (s State) String() string {
	switch s {
	case Normal:
		return "normal"
	case Minimized:
		return "minimized"
	case Maximized:
		return "maximized"
	default:
		return "unknown"
	}
}

// Handle identifies an open window. Handles are never reused.
type Handle string

func newHandle() Handle {
	return Handle(uuid.New().String())
}

// Point is a cell position.
type Point struct {
	X, Y int
}

// Rect is a cell rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}
