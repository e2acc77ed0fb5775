package wm

// Region is the part of a window under the pointer.
type Region int

const (
	// RegionNone means the pointer is not over any window.
	RegionNone Region = iota
	// RegionHeader is the title row outside the controls.
	RegionHeader
	// RegionControl is one of the header controls.
	RegionControl
	// RegionBody is everything below the header.
	RegionBody
)

// Hit describes what lies under the pointer.
type Hit struct {
	Handle  Handle
	Region  Region
	Control Control
	Frame   Rect
}

// HitTest finds the topmost visible window containing (x, y).
func (m *Manager) HitTest(x, y int) (Hit, bool) {
	var top *entry
	for _, e := range m.entries {
		if !m.visible(e) || !m.frame(e).Contains(x, y) {
			continue
		}
		if top == nil || e.z > top.z {
			top = e
		}
	}
	if top == nil {
		return Hit{}, false
	}

	frame := m.frame(top)
	hit := Hit{Handle: top.handle, Region: RegionBody, Frame: frame}
	if y == frame.Y {
		hit.Region = RegionHeader
		if c := ControlAt(frame, x, y); c != ControlNone {
			hit.Region = RegionControl
			hit.Control = c
		}
	}
	return hit, true
}

// BeginDrag starts dragging window h from pointer position (x, y). It fails
// when another drag is in progress, the window is unknown or it is maximized.
func (m *Manager) BeginDrag(h Handle, x, y int) bool {
	e, ok := m.entries[h]
	if !ok || e.state == Maximized {
		return false
	}
	return m.drag.press(h, x, y)
}

// DragTo moves the dragged panel by the pointer's movement since the last
// event. Panels are not clamped to the screen. It reports whether a panel
// moved.
func (m *Manager) DragTo(x, y int) bool {
	dx, dy, ok := m.drag.move(x, y)
	if !ok {
		return false
	}
	e, ok := m.entries[m.drag.handle]
	if !ok {
		m.drag.release()
		return false
	}
	e.panel.Bounds = e.panel.Bounds.Offset(dx, dy)
	return dx != 0 || dy != 0
}

// EndDrag releases the pointer. Later moves do nothing until the next
// BeginDrag.
func (m *Manager) EndDrag() {
	m.drag.release()
}

// Drag returns the drag machine for inspection.
func (m *Manager) Drag() Drag {
	return m.drag
}
