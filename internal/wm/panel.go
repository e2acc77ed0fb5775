package wm

// Content is the payload mounted in a window body. The manager never looks
// inside it; the desktop calls Render with the body size on every frame.
type Content interface {
	Render(width, height int) string
}

// ContentFunc adapts a plain function to Content.
type ContentFunc func(width, height int) string

// Render calls f.
func (f ContentFunc) Render(width, height int) string {
	return f(width, height)
}

// ContentBuilder produces the content of a new window. It is only called when
// Open actually creates a window.
type ContentBuilder func() Content

// Control is one of the buttons in a window header.
type Control int

const (
	// ControlNone means no control.
	ControlNone Control = iota
	// ControlMinimize hides the window to the taskbar.
	ControlMinimize
	// ControlMaximize toggles between the work area and the window's own bounds.
	ControlMaximize
	// ControlClose closes the window.
	ControlClose
)

func (c Control) String() string {
	switch c {
	case ControlMinimize:
		return "minimize"
	case ControlMaximize:
		return "maximize"
	case ControlClose:
		return "close"
	default:
		return "none"
	}
}

// Controls lists header controls left to right.
var Controls = []Control{ControlMinimize, ControlMaximize, ControlClose}

// ControlWidth is the number of cells each header control occupies.
const ControlWidth = 3

// controlsMargin is the gap between the close control and the frame's right edge.
const controlsMargin = 2

// minHeaderLead is the header width left of the controls below which the
// controls are not drawn. Such a header is all drag handle.
const minHeaderLead = 4

// ControlRect returns the header cells covered by c inside frame. It is empty
// when the frame is too narrow to show the controls.
func ControlRect(frame Rect, c Control) Rect {
	idx := -1
	for i, ctl := range Controls {
		if ctl == c {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Rect{}
	}
	start := frame.X + frame.Width - controlsMargin - len(Controls)*ControlWidth
	if start-frame.X < minHeaderLead {
		return Rect{}
	}
	return Rect{X: start + idx*ControlWidth, Y: frame.Y, Width: ControlWidth, Height: 1}
}

// ControlAt returns the control under (x, y) in a window drawn at frame.
func ControlAt(frame Rect, x, y int) Control {
	if y != frame.Y {
		return ControlNone
	}
	for _, c := range Controls {
		if ControlRect(frame, c).Contains(x, y) {
			return c
		}
	}
	return ControlNone
}

// Panel is the visible surface of a window: a header with controls and a body
// holding the content. Bounds are the window's own geometry; a maximized
// window is drawn over the work area instead but keeps its bounds so it can
// return to them.
type Panel struct {
	Handle  Handle
	Title   string
	Bounds  Rect
	Content Content
	// Visible is forced on by Restore in addition to leaving Minimized.
	Visible bool

	controls map[Control]func()
}

// Press activates control c. It reports whether the press was consumed; a
// consumed press must not start a drag or reach anything under the panel.
func (p *Panel) Press(c Control) bool {
	fn, ok := p.controls[c]
	if !ok {
		return false
	}
	fn()
	return true
}

// newPanel builds the panel for a new window and wires its controls to m.
// Placement cascades from the configured origin so successive windows do not
// cover each other exactly.
func (m *Manager) newPanel(h Handle, title string, content Content, width, height int) *Panel {
	step := m.zorder.Peek() % 3
	p := &Panel{
		Handle: h,
		Title:  title,
		Bounds: m.placeOnScreen(Rect{
			X:      m.origin.X + step*m.cascade.X,
			Y:      m.origin.Y + step*m.cascade.Y,
			Width:  width,
			Height: height,
		}),
		Content: content,
		Visible: true,
	}
	p.controls = map[Control]func(){
		ControlMinimize: func() { m.Minimize(h) },
		ControlMaximize: func() { m.ToggleMaximize(h) },
		ControlClose:    func() { m.Close(h) },
	}
	return p
}

// placeOnScreen pulls a new window's origin back so that as much of it as
// possible lies inside the work area. Dragging later is not limited.
func (m *Manager) placeOnScreen(r Rect) Rect {
	wa := m.workArea
	if wa.Width <= 0 || wa.Height <= 0 {
		return r
	}
	r.X = max(min(r.X, wa.X+wa.Width-r.Width), wa.X)
	r.Y = max(min(r.Y, wa.Y+wa.Height-r.Height), wa.Y)
	return r
}

// surface is the set of panels currently attached to the desktop.
type surface struct {
	panels []*Panel
}

func (s *surface) attach(p *Panel) {
	s.panels = append(s.panels, p)
}

// detach removes the panel for h and reports whether it was attached.
func (s *surface) detach(h Handle) bool {
	for i, p := range s.panels {
		if p.Handle == h {
			s.panels = append(s.panels[:i], s.panels[i+1:]...)
			return true
		}
	}
	return false
}

func (s *surface) attached(h Handle) bool {
	for _, p := range s.panels {
		if p.Handle == h {
			return true
		}
	}
	return false
}
