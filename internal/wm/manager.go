package wm

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
)

// Options configures a Manager. The zero value is usable.
type Options struct {
	// ZBase is the first stacking value handed to a window.
	ZBase int
	// Origin is where the first window of a cascade is placed.
	Origin Point
	// Cascade is the offset applied per cascade step (three steps, then wrap).
	Cascade Point
	// Icons is the taskbar icon table.
	Icons Icons
	// WorkArea is the region a maximized window fills.
	WorkArea Rect
	Logger   *log.Logger
	// Now is used to stamp window creation; defaults to time.Now.
	Now func() time.Time
}

type entry struct {
	handle   Handle
	title    string
	panel    *Panel
	chip     *Chip
	state    State
	z        int
	openedAt time.Time
}

// Window is a read-only snapshot of an open window, suitable for rendering.
type Window struct {
	Handle  Handle
	Title   string
	Icon    string
	State   State
	Z       int
	Bounds  Rect
	Frame   Rect
	Content Content
	Visible bool
	Active  bool
	// OpenedAt is when the window was created.
	OpenedAt time.Time
}

// Manager owns every window of one desktop. It is not safe for concurrent use;
// all calls are expected to come from the program's update loop.
type Manager struct {
	entries map[Handle]*entry
	titles  map[string]Handle

	zorder  *ZOrder
	surface surface
	taskbar taskbar
	drag    Drag

	origin   Point
	cascade  Point
	icons    Icons
	workArea Rect
	logger   *log.Logger
	now      func() time.Time
}

// New returns an empty window manager.
func New(opts Options) *Manager {
	if opts.ZBase <= 0 {
		opts.ZBase = DefaultZBase
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Manager{
		entries:  make(map[Handle]*entry),
		titles:   make(map[string]Handle),
		zorder:   NewZOrder(opts.ZBase),
		origin:   opts.Origin,
		cascade:  opts.Cascade,
		icons:    opts.Icons,
		workArea: opts.WorkArea,
		logger:   opts.Logger.With("component", "wm"),
		now:      opts.Now,
	}
}

// SetWorkArea sets the region maximized windows fill.
func (m *Manager) SetWorkArea(r Rect) {
	m.workArea = r
}

// WorkArea returns the region maximized windows fill.
func (m *Manager) WorkArea() Rect {
	return m.workArea
}

// SetIcons replaces the taskbar icon table. Existing chips keep their icon.
func (m *Manager) SetIcons(icons Icons) {
	m.icons = icons
}

// Open shows the window titled title. If it is already open it is brought to
// the front, leaving Minimized if needed, and its existing handle is returned;
// build is not called. Otherwise a new panel and chip are created.
func (m *Manager) Open(title string, build ContentBuilder, width, height int) Handle {
	if h, ok := m.titles[title]; ok {
		e := m.entries[h]
		if e.state == Minimized {
			e.state = Normal
		}
		m.Focus(h)
		m.logger.Debug("window raised", "title", title, "z", e.z)
		return h
	}

	var content Content
	if build != nil {
		content = build()
	}

	h := newHandle()
	panel := m.newPanel(h, title, content, width, height)
	e := &entry{
		handle:   h,
		title:    title,
		panel:    panel,
		chip:     &Chip{Handle: h, Title: title, Icon: m.icons.Lookup(title)},
		state:    Normal,
		z:        m.zorder.Next(),
		openedAt: m.now(),
	}

	m.surface.attach(panel)
	m.taskbar.append(e.chip)
	m.entries[h] = e
	m.titles[title] = h
	m.taskbar.setActive(h)

	m.logger.Debug("window opened", "title", title, "handle", h, "z", e.z, "x", panel.Bounds.X, "y", panel.Bounds.Y)
	return h
}

// Close removes the window's chip and panel and forgets it. Each removal is
// attempted on its own, so an element that is already gone does not stop the
// other from being removed. Closing an unknown handle does nothing.
func (m *Manager) Close(h Handle) {
	e, ok := m.entries[h]
	if !ok {
		return
	}
	if !m.taskbar.remove(h) {
		m.logger.Info("taskbar chip already removed", "title", e.title)
	}
	if !m.surface.detach(h) {
		m.logger.Info("window panel already removed", "title", e.title)
	}
	delete(m.entries, h)
	delete(m.titles, e.title)
	if m.drag.handle == h {
		m.drag.release()
	}
	m.logger.Debug("window closed", "title", e.title)
}

// Minimize hides the window and clears the active chip.
func (m *Manager) Minimize(h Handle) {
	e, ok := m.entries[h]
	if !ok {
		return
	}
	e.state = Minimized
	if m.drag.handle == h {
		m.drag.release()
	}
	m.taskbar.setActive("")
}

// Maximize makes the window fill the work area and brings it to the front.
func (m *Manager) Maximize(h Handle) {
	e, ok := m.entries[h]
	if !ok {
		return
	}
	e.state = Maximized
	m.Focus(h)
}

// ToggleMaximize switches a maximized window back to its own bounds and any
// other window to maximized.
func (m *Manager) ToggleMaximize(h Handle) {
	e, ok := m.entries[h]
	if !ok {
		return
	}
	if e.state == Maximized {
		e.state = Normal
		m.Focus(h)
		return
	}
	m.Maximize(h)
}

// Restore returns a window to Normal, forces its panel visible and brings it
// to the front.
func (m *Manager) Restore(h Handle) {
	e, ok := m.entries[h]
	if !ok {
		return
	}
	e.state = Normal
	e.panel.Visible = true
	m.Focus(h)
}

// Focus raises the window to the top of the stack and makes its chip the
// only active one.
func (m *Manager) Focus(h Handle) {
	e, ok := m.entries[h]
	if !ok {
		return
	}
	e.z = m.zorder.Next()
	m.taskbar.setActive(h)
}

// Activate handles a click on the body of a taskbar chip: a minimized window
// is restored, anything else is minimized, then the window is focused.
func (m *Manager) Activate(h Handle) {
	e, ok := m.entries[h]
	if !ok {
		return
	}
	if e.state == Minimized {
		m.Restore(h)
	} else {
		m.Minimize(h)
	}
	m.Focus(h)
}

// PressControl presses a header control of window h. It reports whether the
// press was consumed.
func (m *Manager) PressControl(h Handle, c Control) bool {
	e, ok := m.entries[h]
	if !ok {
		return false
	}
	return e.panel.Press(c)
}

// Lookup returns the handle of the open window titled title.
func (m *Manager) Lookup(title string) (Handle, bool) {
	h, ok := m.titles[title]
	return h, ok
}

// Len returns the number of open windows.
func (m *Manager) Len() int {
	return len(m.entries)
}

// Active returns the window whose chip is active.
func (m *Manager) Active() (Handle, bool) {
	return m.taskbar.active()
}

// Window returns a snapshot of window h.
func (m *Manager) Window(h Handle) (Window, bool) {
	e, ok := m.entries[h]
	if !ok {
		return Window{}, false
	}
	return m.snapshot(e), true
}

// Windows returns snapshots of every open window, bottom of the stack first.
func (m *Manager) Windows() []Window {
	out := make([]Window, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, m.snapshot(e))
	}
	slices.SortFunc(out, func(a, b Window) int { return a.Z - b.Z })
	return out
}

// Chips returns the taskbar chips in opening order.
func (m *Manager) Chips() []Chip {
	out := make([]Chip, len(m.taskbar.chips))
	for i, c := range m.taskbar.chips {
		out[i] = *c
	}
	return out
}

// Top returns the visible window with the highest stacking value.
func (m *Manager) Top() (Handle, bool) {
	var top *entry
	for _, e := range m.entries {
		if !m.visible(e) {
			continue
		}
		if top == nil || e.z > top.z {
			top = e
		}
	}
	if top == nil {
		return "", false
	}
	return top.handle, true
}

func (m *Manager) visible(e *entry) bool {
	return e.state != Minimized && e.panel.Visible
}

func (m *Manager) frame(e *entry) Rect {
	if e.state == Maximized {
		return m.workArea
	}
	return e.panel.Bounds
}

func (m *Manager) snapshot(e *entry) Window {
	return Window{
		Handle:   e.handle,
		Title:    e.title,
		Icon:     e.chip.Icon,
		State:    e.state,
		Z:        e.z,
		Bounds:   e.panel.Bounds,
		Frame:    m.frame(e),
		Content:  e.panel.Content,
		Visible:  m.visible(e),
		Active:   e.chip.Active,
		OpenedAt: e.openedAt,
	}
}
