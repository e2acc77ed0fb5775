package input

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/folios/internal/app"
	"github.com/Gaurav-Gosain/folios/internal/config"
	"github.com/Gaurav-Gosain/folios/internal/contact"
	"github.com/Gaurav-Gosain/folios/internal/content"
	"github.com/Gaurav-Gosain/folios/internal/wm"
)

func newTestDesktop(width, height int) *app.Desktop {
	cfg := config.DefaultConfig()
	cfg.Desktop.CodeRain = false
	cfg.Desktop.ShowStats = false
	cfg.Desktop.ShowClock = false
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return app.New(app.Options{
		Config: cfg,
		Width:  width,
		Height: height,
		Seed:   1,
		Now:    func() time.Time { return now },
	})
}

func click(d *app.Desktop, x, y int) {
	HandleInput(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}, d)
}

func press(d *app.Desktop, msgs ...tea.KeyPressMsg) {
	for _, m := range msgs {
		HandleInput(m, d)
	}
}

func text(s string) []tea.KeyPressMsg {
	var out []tea.KeyPressMsg
	for _, r := range s {
		out = append(out, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return out
}

func mustOpen(t *testing.T, d *app.Desktop, title string) wm.Window {
	t.Helper()
	h, ok := d.Open(title)
	if !ok {
		t.Fatalf("Open(%q) failed", title)
	}
	d.SyncFocus()
	w, _ := d.WM.Window(h)
	return w
}

func TestHeaderDragMovesWindow(t *testing.T) {
	d := newTestDesktop(120, 40)
	w := mustOpen(t, d, content.TitleProjects)

	click(d, w.Frame.X+3, w.Frame.Y)
	if got := d.WM.Drag().State(); got != wm.Dragging {
		t.Fatalf("drag state = %v, want Dragging", got)
	}
	HandleInput(tea.MouseMotionMsg{X: w.Frame.X + 8, Y: w.Frame.Y + 2}, d)
	HandleInput(tea.MouseReleaseMsg{X: w.Frame.X + 8, Y: w.Frame.Y + 2}, d)

	moved, _ := d.WM.Window(w.Handle)
	if moved.Bounds.X != w.Bounds.X+5 || moved.Bounds.Y != w.Bounds.Y+2 {
		t.Errorf("bounds after drag = %+v, want offset (5, 2) from %+v", moved.Bounds, w.Bounds)
	}

	// Motion after release must not move the window.
	HandleInput(tea.MouseMotionMsg{X: 0, Y: 0}, d)
	after, _ := d.WM.Window(w.Handle)
	if after.Bounds != moved.Bounds {
		t.Errorf("window moved after release: %+v", after.Bounds)
	}
}

func TestHeaderControls(t *testing.T) {
	tests := []struct {
		name    string
		control wm.Control
		check   func(t *testing.T, d *app.Desktop, h wm.Handle)
	}{
		{
			name:    "close",
			control: wm.ControlClose,
			check: func(t *testing.T, d *app.Desktop, h wm.Handle) {
				if _, ok := d.WM.Window(h); ok {
					t.Error("window still open after close")
				}
				if len(d.WM.Chips()) != 0 {
					t.Error("chip left on taskbar after close")
				}
			},
		},
		{
			name:    "minimize",
			control: wm.ControlMinimize,
			check: func(t *testing.T, d *app.Desktop, h wm.Handle) {
				w, _ := d.WM.Window(h)
				if w.State != wm.Minimized || w.Visible {
					t.Errorf("state = %v visible = %v, want hidden Minimized", w.State, w.Visible)
				}
			},
		},
		{
			name:    "maximize",
			control: wm.ControlMaximize,
			check: func(t *testing.T, d *app.Desktop, h wm.Handle) {
				w, _ := d.WM.Window(h)
				if w.State != wm.Maximized {
					t.Errorf("state = %v, want Maximized", w.State)
				}
				if w.Frame != d.WorkArea() {
					t.Errorf("frame = %+v, want work area %+v", w.Frame, d.WorkArea())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDesktop(120, 40)
			w := mustOpen(t, d, content.TitleSkills)
			r := wm.ControlRect(w.Frame, tt.control)
			click(d, r.X+1, r.Y)
			tt.check(t, d, w.Handle)
		})
	}
}

func TestTaskbarClicks(t *testing.T) {
	d := newTestDesktop(120, 40)
	w := mustOpen(t, d, content.TitleResume)

	layout := d.TaskbarLayout()
	if len(layout.Chips) != 1 {
		t.Fatalf("chips = %d, want 1", len(layout.Chips))
	}
	chip := layout.Chips[0]

	click(d, chip.Body.X, chip.Body.Y)
	if got, _ := d.WM.Window(w.Handle); got.State != wm.Minimized {
		t.Fatalf("state after first chip click = %v, want Minimized", got.State)
	}
	click(d, chip.Body.X, chip.Body.Y)
	if got, _ := d.WM.Window(w.Handle); got.State != wm.Normal || !got.Active {
		t.Fatalf("after second chip click state = %v active = %v, want active Normal", got.State, got.Active)
	}

	click(d, chip.Close.X, chip.Close.Y)
	if d.WM.Len() != 0 {
		t.Errorf("windows = %d after chip close, want 0", d.WM.Len())
	}
}

func TestStartMenu(t *testing.T) {
	d := newTestDesktop(120, 40)
	start := d.TaskbarLayout().Start

	click(d, start.X, start.Y)
	if !d.Menu.Open {
		t.Fatal("start button did not open the menu")
	}
	click(d, 100, 5)
	if d.Menu.Open {
		t.Fatal("click outside did not close the menu")
	}

	press(d, tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if !d.Menu.Open {
		t.Fatal("ctrl+s did not open the menu")
	}
	press(d, text("resu")...)
	if d.Menu.Query != "resu" {
		t.Fatalf("query = %q, want %q", d.Menu.Query, "resu")
	}
	press(d, tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := d.WM.Lookup(content.TitleResume); !ok {
		t.Error("enter did not open the selected entry")
	}
	if d.Menu.Open {
		t.Error("menu still open after launching")
	}
}

func TestStartMenuItemClick(t *testing.T) {
	d := newTestDesktop(120, 40)
	d.Menu.Toggle()
	r := d.MenuRect()
	items := d.Menu.Items(d.Catalog.Visible())

	// First item row: border, search line, separator.
	click(d, r.X+2, r.Y+3)
	if _, ok := d.WM.Lookup(items[0].Title); !ok {
		t.Errorf("clicking the first item did not open %q", items[0].Title)
	}
}

func TestIconClickOpensWindow(t *testing.T) {
	d := newTestDesktop(120, 40)
	slots := d.IconSlots()
	if len(slots) == 0 {
		t.Fatal("no desktop icons")
	}
	click(d, slots[0].Rect.X+1, slots[0].Rect.Y+1)
	if _, ok := d.WM.Lookup(slots[0].Title); !ok {
		t.Errorf("icon click did not open %q", slots[0].Title)
	}
	for _, s := range slots {
		if s.Title == content.TitleEasterEgg {
			t.Error("hidden window has a desktop icon")
		}
	}
}

func TestKonamiOpensEasterEgg(t *testing.T) {
	d := newTestDesktop(120, 40)
	keys := []tea.KeyPressMsg{
		{Code: tea.KeyUp}, {Code: tea.KeyUp},
		{Code: tea.KeyDown}, {Code: tea.KeyDown},
		{Code: tea.KeyLeft}, {Code: tea.KeyRight},
		{Code: tea.KeyLeft}, {Code: tea.KeyRight},
	}
	keys = append(keys, text("ba")...)
	press(d, keys...)
	if _, ok := d.WM.Lookup(content.TitleEasterEgg); !ok {
		t.Error("konami code did not open the easter egg")
	}
}

func TestKeysReachFocusedForm(t *testing.T) {
	d := newTestDesktop(120, 40)
	w := mustOpen(t, d, content.TitleContact)
	form, ok := w.Content.(*contact.Form)
	if !ok {
		t.Fatalf("contact content is %T", w.Content)
	}

	press(d, text("ada?")...)
	if got := form.Values().Name; got != "ada?" {
		t.Errorf("name = %q, want %q", got, "ada?")
	}
	if _, ok := d.WM.Lookup(content.TitleHelp); ok {
		t.Error("typing ? in a form opened help")
	}

	press(d, tea.KeyPressMsg{Code: tea.KeyTab})
	if form.Focused() != contact.FieldEmail {
		t.Errorf("focused = %v after tab, want email", form.Focused())
	}

	press(d, tea.KeyPressMsg{Code: 'w', Mod: tea.ModCtrl})
	if d.WM.Len() != 0 {
		t.Error("ctrl+w did not close the focused form")
	}
}

func TestActionsWithoutForm(t *testing.T) {
	d := newTestDesktop(120, 40)
	press(d, text("?")...)
	if _, ok := d.WM.Lookup(content.TitleHelp); !ok {
		t.Fatal("? did not open help")
	}
	press(d, tea.KeyPressMsg{Code: '1', Mod: tea.ModAlt})
	h, ok := d.WM.Lookup(content.TitleProjects)
	if !ok {
		t.Fatal("alt+1 did not open projects")
	}
	if active, _ := d.WM.Active(); active != h {
		t.Error("newly opened window is not active")
	}

	press(d, tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl})
	if active, _ := d.WM.Active(); active == h {
		t.Error("ctrl+n did not move focus")
	}

	press(d, tea.KeyPressMsg{Code: 'c', Mod: tea.ModAlt})
	if !d.RainEnabled() {
		t.Error("alt+c did not toggle the rain on")
	}
}

func TestWheelScrollsWindowUnderPointer(t *testing.T) {
	d := newTestDesktop(100, 20)
	w := mustOpen(t, d, content.TitleProjects)
	if len(d.ContentLines(w)) <= app.Body(w.Frame).Height {
		t.Skip("content fits without scrolling")
	}

	body := app.Body(w.Frame)
	HandleInput(tea.MouseWheelMsg{X: body.X + 1, Y: body.Y + 1, Button: tea.MouseWheelDown}, d)
	if got := d.ScrollOffset(w.Handle); got != wheelLines {
		t.Errorf("offset = %d, want %d", got, wheelLines)
	}
	HandleInput(tea.MouseWheelMsg{X: body.X + 1, Y: body.Y + 1, Button: tea.MouseWheelUp}, d)
	HandleInput(tea.MouseWheelMsg{X: body.X + 1, Y: body.Y + 1, Button: tea.MouseWheelUp}, d)
	if got := d.ScrollOffset(w.Handle); got != 0 {
		t.Errorf("offset = %d after scrolling past the top, want 0", got)
	}
}

func TestDispatcherCoversBoundActions(t *testing.T) {
	for _, action := range append(append([]string{}, config.DesktopActions...), config.WindowActions...) {
		if !GetDispatcher().HasAction(action) {
			t.Errorf("no handler for %q", action)
		}
	}
}
