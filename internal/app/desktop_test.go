package app

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/folios/internal/config"
	"github.com/Gaurav-Gosain/folios/internal/contact"
	"github.com/Gaurav-Gosain/folios/internal/content"
	"github.com/Gaurav-Gosain/folios/internal/wm"
	"github.com/charmbracelet/x/ansi"
)

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time          { return c.t }
func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestDesktop(t *testing.T, inbox *contact.Inbox) (*Desktop, *testClock) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Desktop.CodeRain = false
	cfg.Desktop.ShowStats = false
	cfg.Desktop.ShowClock = false
	cache, err := content.NewCache(16)
	if err != nil {
		t.Fatal(err)
	}
	clock := &testClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	d := New(Options{
		Config: cfg,
		Cache:  cache,
		Inbox:  inbox,
		Width:  120,
		Height: 40,
		Seed:   7,
		Now:    clock.now,
	})
	return d, clock
}

func TestOpenUnknownTitleWarns(t *testing.T) {
	d, _ := newTestDesktop(t, nil)
	if _, ok := d.Open("Minesweeper.exe"); ok {
		t.Fatal("Open of an unknown title succeeded")
	}
	if d.WM.Len() != 0 {
		t.Errorf("windows = %d, want 0", d.WM.Len())
	}
	if len(d.Notifications) != 1 || d.Notifications[0].Type != "warning" {
		t.Errorf("notifications = %+v, want one warning", d.Notifications)
	}
}

func TestOpenTwiceRaisesSameWindow(t *testing.T) {
	d, _ := newTestDesktop(t, nil)
	first, _ := d.Open(content.TitleProjects)
	d.Open(content.TitleSkills)
	again, _ := d.Open(content.TitleProjects)
	if again != first {
		t.Errorf("second open returned %v, want %v", again, first)
	}
	if d.WM.Len() != 2 {
		t.Errorf("windows = %d, want 2", d.WM.Len())
	}
	top, _ := d.WM.Top()
	if top != first {
		t.Error("reopened window is not on top")
	}
}

func TestOpenClampsToWorkArea(t *testing.T) {
	d, _ := newTestDesktop(t, nil)
	d.Resize(50, 15)
	h, _ := d.Open(content.TitleResume)
	w, _ := d.WM.Window(h)
	wa := d.WorkArea()
	if w.Bounds.Width > wa.Width || w.Bounds.Height > wa.Height {
		t.Errorf("bounds %+v exceed work area %+v", w.Bounds, wa)
	}
}

func TestOpenClosesStartMenu(t *testing.T) {
	d, _ := newTestDesktop(t, nil)
	d.Menu.Toggle()
	d.Menu.Type("sk")
	d.Open(content.TitleSkills)
	if d.Menu.Open || d.Menu.Query != "" {
		t.Errorf("menu = %+v after open, want closed and cleared", d.Menu)
	}
}

func TestScrollClamps(t *testing.T) {
	d, _ := newTestDesktop(t, nil)
	d.Resize(100, 20)
	h, _ := d.Open(content.TitleProjects)
	w, _ := d.WM.Window(h)
	limit := len(d.ContentLines(w)) - Body(w.Frame).Height
	if limit <= 0 {
		t.Skip("content fits without scrolling")
	}

	d.ScrollBy(h, -5)
	if got := d.ScrollOffset(h); got != 0 {
		t.Errorf("offset = %d after scrolling up from the top, want 0", got)
	}
	d.ScrollBy(h, 1000)
	if got := d.ScrollOffset(h); got != limit {
		t.Errorf("offset = %d, want limit %d", got, limit)
	}
	d.Close(h)
	if _, ok := d.Scroll[h]; ok {
		t.Error("scroll position kept after close")
	}
}

func TestCycleFocusSkipsMinimized(t *testing.T) {
	d, _ := newTestDesktop(t, nil)
	a, _ := d.Open(content.TitleProjects)
	b, _ := d.Open(content.TitleSkills)
	c, _ := d.Open(content.TitleResume)
	d.WM.Minimize(b)
	d.WM.Focus(a)

	d.CycleFocus(1)
	if got, _ := d.WM.Active(); got != c {
		t.Errorf("next after %v = %v, want %v", a, got, c)
	}
	d.CycleFocus(1)
	if got, _ := d.WM.Active(); got != a {
		t.Errorf("next wraps to %v, want %v", got, a)
	}
	d.CycleFocus(-1)
	if got, _ := d.WM.Active(); got != c {
		t.Errorf("previous = %v, want %v", got, c)
	}
}

func TestRestoreAll(t *testing.T) {
	d, _ := newTestDesktop(t, nil)
	a, _ := d.Open(content.TitleProjects)
	b, _ := d.Open(content.TitleSkills)
	d.WM.Minimize(a)
	d.WM.Minimize(b)
	d.RestoreAll()
	for _, h := range []wm.Handle{a, b} {
		if w, _ := d.WM.Window(h); w.State != wm.Normal {
			t.Errorf("%v state = %v, want Normal", h, w.State)
		}
	}
}

func TestOpeningFlagExpires(t *testing.T) {
	d, clock := newTestDesktop(t, nil)
	h, _ := d.Open(content.TitleSkills)
	w, _ := d.WM.Window(h)
	if !d.Opening(w) {
		t.Error("new window is not opening")
	}
	clock.advance(config.GetAnimationDuration())
	if d.Opening(w) {
		t.Error("window still opening after the animation")
	}
}

func TestNotifications(t *testing.T) {
	d, clock := newTestDesktop(t, nil)
	for i := range config.MaxNotifications + 2 {
		d.ShowNotification(strings.Repeat("x", i+1), "info", time.Second)
	}
	if len(d.Notifications) != config.MaxNotifications {
		t.Fatalf("notifications = %d, want %d", len(d.Notifications), config.MaxNotifications)
	}
	if d.Notifications[0].Message != "xxx" {
		t.Errorf("oldest kept = %q, want the third message", d.Notifications[0].Message)
	}

	clock.advance(500 * time.Millisecond)
	d.ShowNotification("late", "success", time.Second)
	clock.advance(600 * time.Millisecond)
	d.CleanupNotifications()
	if len(d.Notifications) != 1 || d.Notifications[0].Message != "late" {
		t.Errorf("after cleanup = %+v, want only the late message", d.Notifications)
	}
}

func TestSubmitWithoutInbox(t *testing.T) {
	d, _ := newTestDesktop(t, nil)
	_, cmd := d.Update(contact.SubmitMsg{Form: contact.NewForm(contact.Options{}), Message: contact.Message{Name: "a"}})
	if cmd != nil {
		t.Error("submit without an inbox returned a command")
	}
	if len(d.Notifications) != 1 || d.Notifications[0].Type != "error" {
		t.Errorf("notifications = %+v, want one error", d.Notifications)
	}
}

func TestSubmitStoresMessage(t *testing.T) {
	inbox, err := contact.OpenInbox(filepath.Join(t.TempDir(), "inbox.db"))
	if err != nil {
		t.Fatalf("OpenInbox: %v", err)
	}
	t.Cleanup(func() { inbox.Close() })

	d, _ := newTestDesktop(t, inbox)
	h, _ := d.Open(content.TitleContact)
	d.SyncFocus()
	w, _ := d.WM.Window(h)
	form := w.Content.(*contact.Form)
	form.SetValues("Ada", "ada@example.com", "Hello there")
	form.SetHuman(true)

	_, cmd := d.Update(contact.SubmitMsg{Form: form, Message: form.Values()})
	if cmd == nil {
		t.Fatal("submit returned no command")
	}
	saved, ok := cmd().(MessageSavedMsg)
	if !ok {
		t.Fatal("command did not produce MessageSavedMsg")
	}
	if saved.Err != nil {
		t.Fatalf("save: %v", saved.Err)
	}
	d.Update(saved)

	if got := form.Values(); got.Name != "" || got.Body != "" {
		t.Errorf("form not reset: %+v", got)
	}
	last := d.Notifications[len(d.Notifications)-1]
	if last.Type != "success" {
		t.Errorf("last notification = %+v, want success", last)
	}

	msgs, err := inbox.List(t.Context(), 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Source != "local" || msgs[0].Email != "ada@example.com" {
		t.Errorf("stored = %+v", msgs)
	}
}

func TestSaveFailureKeepsForm(t *testing.T) {
	d, _ := newTestDesktop(t, nil)
	form := contact.NewForm(contact.Options{})
	form.SetValues("Ada", "ada@example.com", "hi")
	d.Update(MessageSavedMsg{Form: form, Err: errors.New("disk full")})
	if form.Values().Body != "hi" {
		t.Error("form cleared after a failed save")
	}
	if d.Notifications[0].Type != "error" {
		t.Errorf("notification type = %q, want error", d.Notifications[0].Type)
	}
}

func TestConfigReload(t *testing.T) {
	d, _ := newTestDesktop(t, nil)
	d.Update(ConfigReloadedMsg{Err: errors.New("bad toml")})
	if d.Notifications[0].Type != "error" {
		t.Fatalf("notification = %+v, want error", d.Notifications[0])
	}

	cfg := config.DefaultConfig()
	cfg.Desktop.ShowStats = false
	cfg.Desktop.TaskbarPosition = "top"
	cfg.Keybindings.Desktop["toggle_help"] = []string{"f5"}
	d.Update(ConfigReloadedMsg{Config: cfg})
	if d.TaskbarRow() != 0 || d.WM.WorkArea().Y != config.TaskbarHeight {
		t.Errorf("taskbar row = %d work area = %+v, want taskbar on top", d.TaskbarRow(), d.WM.WorkArea())
	}
	if got := d.KeybindRegistry.GetAction("f5"); got != "toggle_help" {
		t.Errorf("f5 = %q, want toggle_help", got)
	}
}

func TestTaskbarLayout(t *testing.T) {
	d, _ := newTestDesktop(t, nil)
	d.Resize(60, 20)
	for _, title := range []string{content.TitleProjects, content.TitleSkills, content.TitleResume, content.TitleContact, content.TitleHelp} {
		d.Open(title)
	}
	l := d.TaskbarLayout()
	if l.Row != 19 {
		t.Errorf("row = %d, want 19", l.Row)
	}
	if len(l.Chips)+l.Hidden != 5 {
		t.Errorf("chips %d + hidden %d, want 5", len(l.Chips), l.Hidden)
	}
	if l.Hidden == 0 {
		t.Error("expected some chips to overflow a 60 column taskbar")
	}
	prev := l.Start.X + l.Start.Width
	for _, c := range l.Chips {
		if c.Body.X < prev || c.Close.X != c.Body.X+c.Body.Width {
			t.Errorf("chip %+v overlaps or has a detached close mark", c)
		}
		prev = c.Close.X + c.Close.Width
		got, closeHit, ok := l.ChipAt(c.Close.X, l.Row)
		if !ok || !closeHit || got.Handle != c.Handle {
			t.Errorf("ChipAt on close of %v = %v %v %v", c.Handle, got.Handle, closeHit, ok)
		}
	}
}

func TestRenderShowsDesktop(t *testing.T) {
	d, _ := newTestDesktop(t, nil)
	if out := ansi.Strip(d.Render()); !strings.Contains(out, "Projects") {
		t.Error("empty desktop has no Projects icon")
	}

	d.Open(content.TitleSkills)
	d.ShowNotification("Welcome", "info", time.Minute)

	out := ansi.Strip(d.Render())
	lines := strings.Split(out, "\n")
	if len(lines) > d.Height {
		t.Errorf("rendered %d lines, want at most %d", len(lines), d.Height)
	}
	for _, want := range []string{content.TitleSkills, "Start", "Welcome"} {
		if !strings.Contains(out, want) {
			t.Errorf("render is missing %q", want)
		}
	}
}

func TestRenderEmptyScreen(t *testing.T) {
	d, _ := newTestDesktop(t, nil)
	d.Resize(0, 0)
	if got := d.Render(); got != "" {
		t.Errorf("Render() at zero size = %q, want empty", got)
	}
}

func TestFilterMouseMotion(t *testing.T) {
	d, _ := newTestDesktop(t, nil)
	h, _ := d.Open(content.TitleSkills)
	w, _ := d.WM.Window(h)
	motion := tea.MouseMotionMsg{X: w.Frame.X + 4, Y: w.Frame.Y + 1}

	if got := FilterMouseMotion(d, motion); got != nil {
		t.Errorf("motion without a drag passed the filter: %v", got)
	}
	click := tea.MouseClickMsg{X: 1, Y: 1, Button: tea.MouseLeft}
	if got := FilterMouseMotion(d, click); got == nil {
		t.Error("click was filtered")
	}

	if !d.WM.BeginDrag(h, w.Frame.X+3, w.Frame.Y) {
		t.Fatal("BeginDrag refused")
	}
	if got := FilterMouseMotion(d, motion); got == nil {
		t.Error("motion during a drag was filtered")
	}
	d.WM.EndDrag()
	if got := FilterMouseMotion(d, motion); got != nil {
		t.Error("motion after release passed the filter")
	}
}

func TestOpenOnNarrowDesktop(t *testing.T) {
	d, _ := newTestDesktop(t, nil)
	d.Resize(9, 20)
	h, _ := d.Open(content.TitleProjects)
	w, _ := d.WM.Window(h)

	wa := d.WorkArea()
	if w.Frame.X < wa.X || w.Frame.Y < wa.Y ||
		w.Frame.X+w.Frame.Width > wa.X+wa.Width || w.Frame.Y+w.Frame.Height > wa.Y+wa.Height {
		t.Fatalf("frame %+v not inside work area %+v", w.Frame, wa)
	}

	hit, ok := d.WM.HitTest(w.Frame.X, w.Frame.Y)
	if !ok || hit.Region != wm.RegionHeader {
		t.Errorf("header hit = %+v, want RegionHeader with no controls", hit)
	}
	if !strings.Contains(ansi.Strip(d.Render()), "─") {
		t.Error("narrow window has no header border")
	}
}
