// Package app provides the folios desktop: the bubbletea model that owns the
// window manager, taskbar, start menu, notifications and wallpaper.
package app

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/folios/internal/config"
	"github.com/Gaurav-Gosain/folios/internal/contact"
	"github.com/Gaurav-Gosain/folios/internal/content"
	"github.com/Gaurav-Gosain/folios/internal/theme"
	"github.com/Gaurav-Gosain/folios/internal/wallpaper"
	"github.com/Gaurav-Gosain/folios/internal/wm"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Interactive is window content that takes keyboard and mouse input while
// its window is active. Render comes from wm.Content.
type Interactive interface {
	wm.Content
	Update(msg tea.Msg) tea.Cmd
	Focus() tea.Cmd
	Blur()
	// Click receives coordinates relative to the top left of the content.
	Click(x, y int) tea.Cmd
}

// Options configures a Desktop.
type Options struct {
	Config  *config.UserConfig
	Profile *content.Profile
	// Cache holds rendered documents; it may be shared between sessions.
	Cache *content.Cache
	// Inbox stores contact form submissions. Nil disables sending.
	Inbox  *contact.Inbox
	Logger *log.Logger
	// Source labels messages sent from this desktop, e.g. "local" or an ssh
	// user and address.
	Source string
	Width  int
	Height int
	Seed   uint64
	Now    func() time.Time
}

// Desktop is the state of one visitor's screen.
type Desktop struct {
	Width  int
	Height int

	WM              *wm.Manager
	Catalog         *content.Catalog
	Config          *config.UserConfig
	KeybindRegistry *config.KeybindRegistry
	Menu            StartMenu
	Konami          *Sequence
	Rain            *wallpaper.Rain
	Notifications   []Notification
	Stats           SystemStats
	// Scroll is the first visible content line per window.
	Scroll map[wm.Handle]int

	focused wm.Handle
	inbox   *contact.Inbox
	cache   *content.Cache
	profile *content.Profile
	logger  *log.Logger
	source  string
	now     func() time.Time
}

// Notification is a transient message stacked in the top right corner.
type Notification struct {
	ID        string
	Message   string
	Type      string // "info", "success", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
}

// New creates a desktop with no open windows.
func New(opts Options) *Desktop {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Profile == nil {
		opts.Profile = content.DefaultProfile()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Source == "" {
		opts.Source = "local"
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(opts.Now().UnixNano())
	}

	d := &Desktop{
		Width:           opts.Width,
		Height:          opts.Height,
		Config:          opts.Config,
		KeybindRegistry: config.NewKeybindRegistry(opts.Config),
		Konami:          NewSequence(KonamiCode...),
		Scroll:          make(map[wm.Handle]int),
		inbox:           opts.Inbox,
		cache:           opts.Cache,
		profile:         opts.Profile,
		logger:          opts.Logger,
		source:          opts.Source,
		now:             opts.Now,
	}

	desk := opts.Config.Desktop
	d.WM = wm.New(wm.Options{
		ZBase:    desk.ZBase,
		Origin:   wm.Point{X: desk.OriginX, Y: desk.OriginY},
		Cascade:  wm.Point{X: desk.CascadeX, Y: desk.CascadeY},
		Icons:    iconsFor(opts.Config),
		WorkArea: d.WorkArea(),
		Logger:   opts.Logger,
		Now:      opts.Now,
	})
	d.Rain = wallpaper.New(d.Width, d.Height, opts.Seed)
	d.Catalog = d.newCatalog()
	return d
}

func iconsFor(cfg *config.UserConfig) wm.Icons {
	return wm.Icons{Table: cfg.Icons, Default: cfg.Icons[config.DefaultIconKey]}
}

// newCatalog adds the interactive windows to the profile's documents.
func (d *Desktop) newCatalog() *content.Catalog {
	c := content.NewCatalog(d.profile, d.cache)
	c.Add(content.Entry{
		Title: content.TitleContact, Label: "Contact", Width: 60, Height: 24,
		Build: func() wm.Content {
			return contact.NewForm(contact.Options{
				Limit:     d.Config.Contact.MessageLimit,
				WarnBelow: d.Config.Contact.WarnBelow,
				Links:     d.profile.Contact.Links,
			})
		},
	})
	c.Add(content.Entry{
		Title: content.TitleHelp, Label: "Help", Width: 58, Height: 22,
		Build: func() wm.Content {
			return &helpContent{registry: func() *config.KeybindRegistry { return d.KeybindRegistry }}
		},
	})
	return c
}

// Resize updates the screen size, the maximize target and the wallpaper.
func (d *Desktop) Resize(width, height int) {
	d.Width, d.Height = width, height
	d.WM.SetWorkArea(d.WorkArea())
	d.Rain.Resize(width, height)
}

// Open opens or raises the catalog window titled title. Oversized windows
// are shrunk to the work area.
func (d *Desktop) Open(title string) (wm.Handle, bool) {
	e, ok := d.Catalog.Lookup(title)
	if !ok {
		d.ShowNotification(fmt.Sprintf("Unknown program %q", title), "warning", config.NotificationDuration)
		return "", false
	}
	d.Menu.Close()
	wa := d.WorkArea()
	w, h := e.Width, e.Height
	if wa.Width > 0 {
		w = min(w, wa.Width)
	}
	if wa.Height > 0 {
		h = min(h, wa.Height)
	}
	handle := d.WM.Open(title, e.Build, w, h)
	d.logger.Debug("window opened", "title", title, "handle", handle)
	return handle, true
}

// Close closes the window and forgets its scroll position.
func (d *Desktop) Close(h wm.Handle) {
	d.WM.Close(h)
	delete(d.Scroll, h)
}

// RestoreAll brings back every minimized window, oldest first.
func (d *Desktop) RestoreAll() {
	for _, c := range d.WM.Chips() {
		if w, ok := d.WM.Window(c.Handle); ok && w.State == wm.Minimized {
			d.WM.Restore(c.Handle)
		}
	}
}

// CycleFocus focuses the next (dir > 0) or previous visible window in
// taskbar order.
func (d *Desktop) CycleFocus(dir int) {
	var visible []wm.Handle
	for _, c := range d.WM.Chips() {
		if w, ok := d.WM.Window(c.Handle); ok && w.Visible {
			visible = append(visible, c.Handle)
		}
	}
	if len(visible) == 0 {
		return
	}
	active, _ := d.WM.Active()
	idx := -1
	for i, h := range visible {
		if h == active {
			idx = i
			break
		}
	}
	switch {
	case idx < 0:
		idx = 0
	case dir > 0:
		idx = (idx + 1) % len(visible)
	default:
		idx = (idx - 1 + len(visible)) % len(visible)
	}
	d.WM.Focus(visible[idx])
}

// Opening reports whether w is still inside its opening animation.
func (d *Desktop) Opening(w wm.Window) bool {
	dur := config.GetAnimationDuration()
	return dur > 0 && d.now().Sub(w.OpenedAt) < dur
}

// RainEnabled reports whether the wallpaper animates.
func (d *Desktop) RainEnabled() bool {
	return d.Config.Desktop.CodeRain
}

// ToggleRain turns the code rain on or off for this session.
func (d *Desktop) ToggleRain() {
	d.Config.Desktop.CodeRain = !d.Config.Desktop.CodeRain
}

// Interactive returns the content of h if it takes input.
func (d *Desktop) Interactive(h wm.Handle) (Interactive, bool) {
	if h == "" {
		return nil, false
	}
	w, ok := d.WM.Window(h)
	if !ok {
		return nil, false
	}
	ic, ok := w.Content.(Interactive)
	return ic, ok
}

// FocusedInteractive returns the interactive content of the active window
// while that window is on screen.
func (d *Desktop) FocusedInteractive() (Interactive, bool) {
	h, ok := d.WM.Active()
	if !ok {
		return nil, false
	}
	if w, ok := d.WM.Window(h); !ok || !w.Visible {
		return nil, false
	}
	return d.Interactive(h)
}

// SyncFocus tells interactive content when its window gains or loses the
// active chip. Called after every input event.
func (d *Desktop) SyncFocus() tea.Cmd {
	active, _ := d.WM.Active()
	if active == d.focused {
		return nil
	}
	if prev, ok := d.Interactive(d.focused); ok {
		prev.Blur()
	}
	d.focused = active
	if next, ok := d.Interactive(active); ok {
		return next.Focus()
	}
	return nil
}

// ContentLines renders the body of w and splits it into lines.
func (d *Desktop) ContentLines(w wm.Window) []string {
	body := Body(w.Frame)
	if body.Width <= 0 || body.Height <= 0 || w.Content == nil {
		return nil
	}
	return strings.Split(w.Content.Render(body.Width, body.Height), "\n")
}

// ScrollOffset returns the clamped first visible line of h.
func (d *Desktop) ScrollOffset(h wm.Handle) int {
	w, ok := d.WM.Window(h)
	if !ok {
		return 0
	}
	limit := max(len(d.ContentLines(w))-Body(w.Frame).Height, 0)
	return min(max(d.Scroll[h], 0), limit)
}

// ScrollBy moves the content of h by delta lines.
func (d *Desktop) ScrollBy(h wm.Handle, delta int) {
	if _, ok := d.WM.Window(h); !ok {
		return
	}
	d.Scroll[h] = d.ScrollOffset(h) + delta
	d.Scroll[h] = d.ScrollOffset(h)
}

// ApplyConfig switches to a reloaded configuration. Open windows keep their
// place; new settings apply to icons, keys, theme and the wallpaper.
func (d *Desktop) ApplyConfig(cfg *config.UserConfig) {
	d.Config = cfg
	d.KeybindRegistry = config.NewKeybindRegistry(cfg)
	config.AnimationsEnabled = cfg.Desktop.Animations
	if err := theme.Initialize(cfg.Appearance.Theme); err != nil {
		d.ShowNotification(err.Error(), "warning", config.NotificationDuration)
	}
	d.WM.SetIcons(iconsFor(cfg))
	d.WM.SetWorkArea(d.WorkArea())
	d.cache.Purge()
}

func createID() string {
	return uuid.New().String()
}

// ShowNotification stacks a message for duration. The oldest message is
// dropped once the stack is full.
func (d *Desktop) ShowNotification(message, notifType string, duration time.Duration) {
	d.Notifications = append(d.Notifications, Notification{
		ID:        createID(),
		Message:   message,
		Type:      notifType,
		StartTime: d.now(),
		Duration:  duration,
	})
	if over := len(d.Notifications) - config.MaxNotifications; over > 0 {
		d.Notifications = d.Notifications[over:]
	}

	switch notifType {
	case "error":
		d.logger.Error(message)
	case "warning":
		d.logger.Warn(message)
	default:
		d.logger.Info(message)
	}
}

// CleanupNotifications removes expired notifications.
func (d *Desktop) CleanupNotifications() {
	now := d.now()
	active := d.Notifications[:0]
	for _, n := range d.Notifications {
		if now.Sub(n.StartTime) < n.Duration {
			active = append(active, n)
		}
	}
	d.Notifications = active
}
