package app

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/folios/internal/config"
	"github.com/Gaurav-Gosain/folios/internal/wm"
	"github.com/charmbracelet/x/ansi"
)

// Geometry shared by rendering and hit testing.
const (
	iconWidth    = 12
	iconHeight   = 3
	iconGapY     = 1
	menuWidth    = 30
	chipMaxTitle = 16
	// menuHeader is the search line plus the separator under it.
	menuHeader = 2
)

// Body returns the content area inside a window frame.
func Body(frame wm.Rect) wm.Rect {
	return wm.Rect{X: frame.X + 1, Y: frame.Y + 1, Width: max(frame.Width-2, 0), Height: max(frame.Height-2, 0)}
}

func (d *Desktop) taskbarOnTop() bool {
	return d.Config.Desktop.TaskbarPosition == "top"
}

func (d *Desktop) ascii() bool {
	return d.Config.Appearance.ASCIIOnly
}

// TaskbarRow is the screen row the taskbar occupies.
func (d *Desktop) TaskbarRow() int {
	if d.taskbarOnTop() {
		return 0
	}
	return max(d.Height-config.TaskbarHeight, 0)
}

// WorkArea is the screen minus the taskbar. Maximized windows fill it.
func (d *Desktop) WorkArea() wm.Rect {
	r := wm.Rect{Width: d.Width, Height: max(d.Height-config.TaskbarHeight, 0)}
	if d.taskbarOnTop() {
		r.Y = config.TaskbarHeight
	}
	return r
}

// IconSlot is a desktop icon and the cells it covers.
type IconSlot struct {
	Title string
	Label string
	Glyph string
	Rect  wm.Rect
}

// IconSlots lays the catalog's icons out in columns down the left edge.
func (d *Desktop) IconSlots() []IconSlot {
	wa := d.WorkArea()
	icons := iconsFor(d.Config)
	x, y := wa.X+2, wa.Y+1
	var slots []IconSlot
	for _, e := range d.Catalog.Visible() {
		if y+iconHeight > wa.Y+wa.Height && y > wa.Y+1 {
			x += iconWidth + 2
			y = wa.Y + 1
		}
		slots = append(slots, IconSlot{
			Title: e.Title,
			Label: e.Label,
			Glyph: icons.Lookup(e.Title),
			Rect:  wm.Rect{X: x, Y: y, Width: iconWidth, Height: iconHeight},
		})
		y += iconHeight + iconGapY
	}
	return slots
}

// IconAt returns the icon under (x, y).
func (d *Desktop) IconAt(x, y int) (IconSlot, bool) {
	for _, s := range d.IconSlots() {
		if s.Rect.Contains(x, y) {
			return s, true
		}
	}
	return IconSlot{}, false
}

// ChipSlot is a taskbar chip and its clickable parts.
type ChipSlot struct {
	Handle wm.Handle
	Text   string
	Active bool
	Body   wm.Rect
	Close  wm.Rect
}

// TaskbarLayout is the horizontal arrangement of the taskbar.
type TaskbarLayout struct {
	Row   int
	Start wm.Rect
	Chips []ChipSlot
	// Hidden counts chips that did not fit.
	Hidden int
	Tray   string
	TrayX  int
}

func (d *Desktop) startLabel() string {
	if d.ascii() {
		return " Start "
	}
	return " ❖ Start "
}

func (d *Desktop) closeGlyph() string {
	if d.ascii() {
		return "x"
	}
	return "×"
}

// trayText is the clock and stats readout on the right of the taskbar.
func (d *Desktop) trayText() string {
	var parts []string
	if d.Config.Desktop.ShowStats && d.Stats.Sampled {
		parts = append(parts, d.Stats.CPUGraph(d.ascii()))
	}
	if d.Config.Desktop.ShowClock {
		parts = append(parts, d.now().Format("15:04"))
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// TaskbarLayout computes where the start button, chips and tray go.
func (d *Desktop) TaskbarLayout() TaskbarLayout {
	row := d.TaskbarRow()
	l := TaskbarLayout{Row: row}
	l.Start = wm.Rect{X: 0, Y: row, Width: lipgloss.Width(d.startLabel()), Height: 1}

	l.Tray = d.trayText()
	l.TrayX = max(d.Width-lipgloss.Width(l.Tray), 0)

	x := l.Start.Width + 1
	closeW := lipgloss.Width(d.closeGlyph()) + 1
	for _, c := range d.WM.Chips() {
		text := " " + c.Icon + " " + ansi.Truncate(c.Title, chipMaxTitle, "…") + " "
		w := lipgloss.Width(text)
		if x+w+closeW > l.TrayX-1 {
			l.Hidden++
			continue
		}
		l.Chips = append(l.Chips, ChipSlot{
			Handle: c.Handle,
			Text:   text,
			Active: c.Active,
			Body:   wm.Rect{X: x, Y: row, Width: w, Height: 1},
			Close:  wm.Rect{X: x + w, Y: row, Width: closeW, Height: 1},
		})
		x += w + closeW + 1
	}
	return l
}

// ChipAt returns the chip under (x, y) and whether the close mark was hit.
func (l TaskbarLayout) ChipAt(x, y int) (ChipSlot, bool, bool) {
	for _, c := range l.Chips {
		if c.Close.Contains(x, y) {
			return c, true, true
		}
		if c.Body.Contains(x, y) {
			return c, false, true
		}
	}
	return ChipSlot{}, false, false
}

// MenuRect is where the open start menu is drawn.
func (d *Desktop) MenuRect() wm.Rect {
	items := len(d.Menu.Items(d.Catalog.Visible()))
	h := max(items, 1) + menuHeader + 2
	w := min(menuWidth, max(d.Width, 0))
	if d.taskbarOnTop() {
		return wm.Rect{X: 0, Y: d.TaskbarRow() + 1, Width: w, Height: h}
	}
	return wm.Rect{X: 0, Y: max(d.TaskbarRow()-h, 0), Width: w, Height: h}
}

// MenuItemAt returns the index of the menu item under (x, y).
func (d *Desktop) MenuItemAt(x, y int) (int, bool) {
	r := d.MenuRect()
	if !r.Contains(x, y) {
		return 0, false
	}
	idx := y - r.Y - 1 - menuHeader
	if idx < 0 || idx >= len(d.Menu.Items(d.Catalog.Visible())) {
		return 0, false
	}
	return idx, true
}
