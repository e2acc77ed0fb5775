package app

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/folios/internal/config"
	"github.com/Gaurav-Gosain/folios/internal/pool"
	"github.com/Gaurav-Gosain/folios/internal/theme"
	"github.com/Gaurav-Gosain/folios/internal/wm"
	"github.com/charmbracelet/x/ansi"
)

// View renders the desktop.
func (d *Desktop) View() tea.View {
	var view tea.View
	view.SetContent(d.Render())
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	return view
}

// Render composes every layer of the desktop into one frame.
func (d *Desktop) Render() string {
	if d.Width <= 0 || d.Height <= 0 {
		return ""
	}

	layersPtr := pool.GetLayerSlice()
	defer pool.PutLayerSlice(layersPtr)
	layers := (*layersPtr)[:0]

	layers = append(layers, d.renderWallpaper())
	layers = append(layers, d.renderIcons()...)
	for _, w := range d.WM.Windows() {
		if layer := d.renderWindowLayer(w); layer != nil {
			layers = append(layers, layer)
		}
	}
	if d.Menu.Open {
		layers = append(layers, d.renderStartMenu())
	}
	layers = append(layers, d.renderNotifications()...)
	layers = append(layers, d.renderTaskbar())
	*layersPtr = layers

	comp := lipgloss.NewCompositor(layers...)
	return lipgloss.NewCanvas(d.Width, d.Height).Compose(comp).Render()
}

func (d *Desktop) renderWallpaper() *lipgloss.Layer {
	var bg string
	if d.RainEnabled() {
		bg = d.Rain.Render()
	} else {
		line := lipgloss.NewStyle().Background(theme.DesktopBg()).Render(strings.Repeat(" ", d.Width))
		rows := make([]string, d.Height)
		for i := range rows {
			rows[i] = line
		}
		bg = strings.Join(rows, "\n")
	}
	return lipgloss.NewLayer(bg).X(0).Y(0).Z(config.ZIndexWallpaper).ID("wallpaper")
}

func (d *Desktop) renderIcons() []*lipgloss.Layer {
	glyph := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent())
	label := lipgloss.NewStyle().Foreground(theme.DesktopFg()).Bold(true)
	title := lipgloss.NewStyle().Foreground(theme.Dim())

	slots := d.IconSlots()
	layers := make([]*lipgloss.Layer, 0, len(slots))
	for _, s := range slots {
		lines := []string{
			glyph.Render(centerLine(s.Glyph, s.Rect.Width)),
			label.Render(centerLine(s.Label, s.Rect.Width)),
			title.Render(centerLine(s.Title, s.Rect.Width)),
		}
		block, x, y := clipWindowContent(strings.Join(lines, "\n"), s.Rect.X, s.Rect.Y, d.Width, d.Height)
		if block == "" {
			continue
		}
		layers = append(layers, lipgloss.NewLayer(block).X(x).Y(y).Z(config.ZIndexIcons).ID("icon:"+s.Title))
	}
	return layers
}

func (d *Desktop) renderWindowLayer(w wm.Window) *lipgloss.Layer {
	if !w.Visible {
		return nil
	}
	block := d.renderWindow(w)
	if block == "" {
		return nil
	}
	clipped, x, y := clipWindowContent(block, w.Frame.X, w.Frame.Y, d.Width, d.Height)
	if clipped == "" {
		return nil
	}
	return lipgloss.NewLayer(clipped).X(x).Y(y).Z(w.Z).ID(string(w.Handle))
}

// renderWindow draws the frame, header and scrolled body of w.
func (d *Desktop) renderWindow(w wm.Window) string {
	f := w.Frame
	if f.Width < 4 || f.Height < 3 {
		return ""
	}
	b := d.border()

	var borderColor color.Color
	switch {
	case d.Opening(w):
		borderColor = theme.BorderOpening()
	case w.Active:
		borderColor = theme.BorderActive()
	default:
		borderColor = theme.BorderInactive()
	}
	bs := lipgloss.NewStyle().Foreground(borderColor).Background(theme.WindowBg())

	lines := make([]string, 0, f.Height)
	lines = append(lines, d.renderHeader(w, b, bs))
	lines = append(lines, d.renderBody(w, b, bs)...)
	lines = append(lines, bs.Render(b.BottomLeft+strings.Repeat(b.Bottom, f.Width-2)+b.BottomRight))
	return strings.Join(lines, "\n")
}

// renderHeader draws the top border with the icon, title and controls. The
// controls land on the cells reported by wm.ControlRect.
func (d *Desktop) renderHeader(w wm.Window, b lipgloss.Border, bs lipgloss.Style) string {
	width := w.Frame.Width
	first := wm.ControlRect(w.Frame, wm.ControlMinimize)
	ctrlStart := first.X - w.Frame.X
	if first.Width == 0 {
		return bs.Render(b.TopLeft + strings.Repeat(b.Top, width-2) + b.TopRight)
	}

	titleStyle := lipgloss.NewStyle().Foreground(theme.Dim()).Background(theme.WindowBg())
	if w.Active {
		titleStyle = lipgloss.NewStyle().Foreground(theme.HeaderFg()).Background(theme.HeaderBg()).Bold(true)
	}

	lead := bs.Render(b.TopLeft + b.Top)
	leadW := 2
	label := " " + w.Icon + " " + w.Title + " "
	// keep at least one border cell before the controls
	avail := ctrlStart - leadW - 1
	if avail < 3 {
		label = ""
	} else {
		label = ansi.Truncate(label, avail, "… ")
	}
	titled := lead + titleStyle.Render(label)
	fill := ctrlStart - leadW - ansi.StringWidth(label)

	var sb strings.Builder
	sb.WriteString(titled)
	sb.WriteString(bs.Render(strings.Repeat(b.Top, max(fill, 0))))

	maximized := w.State == wm.Maximized
	ctrl := bs.Bold(true)
	for _, c := range wm.Controls {
		if c == wm.ControlClose {
			sb.WriteString(ctrl.Foreground(theme.CloseControl()).Render(d.controlGlyph(c, maximized)))
			continue
		}
		sb.WriteString(ctrl.Render(d.controlGlyph(c, maximized)))
	}
	tail := width - ctrlStart - len(wm.Controls)*wm.ControlWidth
	sb.WriteString(bs.Render(strings.Repeat(b.Top, max(tail-1, 0)) + b.TopRight))
	return sb.String()
}

// renderBody returns the body rows with side borders. Tall content is
// windowed at the scroll offset and a thumb is drawn on the right border.
func (d *Desktop) renderBody(w wm.Window, b lipgloss.Border, bs lipgloss.Style) []string {
	body := Body(w.Frame)
	content := d.ContentLines(w)
	offset := d.ScrollOffset(w.Handle)

	fill := lipgloss.NewStyle().Background(theme.WindowBg()).Foreground(theme.WindowFg())
	thumb := -1
	if over := len(content) - body.Height; over > 0 && body.Height > 1 {
		thumb = offset * (body.Height - 1) / over
	}

	rows := make([]string, body.Height)
	for i := range rows {
		line := ""
		if idx := offset + i; idx < len(content) {
			line = content[idx]
		}
		right := b.Right
		if i == thumb {
			right = d.thumbGlyph()
		}
		rows[i] = bs.Render(b.Left) + fitLine(line, body.Width, fill) + bs.Render(right)
	}
	return rows
}

func (d *Desktop) thumbGlyph() string {
	if d.ascii() {
		return "#"
	}
	return "┃"
}

func (d *Desktop) renderStartMenu() *lipgloss.Layer {
	r := d.MenuRect()
	inner := max(r.Width-2, 1)
	bg := lipgloss.NewStyle().Background(theme.MenuBg()).Foreground(theme.WindowFg())
	dim := lipgloss.NewStyle().Background(theme.MenuBg()).Foreground(theme.Dim())
	sel := lipgloss.NewStyle().Background(theme.MenuSelected()).Foreground(theme.HeaderFg()).Bold(true)

	var lines []string
	if d.Menu.Query == "" {
		lines = append(lines, fitLine(dim.Render("› type to search"), inner, bg))
	} else {
		lines = append(lines, fitLine(bg.Render("› "+d.Menu.Query+"▏"), inner, bg))
	}
	lines = append(lines, dim.Render(strings.Repeat(d.border().Top, inner)))

	items := d.Menu.Items(d.Catalog.Visible())
	if len(items) == 0 {
		lines = append(lines, fitLine(dim.Render(" No matches"), inner, bg))
	}
	icons := iconsFor(d.Config)
	for i, e := range items {
		text := fmt.Sprintf(" %s %-10s %s", icons.Lookup(e.Title), e.Label, e.Title)
		style := bg
		if i == d.Menu.Selected {
			style = sel
		}
		lines = append(lines, fitLine(style.Render(ansi.Truncate(text, inner, "…")), inner, style))
	}

	box := lipgloss.NewStyle().
		Border(d.border()).
		BorderForeground(theme.Accent()).
		BorderBackground(theme.MenuBg()).
		Render(strings.Join(lines, "\n"))
	clipped, x, y := clipWindowContent(box, r.X, r.Y, d.Width, d.Height)
	return lipgloss.NewLayer(clipped).X(x).Y(y).Z(config.ZIndexMenu).ID("menu")
}

func (d *Desktop) renderNotifications() []*lipgloss.Layer {
	if len(d.Notifications) == 0 {
		return nil
	}
	var layers []*lipgloss.Layer
	notifY := d.WorkArea().Y + 1
	const notifSpacing = 4

	maxWidth := min(max(d.Width-8, 20), 48)
	for i, n := range d.Notifications {
		var border color.Color
		var icon string
		switch n.Type {
		case "error":
			border, icon = theme.NotificationError(), "✕"
		case "warning":
			border, icon = theme.NotificationWarning(), "⚠"
		case "success":
			border, icon = theme.NotificationSuccess(), "✓"
		default:
			border, icon = theme.NotificationInfo(), "ℹ"
		}
		if d.now().Sub(n.StartTime) < config.GetFastAnimationDuration() {
			border = theme.Dim()
		}
		if d.ascii() {
			icon = map[string]string{"error": "x", "warning": "!", "success": "+"}[n.Type]
			if icon == "" {
				icon = "i"
			}
		}

		message := ansi.Truncate(n.Message, maxWidth-8, "…")
		box := lipgloss.NewStyle().
			Border(d.border()).
			BorderForeground(border).
			Background(theme.NotificationBg()).
			Foreground(theme.NotificationFg()).
			Padding(0, 1).
			Render(fmt.Sprintf("%s  %s", lipgloss.NewStyle().Foreground(border).Render(icon), message))

		x := max(d.Width-lipgloss.Width(box)-2, 0)
		y := notifY + i*notifSpacing
		clipped, cx, cy := clipWindowContent(box, x, y, d.Width, d.Height)
		if clipped == "" {
			continue
		}
		layers = append(layers, lipgloss.NewLayer(clipped).X(cx).Y(cy).Z(config.ZIndexNotifications).ID("notif-"+n.ID))
	}
	return layers
}

func (d *Desktop) renderTaskbar() *lipgloss.Layer {
	l := d.TaskbarLayout()
	bar := lipgloss.NewStyle().Background(theme.TaskbarBg()).Foreground(theme.TaskbarFg())
	start := lipgloss.NewStyle().Background(theme.StartButtonBg()).Foreground(theme.HeaderFg()).Bold(true)
	if d.Menu.Open {
		start = start.Reverse(true)
	}
	chip := bar
	active := lipgloss.NewStyle().Background(theme.ChipActiveBg()).Foreground(theme.HeaderFg()).Bold(true)
	closer := bar.Foreground(theme.CloseControl())

	var sb strings.Builder
	cursor := 0
	pad := func(to int) {
		if to > cursor {
			sb.WriteString(bar.Render(strings.Repeat(" ", to-cursor)))
			cursor = to
		}
	}
	put := func(s string, style lipgloss.Style) {
		sb.WriteString(style.Render(s))
		cursor += ansi.StringWidth(s)
	}

	put(d.startLabel(), start)
	for _, c := range l.Chips {
		pad(c.Body.X)
		style := chip
		if c.Active {
			style = active
		}
		put(c.Text, style)
		put(d.closeGlyph()+" ", closer)
	}
	if l.Hidden > 0 {
		pad(cursor + 1)
		put(fmt.Sprintf("+%d", l.Hidden), bar)
	}
	if l.Tray != "" && l.TrayX >= cursor {
		pad(l.TrayX)
		put(l.Tray, bar)
	}
	pad(d.Width)

	line := ansi.Truncate(sb.String(), d.Width, "")
	return lipgloss.NewLayer(line).X(0).Y(l.Row).Z(config.ZIndexTaskbar).ID("taskbar")
}
