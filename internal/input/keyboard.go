package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/folios/internal/app"
	"github.com/Gaurav-Gosain/folios/internal/content"
)

// HandleKeyPress routes a key to the start menu, the focused content or a
// bound action, in that order of preference.
func HandleKeyPress(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	keyStr := msg.String()

	if d.Konami.Feed(keyStr) {
		d.Open(content.TitleEasterEgg)
		return d, nil
	}

	action := d.KeybindRegistry.GetAction(keyStr)

	if d.Menu.Open {
		if handled, cmd := handleMenuKey(msg, d); handled {
			return d, cmd
		}
	} else if ic, ok := d.FocusedInteractive(); ok && !isCommandKey(msg) {
		return d, ic.Update(msg)
	}

	if action != "" && globalDispatcher.HasAction(action) {
		return globalDispatcher.Dispatch(action, msg, d)
	}
	return handleScrollKey(msg, d)
}

// isCommandKey reports whether a key should reach the action table even
// while a form field has focus: anything chorded with ctrl or alt, the
// function keys and paging keys.
func isCommandKey(msg tea.KeyPressMsg) bool {
	k := msg.Key()
	if k.Mod&(tea.ModCtrl|tea.ModAlt) != 0 {
		return true
	}
	switch {
	case k.Code >= tea.KeyF1 && k.Code <= tea.KeyF12:
		return true
	case k.Code == tea.KeyPgUp, k.Code == tea.KeyPgDown:
		return true
	}
	return false
}

// handleMenuKey drives the open start menu. Chorded keys fall through so the
// menu can be toggled or the app quit while searching.
func handleMenuKey(msg tea.KeyPressMsg, d *app.Desktop) (bool, tea.Cmd) {
	k := msg.Key()
	entries := d.Catalog.Visible()
	switch k.Code {
	case tea.KeyEscape:
		d.Menu.Close()
		return true, nil
	case tea.KeyUp:
		d.Menu.Move(-1, len(d.Menu.Items(entries)))
		return true, nil
	case tea.KeyDown, tea.KeyTab:
		d.Menu.Move(1, len(d.Menu.Items(entries)))
		return true, nil
	case tea.KeyEnter:
		if e, ok := d.Menu.Selection(entries); ok {
			d.Open(e.Title)
		}
		return true, nil
	case tea.KeyBackspace:
		d.Menu.Backspace()
		return true, nil
	}
	if k.Mod&(tea.ModCtrl|tea.ModAlt) == 0 && k.Text != "" {
		d.Menu.Type(k.Text)
		return true, nil
	}
	return false, nil
}

// handleScrollKey scrolls the active window line by line with the arrows.
func handleScrollKey(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	h, ok := d.WM.Active()
	if !ok {
		return d, nil
	}
	switch msg.Key().Code {
	case tea.KeyUp:
		d.ScrollBy(h, -1)
	case tea.KeyDown:
		d.ScrollBy(h, 1)
	case tea.KeyHome:
		d.ScrollBy(h, -d.ScrollOffset(h))
	case tea.KeyEnd:
		if w, ok := d.WM.Window(h); ok {
			d.ScrollBy(h, len(d.ContentLines(w)))
		}
	}
	return d, nil
}
