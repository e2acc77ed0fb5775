package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/folios/internal/app"
	"github.com/Gaurav-Gosain/folios/internal/wm"
)

// wheelLines is how far one wheel notch scrolls a window.
const wheelLines = 3

// handleMouseClick handles mouse click events
func handleMouseClick(msg tea.MouseClickMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	X := mouse.X
	Y := mouse.Y

	if mouse.Button != tea.MouseLeft {
		return d, nil
	}

	// The taskbar and the start menu sit above every window.
	if Y == d.TaskbarRow() {
		return handleTaskbarClick(X, Y, d)
	}
	if d.Menu.Open {
		if idx, ok := d.MenuItemAt(X, Y); ok {
			items := d.Menu.Items(d.Catalog.Visible())
			d.Open(items[idx].Title)
			return d, nil
		}
		if d.MenuRect().Contains(X, Y) {
			return d, nil
		}
		// Clicking anywhere else dismisses the menu and still counts.
		d.Menu.Close()
	}

	hit, ok := d.WM.HitTest(X, Y)
	if !ok {
		if icon, ok := d.IconAt(X, Y); ok {
			d.Open(icon.Title)
		}
		return d, nil
	}

	switch hit.Region {
	case wm.RegionControl:
		if hit.Control == wm.ControlClose {
			d.Close(hit.Handle)
			return d, nil
		}
		d.WM.PressControl(hit.Handle, hit.Control)
		return d, nil

	case wm.RegionHeader:
		d.WM.Focus(hit.Handle)
		d.WM.BeginDrag(hit.Handle, X, Y)
		return d, nil

	case wm.RegionBody:
		d.WM.Focus(hit.Handle)
		body := app.Body(hit.Frame)
		if !body.Contains(X, Y) {
			return d, nil
		}
		if ic, ok := d.Interactive(hit.Handle); ok {
			// Focus first so the click lands on a focused form.
			cmd := d.SyncFocus()
			return d, tea.Batch(cmd, ic.Click(X-body.X, Y-body.Y+d.ScrollOffset(hit.Handle)))
		}
	}
	return d, nil
}

// handleTaskbarClick handles clicks on the start button and window chips.
func handleTaskbarClick(X, Y int, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	layout := d.TaskbarLayout()
	if layout.Start.Contains(X, Y) {
		d.Menu.Toggle()
		return d, nil
	}
	d.Menu.Close()
	chip, closeHit, ok := layout.ChipAt(X, Y)
	if !ok {
		return d, nil
	}
	if closeHit {
		d.Close(chip.Handle)
		return d, nil
	}
	d.WM.Activate(chip.Handle)
	return d, nil
}

// handleMouseMotion moves the window being dragged.
func handleMouseMotion(msg tea.MouseMotionMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	d.WM.DragTo(mouse.X, mouse.Y)
	return d, nil
}

// handleMouseRelease ends a drag.
func handleMouseRelease(msg tea.MouseReleaseMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	d.WM.DragTo(mouse.X, mouse.Y)
	d.WM.EndDrag()
	return d, nil
}

// handleMouseWheel scrolls the window under the pointer.
func handleMouseWheel(msg tea.MouseWheelMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	hit, ok := d.WM.HitTest(mouse.X, mouse.Y)
	if !ok {
		return d, nil
	}
	switch mouse.Button {
	case tea.MouseWheelUp:
		d.ScrollBy(hit.Handle, -wheelLines)
	case tea.MouseWheelDown:
		d.ScrollBy(hit.Handle, wheelLines)
	}
	return d, nil
}
