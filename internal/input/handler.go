// Package input implements keyboard and mouse handling for the folios
// desktop.
package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/folios/internal/app"
)

// HandleInput is the main input coordinator. It is registered with
// app.SetInputHandler and receives every key, mouse and paste message.
func HandleInput(msg tea.Msg, d *app.Desktop) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		d, cmd = HandleKeyPress(msg, d)
	case tea.MouseClickMsg:
		d, cmd = handleMouseClick(msg, d)
	case tea.MouseMotionMsg:
		d, cmd = handleMouseMotion(msg, d)
	case tea.MouseReleaseMsg:
		d, cmd = handleMouseRelease(msg, d)
	case tea.MouseWheelMsg:
		d, cmd = handleMouseWheel(msg, d)
	case tea.PasteMsg:
		if d.Menu.Open {
			break
		}
		if ic, ok := d.FocusedInteractive(); ok {
			cmd = ic.Update(msg)
		}
	}
	return d, tea.Batch(cmd, d.SyncFocus())
}
