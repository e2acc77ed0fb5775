package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/folios/internal/app"
	"github.com/Gaurav-Gosain/folios/internal/content"
)

// ActionHandler is a function that handles a specific action
type ActionHandler func(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd)

// ActionDispatcher maps action names to handler functions
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher creates a new action dispatcher with all handlers registered
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[string]ActionHandler),
	}
	d.registerHandlers()
	return d
}

// registerHandlers registers all action handlers
func (d *ActionDispatcher) registerHandlers() {
	// Desktop actions
	d.Register("toggle_start_menu", handleToggleStartMenu)
	d.Register("toggle_help", makeOpenHandler(content.TitleHelp))
	d.Register("toggle_code_rain", handleToggleCodeRain)
	d.Register("quit", handleQuit)
	d.Register("open_projects", makeOpenHandler(content.TitleProjects))
	d.Register("open_skills", makeOpenHandler(content.TitleSkills))
	d.Register("open_resume", makeOpenHandler(content.TitleResume))
	d.Register("open_contact", makeOpenHandler(content.TitleContact))

	// Window actions
	d.Register("close_window", handleCloseWindow)
	d.Register("minimize_window", handleMinimizeWindow)
	d.Register("maximize_window", handleMaximizeWindow)
	d.Register("restore_all", handleRestoreAll)
	d.Register("next_window", handleNextWindow)
	d.Register("prev_window", handlePrevWindow)
	d.Register("scroll_up", makeScrollPageHandler(-1))
	d.Register("scroll_down", makeScrollPageHandler(1))
}

// Register adds an action handler
func (d *ActionDispatcher) Register(action string, handler ActionHandler) {
	d.handlers[action] = handler
}

// Dispatch executes the handler for a given action
func (d *ActionDispatcher) Dispatch(action string, msg tea.KeyPressMsg, desk *app.Desktop) (*app.Desktop, tea.Cmd) {
	if handler, ok := d.handlers[action]; ok {
		return handler(msg, desk)
	}
	return desk, nil
}

// HasAction checks if an action is registered
func (d *ActionDispatcher) HasAction(action string) bool {
	_, ok := d.handlers[action]
	return ok
}

// Global action dispatcher instance
var globalDispatcher = NewActionDispatcher()

// GetDispatcher returns the global action dispatcher
func GetDispatcher() *ActionDispatcher {
	return globalDispatcher
}

func handleToggleStartMenu(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.Menu.Toggle()
	return d, nil
}

func handleToggleCodeRain(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.ToggleRain()
	return d, nil
}

func handleQuit(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	return d, tea.Quit
}

func makeOpenHandler(title string) ActionHandler {
	return func(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
		d.Open(title)
		return d, nil
	}
}

func handleCloseWindow(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if h, ok := d.WM.Active(); ok {
		d.Close(h)
	}
	return d, nil
}

func handleMinimizeWindow(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if h, ok := d.WM.Active(); ok {
		d.WM.Minimize(h)
	}
	return d, nil
}

func handleMaximizeWindow(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if h, ok := d.WM.Active(); ok {
		d.WM.ToggleMaximize(h)
	}
	return d, nil
}

func handleRestoreAll(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.RestoreAll()
	return d, nil
}

func handleNextWindow(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.CycleFocus(1)
	return d, nil
}

func handlePrevWindow(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.CycleFocus(-1)
	return d, nil
}

// makeScrollPageHandler scrolls the active window by one body height.
func makeScrollPageHandler(dir int) ActionHandler {
	return func(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
		h, ok := d.WM.Active()
		if !ok {
			return d, nil
		}
		w, ok := d.WM.Window(h)
		if !ok || !w.Visible {
			return d, nil
		}
		page := max(app.Body(w.Frame).Height-1, 1)
		d.ScrollBy(h, dir*page)
		return d, nil
	}
}
