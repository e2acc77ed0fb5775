package app

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/folios/internal/config"
	"github.com/Gaurav-Gosain/folios/internal/contact"
	"github.com/Gaurav-Gosain/folios/internal/wm"
)

// TickerMsg drives the wallpaper and expires notifications.
type TickerMsg time.Time

// ConfigReloadedMsg carries a configuration re-read after the file changed.
type ConfigReloadedMsg struct {
	Config *config.UserConfig
	Err    error
}

// MessageSavedMsg reports the result of storing a contact submission.
type MessageSavedMsg struct {
	Form *contact.Form
	ID   int64
	Err  error
}

// InputHandler is a function type that handles input messages.
// This allows Update to delegate to the input package without an import
// cycle.
type InputHandler func(msg tea.Msg, d *Desktop) (tea.Model, tea.Cmd)

var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called before the program starts.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// FilterMouseMotion drops pointer motion unless a window is being dragged.
// Pass it to tea.WithFilter; the view asks for all motion so drags can be
// followed.
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	d, ok := model.(*Desktop)
	if !ok {
		return msg
	}
	if d.WM.Drag().State() == wm.Dragging {
		return msg
	}
	return nil
}

// Init starts the tick timer and the first system stats sample.
func (d *Desktop) Init() tea.Cmd {
	cmds := []tea.Cmd{TickCmd()}
	if d.Config.Desktop.ShowStats {
		cmds = append(cmds, SampleStatsCmd(0))
	}
	return tea.Batch(cmds...)
}

// TickCmd schedules the next animation tick.
func TickCmd() tea.Cmd {
	return tea.Tick(config.RainTick, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// saveMessageCmd stores a submission in the inbox off the update loop.
func (d *Desktop) saveMessageCmd(form *contact.Form, m contact.Message) tea.Cmd {
	inbox := d.inbox
	m.Source = d.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		id, err := inbox.Save(ctx, m)
		return MessageSavedMsg{Form: form, ID: id, Err: err}
	}
}

// Update handles all incoming messages.
func (d *Desktop) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickerMsg:
		d.CleanupNotifications()
		if d.RainEnabled() {
			d.Rain.Step()
		}
		return d, TickCmd()

	case StatsMsg:
		d.Stats.Record(msg)
		if !d.Config.Desktop.ShowStats {
			return d, nil
		}
		return d, SampleStatsCmd(config.StatsInterval)

	case ConfigReloadedMsg:
		if msg.Err != nil {
			d.ShowNotification(fmt.Sprintf("Config error: %v", msg.Err), "error", config.NotificationDuration)
			return d, nil
		}
		hadStats := d.Config.Desktop.ShowStats
		d.ApplyConfig(msg.Config)
		d.ShowNotification("Configuration reloaded", "info", config.NotificationDuration)
		if !hadStats && d.Config.Desktop.ShowStats {
			return d, SampleStatsCmd(0)
		}
		return d, nil

	case contact.InvalidMsg:
		d.ShowNotification(msg.Err.Error(), "warning", config.NotificationDuration)
		return d, nil

	case contact.SubmitMsg:
		if d.inbox == nil {
			d.ShowNotification("Inbox unavailable, message not sent", "error", config.NotificationDuration)
			return d, nil
		}
		return d, d.saveMessageCmd(msg.Form, msg.Message)

	case MessageSavedMsg:
		if msg.Err != nil {
			d.ShowNotification(fmt.Sprintf("Could not send message: %v", msg.Err), "error", config.NotificationDuration)
			return d, nil
		}
		d.logger.Info("contact message stored", "id", msg.ID, "source", d.source)
		msg.Form.Reset()
		d.ShowNotification("Message sent! Thanks for reaching out.", "success", config.NotificationDuration)
		if ic, ok := d.Interactive(d.focused); ok && ic == Interactive(msg.Form) {
			return d, msg.Form.Focus()
		}
		return d, nil

	case tea.WindowSizeMsg:
		d.Resize(msg.Width, msg.Height)
		return d, nil

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg,
		tea.MouseReleaseMsg, tea.MouseWheelMsg, tea.PasteMsg:
		if inputHandler != nil {
			return inputHandler(msg, d)
		}
		return d, nil

	case tea.MouseMsg:
		return d, nil
	}

	// Anything else (cursor blinks and the like) belongs to the focused
	// interactive content.
	if ic, ok := d.Interactive(d.focused); ok {
		return d, ic.Update(msg)
	}
	return d, nil
}
