// Package server serves the folios desktop to remote visitors over SSH and
// the browser. Every connection gets its own desktop; the rendered document
// cache and the contact inbox are shared.
package server

import (
	"sync"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/folios/internal/app"
	"github.com/Gaurav-Gosain/folios/internal/config"
	"github.com/Gaurav-Gosain/folios/internal/contact"
	"github.com/Gaurav-Gosain/folios/internal/content"
	"github.com/Gaurav-Gosain/folios/internal/input"
	"github.com/charmbracelet/log"
)

// Desktops creates a desktop for each incoming session.
type Desktops struct {
	Config  *config.UserConfig
	Profile *content.Profile
	Cache   *content.Cache
	// Inbox may be nil, in which case the contact form reports that sending
	// is unavailable.
	Inbox  *contact.Inbox
	Logger *log.Logger
}

var registerInput sync.Once

// New builds a desktop of the given size labelled with source. The
// configuration is copied so one visitor's toggles stay private. Pointer
// motion is only delivered while a window is being dragged.
func (f *Desktops) New(source string, width, height int) (tea.Model, []tea.ProgramOption) {
	registerInput.Do(func() { app.SetInputHandler(input.HandleInput) })

	f.Logger.Info("session started", "source", source, "width", width, "height", height)

	d := app.New(app.Options{
		Config:  f.Config.Clone(),
		Profile: f.Profile,
		Cache:   f.Cache,
		Inbox:   f.Inbox,
		Logger:  f.Logger.With("source", source),
		Source:  source,
		Width:   width,
		Height:  height,
	})
	return d, []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(app.FilterMouseMotion),
	}
}
