package server

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/sip"
	"github.com/charmbracelet/colorprofile"
)

// WebServerConfig holds configuration for the browser server.
type WebServerConfig struct {
	Host           string
	Port           string
	ReadOnly       bool
	MaxConnections int // 0 means unlimited
	Debug          bool
}

// StartWebServer serves desktops to the browser until ctx is cancelled.
func StartWebServer(ctx context.Context, cfg WebServerConfig, desktops *Desktops) error {
	// The process has no TTY to detect a profile from; browsers render
	// truecolor.
	lipgloss.Writer.Profile = colorprofile.TrueColor

	sipConfig := sip.DefaultConfig()
	sipConfig.Host = cfg.Host
	sipConfig.Port = cfg.Port
	sipConfig.ReadOnly = cfg.ReadOnly
	sipConfig.MaxConnections = cfg.MaxConnections
	sipConfig.Debug = cfg.Debug

	desktops.Logger.Info("starting web server", "host", cfg.Host, "port", cfg.Port, "read_only", cfg.ReadOnly)
	server := sip.NewServer(sipConfig)
	return server.Serve(ctx, func(sess sip.Session) (tea.Model, []tea.ProgramOption) {
		pty := sess.Pty()
		return desktops.New("web", pty.Width, pty.Height)
	})
}
