// Package main implements folios, a portfolio presented as a small desktop
// operating system in the terminal. It runs locally, as an SSH server, or
// in the browser.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode       bool
	asciiOnly       bool
	themeName       string
	borderStyle     string
	taskbarPosition string
	noCodeRain      bool
	noAnimations    bool
	inboxPath       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "folios",
		Short: "A portfolio desktop in your terminal",
		Long: `folios - a portfolio desktop in your terminal

Browse projects, skills and a resume in draggable windows, then leave a
message through the contact form. Serve it to visitors over SSH or the
browser with the ssh and web commands.`,
		Example: `  # Open the desktop
  folios

  # Use a theme and keep the taskbar on top
  folios --theme dracula --taskbar top

  # Serve over SSH
  folios ssh --port 2222

  # Serve in the browser
  folios web --port 7681

  # Read the messages visitors left
  folios inbox list`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal()
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&debugMode, "debug", false, "Enable debug logging")
	flags.BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters instead of Unicode glyphs")
	flags.StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight)")
	flags.StringVar(&borderStyle, "border-style", "", "Window border style: rounded, normal, thick, double")
	flags.StringVar(&taskbarPosition, "taskbar", "", "Taskbar position: bottom, top")
	flags.BoolVar(&noCodeRain, "no-rain", false, "Show a plain wallpaper instead of the code rain")
	flags.BoolVar(&noAnimations, "no-animations", false, "Disable the window opening highlight")
	flags.StringVar(&inboxPath, "inbox", "", "Path to the contact inbox database")

	// SSH command variables
	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Serve the desktop over SSH",
		Long: `Serve the desktop over SSH

Every connection gets its own desktop. Messages sent through the contact
form are stored in the shared inbox. A host key is generated on first start
if none is specified.`,
		Example: `  # Start SSH server on default port
  folios ssh

  # Listen on all interfaces
  folios ssh --host 0.0.0.0 --port 22

  # Specify custom host key
  folios ssh --key-path /path/to/host_key`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSHServer(cmd.Context(), sshHost, sshPort, sshKeyPath)
		},
	}
	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	// Web command variables
	var webPort, webHost string
	var webReadOnly bool
	var webMaxConnections int

	webCmd := &cobra.Command{
		Use:   "web",
		Short: "Serve the desktop in the browser",
		Long: `Serve the desktop in the browser

Each browser tab gets its own desktop rendered by a terminal emulator in the
page. WebTransport is used when available with a WebSocket fallback.`,
		Example: `  # Start web server on default port
  folios web

  # Bind to all interfaces, view only
  folios web --host 0.0.0.0 --read-only`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWebServer(cmd.Context(), webHost, webPort, webReadOnly, webMaxConnections)
		},
	}
	webCmd.Flags().StringVar(&webPort, "port", "7681", "Web server port")
	webCmd.Flags().StringVar(&webHost, "host", "localhost", "Web server host")
	webCmd.Flags().BoolVar(&webReadOnly, "read-only", false, "Disable input from clients (view only)")
	webCmd.Flags().IntVar(&webMaxConnections, "max-connections", 0, "Maximum concurrent connections (0 = unlimited)")

	// Config command group
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage folios configuration",
		Long:  `Manage the folios configuration file and settings`,
	}
	configCmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print configuration file path",
			RunE: func(cmd *cobra.Command, args []string) error {
				return printConfigPath()
			},
		},
		&cobra.Command{
			Use:   "edit",
			Short: "Edit configuration in $EDITOR",
			Long: `Open the configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order. A running desktop picks up
the saved file without restarting.`,
			RunE: func(cmd *cobra.Command, args []string) error {
				return editConfigFile()
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Reset configuration to defaults",
			Long: `Reset the configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
			RunE: func(cmd *cobra.Command, args []string) error {
				return resetConfigToDefaults()
			},
		},
	)

	// Keybinds command group
	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
	}
	keybindsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display all configured keybindings in a formatted table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listKeybindings()
		},
	})

	// Inbox command group
	var inboxLimit int
	var inboxYes bool
	inboxCmd := &cobra.Command{
		Use:   "inbox",
		Short: "Read messages left through the contact form",
	}
	inboxListCmd := &cobra.Command{
		Use:   "list",
		Short: "List received messages, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listInbox(cmd.Context(), inboxLimit)
		},
	}
	inboxListCmd.Flags().IntVarP(&inboxLimit, "limit", "n", 20, "Number of messages to show (0 = all)")
	inboxClearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every stored message",
		RunE: func(cmd *cobra.Command, args []string) error {
			return clearInbox(cmd.Context(), inboxYes)
		},
	}
	inboxClearCmd.Flags().BoolVarP(&inboxYes, "yes", "y", false, "Do not ask for confirmation")
	inboxCmd.AddCommand(inboxListCmd, inboxClearCmd)

	rootCmd.AddCommand(sshCmd, webCmd, configCmd, keybindsCmd, inboxCmd)

	// Execute with fang
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
