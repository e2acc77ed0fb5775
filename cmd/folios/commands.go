package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/Gaurav-Gosain/folios/internal/config"
	"github.com/Gaurav-Gosain/folios/internal/contact"
	"github.com/Gaurav-Gosain/folios/internal/theme"
	"github.com/charmbracelet/x/ansi"
)

// printConfigPath prints the config file path
func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// editConfigFile opens the config file in $EDITOR
func editConfigFile() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	// Ensure config file exists (create default if needed)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Config file doesn't exist, creating default at: %s\n", configPath)
		if _, err := config.LoadFrom(configPath); err != nil {
			return fmt.Errorf("could not create config file: %w", err)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"vim", "vi", "nano", "emacs"} {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Please set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// confirm asks a yes/no question on stdin.
func confirm(question string) bool {
	fmt.Printf("%s (yes/no): ", question)
	var response string
	_, _ = fmt.Scanln(&response)
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "yes" || response == "y"
}

// resetConfigToDefaults resets the configuration file to default settings
func resetConfigToDefaults() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Warning: This will overwrite your existing configuration at:\n")
		fmt.Printf("  %s\n\n", configPath)
		if !confirm("Are you sure you want to reset to defaults?") {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := config.Save(config.DefaultConfig(), configPath); err != nil {
		return err
	}

	fmt.Printf("Configuration reset to defaults\n")
	fmt.Printf("  Location: %s\n", configPath)
	fmt.Println("\nYou can customize it with: folios config edit")
	return nil
}

func newTable(headers ...string) *table.Table {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.CLITableHeader()).
		Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.CLITableBorder())).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// listKeybindings prints all configured keybindings in a pretty table
func listKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintln(os.Stderr, "Using default keybindings...")
		userConfig = config.DefaultConfig()
	}
	if err := theme.Initialize(userConfig.Appearance.Theme); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	registry := config.NewKeybindRegistry(userConfig)

	title := lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableTitle())
	section := lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableSection())

	fmt.Println()
	fmt.Println(title.Render("folios Keybindings"))
	fmt.Println()

	for _, s := range config.GetKeybindings(registry) {
		if len(s.Bindings) == 0 {
			continue
		}
		t := newTable("Keys", "Action")
		for _, b := range s.Bindings {
			t.Row(b.Key, b.Description)
		}
		fmt.Println(section.Render(s.Title))
		fmt.Println(t.Render())
		fmt.Println()
	}
	return nil
}

func openInbox() (*contact.Inbox, error) {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		userConfig = config.DefaultConfig()
	}
	path, err := resolveInboxPath(userConfig)
	if err != nil {
		return nil, err
	}
	return contact.OpenInbox(path)
}

// listInbox prints stored contact messages, newest first.
func listInbox(ctx context.Context, limit int) error {
	inbox, err := openInbox()
	if err != nil {
		return err
	}
	defer inbox.Close()

	msgs, err := inbox.List(ctx, limit)
	if err != nil {
		return err
	}
	dim := lipgloss.NewStyle().Foreground(theme.CLITableDim())
	if len(msgs) == 0 {
		fmt.Println(dim.Render("No messages yet."))
		return nil
	}

	t := newTable("#", "Received", "From", "Source", "Message")
	for _, m := range msgs {
		body := strings.Join(strings.Fields(m.Body), " ")
		t.Row(
			fmt.Sprint(m.ID),
			m.CreatedAt.Local().Format(time.DateTime),
			fmt.Sprintf("%s <%s>", m.Name, m.Email),
			m.Source,
			ansi.Truncate(body, 48, "…"),
		)
	}
	fmt.Println(t.Render())

	total, err := inbox.Count(ctx)
	if err == nil && total > len(msgs) {
		fmt.Println(dim.Render(fmt.Sprintf("Showing %d of %d messages", len(msgs), total)))
	}
	return nil
}

// clearInbox deletes every stored message.
func clearInbox(ctx context.Context, yes bool) error {
	inbox, err := openInbox()
	if err != nil {
		return err
	}
	defer inbox.Close()

	if !yes && !confirm("Delete every stored message?") {
		fmt.Println("Clear cancelled.")
		return nil
	}
	n, err := inbox.Clear(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d message(s)\n", n)
	return nil
}
