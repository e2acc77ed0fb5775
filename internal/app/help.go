package app

import (
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/folios/internal/config"
	"github.com/Gaurav-Gosain/folios/internal/theme"
)

// helpContent is the Help.txt window. It reads the registry on every render
// so a reloaded config shows up without reopening the window.
type helpContent struct {
	registry func() *config.KeybindRegistry
}

func (h *helpContent) Render(width, height int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent())

	hm := help.New()
	hm.SetWidth(width)

	var parts []string
	for _, section := range config.GetKeybindings(h.registry()) {
		if len(section.Bindings) == 0 {
			continue
		}
		bindings := make([]key.Binding, 0, len(section.Bindings))
		for _, b := range section.Bindings {
			bindings = append(bindings, key.NewBinding(key.WithKeys(b.Key), key.WithHelp(b.Key, b.Description)))
		}
		parts = append(parts, title.Render(section.Title), hm.FullHelpView([][]key.Binding{bindings}), "")
	}
	return strings.TrimRight(strings.Join(parts, "\n"), "\n")
}
