package config

// Keybinding is one row of the keybinding help.
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection groups related keybindings under a title.
type KeybindingSection struct {
	Title    string
	Actions  []string
	Bindings []Keybinding
}

// DesktopActions lists the desktop-wide actions in display order.
var DesktopActions = []string{
	"toggle_start_menu", "toggle_help", "toggle_code_rain",
	"open_projects", "open_skills", "open_resume", "open_contact",
	"quit",
}

// WindowActions lists the actions that operate on the focused window.
var WindowActions = []string{
	"close_window", "minimize_window", "maximize_window", "restore_all",
	"next_window", "prev_window", "scroll_up", "scroll_down",
}

// GetKeybindings returns the help sections. With a nil registry the defaults
// are used.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(DefaultConfig())
	}

	sections := []KeybindingSection{
		{Title: "DESKTOP", Actions: DesktopActions},
		{Title: "WINDOWS", Actions: WindowActions},
	}
	for i := range sections {
		for _, action := range sections[i].Actions {
			addBinding(&sections[i], registry, action)
		}
	}
	return append(sections, getStaticHelpSections()...)
}

// addBinding adds action to section if it has keys configured.
func addBinding(section *KeybindingSection, registry *KeybindRegistry, action string) {
	keys := registry.GetKeysForDisplay(action)
	if keys == "" {
		return
	}
	desc := ActionDescriptions[action]
	if desc == "" {
		desc = action
	}
	section.Bindings = append(section.Bindings, Keybinding{Key: keys, Description: desc})
}

// getStaticHelpSections returns help for mouse gestures and fixed keys.
func getStaticHelpSections() []KeybindingSection {
	return []KeybindingSection{
		{
			Title: "MOUSE",
			Bindings: []Keybinding{
				{"Click icon", "Open window"},
				{"Drag title", "Move window"},
				{"_ □ ×", "Minimize, maximize, close"},
				{"Click chip", "Minimize or restore"},
				{"Wheel", "Scroll window"},
			},
		},
		{
			Title: "START MENU",
			Bindings: []Keybinding{
				{"type", "Filter entries"},
				{"↑/↓", "Move selection"},
				{"enter", "Open selection"},
				{"esc", "Close menu"},
			},
		},
		{
			Title: "CONTACT FORM",
			Bindings: []Keybinding{
				{"tab/shift+tab", "Next/previous field"},
				{"space", "Toggle checkbox"},
				{"enter", "Send (on button)"},
			},
		},
	}
}
