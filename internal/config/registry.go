package config

import (
	"slices"
	"strings"

	"charm.land/bubbles/v2/key"
)

// ActionDescriptions gives a human-readable label for every action.
var ActionDescriptions = map[string]string{
	"toggle_start_menu": "Toggle start menu",
	"toggle_help":       "Open help",
	"toggle_code_rain":  "Toggle code rain",
	"quit":              "Quit",
	"open_projects":     "Open Projects.exe",
	"open_skills":       "Open Skills.dll",
	"open_resume":       "Open Resume.pdf",
	"open_contact":      "Open Contact.bat",
	"close_window":      "Close window",
	"minimize_window":   "Minimize window",
	"maximize_window":   "Maximize or restore window",
	"restore_all":       "Restore all windows",
	"next_window":       "Focus next window",
	"prev_window":       "Focus previous window",
	"scroll_up":         "Scroll window up",
	"scroll_down":       "Scroll window down",
}

// KeybindRegistry resolves keys to actions and back.
type KeybindRegistry struct {
	actions map[string][]string
	keys    map[string]string
}

// NewKeybindRegistry builds a registry from cfg. When two actions claim the
// same key the one declared in the windows table wins.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	r := &KeybindRegistry{
		actions: make(map[string][]string),
		keys:    make(map[string]string),
	}
	for _, table := range []map[string][]string{cfg.Keybindings.Desktop, cfg.Keybindings.Windows} {
		for action, keys := range table {
			for _, k := range keys {
				k = NormalizeKey(k)
				if k == "" {
					continue
				}
				r.actions[action] = append(r.actions[action], k)
				r.keys[k] = action
			}
		}
	}
	return r
}

// GetKeys returns the keys bound to action.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return slices.Clone(r.actions[action])
}

// GetAction returns the action bound to key, or "".
func (r *KeybindRegistry) GetAction(k string) string {
	return r.keys[NormalizeKey(k)]
}

// GetKeysForDisplay formats the keys of action for help text.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	return strings.Join(r.actions[action], "/")
}

// Binding returns action as a help-ready key binding.
func (r *KeybindRegistry) Binding(action string) key.Binding {
	keys := r.GetKeys(action)
	desc := ActionDescriptions[action]
	if desc == "" {
		desc = action
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(r.GetKeysForDisplay(action), desc),
	)
}

// Bindings returns key bindings for actions, skipping unbound ones.
func (r *KeybindRegistry) Bindings(actions ...string) []key.Binding {
	var out []key.Binding
	for _, a := range actions {
		if len(r.actions[a]) == 0 {
			continue
		}
		out = append(out, r.Binding(a))
	}
	return out
}

var keyAliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"pageup":   "pgup",
	"pagedown": "pgdown",
	"control":  "ctrl",
	"option":   "alt",
}

// NormalizeKey lowercases a key description and rewrites common aliases so
// that "Ctrl+Escape" and "ctrl+esc" compare equal. A bare single character
// keeps its case.
func NormalizeKey(k string) string {
	k = strings.TrimSpace(k)
	if k == "" {
		return ""
	}
	if len([]rune(k)) == 1 {
		return k
	}
	parts := strings.Split(k, "+")
	for i, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if alias, ok := keyAliases[p]; ok {
			p = alias
		}
		parts[i] = p
	}
	return strings.Join(parts, "+")
}
