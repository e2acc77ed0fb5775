// Package config loads and saves the folios configuration file and exposes
// the keybinding registry built from it.
package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Timing and layout constants shared by the desktop.
const (
	// NormalFPS is the renderer frame cap.
	NormalFPS = 30
	// TaskbarHeight is the number of rows reserved for the taskbar.
	TaskbarHeight = 1
	// NotificationDuration is how long a notification stays on screen.
	NotificationDuration = 3 * time.Second
	// StatsInterval is how often the tray samples CPU and memory.
	StatsInterval = 2 * time.Second
	// RainTick is the base interval of the wallpaper animation.
	RainTick = 50 * time.Millisecond
	// MaxNotifications caps the notification stack.
	MaxNotifications = 4
)

// Stacking for layers drawn above every window. Window z values start at
// desktop.z_base and grow by one per focus, so these sit far above them.
const (
	ZIndexWallpaper     = 0
	ZIndexIcons         = 1
	ZIndexTaskbar       = 1 << 30
	ZIndexMenu          = ZIndexTaskbar + 1
	ZIndexNotifications = ZIndexTaskbar + 2
)

// AnimationsEnabled turns window and notification animations on or off.
var AnimationsEnabled = true

// GetAnimationDuration returns the duration of the window opening animation,
// or zero when animations are disabled.
func GetAnimationDuration() time.Duration {
	if !AnimationsEnabled {
		return 0
	}
	return 400 * time.Millisecond
}

// GetFastAnimationDuration returns how long a new notification is drawn dimmed.
func GetFastAnimationDuration() time.Duration {
	if !AnimationsEnabled {
		return 0
	}
	return 150 * time.Millisecond
}

// UserConfig is the on-disk configuration.
type UserConfig struct {
	Desktop     DesktopConfig     `toml:"desktop"`
	Appearance  AppearanceConfig  `toml:"appearance"`
	Contact     ContactConfig     `toml:"contact"`
	Icons       map[string]string `toml:"icons"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

// DesktopConfig controls window placement and the desktop background.
type DesktopConfig struct {
	ZBase           int    `toml:"z_base"`
	OriginX         int    `toml:"origin_x"`
	OriginY         int    `toml:"origin_y"`
	CascadeX        int    `toml:"cascade_x"`
	CascadeY        int    `toml:"cascade_y"`
	DefaultWidth    int    `toml:"default_width"`
	DefaultHeight   int    `toml:"default_height"`
	CodeRain        bool   `toml:"code_rain"`
	Animations      bool   `toml:"animations"`
	TaskbarPosition string `toml:"taskbar_position"`
	ShowClock       bool   `toml:"show_clock"`
	ShowStats       bool   `toml:"show_stats"`
}

// AppearanceConfig controls colors and glyphs.
type AppearanceConfig struct {
	Theme       string `toml:"theme"`
	BorderStyle string `toml:"border_style"`
	ASCIIOnly   bool   `toml:"ascii_only"`
}

// ContactConfig controls the contact form and where submissions are stored.
type ContactConfig struct {
	MessageLimit int    `toml:"message_limit"`
	WarnBelow    int    `toml:"warn_below"`
	InboxPath    string `toml:"inbox_path"`
	ProfilePath  string `toml:"profile_path"`
}

// KeybindingsConfig maps action names to key lists.
type KeybindingsConfig struct {
	Desktop map[string][]string `toml:"desktop"`
	Windows map[string][]string `toml:"windows"`
}

// Clone returns a deep copy of c. Remote sessions each get their own copy
// so toggles in one do not leak into another.
func (c *UserConfig) Clone() *UserConfig {
	out := *c
	out.Icons = maps.Clone(c.Icons)
	out.Keybindings.Desktop = cloneBindings(c.Keybindings.Desktop)
	out.Keybindings.Windows = cloneBindings(c.Keybindings.Windows)
	return &out
}

func cloneBindings(in map[string][]string) map[string][]string {
	if in == nil {
		return nil
	}
	out := make(map[string][]string, len(in))
	for action, keys := range in {
		out[action] = slices.Clone(keys)
	}
	return out
}

// DefaultIconKey is the icon table entry used for unmapped titles.
const DefaultIconKey = "default"

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Desktop: DesktopConfig{
			ZBase:           10,
			OriginX:         8,
			OriginY:         2,
			CascadeX:        6,
			CascadeY:        2,
			DefaultWidth:    60,
			DefaultHeight:   16,
			CodeRain:        true,
			Animations:      true,
			TaskbarPosition: "bottom",
			ShowClock:       true,
			ShowStats:       true,
		},
		Appearance: AppearanceConfig{
			BorderStyle: "rounded",
		},
		Contact: ContactConfig{
			MessageLimit: 140,
			WarnBelow:    20,
		},
		Icons: DefaultIcons(),
		Keybindings: KeybindingsConfig{
			Desktop: map[string][]string{
				"toggle_start_menu": {"ctrl+s", "f2"},
				"toggle_help":       {"f1", "?"},
				"toggle_code_rain":  {"alt+c"},
				"quit":              {"ctrl+c", "ctrl+q"},
				"open_projects":     {"alt+1"},
				"open_skills":       {"alt+2"},
				"open_resume":       {"alt+3"},
				"open_contact":      {"alt+4"},
			},
			Windows: map[string][]string{
				"close_window":    {"ctrl+w"},
				"minimize_window": {"alt+m"},
				"maximize_window": {"alt+f"},
				"restore_all":     {"alt+r"},
				"next_window":     {"ctrl+n"},
				"prev_window":     {"ctrl+p"},
				"scroll_up":       {"pgup"},
				"scroll_down":     {"pgdown"},
			},
		},
	}
}

// DefaultIcons returns the taskbar icon table.
func DefaultIcons() map[string]string {
	return map[string]string{
		"Projects.exe": "▣",
		"Skills.dll":   "◆",
		"Resume.pdf":   "≡",
		"Contact.bat":  "✉",
		"Easter Egg":   "✦",
		"Help.txt":     "?",
		DefaultIconKey: "□",
	}
}

// ASCIIIcons returns an icon table for terminals without Unicode support.
func ASCIIIcons() map[string]string {
	return map[string]string{
		"Projects.exe": "P",
		"Skills.dll":   "S",
		"Resume.pdf":   "R",
		"Contact.bat":  "@",
		"Easter Egg":   "*",
		"Help.txt":     "?",
		DefaultIconKey: "#",
	}
}

// GetConfigPath returns the configuration file location.
func GetConfigPath() (string, error) {
	return xdg.ConfigFile(filepath.Join("folios", "config.toml"))
}

// GetInboxPath returns the default contact inbox location.
func GetInboxPath() (string, error) {
	return xdg.DataFile(filepath.Join("folios", "inbox.db"))
}

// GetLogPath returns the log file used while the desktop owns the terminal.
func GetLogPath() (string, error) {
	return xdg.StateFile(filepath.Join("folios", "folios.log"))
}

// GetHostKeyPath returns the SSH host key used by the ssh server.
func GetHostKeyPath() (string, error) {
	return xdg.DataFile(filepath.Join("folios", "ssh_host_ed25519"))
}

// GetProfilePath returns the optional profile override location.
func GetProfilePath() (string, error) {
	return xdg.ConfigFile(filepath.Join("folios", "profile.toml"))
}

// LoadUserConfig loads the configuration file, creating it with defaults on
// first run.
func LoadUserConfig() (*UserConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("could not determine config path: %w", err)
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration at path. A missing file is created with
// defaults. Fields absent from the file keep their default values.
func LoadFrom(path string) (*UserConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if err := Save(cfg, path); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a configuration document over the defaults.
func Parse(data []byte) (*UserConfig, error) {
	cfg := DefaultConfig()
	// Decode into fresh maps so user tables replace, not merge with, the
	// defaults; missing actions are filled back in below.
	cfg.Keybindings = KeybindingsConfig{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	fillDefaults(cfg)
	return cfg, nil
}

func fillDefaults(cfg *UserConfig) {
	def := DefaultConfig()
	if cfg.Keybindings.Desktop == nil {
		cfg.Keybindings.Desktop = map[string][]string{}
	}
	if cfg.Keybindings.Windows == nil {
		cfg.Keybindings.Windows = map[string][]string{}
	}
	for action, keys := range def.Keybindings.Desktop {
		if _, ok := cfg.Keybindings.Desktop[action]; !ok {
			cfg.Keybindings.Desktop[action] = keys
		}
	}
	for action, keys := range def.Keybindings.Windows {
		if _, ok := cfg.Keybindings.Windows[action]; !ok {
			cfg.Keybindings.Windows[action] = keys
		}
	}
	if len(cfg.Icons) == 0 {
		cfg.Icons = DefaultIcons()
	}
	if _, ok := cfg.Icons[DefaultIconKey]; !ok {
		cfg.Icons[DefaultIconKey] = def.Icons[DefaultIconKey]
	}

	d := &cfg.Desktop
	if d.ZBase <= 0 {
		d.ZBase = def.Desktop.ZBase
	}
	if d.DefaultWidth < 20 {
		d.DefaultWidth = def.Desktop.DefaultWidth
	}
	if d.DefaultHeight < 6 {
		d.DefaultHeight = def.Desktop.DefaultHeight
	}
	switch d.TaskbarPosition {
	case "top", "bottom":
	default:
		d.TaskbarPosition = def.Desktop.TaskbarPosition
	}
	if cfg.Contact.MessageLimit <= 0 {
		cfg.Contact.MessageLimit = def.Contact.MessageLimit
	}
	if cfg.Contact.WarnBelow < 0 || cfg.Contact.WarnBelow > cfg.Contact.MessageLimit {
		cfg.Contact.WarnBelow = def.Contact.WarnBelow
	}
	if cfg.Appearance.BorderStyle == "" {
		cfg.Appearance.BorderStyle = def.Appearance.BorderStyle
	}
}

// Save writes cfg to path with a descriptive header.
func Save(cfg *UserConfig, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# folios configuration\n")
	sb.WriteString("# Keybindings map an action to a list of keys; any of them triggers it.\n")
	sb.WriteString("# Icons map a window title to the glyph shown on the taskbar.\n")
	sb.WriteString("#\n")
	sb.WriteString("# Location: " + path + "\n\n")
	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Overrides are command-line settings applied on top of the file.
type Overrides struct {
	Theme           string
	BorderStyle     string
	TaskbarPosition string
	ASCIIOnly       bool
	NoCodeRain      bool
	NoAnimations    bool
}

// ApplyOverrides copies the non-zero overrides into cfg and updates the
// package-level animation switch.
func ApplyOverrides(cfg *UserConfig, o Overrides) {
	if o.Theme != "" {
		cfg.Appearance.Theme = o.Theme
	}
	if o.BorderStyle != "" {
		cfg.Appearance.BorderStyle = o.BorderStyle
	}
	if o.TaskbarPosition != "" {
		cfg.Desktop.TaskbarPosition = o.TaskbarPosition
	}
	if o.ASCIIOnly {
		cfg.Appearance.ASCIIOnly = true
		cfg.Icons = ASCIIIcons()
	}
	if o.NoCodeRain {
		cfg.Desktop.CodeRain = false
	}
	if o.NoAnimations {
		cfg.Desktop.Animations = false
	}
	AnimationsEnabled = cfg.Desktop.Animations
}
