// Package theme provides the desktop color palette. Without a theme the
// portfolio's own purple-on-navy palette is used; with one, colors come from
// the selected bubbletint theme.
package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// If themeName is empty, theming is disabled and the built-in palette is used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	if ok := tint.SetTintID(themeName); !ok {
		tint.SetTintID("default")
		return fmt.Errorf("unknown theme %q, using default", themeName)
	}
	return nil
}

// IsEnabled returns true if a bubbletint theme is active.
func IsEnabled() bool {
	return enabled
}

// Current returns the active theme, or nil when theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Built-in palette.
var (
	purple   = lipgloss.Color("#532bdc")
	mint     = lipgloss.Color("#dfffc7")
	navy     = lipgloss.Color("#17152d")
	midnight = lipgloss.Color("#0d0b1e")
	lavender = lipgloss.Color("#b3a4f5")
	slate    = lipgloss.Color("#6c6a8a")
)

// Desktop background
func DesktopBg() color.Color {
	t := Current()
	if t == nil {
		return midnight
	}
	return t.Bg
}

func DesktopFg() color.Color {
	t := Current()
	if t == nil {
		return mint
	}
	return t.Fg
}

// Code rain
func RainFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#2f6b3a")
	}
	return t.Green
}

func RainHead() color.Color {
	t := Current()
	if t == nil {
		return mint
	}
	return t.BrightGreen
}

// Window chrome
func BorderActive() color.Color {
	t := Current()
	if t == nil {
		return lavender
	}
	return t.BrightPurple
}

func BorderInactive() color.Color {
	t := Current()
	if t == nil {
		return slate
	}
	return t.BrightBlack
}

func BorderOpening() color.Color {
	return slate
}

func HeaderBg() color.Color {
	t := Current()
	if t == nil {
		return purple
	}
	return t.Purple
}

func HeaderFg() color.Color {
	t := Current()
	if t == nil {
		return mint
	}
	return t.BrightWhite
}

func CloseControl() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ff5f87")
	}
	return t.BrightRed
}

func WindowBg() color.Color {
	t := Current()
	if t == nil {
		return navy
	}
	return t.Bg
}

func WindowFg() color.Color {
	t := Current()
	if t == nil {
		return mint
	}
	return t.Fg
}

// Accent is used for headings, links and selected items.
func Accent() color.Color {
	t := Current()
	if t == nil {
		return lavender
	}
	return t.BrightCyan
}

func Dim() color.Color {
	t := Current()
	if t == nil {
		return slate
	}
	return t.BrightBlack
}

// Warn colors the contact form's character counter when few remain.
func Warn() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ff4d4d")
	}
	return t.Red
}

// Taskbar and start menu
func TaskbarBg() color.Color {
	t := Current()
	if t == nil {
		return navy
	}
	return t.Black
}

func TaskbarFg() color.Color {
	t := Current()
	if t == nil {
		return mint
	}
	return t.White
}

func ChipActiveBg() color.Color {
	t := Current()
	if t == nil {
		return purple
	}
	return t.Blue
}

func StartButtonBg() color.Color {
	t := Current()
	if t == nil {
		return purple
	}
	return t.Purple
}

func MenuBg() color.Color {
	return WindowBg()
}

func MenuSelected() color.Color {
	return ChipActiveBg()
}

// Notification colors
func NotificationError() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cd0000")
	}
	return t.Red
}

func NotificationWarning() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cdcd00")
	}
	return t.Yellow
}

func NotificationSuccess() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00cd00")
	}
	return t.Green
}

func NotificationInfo() color.Color {
	t := Current()
	if t == nil {
		return lavender
	}
	return t.Blue
}

func NotificationBg() color.Color {
	return WindowBg()
}

func NotificationFg() color.Color {
	return WindowFg()
}

// CLI table colors
func CLITableHeader() color.Color {
	return lipgloss.Color("12")
}

func CLITableBorder() color.Color {
	return lipgloss.Color("8")
}

func CLITableTitle() color.Color {
	return lipgloss.Color("14")
}

func CLITableSection() color.Color {
	return lipgloss.Color("11")
}

func CLITableDim() color.Color {
	return lipgloss.Color("8")
}

// ColorToString converts a color.Color to a hex string.
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
