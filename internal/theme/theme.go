// Package theme provides color themes and styling for the mapdesk UI.
package theme

import (
	"image/color"
	"log"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming will be disabled and standard terminal colors will be used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	// Load custom themes from user's themes directory
	if themesDir, err := GetThemesDir(); err == nil {
		if _, err := LoadCustomThemes(themesDir); err != nil {
			log.Printf("Warning: error loading custom themes: %v", err)
		}
	}

	if ok := tint.SetTintID(themeName); !ok {
		// Theme not found, set to default
		tint.SetTintID("default")
	}

	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// GetANSIPalette returns the 16 ANSI colors of the active theme,
// falling back to default xterm colors when theming is disabled.
func GetANSIPalette() [16]color.Color {
	t := Current()
	if t == nil {
		return [16]color.Color{
			lipgloss.Color("#000000"), lipgloss.Color("#cd0000"), lipgloss.Color("#00cd00"), lipgloss.Color("#cdcd00"),
			lipgloss.Color("#0000ee"), lipgloss.Color("#cd00cd"), lipgloss.Color("#00cdcd"), lipgloss.Color("#e5e5e5"),
			lipgloss.Color("#7f7f7f"), lipgloss.Color("#ff0000"), lipgloss.Color("#00ff00"), lipgloss.Color("#ffff00"),
			lipgloss.Color("#5c5cff"), lipgloss.Color("#ff00ff"), lipgloss.Color("#00ffff"), lipgloss.Color("#ffffff"),
		}
	}
	return [16]color.Color{
		t.Black,        // 0
		t.Red,          // 1
		t.Green,        // 2
		t.Yellow,       // 3
		t.Blue,         // 4
		t.Purple,       // 5
		t.Cyan,         // 6
		t.White,        // 7
		t.BrightBlack,  // 8
		t.BrightRed,    // 9
		t.BrightGreen,  // 10
		t.BrightYellow, // 11
		t.BrightBlue,   // 12
		t.BrightPurple, // 13
		t.BrightCyan,   // 14
		t.BrightWhite,  // 15
	}
}

// BorderFocused returns the border color for the active panel.
func BorderFocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AFFFFF")
	}
	return t.BrightCyan
}

// BorderUnfocused returns the border color for inactive panels.
func BorderUnfocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#808090")
	}
	return t.BrightBlack
}

// BorderDocked returns the border color for docked panels.
func BorderDocked() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AAFFAA")
	}
	return t.BrightGreen
}

// TitleFg returns the foreground color for title bar badges.
func TitleFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Black
}

// PanelFg returns the panel body foreground color.
func PanelFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// MapBg returns the background color for the map canvas.
func MapBg() color.Color {
	return lipgloss.Color("#10141c")
}

// MapGrid returns the color for map graticule lines.
func MapGrid() color.Color {
	return lipgloss.Color("#2a3242")
}

// MapFeature returns the color for rendered map features.
func MapFeature() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#4ade80")
	}
	return t.Green
}

// DockZonePreview returns the fill color for the dock-zone preview slab.
func DockZonePreview() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#2d3a5e")
	}
	return t.BrightBlack
}

// DockBarBg returns the background color for the dock bar.
func DockBarBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

// DockBarFg returns the foreground color for the dock bar.
func DockBarFg() color.Color {
	return lipgloss.Color("#a0a0a8")
}

// DockBarHighlight returns the highlight color for open entries in the dock bar.
func DockBarHighlight() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ff00")
	}
	return t.BrightGreen
}

// DockBarDimmed returns the dimmed color for closed entries in the dock bar.
func DockBarDimmed() color.Color {
	return lipgloss.Color("#808090")
}

// HelpTitle returns the color for the help overlay title.
func HelpTitle() color.Color {
	return lipgloss.Color("14")
}

// HelpKeyBadge returns the color for key badges in the help overlay.
func HelpKeyBadge() color.Color {
	return lipgloss.Color("5")
}

// HelpText returns the color for help overlay text.
func HelpText() color.Color {
	return lipgloss.Color("7")
}

// HelpBg returns the background color for the help overlay.
func HelpBg() color.Color {
	return lipgloss.Color("#1a1a2e")
}

// StatusGood returns the color for healthy status readouts.
func StatusGood() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00cd00")
	}
	return t.Green
}

// StatusWarn returns the color for elevated status readouts.
func StatusWarn() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cdcd00")
	}
	return t.Yellow
}
