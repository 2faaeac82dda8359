package config

import (
	"log"

	"github.com/Gaurav-Gosain/mapdesk/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user
// config default.
type Overrides struct {
	// ASCIIOnly uses ASCII characters instead of Unicode glyphs
	ASCIIOnly bool

	// BorderStyle overrides the panel border style
	BorderStyle string

	// DockPosition overrides the dock bar position
	DockPosition string

	// HideWindowButtons overrides hiding panel control buttons
	HideWindowButtons bool

	// ThemeName is the theme to load
	ThemeName string
}

// ApplyOverrides applies CLI flag overrides to global config, falling
// back to user config defaults. If userConfig is nil, only CLI flag
// values (when set) are applied.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	if overrides.ASCIIOnly {
		UseASCIIOnly = true
	}

	// Border Style - CLI flag takes precedence, otherwise use user config
	if overrides.BorderStyle != "" {
		BorderStyle = overrides.BorderStyle
	} else if userConfig != nil && userConfig.Appearance.BorderStyle != "" {
		BorderStyle = userConfig.Appearance.BorderStyle
	}

	// Dock Position - CLI flag takes precedence, otherwise use user config
	if overrides.DockPosition != "" {
		DockBarPosition = overrides.DockPosition
	} else if userConfig != nil && userConfig.Appearance.DockPosition != "" {
		DockBarPosition = userConfig.Appearance.DockPosition
	}

	// Hide Window Buttons - OR of CLI flag and user config
	if userConfig != nil {
		HideWindowButtons = overrides.HideWindowButtons || userConfig.Appearance.HideWindowButtons
	} else {
		HideWindowButtons = overrides.HideWindowButtons
	}

	// Theme - CLI flag takes precedence, otherwise use user config
	themeName := overrides.ThemeName
	if themeName == "" && userConfig != nil && userConfig.Appearance.Theme != "" {
		themeName = userConfig.Appearance.Theme
	}
	if themeName != "" {
		if err := theme.Initialize(themeName); err != nil {
			log.Printf("Warning: Failed to load theme '%s': %v", themeName, err)
		}
	}
}
