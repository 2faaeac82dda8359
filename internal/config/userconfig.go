package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Panels     PanelsConfig     `toml:"panels"`
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	BorderStyle       string `toml:"border_style"`        // Border style: rounded, normal, thick, double, hidden, block, ascii
	DockPosition      string `toml:"dock_position"`       // Dock bar position: bottom, top, hidden
	HideWindowButtons bool   `toml:"hide_window_buttons"` // Hide panel control buttons (minimize, maximize, close)
	Theme             string `toml:"theme"`               // Color theme name (e.g., dracula, nord, my-custom-theme)
}

// PanelsConfig holds panel-related settings
type PanelsConfig struct {
	Autostart []string `toml:"autostart"` // Panel ids opened at startup (e.g., ["layers", "legend"])
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Appearance: AppearanceConfig{
			BorderStyle:       "rounded",
			DockPosition:      "bottom",
			HideWindowButtons: false,
		},
		Panels: PanelsConfig{
			Autostart: []string{"layers"},
		},
	}
}

// LoadUserConfig loads the user configuration from the XDG config directory
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile("mapdesk/config.toml")
	if err != nil {
		// Config doesn't exist, create default
		return createDefaultConfig()
	}

	// #nosec G304 - configPath is from XDG search, reading user config is intentional
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	fillMissing(&cfg, DefaultConfig())
	return &cfg, nil
}

// createDefaultConfig creates a default config file in the user's config directory
func createDefaultConfig() (*UserConfig, error) {
	cfg := DefaultConfig()

	configPath, err := xdg.ConfigFile("mapdesk/config.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# mapdesk Configuration File\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n")
	sb.WriteString("#\n")
	sb.WriteString("# border_style: Panel border style\n")
	sb.WriteString("#   Options: rounded, normal, thick, double, hidden, block, ascii\n")
	sb.WriteString("#   Default: rounded\n")
	sb.WriteString("#\n")
	sb.WriteString("# dock_position: Position of the dock bar\n")
	sb.WriteString("#   Options: bottom, top, hidden\n")
	sb.WriteString("#   Default: bottom\n")
	sb.WriteString("#\n")
	sb.WriteString("# theme: Color theme name (e.g., dracula, nord, my-custom-theme)\n")
	sb.WriteString("#   Leave empty to use standard terminal colors.\n")
	sb.WriteString("#   CLI flag --theme overrides this. Custom themes: ~/.config/mapdesk/themes/*.json\n")
	sb.WriteString("#\n")
	sb.WriteString("# [panels] autostart: Panel ids opened when mapdesk starts\n\n")

	if _, err := sb.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write config data: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(sb.String()), 0600); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfg, nil
}

// fillMissing fills in any missing settings with defaults
func fillMissing(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.BorderStyle == "" {
		cfg.Appearance.BorderStyle = defaultCfg.Appearance.BorderStyle
	}
	if cfg.Appearance.DockPosition == "" {
		cfg.Appearance.DockPosition = defaultCfg.Appearance.DockPosition
	}
	if cfg.Panels.Autostart == nil {
		cfg.Panels.Autostart = defaultCfg.Panels.Autostart
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile("mapdesk/config.toml")
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile("mapdesk/config.toml")
	}
	return path, nil
}
