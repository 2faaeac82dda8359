// Package main implements mapdesk, a terminal GIS workbench.
// mapdesk renders a map canvas with floating panels for layers, legends,
// feature inspection, and coordinate readouts, managed through a
// window-manager style keyboard/mouse interface.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	tint "github.com/lrstanley/bubbletint/v2"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/mapdesk/internal/theme"
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
	asciiOnly         bool
	themeName         string
	listThemes        bool
	previewTheme      string
	borderStyle       string
	dockPosition      string
	hideWindowButtons bool
	autostartPanels   []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mapdesk",
		Short: "Terminal GIS workbench",
		Long: `mapdesk - Terminal GIS Workbench

A terminal-based GIS workbench that renders a map canvas with floating
panels for layer management, legends, feature inspection, and live
coordinate readouts. Panels can be dragged, resized, docked to either
edge, maximized, and minimized to the dock bar.`,
		Example: `  # Run mapdesk
  mapdesk

  # Run with ASCII-only mode (no Unicode glyphs)
  mapdesk --ascii-only

  # Run with a specific theme
  mapdesk --theme dracula

  # List all available themes
  mapdesk --list-themes

  # Preview a theme's colors
  mapdesk --preview-theme dracula

  # Interactively select theme with fzf and preview
  mapdesk --theme $(mapdesk --list-themes | fzf --preview 'mapdesk --preview-theme {}')

  # Open specific panels at startup
  mapdesk --open layers --open legend

  # Serve mapdesk in the browser
  mapdesk serve

  # Edit configuration
  mapdesk config edit`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			if previewTheme != "" {
				return previewThemeColors(previewTheme)
			}

			if listThemes {
				if err := theme.Initialize("default"); err != nil {
					return fmt.Errorf("failed to initialize themes: %w", err)
				}
				for _, t := range tint.TintIDs() {
					fmt.Println(t)
				}
				return nil
			}
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters instead of Unicode glyphs")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight). Leave empty to use standard terminal colors without theming")
	rootCmd.PersistentFlags().BoolVar(&listThemes, "list-themes", false, "List all available themes and exit")
	rootCmd.PersistentFlags().StringVar(&previewTheme, "preview-theme", "", "Preview a theme's 16 ANSI colors")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Panel border style: rounded, normal, thick, double, hidden, block, ascii (default: from config or rounded)")
	rootCmd.PersistentFlags().StringVar(&dockPosition, "dock-position", "", "Dock bar position: bottom, top, hidden (default: from config or bottom)")
	rootCmd.PersistentFlags().BoolVar(&hideWindowButtons, "hide-window-buttons", false, "Hide panel control buttons (minimize, maximize, close)")
	rootCmd.PersistentFlags().StringSliceVar(&autostartPanels, "open", nil, "Panel ids to open at startup (overrides config autostart)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve mapdesk in the browser",
		Long: `Serve mapdesk as a web terminal.

Each browser session gets its own desk sized to the session's PTY.
Appearance flags apply to every session.`,
		Example: `  # Start the web terminal server
  mapdesk serve

  # Serve with a theme applied to all sessions
  mapdesk serve --theme nord`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage mapdesk configuration",
		Long:  `Manage mapdesk configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the mapdesk configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the mapdesk configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the mapdesk configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "Manage custom themes",
		Long:  `Manage custom mapdesk color themes`,
	}

	themesDirCmd := &cobra.Command{
		Use:   "dir",
		Short: "Print the custom themes directory path",
		Long:  `Print the directory where custom theme JSON files are loaded from`,
		RunE: func(_ *cobra.Command, _ []string) error {
			dir, err := theme.GetThemesDir()
			if err != nil {
				return fmt.Errorf("failed to resolve themes directory: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}

	themesCmd.AddCommand(themesDirCmd)

	rootCmd.AddCommand(serveCmd, configCmd, themesCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
