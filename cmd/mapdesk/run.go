package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"golang.org/x/term"

	"github.com/Gaurav-Gosain/mapdesk/internal/config"
	"github.com/Gaurav-Gosain/mapdesk/internal/theme"
	"github.com/Gaurav-Gosain/mapdesk/pkg/mapdesk"
)

func runLocal() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("mapdesk requires an interactive terminal")
	}

	// Degrade to ASCII glyphs when the terminal can't render color;
	// such terminals rarely handle the Unicode indicators either.
	profile := colorprofile.Detect(os.Stdout, os.Environ())
	if profile == colorprofile.Ascii || profile == colorprofile.NoTTY {
		asciiOnly = true
	}

	opts := []mapdesk.Option{
		mapdesk.WithTheme(themeName),
		mapdesk.WithASCIIOnly(asciiOnly),
		mapdesk.WithBorderStyle(borderStyle),
		mapdesk.WithDockPosition(dockPosition),
		mapdesk.WithHideWindowButtons(hideWindowButtons),
	}
	if len(autostartPanels) > 0 {
		opts = append(opts, mapdesk.WithAutostart(autostartPanels...))
	}

	model := mapdesk.New(opts...)

	programOpts := append(mapdesk.ProgramOptions(), tea.WithoutSignalHandler())
	p := tea.NewProgram(model, programOpts...)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	return nil
}

// previewThemeColors prints a theme's 16 ANSI colors as swatches so
// themes can be compared without launching the full UI.
func previewThemeColors(name string) error {
	if err := theme.Initialize(name); err != nil {
		return fmt.Errorf("failed to initialize themes: %w", err)
	}

	labels := [16]string{
		"black", "red", "green", "yellow",
		"blue", "purple", "cyan", "white",
		"bright black", "bright red", "bright green", "bright yellow",
		"bright blue", "bright purple", "bright cyan", "bright white",
	}

	fmt.Printf("Theme: %s\n\n", name)
	palette := theme.GetANSIPalette()
	for i, c := range palette {
		swatch := lipgloss.NewStyle().Foreground(c).Render("██████")
		fmt.Printf("%2d  %s  %s\n", i, swatch, labels[i])
	}
	return nil
}

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

func editConfigFile() error {
	// Loading creates the default config file if it doesn't exist yet.
	if _, err := config.LoadUserConfig(); err != nil {
		log.Printf("Warning: failed to load config: %v", err)
	}

	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	editor := findEditor()
	if editor == "" {
		return fmt.Errorf("no editor found: set $EDITOR or install vim, vi, nano, or emacs")
	}

	// #nosec G204 - editor comes from the user's own environment
	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}
	return nil
}

func findEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	for _, candidate := range []string{"vim", "vi", "nano", "emacs"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return path
		}
	}
	return ""
}

func resetConfigToDefaults() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	fmt.Printf("This will overwrite %s with defaults. Continue? [y/N] ", path)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if answer = strings.ToLower(strings.TrimSpace(answer)); answer != "y" && answer != "yes" {
		fmt.Println("Aborted.")
		return nil
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing config: %w", err)
	}

	// Loading with no file on disk recreates the default config.
	if _, err := config.LoadUserConfig(); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}

	fmt.Printf("Configuration reset: %s\n", path)
	return nil
}
