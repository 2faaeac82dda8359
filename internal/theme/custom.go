package theme

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	tint "github.com/lrstanley/bubbletint/v2"
)

// GetThemesDir returns the path to the custom themes directory
// (~/.config/mapdesk/themes/). Creates the directory if it doesn't exist.
func GetThemesDir() (string, error) {
	// xdg.ConfigFile ensures the parent directories exist
	keepFile, err := xdg.ConfigFile("mapdesk/themes/.keep")
	if err != nil {
		return "", fmt.Errorf("failed to get themes directory: %w", err)
	}
	return filepath.Dir(keepFile), nil
}

// LoadCustomThemes reads all *.json files from the themes directory,
// loads each as a custom theme, and registers them with bubbletint.
// Returns the list of successfully loaded theme IDs.
// Bad files are skipped with a warning so one broken theme can't block startup.
func LoadCustomThemes(themesDir string) ([]string, error) {
	entries, err := os.ReadDir(themesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}

	var loaded []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			continue
		}

		path := filepath.Join(themesDir, entry.Name())
		t, err := LoadCustomThemeFile(path)
		if err != nil {
			log.Printf("Warning: skipping custom theme %s: %v", entry.Name(), err)
			continue
		}

		tint.Register(t)
		loaded = append(loaded, t.ID)
	}

	return loaded, nil
}

// LoadCustomThemeFile reads a JSON file and returns a *tint.Tint.
// Derives ID from the filename when the id field is empty, sets
// DisplayName from ID if empty, and fills missing colors with defaults.
func LoadCustomThemeFile(path string) (*tint.Tint, error) {
	// #nosec G304 - path comes from the user's own config directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var t tint.Tint
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme JSON: %w", err)
	}

	if t.ID == "" {
		base := filepath.Base(path)
		t.ID = strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	if t.ID == "" {
		return nil, fmt.Errorf("theme has no ID")
	}
	if t.DisplayName == "" {
		t.DisplayName = t.ID
	}

	fillDefaults(&t)

	return &t, nil
}

// fillDefaults fills nil color pointers: fg/bg and the normal ANSI
// colors fall back to xterm defaults, bright variants fall back to
// their normal counterparts, and the cursor falls back to fg.
func fillDefaults(t *tint.Tint) {
	hex := func(c **tint.Color, v string) {
		if *c == nil {
			*c = tint.FromHex(v)
		}
	}
	from := func(c **tint.Color, src *tint.Color) {
		if *c == nil {
			*c = copyColor(src)
		}
	}

	hex(&t.Fg, "#e5e5e5")
	hex(&t.Bg, "#000000")
	from(&t.Cursor, t.Fg)

	hex(&t.Black, "#000000")
	hex(&t.Red, "#cd0000")
	hex(&t.Green, "#00cd00")
	hex(&t.Yellow, "#cdcd00")
	hex(&t.Blue, "#0000ee")
	hex(&t.Purple, "#cd00cd")
	hex(&t.Cyan, "#00cdcd")
	hex(&t.White, "#e5e5e5")

	from(&t.BrightBlack, t.Black)
	from(&t.BrightRed, t.Red)
	from(&t.BrightGreen, t.Green)
	from(&t.BrightYellow, t.Yellow)
	from(&t.BrightBlue, t.Blue)
	from(&t.BrightPurple, t.Purple)
	from(&t.BrightCyan, t.Cyan)
	from(&t.BrightWhite, t.White)
}

// copyColor duplicates a tint.Color so themes never alias color values.
func copyColor(c *tint.Color) *tint.Color {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}
