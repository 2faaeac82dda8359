// Package config provides configuration constants, runtime options, and
// user settings for mapdesk.
package config

import (
	"time"

	"charm.land/lipgloss/v2"
)

// =============================================================================
// Window Defaults
// =============================================================================

const (
	// DefaultWindowWidth is the default width for new panels in cells
	DefaultWindowWidth = 48

	// DefaultWindowHeight is the default height for new panels in cells
	DefaultWindowHeight = 14

	// MinWindowWidth is the minimum width a panel can be resized to
	MinWindowWidth = 20

	// MinWindowHeight is the minimum height a panel can be resized to
	MinWindowHeight = 6

	// DefaultOriginX is the fallback x position for panels registered
	// without a default geometry
	DefaultOriginX = 4

	// DefaultOriginY is the fallback y position for panels registered
	// without a default geometry
	DefaultOriginY = 2
)

// =============================================================================
// Window Management
// =============================================================================

const (
	// CascadeStep is the cell offset applied per already-open panel so
	// newly opened panels don't stack exactly on top of each other
	CascadeStep = 2

	// DockZoneCells is the pointer distance from a viewport edge that
	// arms edge docking during a drag
	DockZoneCells = 10

	// DockSlabWidthCells is the width of a docked panel slab
	DockSlabWidthCells = 34

	// ZIndexBase seeds the stacking counter; the first opened panel
	// lands at ZIndexBase+1
	ZIndexBase = 1000
)

// =============================================================================
// FPS and Refresh Rates
// =============================================================================

const (
	// NormalFPS is the refresh rate during regular operation
	NormalFPS = 60

	// StatusUpdateInterval is the interval between system status panel
	// refreshes
	StatusUpdateInterval = 2 * time.Second
)

// =============================================================================
// UI Layout Dimensions
// =============================================================================

const (
	// DockBarHeight is the height of the dock bar
	DockBarHeight = 1

	// MaxNameLengthDock is the maximum length of a panel name in the
	// dock bar before truncation
	MaxNameLengthDock = 14

	// HelpOverlayWidth is the width of the help overlay
	HelpOverlayWidth = 52
)

// =============================================================================
// Z-Index Layers
// =============================================================================

const (
	// ZIndexDockPreview is the z-index of the dock-zone preview slab
	// shown while a drag has a dock candidate armed
	ZIndexDockPreview = 9000

	// ZIndexDockBar is the z-index of the dock bar
	ZIndexDockBar = 9500

	// ZIndexHelp is the z-index of the help overlay
	ZIndexHelp = 9900
)

// =============================================================================
// Dock Bar Characters
// =============================================================================

const (
	// DockIndicatorOpen marks an open panel in the dock bar
	DockIndicatorOpen = "●"

	// DockIndicatorMinimized marks a minimized panel in the dock bar
	DockIndicatorMinimized = "◐"

	// DockIndicatorClosed marks a registered but closed panel
	DockIndicatorClosed = "○"

	// DockSeparator separates dock bar entries
	DockSeparator = "  "
)

const (
	// DockIndicatorOpenASCII is the ASCII fallback for an open panel
	DockIndicatorOpenASCII = "*"

	// DockIndicatorMinimizedASCII is the ASCII fallback for a minimized panel
	DockIndicatorMinimizedASCII = "-"

	// DockIndicatorClosedASCII is the ASCII fallback for a closed panel
	DockIndicatorClosedASCII = "."

	// DockSeparatorASCII is the ASCII fallback separator
	DockSeparatorASCII = " | "
)

// =============================================================================
// Window Decoration Characters
// =============================================================================

const (
	// WindowButtonClose is the close button glyph in the title bar
	WindowButtonClose = " ⤫ "

	// WindowButtonMinimize is the minimize button glyph in the title bar
	WindowButtonMinimize = " ‒ "

	// WindowButtonMaximize is the maximize/restore button glyph in the title bar
	WindowButtonMaximize = " ▢ "
)

const (
	// WindowButtonCloseASCII is the ASCII fallback close button
	WindowButtonCloseASCII = " X "

	// WindowButtonMinimizeASCII is the ASCII fallback minimize button
	WindowButtonMinimizeASCII = " _ "

	// WindowButtonMaximizeASCII is the ASCII fallback maximize button
	WindowButtonMaximizeASCII = " O "
)

// =============================================================================
// Button Positions (offsets from the right edge of the title bar)
// =============================================================================

const (
	// MinimizeButtonLeft is the left position offset for the minimize button.
	MinimizeButtonLeft = -11
	// MinimizeButtonRight is the right position offset for the minimize button.
	MinimizeButtonRight = -9
	// MaximizeButtonLeft is the left position offset for the maximize button.
	MaximizeButtonLeft = -8
	// MaximizeButtonRight is the right position offset for the maximize button.
	MaximizeButtonRight = -6
	// CloseButtonLeft is the left position offset for the close button.
	CloseButtonLeft = -5
	// CloseButtonRight is the right position offset for the close button.
	CloseButtonRight = -3
)

// =============================================================================
// Runtime Configuration
// =============================================================================

// UseASCIIOnly controls whether to use ASCII fallback characters.
// Set via --ascii-only flag or forced when the terminal reports no
// color support.
var UseASCIIOnly = false

// BorderStyle controls which border style to use for panels.
// Set via --border-style flag or appearance.border_style config
var BorderStyle = "rounded"

// DockBarPosition controls where the dock bar appears.
// Options: bottom, top, hidden
// Set via --dock-position flag or appearance.dock_position config
var DockBarPosition = "bottom"

// HideWindowButtons controls whether panel control buttons are hidden.
// Set via --hide-window-buttons flag or appearance.hide_window_buttons config
var HideWindowButtons = false

// GetBorderForStyle returns the lipgloss Border for the current style
func GetBorderForStyle() lipgloss.Border {
	if UseASCIIOnly || BorderStyle == "ascii" {
		return lipgloss.ASCIIBorder()
	}
	switch BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	case "block":
		return lipgloss.BlockBorder()
	case "rounded":
		fallthrough
	default:
		return lipgloss.RoundedBorder()
	}
}

// GetDockIndicatorOpen returns the open-panel indicator for the dock bar
func GetDockIndicatorOpen() string {
	if UseASCIIOnly {
		return DockIndicatorOpenASCII
	}
	return DockIndicatorOpen
}

// GetDockIndicatorMinimized returns the minimized-panel indicator
func GetDockIndicatorMinimized() string {
	if UseASCIIOnly {
		return DockIndicatorMinimizedASCII
	}
	return DockIndicatorMinimized
}

// GetDockIndicatorClosed returns the closed-panel indicator
func GetDockIndicatorClosed() string {
	if UseASCIIOnly {
		return DockIndicatorClosedASCII
	}
	return DockIndicatorClosed
}

// GetDockSeparator returns the dock bar entry separator
func GetDockSeparator() string {
	if UseASCIIOnly {
		return DockSeparatorASCII
	}
	return DockSeparator
}

// GetWindowButtonClose returns the close button glyph
func GetWindowButtonClose() string {
	if UseASCIIOnly {
		return WindowButtonCloseASCII
	}
	return WindowButtonClose
}

// GetWindowButtonMinimize returns the minimize button glyph
func GetWindowButtonMinimize() string {
	if UseASCIIOnly {
		return WindowButtonMinimizeASCII
	}
	return WindowButtonMinimize
}

// GetWindowButtonMaximize returns the maximize button glyph
func GetWindowButtonMaximize() string {
	if UseASCIIOnly {
		return WindowButtonMaximizeASCII
	}
	return WindowButtonMaximize
}
