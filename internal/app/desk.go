// Package app provides the mapdesk application model: a floating
// panel desk composed over a map canvas.
package app

import (
	"github.com/Gaurav-Gosain/mapdesk/internal/config"
	"github.com/Gaurav-Gosain/mapdesk/internal/panel"
	"github.com/Gaurav-Gosain/mapdesk/internal/wm"
)

// Desk is the top-level bubbletea model. It owns the window manager,
// the panel registry, and the transient UI state around them.
type Desk struct {
	Manager  *wm.Manager
	Registry *wm.Registry

	Width  int
	Height int

	// Shared panel providers the desk pokes directly: the status panel
	// is refreshed on a timer and the coordinate readout follows the
	// mouse over the map canvas.
	Layers *panel.Layers
	Coords *panel.Coordinates
	Status *panel.Status

	Cursor *CursorLock

	ShowHelp bool

	LastMouseX int
	LastMouseY int

	// dockBarSpans is rebuilt every render and consumed by mouse hit
	// testing on the dock bar row.
	dockBarSpans []dockSpan
}

// NewDesk builds a desk with the built-in panel catalog registered.
func NewDesk() *Desk {
	registry := wm.NewRegistry()

	d := &Desk{
		Registry: registry,
		Cursor:   &CursorLock{},
	}

	for _, cfg := range panel.Catalog() {
		registry.Register(cfg)
		switch p := cfg.Provider.(type) {
		case *panel.Layers:
			d.Layers = p
		case *panel.Coordinates:
			d.Coords = p
		case *panel.Status:
			d.Status = p
		}
	}

	d.Manager = wm.NewManager(registry, 80, 24, wm.Limits{
		CascadeStep:    config.CascadeStep,
		DockZone:       config.DockZoneCells,
		DockWidth:      config.DockSlabWidthCells,
		MinWidth:       config.MinWindowWidth,
		MinHeight:      config.MinWindowHeight,
		DefaultOriginX: config.DefaultOriginX,
		DefaultOriginY: config.DefaultOriginY,
		DefaultWidth:   config.DefaultWindowWidth,
		DefaultHeight:  config.DefaultWindowHeight,
		ZBase:          config.ZIndexBase,
	})
	d.Manager.SetInteractionLock(d.Cursor)

	return d
}

// Autostart opens the named panels in order. Unknown ids are skipped
// by the manager.
func (d *Desk) Autostart(ids []string) {
	for _, id := range ids {
		d.Manager.Open(id)
	}
}

// TopMargin returns the rows reserved above the desk area.
func (d *Desk) TopMargin() int {
	if config.DockBarPosition == "top" {
		return config.DockBarHeight
	}
	return 0
}

// UsableHeight returns the desk height excluding the dock bar.
func (d *Desk) UsableHeight() int {
	if config.DockBarPosition == "hidden" {
		return d.Height
	}
	return d.Height - config.DockBarHeight
}

// DockBarY returns the screen row of the dock bar, or -1 when hidden.
func (d *Desk) DockBarY() int {
	switch config.DockBarPosition {
	case "top":
		return 0
	case "hidden":
		return -1
	default:
		return d.Height - 1
	}
}

// CycleFocus raises the next (or previous) visible window in stacking
// order. Minimized and docked-but-hidden windows are skipped.
func (d *Desk) CycleFocus(backwards bool) {
	visible := d.visibleByStack()
	if len(visible) < 2 {
		return
	}
	if backwards {
		// the window under the top of the stack
		d.Manager.Raise(visible[len(visible)-2])
		return
	}
	// bottom of the stack comes around to the top
	d.Manager.Raise(visible[0])
}

func (d *Desk) visibleByStack() []string {
	states := d.Manager.States()
	ordered := make([]string, 0, len(states))
	for _, s := range states {
		if !s.Minimized {
			ordered = append(ordered, s.ID)
		}
	}
	// selection sort by z; window counts are tiny
	for i := range ordered {
		for j := i + 1; j < len(ordered); j++ {
			si, _ := d.Manager.State(ordered[i])
			sj, _ := d.Manager.State(ordered[j])
			if sj.ZIndex < si.ZIndex {
				ordered[i], ordered[j] = ordered[j], ordered[i]
			}
		}
	}
	return ordered
}
