package app

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/mapdesk/internal/config"
	"github.com/Gaurav-Gosain/mapdesk/internal/theme"
	"github.com/Gaurav-Gosain/mapdesk/internal/wm"
)

// dockSpan records the column range one dock bar entry occupies so
// mouse clicks on the bar can be resolved back to a panel kind.
type dockSpan struct {
	start int
	end   int // exclusive
	kind  string
}

// renderDockBar draws the panel launcher bar and rebuilds the click
// spans as a side effect.
func (d *Desk) renderDockBar() *lipgloss.Layer {
	bar := lipgloss.NewStyle().Background(theme.DockBarBg())
	open := bar.Foreground(theme.DockBarHighlight())
	closed := bar.Foreground(theme.DockBarDimmed())
	plain := bar.Foreground(theme.DockBarFg())

	d.dockBarSpans = d.dockBarSpans[:0]

	var sb strings.Builder
	col := 1
	sb.WriteString(plain.Render(" "))

	sep := config.GetDockSeparator()
	for i, cfg := range d.Registry.Registered() {
		if i > 0 {
			sb.WriteString(plain.Render(sep))
			col += lipgloss.Width(sep)
		}

		kind := cfg.ID
		name := ansi.Truncate(cfg.Title, config.MaxNameLengthDock, "…")

		style := closed
		indicator := config.GetDockIndicatorClosed()
		switch {
		case d.minimizedInstance(kind) != "":
			style = plain
			indicator = config.GetDockIndicatorMinimized()
		case d.Manager.IsOpen(kind):
			style = open
			indicator = config.GetDockIndicatorOpen()
		}

		entry := indicator + " " + name
		width := lipgloss.Width(entry)
		d.dockBarSpans = append(d.dockBarSpans, dockSpan{start: col, end: col + width, kind: kind})
		sb.WriteString(style.Render(entry))
		col += width
	}

	left := sb.String()

	right := ""
	if d.Coords != nil {
		right = plain.Render(fmt.Sprintf("%.4f, %.4f ", d.Coords.Lon, d.Coords.Lat))
	}
	if glyph := d.Cursor.Glyph(); glyph != "" && !config.UseASCIIOnly {
		right = open.Render(glyph+" ") + right
	}

	gap := d.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	content := left + plain.Render(strings.Repeat(" ", gap)) + right
	return lipgloss.NewLayer(content).
		X(0).
		Y(d.DockBarY()).
		Z(config.ZIndexDockBar).
		ID("dock-bar")
}

// DockBarHit resolves a click column on the dock bar to a panel kind.
// Returns "" when the click landed between entries.
func (d *Desk) DockBarHit(x int) string {
	for _, span := range d.dockBarSpans {
		if x >= span.start && x < span.end {
			return span.kind
		}
	}
	return ""
}

// DockBarClick handles a click on a dock bar entry: closed panels
// open, minimized panels restore, open panels raise, and the active
// panel minimizes.
func (d *Desk) DockBarClick(kind string) {
	if id := d.minimizedInstance(kind); id != "" {
		d.Manager.Raise(id)
		return
	}
	if !d.Manager.IsOpen(kind) {
		d.Manager.Open(kind)
		return
	}
	id := d.openInstance(kind)
	if id == "" {
		return
	}
	if d.Manager.Active() == id {
		d.Manager.Update(id, wm.StatePatch{Minimized: wm.Ptr(true)})
		return
	}
	d.Manager.Raise(id)
}

func (d *Desk) minimizedInstance(kind string) string {
	for _, s := range d.Manager.States() {
		if s.Kind == kind && s.Minimized {
			return s.ID
		}
	}
	return ""
}

func (d *Desk) openInstance(kind string) string {
	best := ""
	bestZ := 0
	for _, s := range d.Manager.States() {
		if s.Kind == kind && !s.Minimized && s.ZIndex > bestZ {
			best, bestZ = s.ID, s.ZIndex
		}
	}
	return best
}
