package app

import (
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Gaurav-Gosain/mapdesk/internal/config"
	"github.com/Gaurav-Gosain/mapdesk/internal/theme"
	"github.com/Gaurav-Gosain/mapdesk/internal/wm"
)

// GetCanvas composes the map canvas, the floating panels in stacking
// order, and the chrome layers (dock preview, dock bar, help overlay).
func (d *Desk) GetCanvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas()
	topMargin := d.TopMargin()

	var layers []*lipgloss.Layer
	layers = append(layers, lipgloss.NewLayer(d.renderMap()).X(0).Y(topMargin).Z(0).ID("map"))

	for _, s := range d.Manager.States() {
		if s.Minimized {
			continue
		}
		layers = append(layers,
			lipgloss.NewLayer(d.renderPanel(s)).
				X(s.X).
				Y(s.Y+topMargin).
				Z(s.ZIndex).
				ID(s.ID))
	}

	if preview := d.renderDockPreview(); preview != nil {
		layers = append(layers, preview)
	}
	if config.DockBarPosition != "hidden" {
		layers = append(layers, d.renderDockBar())
	}
	if d.ShowHelp {
		layers = append(layers, d.renderHelp())
	}

	canvas.AddLayers(layers...)
	return canvas
}

// View implements tea.Model.
func (d *Desk) View() tea.View {
	var view tea.View
	view.SetContent(lipgloss.Sprint(d.GetCanvas().Render()))
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	return view
}

// renderMap draws the map background with a light graticule. Feature
// drawing happens in the layers themselves; the desk only provides
// the backdrop panels float over.
func (d *Desk) renderMap() string {
	width, height := d.Width, d.UsableHeight()
	if width <= 0 || height <= 0 {
		return ""
	}

	grid := lipgloss.NewStyle().Foreground(theme.MapGrid()).Background(theme.MapBg())
	blank := lipgloss.NewStyle().Background(theme.MapBg())

	mark := "·"
	if config.UseASCIIOnly {
		mark = "+"
	}

	rows := make([]string, height)
	for y := range height {
		if (y+2)%4 != 0 {
			rows[y] = blank.Render(strings.Repeat(" ", width))
			continue
		}
		var sb strings.Builder
		for x := range width {
			if (x+5)%10 == 0 {
				sb.WriteString(mark)
			} else {
				sb.WriteByte(' ')
			}
		}
		rows[y] = grid.Render(sb.String())
	}
	return strings.Join(rows, "\n")
}

// renderPanel draws one floating panel: a top border line carrying the
// title badge and window buttons, and a bordered body below it.
func (d *Desk) renderPanel(s wm.WindowState) string {
	borderColor := theme.BorderUnfocused()
	if s.Docked {
		borderColor = theme.BorderDocked()
	} else if d.Manager.Active() == s.ID {
		borderColor = theme.BorderFocused()
	}

	body := ""
	if cfg, ok := d.Registry.Lookup(s.Kind); ok && cfg.Provider != nil {
		body = cfg.Provider.Render(s.Width-2, s.Height-2)
	}

	box := lipgloss.NewStyle().
		Align(lipgloss.Left).
		AlignVertical(lipgloss.Top).
		Width(s.Width - 2).
		Height(s.Height - 2).
		Border(config.GetBorderForStyle()).
		BorderTop(false).
		BorderForeground(borderColor).
		Render(body)

	return d.renderTitleBar(s, borderColor) + "\n" + box
}

// renderTitleBar builds the top border line: corner, title badge, fill,
// then the minimize/maximize/close buttons at the fixed offsets the
// mouse hit testing expects.
func (d *Desk) renderTitleBar(s wm.WindowState, borderColor color.Color) string {
	border := config.GetBorderForStyle()
	line := lipgloss.NewStyle().Foreground(borderColor)
	badge := lipgloss.NewStyle().Foreground(theme.TitleFg()).Background(borderColor)

	inner := s.Width - 2
	if inner < 0 {
		inner = 0
	}

	var buttons string
	buttonsWidth := 0
	if !config.HideWindowButtons {
		buttons = badge.Render(config.GetWindowButtonMinimize()) +
			badge.Render(config.GetWindowButtonMaximize()) +
			badge.Render(config.GetWindowButtonClose())
		// two border cells sit between the close button and the corner
		buttons += line.Render(strings.Repeat(border.Top, 2))
		buttonsWidth = 11
	}

	title := " " + s.Title + " "
	fill := inner - lipgloss.Width(title) - buttonsWidth
	if fill < 0 {
		title = ""
		fill = inner - buttonsWidth
		if fill < 0 {
			fill = 0
		}
	}

	return line.Render(border.TopLeft) +
		badge.Render(title) +
		line.Render(strings.Repeat(border.Top, fill)) +
		buttons +
		line.Render(border.TopRight)
}

// renderDockPreview shows a translucent slab over the dock target while
// a drag has a dock candidate armed.
func (d *Desk) renderDockPreview() *lipgloss.Layer {
	side := d.Manager.SessionDockCandidate()
	if side == wm.DockNone {
		return nil
	}

	width := config.DockSlabWidthCells
	if width > d.Width {
		width = d.Width
	}
	x := 0
	if side == wm.DockRight {
		x = d.Width - width
	}

	slab := lipgloss.NewStyle().
		Background(theme.DockZonePreview()).
		Width(width).
		Height(d.UsableHeight()).
		Render("")

	return lipgloss.NewLayer(slab).
		X(x).
		Y(d.TopMargin()).
		Z(config.ZIndexDockPreview).
		ID("dock-preview")
}

// renderHelp draws the keybinding overlay centered on the desk.
func (d *Desk) renderHelp() *lipgloss.Layer {
	key := lipgloss.NewStyle().Foreground(theme.HelpKeyBadge()).Bold(true)
	text := lipgloss.NewStyle().Foreground(theme.HelpText())
	title := lipgloss.NewStyle().Foreground(theme.HelpTitle()).Bold(true)

	bindings := [][2]string{
		{"1-9", "open panel"},
		{"tab / shift+tab", "cycle focus"},
		{"m", "minimize panel"},
		{"M", "minimize all"},
		{"u", "restore / undock"},
		{"f", "maximize toggle"},
		{"h / l", "dock left / right"},
		{"x", "close panel"},
		{"?", "toggle help"},
		{"q", "quit"},
	}

	rows := []string{title.Render("mapdesk keys"), ""}
	for _, b := range bindings {
		rows = append(rows, key.Render(pad(b[0], 16))+text.Render(b[1]))
	}

	box := lipgloss.NewStyle().
		Background(theme.HelpBg()).
		Border(config.GetBorderForStyle()).
		BorderForeground(theme.HelpTitle()).
		Padding(0, 2).
		Width(config.HelpOverlayWidth).
		Render(strings.Join(rows, "\n"))

	x := (d.Width - lipgloss.Width(box)) / 2
	y := (d.Height - lipgloss.Height(box)) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return lipgloss.NewLayer(box).X(x).Y(y).Z(config.ZIndexHelp).ID("help")
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
