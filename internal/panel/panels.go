// Package panel provides the built-in mapdesk panels: the layer list,
// the legend, the feature inspector, the coordinate readout, and the
// system status panel. Each panel is a wm.ContentProvider; Catalog
// returns the window configurations the desk registers at startup.
package panel

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Gaurav-Gosain/mapdesk/internal/theme"
	"github.com/Gaurav-Gosain/mapdesk/internal/wm"
)

// Layer is a single entry in the layer list.
type Layer struct {
	Name     string
	Kind     string // point, line, polygon, raster
	Visible  bool
	Features int
}

// DefaultLayers returns the layer set loaded into a fresh workspace.
func DefaultLayers() []Layer {
	return []Layer{
		{Name: "OSM Base", Kind: "raster", Visible: true},
		{Name: "Parcels", Kind: "polygon", Visible: true, Features: 1284},
		{Name: "Roads", Kind: "line", Visible: true, Features: 3609},
		{Name: "Hydrants", Kind: "point", Visible: false, Features: 412},
		{Name: "Contours 5m", Kind: "line", Visible: false, Features: 980},
	}
}

// Layers renders the layer list and tracks a selection cursor.
type Layers struct {
	Items    []Layer
	Selected int
}

// NewLayers returns a layer list panel with the default workspace layers.
func NewLayers() *Layers {
	return &Layers{Items: DefaultLayers()}
}

// MoveSelection moves the cursor by delta, clamped to the list bounds.
func (p *Layers) MoveSelection(delta int) {
	p.Selected += delta
	if p.Selected < 0 {
		p.Selected = 0
	}
	if p.Selected >= len(p.Items) {
		p.Selected = len(p.Items) - 1
	}
}

// ToggleSelected flips visibility of the layer under the cursor.
func (p *Layers) ToggleSelected() {
	if p.Selected >= 0 && p.Selected < len(p.Items) {
		p.Items[p.Selected].Visible = !p.Items[p.Selected].Visible
	}
}

// Render implements wm.ContentProvider.
func (p *Layers) Render(width, height int) string {
	rows := make([]string, 0, len(p.Items))
	for i, layer := range p.Items {
		eye := "◉"
		if !layer.Visible {
			eye = "○"
		}
		cursor := "  "
		if i == p.Selected {
			cursor = "> "
		}
		row := fmt.Sprintf("%s%s %s %s", cursor, eye, kindGlyph(layer.Kind), layer.Name)
		if layer.Features > 0 {
			row += fmt.Sprintf(" (%d)", layer.Features)
		}
		style := lipgloss.NewStyle().Foreground(theme.PanelFg())
		if !layer.Visible {
			style = style.Foreground(theme.DockBarDimmed())
		}
		rows = append(rows, style.Render(row))
	}
	return fitBlock(strings.Join(rows, "\n"), width, height)
}

// Legend renders a swatch legend for the visible layers.
type Legend struct {
	Source *Layers
}

// Render implements wm.ContentProvider.
func (p *Legend) Render(width, height int) string {
	swatch := lipgloss.NewStyle().Foreground(theme.MapFeature())
	var rows []string
	for _, layer := range p.Source.Items {
		if !layer.Visible {
			continue
		}
		rows = append(rows, fmt.Sprintf("%s %s", swatch.Render(kindSwatch(layer.Kind)), layer.Name))
	}
	if len(rows) == 0 {
		rows = []string{lipgloss.NewStyle().Foreground(theme.DockBarDimmed()).Render("no visible layers")}
	}
	return fitBlock(strings.Join(rows, "\n"), width, height)
}

// Feature is a selected map feature shown by an inspector panel.
type Feature struct {
	Layer      string
	ID         int
	Attributes [][2]string // ordered key/value pairs
}

// SampleFeature returns the placeholder feature shown by a fresh
// inspector before a map selection is made.
func SampleFeature() Feature {
	return Feature{
		Layer: "Parcels",
		ID:    1042,
		Attributes: [][2]string{
			{"apn", "021-318-042"},
			{"zoning", "R-1"},
			{"area_sqm", "612.4"},
			{"owner", "—"},
		},
	}
}

// Inspector shows the attributes of one selected feature. Inspectors
// allow multiple instances so several features can be compared side
// by side.
type Inspector struct {
	Feature Feature
}

// Render implements wm.ContentProvider.
func (p *Inspector) Render(width, height int) string {
	key := lipgloss.NewStyle().Foreground(theme.DockBarDimmed())
	val := lipgloss.NewStyle().Foreground(theme.PanelFg())

	rows := []string{val.Render(fmt.Sprintf("%s #%d", p.Feature.Layer, p.Feature.ID)), ""}
	for _, attr := range p.Feature.Attributes {
		rows = append(rows, fmt.Sprintf("%s %s", key.Render(pad(attr[0], 10)), val.Render(attr[1])))
	}
	return fitBlock(strings.Join(rows, "\n"), width, height)
}

// Coordinates shows the cursor position on the map and the active CRS.
type Coordinates struct {
	Lon, Lat float64
	Zoom     int
	CRS      string
}

// NewCoordinates returns a coordinate readout centered on a default view.
func NewCoordinates() *Coordinates {
	return &Coordinates{Lon: -122.4194, Lat: 37.7749, Zoom: 12, CRS: "EPSG:4326"}
}

// Set updates the tracked map position.
func (p *Coordinates) Set(lon, lat float64) {
	p.Lon, p.Lat = lon, lat
}

// Render implements wm.ContentProvider.
func (p *Coordinates) Render(width, height int) string {
	key := lipgloss.NewStyle().Foreground(theme.DockBarDimmed())
	val := lipgloss.NewStyle().Foreground(theme.PanelFg())
	rows := []string{
		fmt.Sprintf("%s %s", key.Render(pad("lon", 6)), val.Render(fmt.Sprintf("%.5f", p.Lon))),
		fmt.Sprintf("%s %s", key.Render(pad("lat", 6)), val.Render(fmt.Sprintf("%.5f", p.Lat))),
		fmt.Sprintf("%s %s", key.Render(pad("zoom", 6)), val.Render(fmt.Sprintf("z%d", p.Zoom))),
		fmt.Sprintf("%s %s", key.Render(pad("crs", 6)), val.Render(p.CRS)),
	}
	return fitBlock(strings.Join(rows, "\n"), width, height)
}

// Catalog returns the window configurations for the built-in panels,
// in dock bar order. The returned providers share one layer list so
// the legend tracks visibility toggles.
func Catalog() []wm.WindowConfig {
	layers := NewLayers()
	return []wm.WindowConfig{
		{
			ID:              "layers",
			Title:           "Layers",
			Provider:        layers,
			DefaultGeometry: wm.Rect{X: 4, Y: 2, Width: 40, Height: 12},
			Resizable:       true,
			Movable:         true,
		},
		{
			ID:              "legend",
			Title:           "Legend",
			Provider:        &Legend{Source: layers},
			DefaultGeometry: wm.Rect{X: 48, Y: 2, Width: 32, Height: 10},
			Resizable:       true,
			Movable:         true,
		},
		{
			ID:              "inspector",
			Title:           "Inspector",
			Provider:        &Inspector{Feature: SampleFeature()},
			DefaultGeometry: wm.Rect{X: 10, Y: 6, Width: 44, Height: 12},
			AllowMultiple:   true,
			Resizable:       true,
			Movable:         true,
		},
		{
			ID:              "coords",
			Title:           "Coordinates",
			Provider:        NewCoordinates(),
			DefaultGeometry: wm.Rect{X: 54, Y: 14, Width: 28, Height: 8},
			Resizable:       true,
			Movable:         true,
		},
		{
			ID:              "status",
			Title:           "System",
			Provider:        NewStatus(),
			DefaultGeometry: wm.Rect{X: 14, Y: 10, Width: 36, Height: 9},
			Resizable:       true,
			Movable:         true,
		},
	}
}

func kindGlyph(kind string) string {
	switch kind {
	case "point":
		return "·"
	case "line":
		return "╱"
	case "polygon":
		return "▰"
	case "raster":
		return "▦"
	default:
		return "?"
	}
}

func kindSwatch(kind string) string {
	switch kind {
	case "point":
		return "••"
	case "line":
		return "──"
	case "polygon":
		return "██"
	case "raster":
		return "▒▒"
	default:
		return "  "
	}
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

// fitBlock clips content to at most height lines and truncates each
// line to width cells so panel bodies never overflow their frame.
func fitBlock(content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = lipgloss.NewStyle().MaxWidth(width).Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
