package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/mapdesk/internal/config"
)

// StatusTickMsg triggers a system status panel refresh.
type StatusTickMsg time.Time

// InputHandler handles keyboard and mouse messages. The Update method
// delegates to the input package through this indirection to avoid a
// circular dependency.
type InputHandler func(msg tea.Msg, d *Desk) (tea.Model, tea.Cmd)

var inputHandler InputHandler

// SetInputHandler registers the input handler function. This must be
// called during initialization before the update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// StatusTickCmd schedules the next status panel refresh.
func StatusTickCmd() tea.Cmd {
	return tea.Tick(config.StatusUpdateInterval, func(t time.Time) tea.Msg {
		return StatusTickMsg(t)
	})
}

// Init implements tea.Model.
func (d *Desk) Init() tea.Cmd {
	return StatusTickCmd()
}

// Update implements tea.Model.
func (d *Desk) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.Width = msg.Width
		d.Height = msg.Height
		d.Manager.SetViewport(msg.Width, d.UsableHeight())
		return d, nil

	case StatusTickMsg:
		if d.Status != nil {
			d.Status.Refresh()
		}
		return d, StatusTickCmd()

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg:
		if inputHandler != nil {
			return inputHandler(msg, d)
		}
		return d, nil
	}

	return d, nil
}
