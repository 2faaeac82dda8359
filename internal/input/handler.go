// Package input implements keyboard and mouse handling for the
// mapdesk panel desk.
package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/mapdesk/internal/app"
)

// HandleInput routes input messages to the keyboard and mouse
// handlers. It is registered on the desk via app.SetInputHandler.
func HandleInput(msg tea.Msg, d *app.Desk) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, d)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, d)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, d)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, d)
	}
	return d, nil
}
