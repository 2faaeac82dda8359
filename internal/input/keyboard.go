package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/mapdesk/internal/app"
	"github.com/Gaurav-Gosain/mapdesk/internal/wm"
)

// HandleKeyPress handles desk-level key bindings. Panel management
// keys act on the active window; number keys open catalog panels.
func HandleKeyPress(msg tea.KeyPressMsg, d *app.Desk) (tea.Model, tea.Cmd) {
	key := msg.String()

	if d.ShowHelp {
		switch key {
		case "?", "esc", "q":
			d.ShowHelp = false
		}
		return d, nil
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		registered := d.Registry.Registered()
		if idx := int(key[0] - '1'); idx < len(registered) {
			d.Manager.Open(registered[idx].ID)
		}
		return d, nil
	}

	switch key {
	case "q", "ctrl+c":
		return d, tea.Quit

	case "?":
		d.ShowHelp = true

	case "tab":
		d.CycleFocus(false)

	case "shift+tab":
		d.CycleFocus(true)

	case "m":
		if id := d.Manager.Active(); id != "" {
			d.Manager.Update(id, wm.StatePatch{Minimized: wm.Ptr(true)})
		}

	case "shift+m", "M":
		d.Manager.MinimizeAll()

	case "u":
		if id := d.Manager.Active(); id != "" {
			s, _ := d.Manager.State(id)
			switch {
			case s.Docked:
				d.Manager.Undock(id)
			case s.Maximized:
				d.Manager.Restore(id)
			}
		}

	case "f":
		if id := d.Manager.Active(); id != "" {
			if s, _ := d.Manager.State(id); s.Maximized {
				d.Manager.Restore(id)
			} else {
				d.Manager.Maximize(id)
			}
		}

	case "h":
		if id := d.Manager.Active(); id != "" {
			d.Manager.Dock(id, wm.DockLeft)
		}

	case "l":
		if id := d.Manager.Active(); id != "" {
			d.Manager.Dock(id, wm.DockRight)
		}

	case "x":
		if id := d.Manager.Active(); id != "" {
			d.Manager.Close(id)
		}

	case "esc":
		// abandon an interaction session without committing a dock
		if d.Manager.SessionActive() {
			d.Manager.Controller(d.Manager.SessionWindow()).Shutdown()
		}
	}

	return d, nil
}
