package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/mapdesk/internal/app"
	"github.com/Gaurav-Gosain/mapdesk/internal/config"
	"github.com/Gaurav-Gosain/mapdesk/internal/wm"
)

// hitWindow returns the topmost visible window containing the desk
// coordinate, or "" when the point is over the map canvas.
func hitWindow(d *app.Desk, x, y int) string {
	best := ""
	bestZ := 0
	for _, s := range d.Manager.States() {
		if s.Minimized {
			continue
		}
		if s.Contains(x, y) && s.ZIndex > bestZ {
			best, bestZ = s.ID, s.ZIndex
		}
	}
	return best
}

// classifyHandle maps a point on the window's border ring to a resize
// handle. Points inside the ring return HandleNone.
func classifyHandle(s wm.WindowState, x, y int) wm.Handle {
	lx := x - s.X
	ly := y - s.Y
	onLeft := lx == 0
	onRight := lx == s.Width-1
	onTop := ly == 0
	onBottom := ly == s.Height-1

	switch {
	case onTop && onLeft:
		return wm.HandleTopLeft
	case onTop && onRight:
		return wm.HandleTopRight
	case onBottom && onLeft:
		return wm.HandleBottomLeft
	case onBottom && onRight:
		return wm.HandleBottomRight
	case onLeft:
		return wm.HandleLeft
	case onRight:
		return wm.HandleRight
	case onTop:
		return wm.HandleTop
	case onBottom:
		return wm.HandleBottom
	default:
		return wm.HandleNone
	}
}

// titleButton resolves a click on the top border line to a window
// button using the fixed offsets from the right edge.
func titleButton(s wm.WindowState, x int) string {
	if config.HideWindowButtons {
		return ""
	}
	lx := x - s.X
	switch {
	case lx >= s.Width+config.CloseButtonLeft && lx <= s.Width+config.CloseButtonRight:
		return "close"
	case lx >= s.Width+config.MaximizeButtonLeft && lx <= s.Width+config.MaximizeButtonRight:
		return "maximize"
	case lx >= s.Width+config.MinimizeButtonLeft && lx <= s.Width+config.MinimizeButtonRight:
		return "minimize"
	}
	return ""
}

func handleMouseClick(msg tea.MouseClickMsg, d *app.Desk) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return d, nil
	}

	if d.ShowHelp {
		d.ShowHelp = false
		return d, nil
	}

	if mouse.Y == d.DockBarY() {
		if kind := d.DockBarHit(mouse.X); kind != "" {
			d.DockBarClick(kind)
		}
		return d, nil
	}

	x := mouse.X
	y := mouse.Y - d.TopMargin()

	id := hitWindow(d, x, y)
	if id == "" {
		return d, nil
	}
	s, _ := d.Manager.State(id)
	d.Manager.Raise(id)

	// top border line: buttons first, corners resize, the rest drags
	if y == s.Y {
		switch titleButton(s, x) {
		case "close":
			d.Manager.Close(id)
			return d, nil
		case "maximize":
			if s.Maximized {
				d.Manager.Restore(id)
			} else {
				d.Manager.Maximize(id)
			}
			return d, nil
		case "minimize":
			d.Manager.Update(id, wm.StatePatch{Minimized: wm.Ptr(true)})
			return d, nil
		}
	}

	c := d.Manager.Controller(id)
	if handle := classifyHandle(s, x, y); handle != wm.HandleNone && handle != wm.HandleTop {
		c.StartResize(handle, x, y)
		return d, nil
	}
	// the whole top line (including the HandleTop run) drags; top-edge
	// resizing is still reachable through the corners
	if y == s.Y {
		c.StartDrag(x, y)
	}
	return d, nil
}

func handleMouseMotion(msg tea.MouseMotionMsg, d *app.Desk) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	d.LastMouseX = mouse.X
	d.LastMouseY = mouse.Y

	x := mouse.X
	y := mouse.Y - d.TopMargin()

	if d.Manager.SessionActive() {
		d.Manager.Controller(d.Manager.SessionWindow()).Move(x, y)
		return d, nil
	}

	// over the bare map the coordinate readout follows the pointer
	if d.Coords != nil && d.Width > 0 && d.UsableHeight() > 0 && hitWindow(d, x, y) == "" {
		lon := -180 + 360*float64(x)/float64(d.Width)
		lat := 85 - 170*float64(y)/float64(d.UsableHeight())
		d.Coords.Set(lon, lat)
	}
	return d, nil
}

func handleMouseRelease(msg tea.MouseReleaseMsg, d *app.Desk) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	if d.Manager.SessionActive() {
		d.Manager.Controller(d.Manager.SessionWindow()).
			Release(mouse.X, mouse.Y-d.TopMargin())
	}
	return d, nil
}
