package input

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/mapdesk/internal/wm"
)

func click(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func TestClickRaisesTopmostWindow(t *testing.T) {
	d := testDesk(t)
	d.Manager.Open("layers") // 4,2 40x12
	d.Manager.Open("status") // cascades to 16,12 36x9

	// point inside both bodies; status is on top and must stay on top
	handleMouseClick(click(20, 13), d)
	if d.Manager.Active() != "status" {
		t.Errorf("active = %q, want status", d.Manager.Active())
	}

	// point only inside layers
	handleMouseClick(click(6, 3), d)
	if d.Manager.Active() != "layers" {
		t.Errorf("active = %q, want layers", d.Manager.Active())
	}
	s, _ := d.Manager.State("layers")
	st, _ := d.Manager.State("status")
	if s.ZIndex <= st.ZIndex {
		t.Error("clicked window not raised above previous top")
	}
}

func TestTitleBarDragMovesWindow(t *testing.T) {
	d := testDesk(t)
	d.Manager.Open("layers")
	before, _ := d.Manager.State("layers")

	handleMouseClick(click(before.X+10, before.Y), d)
	if !d.Manager.SessionActive() {
		t.Fatal("title bar click should start a drag session")
	}
	handleMouseMotion(tea.MouseMotionMsg{X: before.X + 25, Y: before.Y + 6}, d)
	handleMouseRelease(tea.MouseReleaseMsg{X: before.X + 25, Y: before.Y + 6, Button: tea.MouseLeft}, d)

	s, _ := d.Manager.State("layers")
	if s.X != before.X+15 || s.Y != before.Y+6 {
		t.Errorf("window at (%d,%d), want (%d,%d)", s.X, s.Y, before.X+15, before.Y+6)
	}
	if d.Manager.SessionActive() {
		t.Error("session survives release")
	}
}

func TestBodyClickDoesNotStartSession(t *testing.T) {
	d := testDesk(t)
	d.Manager.Open("layers")
	s, _ := d.Manager.State("layers")

	handleMouseClick(click(s.X+5, s.Y+5), d)
	if d.Manager.SessionActive() {
		t.Error("body click started an interaction session")
	}
}

func TestWindowButtons(t *testing.T) {
	d := testDesk(t)

	// close: offsets -5..-3 from the right edge of the title bar
	d.Manager.Open("layers")
	s, _ := d.Manager.State("layers")
	handleMouseClick(click(s.X+s.Width-4, s.Y), d)
	if d.Manager.IsOpen("layers") {
		t.Fatal("close button did not close the window")
	}

	// minimize: offsets -11..-9
	d.Manager.Open("layers")
	s, _ = d.Manager.State("layers")
	handleMouseClick(click(s.X+s.Width-10, s.Y), d)
	if !d.Manager.IsMinimized("layers") {
		t.Fatal("minimize button did not minimize")
	}

	// maximize toggle: offsets -8..-6
	d.Manager.Open("layers")
	s, _ = d.Manager.State("layers")
	handleMouseClick(click(s.X+s.Width-7, s.Y), d)
	s, _ = d.Manager.State("layers")
	if !s.Maximized {
		t.Fatal("maximize button did not maximize")
	}
	handleMouseClick(click(s.X+s.Width-7, s.Y), d)
	s, _ = d.Manager.State("layers")
	if s.Maximized {
		t.Fatal("second maximize click did not restore")
	}
}

func TestEdgeResizeSession(t *testing.T) {
	d := testDesk(t)
	d.Manager.Open("layers")
	before, _ := d.Manager.State("layers")

	// right edge, mid-height
	edgeX := before.X + before.Width - 1
	edgeY := before.Y + before.Height/2
	handleMouseClick(click(edgeX, edgeY), d)
	if phase, handle := d.Manager.SessionPhase(); phase != wm.PhaseResizing || handle != wm.HandleRight {
		t.Fatalf("session = %v/%v, want resizing on the right handle", phase, handle)
	}

	handleMouseMotion(tea.MouseMotionMsg{X: edgeX + 8, Y: edgeY}, d)
	handleMouseRelease(tea.MouseReleaseMsg{X: edgeX + 8, Y: edgeY, Button: tea.MouseLeft}, d)

	s, _ := d.Manager.State("layers")
	if s.Width != before.Width+8 {
		t.Errorf("width = %d, want %d", s.Width, before.Width+8)
	}
	if s.X != before.X {
		t.Errorf("x moved during right-edge resize: %d -> %d", before.X, s.X)
	}
}

func TestCornerResizeFromTitleRow(t *testing.T) {
	d := testDesk(t)
	d.Manager.Open("layers")
	before, _ := d.Manager.State("layers")

	// top-right corner sits on the title row but still resizes
	handleMouseClick(click(before.X+before.Width-1, before.Y), d)
	if phase, handle := d.Manager.SessionPhase(); phase != wm.PhaseResizing || handle != wm.HandleTopRight {
		t.Fatalf("session = %v/%v, want resizing on the top-right handle", phase, handle)
	}
	d.Manager.Controller(d.Manager.SessionWindow()).Shutdown()
}

func TestDragIntoDockZoneDocks(t *testing.T) {
	d := testDesk(t)
	d.Manager.Open("layers")
	s, _ := d.Manager.State("layers")

	handleMouseClick(click(s.X+10, s.Y), d)
	handleMouseMotion(tea.MouseMotionMsg{X: 3, Y: 10}, d)
	if d.Manager.SessionDockCandidate() != wm.DockLeft {
		t.Fatal("left dock candidate not armed")
	}
	handleMouseRelease(tea.MouseReleaseMsg{X: 3, Y: 10, Button: tea.MouseLeft}, d)

	got, _ := d.Manager.State("layers")
	if !got.Docked || got.DockSide != wm.DockLeft {
		t.Fatalf("docked=%v side=%v after release in zone", got.Docked, got.DockSide)
	}
	want := wm.Rect{X: 0, Y: 0, Width: 34, Height: d.UsableHeight()}
	if got.Rect != want {
		t.Errorf("dock slab = %+v, want %+v", got.Rect, want)
	}
}

func TestMotionOverMapUpdatesCoordinates(t *testing.T) {
	d := testDesk(t)

	handleMouseMotion(tea.MouseMotionMsg{X: d.Width / 2, Y: d.UsableHeight() / 2}, d)
	if d.Coords.Lon < -5 || d.Coords.Lon > 5 {
		t.Errorf("center motion lon = %f, want near 0", d.Coords.Lon)
	}

	// over a window the readout stays put
	d.Manager.Open("layers")
	s, _ := d.Manager.State("layers")
	before := d.Coords.Lon
	handleMouseMotion(tea.MouseMotionMsg{X: s.X + 2, Y: s.Y + 2}, d)
	if d.Coords.Lon != before {
		t.Error("motion over a panel changed the map readout")
	}
}

func TestDockBarClickOpensPanel(t *testing.T) {
	d := testDesk(t)
	d.GetCanvas() // build dock bar spans

	kind := d.DockBarHit(2)
	if kind != "layers" {
		t.Fatalf("dock bar hit = %q, want layers", kind)
	}

	handleMouseClick(click(2, d.DockBarY()), d)
	if !d.Manager.IsOpen("layers") {
		t.Error("dock bar click did not open the panel")
	}
}

func TestRightButtonIsIgnored(t *testing.T) {
	d := testDesk(t)
	d.Manager.Open("layers")
	s, _ := d.Manager.State("layers")

	handleMouseClick(tea.MouseClickMsg{X: s.X + 5, Y: s.Y, Button: tea.MouseRight}, d)
	if d.Manager.SessionActive() {
		t.Error("right click started a session")
	}
}
