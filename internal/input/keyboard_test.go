package input

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/mapdesk/internal/app"
	"github.com/Gaurav-Gosain/mapdesk/internal/wm"
)

func testDesk(t *testing.T) *app.Desk {
	t.Helper()
	d := app.NewDesk()
	d.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return d
}

func press(d *app.Desk, key tea.KeyPressMsg) tea.Cmd {
	_, cmd := HandleKeyPress(key, d)
	return cmd
}

func TestNumberKeysOpenCatalogPanels(t *testing.T) {
	d := testDesk(t)

	press(d, tea.KeyPressMsg{Code: '1', Text: "1"})
	if !d.Manager.IsOpen("layers") {
		t.Error("key 1 should open the first registered panel")
	}

	press(d, tea.KeyPressMsg{Code: '2', Text: "2"})
	if !d.Manager.IsOpen("legend") {
		t.Error("key 2 should open the second registered panel")
	}

	// out-of-range numbers are ignored
	press(d, tea.KeyPressMsg{Code: '9', Text: "9"})
	if d.Manager.OpenCount() != 2 {
		t.Errorf("open count = %d after out-of-range key, want 2", d.Manager.OpenCount())
	}
}

func TestTabCyclesFocus(t *testing.T) {
	d := testDesk(t)
	d.Manager.Open("layers")
	d.Manager.Open("legend")

	if d.Manager.Active() != "legend" {
		t.Fatalf("active = %q, want legend", d.Manager.Active())
	}

	press(d, tea.KeyPressMsg{Code: tea.KeyTab})
	if d.Manager.Active() != "layers" {
		t.Errorf("active after tab = %q, want layers", d.Manager.Active())
	}

	press(d, tea.KeyPressMsg{Code: tea.KeyTab})
	if d.Manager.Active() != "legend" {
		t.Errorf("active after second tab = %q, want legend", d.Manager.Active())
	}
}

func TestMinimizeKeys(t *testing.T) {
	d := testDesk(t)
	d.Manager.Open("layers")
	d.Manager.Open("legend")

	press(d, tea.KeyPressMsg{Code: 'm', Text: "m"})
	if !d.Manager.IsMinimized("legend") {
		t.Error("m should minimize the active panel")
	}
	if d.Manager.Active() != "layers" {
		t.Errorf("active = %q after minimize, want layers", d.Manager.Active())
	}

	press(d, tea.KeyPressMsg{Code: 'M', Text: "M"})
	if !d.Manager.IsMinimized("layers") {
		t.Error("M should minimize every panel")
	}
	if d.Manager.Active() != "" {
		t.Errorf("active = %q after minimize all, want none", d.Manager.Active())
	}
}

func TestDockAndUndockKeys(t *testing.T) {
	d := testDesk(t)
	d.Manager.Open("layers")

	press(d, tea.KeyPressMsg{Code: 'h', Text: "h"})
	s, _ := d.Manager.State("layers")
	if !s.Docked || s.DockSide != wm.DockLeft {
		t.Fatalf("h should dock left, got docked=%v side=%v", s.Docked, s.DockSide)
	}

	press(d, tea.KeyPressMsg{Code: 'l', Text: "l"})
	s, _ = d.Manager.State("layers")
	if s.DockSide != wm.DockRight {
		t.Errorf("l should dock right, got side=%v", s.DockSide)
	}

	press(d, tea.KeyPressMsg{Code: 'u', Text: "u"})
	s, _ = d.Manager.State("layers")
	if s.Docked {
		t.Error("u should undock the active panel")
	}
}

func TestMaximizeToggleKey(t *testing.T) {
	d := testDesk(t)
	d.Manager.Open("layers")
	before, _ := d.Manager.State("layers")

	press(d, tea.KeyPressMsg{Code: 'f', Text: "f"})
	s, _ := d.Manager.State("layers")
	if !s.Maximized {
		t.Fatal("f should maximize")
	}

	press(d, tea.KeyPressMsg{Code: 'f', Text: "f"})
	s, _ = d.Manager.State("layers")
	if s.Maximized {
		t.Fatal("second f should restore")
	}
	if s.Rect != before.Rect {
		t.Errorf("restored rect = %+v, want %+v", s.Rect, before.Rect)
	}
}

func TestCloseKey(t *testing.T) {
	d := testDesk(t)
	d.Manager.Open("layers")

	press(d, tea.KeyPressMsg{Code: 'x', Text: "x"})
	if d.Manager.IsOpen("layers") {
		t.Error("x should close the active panel")
	}

	// no active panel left, x is a no-op
	press(d, tea.KeyPressMsg{Code: 'x', Text: "x"})
}

func TestQuitKeysReturnQuit(t *testing.T) {
	d := testDesk(t)
	if press(d, tea.KeyPressMsg{Code: 'q', Text: "q"}) == nil {
		t.Error("q should return a quit command")
	}
	if press(d, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}) == nil {
		t.Error("ctrl+c should return a quit command")
	}
}

func TestHelpOverlaySwallowsKeys(t *testing.T) {
	d := testDesk(t)
	d.Manager.Open("layers")

	press(d, tea.KeyPressMsg{Code: '?', Text: "?"})
	if !d.ShowHelp {
		t.Fatal("? should show help")
	}

	// management keys are inert while help is up
	press(d, tea.KeyPressMsg{Code: 'x', Text: "x"})
	if !d.Manager.IsOpen("layers") {
		t.Error("x closed a panel while help was shown")
	}

	press(d, tea.KeyPressMsg{Code: tea.KeyEscape})
	if d.ShowHelp {
		t.Error("esc should dismiss help")
	}
}

func TestEscapeAbandonsInteractionSession(t *testing.T) {
	d := testDesk(t)
	d.Manager.Open("layers")
	s, _ := d.Manager.State("layers")

	c := d.Manager.Controller("layers")
	if !c.StartDrag(s.X+5, s.Y) {
		t.Fatal("StartDrag refused")
	}
	c.Move(2, s.Y)
	if d.Manager.SessionDockCandidate() == wm.DockNone {
		t.Fatal("dock candidate not armed")
	}

	press(d, tea.KeyPressMsg{Code: tea.KeyEscape})
	if d.Manager.SessionActive() {
		t.Error("esc should end the session")
	}
	got, _ := d.Manager.State("layers")
	if got.Docked {
		t.Error("abandoned session must not commit the dock")
	}
}
