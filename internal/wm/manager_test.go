package wm

import "testing"

func testRegistry() *Registry {
	r := NewRegistry()
	r.Register(WindowConfig{
		ID:              "layers",
		Title:           "Layers",
		DefaultGeometry: Rect{X: 100, Y: 100, Width: 400, Height: 300},
		Resizable:       true,
		Movable:         true,
	})
	r.Register(WindowConfig{
		ID:              "legend",
		Title:           "Legend",
		DefaultGeometry: Rect{X: 100, Y: 100, Width: 400, Height: 300},
		Resizable:       true,
		Movable:         true,
	})
	r.Register(WindowConfig{
		ID:              "inspector",
		Title:           "Feature Inspector",
		DefaultGeometry: Rect{X: 200, Y: 150, Width: 500, Height: 400},
		AllowMultiple:   true,
		Resizable:       true,
		Movable:         true,
	})
	return r
}

func testManager() *Manager {
	return NewManager(testRegistry(), 1920, 1080, Limits{})
}

func TestOpenAssignsStateAndZ(t *testing.T) {
	m := testManager()

	id := m.Open("layers")
	if id != "layers" {
		t.Fatalf("Open returned id %q, want %q", id, "layers")
	}

	s, ok := m.State("layers")
	if !ok {
		t.Fatal("State() not found after Open")
	}
	want := Rect{X: 100, Y: 100, Width: 400, Height: 300}
	if s.Rect != want {
		t.Errorf("geometry = %+v, want %+v", s.Rect, want)
	}
	if s.ZIndex != 1001 {
		t.Errorf("first zIndex = %d, want 1001", s.ZIndex)
	}
	if m.Active() != "layers" {
		t.Errorf("active = %q, want %q", m.Active(), "layers")
	}
}

func TestOpenUnknownKindIsNoop(t *testing.T) {
	m := testManager()
	if id := m.Open("bogus"); id != "" {
		t.Errorf("Open(unknown) = %q, want empty", id)
	}
	if m.OpenCount() != 0 {
		t.Errorf("OpenCount = %d, want 0", m.OpenCount())
	}
}

func TestOpenCascadeOffsetsLaterWindows(t *testing.T) {
	m := testManager()

	m.Open("layers")
	m.Open("legend")

	a, _ := m.State("layers")
	b, _ := m.State("legend")
	if b.X != a.X+30 || b.Y != a.Y+30 {
		t.Errorf("cascade = (%d,%d), want (%d,%d)", b.X, b.Y, a.X+30, a.Y+30)
	}
	if b.ZIndex <= a.ZIndex {
		t.Errorf("later window z = %d, want > %d", b.ZIndex, a.ZIndex)
	}
}

func TestOpenClampsIntoViewport(t *testing.T) {
	r := NewRegistry()
	r.Register(WindowConfig{
		ID:              "wide",
		DefaultGeometry: Rect{X: 1800, Y: 1000, Width: 400, Height: 300},
		Resizable:       true,
		Movable:         true,
	})
	m := NewManager(r, 1920, 1080, Limits{})

	m.Open("wide")
	s, _ := m.State("wide")
	if s.X != 1920-400 {
		t.Errorf("x = %d, want %d", s.X, 1920-400)
	}
	if s.Y != 1080-300 {
		t.Errorf("y = %d, want %d", s.Y, 1080-300)
	}
}

func TestOpenTwiceBehavesLikeRaise(t *testing.T) {
	m := testManager()

	m.Open("layers")
	m.Update("layers", StatePatch{Minimized: Ptr(true)})
	first, _ := m.State("layers")

	id := m.Open("layers")
	if id != "layers" {
		t.Fatalf("second Open returned %q, want %q", id, "layers")
	}
	if m.OpenCount() != 1 {
		t.Fatalf("OpenCount = %d, want 1", m.OpenCount())
	}
	second, _ := m.State("layers")
	if second.ZIndex <= first.ZIndex {
		t.Errorf("zIndex = %d, want > %d", second.ZIndex, first.ZIndex)
	}
	if second.Minimized {
		t.Error("minimized flag not cleared by reopen")
	}
	if second.Rect != first.Rect {
		t.Errorf("geometry changed on reopen: %+v, want %+v", second.Rect, first.Rect)
	}
}

func TestOpenAllowMultipleCreatesInstances(t *testing.T) {
	m := testManager()

	first := m.Open("inspector")
	second := m.Open("inspector")
	if first == second {
		t.Fatalf("both instances share id %q", first)
	}
	if m.OpenCount() != 2 {
		t.Errorf("OpenCount = %d, want 2", m.OpenCount())
	}
	if !m.IsOpen("inspector") {
		t.Error("IsOpen(kind) = false with instances open")
	}
}

func TestZIndexStrictlyIncreasingAndDistinct(t *testing.T) {
	m := testManager()

	m.Open("layers")
	m.Open("legend")
	m.Raise("layers")
	m.Open("inspector")

	seen := make(map[int]string)
	for _, s := range m.States() {
		if prev, dup := seen[s.ZIndex]; dup {
			t.Errorf("windows %q and %q share zIndex %d", prev, s.ID, s.ZIndex)
		}
		seen[s.ZIndex] = s.ID
		if s.ZIndex <= 1000 {
			t.Errorf("zIndex %d for %q not above base", s.ZIndex, s.ID)
		}
	}
}

func TestCloseFallsBackToMostRecentlyOpened(t *testing.T) {
	m := testManager()

	m.Open("layers")
	m.Open("legend")
	id := m.Open("inspector")

	m.Close(id)
	if m.Active() != "legend" {
		t.Errorf("active after close = %q, want %q", m.Active(), "legend")
	}

	m.Close("legend")
	m.Close("layers")
	if m.Active() != "" {
		t.Errorf("active after closing all = %q, want empty", m.Active())
	}
	if m.OpenCount() != 0 {
		t.Errorf("OpenCount = %d, want 0", m.OpenCount())
	}
}

func TestCloseUnknownIsNoop(t *testing.T) {
	m := testManager()
	m.Open("layers")
	m.Close("bogus")
	if m.OpenCount() != 1 || m.Active() != "layers" {
		t.Errorf("state disturbed by closing unknown id")
	}
}

func TestOpenSetMatchesStateMap(t *testing.T) {
	m := testManager()
	m.Open("layers")
	m.Open("legend")
	m.Open("inspector")
	m.Close("legend")

	ids := m.OpenIDs()
	if len(ids) != len(m.States()) {
		t.Fatalf("open set size %d != state count %d", len(ids), len(m.States()))
	}
	for _, id := range ids {
		if _, ok := m.State(id); !ok {
			t.Errorf("open id %q has no state entry", id)
		}
	}
}

func TestUpdateUnknownIsNoop(t *testing.T) {
	m := testManager()
	m.Update("bogus", StatePatch{X: Ptr(10)})
	if m.OpenCount() != 0 {
		t.Error("Update on unknown id created state")
	}
}

func TestUpdateClampsGeometry(t *testing.T) {
	m := testManager()
	m.Open("layers")

	tests := []struct {
		name  string
		patch StatePatch
		want  Rect
	}{
		{
			name:  "x beyond right edge",
			patch: StatePatch{X: Ptr(5000)},
			want:  Rect{X: 1920 - 400, Y: 100, Width: 400, Height: 300},
		},
		{
			name:  "negative y",
			patch: StatePatch{Y: Ptr(-50)},
			want:  Rect{X: 1920 - 400, Y: 0, Width: 400, Height: 300},
		},
		{
			name:  "width below minimum",
			patch: StatePatch{Width: Ptr(10)},
			want:  Rect{X: 1920 - 400, Y: 0, Width: 150, Height: 300},
		},
		{
			name:  "height above viewport",
			patch: StatePatch{Height: Ptr(5000)},
			want:  Rect{X: 1920 - 400, Y: 0, Width: 150, Height: 1080},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.Update("layers", tt.patch)
			s, _ := m.State("layers")
			if s.Rect != tt.want {
				t.Errorf("geometry = %+v, want %+v", s.Rect, tt.want)
			}
		})
	}
}

func TestMinimizeAllClearsActiveAndRestoresIndependently(t *testing.T) {
	m := testManager()
	m.Open("layers")
	m.Open("legend")

	m.MinimizeAll()
	if m.Active() != "" {
		t.Errorf("active = %q after MinimizeAll, want empty", m.Active())
	}
	for _, s := range m.States() {
		if !s.Minimized {
			t.Errorf("window %q not minimized", s.ID)
		}
	}

	m.Update("layers", StatePatch{Minimized: Ptr(false)})
	a, _ := m.State("layers")
	b, _ := m.State("legend")
	if a.Minimized {
		t.Error("restored window still minimized")
	}
	if !b.Minimized {
		t.Error("restoring one window disturbed another's minimized flag")
	}
}

func TestMinimizedWindowKeepsGeometry(t *testing.T) {
	m := testManager()
	m.Open("layers")
	before, _ := m.State("layers")

	m.Update("layers", StatePatch{Minimized: Ptr(true)})
	after, _ := m.State("layers")
	if after.Rect != before.Rect {
		t.Errorf("minimize changed geometry: %+v, want %+v", after.Rect, before.Rect)
	}
}

func TestMaximizeRestoreRoundTrip(t *testing.T) {
	m := testManager()
	m.Open("layers")
	m.Update("layers", StatePatch{X: Ptr(250), Y: Ptr(120)})
	before, _ := m.State("layers")

	m.Maximize("layers")
	s, _ := m.State("layers")
	if s.Rect != (Rect{X: 0, Y: 0, Width: 1920, Height: 1080}) {
		t.Errorf("maximized geometry = %+v", s.Rect)
	}
	if !s.Maximized {
		t.Error("maximized flag not set")
	}

	m.Restore("layers")
	s, _ = m.State("layers")
	if s.Maximized {
		t.Error("maximized flag not cleared")
	}
	if s.Rect != before.Rect {
		t.Errorf("restore = %+v, want exact pre-maximize %+v", s.Rect, before.Rect)
	}
}

func TestMaximizeClearsDocking(t *testing.T) {
	m := testManager()
	m.Open("layers")
	m.Dock("layers", DockLeft)

	m.Maximize("layers")
	s, _ := m.State("layers")
	if s.Docked || s.DockSide != DockNone {
		t.Errorf("docked=%v side=%v after maximize, want floating", s.Docked, s.DockSide)
	}
}

func TestDockGeometry(t *testing.T) {
	tests := []struct {
		name  string
		side  DockSide
		wantX int
	}{
		{name: "left slab", side: DockLeft, wantX: 0},
		{name: "right slab", side: DockRight, wantX: 1920 - 350},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testManager()
			m.Open("layers")
			m.Dock("layers", tt.side)

			s, _ := m.State("layers")
			if !s.Docked || s.DockSide != tt.side {
				t.Fatalf("docked=%v side=%v, want side %v", s.Docked, s.DockSide, tt.side)
			}
			want := Rect{X: tt.wantX, Y: 0, Width: 350, Height: 1080}
			if s.Rect != want {
				t.Errorf("geometry = %+v, want %+v", s.Rect, want)
			}
		})
	}
}

func TestUndockRestoresFloatingRect(t *testing.T) {
	m := testManager()
	m.Open("layers")
	m.Update("layers", StatePatch{X: Ptr(300), Y: Ptr(200)})
	before, _ := m.State("layers")

	m.Dock("layers", DockRight)
	m.Undock("layers")

	s, _ := m.State("layers")
	if s.Docked || s.DockSide != DockNone {
		t.Errorf("docked=%v side=%v after undock", s.Docked, s.DockSide)
	}
	if s.Rect != before.Rect {
		t.Errorf("undock = %+v, want %+v", s.Rect, before.Rect)
	}
	if s.X < 0 || s.Y < 0 || s.Right() > 1920 || s.Bottom() > 1080 {
		t.Errorf("undocked geometry %+v escapes viewport", s.Rect)
	}
}

func TestSetViewportReclampsWindows(t *testing.T) {
	m := testManager()
	m.Open("layers")
	m.Update("layers", StatePatch{X: Ptr(1500), Y: Ptr(700)})
	m.Open("legend")
	m.Dock("legend", DockRight)

	m.SetViewport(800, 600)

	a, _ := m.State("layers")
	if a.Right() > 800 || a.Bottom() > 600 {
		t.Errorf("floating window %+v escapes shrunk viewport", a.Rect)
	}
	b, _ := m.State("legend")
	if b.Rect != (Rect{X: 800 - 350, Y: 0, Width: 350, Height: 600}) {
		t.Errorf("docked geometry not rederived: %+v", b.Rect)
	}
}

func TestRegisterIsIdempotentByID(t *testing.T) {
	r := NewRegistry()
	r.Register(WindowConfig{ID: "layers", Title: "Layers"})
	r.Register(WindowConfig{ID: "layers", Title: "Map Layers"})

	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}
	cfg, ok := r.Lookup("layers")
	if !ok || cfg.Title != "Map Layers" {
		t.Errorf("Lookup = %+v, want replaced entry", cfg)
	}
}

// Mirrors the open/reopen/close lifecycle end to end.
func TestLifecycleScenario(t *testing.T) {
	r := NewRegistry()
	r.Register(WindowConfig{
		ID:              "A",
		Title:           "A",
		DefaultGeometry: Rect{X: 100, Y: 100, Width: 400, Height: 300},
		Resizable:       true,
		Movable:         true,
	})
	m := NewManager(r, 1920, 1080, Limits{})

	m.Open("A")
	s, ok := m.State("A")
	if !ok {
		t.Fatal("A not open")
	}
	if s.Rect != (Rect{X: 100, Y: 100, Width: 400, Height: 300}) || s.ZIndex != 1001 {
		t.Errorf("state = %+v z=%d, want 100,100,400,300 z=1001", s.Rect, s.ZIndex)
	}

	m.Open("A")
	s2, _ := m.State("A")
	if s2.ZIndex <= s.ZIndex || s2.Minimized {
		t.Errorf("reopen: z=%d minimized=%v, want z>%d and restored", s2.ZIndex, s2.Minimized, s.ZIndex)
	}

	m.Close("A")
	if m.IsOpen("A") {
		t.Error("A still open after Close")
	}
	if _, ok := m.State("A"); ok {
		t.Error("state entry survives Close")
	}
	if m.Active() != "" {
		t.Errorf("active = %q, want empty", m.Active())
	}
}
