package wm

import (
	"github.com/google/uuid"
)

// Limits holds the geometry tunables of a Manager. The defaults mirror
// the pixel values of the browser build; the TUI front end passes
// cell-scaled values instead.
type Limits struct {
	// CascadeStep is the offset added per already-open window to both
	// axes of a newly opened window.
	CascadeStep int

	// DockZone is the pointer distance from a viewport edge that arms a
	// dock candidate during a drag.
	DockZone int

	// DockWidth is the width of a committed dock slab.
	DockWidth int

	// MinWidth and MinHeight bound resizing from below.
	MinWidth  int
	MinHeight int

	// MaxWidth and MaxHeight bound resizing from above. Zero means
	// bounded only by the viewport.
	MaxWidth  int
	MaxHeight int

	// DefaultOrigin and DefaultSize apply to kinds registered without a
	// default geometry.
	DefaultOriginX int
	DefaultOriginY int
	DefaultWidth   int
	DefaultHeight  int

	// ZBase seeds the z counter; the first opened window gets ZBase+1.
	ZBase int
}

// DefaultLimits returns the stock limits.
func DefaultLimits() Limits {
	return Limits{
		CascadeStep:    30,
		DockZone:       200,
		DockWidth:      350,
		MinWidth:       150,
		MinHeight:      100,
		DefaultOriginX: 100,
		DefaultOriginY: 100,
		DefaultWidth:   400,
		DefaultHeight:  300,
		ZBase:          1000,
	}
}

// WindowState is the mutable per-instance state of an open window.
// Callers receive copies; only the Manager mutates the stored records.
type WindowState struct {
	// ID is the instance id. It equals Kind unless the kind allows
	// multiple instances, in which case a unique suffix is appended.
	ID    string
	Kind  string
	Title string

	Rect

	Minimized bool
	Maximized bool
	Docked    bool
	DockSide  DockSide
	ZIndex    int
	Resizable bool
	Movable   bool

	// floating geometry captured before maximize or dock, restored
	// exactly on restore/undock
	saved    Rect
	hasSaved bool
}

// StatePatch is a partial update applied by Manager.Update. Nil fields
// are left unchanged.
type StatePatch struct {
	X         *int
	Y         *int
	Width     *int
	Height    *int
	Title     *string
	Minimized *bool
	Maximized *bool
	Docked    *bool
	DockSide  *DockSide
}

// Manager is the single source of truth for open windows: which ids are
// open, their state, stacking order, and the active window. All
// mutation goes through its methods.
type Manager struct {
	registry *Registry
	limits   Limits

	viewportW int
	viewportH int

	states    map[string]*WindowState
	openOrder []string
	active    string
	z         int

	// the single global interaction session, nil while idle
	session *session
	lock    InteractionLock
}

// NewManager returns a manager over registry with the given viewport
// size. A zero Limits value falls back to DefaultLimits.
func NewManager(registry *Registry, viewportW, viewportH int, limits Limits) *Manager {
	if limits == (Limits{}) {
		limits = DefaultLimits()
	}
	return &Manager{
		registry:  registry,
		limits:    limits,
		viewportW: viewportW,
		viewportH: viewportH,
		states:    make(map[string]*WindowState),
		z:         limits.ZBase,
		lock:      nopLock{},
	}
}

// SetInteractionLock installs the scoped cursor/selection lock acquired
// for the duration of every interaction session. A nil lock disables
// locking.
func (m *Manager) SetInteractionLock(lock InteractionLock) {
	if lock == nil {
		lock = nopLock{}
	}
	m.lock = lock
}

// Limits returns the manager's geometry tunables.
func (m *Manager) Limits() Limits { return m.limits }

// Viewport returns the current viewport size.
func (m *Manager) Viewport() (width, height int) {
	return m.viewportW, m.viewportH
}

func (m *Manager) nextZ() int {
	m.z++
	return m.z
}

// Open opens a window of the registered kind and returns its instance
// id. Opening an unregistered kind is a no-op returning "". Opening a
// kind that disallows multiple instances while one is open behaves
// exactly like Raise on the existing instance.
func (m *Manager) Open(kind string) string {
	cfg, ok := m.registry.Lookup(kind)
	if !ok {
		return ""
	}

	if !cfg.AllowMultiple {
		if _, open := m.states[kind]; open {
			m.Raise(kind)
			return kind
		}
	}

	id := kind
	if cfg.AllowMultiple {
		id = kind + "-" + uuid.NewString()[:8]
	}

	base := cfg.DefaultGeometry
	if base == (Rect{}) {
		base.X = m.limits.DefaultOriginX
		base.Y = m.limits.DefaultOriginY
	}
	if base.Width <= 0 {
		base.Width = m.limits.DefaultWidth
	}
	if base.Height <= 0 {
		base.Height = m.limits.DefaultHeight
	}

	offset := m.limits.CascadeStep * len(m.openOrder)
	base.X += offset
	base.Y += offset

	base.Width = m.clampWidth(base.Width)
	base.Height = m.clampHeight(base.Height)
	base = clampInto(base, m.viewportW, m.viewportH)

	state := &WindowState{
		ID:        id,
		Kind:      kind,
		Title:     cfg.Title,
		Rect:      base,
		ZIndex:    m.nextZ(),
		Resizable: cfg.Resizable,
		Movable:   cfg.Movable,
	}
	m.states[id] = state
	m.openOrder = append(m.openOrder, id)
	m.active = id
	return id
}

// Close removes the window. If it was active, the most recently opened
// remaining window becomes active. Unknown ids are a no-op.
func (m *Manager) Close(id string) {
	if _, ok := m.states[id]; !ok {
		return
	}
	m.endSessionFor(id)
	delete(m.states, id)
	for i, openID := range m.openOrder {
		if openID == id {
			m.openOrder = append(m.openOrder[:i], m.openOrder[i+1:]...)
			break
		}
	}
	if m.active == id {
		m.active = ""
		if n := len(m.openOrder); n > 0 {
			m.active = m.openOrder[n-1]
		}
	}
}

// Update merges a partial patch into the window's state. Geometry is
// clamped, never rejected. Unknown ids are a no-op; this keeps commit
// callbacks safe against races with Close.
func (m *Manager) Update(id string, patch StatePatch) {
	s, ok := m.states[id]
	if !ok {
		return
	}

	if patch.Title != nil {
		s.Title = *patch.Title
	}
	if patch.Minimized != nil {
		s.Minimized = *patch.Minimized
		if s.Minimized && m.active == id {
			m.active = m.mostRecentVisible()
		}
	}
	if patch.Maximized != nil {
		if *patch.Maximized {
			m.maximize(s)
		} else if s.Maximized {
			m.restore(s)
		}
	}
	if patch.DockSide != nil && patch.Docked == nil {
		m.dock(s, *patch.DockSide)
	}
	if patch.Docked != nil {
		if *patch.Docked {
			side := s.DockSide
			if patch.DockSide != nil {
				side = *patch.DockSide
			}
			if side == DockNone {
				side = DockLeft
			}
			m.dock(s, side)
		} else if s.Docked {
			m.undock(s)
		}
	}

	if patch.X != nil {
		s.X = *patch.X
	}
	if patch.Y != nil {
		s.Y = *patch.Y
	}
	if patch.Width != nil {
		s.Width = m.clampWidth(*patch.Width)
	}
	if patch.Height != nil {
		s.Height = m.clampHeight(*patch.Height)
	}
	if patch.X != nil || patch.Y != nil || patch.Width != nil || patch.Height != nil {
		if s.Docked {
			// docked geometry is derived, not stored
			m.applyDockGeometry(s)
		} else {
			s.Rect = clampInto(s.Rect, m.viewportW, m.viewportH)
		}
	}
}

// Raise moves the window to the top of the stack, clears its minimized
// flag, and makes it active.
func (m *Manager) Raise(id string) {
	s, ok := m.states[id]
	if !ok {
		return
	}
	s.ZIndex = m.nextZ()
	s.Minimized = false
	m.active = id
}

// MinimizeAll minimizes every open window and clears the active id.
// Each window's flag remains independently restorable.
func (m *Manager) MinimizeAll() {
	for _, s := range m.states {
		s.Minimized = true
	}
	m.active = ""
}

// Maximize fills the viewport with the window, clearing any docking.
// The prior floating geometry is snapshotted for exact restore.
func (m *Manager) Maximize(id string) {
	if s, ok := m.states[id]; ok {
		m.maximize(s)
	}
}

// Restore exits maximized mode, recovering the exact pre-maximize
// rectangle when one was captured.
func (m *Manager) Restore(id string) {
	if s, ok := m.states[id]; ok && s.Maximized {
		m.restore(s)
	}
}

// Dock snaps the window to a fixed-width, full-height slab on the given
// side. DockNone undocks.
func (m *Manager) Dock(id string, side DockSide) {
	if s, ok := m.states[id]; ok {
		m.dock(s, side)
	}
}

// Undock returns a docked window to floating geometry: the snapshotted
// rectangle when available, otherwise the kind's default, clamped into
// the viewport.
func (m *Manager) Undock(id string) {
	if s, ok := m.states[id]; ok && s.Docked {
		m.undock(s)
	}
}

// SetViewport resizes the viewport, reclamping floating windows and
// rederiving docked and maximized geometry.
func (m *Manager) SetViewport(width, height int) {
	m.viewportW = width
	m.viewportH = height
	for _, s := range m.states {
		switch {
		case s.Docked:
			m.applyDockGeometry(s)
		case s.Maximized:
			s.Rect = Rect{Width: width, Height: height}
		default:
			s.Width = m.clampWidth(s.Width)
			s.Height = m.clampHeight(s.Height)
			s.Rect = clampInto(s.Rect, width, height)
		}
	}
}

// IsOpen reports whether id refers to an open instance, or whether any
// instance of the kind id is open.
func (m *Manager) IsOpen(id string) bool {
	if _, ok := m.states[id]; ok {
		return true
	}
	for _, s := range m.states {
		if s.Kind == id {
			return true
		}
	}
	return false
}

// IsMinimized reports whether the window (or every open instance of the
// kind) is minimized. Unknown ids report false.
func (m *Manager) IsMinimized(id string) bool {
	if s, ok := m.states[id]; ok {
		return s.Minimized
	}
	found := false
	for _, s := range m.states {
		if s.Kind == id {
			if !s.Minimized {
				return false
			}
			found = true
		}
	}
	return found
}

// State returns a copy of the window's state.
func (m *Manager) State(id string) (WindowState, bool) {
	if s, ok := m.states[id]; ok {
		return *s, true
	}
	return WindowState{}, false
}

// States returns copies of all open window states in open order.
func (m *Manager) States() []WindowState {
	out := make([]WindowState, 0, len(m.openOrder))
	for _, id := range m.openOrder {
		out = append(out, *m.states[id])
	}
	return out
}

// OpenIDs returns the open instance ids in open order.
func (m *Manager) OpenIDs() []string {
	out := make([]string, len(m.openOrder))
	copy(out, m.openOrder)
	return out
}

// OpenCount returns the number of open windows.
func (m *Manager) OpenCount() int { return len(m.openOrder) }

// Active returns the active instance id, or "" when none.
func (m *Manager) Active() string { return m.active }

// Registered returns the registry's catalog in registration order.
func (m *Manager) Registered() []WindowConfig { return m.registry.Registered() }

func (m *Manager) mostRecentVisible() string {
	for i := len(m.openOrder) - 1; i >= 0; i-- {
		if s := m.states[m.openOrder[i]]; !s.Minimized {
			return s.ID
		}
	}
	return ""
}

func (m *Manager) maximize(s *WindowState) {
	if s.Maximized {
		return
	}
	if !s.Docked {
		s.saved = s.Rect
		s.hasSaved = true
	}
	s.Maximized = true
	s.Docked = false
	s.DockSide = DockNone
	s.Rect = Rect{Width: m.viewportW, Height: m.viewportH}
}

func (m *Manager) restore(s *WindowState) {
	s.Maximized = false
	s.Rect = m.floatingRect(s)
}

func (m *Manager) dock(s *WindowState, side DockSide) {
	if side == DockNone {
		if s.Docked {
			m.undock(s)
		}
		return
	}
	if !s.Docked && !s.Maximized {
		s.saved = s.Rect
		s.hasSaved = true
	}
	s.Docked = true
	s.DockSide = side
	s.Maximized = false
	m.applyDockGeometry(s)
}

func (m *Manager) undock(s *WindowState) {
	s.Docked = false
	s.DockSide = DockNone
	s.Rect = m.floatingRect(s)
}

// floatingRect recovers a window's floating geometry: the snapshot when
// one exists, otherwise the kind's default, always inside the viewport.
func (m *Manager) floatingRect(s *WindowState) Rect {
	r := s.saved
	if !s.hasSaved {
		r = Rect{
			X:      m.limits.DefaultOriginX,
			Y:      m.limits.DefaultOriginY,
			Width:  m.limits.DefaultWidth,
			Height: m.limits.DefaultHeight,
		}
		if cfg, ok := m.registry.Lookup(s.Kind); ok && cfg.DefaultGeometry != (Rect{}) {
			r = cfg.DefaultGeometry
		}
	}
	r.Width = m.clampWidth(r.Width)
	r.Height = m.clampHeight(r.Height)
	return clampInto(r, m.viewportW, m.viewportH)
}

func (m *Manager) applyDockGeometry(s *WindowState) {
	width := m.limits.DockWidth
	if width > m.viewportW {
		width = m.viewportW
	}
	x := 0
	if s.DockSide == DockRight {
		x = m.viewportW - width
	}
	s.Rect = Rect{X: x, Y: 0, Width: width, Height: m.viewportH}
}

func (m *Manager) clampWidth(w int) int {
	maxW := m.viewportW
	if m.limits.MaxWidth > 0 && m.limits.MaxWidth < maxW {
		maxW = m.limits.MaxWidth
	}
	return clamp(w, m.limits.MinWidth, maxW)
}

func (m *Manager) clampHeight(h int) int {
	maxH := m.viewportH
	if m.limits.MaxHeight > 0 && m.limits.MaxHeight < maxH {
		maxH = m.limits.MaxHeight
	}
	return clamp(h, m.limits.MinHeight, maxH)
}
