package wm

// Phase is the interaction state of a controller.
type Phase int

// Interaction phases.
const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseResizing
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseResizing:
		return "resizing"
	default:
		return "idle"
	}
}

// Handle identifies one of the eight resize handles on a window frame.
type Handle int

// Resize handles.
const (
	HandleNone Handle = iota
	HandleTop
	HandleTopRight
	HandleRight
	HandleBottomRight
	HandleBottom
	HandleBottomLeft
	HandleLeft
	HandleTopLeft
)

func (h Handle) String() string {
	switch h {
	case HandleTop:
		return "top"
	case HandleTopRight:
		return "top-right"
	case HandleRight:
		return "right"
	case HandleBottomRight:
		return "bottom-right"
	case HandleBottom:
		return "bottom"
	case HandleBottomLeft:
		return "bottom-left"
	case HandleLeft:
		return "left"
	case HandleTopLeft:
		return "top-left"
	default:
		return "none"
	}
}

func (h Handle) touchesLeft() bool {
	return h == HandleLeft || h == HandleTopLeft || h == HandleBottomLeft
}

func (h Handle) touchesRight() bool {
	return h == HandleRight || h == HandleTopRight || h == HandleBottomRight
}

func (h Handle) touchesTop() bool {
	return h == HandleTop || h == HandleTopLeft || h == HandleTopRight
}

func (h Handle) touchesBottom() bool {
	return h == HandleBottom || h == HandleBottomLeft || h == HandleBottomRight
}

// InteractionLock scopes a document-wide interaction cursor and text
// selection suppression to an interaction session. Acquire is called
// when a session starts; Release is called exactly once when it ends,
// on every exit path including a window closing mid-session.
type InteractionLock interface {
	Acquire(phase Phase, handle Handle)
	Release()
}

type nopLock struct{}

func (nopLock) Acquire(Phase, Handle) {}
func (nopLock) Release()              {}

// session is the ephemeral record of the single active interaction. It
// is discarded when the interaction ends.
type session struct {
	owner         *Controller
	phase         Phase
	handle        Handle
	startX        int
	startY        int
	origin        Rect
	dockCandidate DockSide
}

// Controller translates pointer interaction on one open window into
// geometry commits against the Manager. At most one controller across
// the whole manager holds a non-idle session; starting a drag or resize
// while any session is active is ignored, so the session that captured
// the pointer keeps it (ignore-new).
type Controller struct {
	m  *Manager
	id string
}

// Controller returns an interaction controller for the window id. The
// renderer mounts one per open window.
func (m *Manager) Controller(id string) *Controller {
	return &Controller{m: m, id: id}
}

// WindowID returns the id of the window this controller drives.
func (c *Controller) WindowID() string { return c.id }

func (c *Controller) owns() *session {
	if s := c.m.session; s != nil && s.owner.id == c.id {
		return s
	}
	return nil
}

// Phase returns the controller's interaction phase. Controllers that do
// not own the active session are idle.
func (c *Controller) Phase() Phase {
	if s := c.owns(); s != nil {
		return s.phase
	}
	return PhaseIdle
}

// ActiveHandle returns the handle of an in-progress resize.
func (c *Controller) ActiveHandle() Handle {
	if s := c.owns(); s != nil {
		return s.handle
	}
	return HandleNone
}

// DockCandidate returns the dock side armed by an in-progress drag.
func (c *Controller) DockCandidate() DockSide {
	if s := c.owns(); s != nil {
		return s.dockCandidate
	}
	return DockNone
}

// StartDrag begins a drag session from pointer position (px, py).
// Returns false when the window is not movable, is docked, or another
// session is already active.
func (c *Controller) StartDrag(px, py int) bool {
	s, ok := c.m.states[c.id]
	if !ok || !s.Movable || s.Docked {
		return false
	}
	return c.m.beginSession(c, PhaseDragging, HandleNone, px, py, s.Rect)
}

// StartResize begins a resize session on the given handle. Returns
// false when the window is not resizable, is docked or maximized, or
// another session is already active.
func (c *Controller) StartResize(handle Handle, px, py int) bool {
	s, ok := c.m.states[c.id]
	if !ok || handle == HandleNone || !s.Resizable || s.Docked || s.Maximized {
		return false
	}
	return c.m.beginSession(c, PhaseResizing, handle, px, py, s.Rect)
}

// Move feeds a pointer position into the active session. Moves are
// processed strictly in delivery order; each commit is last-write-wins
// through Manager.Update.
func (c *Controller) Move(px, py int) {
	s := c.owns()
	if s == nil {
		return
	}
	switch s.phase {
	case PhaseDragging:
		c.moveDrag(s, px, py)
	case PhaseResizing:
		c.moveResize(s, px, py)
	}
}

// Release ends the active session at pointer position (px, py),
// committing either the armed dock side or the final geometry.
func (c *Controller) Release(px, py int) {
	s := c.owns()
	if s == nil {
		return
	}
	c.Move(px, py)
	dock := s.phase == PhaseDragging && s.dockCandidate != DockNone
	side := s.dockCandidate
	c.m.endSession()
	if dock {
		c.m.Dock(c.id, side)
	}
}

// Shutdown force-ends this controller's session without committing a
// pending dock candidate. The manager calls it when the window closes
// mid-session; the renderer calls it when unmounting a controller. The
// interaction lock is released either way.
func (c *Controller) Shutdown() {
	if c.owns() != nil {
		c.m.endSession()
	}
}

func (c *Controller) moveDrag(s *session, px, py int) {
	st, ok := c.m.states[c.id]
	if !ok {
		return
	}
	dx, dy := px-s.startX, py-s.startY
	x := clamp(s.origin.X+dx, 0, c.m.viewportW-st.Width)
	y := clamp(s.origin.Y+dy, 0, c.m.viewportH-st.Height)
	c.m.Update(c.id, StatePatch{X: Ptr(x), Y: Ptr(y)})

	switch {
	case px < c.m.limits.DockZone:
		s.dockCandidate = DockLeft
	case px > c.m.viewportW-c.m.limits.DockZone:
		s.dockCandidate = DockRight
	default:
		s.dockCandidate = DockNone
	}
}

// moveResize recomputes geometry so the edge opposite the active handle
// stays anchored at its session-start position. Minimum-size clamps
// re-anchor x/y so the fixed edge never drifts.
func (c *Controller) moveResize(s *session, px, py int) {
	dx, dy := px-s.startX, py-s.startY
	o := s.origin
	r := o
	lim := c.m.limits

	maxW := c.m.viewportW
	if lim.MaxWidth > 0 && lim.MaxWidth < maxW {
		maxW = lim.MaxWidth
	}
	maxH := c.m.viewportH
	if lim.MaxHeight > 0 && lim.MaxHeight < maxH {
		maxH = lim.MaxHeight
	}

	switch {
	case s.handle.touchesLeft():
		r.X = o.X + dx
		r.Width = o.Width - dx
		if r.Width < lim.MinWidth {
			r.Width = lim.MinWidth
			r.X = o.Right() - lim.MinWidth
		}
		if r.Width > maxW {
			r.Width = maxW
			r.X = o.Right() - maxW
		}
		if r.X < 0 {
			r.Width += r.X
			r.X = 0
		}
	case s.handle.touchesRight():
		r.Width = clamp(o.Width+dx, lim.MinWidth, maxW)
		if r.X+r.Width > c.m.viewportW {
			r.Width = c.m.viewportW - r.X
		}
	}

	switch {
	case s.handle.touchesTop():
		r.Y = o.Y + dy
		r.Height = o.Height - dy
		if r.Height < lim.MinHeight {
			r.Height = lim.MinHeight
			r.Y = o.Bottom() - lim.MinHeight
		}
		if r.Height > maxH {
			r.Height = maxH
			r.Y = o.Bottom() - maxH
		}
		if r.Y < 0 {
			r.Height += r.Y
			r.Y = 0
		}
	case s.handle.touchesBottom():
		r.Height = clamp(o.Height+dy, lim.MinHeight, maxH)
		if r.Y+r.Height > c.m.viewportH {
			r.Height = c.m.viewportH - r.Y
		}
	}

	c.m.Update(c.id, StatePatch{
		X:      Ptr(r.X),
		Y:      Ptr(r.Y),
		Width:  Ptr(r.Width),
		Height: Ptr(r.Height),
	})
}

func (m *Manager) beginSession(c *Controller, phase Phase, handle Handle, px, py int, origin Rect) bool {
	if m.session != nil {
		return false
	}
	m.session = &session{
		owner:  c,
		phase:  phase,
		handle: handle,
		startX: px,
		startY: py,
		origin: origin,
	}
	m.lock.Acquire(phase, handle)
	return true
}

func (m *Manager) endSession() {
	if m.session == nil {
		return
	}
	m.session = nil
	m.lock.Release()
}

func (m *Manager) endSessionFor(id string) {
	if m.session != nil && m.session.owner.id == id {
		m.endSession()
	}
}

// SessionActive reports whether any interaction session is in progress.
func (m *Manager) SessionActive() bool { return m.session != nil }

// SessionPhase returns the phase and handle of the active session, or
// PhaseIdle when none is in progress.
func (m *Manager) SessionPhase() (Phase, Handle) {
	if m.session == nil {
		return PhaseIdle, HandleNone
	}
	return m.session.phase, m.session.handle
}

// SessionWindow returns the id of the window owning the active session.
func (m *Manager) SessionWindow() string {
	if m.session == nil {
		return ""
	}
	return m.session.owner.id
}

// SessionDockCandidate returns the dock side armed by the active drag.
func (m *Manager) SessionDockCandidate() DockSide {
	if m.session == nil {
		return DockNone
	}
	return m.session.dockCandidate
}
