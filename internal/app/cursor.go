package app

import "github.com/Gaurav-Gosain/mapdesk/internal/wm"

// CursorLock scopes pointer feedback to one interaction session. The
// window manager acquires it when a drag or resize starts and releases
// it when the session ends, including when the window closes mid-drag,
// so the dock bar indicator can never stick.
type CursorLock struct {
	active bool
	phase  wm.Phase
	handle wm.Handle
}

// Acquire implements wm.InteractionLock.
func (c *CursorLock) Acquire(phase wm.Phase, handle wm.Handle) {
	c.active = true
	c.phase = phase
	c.handle = handle
}

// Release implements wm.InteractionLock.
func (c *CursorLock) Release() {
	c.active = false
	c.phase = wm.PhaseIdle
	c.handle = wm.HandleNone
}

// Active reports whether an interaction session holds the lock.
func (c *CursorLock) Active() bool { return c.active }

// Glyph returns the pointer indicator for the dock bar.
func (c *CursorLock) Glyph() string {
	if !c.active {
		return ""
	}
	if c.phase == wm.PhaseDragging {
		return "✥"
	}
	switch c.handle {
	case wm.HandleTopLeft, wm.HandleBottomRight:
		return "⤡"
	case wm.HandleTopRight, wm.HandleBottomLeft:
		return "⤢"
	case wm.HandleLeft, wm.HandleRight:
		return "↔"
	default:
		return "↕"
	}
}
