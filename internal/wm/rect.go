// Package wm implements the floating window manager core: a catalog of
// window kinds, a single-writer manager of open-window state, and the
// drag/resize/dock interaction state machine.
//
// The package is rendering-agnostic. Callers register opaque content
// providers, hand the manager a viewport size, and mutate window state
// only through the manager's methods. No method panics or returns an
// error across this surface: unknown ids degrade to no-ops and invalid
// geometry is silently clamped, so pointer tracking is never
// interrupted.
package wm

// Rect is a window rectangle in viewport units with the origin at the
// top-left corner of the viewport.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// DockSide identifies the viewport edge a window is docked to.
type DockSide int

// Dock sides.
const (
	DockNone DockSide = iota
	DockLeft
	DockRight
)

func (s DockSide) String() string {
	switch s {
	case DockLeft:
		return "left"
	case DockRight:
		return "right"
	default:
		return "none"
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampInto shifts r so it lies fully inside a width×height viewport.
// The rectangle's size is left untouched.
func clampInto(r Rect, width, height int) Rect {
	r.X = clamp(r.X, 0, width-r.Width)
	r.Y = clamp(r.Y, 0, height-r.Height)
	return r
}

// Ptr returns a pointer to v, for building a StatePatch inline.
func Ptr[T any](v T) *T { return &v }
