// Package op implements the interactive editing operations that mutate or
// query a layout tree: divider resizing, hover split previews, margin
// adjustment, preset shortcuts and window-snap destination tracking.
//
// Every operation consumes the same abstract input events and returns the
// same result protocol. A caller owns one tree per display and an ordered
// list of operations; each incoming event is offered to the operations in
// priority order until one reports handled. Everything runs synchronously on
// the caller's event thread; the tree is the only shared mutable resource.
package op

import "github.com/gridsnap/gridsnap/internal/layout"

// Modifier is a bitmask of held modifier keys.
type Modifier uint8

const (
	// ModShift is the shift modifier.
	ModShift Modifier = 1 << iota
	// ModCtrl is the control modifier.
	ModCtrl
	// ModAlt is the alt/option modifier.
	ModAlt
	// ModSuper is the super/command/windows modifier.
	ModSuper
)

// Has reports whether any modifier of the set is held.
func (m Modifier) Has(set Modifier) bool { return m&set != 0 }

// Button identifies a pointer button.
type Button int

const (
	// ButtonNone means the event carries no button.
	ButtonNone Button = iota
	// ButtonPrimary is the primary (left) button.
	ButtonPrimary
	// ButtonSecondary is the secondary (right) button.
	ButtonSecondary
)

// Key identifies an abstract key. The editor maps whatever its input source
// produces onto these; operations only ever compare them.
type Key rune

// KeyNone means the event carries no key.
const KeyNone Key = 0

// Event is the abstract input event every operation consumes, regardless of
// source. Positions are in the same device units as the tree's rectangles.
type Event struct {
	X, Y   int
	Mods   Modifier
	Button Button
	Key    Key
}

// Result signals whether an operation consumed an event and whether the
// caller needs to repaint. The zero value means "not handled".
type Result struct {
	Handled bool
	Redraw  bool
}

// Handled returns a consumed-event result.
func Handled(redraw bool) Result { return Result{Handled: true, Redraw: redraw} }

// Handler is the contract shared by all operations. Implementations must be
// side-effect-free on any path that returns a zero Result, so that offering
// an event down the priority order cannot disturb the tree.
type Handler interface {
	ButtonPress(ev Event) Result
	ButtonRelease(ev Event) Result
	Motion(ev Event) Result
	KeyPress(ev Event) Result
	KeyRelease(ev Event) Result
	Cancel() Result
}

// NopHandler is a Handler that ignores everything. Operations embed it and
// override only the events they care about.
type NopHandler struct{}

// ButtonPress ignores the event.
func (NopHandler) ButtonPress(Event) Result { return Result{} }

// ButtonRelease ignores the event.
func (NopHandler) ButtonRelease(Event) Result { return Result{} }

// Motion ignores the event.
func (NopHandler) Motion(Event) Result { return Result{} }

// KeyPress ignores the event.
func (NopHandler) KeyPress(Event) Result { return Result{} }

// KeyRelease ignores the event.
func (NopHandler) KeyRelease(Event) Result { return Result{} }

// Cancel does nothing.
func (NopHandler) Cancel() Result { return Result{} }

// TreeFunc resolves the tree an operation works on. Operations hold a
// resolver instead of the root itself so the caller can swap trees (preset
// apply, display switch) without rebuilding its operations.
type TreeFunc func() *layout.Node

// fracAt converts a pointer position into a display fraction along the given
// axis of the root rectangle.
func fracAt(root *layout.Node, axis layout.Axis, x, y int) float64 {
	if axis == layout.Row {
		return float64(y-root.Rect.Y) / float64(root.Rect.Height)
	}
	return float64(x-root.Rect.X) / float64(root.Rect.Width)
}

// Dispatcher offers events to an ordered list of handlers; the first handled
// result suppresses the rest for that event.
type Dispatcher struct {
	handlers []Handler
}

// NewDispatcher builds a dispatcher over the handlers in priority order.
func NewDispatcher(handlers ...Handler) *Dispatcher {
	return &Dispatcher{handlers: handlers}
}

// ButtonPress offers a button press down the priority order.
func (d *Dispatcher) ButtonPress(ev Event) Result {
	return d.offer(func(h Handler) Result { return h.ButtonPress(ev) })
}

// ButtonRelease offers a button release down the priority order.
func (d *Dispatcher) ButtonRelease(ev Event) Result {
	return d.offer(func(h Handler) Result { return h.ButtonRelease(ev) })
}

// Motion offers a pointer motion down the priority order.
func (d *Dispatcher) Motion(ev Event) Result {
	return d.offer(func(h Handler) Result { return h.Motion(ev) })
}

// KeyPress offers a key press down the priority order.
func (d *Dispatcher) KeyPress(ev Event) Result {
	return d.offer(func(h Handler) Result { return h.KeyPress(ev) })
}

// KeyRelease offers a key release down the priority order.
func (d *Dispatcher) KeyRelease(ev Event) Result {
	return d.offer(func(h Handler) Result { return h.KeyRelease(ev) })
}

// CancelAll cancels every handler, unconditionally. The result aggregates
// whether anything was cancelled and whether a repaint is needed.
func (d *Dispatcher) CancelAll() Result {
	var agg Result
	for _, h := range d.handlers {
		r := h.Cancel()
		agg.Handled = agg.Handled || r.Handled
		agg.Redraw = agg.Redraw || r.Redraw
	}
	return agg
}

func (d *Dispatcher) offer(fn func(Handler) Result) Result {
	for _, h := range d.handlers {
		if r := fn(h); r.Handled {
			return r
		}
	}
	return Result{}
}
