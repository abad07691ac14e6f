package navigation

import (
	"errors"
	"fmt"
)

// View identifies one of the screens a Router can activate.
type View string

const (
	// Entry is the editable form view.
	Entry View = "entry"
	// Review is the read-only view of a submitted snapshot.
	Review View = "review"
)

// ErrUnknownView is returned when navigating to a view the router does not
// know about.
var ErrUnknownView = errors.New("navigation: unknown view")

// Navigator is the contract views use to move between each other. A payload
// equal to the zero value of P is treated as absent.
type Navigator[P comparable] interface {
	NavigateTo(view View, payload P) error
	CurrentPayload() (P, bool)
	Current() View
}

// Listener observes view activations along with the delivered payload.
type Listener[P comparable] func(view View, payload P)

// Router is an in-memory Navigator. It starts on the entry view without a
// payload. Routers are not safe for concurrent use.
type Router[P comparable] struct {
	current   View
	payload   P
	listeners map[View][]Listener[P]
}

var _ Navigator[*struct{}] = (*Router[*struct{}])(nil)

// NewRouter returns a router positioned on the entry view.
func NewRouter[P comparable]() *Router[P] {
	return &Router[P]{
		current:   Entry,
		listeners: make(map[View][]Listener[P]),
	}
}

// NavigateTo activates view and hands it payload. Any payload delivered to the
// previous view is dropped.
func (r *Router[P]) NavigateTo(view View, payload P) error {
	if !Known(view) {
		return fmt.Errorf("%w: %q", ErrUnknownView, view)
	}
	r.current = view
	r.payload = payload
	for _, listener := range r.listeners[view] {
		listener(view, payload)
	}
	return nil
}

// Redirect activates view without a payload.
func (r *Router[P]) Redirect(view View) error {
	var zero P
	return r.NavigateTo(view, zero)
}

// CurrentPayload returns the payload delivered to the active view.
func (r *Router[P]) CurrentPayload() (P, bool) {
	var zero P
	if r.payload == zero {
		return zero, false
	}
	return r.payload, true
}

// Current reports the active view.
func (r *Router[P]) Current() View {
	return r.current
}

// OnEnter registers fn to run every time view is activated.
func (r *Router[P]) OnEnter(view View, fn Listener[P]) {
	if fn == nil {
		return
	}
	if r.listeners == nil {
		r.listeners = make(map[View][]Listener[P])
	}
	r.listeners[view] = append(r.listeners[view], fn)
}

// Known reports whether view is one of the supported views.
func Known(view View) bool {
	return view == Entry || view == Review
}
