package registration

import (
	"fmt"

	"github.com/goliatone/go-regform/pkg/navigation"
)

// Navigator receives the cleaned snapshot of a valid submission.
// navigation.Router[*Snapshot] satisfies it.
type Navigator interface {
	NavigateTo(view navigation.View, payload *Snapshot) error
}

// Engine tracks one mounted entry form.
type Engine struct {
	nav    Navigator
	data   FormData
	errors ErrorMap
	valid  bool
}

// NewEngine returns an engine seeded with the default form values. nav may be
// nil, in which case valid submissions are reported but not handed off.
func NewEngine(nav Navigator) *Engine {
	e := &Engine{
		nav:    nav,
		data:   NewFormData(),
		errors: make(ErrorMap),
	}
	e.recompute()
	return e
}

// Change records a new raw value for name, validates it and refreshes the
// submit eligibility.
func (e *Engine) Change(name, raw string) {
	value := NormalizeInput(name, raw)
	e.data.Set(name, value)
	e.errors[name] = Validate(name, value)
	e.recompute()
}

// Submit validates every field. When no field fails it hands the cleaned
// snapshot to the navigator and returns true. Otherwise the fresh error map
// replaces the previous one and no navigation happens.
func (e *Engine) Submit() (bool, error) {
	e.errors = ValidateAll(e.data)
	e.recompute()
	if len(e.errors) > 0 {
		return false, nil
	}

	snapshot := e.Snapshot()
	if e.nav == nil {
		return true, nil
	}
	if err := e.nav.NavigateTo(navigation.Review, snapshot); err != nil {
		return false, fmt.Errorf("registration: hand off snapshot: %w", err)
	}
	return true, nil
}

// Snapshot returns the cleaned copy of the current values: phone and aadhaar
// reduced to their digits.
func (e *Engine) Snapshot() *Snapshot {
	cleaned := e.data.Clone()
	for _, name := range []string{FieldPhone, FieldAadhaar} {
		if value, ok := cleaned.Get(name); ok {
			cleaned.Set(name, Digits(value))
		}
	}
	return NewSnapshot(cleaned)
}

// Valid reports whether the submit control should be enabled: every field is
// non-blank and no field carries an error message.
func (e *Engine) Valid() bool {
	return e.valid
}

// Value returns the stored value for name.
func (e *Engine) Value(name string) string {
	value, _ := e.data.Get(name)
	return value
}

// Error returns the current message for name, or "".
func (e *Engine) Error(name string) string {
	return e.errors[name]
}

// Values returns a copy of the form values.
func (e *Engine) Values() FormData {
	return e.data.Clone()
}

// Errors returns a copy of the error map.
func (e *Engine) Errors() ErrorMap {
	return e.errors.Clone()
}

func (e *Engine) recompute() {
	e.valid = e.data.allFilled() && e.errors.Empty()
}
