// Package registration owns the registration form state: the ordered field
// values, the per-field error messages and the derived submit eligibility.
//
// Validation is a pure function of a field name and its raw value. The Engine
// applies it on every change and again over the whole form on submit; a
// submission that produces no messages is normalised into an immutable
// Snapshot and handed to a Navigator, which activates the review view.
//
// Engines are not safe for concurrent use. Front ends serialise input events
// before they reach Change or Submit.
package registration
