// Package regform is the top-level entry point for the registration form: it
// re-exports the orchestrator constructor, the form state engine and the
// embedded templates and assets so simple callers need a single import.
package regform
