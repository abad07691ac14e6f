// Package orchestrator wires the registration pipeline: OpenAPI document to
// form model, UI schema decoration, theme resolution and rendering.
package orchestrator
