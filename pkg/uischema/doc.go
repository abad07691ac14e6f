// Package uischema loads UI schema documents that overlay presentation copy
// and layout onto a form model: heading, subtitle and hint text, button
// labels, rows that place fields side by side, and per-field label,
// placeholder and help text overrides. Documents are JSON or YAML and keyed by
// operation id.
//
// Subtitle, hint and help text may carry inline markup, which is sanitised
// with bluemonday; labels and placeholders are reduced to plain text.
package uischema
