// Package model defines the presentation model renderers consume: the form
// heading copy, the ordered fields with their labels, placeholders, input
// types and defaults, and the rows that group fields side by side.
//
// The model is built from the embedded OpenAPI description (package openapi)
// and decorated with the UI schema (package uischema). It carries no
// validation state; values and errors travel separately in render options.
package model
