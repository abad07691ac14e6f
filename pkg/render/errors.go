package render

import "errors"

var (
	// ErrRendererNotFound is returned by Registry.Get for unknown names.
	ErrRendererNotFound = errors.New("render: renderer not found")
	// ErrDuplicateRenderer is returned when a second renderer claims a name
	// already in use.
	ErrDuplicateRenderer = errors.New("render: renderer already registered")
	// ErrUnsupportedView is returned by renderers asked to draw a view they do
	// not know.
	ErrUnsupportedView = errors.New("render: unsupported view")
	// ErrMissingReview is returned when the review view is requested without a
	// page.
	ErrMissingReview = errors.New("render: review page is required")
)
