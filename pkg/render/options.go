package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-regform/pkg/navigation"
	"github.com/goliatone/go-regform/pkg/review"
)

// RenderOptions describe the per-request state a renderer draws on top of the
// form model.
type RenderOptions struct {
	// View selects the screen. An empty view renders the entry form.
	View navigation.View
	// Values holds the current field values keyed by field name.
	Values map[string]string
	// Errors holds inline messages keyed by field name. Empty messages are
	// ignored.
	Errors map[string]string
	// SubmitEnabled mirrors the engine's validity flag.
	SubmitEnabled bool
	// Review carries the page to draw when View is navigation.Review.
	Review *review.Page
	// Theme is the resolved theme configuration, if any.
	Theme *theme.RendererConfig
}

// ViewOrDefault returns the requested view, falling back to the entry form.
func (o RenderOptions) ViewOrDefault() navigation.View {
	if o.View == "" {
		return navigation.Entry
	}
	return o.View
}
