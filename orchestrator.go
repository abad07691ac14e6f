package regform

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/openapi"
	"github.com/goliatone/go-regform/pkg/orchestrator"
	"github.com/goliatone/go-regform/pkg/registration"
	"github.com/goliatone/go-regform/pkg/render"
)

// RenderOptions describes the per-request view state passed to renderers.
type RenderOptions = render.RenderOptions

// Snapshot is the cleaned copy of a submitted form.
type Snapshot = registration.Snapshot

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewEngine returns a form state engine that hands valid submissions to nav.
func NewEngine(nav registration.Navigator) *registration.Engine {
	return registration.NewEngine(nav)
}

// Validate checks one field value and returns its message, or "".
func Validate(name, value string) string {
	return registration.Validate(name, value)
}

// ParseForm builds the undecorated form model for operationID in doc.
func ParseForm(ctx context.Context, doc openapi.Document, operationID string) (model.FormModel, error) {
	return openapi.Parse(ctx, doc, operationID)
}

// RenderEntry renders a freshly mounted entry form with the named renderer.
// It is the simplest entry point for callers that just want the page.
func RenderEntry(ctx context.Context, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	engine := registration.NewEngine(nil)
	return orchestrator.New(options...).Render(ctx, orchestrator.Request{
		Renderer: rendererName,
		Options: render.RenderOptions{
			Values:        engine.Values().Map(),
			Errors:        engine.Errors(),
			SubmitEnabled: engine.Valid(),
		},
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme and variant choices are resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector, name, variant)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
