package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/navigation"
	"github.com/goliatone/go-regform/pkg/render"
	rendertemplate "github.com/goliatone/go-regform/pkg/render/template"
	"github.com/goliatone/go-regform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-regform/pkg/review"
)

// Name is the registry name of the HTML renderer.
const Name = "vanilla"

const (
	defaultSubmitLabel = "Submit"
	defaultBackLabel   = "Back"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	routes           Routes
}

// Routes are the URLs the rendered pages post to.
type Routes struct {
	// Submit receives the entry form.
	Submit string
	// Validate is the prefix of the per-field validation endpoint; the field
	// name is appended as a path segment.
	Validate string
	// Back leaves the review page.
	Back string
	// Assets is where the stylesheet and script are served.
	Assets string
}

// DefaultRoutes matches the routes mounted by the HTTP server.
func DefaultRoutes() Routes {
	return Routes{
		Submit:   "/",
		Validate: "/api/fields",
		Back:     "/review/back",
		Assets:   "/assets",
	}
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithRoutes overrides the URLs written into the pages. Empty entries keep
// their defaults.
func WithRoutes(routes Routes) Option {
	return func(cfg *config) {
		if routes.Submit != "" {
			cfg.routes.Submit = routes.Submit
		}
		if routes.Validate != "" {
			cfg.routes.Validate = routes.Validate
		}
		if routes.Back != "" {
			cfg.routes.Back = routes.Back
		}
		if routes.Assets != "" {
			cfg.routes.Assets = routes.Assets
		}
	}
}

// Renderer draws the entry and review pages as HTML.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	routes    Routes
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), routes: DefaultRoutes()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, routes: cfg.routes}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render draws the view selected by options.
func (r *Renderer) Render(_ context.Context, form model.FormModel, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	data := r.pageData(options)
	var partial string
	switch view := options.ViewOrDefault(); view {
	case navigation.Entry:
		partial = render.PartialEntry
		data["page_title"] = form.Title
		data["form"] = form
		data["rows"] = buildRows(form, options)
		data["submit_enabled"] = options.SubmitEnabled
		data["submit_label"] = labelOr(form.SubmitLabel, defaultSubmitLabel)
		data["action"] = r.routes.Submit
		data["validate_url"] = r.routes.Validate
	case navigation.Review:
		if options.Review == nil {
			return nil, fmt.Errorf("vanilla renderer: %w", render.ErrMissingReview)
		}
		partial = render.PartialReview
		page := *options.Review
		if page.Title == "" {
			page.Title = review.DefaultTitle
		}
		data["page_title"] = page.Title
		data["review"] = page
		data["back_label"] = labelOr(form.BackLabel, defaultBackLabel)
		data["back_action"] = r.routes.Back
	default:
		return nil, fmt.Errorf("vanilla renderer: %w: %q", render.ErrUnsupportedView, view)
	}

	result, err := r.templates.RenderTemplate(render.PartialName(options.Theme, partial), data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) pageData(options render.RenderOptions) map[string]any {
	data := map[string]any{
		"stylesheet_url": render.AssetURL(options.Theme, render.AssetStylesheet, r.routes.Assets+"/"+StylesheetName),
		"script_url":     render.AssetURL(options.Theme, render.AssetScript, r.routes.Assets+"/"+ScriptName),
	}
	if cfg := options.Theme; cfg != nil {
		data["theme_name"] = cfg.Theme
		data["theme_variant"] = cfg.Variant
		if len(cfg.CSSVars) > 0 {
			data["theme_vars"] = cfg.CSSVars
		}
	}
	return data
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
