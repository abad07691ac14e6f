package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/openapi"
	"github.com/goliatone/go-regform/pkg/render"
	"github.com/goliatone/go-regform/pkg/renderers/tui"
	"github.com/goliatone/go-regform/pkg/renderers/vanilla"
	"github.com/goliatone/go-regform/pkg/uischema"
)

const defaultRendererName = vanilla.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits one.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithSchema replaces the embedded registration document.
func WithSchema(doc openapi.Document) Option {
	return func(o *Orchestrator) {
		o.document = doc
		o.documentSet = true
	}
}

// WithOperation selects the operation to build the form from.
func WithOperation(operationID string) Option {
	return func(o *Orchestrator) {
		if operationID != "" {
			o.operationID = operationID
		}
	}
}

// WithUISchemaFS supplies UI schema documents. Pass nil to disable the
// embedded defaults.
func WithUISchemaFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.uiSchemaFS = fsys
		o.uiSchemaSpecified = true
	}
}

// WithUIDecorators registers decorators that run after the UI schema.
func WithUIDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithThemeSelector resolves themes through selector. name and variant are
// the defaults for requests that do not pick one.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
		o.themeName = name
		o.themeVariant = variant
	}
}

// WithThemeFallbacks overrides the partials used when a theme defines none.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = fallbacks
	}
}

// Orchestrator builds the decorated form model once and renders views on
// demand. It is safe for concurrent use.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	initialiseErr   error

	document    openapi.Document
	documentSet bool
	operationID string

	uiSchemaFS        fs.FS
	uiSchemaSpecified bool
	decorators        []model.Decorator

	themeSelector  theme.ThemeSelector
	themeName      string
	themeVariant   string
	themeFallbacks map[string]string

	formMu    sync.Mutex
	form      model.FormModel
	formBuilt bool
}

// New constructs an Orchestrator. Missing dependencies default to the
// embedded schema, the embedded UI schema and a registry holding the vanilla
// and text renderers.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		operationID:     openapi.RegistrationOperation,
		themeFallbacks:  render.DefaultPartials(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one render.
type Request struct {
	// Renderer names the renderer. Empty uses the default renderer.
	Renderer string
	// ThemeName and ThemeVariant override the configured theme defaults.
	ThemeName    string
	ThemeVariant string
	// Options carries the view state. Options.Theme is filled in from the
	// selector when left nil.
	Options render.RenderOptions
}

// Form returns the decorated form model, building it on first use. Failed
// builds are not cached.
func (o *Orchestrator) Form(ctx context.Context) (model.FormModel, error) {
	if err := o.initialiseErr; err != nil {
		return model.FormModel{}, err
	}

	o.formMu.Lock()
	defer o.formMu.Unlock()

	if o.formBuilt {
		return o.form, nil
	}
	form, err := o.buildForm(ctx)
	if err != nil {
		return model.FormModel{}, err
	}
	o.form = form
	o.formBuilt = true
	return form, nil
}

// Render draws a view of the form with the requested renderer.
func (o *Orchestrator) Render(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	form, err := o.Form(ctx)
	if err != nil {
		return nil, err
	}
	renderer, err := o.Renderer(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := req.Options
	if options.Theme == nil {
		cfg, err := o.resolveTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		options.Theme = cfg
	}

	output, err := renderer.Render(ctx, form, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Renderer resolves name, falling back to the default renderer when empty.
func (o *Orchestrator) Renderer(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}
	target := name
	if target == "" {
		target = o.defaultRenderer
	}
	renderer, err := o.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) buildForm(ctx context.Context) (model.FormModel, error) {
	form, err := openapi.Parse(ctx, o.document, o.operationID)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("orchestrator: build form model: %w", err)
	}
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(&form); err != nil {
			return model.FormModel{}, fmt.Errorf("orchestrator: decorate form: %w", err)
		}
	}
	return form, nil
}

func (o *Orchestrator) resolveTheme(name, variant string) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	if name == "" {
		name = o.themeName
	}
	if variant == "" {
		variant = o.themeVariant
	}
	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	if selection == nil {
		return nil, nil
	}
	cfg := selection.RendererTheme(o.themeFallbacks)
	return &cfg, nil
}

func (o *Orchestrator) applyDefaults() {
	if !o.documentSet {
		o.document = openapi.Registration()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		html, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		o.registry.MustRegister(html)
		o.registry.MustRegister(tui.NewRenderer())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	o.ensureUIDecorator()
}

// ensureUIDecorator puts the UI schema decorator ahead of caller decorators.
func (o *Orchestrator) ensureUIDecorator() {
	if !o.uiSchemaSpecified && o.uiSchemaFS == nil {
		o.uiSchemaFS = uischema.EmbeddedFS()
	}
	if o.uiSchemaFS == nil {
		return
	}

	store, err := uischema.LoadFS(o.uiSchemaFS)
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: load ui schema: %w", err)
		return
	}
	if store.Empty() {
		return
	}
	o.decorators = append([]model.Decorator{uischema.NewDecorator(store)}, o.decorators...)
}
