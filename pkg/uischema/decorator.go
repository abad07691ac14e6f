package uischema

import (
	"github.com/goliatone/go-regform/pkg/model"
)

const (
	helpTextMetadataKey    = "helpText"
	reviewTitleMetadataKey = "reviewTitle"
)

// Decorator applies UI schema overrides to a form model.
type Decorator struct {
	store *Store
}

var _ model.Decorator = (*Decorator)(nil)

// NewDecorator builds a Decorator backed by store. A nil or empty store makes
// it a no-op.
func NewDecorator(store *Store) *Decorator {
	return &Decorator{store: store}
}

// Decorate augments form with the overrides registered for its operation id.
func (d *Decorator) Decorate(form *model.FormModel) error {
	if d == nil || d.store.Empty() || form == nil {
		return nil
	}
	op, ok := d.store.Operation(form.OperationID)
	if !ok {
		return nil
	}

	applyFormConfig(form, op.Form)
	for _, row := range op.Rows {
		form.Rows = append(form.Rows, model.Row{
			Label:  row.Label,
			Fields: append([]string(nil), row.Fields...),
		})
	}
	for i := range form.Fields {
		if cfg, ok := op.Fields[form.Fields[i].Name]; ok {
			applyFieldConfig(&form.Fields[i], cfg)
		}
	}
	return nil
}

func applyFormConfig(form *model.FormModel, cfg FormConfig) {
	if cfg.Title != "" {
		form.Title = cfg.Title
	}
	if cfg.Subtitle != "" {
		form.Subtitle = cfg.Subtitle
	}
	if cfg.Hint != "" {
		form.Hint = cfg.Hint
	}
	if cfg.SubmitLabel != "" {
		form.SubmitLabel = cfg.SubmitLabel
	}
	if cfg.BackLabel != "" {
		form.BackLabel = cfg.BackLabel
	}
	form.Metadata = mergeStringMap(form.Metadata, cfg.Metadata)
	if cfg.ReviewTitle != "" {
		form.Metadata = mergeStringMap(form.Metadata, map[string]string{reviewTitleMetadataKey: cfg.ReviewTitle})
	}
}

func applyFieldConfig(field *model.Field, cfg FieldConfig) {
	if cfg.Label != "" {
		field.Label = cfg.Label
	}
	if cfg.Placeholder != "" {
		field.Placeholder = cfg.Placeholder
	}
	if cfg.InputType != "" {
		field.InputType = cfg.InputType
	}
	field.Metadata = mergeStringMap(field.Metadata, cfg.Metadata)
	if cfg.HelpText != "" {
		field.Metadata = mergeStringMap(field.Metadata, map[string]string{helpTextMetadataKey: cfg.HelpText})
	}
}

// ReviewTitle returns the review heading recorded on form, if any.
func ReviewTitle(form model.FormModel) string {
	return form.Metadata[reviewTitleMetadataKey]
}

// HelpText returns the sanitised help text recorded on field, if any.
func HelpText(field model.Field) string {
	return field.Metadata[helpTextMetadataKey]
}

func mergeStringMap(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
