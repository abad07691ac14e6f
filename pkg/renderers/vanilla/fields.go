package vanilla

import (
	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/render"
	"github.com/goliatone/go-regform/pkg/uischema"
)

type fieldView struct {
	Name        string
	ID          string
	Label       string
	Placeholder string
	InputType   string
	Value       string
	Error       string
	HelpText    string
	Required    bool
	Password    bool
}

type rowView struct {
	Label  string
	Split  bool
	Fields []fieldView
}

func buildRows(form model.FormModel, options render.RenderOptions) []rowView {
	layout := form.Layout()
	rows := make([]rowView, 0, len(layout))
	for _, row := range layout {
		view := rowView{Label: row.Label, Split: len(row.Fields) > 1}
		for _, name := range row.Fields {
			field, ok := form.Field(name)
			if !ok {
				continue
			}
			view.Fields = append(view.Fields, buildField(field, options))
		}
		rows = append(rows, view)
	}
	return rows
}

func buildField(field model.Field, options render.RenderOptions) fieldView {
	value, ok := options.Values[field.Name]
	if !ok {
		value = field.Default
	}
	inputType := field.InputType
	if inputType == "" {
		inputType = model.InputText
	}
	return fieldView{
		Name:        field.Name,
		ID:          controlID(field.Name),
		Label:       field.Label,
		Placeholder: field.Placeholder,
		InputType:   inputType,
		Value:       value,
		Error:       options.Errors[field.Name],
		HelpText:    uischema.HelpText(field),
		Required:    field.Required,
		Password:    inputType == model.InputPassword,
	}
}

func controlID(name string) string {
	return "regform-" + name
}
