package model

// Input types understood by the renderers.
const (
	InputText     = "text"
	InputEmail    = "email"
	InputPassword = "password"
	InputTel      = "tel"
)

// Field describes one form input.
type Field struct {
	Name        string            `json:"name"`
	Label       string            `json:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	InputType   string            `json:"inputType,omitempty"`
	Default     string            `json:"default,omitempty"`
	Description string            `json:"description,omitempty"`
	Required    bool              `json:"required"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Row groups fields rendered on the same line. A single-field row spans the
// full width.
type Row struct {
	Label  string   `json:"label,omitempty"`
	Fields []string `json:"fields"`
}

// FormModel is the top-level structure handed to renderers.
type FormModel struct {
	OperationID string            `json:"operationId"`
	Endpoint    string            `json:"endpoint,omitempty"`
	Method      string            `json:"method,omitempty"`
	Title       string            `json:"title,omitempty"`
	Subtitle    string            `json:"subtitle,omitempty"`
	Hint        string            `json:"hint,omitempty"`
	SubmitLabel string            `json:"submitLabel,omitempty"`
	BackLabel   string            `json:"backLabel,omitempty"`
	Fields      []Field           `json:"fields"`
	Rows        []Row             `json:"rows,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Field looks up a field by name.
func (f FormModel) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// FieldNames lists the field names in model order.
func (f FormModel) FieldNames() []string {
	names := make([]string, 0, len(f.Fields))
	for _, field := range f.Fields {
		names = append(names, field.Name)
	}
	return names
}

// Layout returns the rows to render. Fields not placed by any row get a row of
// their own, in field order, after the position of their predecessor.
func (f FormModel) Layout() []Row {
	placed := make(map[string]bool, len(f.Fields))
	rowsByLead := make(map[string]Row, len(f.Rows))
	for _, row := range f.Rows {
		var kept []string
		for _, name := range row.Fields {
			if _, ok := f.Field(name); !ok || placed[name] {
				continue
			}
			placed[name] = true
			kept = append(kept, name)
		}
		if len(kept) == 0 {
			continue
		}
		rowsByLead[kept[0]] = Row{Label: row.Label, Fields: kept}
	}

	layout := make([]Row, 0, len(f.Fields))
	for _, field := range f.Fields {
		if row, ok := rowsByLead[field.Name]; ok {
			layout = append(layout, row)
			continue
		}
		if placed[field.Name] {
			continue
		}
		layout = append(layout, Row{Fields: []string{field.Name}})
	}
	return layout
}
