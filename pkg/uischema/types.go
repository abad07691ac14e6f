package uischema

// Store keeps the parsed operations from UI schema documents. It is safe for
// concurrent readers once built.
type Store struct {
	operations map[string]Operation
}

// Operation holds the overrides for one form.
type Operation struct {
	ID     string
	Source string
	Form   FormConfig
	Rows   []RowConfig
	Fields map[string]FieldConfig
}

// FormConfig captures form level copy.
type FormConfig struct {
	Title       string            `json:"title" yaml:"title"`
	Subtitle    string            `json:"subtitle" yaml:"subtitle"`
	Hint        string            `json:"hint" yaml:"hint"`
	SubmitLabel string            `json:"submitLabel" yaml:"submitLabel"`
	BackLabel   string            `json:"backLabel" yaml:"backLabel"`
	ReviewTitle string            `json:"reviewTitle" yaml:"reviewTitle"`
	Metadata    map[string]string `json:"metadata" yaml:"metadata"`
}

// RowConfig places fields on one line.
type RowConfig struct {
	Label  string   `json:"label" yaml:"label"`
	Fields []string `json:"fields" yaml:"fields"`
}

// FieldConfig customises a single field.
type FieldConfig struct {
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	HelpText    string            `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	InputType   string            `json:"inputType,omitempty" yaml:"inputType,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
