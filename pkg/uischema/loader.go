package uischema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks fsys and parses every JSON/YAML UI schema file. A nil fsys
// yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{operations: make(map[string]Operation)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uischema: read %s: %w", path, err)
		}
		return store.add(data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Load parses a single document.
func Load(data []byte, source string) (*Store, error) {
	store := &Store{operations: make(map[string]Operation)}
	if err := store.add(data, source); err != nil {
		return nil, err
	}
	return store, nil
}

// Default parses the embedded documents.
func Default() (*Store, error) {
	return LoadFS(EmbeddedFS())
}

// Operation returns the configuration for the supplied operation id.
func (s *Store) Operation(id string) (Operation, bool) {
	if s == nil {
		return Operation{}, false
	}
	op, ok := s.operations[id]
	return op, ok
}

// Empty reports whether the store holds any operations.
func (s *Store) Empty() bool {
	return s == nil || len(s.operations) == 0
}

type documentFile struct {
	Operations map[string]operationFile `json:"operations" yaml:"operations"`
}

type operationFile struct {
	Form   FormConfig             `json:"form" yaml:"form"`
	Rows   []RowConfig            `json:"rows" yaml:"rows"`
	Fields map[string]FieldConfig `json:"fields" yaml:"fields"`
}

func (s *Store) add(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}
	for opID, raw := range doc.Operations {
		id := strings.TrimSpace(opID)
		if id == "" {
			return fmt.Errorf("uischema: file %s defines an empty operation id", source)
		}
		if _, exists := s.operations[id]; exists {
			return fmt.Errorf("uischema: duplicate operation %q (file %s)", id, source)
		}
		op, err := normaliseOperation(raw, id, source)
		if err != nil {
			return err
		}
		s.operations[id] = op
	}
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("uischema: file %s is empty", source)
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("uischema: parse %s: %w", source, err)
	}
	return doc, nil
}

func normaliseOperation(raw operationFile, id, source string) (Operation, error) {
	op := Operation{
		ID:     id,
		Source: source,
		Form: FormConfig{
			Title:       sanitizePlainText(raw.Form.Title),
			Subtitle:    sanitizeRichText(raw.Form.Subtitle),
			Hint:        sanitizeRichText(raw.Form.Hint),
			SubmitLabel: sanitizePlainText(raw.Form.SubmitLabel),
			BackLabel:   sanitizePlainText(raw.Form.BackLabel),
			ReviewTitle: sanitizePlainText(raw.Form.ReviewTitle),
			Metadata:    raw.Form.Metadata,
		},
		Fields: make(map[string]FieldConfig, len(raw.Fields)),
	}

	for i, row := range raw.Rows {
		if len(row.Fields) == 0 {
			return Operation{}, fmt.Errorf("uischema: %s: operation %q row %d lists no fields", source, id, i)
		}
		fields := make([]string, 0, len(row.Fields))
		for _, name := range row.Fields {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				fields = append(fields, trimmed)
			}
		}
		op.Rows = append(op.Rows, RowConfig{Label: sanitizePlainText(row.Label), Fields: fields})
	}

	for name, cfg := range raw.Fields {
		key := strings.TrimSpace(name)
		if key == "" {
			return Operation{}, fmt.Errorf("uischema: %s: operation %q has a field with an empty name", source, id)
		}
		op.Fields[key] = FieldConfig{
			Label:       sanitizePlainText(cfg.Label),
			Placeholder: sanitizePlainText(cfg.Placeholder),
			HelpText:    sanitizeRichText(cfg.HelpText),
			InputType:   strings.ToLower(strings.TrimSpace(cfg.InputType)),
			Metadata:    cfg.Metadata,
		}
	}
	return op, nil
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
