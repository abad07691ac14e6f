package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-regform/pkg/model"
)

const (
	orderExtension       = "x-formgen-order"
	placeholderExtension = "x-formgen-placeholder"
	inputExtension       = "x-formgen-input"
)

// ErrOperationNotFound is returned when the document has no operation with
// the requested id.
var ErrOperationNotFound = errors.New("openapi: operation not found")

// Parse loads doc with kin-openapi and builds the form model for operationID.
func Parse(ctx context.Context, doc Document, operationID string) (model.FormModel, error) {
	if err := ctx.Err(); err != nil {
		return model.FormModel{}, err
	}
	if len(doc.raw) == 0 {
		return model.FormModel{}, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(doc.Raw())
	if err != nil {
		return model.FormModel{}, fmt.Errorf("openapi parser: load %s: %w", doc.location, err)
	}

	method, path, op := findOperation(spec, operationID)
	if op == nil {
		return model.FormModel{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	form := model.FormModel{
		OperationID: operationID,
		Endpoint:    path,
		Method:      method,
		Title:       op.Summary,
		Metadata:    map[string]string{"source": doc.location},
	}

	schema := requestSchema(op)
	if schema == nil {
		return model.FormModel{}, fmt.Errorf("openapi parser: operation %q has no request schema", operationID)
	}
	form.Fields = buildFields(schema)
	if len(form.Fields) == 0 {
		return model.FormModel{}, fmt.Errorf("openapi parser: operation %q declares no fields", operationID)
	}
	return form, nil
}

func findOperation(spec *openapi3.T, operationID string) (string, string, *openapi3.Operation) {
	if spec.Paths == nil {
		return "", "", nil
	}
	paths := spec.Paths.Map()
	keys := make([]string, 0, len(paths))
	for path := range paths {
		keys = append(keys, path)
	}
	sort.Strings(keys)

	for _, path := range keys {
		item := paths[path]
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op != nil && op.OperationID == operationID {
				return strings.ToUpper(method), path, op
			}
		}
	}
	return "", "", nil
}

func requestSchema(op *openapi3.Operation) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	content := op.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func buildFields(schema *openapi3.Schema) []model.Field {
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	fields := make([]model.Field, 0, len(schema.Properties))
	for _, name := range propertyOrder(schema) {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		fields = append(fields, buildField(name, ref.Value, required[name]))
	}
	return fields
}

func buildField(name string, prop *openapi3.Schema, required bool) model.Field {
	field := model.Field{
		Name:        name,
		Label:       strings.TrimSpace(prop.Title),
		Description: strings.TrimSpace(prop.Description),
		Required:    required,
		InputType:   inputType(prop),
		Placeholder: extensionString(prop.Extensions, placeholderExtension),
	}
	if field.Label == "" {
		field.Label = model.DefaultLabeler(name)
	}
	if prop.Default != nil {
		field.Default = fmt.Sprint(prop.Default)
	}
	if prop.Format != "" {
		field.Metadata = map[string]string{"format": prop.Format}
	}
	return field
}

func inputType(prop *openapi3.Schema) string {
	if override := extensionString(prop.Extensions, inputExtension); override != "" {
		return override
	}
	switch prop.Format {
	case "email":
		return model.InputEmail
	case "password":
		return model.InputPassword
	default:
		return model.InputText
	}
}

func propertyOrder(schema *openapi3.Schema) []string {
	seen := make(map[string]bool, len(schema.Properties))
	var order []string
	if raw, ok := schema.Extensions[orderExtension].([]any); ok {
		for _, entry := range raw {
			name, ok := entry.(string)
			if !ok || seen[name] {
				continue
			}
			if _, exists := schema.Properties[name]; !exists {
				continue
			}
			seen[name] = true
			order = append(order, name)
		}
	}

	var rest []string
	for name := range schema.Properties {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func extensionString(ext map[string]any, key string) string {
	if value, ok := ext[key].(string); ok {
		return strings.TrimSpace(value)
	}
	return ""
}
