package openapi

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed schemas/registration.yaml
var embeddedSchemas embed.FS

// RegistrationOperation is the operation id of the registration form.
const RegistrationOperation = "registerUser"

// Document wraps a raw OpenAPI payload and where it came from.
type Document struct {
	location string
	raw      []byte
}

// NewDocument constructs a Document, copying raw.
func NewDocument(location string, raw []byte) (Document, error) {
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}
	return Document{location: location, raw: append([]byte(nil), raw...)}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(location string, raw []byte) Document {
	doc, err := NewDocument(location, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// LoadFile reads a document from disk.
func LoadFile(path string) (Document, error) {
	clean := filepath.Clean(path)
	data, err := os.ReadFile(clean)
	if err != nil {
		return Document{}, fmt.Errorf("openapi: read %s: %w", clean, err)
	}
	return NewDocument(clean, data)
}

// Registration returns the embedded registration document.
func Registration() Document {
	data, err := embeddedSchemas.ReadFile("schemas/registration.yaml")
	if err != nil {
		panic(fmt.Sprintf("openapi: embedded registration schema: %v", err))
	}
	return MustNewDocument("embedded:registration.yaml", data)
}

// Location identifies where the document was read from.
func (d Document) Location() string {
	return d.location
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}
