package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/openapi"
	"github.com/goliatone/go-regform/pkg/registration"
	"github.com/goliatone/go-regform/pkg/uischema"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// RegistrationForm parses the embedded registration document and applies the
// embedded UI schema, failing the test on error.
func RegistrationForm(t *testing.T) model.FormModel {
	t.Helper()

	form, err := openapi.Parse(Context(), openapi.Registration(), openapi.RegistrationOperation)
	if err != nil {
		t.Fatalf("parse registration: %v", err)
	}
	store, err := uischema.Default()
	if err != nil {
		t.Fatalf("load ui schema: %v", err)
	}
	if err := uischema.NewDecorator(store).Decorate(&form); err != nil {
		t.Fatalf("decorate registration: %v", err)
	}
	return form
}

// ValidValues returns a complete set of raw values that pass validation.
func ValidValues() map[string]string {
	return map[string]string{
		registration.FieldFirstName:        "Jo",
		registration.FieldLastName:         "Doe",
		registration.FieldUsername:         "johnd",
		registration.FieldEmail:            "j@d.com",
		registration.FieldPassword:         "secret1",
		registration.FieldPhoneCountryCode: "+91",
		registration.FieldPhone:            "(987) 654-3210",
		registration.FieldCountry:          "India",
		registration.FieldCity:             "Pune",
		registration.FieldPAN:              "abcde1234f",
		registration.FieldAadhaar:          "1234-5678-9012",
	}
}

// FillValid feeds ValidValues into e in field order.
func FillValid(e *registration.Engine) {
	values := ValidValues()
	for _, name := range registration.FieldNames() {
		e.Change(name, values[name])
	}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
