package uischema

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/openapi"
)

func TestDecorator_AppliesRegistrationOverrides(t *testing.T) {
	form, err := openapi.Parse(context.Background(), openapi.Registration(), openapi.RegistrationOperation)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	store, err := Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}

	if err := NewDecorator(store).Decorate(&form); err != nil {
		t.Fatalf("decorate: %v", err)
	}

	if form.Title != "Registration Form" || form.SubmitLabel != "Submit" || form.BackLabel != "Back" {
		t.Fatalf("form copy not applied: %+v", form)
	}
	if ReviewTitle(form) != "Submitted Details" {
		t.Fatalf("review title = %q", ReviewTitle(form))
	}
	code, _ := form.Field("phoneCountryCode")
	if code.Label != "Country Code" {
		t.Fatalf("country code label = %q", code.Label)
	}
	pan, _ := form.Field("pan")
	if HelpText(pan) == "" {
		t.Fatalf("pan help text missing")
	}

	var layout [][]string
	for _, row := range form.Layout() {
		layout = append(layout, row.Fields)
	}
	want := [][]string{
		{"firstName", "lastName"},
		{"username"},
		{"email"},
		{"password"},
		{"phoneCountryCode", "phone"},
		{"country", "city"},
		{"pan"},
		{"aadhaar"},
	}
	if diff := cmp.Diff(want, layout); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestDecorator_NoStoreIsNoop(t *testing.T) {
	form := model.FormModel{OperationID: "registerUser", Title: "Keep"}
	if err := NewDecorator(nil).Decorate(&form); err != nil {
		t.Fatalf("decorate: %v", err)
	}
	if form.Title != "Keep" || len(form.Rows) != 0 {
		t.Fatalf("nil store must not touch the form: %+v", form)
	}
}

func TestDecorator_UnknownOperationIsNoop(t *testing.T) {
	store, err := Load([]byte("operations:\n  other:\n    form:\n      title: Other\n"), "doc.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	form := model.FormModel{OperationID: "registerUser", Title: "Keep"}
	if err := NewDecorator(store).Decorate(&form); err != nil {
		t.Fatalf("decorate: %v", err)
	}
	if form.Title != "Keep" {
		t.Fatalf("title changed to %q", form.Title)
	}
}
