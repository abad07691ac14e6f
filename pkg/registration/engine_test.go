package registration

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-regform/pkg/navigation"
)

type navCall struct {
	view    navigation.View
	payload *Snapshot
}

type recordingNavigator struct {
	calls []navCall
	err   error
}

func (n *recordingNavigator) NavigateTo(view navigation.View, payload *Snapshot) error {
	n.calls = append(n.calls, navCall{view: view, payload: payload})
	return n.err
}

func fillValid(e *Engine) {
	e.Change(FieldFirstName, "Jo")
	e.Change(FieldLastName, "Doe")
	e.Change(FieldUsername, "johnd")
	e.Change(FieldEmail, "j@d.com")
	e.Change(FieldPassword, "secret1")
	e.Change(FieldPhoneCountryCode, "+91")
	e.Change(FieldPhone, "(987) 654-3210")
	e.Change(FieldCountry, "India")
	e.Change(FieldCity, "Pune")
	e.Change(FieldPAN, "abcde1234f")
	e.Change(FieldAadhaar, "1234-5678-9012")
}

func TestNewEngine_Defaults(t *testing.T) {
	e := NewEngine(nil)

	if got := e.Values().Keys(); !cmp.Equal(got, FieldNames()) {
		t.Fatalf("field order mismatch (-want +got):\n%s", cmp.Diff(FieldNames(), got))
	}
	for _, name := range FieldNames() {
		want := ""
		if name == FieldPhoneCountryCode {
			want = "+91"
		}
		if got := e.Value(name); got != want {
			t.Fatalf("default %s = %q, want %q", name, got, want)
		}
	}
	if len(e.Errors()) != 0 {
		t.Fatalf("expected no errors on a fresh form, got %v", e.Errors())
	}
	if e.Valid() {
		t.Fatalf("fresh form must not be submittable")
	}
}

func TestEngine_ChangeValidatesAndClears(t *testing.T) {
	e := NewEngine(nil)

	e.Change(FieldUsername, "ab")
	if got := e.Error(FieldUsername); got != "Username must be at least 4 characters" {
		t.Fatalf("unexpected username error %q", got)
	}

	e.Change(FieldUsername, "abcd")
	if got := e.Error(FieldUsername); got != "" {
		t.Fatalf("error not cleared, got %q", got)
	}
	if _, ok := e.Errors()[FieldUsername]; !ok {
		t.Fatalf("cleared error should still be recorded as an empty entry")
	}
}

func TestEngine_PANUpperCasedOnInput(t *testing.T) {
	e := NewEngine(nil)
	e.Change(FieldPAN, "abcde1234f")

	if got := e.Value(FieldPAN); got != "ABCDE1234F" {
		t.Fatalf("pan stored as %q", got)
	}
	if got := e.Error(FieldPAN); got != "" {
		t.Fatalf("lower-case pan should validate, got %q", got)
	}
}

func TestEngine_ValidityTracksEveryChange(t *testing.T) {
	e := NewEngine(nil)
	fillValid(e)
	if !e.Valid() {
		t.Fatalf("expected valid form, errors: %v", e.Errors())
	}

	e.Change(FieldEmail, "nope")
	if e.Valid() {
		t.Fatalf("invalid email must disable submit")
	}

	e.Change(FieldEmail, "j@d.com")
	if !e.Valid() {
		t.Fatalf("fixing the email should re-enable submit")
	}
}

func TestEngine_ValidityRequiresUntouchedFields(t *testing.T) {
	e := NewEngine(nil)
	fillValid(e)
	e.Change(FieldCity, "")
	e.Change(FieldCity, "Pune")
	if !e.Valid() {
		t.Fatalf("expected valid after refill")
	}

	fresh := NewEngine(nil)
	for _, name := range FieldNames() {
		if name == FieldCity {
			continue
		}
		fresh.Change(name, fillValue(name))
	}
	if len(fresh.Errors()) == 0 || !fresh.Errors().Empty() {
		t.Fatalf("expected only cleared errors, got %v", fresh.Errors())
	}
	if fresh.Valid() {
		t.Fatalf("untouched blank city must keep submit disabled")
	}
}

func TestEngine_SubmitEndToEnd(t *testing.T) {
	nav := &recordingNavigator{}
	e := NewEngine(nav)
	fillValid(e)

	ok, err := e.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !ok {
		t.Fatalf("expected submission to pass, errors: %v", e.Errors())
	}
	if len(nav.calls) != 1 || nav.calls[0].view != navigation.Review {
		t.Fatalf("expected one navigation to review, got %+v", nav.calls)
	}

	want := []Entry{
		{Name: FieldFirstName, Value: "Jo"},
		{Name: FieldLastName, Value: "Doe"},
		{Name: FieldUsername, Value: "johnd"},
		{Name: FieldEmail, Value: "j@d.com"},
		{Name: FieldPassword, Value: "secret1"},
		{Name: FieldPhoneCountryCode, Value: "+91"},
		{Name: FieldPhone, Value: "9876543210"},
		{Name: FieldCountry, Value: "India"},
		{Name: FieldCity, Value: "Pune"},
		{Name: FieldPAN, Value: "ABCDE1234F"},
		{Name: FieldAadhaar, Value: "123456789012"},
	}
	if diff := cmp.Diff(want, nav.calls[0].payload.Entries()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}

	if got := e.Value(FieldPhone); got != "(987) 654-3210" {
		t.Fatalf("engine value should stay raw, got %q", got)
	}
}

func TestEngine_SubmitTwiceIsStable(t *testing.T) {
	nav := &recordingNavigator{}
	e := NewEngine(nav)
	fillValid(e)

	for i := 0; i < 2; i++ {
		if ok, err := e.Submit(); !ok || err != nil {
			t.Fatalf("submit %d: ok=%v err=%v", i, ok, err)
		}
	}
	if len(nav.calls) != 2 {
		t.Fatalf("expected two hand-offs, got %d", len(nav.calls))
	}
	if diff := cmp.Diff(nav.calls[0].payload.Entries(), nav.calls[1].payload.Entries()); diff != "" {
		t.Fatalf("snapshots differ (-first +second):\n%s", diff)
	}
	if nav.calls[0].payload == nav.calls[1].payload {
		t.Fatalf("each submission should hand off its own snapshot")
	}
}

func TestEngine_SubmitBlockedByAnyBlankField(t *testing.T) {
	for _, blank := range FieldNames() {
		t.Run(blank, func(t *testing.T) {
			nav := &recordingNavigator{}
			e := NewEngine(nav)
			fillValid(e)
			e.Change(blank, "")

			ok, err := e.Submit()
			if err != nil {
				t.Fatalf("submit: %v", err)
			}
			if ok || len(nav.calls) != 0 {
				t.Fatalf("blank %s must block navigation", blank)
			}
			if e.Valid() {
				t.Fatalf("blank %s must keep submit disabled", blank)
			}
			if e.Error(blank) == "" {
				t.Fatalf("blank %s should carry an inline error", blank)
			}
		})
	}
}

func TestEngine_SubmitReplacesErrorMap(t *testing.T) {
	e := NewEngine(nil)
	e.Change(FieldFirstName, "J")
	e.Change(FieldFirstName, "Jo")

	if ok, _ := e.Submit(); ok {
		t.Fatalf("empty form must not submit")
	}
	errs := e.Errors()
	if _, ok := errs[FieldFirstName]; ok {
		t.Fatalf("valid fields are omitted from the fresh map, got %q", errs[FieldFirstName])
	}
	if _, ok := errs[FieldPhoneCountryCode]; ok {
		t.Fatalf("default country code is valid")
	}
	if len(errs) != len(FieldNames())-2 {
		t.Fatalf("expected %d errors, got %d: %v", len(FieldNames())-2, len(errs), errs)
	}
}

func TestEngine_UnknownFieldIsKept(t *testing.T) {
	nav := &recordingNavigator{}
	e := NewEngine(nav)
	fillValid(e)
	e.Change("referral", "friend")

	if ok, _ := e.Submit(); !ok {
		t.Fatalf("unknown fields never fail validation")
	}
	entries := nav.calls[0].payload.Entries()
	if last := entries[len(entries)-1]; last != (Entry{Name: "referral", Value: "friend"}) {
		t.Fatalf("unknown field should be appended, got %+v", last)
	}

	e.Change("referral", " ")
	if e.Valid() {
		t.Fatalf("blank unknown field still counts toward validity")
	}
}

func TestEngine_SubmitNavigationError(t *testing.T) {
	nav := &recordingNavigator{err: navigation.ErrUnknownView}
	e := NewEngine(nav)
	fillValid(e)

	ok, err := e.Submit()
	if ok || !errors.Is(err, navigation.ErrUnknownView) {
		t.Fatalf("expected wrapped navigation error, got ok=%v err=%v", ok, err)
	}
}

func TestEngine_WorksWithRouter(t *testing.T) {
	router := navigation.NewRouter[*Snapshot]()
	e := NewEngine(router)
	fillValid(e)

	if ok, err := e.Submit(); !ok || err != nil {
		t.Fatalf("submit: ok=%v err=%v", ok, err)
	}
	if router.Current() != navigation.Review {
		t.Fatalf("router on %q, want review", router.Current())
	}
	payload, ok := router.CurrentPayload()
	if !ok {
		t.Fatalf("review should carry the snapshot")
	}
	if got, _ := payload.Get(FieldAadhaar); got != "123456789012" {
		t.Fatalf("aadhaar = %q", got)
	}
}

func fillValue(name string) string {
	return map[string]string{
		FieldFirstName:        "Jo",
		FieldLastName:         "Doe",
		FieldUsername:         "johnd",
		FieldEmail:            "j@d.com",
		FieldPassword:         "secret1",
		FieldPhoneCountryCode: "+91",
		FieldPhone:            "9876543210",
		FieldCountry:          "India",
		FieldCity:             "Pune",
		FieldPAN:              "ABCDE1234F",
		FieldAadhaar:          "123456789012",
	}[name]
}
