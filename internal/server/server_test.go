package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-regform/pkg/orchestrator"
	"github.com/goliatone/go-regform/pkg/testsupport"
)

type testClient struct {
	t      *testing.T
	base   string
	client *http.Client
}

func newTestClient(t *testing.T, options ...Option) (*testClient, *Server) {
	t.Helper()
	options = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, options...)
	srv := New(orchestrator.New(), options...)
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &testClient{
		t:    t,
		base: ts.URL,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, srv
}

func (c *testClient) get(path string) (*http.Response, string) {
	c.t.Helper()
	resp, err := c.client.Get(c.base + path)
	if err != nil {
		c.t.Fatalf("GET %s: %v", path, err)
	}
	return resp, readBody(c.t, resp)
}

func (c *testClient) post(path string, form url.Values) (*http.Response, string) {
	c.t.Helper()
	resp, err := c.client.PostForm(c.base+path, form)
	if err != nil {
		c.t.Fatalf("POST %s: %v", path, err)
	}
	return resp, readBody(c.t, resp)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

func validForm() url.Values {
	form := url.Values{}
	for name, value := range testsupport.ValidValues() {
		form.Set(name, value)
	}
	return form
}

func expectStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("%s %s: status %d, want %d", resp.Request.Method, resp.Request.URL.Path, resp.StatusCode, want)
	}
}

func expectRedirect(t *testing.T, resp *http.Response, location string) {
	t.Helper()
	expectStatus(t, resp, http.StatusSeeOther)
	if got := resp.Header.Get("Location"); got != location {
		t.Fatalf("redirect to %q, want %q", got, location)
	}
}

func TestServer_FullFlow(t *testing.T) {
	c, _ := newTestClient(t)

	resp, body := c.get("/")
	expectStatus(t, resp, http.StatusOK)
	if !strings.Contains(body, `class="regform-submit" disabled`) {
		t.Fatalf("fresh entry page should disable submit")
	}

	resp, _ = c.post("/", validForm())
	expectRedirect(t, resp, "/review")

	resp, body = c.get("/review")
	expectStatus(t, resp, http.StatusOK)
	for _, want := range []string{
		"Submitted Details",
		"<dt>firstName</dt><dd>Jo</dd>",
		"<dt>phone</dt><dd>9876543210</dd>",
		"<dt>pan</dt><dd>ABCDE1234F</dd>",
		"<dt>aadhaar</dt><dd>123456789012</dd>",
		`action="/review/back"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("review page missing %q", want)
		}
	}

	resp, _ = c.post("/review/back", nil)
	expectRedirect(t, resp, "/")

	resp, body = c.get("/")
	expectStatus(t, resp, http.StatusOK)
	if strings.Contains(body, `value="Jo"`) {
		t.Fatalf("entry should mount a fresh form after going back")
	}

	resp, _ = c.get("/review")
	expectRedirect(t, resp, "/")
}

func TestServer_ReviewWithoutSubmissionRedirects(t *testing.T) {
	c, _ := newTestClient(t)

	resp, _ := c.get("/review")
	expectRedirect(t, resp, "/")
}

func TestServer_InvalidSubmitRendersErrors(t *testing.T) {
	c, _ := newTestClient(t)

	form := validForm()
	form.Set("username", "ab")
	form.Del("city")

	resp, body := c.post("/", form)
	expectStatus(t, resp, http.StatusUnprocessableEntity)
	for _, want := range []string{
		"Username must be at least 4 characters",
		"City is required",
		`class="regform-submit" disabled`,
		`value="ab"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("rejected page missing %q", want)
		}
	}

	resp, _ = c.get("/review")
	expectRedirect(t, resp, "/")
}

func TestServer_FieldValidation(t *testing.T) {
	c, _ := newTestClient(t)

	decode := func(body string) fieldResult {
		t.Helper()
		var result fieldResult
		if err := json.Unmarshal([]byte(body), &result); err != nil {
			t.Fatalf("decode %q: %v", body, err)
		}
		return result
	}

	resp, body := c.post("/api/fields/pan", url.Values{"value": {"abcde1234f"}})
	expectStatus(t, resp, http.StatusOK)
	want := fieldResult{Field: "pan", Value: "ABCDE1234F"}
	if diff := cmp.Diff(want, decode(body)); diff != "" {
		t.Fatalf("pan result mismatch (-want +got):\n%s", diff)
	}

	resp, body = c.post("/api/fields/username", url.Values{"value": {"ab"}})
	expectStatus(t, resp, http.StatusOK)
	if got := decode(body).Error; got != "Username must be at least 4 characters" {
		t.Fatalf("username error = %q", got)
	}

	var last fieldResult
	for name, value := range testsupport.ValidValues() {
		_, body = c.post("/api/fields/"+name, url.Values{"value": {value}})
		last = decode(body)
	}
	if !last.SubmitEnabled {
		t.Fatalf("every field valid should enable submit, last result %+v", last)
	}

	resp, _ = c.post("/api/fields/nickname", url.Values{"value": {"x"}})
	expectStatus(t, resp, http.StatusNotFound)
}

func TestServer_FieldValidationEchoesValue(t *testing.T) {
	c, _ := newTestClient(t)

	values := testsupport.ValidValues()
	values["username"] = "  jo hn "
	values["pan"] = "ABCDE1234F"
	for name, value := range values {
		_, body := c.post("/api/fields/"+name, url.Values{"value": {value}})
		var result fieldResult
		if err := json.Unmarshal([]byte(body), &result); err != nil {
			t.Fatalf("decode %q: %v", body, err)
		}
		if result.Value != value {
			t.Fatalf("field %s echoed %q, want %q", name, result.Value, value)
		}
	}
}

func TestServer_FieldValidationSharesSession(t *testing.T) {
	c, _ := newTestClient(t)

	for name, value := range testsupport.ValidValues() {
		c.post("/api/fields/"+name, url.Values{"value": {value}})
	}
	_, body := c.get("/")
	if strings.Contains(body, `class="regform-submit" disabled`) {
		t.Fatalf("entry page should reflect live validation state")
	}
	if !strings.Contains(body, `regform-hint" hidden`) {
		t.Fatalf("hint should hide once the form is valid")
	}
}

func TestServer_TextRenderer(t *testing.T) {
	c, _ := newTestClient(t)

	resp, body := c.get("/?renderer=text")
	expectStatus(t, resp, http.StatusOK)
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("content type %q", ct)
	}
	if !strings.Contains(body, "(disabled)") {
		t.Fatalf("text entry page should mark submit disabled:\n%s", body)
	}

	resp, _ = c.post("/?renderer=text", validForm())
	expectRedirect(t, resp, "/review?renderer=text")

	resp, _ = c.get("/?renderer=nope")
	expectStatus(t, resp, http.StatusBadRequest)
}

func TestServer_HealthAndAssets(t *testing.T) {
	c, _ := newTestClient(t)

	resp, body := c.get("/healthz")
	expectStatus(t, resp, http.StatusOK)
	if body != "ok" {
		t.Fatalf("health body %q", body)
	}

	resp, body = c.get("/assets/regform.css")
	expectStatus(t, resp, http.StatusOK)
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Fatalf("stylesheet content type %q", ct)
	}
	if body == "" {
		t.Fatalf("stylesheet is empty")
	}

	resp, _ = c.get("/assets/missing.css")
	expectStatus(t, resp, http.StatusNotFound)
}

func TestServer_SessionCookie(t *testing.T) {
	srv := New(orchestrator.New(), WithSecureCookies(true))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != SessionCookie || !cookie.HttpOnly || !cookie.Secure || cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("unexpected cookie %+v", cookie)
	}
	if srv.Sessions().Len() != 1 {
		t.Fatalf("expected one session, got %d", srv.Sessions().Len())
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookie.Value})
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("a live session should not be reissued")
	}
	if srv.Sessions().Len() != 1 {
		t.Fatalf("session reused, want one session, got %d", srv.Sessions().Len())
	}
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore(20*time.Millisecond, 0)
	sess := store.Create()

	if _, ok := store.Get(sess.id); !ok {
		t.Fatalf("new session should be found")
	}
	if _, ok := store.Get("missing"); ok {
		t.Fatalf("unknown id should not be found")
	}
	if _, ok := store.Get(""); ok {
		t.Fatalf("empty id should not be found")
	}

	time.Sleep(50 * time.Millisecond)
	if _, ok := store.Get(sess.id); ok {
		t.Fatalf("idle session should expire")
	}
}

func TestSession_EntryMountsFreshEngine(t *testing.T) {
	sess := newSession("id")
	sess.engine.Change("firstName", "Jo")
	before := sess.engine

	if err := sess.mountEntry(); err != nil {
		t.Fatalf("mount entry: %v", err)
	}
	if sess.engine == before {
		t.Fatalf("entering the entry view should replace the engine")
	}
	if got := sess.engine.Value("firstName"); got != "" {
		t.Fatalf("fresh engine value = %q", got)
	}
}
