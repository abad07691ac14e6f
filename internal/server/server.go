// Package server exposes the registration flow over HTTP. Each visitor gets
// an in-memory session holding a navigation router and the mounted entry
// form; pages are drawn through the orchestrator.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-regform/pkg/navigation"
	"github.com/goliatone/go-regform/pkg/orchestrator"
	"github.com/goliatone/go-regform/pkg/render"
	"github.com/goliatone/go-regform/pkg/renderers/vanilla"
	"github.com/goliatone/go-regform/pkg/review"
	"github.com/goliatone/go-regform/pkg/uischema"
)

// SessionCookie names the cookie carrying the session id.
const SessionCookie = "regform_session"

const (
	rendererQuery = "renderer"

	defaultSessionTTL      = 30 * time.Minute
	defaultCleanupInterval = 10 * time.Minute
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for request and handler logs.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSessionStore replaces the default session store.
func WithSessionStore(store *SessionStore) Option {
	return func(s *Server) {
		if store != nil {
			s.sessions = store
		}
	}
}

// WithSecureCookies marks the session cookie Secure.
func WithSecureCookies(secure bool) Option {
	return func(s *Server) {
		s.secureCookies = secure
	}
}

// WithAssets overrides the files served under the assets route.
func WithAssets(files fs.FS) Option {
	return func(s *Server) {
		if files != nil {
			s.assets = files
		}
	}
}

// Server handles the entry, review and field validation routes.
type Server struct {
	orch          *orchestrator.Orchestrator
	sessions      *SessionStore
	logger        *slog.Logger
	secureCookies bool
	assets        fs.FS
	routes        vanilla.Routes
	handler       http.Handler
}

// New wires the routes for orch.
func New(orch *orchestrator.Orchestrator, options ...Option) *Server {
	s := &Server{
		orch:   orch,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		assets: vanilla.AssetsFS(),
		routes: vanilla.DefaultRoutes(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.sessions == nil {
		s.sessions = NewSessionStore(defaultSessionTTL, defaultCleanupInterval)
	}
	s.handler = s.buildRouter()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Sessions exposes the session store.
func (s *Server) Sessions() *SessionStore {
	return s.sessions
}

func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get(s.routes.Submit, s.handleEntry)
	r.Post(s.routes.Submit, s.handleSubmit)
	r.Post(s.routes.Validate+"/{name}", s.handleField)
	r.Get("/review", s.handleReview)
	r.Post(s.routes.Back, s.handleBack)
	r.Handle(s.routes.Assets+"/*", http.StripPrefix(s.routes.Assets+"/", http.FileServer(http.FS(s.assets))))
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.router.Current() != navigation.Entry {
		if err := sess.mountEntry(); err != nil {
			s.fail(w, r, "mount entry view", err)
			return
		}
	}
	s.renderEntry(w, r, sess, http.StatusOK)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	form, err := s.orch.Form(r.Context())
	if err != nil {
		s.fail(w, r, "build form", err)
		return
	}

	sess := s.session(w, r)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.router.Current() != navigation.Entry {
		if err := sess.mountEntry(); err != nil {
			s.fail(w, r, "mount entry view", err)
			return
		}
	}
	for _, name := range form.FieldNames() {
		if values, ok := r.PostForm[name]; ok && len(values) > 0 {
			sess.engine.Change(name, values[0])
		}
	}

	ok, err := sess.engine.Submit()
	if err != nil {
		s.fail(w, r, "submit registration", err)
		return
	}
	if !ok {
		s.logger.InfoContext(r.Context(), "registration rejected",
			"request_id", middleware.GetReqID(r.Context()),
			"errors", len(sess.engine.Errors()),
		)
		s.renderEntry(w, r, sess, http.StatusUnprocessableEntity)
		return
	}

	s.logger.InfoContext(r.Context(), "registration submitted",
		"request_id", middleware.GetReqID(r.Context()),
		"fields", len(form.Fields),
	)
	http.Redirect(w, r, withRenderer("/review", r), http.StatusSeeOther)
}

// fieldResult is the live validation response for one field.
type fieldResult struct {
	Field         string `json:"field"`
	Value         string `json:"value"`
	Error         string `json:"error"`
	SubmitEnabled bool   `json:"submitEnabled"`
}

func (s *Server) handleField(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	form, err := s.orch.Form(r.Context())
	if err != nil {
		s.fail(w, r, "build form", err)
		return
	}
	if _, ok := form.Field(name); !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown field"})
		return
	}
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form body"})
		return
	}

	sess := s.session(w, r)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.router.Current() != navigation.Entry {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "form is not active"})
		return
	}
	sess.engine.Change(name, r.PostForm.Get("value"))
	writeJSON(w, http.StatusOK, fieldResult{
		Field:         name,
		Value:         sess.engine.Value(name),
		Error:         sess.engine.Error(name),
		SubmitEnabled: sess.engine.Valid(),
	})
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	form, err := s.orch.Form(r.Context())
	if err != nil {
		s.fail(w, r, "build form", err)
		return
	}

	sess := s.session(w, r)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	presenter := review.Presenter{Title: uischema.ReviewTitle(form)}
	page, ok, err := presenter.Present(sess.router)
	if err != nil {
		s.fail(w, r, "present review", err)
		return
	}
	if !ok {
		http.Redirect(w, r, withRenderer(s.routes.Submit, r), http.StatusSeeOther)
		return
	}
	s.render(w, r, http.StatusOK, render.RenderOptions{
		View:   navigation.Review,
		Review: &page,
	})
}

func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := (review.Presenter{}).Back(sess.router); err != nil {
		s.fail(w, r, "leave review", err)
		return
	}
	http.Redirect(w, r, withRenderer(s.routes.Submit, r), http.StatusSeeOther)
}

func (s *Server) renderEntry(w http.ResponseWriter, r *http.Request, sess *session, status int) {
	s.render(w, r, status, render.RenderOptions{
		View:          navigation.Entry,
		Values:        sess.engine.Values().Map(),
		Errors:        sess.engine.Errors(),
		SubmitEnabled: sess.engine.Valid(),
	})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, options render.RenderOptions) {
	rendererName := r.URL.Query().Get(rendererQuery)
	renderer, err := s.orch.Renderer(rendererName)
	if err != nil {
		if errors.Is(err, render.ErrRendererNotFound) {
			http.Error(w, "unknown renderer", http.StatusBadRequest)
			return
		}
		s.fail(w, r, "resolve renderer", err)
		return
	}
	body, err := s.orch.Render(r.Context(), orchestrator.Request{
		Renderer: rendererName,
		Options:  options,
	})
	if err != nil {
		s.fail(w, r, "render view", err)
		return
	}
	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// session returns the caller's session, creating one and setting the cookie
// when the request carries no live session.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if sess, ok := s.sessions.Get(cookie.Value); ok {
			return sess
		}
	}
	sess := s.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, action string, err error) {
	s.logger.ErrorContext(r.Context(), "request failed",
		"request_id", middleware.GetReqID(r.Context()),
		"action", action,
		"error", err,
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// withRenderer keeps the renderer query parameter across redirects.
func withRenderer(target string, r *http.Request) string {
	name := r.URL.Query().Get(rendererQuery)
	if name == "" {
		return target
	}
	return target + "?" + url.Values{rendererQuery: {name}}.Encode()
}
