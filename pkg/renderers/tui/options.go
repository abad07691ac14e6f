package tui

import (
	"log/slog"

	"github.com/goliatone/go-regform/pkg/render"
)

// Style captures the message prefixes used when printing to the terminal.
type Style struct {
	ErrorPrefix string
	InfoPrefix  string
}

// DefaultStyle is used when no style is configured.
func DefaultStyle() Style {
	return Style{ErrorPrefix: "  ✗ ", InfoPrefix: ""}
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithRenderer replaces the renderer used to print the review page.
func WithRenderer(renderer render.Renderer) Option {
	return func(s *Session) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

// WithStyle applies message prefixes.
func WithStyle(style Style) Option {
	return func(s *Session) {
		s.style = style
	}
}

// WithLogger sets the session logger. Field values are never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithReviewTitle overrides the review heading.
func WithReviewTitle(title string) Option {
	return func(s *Session) {
		s.presenter.Title = title
	}
}
