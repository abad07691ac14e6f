package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/navigation"
	"github.com/goliatone/go-regform/pkg/registration"
	"github.com/goliatone/go-regform/pkg/render"
	"github.com/goliatone/go-regform/pkg/review"
	"github.com/goliatone/go-regform/pkg/uischema"
)

const startOverMessage = "Start over with a new registration?"

// Session runs the registration flow in a terminal: it prompts every field,
// submits, prints the review page and offers to start over.
type Session struct {
	form      model.FormModel
	driver    PromptDriver
	renderer  render.Renderer
	presenter review.Presenter
	style     Style
	logger    *slog.Logger

	router *navigation.Router[*registration.Snapshot]
	engine *registration.Engine
}

// NewSession prepares a session for form. The survey driver, the plain-text
// renderer and a discarding logger are used unless overridden.
func NewSession(form model.FormModel, options ...Option) *Session {
	s := &Session{
		form:      form,
		driver:    NewSurveyDriver(nil),
		renderer:  NewRenderer(),
		presenter: review.Presenter{Title: uischema.ReviewTitle(form)},
		style:     DefaultStyle(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}

	s.router = navigation.NewRouter[*registration.Snapshot]()
	s.router.OnEnter(navigation.Entry, func(navigation.View, *registration.Snapshot) {
		s.engine = registration.NewEngine(s.router)
	})
	return s
}

// Run loops until the user declines to start over and returns every snapshot
// submitted along the way.
func (s *Session) Run(ctx context.Context) ([]*registration.Snapshot, error) {
	if len(s.form.Fields) == 0 {
		return nil, ErrNoFields
	}

	var submitted []*registration.Snapshot
	if err := s.router.Redirect(navigation.Entry); err != nil {
		return nil, err
	}
	for {
		snapshot, err := s.fillAndSubmit(ctx)
		if err != nil {
			return submitted, err
		}
		submitted = append(submitted, snapshot)
		s.logger.InfoContext(ctx, "registration submitted", "fields", snapshot.Len())

		if err := s.showReview(ctx); err != nil {
			return submitted, err
		}

		again, err := s.driver.Confirm(ctx, ConfirmConfig{Message: startOverMessage})
		if err != nil {
			return submitted, err
		}
		if !again {
			return submitted, nil
		}
		if err := s.presenter.Back(s.router); err != nil {
			return submitted, err
		}
	}
}

func (s *Session) fillAndSubmit(ctx context.Context) (*registration.Snapshot, error) {
	pending := s.form.FieldNames()
	for {
		for _, name := range pending {
			if err := s.promptField(ctx, name); err != nil {
				return nil, err
			}
		}

		ok, err := s.engine.Submit()
		if err != nil {
			return nil, err
		}
		if ok {
			snapshot, _ := s.router.CurrentPayload()
			return snapshot, nil
		}

		pending = pending[:0]
		for _, name := range s.form.FieldNames() {
			if s.engine.Error(name) != "" {
				pending = append(pending, name)
			}
		}
		if len(pending) == 0 {
			return nil, errors.New("tui: submission rejected without field errors")
		}
		s.logger.DebugContext(ctx, "submission blocked", "invalid_fields", len(pending))
	}
}

// promptField asks for name until the engine accepts the answer.
func (s *Session) promptField(ctx context.Context, name string) error {
	field, _ := s.form.Field(name)
	for {
		cfg := InputConfig{
			Message: field.Label + ":",
			Help:    plainText(uischema.HelpText(field)),
			Validator: func(answer string) error {
				if msg := registration.Validate(name, registration.NormalizeInput(name, answer)); msg != "" {
					return errors.New(msg)
				}
				return nil
			},
		}

		var (
			answer string
			err    error
		)
		if field.InputType == model.InputPassword {
			answer, err = s.driver.Password(ctx, cfg)
		} else {
			cfg.Default = s.engine.Value(name)
			answer, err = s.driver.Input(ctx, cfg)
		}
		if err != nil {
			return fmt.Errorf("tui: prompt %s: %w", name, err)
		}

		s.engine.Change(name, answer)
		msg := s.engine.Error(name)
		if msg == "" {
			return nil
		}
		if err := s.driver.Info(ctx, s.style.ErrorPrefix+msg); err != nil {
			return err
		}
	}
}

func (s *Session) showReview(ctx context.Context) error {
	page, ok, err := s.presenter.Present(s.router)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	out, err := s.renderer.Render(ctx, s.form, render.RenderOptions{
		View:   navigation.Review,
		Review: &page,
	})
	if err != nil {
		return fmt.Errorf("tui: render review: %w", err)
	}
	return s.driver.Info(ctx, s.style.InfoPrefix+string(out))
}
