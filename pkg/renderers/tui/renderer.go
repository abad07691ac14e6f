package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/navigation"
	"github.com/goliatone/go-regform/pkg/render"
)

// Name is the registry name of the plain-text renderer.
const Name = "text"

// Renderer draws both views as plain text for terminals and logs.
type Renderer struct{}

var _ render.Renderer = Renderer{}

// NewRenderer returns the plain-text renderer.
func NewRenderer() Renderer {
	return Renderer{}
}

func (Renderer) Name() string {
	return Name
}

func (Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render writes the selected view.
func (Renderer) Render(ctx context.Context, form model.FormModel, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch view := options.ViewOrDefault(); view {
	case navigation.Entry:
		writeEntry(&buf, form, options)
	case navigation.Review:
		if options.Review == nil {
			return nil, fmt.Errorf("tui: %w", render.ErrMissingReview)
		}
		writeHeading(&buf, options.Review.Title)
		width := 0
		for _, row := range options.Review.Rows {
			width = max(width, len(row.Label))
		}
		for _, row := range options.Review.Rows {
			fmt.Fprintf(&buf, "%-*s  %s\n", width, row.Label, row.Value)
		}
		fmt.Fprintf(&buf, "\n[%s]\n", labelOr(form.BackLabel, "Back"))
	default:
		return nil, fmt.Errorf("tui: %w: %q", render.ErrUnsupportedView, view)
	}
	return buf.Bytes(), nil
}

func writeEntry(buf *bytes.Buffer, form model.FormModel, options render.RenderOptions) {
	writeHeading(buf, form.Title)
	for _, row := range form.Layout() {
		if row.Label != "" {
			fmt.Fprintf(buf, "%s\n", row.Label)
		}
		for _, name := range row.Fields {
			field, _ := form.Field(name)
			value, ok := options.Values[name]
			if !ok {
				value = field.Default
			}
			if field.InputType == model.InputPassword && value != "" {
				value = strings.Repeat("*", len([]rune(value)))
			}
			fmt.Fprintf(buf, "  %s: %s\n", field.Label, value)
			if msg := options.Errors[name]; msg != "" {
				fmt.Fprintf(buf, "    ! %s\n", msg)
			}
		}
	}

	submit := labelOr(form.SubmitLabel, "Submit")
	if options.SubmitEnabled {
		fmt.Fprintf(buf, "\n[%s]\n", submit)
		return
	}
	fmt.Fprintf(buf, "\n[%s] (disabled)\n", submit)
	if form.Hint != "" {
		fmt.Fprintf(buf, "%s\n", plainText(form.Hint))
	}
}

func writeHeading(buf *bytes.Buffer, title string) {
	if title == "" {
		return
	}
	fmt.Fprintf(buf, "%s\n%s\n", title, strings.Repeat("=", len([]rune(title))))
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
