package tui

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var stripPolicy = bluemonday.StrictPolicy()

// plainText drops inline markup from sanitised rich copy.
func plainText(markup string) string {
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(markup)))
}
