package render

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Partial keys looked up in theme template maps.
const (
	PartialEntry  = "regform.entry"
	PartialReview = "regform.review"
)

// Asset keys looked up in theme asset maps.
const (
	AssetStylesheet = "regform.stylesheet"
	AssetScript     = "regform.script"
)

// DefaultPartials maps each partial key to the bundled template name.
func DefaultPartials() map[string]string {
	return map[string]string{
		PartialEntry:  "entry",
		PartialReview: "review",
	}
}

// PartialName returns the template for key, preferring the theme override.
func PartialName(cfg *theme.RendererConfig, key string) string {
	if cfg != nil {
		if name := strings.TrimSpace(cfg.Partials[key]); name != "" {
			return name
		}
	}
	return DefaultPartials()[key]
}

// AssetURL resolves key through the theme, returning fallback when the theme
// has no such asset.
func AssetURL(cfg *theme.RendererConfig, key, fallback string) string {
	if cfg == nil || cfg.AssetURL == nil {
		return fallback
	}
	if url := cfg.AssetURL(key); url != "" {
		return url
	}
	return fallback
}
