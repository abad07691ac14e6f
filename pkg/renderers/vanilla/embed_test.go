package vanilla

import (
	"testing"

	"github.com/goliatone/go-regform/pkg/render"
)

func TestDefaultTheme(t *testing.T) {
	manifest, err := DefaultTheme()
	if err != nil {
		t.Fatalf("default theme: %v", err)
	}
	if manifest.Name != ThemeName || manifest.Version == "" {
		t.Fatalf("unexpected manifest identity %q@%q", manifest.Name, manifest.Version)
	}
	if _, ok := manifest.Variants["dark"]; !ok {
		t.Fatalf("dark variant missing: %+v", manifest.Variants)
	}
}

func TestThemeSelector_ResolvesVariant(t *testing.T) {
	selector, err := ThemeSelector("dark")
	if err != nil {
		t.Fatalf("theme selector: %v", err)
	}
	selection, err := selector.Select("", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	cfg := selection.RendererTheme(render.DefaultPartials())

	if cfg.Theme != ThemeName || cfg.Variant != "dark" {
		t.Fatalf("unexpected selection %s/%s", cfg.Theme, cfg.Variant)
	}
	if got := cfg.CSSVars["--brand"]; got != "#60a5fa" {
		t.Fatalf("variant brand = %q", got)
	}
	if got := cfg.CSSVars["--error"]; got != "#f87171" {
		t.Fatalf("variant error = %q", got)
	}
	if got := render.AssetURL(&cfg, render.AssetStylesheet, ""); got != "/assets/regform.css" {
		t.Fatalf("stylesheet url = %q", got)
	}
	if got := render.PartialName(&cfg, render.PartialReview); got != "review" {
		t.Fatalf("review partial = %q", got)
	}
}

func TestThemeSelector_UnknownThemeFallsBack(t *testing.T) {
	selector, err := ThemeSelector("")
	if err != nil {
		t.Fatalf("theme selector: %v", err)
	}
	selection, err := selector.Select("missing", "sepia")
	if err != nil {
		t.Fatalf("unknown theme should fall back to the bundled one: %v", err)
	}
	if selection.Manifest == nil || selection.Manifest.Name != ThemeName {
		t.Fatalf("fallback manifest = %+v", selection.Manifest)
	}
	cfg := selection.RendererTheme(render.DefaultPartials())
	if got := cfg.CSSVars["--brand"]; got != "#2563eb" {
		t.Fatalf("unknown variant should keep base tokens, got %q", got)
	}
}
