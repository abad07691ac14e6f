package vanilla

import (
	"embed"
	"io/fs"

	theme "github.com/goliatone/go-theme"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

//go:embed themes/*.yaml
var embeddedThemes embed.FS

// Asset file names served under the assets prefix.
const (
	StylesheetName = "regform.css"
	ScriptName     = "regform.js"
)

// TemplatesFS exposes the bundled templates.
func TemplatesFS() fs.FS {
	return mustSub(embeddedTemplates, "templates")
}

// AssetsFS exposes the stylesheet and live validation script so callers can
// serve them over HTTP.
func AssetsFS() fs.FS {
	return mustSub(embeddedAssets, "assets")
}

// ThemeName names the bundled theme.
const ThemeName = "regform"

// DefaultTheme parses the bundled "regform" theme manifest.
func DefaultTheme() (*theme.Manifest, error) {
	return theme.LoadFile(embeddedThemes, "themes/regform.yaml")
}

// ThemeRegistry returns a go-theme registry holding the bundled theme.
func ThemeRegistry() (*theme.MemoryRegistry, error) {
	manifest, err := DefaultTheme()
	if err != nil {
		return nil, err
	}
	registry := theme.NewRegistry()
	if err := registry.Register(manifest); err != nil {
		return nil, err
	}
	return registry, nil
}

// ThemeSelector selects from the bundled theme, falling back to it when the
// requested theme is unknown.
func ThemeSelector(defaultVariant string) (theme.Selector, error) {
	registry, err := ThemeRegistry()
	if err != nil {
		return theme.Selector{}, err
	}
	return theme.Selector{
		Registry:       registry,
		DefaultTheme:   ThemeName,
		DefaultVariant: defaultVariant,
	}, nil
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
