package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	theme "github.com/goliatone/go-theme"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-regform/internal/config"
	"github.com/goliatone/go-regform/internal/logging"
	"github.com/goliatone/go-regform/pkg/openapi"
	"github.com/goliatone/go-regform/pkg/orchestrator"
	"github.com/goliatone/go-regform/pkg/renderers/vanilla"
)

// app carries the state shared by every subcommand.
type app struct {
	v       *viper.Viper
	cfgFile string
	envFile string
	schema  string

	cfg    config.Config
	logger *slog.Logger

	out    io.Writer
	errOut io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:          "regform",
		Short:        "Registration form with live validation and a review page",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ./regform.yaml)")
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flags.StringVar(&a.schema, "schema", "", "OpenAPI document describing the form (default: embedded)")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log format: json or text")
	flags.String("theme", "", "theme name")
	flags.String("variant", "", "theme variant")
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log_format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("theme", flags.Lookup("theme"))
	_ = a.v.BindPFlag("variant", flags.Lookup("variant"))

	root.AddCommand(newServeCmd(a), newPromptCmd(a), newRenderCmd(a))
	return root
}

func (a *app) initConfig() error {
	if err := config.LoadDotEnv(a.envFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := logging.New(a.errOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// orchestrator builds the form pipeline with the bundled theme registered.
func (a *app) orchestrator() (*orchestrator.Orchestrator, error) {
	registry, err := vanilla.ThemeRegistry()
	if err != nil {
		return nil, fmt.Errorf("load default theme: %w", err)
	}
	selector := theme.Selector{
		Registry:       registry,
		DefaultTheme:   vanilla.ThemeName,
		DefaultVariant: a.cfg.Variant,
	}
	options := []orchestrator.Option{
		orchestrator.WithThemeSelector(selector, a.cfg.Theme, a.cfg.Variant),
	}
	if a.schema != "" {
		doc, err := openapi.LoadFile(a.schema)
		if err != nil {
			return nil, fmt.Errorf("load schema: %w", err)
		}
		options = append(options, orchestrator.WithSchema(doc))
	}
	return orchestrator.New(options...), nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
