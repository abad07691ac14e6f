package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-regform/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the registration form over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			orch, err := a.orchestrator()
			if err != nil {
				return err
			}
			if _, err := orch.Form(contextOf(cmd)); err != nil {
				return fmt.Errorf("build form: %w", err)
			}

			handler := server.New(orch,
				server.WithLogger(a.logger),
				server.WithSecureCookies(a.cfg.SecureCookies),
				server.WithSessionStore(server.NewSessionStore(a.cfg.SessionTTL, a.cfg.CleanupInterval)),
			)

			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.ListenAndServe(ctx, server.NewHTTPServer(a.cfg.Addr, handler), a.logger)
		},
	}

	flags := cmd.Flags()
	flags.String("addr", "", "listen address")
	flags.Duration("session-ttl", 0, "idle time before a session expires")
	flags.Bool("secure-cookies", false, "mark the session cookie Secure")
	_ = a.v.BindPFlag("addr", flags.Lookup("addr"))
	_ = a.v.BindPFlag("session_ttl", flags.Lookup("session-ttl"))
	_ = a.v.BindPFlag("secure_cookies", flags.Lookup("secure-cookies"))
	return cmd
}
