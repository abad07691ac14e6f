package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-regform/pkg/renderers/tui"
)

func newPromptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Fill in the registration form interactively in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := contextOf(cmd)
			orch, err := a.orchestrator()
			if err != nil {
				return err
			}
			form, err := orch.Form(ctx)
			if err != nil {
				return fmt.Errorf("build form: %w", err)
			}

			session := tui.NewSession(form,
				tui.WithPromptDriver(tui.NewSurveyDriver(a.out)),
				tui.WithLogger(a.logger),
			)
			snapshots, err := session.Run(ctx)
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(a.out, "Aborted.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%d registration(s) submitted.\n", len(snapshots))
			return nil
		},
	}
}
