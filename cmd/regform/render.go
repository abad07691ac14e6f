package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-regform/pkg/orchestrator"
	"github.com/goliatone/go-regform/pkg/registration"
	"github.com/goliatone/go-regform/pkg/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		rendererName string
		output       string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the empty entry form to stdout or a file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			orch, err := a.orchestrator()
			if err != nil {
				return err
			}
			engine := registration.NewEngine(nil)
			out, err := orch.Render(contextOf(cmd), orchestrator.Request{
				Renderer: rendererName,
				Options: render.RenderOptions{
					Values:        engine.Values().Map(),
					Errors:        engine.Errors(),
					SubmitEnabled: engine.Valid(),
				},
			})
			if err != nil {
				return fmt.Errorf("render form: %w", err)
			}

			if output == "" {
				_, err = a.out.Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(a.out, "Form written to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&rendererName, "renderer", "r", "", "renderer to use (vanilla or text)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
