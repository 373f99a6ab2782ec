package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/ethos/internal/scenario"
	"github.com/spf13/cobra"
)

func newScenarioCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Built-in example moral cases",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the built-in scenarios",
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, name := range scenario.Names() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, scenario.Get(name).ActionDescription)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Store any built-in scenarios missing from the context store",
			RunE: func(cmd *cobra.Command, args []string) error {
				seeded, err := scenario.Seed(context.Background(), app.Contexts)
				if err != nil {
					return err
				}
				if len(seeded) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "All scenarios already present.")
					return nil
				}
				for _, name := range seeded {
					fmt.Fprintf(cmd.OutOrStdout(), "Seeded %q\n", name)
				}
				return nil
			},
		},
	)

	return cmd
}
