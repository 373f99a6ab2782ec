package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/ethos/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newEvaluateCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "evaluate <name>",
		Short: "Evaluate a stored context under every framework",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Evaluations.EvaluateContext(context.Background(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding report: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the raw report as JSON")
	return cmd
}
