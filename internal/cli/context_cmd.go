package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/ethos/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newContextCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Manage stored moral contexts",
	}

	cmd.AddCommand(
		newContextListCmd(app),
		newContextShowCmd(app),
		newContextImportCmd(app),
		newContextExportCmd(app),
		newContextRemoveCmd(app),
	)

	return cmd
}

func newContextListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored contexts",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := app.Contexts.ListContexts(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatContextList(summaries))
			return nil
		},
	}
}

func newContextShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show the full detail of a stored context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mc, err := app.Contexts.LoadContext(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatContext(args[0], mc))
			return nil
		},
	}
}

func newContextImportCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a context from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}
			if err := app.Contexts.ImportFile(context.Background(), path, name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported context %q\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name to store the context under (default: file basename)")
	return cmd
}

func newContextExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export a stored context to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Contexts.ExportFile(context.Background(), args[0], out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported context %q to %s\n", args[0], out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file path")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newContextRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a stored context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Contexts.DeleteContext(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed context %q\n", args[0])
			return nil
		},
	}
}
