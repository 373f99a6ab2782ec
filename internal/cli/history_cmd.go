package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/ethos/internal/cli/formatter"
	"github.com/alexanderramin/ethos/internal/contract"
	"github.com/alexanderramin/ethos/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// moralValueFlag parses a universal moral value from the command line.
type moralValueFlag struct {
	value *domain.MoralValue
}

var _ pflag.Value = (*moralValueFlag)(nil)

func (f *moralValueFlag) String() string { return string(*f.value) }

func (f *moralValueFlag) Set(s string) error {
	switch v := domain.MoralValue(strings.ToUpper(s)); v {
	case domain.Good, domain.Bad, domain.Neutral:
		*f.value = v
		return nil
	default:
		return fmt.Errorf("must be GOOD, BAD or NEUTRAL")
	}
}

func (f *moralValueFlag) Type() string { return "GOOD|BAD|NEUTRAL" }

func newHistoryCmd(app *App) *cobra.Command {
	var contextName string
	var limit int
	var majority domain.MoralValue

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past evaluation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := app.Evaluations.History(context.Background(), contextName, limit)
			if err != nil {
				return err
			}
			if majority != "" {
				reports = filterByMajority(reports, majority)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(reports))
			return nil
		},
	}

	cmd.Flags().StringVar(&contextName, "context", "", "Only show runs for this context")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")
	cmd.Flags().Var(&moralValueFlag{&majority}, "majority", "Only show runs whose majority is this core value")
	return cmd
}

func filterByMajority(reports []*contract.Report, majority domain.MoralValue) []*contract.Report {
	var filtered []*contract.Report
	for _, r := range reports {
		if r.Summarize().Majority == majority {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
