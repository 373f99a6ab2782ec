package cli

import (
	"fmt"

	"github.com/alexanderramin/ethos/internal/cli/formatter"
	"github.com/alexanderramin/ethos/internal/domain"
	"github.com/spf13/cobra"
)

func newFrameworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frameworks",
		Short: "List the frameworks and their verdict vocabularies",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFrameworks(frameworkCatalog()))
			return nil
		},
	}
}

// frameworkCatalog enumerates every framework's verdict values in the
// canonical display order.
func frameworkCatalog() []formatter.FrameworkInfo {
	return []formatter.FrameworkInfo{
		{Name: "Kantian", Verdicts: []domain.Verdict{
			domain.KantianPermissible, domain.KantianImpermissible,
		}},
		{Name: "Utilitarian", Verdicts: []domain.Verdict{
			domain.UtilitarianPermissible, domain.UtilitarianImpermissible, domain.UtilitarianNeutral,
		}},
		{Name: "Aristotelian", Verdicts: []domain.Verdict{
			domain.AristotelianVirtuous, domain.AristotelianVicious,
			domain.AristotelianContinent, domain.AristotelianIncontinent,
		}},
		{Name: "Contractualist", Verdicts: []domain.Verdict{
			domain.ContractualistPermissible, domain.ContractualistImpermissible,
		}},
		{Name: "Rossian", Verdicts: []domain.Verdict{
			domain.RossianPermissible, domain.RossianImpermissible, domain.RossianConflicting,
		}},
		{Name: "Nietzschean", Verdicts: []domain.Verdict{
			domain.NietzscheanMasterGood, domain.NietzscheanMasterBad,
			domain.NietzscheanSlaveGood, domain.NietzscheanSlaveBad,
		}},
		{Name: "Ethics of Care", Verdicts: []domain.Verdict{
			domain.CareCaring, domain.CareUncaring, domain.CareNeutral,
		}},
		{Name: "Rawlsian", Verdicts: []domain.Verdict{
			domain.RawlsianJust, domain.RawlsianUnjust, domain.RawlsianNeutral,
		}},
	}
}
