package cli

import (
	"github.com/alexanderramin/ethos/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Contexts    service.ContextService
	Evaluations service.EvaluationService
}

// NewRootCmd creates the top-level "ethos" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ethos",
		Short: "Evaluate actions against competing ethical frameworks",
		Long: "ethos evaluates a described action against eight ethical frameworks\n" +
			"(Kantian, Utilitarian, Aristotelian, Contractualist, Rossian,\n" +
			"Nietzschean, Ethics of Care, Rawlsian) and reports each verdict plus\n" +
			"a unified good/bad/neutral summary.",
	}

	root.AddCommand(
		newContextCmd(app),
		newEvaluateCmd(app),
		newScenarioCmd(app),
		newFrameworksCmd(),
		newHistoryCmd(app),
	)

	return root
}
