package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/ethos/internal/cli"
	"github.com/alexanderramin/ethos/internal/db"
	"github.com/alexanderramin/ethos/internal/engine"
	"github.com/alexanderramin/ethos/internal/repository"
	"github.com/alexanderramin/ethos/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.ethos/ethos.db
	dbPath := os.Getenv("ETHOS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".ethos", "ethos.db")
	}

	// Plain output when stdout is not a terminal.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	contextRepo := repository.NewSQLiteContextRepo(database)
	evaluationRepo := repository.NewSQLiteEvaluationRepo(database)

	// Wire services
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("ETHOS_LOG") == "1" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}
	runner := engine.NewRunner()

	app := &cli.App{
		Contexts:    service.NewContextService(contextRepo, observer),
		Evaluations: service.NewEvaluationService(runner, contextRepo, evaluationRepo, observer),
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
