package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/studyweek/internal/cli"
	"github.com/alexanderramin/studyweek/internal/cli/formatter"
	"github.com/alexanderramin/studyweek/internal/config"
	"github.com/alexanderramin/studyweek/internal/db"
	"github.com/alexanderramin/studyweek/internal/repository"
	"github.com/alexanderramin/studyweek/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	formatter.SetColorEnabled(cfg.UseColor(stdoutTTY))

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	planRepo := repository.NewSQLitePlanRepo(database)
	completionRepo := repository.NewSQLiteCompletionRepo(database)
	confidenceRepo := repository.NewSQLiteConfidenceRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Plans:    service.NewPlanService(planRepo, nil, observer),
		Progress: service.NewProgressService(planRepo, completionRepo, confidenceRepo, uow, nil, observer),
	}
	if cfg.HasSeed {
		seed := cfg.Seed
		app.Seed = &seed
	}

	// Detect interactive terminal for the wizard and the week browser.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
