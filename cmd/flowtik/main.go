package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/flowtik/flowtik/internal/cli"
	"github.com/flowtik/flowtik/internal/db"
	"github.com/flowtik/flowtik/internal/repository"
	"github.com/flowtik/flowtik/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.flowtik/flowtik.db
	dbPath := os.Getenv("FLOWTIK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".flowtik", "flowtik.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	intervalRepo := repository.NewSQLiteIntervalRepo(database)
	queryRepo := repository.NewSQLiteQueryRepo(database)

	// Wire unit of work for transactional timer operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Timer use-case logging is opt-in via FLOWTIK_LOG=1.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("FLOWTIK_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	summarySvc := service.NewSummaryService(userRepo, taskRepo, intervalRepo)
	timerSvc := service.NewTimerService(userRepo, taskRepo, intervalRepo, summarySvc, uow, observer)

	app := &cli.App{
		Timers:    timerSvc,
		Summaries: summarySvc,
		Tasks:     service.NewTaskService(taskRepo, userRepo, intervalRepo, queryRepo),
		Users:     service.NewUserService(userRepo),
		Queries:   service.NewQueryService(queryRepo, taskRepo, userRepo),
	}

	// Detect interactive terminal for the watch view and form prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
