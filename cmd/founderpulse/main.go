package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/catalog"
	"github.com/alexanderramin/founderpulse/internal/cli"
	"github.com/alexanderramin/founderpulse/internal/config"
	"github.com/alexanderramin/founderpulse/internal/db"
	"github.com/alexanderramin/founderpulse/internal/httpapi"
	"github.com/alexanderramin/founderpulse/internal/insight"
	"github.com/alexanderramin/founderpulse/internal/jobs"
	"github.com/alexanderramin/founderpulse/internal/llm"
	"github.com/alexanderramin/founderpulse/internal/logging"
	"github.com/alexanderramin/founderpulse/internal/repository"
	"github.com/alexanderramin/founderpulse/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrapFlags are the flags needed before the command tree exists.
type bootstrapFlags struct {
	configPath string
	dbPath     string
}

// scanBootstrapFlags picks --config and --db out of args, ignoring
// everything else. cobra parses the full set later.
func scanBootstrapFlags(args []string) bootstrapFlags {
	var f bootstrapFlags
	fs := pflag.NewFlagSet("bootstrap", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.StringVar(&f.configPath, "config", "", "")
	fs.StringVar(&f.dbPath, "db", "", "")
	fs.BoolP("help", "h", false, "")
	_ = fs.Parse(args)
	return f
}

func run() error {
	flags := scanBootstrapFlags(os.Args[1:])

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.dbPath != "" {
		cfg.DB.Path = flags.dbPath
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	logger, syncLogs, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer syncLogs()

	// Open database
	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	assessmentRepo := repository.NewSQLiteAssessmentRepo(database)
	checkInRepo := repository.NewSQLiteCheckInRepo(database)
	burnoutRepo := repository.NewSQLiteBurnoutRepo(database)
	actionRepo := repository.NewSQLiteActionRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	cat := catalog.Default()

	metrics, err := service.NewPrometheusUseCaseObserver(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}
	observers := []service.UseCaseObserver{service.NewZapUseCaseObserver(logger), metrics}

	settings := service.Settings{
		Location:        loc,
		TrendWindowDays: cfg.Engine.TrendWindowDays,
		StatsWindowDays: cfg.Engine.StatsWindowDays,
		NotesMaxLen:     cfg.Engine.NotesMaxLen,
		InsightTimeout:  time.Duration(cfg.Engine.InsightTimeoutMs) * time.Millisecond,
	}

	gen := insightGenerator(context.Background(), cfg.LLM, logger)
	var insights app.InsightProvider = insight.NewProvider(gen, logger)

	// Wire services
	assessments := service.NewAssessmentService(assessmentRepo, cat, settings, observers...)
	actions := service.NewActionService(
		service.ActionRepos{Actions: actionRepo, Assessments: assessmentRepo, Burnouts: burnoutRepo},
		cat, uow, logger, settings, observers...,
	)
	svc := httpapi.Services{
		Assessments: assessments,
		CheckIns:    service.NewCheckInService(checkInRepo, settings, observers...),
		Burnout:     service.NewBurnoutService(burnoutRepo, uow, insights, settings, observers...),
		Actions:     actions,
		Progress:    service.NewProgressService(actionRepo, settings, observers...),
	}

	a := &cli.App{
		Assessments: svc.Assessments,
		CheckIns:    svc.CheckIns,
		Burnout:     svc.Burnout,
		Actions:     svc.Actions,
		Progress:    svc.Progress,
		Questions:   cat.Questions(),
		UserID:      cfg.User.ID,
		Location:    loc,
		NotesMaxLen: cfg.Engine.NotesMaxLen,
	}

	// Detect interactive terminal for the questionnaire and check-in forms.
	a.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	a.Serve = func(ctx context.Context) error {
		if cfg.Scheduler.Enabled {
			sched, err := jobs.New(assessments, actions, jobs.Config{Location: loc, DailyHour: cfg.Scheduler.DailyHour}, logger)
			if err != nil {
				return err
			}
			if err := sched.Start(); err != nil {
				return err
			}
			defer func() {
				if err := sched.Stop(); err != nil {
					logger.Warn("stopping scheduler", zap.Error(err))
				}
			}()
		}
		router := httpapi.NewRouter(svc, logger, prometheus.DefaultGatherer)
		return httpapi.ListenAndServe(ctx, cfg.Server.Addr, router, logger)
	}

	// Execute root command
	return cli.NewRootCmd(a).Execute()
}

// insightGenerator returns the Ollama client when the language model is
// enabled and reachable, and nil otherwise so insights use fixed text.
func insightGenerator(ctx context.Context, cfg llm.LLMConfig, logger *zap.Logger) llm.Generator {
	if !cfg.Enabled {
		return nil
	}
	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LogCalls {
		observer = llm.NewLogObserver(logger)
	}
	client := llm.NewOllamaClient(cfg, observer)
	if !client.Available(ctx) {
		logger.Warn("ollama not reachable, using fixed insight text",
			zap.String("endpoint", cfg.Endpoint))
		return nil
	}
	return client
}
