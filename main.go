package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/bugbee/internal/bugbee"
	"github.com/colonyops/bugbee/internal/commands"
	"github.com/colonyops/bugbee/internal/core/config"
	"github.com/colonyops/bugbee/internal/core/eventbus"
	"github.com/colonyops/bugbee/internal/core/logging"
	"github.com/colonyops/bugbee/internal/data/db"
	"github.com/colonyops/bugbee/internal/data/stores"
	"github.com/colonyops/bugbee/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		bugbeeApp = &bugbee.App{}
		database  *db.DB
		busCancel context.CancelFunc
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "bugbee",
		Usage:     "Lightweight work tracking for small teams",
		UsageText: "bugbee [global options] command [command options]",
		Description: `Bugbee tracks bugs, features, tasks, and ideas in a single SQLite
database. Run 'bugbee serve' to expose the HTTP API for the web front
end, or use the item and focus commands directly from the terminal.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("BUGBEE_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to the state directory)",
				Sources:     cli.EnvVars("BUGBEE_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("BUGBEE_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("BUGBEE_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logFile := flags.LogFile
			if logFile == "" {
				logFile = commands.DefaultLogFile()
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
				return ctx, fmt.Errorf("create data dir: %w", err)
			}

			dbOpts := db.OpenOptions{
				MaxOpenConns: cfg.Database.MaxOpenConns,
				MaxIdleConns: cfg.Database.MaxIdleConns,
				BusyTimeout:  cfg.Database.BusyTimeout,
			}
			database, err = db.Open(cfg.DataDir, dbOpts)
			if err != nil {
				if !stores.IsCorruptionError(err) {
					return ctx, fmt.Errorf("open database: %w", err)
				}

				// Move the corrupt file aside and start fresh.
				log.Error().Err(err).Msg("database corrupted, attempting recovery")
				if rerr := stores.RecoverFromCorruption(cfg.DataDir); rerr != nil {
					return ctx, fmt.Errorf("recover database: %w", rerr)
				}
				database, err = db.Open(cfg.DataDir, dbOpts)
				if err != nil {
					return ctx, fmt.Errorf("open database after recovery: %w", err)
				}
			}

			bus := eventbus.New()
			eventbus.RegisterDebugLogger(bus, log.Logger)

			busCtx, cancel := context.WithCancel(context.Background())
			busCancel = cancel
			go bus.Run(busCtx)

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*bugbeeApp = *bugbee.NewApp(
				cfg,
				database,
				bus,
				stores.NewWorkItemStore(database),
				stores.NewMemberStore(database),
				stores.NewProjectStore(database),
				stores.NewActivityStore(database),
				logging.Component("bugbee"),
			)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Stop event dispatch
			if busCancel != nil {
				busCancel()
			}

			// Close database connection
			if database != nil {
				if err := database.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close database")
					return err
				}
			}

			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewServeCmd(flags, bugbeeApp).Register(app)
	app = commands.NewItemCmd(flags, bugbeeApp).Register(app)
	app = commands.NewFocusCmd(flags, bugbeeApp).Register(app)
	app = commands.NewConfigValidateCmd(flags, bugbeeApp).Register(app)

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
