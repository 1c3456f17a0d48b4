package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/bugbee/internal/bugbee"
	"github.com/colonyops/bugbee/internal/core/eventbus"
	"github.com/colonyops/bugbee/internal/core/logging"
	"github.com/colonyops/bugbee/internal/profiler"
	"github.com/colonyops/bugbee/internal/server"
)

const shutdownTimeout = 5 * time.Second

type ServeCmd struct {
	flags *Flags
	app   *bugbee.App

	// flags
	pprofPort int64
}

// NewServeCmd creates a new serve command
func NewServeCmd(flags *Flags, app *bugbee.App) *ServeCmd {
	return &ServeCmd{flags: flags, app: app}
}

// Register adds the serve command to the application
func (cmd *ServeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "serve",
		Usage:     "Run the HTTP API server",
		UsageText: "bugbee serve [--pprof PORT]",
		Description: `Serves the bugbee API on the configured listen address until
interrupted. The web front end and any API clients talk to this process.`,
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:        "pprof",
				Usage:       "also serve pprof on this port (0 disables)",
				Destination: &cmd.pprofPort,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ServeCmd) run(ctx context.Context, c *cli.Command) error {
	// Surface item lifecycle events in the server log.
	evlog := logging.Component("events")
	cmd.app.Bus.SubscribeItemCreated(func(p eventbus.ItemCreatedPayload) {
		evlog.Info().Str("id", p.Item.ID).Str("kind", string(p.Item.Kind)).Msg("item created")
	})
	cmd.app.Bus.SubscribeItemCompleted(func(p eventbus.ItemCompletedPayload) {
		evlog.Info().Str("id", p.Item.ID).Msg("item completed")
	})
	cmd.app.Bus.SubscribeItemDeleted(func(p eventbus.ItemDeletedPayload) {
		evlog.Info().Str("id", p.ItemID).Msg("item deleted")
	})

	srv := server.New(cmd.app, logging.Component("server"))
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	var prof *profiler.Server
	if cmd.pprofPort > 0 {
		prof = profiler.New(int(cmd.pprofPort))
		if err := prof.Start(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to start profiler server")
			prof = nil
		}
	}

	fmt.Fprintf(os.Stderr, "bugbee listening on %s\n", srv.Addr())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if prof != nil {
		_ = prof.Shutdown(shutdownCtx)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	return nil
}
