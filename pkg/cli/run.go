package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pustaka/pkg/cli/config"
	"github.com/secmon-lab/pustaka/pkg/controller/console"
	"github.com/urfave/cli/v3"
)

func cmdRun(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  "Start the interactive catalogue menu",
		Action: action,
	}
}

// runCatalogue is shared by the run command and the root command so that
// starting without a subcommand opens the menu
func runCatalogue(catalogueCfg *config.Catalogue) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		logger := ctxlog.From(ctx)
		logger.Info("Starting pustaka", slog.Any("catalogue", catalogueCfg))

		catalogue, err := catalogueCfg.Configure(ctx)
		if err != nil {
			return err
		}

		root := c.Root()
		session, err := console.NewSession(catalogue, root.Reader, root.Writer)
		if err != nil {
			return goerr.Wrap(err, "failed to create session")
		}

		if err := session.Start(ctx); err != nil {
			return goerr.Wrap(err, "session aborted", goerr.V("session_id", session.ID()))
		}

		logger.Info("Session finished", slog.String("session_id", session.ID().String()))
		return nil
	}
}
