package cli

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pustaka/pkg/cli/config"
	"github.com/secmon-lab/pustaka/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application on the process standard streams
func Run(ctx context.Context, args []string) error {
	if err := loadDotEnv(".env"); err != nil {
		return err
	}
	return run(ctx, args, os.Stdin, os.Stdout, os.Stderr)
}

// loadDotEnv exports variables from path when the file exists. Variables
// already set in the environment win.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return goerr.Wrap(err, "failed to load env file", goerr.V("path", path))
	}
	return nil
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	var (
		loggerCfg    config.Logger
		catalogueCfg config.Catalogue
		logger       = slog.Default()
	)

	runAction := runCatalogue(&catalogueCfg)

	app := &cli.Command{
		Name:      "pustaka",
		Usage:     "Interactive library catalogue",
		Version:   "0.1.0",
		Flags:     joinFlags(loggerCfg.Flags(), catalogueCfg.Flags()),
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			configured, err := loggerCfg.Configure(errOut)
			if err != nil {
				return nil, err
			}

			logger = configured
			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: runAction,
		Commands: []*cli.Command{
			cmdRun(runAction),
			cmdStats(&catalogueCfg),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		apperr.Handle(ctxlog.With(ctx, logger), err)
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}
