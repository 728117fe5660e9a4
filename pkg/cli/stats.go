package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pustaka/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdStats(catalogueCfg *config.Catalogue) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Load the catalogue, print its statistics and exit",
		Action: func(ctx context.Context, c *cli.Command) error {
			catalogue, err := catalogueCfg.Configure(ctx)
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintln(c.Root().Writer, catalogue.Statistics()); err != nil {
				return goerr.Wrap(err, "failed to write statistics")
			}
			return nil
		},
	}
}
