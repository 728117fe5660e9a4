package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pustaka/pkg/repository"
	"github.com/secmon-lab/pustaka/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Catalogue holds catalogue configuration
type Catalogue struct {
	Name      string
	Capacity  int
	SeedFile  string
	NoSamples bool
}

// Flags returns CLI flags for Catalogue configuration
func (c *Catalogue) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "name",
			Usage:       "Catalogue name",
			Category:    "Catalogue",
			Value:       "Digital Library",
			Sources:     cli.EnvVars("PUSTAKA_NAME"),
			Destination: &c.Name,
		},
		&cli.IntFlag{
			Name:        "capacity",
			Usage:       "Maximum number of books",
			Category:    "Catalogue",
			Value:       usecase.DefaultCapacity,
			Sources:     cli.EnvVars("PUSTAKA_CAPACITY"),
			Destination: &c.Capacity,
		},
		&cli.StringFlag{
			Name:        "seed-file",
			Usage:       "YAML file of books to import at startup",
			Category:    "Catalogue",
			Sources:     cli.EnvVars("PUSTAKA_SEED_FILE"),
			Destination: &c.SeedFile,
		},
		&cli.BoolFlag{
			Name:        "no-samples",
			Usage:       "Start without the sample books",
			Category:    "Catalogue",
			Sources:     cli.EnvVars("PUSTAKA_NO_SAMPLES"),
			Destination: &c.NoSamples,
		},
	}
}

// LogValue returns structured log value
func (c Catalogue) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", c.Name),
		slog.Int("capacity", c.Capacity),
		slog.String("seed_file", c.SeedFile),
		slog.Bool("no_samples", c.NoSamples),
	)
}

// Configure creates an in-memory catalogue, then loads the sample books and
// the seed file in that order
func (c *Catalogue) Configure(ctx context.Context) (*usecase.Catalogue, error) {
	catalogue, err := usecase.NewCatalogue(c.Name, c.Capacity, repository.NewMemory())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create catalogue",
			goerr.V("name", c.Name),
			goerr.V("capacity", c.Capacity))
	}

	if !c.NoSamples {
		if err := catalogue.SeedSamples(ctx); err != nil {
			return nil, goerr.Wrap(err, "failed to load sample books")
		}
	}

	if c.SeedFile != "" {
		seed, err := LoadSeedFromFile(c.SeedFile)
		if err != nil {
			return nil, err
		}
		if _, err := catalogue.Import(ctx, seed); err != nil {
			return nil, goerr.Wrap(err, "failed to import seed file", goerr.V("path", c.SeedFile))
		}
	}

	ctxlog.From(ctx).Debug("Catalogue configured", slog.Any("catalogue", c))
	return catalogue, nil
}
