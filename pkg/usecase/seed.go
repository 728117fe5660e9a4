package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pustaka/pkg/domain/model"
)

type sampleBook struct {
	title    string
	author   string
	isbn     string
	year     int
	category string
}

var sampleBooks = []sampleBook{
	{"Laskar Pelangi", "Andrea Hirata", "978-979-433-549-9", 2005, "Fiction"},
	{"Bumi Manusia", "Pramoedya Ananta Toer", "978-979-433-550-5", 1980, "Fiction"},
	{"Algoritma dan Pemrograman", "Rinaldi Munir", "978-979-433-551-2", 2019, "Computing"},
	{"Matematika Diskrit", "Kenneth Rosen", "978-979-433-552-9", 2018, "Mathematics"},
	{"Clean Code", "Robert Martin", "978-979-433-553-6", 2008, "Computing"},
}

// SampleBookCount is the number of books added by SeedSamples
var SampleBookCount = len(sampleBooks)

// SeedSamples adds the fixed demonstration books with auto-assigned IDs
func (c *Catalogue) SeedSamples(ctx context.Context) error {
	for _, s := range sampleBooks {
		if _, err := c.AddBook(s.title, s.author, s.isbn, s.year, s.category); err != nil {
			return goerr.Wrap(err, "failed to add sample book", goerr.V("title", s.title))
		}
	}

	ctxlog.From(ctx).Info("Sample books loaded",
		slog.Int("count", len(sampleBooks)),
		slog.Int("total", c.TotalBooks()),
	)
	return nil
}

// Import adds the books of a seed file with their own IDs. It stops at the
// first failure and returns how many books were added before it.
func (c *Catalogue) Import(ctx context.Context, cfg *model.SeedConfig) (int, error) {
	if cfg == nil {
		return 0, goerr.New("seed config is nil", goerr.T(model.ErrTagInvalidArgument))
	}

	logger := ctxlog.From(ctx)
	imported := 0
	for i := range cfg.Books {
		entry := &cfg.Books[i]
		book, err := entry.Build()
		if err != nil {
			return imported, goerr.Wrap(err, "invalid seed entry",
				goerr.V("index", i),
				goerr.V("id", entry.ID))
		}
		if err := c.AddRecord(book); err != nil {
			return imported, goerr.Wrap(err, "failed to import book",
				goerr.V("index", i),
				goerr.V("id", entry.ID))
		}
		imported++
		logger.Debug("Book imported",
			slog.Int("id", book.ID().Int()),
			slog.String("title", book.Title()),
			slog.String("status", book.Status().String()),
		)
	}

	logger.Info("Seed file imported", slog.Int("count", imported))
	return imported, nil
}
