package apperr

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pustaka/pkg/domain/model"
)

// Handle logs an error that reached the top of an operation without being
// one of the expected catalogue failures
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	attrs := []any{
		slog.Any("error", err),
		slog.String("kind", model.KindOf(err).String()),
	}
	for k, v := range goerr.Values(err) {
		attrs = append(attrs, slog.Any(k, v))
	}

	ctxlog.From(ctx).Error("application error", attrs...)
}
