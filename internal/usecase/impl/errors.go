// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "waitline/internal/delivery/context"
	domainerrors "waitline/internal/domain/errors"

	"github.com/pkg/errors"
)

// mapStoreError passes hard application errors through unchanged and folds
// everything else (driver failures, lost connections) into the
// store-unavailable failure after logging the cause. The store is never
// retried here; callers may retry externally.
func mapStoreError(ctx context.Context, logger *slog.Logger, op string, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, logger).Error("Store operation failed",
		slog.String("op", op),
		slog.Any("error", err),
	)

	return domainerrors.ErrQueueUnavailable
}
