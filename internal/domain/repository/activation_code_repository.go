package repository

import (
	"context"

	"waitline/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCodeNotFound is returned when no pending code matches a token.
var ErrCodeNotFound = errors.New("activation code not found")

// ActivationCodeRepository defines the interface for activation-code database operations.
type ActivationCodeRepository interface {
	// FindPendingByCode retrieves the unused code matching the presented token.
	// Used codes never match; they return ErrCodeNotFound.
	FindPendingByCode(ctx context.Context, code string) (*entity.ActivationCode, error)

	// Claim consumes a code with a single conditional update. It returns true
	// only for the one caller whose update flipped used from false to true;
	// concurrent claimers of the same code observe false.
	Claim(ctx context.Context, id int64) (bool, error)
}
