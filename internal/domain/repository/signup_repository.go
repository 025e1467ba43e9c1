package repository

import (
	"context"

	"waitline/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSignupRequestNotFound is returned when a validation hash matches no pending request.
var ErrSignupRequestNotFound = errors.New("signup request not found")

// SignupRepository defines the interface for the registration-for-updates subsystem.
type SignupRepository interface {
	// CreateRequest persists a pending signup request keyed by its hash.
	CreateRequest(ctx context.Context, request *entity.SignupRequest) error

	// FindRequestByHash retrieves a pending request by the presented hash.
	FindRequestByHash(ctx context.Context, hash string) (*entity.SignupRequest, error)

	// DeleteRequest removes a pending request once it has been promoted.
	DeleteRequest(ctx context.Context, hash string) error

	// UpsertSignup creates the confirmed signup for an email, or returns the
	// existing one when the address confirmed before.
	UpsertSignup(ctx context.Context, email string) (*entity.Signup, error)

	// LinkDevice associates a confirmed signup with a device. Linking the same
	// pair twice is a no-op.
	LinkDevice(ctx context.Context, signupID int64, deviceID string) error
}
