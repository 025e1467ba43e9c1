package usecase

import "context"

// SignupInput defines the data required to request launch updates.
type SignupInput struct {
	Email    string
	DeviceID string
}

// ConfirmOutput returns the confirmed address after a validation hash is
// presented back.
type ConfirmOutput struct {
	Email string `json:"email"`
}

// SignupUsecase handles the registration-for-updates subsystem: a pending
// request keyed by a random salted hash, promoted to a confirmed signup when
// the hash is presented back.
type SignupUsecase interface {
	// RequestUpdates creates a pending signup request and mails the
	// validation link.
	RequestUpdates(ctx context.Context, input *SignupInput) error

	// ConfirmEmail promotes the pending request matching the hash.
	ConfirmEmail(ctx context.Context, hash string) (*ConfirmOutput, error)
}
