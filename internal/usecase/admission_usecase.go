// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// EnqueueInput defines the data carried by one admission attempt.
type EnqueueInput struct {
	DeviceID       string
	ActivationCode string
}

// --- Output DTOs ---

// EnqueueOutput is the admission response envelope. Status 0 means a clean
// enqueue; soft conditions set Status 1 with a message but still carry the
// best-known queue position.
type EnqueueOutput struct {
	Status    int    `json:"status"`
	Place     int64  `json:"place"`
	Total     int64  `json:"total"`
	Activated bool   `json:"activated"`
	Message   string `json:"message,omitempty"`
}

// AdmissionUsecase decides, for a new or returning device, whether to insert,
// report a duplicate, or update activation state.
type AdmissionUsecase interface {
	Enqueue(ctx context.Context, input *EnqueueInput) (*EnqueueOutput, error)
}
