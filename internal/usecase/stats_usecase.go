package usecase

import "context"

// QueueInfoOutput is the read-only projection of the waiting line.
type QueueInfoOutput struct {
	LetIn        int64 `json:"let_in"`
	StillWaiting int64 `json:"still_waiting"`
}

// StatsUsecase exposes aggregate queue figures.
type StatsUsecase interface {
	QueueInfo(ctx context.Context) (*QueueInfoOutput, error)
}
