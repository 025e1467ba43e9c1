package impl

import (
	"context"
	"log/slog"

	"waitline/internal/domain/repository"
	"waitline/internal/usecase"

	"go.uber.org/fx"
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

// QueueInfo reports how many devices are in versus still waiting. Both
// figures come from one aggregate pass so they describe the same snapshot.
func (srv *statsService) QueueInfo(ctx context.Context) (*usecase.QueueInfoOutput, error) {
	counts, err := srv.deviceRepo.Counts(ctx)
	if err != nil {
		return nil, mapStoreError(ctx, srv.logger, "queue_info", err)
	}

	return &usecase.QueueInfoOutput{
		LetIn:        counts.LetIn,
		StillWaiting: counts.StillWaiting,
	}, nil
}
