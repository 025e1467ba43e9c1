package impl

import (
	"context"
	"testing"

	domainerrors "waitline/internal/domain/errors"
	"waitline/internal/domain/repository"
	mockRepo "waitline/internal/mocks/repository"
	"waitline/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statsServiceFixtures holds all test dependencies for stats service tests.
type statsServiceFixtures struct {
	service    usecase.StatsUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestStatsService(t *testing.T) statsServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	service := NewStatsService(StatsServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     newDiscardLogger(),
	})

	return statsServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestStatsService_QueueInfo(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		Counts(ctx).
		Return(&repository.QueueCounts{LetIn: 120, StillWaiting: 4500}, nil)

	out, err := fx.service.QueueInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120), out.LetIn)
	assert.Equal(t, int64(4500), out.StillWaiting)
}

func TestStatsService_QueueInfo_EmptyLine(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		Counts(ctx).
		Return(&repository.QueueCounts{}, nil)

	out, err := fx.service.QueueInfo(ctx)
	require.NoError(t, err)
	assert.Zero(t, out.LetIn)
	assert.Zero(t, out.StillWaiting)
}

func TestStatsService_QueueInfo_StoreFailure(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		Counts(ctx).
		Return(nil, errors.New("connection refused"))

	out, err := fx.service.QueueInfo(ctx)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrQueueUnavailable)
}
