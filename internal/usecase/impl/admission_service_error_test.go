package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "waitline/internal/domain/errors"
	"waitline/internal/domain/repository"
	"waitline/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdmissionService_Enqueue_MissingDeviceID(t *testing.T) {
	fx := createTestAdmissionService(t, time.Time{})

	out, err := fx.service.Enqueue(context.Background(), &usecase.EnqueueInput{DeviceID: "   "})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceIDRequired)
}

func TestAdmissionService_Enqueue_StoreFailure(t *testing.T) {
	fx := createTestAdmissionService(t, time.Time{})
	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection refused"))

	out, err := fx.service.Enqueue(ctx, &usecase.EnqueueInput{DeviceID: "device-123"})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrQueueUnavailable)
}

func TestAdmissionService_Enqueue_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestAdmissionService(t, time.Time{})
	ctx := context.Background()

	expectTransaction(t, fx.txManager, fx.repoFactory)
	fx.expectRepos()
	fx.clock.EXPECT().Now().Return(fixedNow)

	fx.deviceRepo.EXPECT().
		FindByID(ctx, "device-123").
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	fx.deviceRepo.EXPECT().
		PlaceAndTotal(ctx, mock.AnythingOfType("int64")).
		Return(&repository.QueuePosition{Place: 1, Total: 1}, nil)

	fx.publisher.EXPECT().
		PublishQueueEvent(ctx, mock.AnythingOfType("*service.QueueEvent")).
		Return(errors.New("broker down"))

	out, err := fx.service.Enqueue(ctx, &usecase.EnqueueInput{DeviceID: "device-123"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Status)
}
