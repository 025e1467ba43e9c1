package impl

import (
	"context"
	"testing"
	"time"

	"waitline/internal/domain/entity"
	"waitline/internal/domain/repository"
	"waitline/internal/domain/service"
	mockRepo "waitline/internal/mocks/repository"
	mockService "waitline/internal/mocks/service"
	"waitline/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// admissionServiceFixtures holds all test dependencies for admission service tests.
type admissionServiceFixtures struct {
	service     usecase.AdmissionUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	deviceRepo  *mockRepo.MockDeviceRepository
	codeRepo    *mockRepo.MockActivationCodeRepository
	publisher   *mockService.MockEventPublisher
	clock       *mockService.MockClock
}

func createTestAdmissionService(t *testing.T, prelaunchCutoff time.Time) admissionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	codeRepo := mockRepo.NewMockActivationCodeRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	clock := mockService.NewMockClock(t)

	cfg := newTestConfig()
	cfg.Launch.PrelaunchCutoff = prelaunchCutoff

	service := NewAdmissionService(AdmissionServiceParams{
		TxManager: txManager,
		Publisher: publisher,
		Clock:     clock,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	return admissionServiceFixtures{
		service:     service,
		txManager:   txManager,
		repoFactory: repoFactory,
		deviceRepo:  deviceRepo,
		codeRepo:    codeRepo,
		publisher:   publisher,
		clock:       clock,
	}
}

// expectRepos wires the factory to hand out the fixture repositories inside
// the transaction.
func (f admissionServiceFixtures) expectRepos() {
	f.repoFactory.EXPECT().DeviceRepo().Return(f.deviceRepo)
	f.repoFactory.EXPECT().ActivationCodeRepo().Return(f.codeRepo)
}

func TestAdmissionService_Enqueue_NewDevice(t *testing.T) {
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
		RunAndReturn(func(_ context.Context, device *entity.Device) error {
			assert.Equal(t, "device-123", device.ID)
			assert.False(t, device.IsActivated)
			device.Priority = 42

			return nil
		})

	fx.deviceRepo.EXPECT().
		PlaceAndTotal(ctx, int64(42)).
		Return(&repository.QueuePosition{Place: 7, Total: 7}, nil)

	fx.publisher.EXPECT().
		PublishQueueEvent(ctx, mock.AnythingOfType("*service.QueueEvent")).
		RunAndReturn(func(_ context.Context, event *service.QueueEvent) error {
			assert.Equal(t, service.EventDeviceEnqueued, event.Type)
			assert.Equal(t, "device-123", event.DeviceID)

			return nil
		})

	out, err := fx.service.Enqueue(ctx, &usecase.EnqueueInput{DeviceID: "device-123"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Status)
	assert.Equal(t, int64(7), out.Place)
	assert.Equal(t, int64(7), out.Total)
	assert.False(t, out.Activated)
	assert.Empty(t, out.Message)
}

func TestAdmissionService_Enqueue_NewDeviceWithValidCode(t *testing.T) {
	fx := createTestAdmissionService(t, time.Time{})
	ctx := context.Background()

	expectTransaction(t, fx.txManager, fx.repoFactory)
	fx.expectRepos()
	fx.clock.EXPECT().Now().Return(fixedNow)

	fx.codeRepo.EXPECT().
		FindPendingByCode(ctx, "golden-ticket").
		Return(&entity.ActivationCode{ID: 9, Code: "golden-ticket"}, nil)

	fx.deviceRepo.EXPECT().
		FindByID(ctx, "device-123").
		Return(nil, repository.ErrDeviceNotFound)

	// The row lands first; the code is only spent once it has.
	fx.deviceRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Device")).
		RunAndReturn(func(_ context.Context, device *entity.Device) error {
			assert.False(t, device.IsActivated)
			assert.Nil(t, device.ActivationCodeID)
			device.Priority = 3

			return nil
		})

	fx.codeRepo.EXPECT().
		Claim(ctx, int64(9)).
		Return(true, nil)

	fx.deviceRepo.EXPECT().
		Activate(ctx, "device-123", int64(9)).
		Return(nil)

	fx.deviceRepo.EXPECT().
		PlaceAndTotal(ctx, int64(3)).
		Return(&repository.QueuePosition{Place: 1, Total: 40}, nil)

	fx.publisher.EXPECT().
		PublishQueueEvent(ctx, mock.AnythingOfType("*service.QueueEvent")).
		RunAndReturn(func(_ context.Context, event *service.QueueEvent) error {
			assert.Equal(t, service.EventDeviceActivated, event.Type)

			return nil
		})

	out, err := fx.service.Enqueue(ctx, &usecase.EnqueueInput{
		DeviceID:       "device-123",
		ActivationCode: "golden-ticket",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Status)
	assert.True(t, out.Activated)
}

func TestAdmissionService_Enqueue_UnknownCodeStillEnqueues(t *testing.T) {
	fx := createTestAdmissionService(t, time.Time{})
	ctx := context.Background()

	expectTransaction(t, fx.txManager, fx.repoFactory)
	fx.expectRepos()
	fx.clock.EXPECT().Now().Return(fixedNow)

	fx.codeRepo.EXPECT().
		FindPendingByCode(ctx, "bogus").
		Return(nil, repository.ErrCodeNotFound)

	fx.deviceRepo.EXPECT().
		FindByID(ctx, "device-123").
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Device")).
		RunAndReturn(func(_ context.Context, device *entity.Device) error {
			assert.False(t, device.IsActivated)
			device.Priority = 50

			return nil
		})

	fx.deviceRepo.EXPECT().
		PlaceAndTotal(ctx, int64(50)).
		Return(&repository.QueuePosition{Place: 12, Total: 12}, nil)

	fx.publisher.EXPECT().
		PublishQueueEvent(ctx, mock.AnythingOfType("*service.QueueEvent")).
		Return(nil)

	out, err := fx.service.Enqueue(ctx, &usecase.EnqueueInput{
		DeviceID:       "device-123",
		ActivationCode: "bogus",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Status)
	assert.Equal(t, "Activation code has already been used or does not exist.", out.Message)
	assert.False(t, out.Activated)
	assert.Equal(t, int64(12), out.Place)
}

func TestAdmissionService_Enqueue_RacedClaimFallsBackToWaiting(t *testing.T) {
	fx := createTestAdmissionService(t, time.Time{})
	ctx := context.Background()

	expectTransaction(t, fx.txManager, fx.repoFactory)
	fx.expectRepos()
	fx.clock.EXPECT().Now().Return(fixedNow)

	fx.codeRepo.EXPECT().
		FindPendingByCode(ctx, "golden-ticket").
		Return(&entity.ActivationCode{ID: 9, Code: "golden-ticket"}, nil)

	fx.deviceRepo.EXPECT().
		FindByID(ctx, "device-123").
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Device")).
		RunAndReturn(func(_ context.Context, device *entity.Device) error {
			assert.False(t, device.IsActivated)
			assert.Nil(t, device.ActivationCodeID)
			device.Priority = 60

			return nil
		})

	// Another request spent the code between lookup and claim.
	fx.codeRepo.EXPECT().
		Claim(ctx, int64(9)).
		Return(false, nil)

	fx.deviceRepo.EXPECT().
		PlaceAndTotal(ctx, int64(60)).
		Return(&repository.QueuePosition{Place: 13, Total: 13}, nil)

	fx.publisher.EXPECT().
		PublishQueueEvent(ctx, mock.AnythingOfType("*service.QueueEvent")).
		Return(nil)

	out, err := fx.service.Enqueue(ctx, &usecase.EnqueueInput{
		DeviceID:       "device-123",
		ActivationCode: "golden-ticket",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Status)
	assert.Equal(t, "Activation code has already been used or does not exist.", out.Message)
	assert.False(t, out.Activated)
}

func TestAdmissionService_Enqueue_DuplicateDevice(t *testing.T) {
	fx := createTestAdmissionService(t, time.Time{})
	ctx := context.Background()

	expectTransaction(t, fx.txManager, fx.repoFactory)
	fx.expectRepos()

	waiting := &entity.Device{ID: "device-123", Priority: 42}

	fx.deviceRepo.EXPECT().
		FindByID(ctx, "device-123").
		Return(waiting, nil)

	fx.deviceRepo.EXPECT().
		PlaceAndTotal(ctx, int64(42)).
		Return(&repository.QueuePosition{Place: 5, Total: 20}, nil)

	out, err := fx.service.Enqueue(ctx, &usecase.EnqueueInput{DeviceID: "device-123"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Status)
	assert.Equal(t, "Device is already in line.", out.Message)
	assert.False(t, out.Activated)
	assert.Equal(t, int64(5), out.Place)
	assert.Equal(t, int64(20), out.Total)
}

func TestAdmissionService_Enqueue_InsertRace(t *testing.T) {
	fx := createTestAdmissionService(t, time.Time{})
	ctx := context.Background()

	expectTransaction(t, fx.txManager, fx.repoFactory)
	fx.expectRepos()
	fx.clock.EXPECT().Now().Return(fixedNow)

	fx.deviceRepo.EXPECT().
		FindByID(ctx, "device-123").
		Return(nil, repository.ErrDeviceNotFound).
		Once()

	fx.deviceRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Device")).
		Return(repository.ErrDuplicateDevice)

	// The concurrent registration won; the existing row is reported.
	fx.deviceRepo.EXPECT().
		FindByID(ctx, "device-123").
		Return(&entity.Device{ID: "device-123", Priority: 42}, nil).
		Once()

	fx.deviceRepo.EXPECT().
		PlaceAndTotal(ctx, int64(42)).
		Return(&repository.QueuePosition{Place: 8, Total: 8}, nil)

	out, err := fx.service.Enqueue(ctx, &usecase.EnqueueInput{DeviceID: "device-123"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Status)
	assert.Equal(t, "Device is already in line.", out.Message)
	assert.Equal(t, int64(8), out.Place)
	assert.Equal(t, int64(8), out.Total)
}

func TestAdmissionService_Enqueue_InsertRaceWithCodeLeavesCodeUnspent(t *testing.T) {
	fx := createTestAdmissionService(t, time.Time{})
	ctx := context.Background()

	expectTransaction(t, fx.txManager, fx.repoFactory)
	fx.expectRepos()
	fx.clock.EXPECT().Now().Return(fixedNow)

	fx.codeRepo.EXPECT().
		FindPendingByCode(ctx, "golden-ticket").
		Return(&entity.ActivationCode{ID: 9, Code: "golden-ticket"}, nil)

	fx.deviceRepo.EXPECT().
		FindByID(ctx, "device-123").
		Return(nil, repository.ErrDeviceNotFound).
		Once()

	// The losing insert must not fail the attempt, and the read-back of the
	// winner's row must still work inside the same transaction. The code
	// stays pending: no Claim expectation is registered.
	fx.deviceRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Device")).
		Return(repository.ErrDuplicateDevice)

	fx.deviceRepo.EXPECT().
		FindByID(ctx, "device-123").
		Return(&entity.Device{ID: "device-123", Priority: 42}, nil).
		Once()

	fx.deviceRepo.EXPECT().
		PlaceAndTotal(ctx, int64(42)).
		Return(&repository.QueuePosition{Place: 8, Total: 8}, nil)

	out, err := fx.service.Enqueue(ctx, &usecase.EnqueueInput{
		DeviceID:       "device-123",
		ActivationCode: "golden-ticket",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Status)
	assert.Equal(t, "Device is already in line.", out.Message)
	assert.False(t, out.Activated)
	assert.Equal(t, int64(8), out.Place)
	assert.Equal(t, int64(8), out.Total)
}

func TestAdmissionService_Enqueue_AlreadyActivated(t *testing.T) {
	fx := createTestAdmissionService(t, time.Time{})
	ctx := context.Background()

	expectTransaction(t, fx.txManager, fx.repoFactory)
	fx.expectRepos()

	activatedAt := fixedNow
	admitted := &entity.Device{
		ID:          "device-123",
		Priority:    3,
		IsActivated: true,
		ActivatedAt: &activatedAt,
	}

	// The code must survive untouched: no Claim expectation is registered.
	fx.codeRepo.EXPECT().
		FindPendingByCode(ctx, "golden-ticket").
		Return(&entity.ActivationCode{ID: 9, Code: "golden-ticket"}, nil)

	fx.deviceRepo.EXPECT().
		FindByID(ctx, "device-123").
		Return(admitted, nil)

	fx.deviceRepo.EXPECT().
		PlaceAndTotal(ctx, int64(3)).
		Return(&repository.QueuePosition{Place: 1, Total: 30}, nil)

	out, err := fx.service.Enqueue(ctx, &usecase.EnqueueInput{
		DeviceID:       "device-123",
		ActivationCode: "golden-ticket",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Status)
	assert.Equal(t, "Device is already activated.", out.Message)
	assert.True(t, out.Activated)
}

func TestAdmissionService_Enqueue_CodeActivatesWaitingDevice(t *testing.T) {
	fx := createTestAdmissionService(t, time.Time{})
	ctx := context.Background()

	expectTransaction(t, fx.txManager, fx.repoFactory)
	fx.expectRepos()
	fx.clock.EXPECT().Now().Return(fixedNow)

	fx.codeRepo.EXPECT().
		FindPendingByCode(ctx, "golden-ticket").
		Return(&entity.ActivationCode{ID: 9, Code: "golden-ticket"}, nil)

	fx.deviceRepo.EXPECT().
		FindByID(ctx, "device-123").
		Return(&entity.Device{ID: "device-123", Priority: 42}, nil)

	fx.codeRepo.EXPECT().
		Claim(ctx, int64(9)).
		Return(true, nil)

	fx.deviceRepo.EXPECT().
		Activate(ctx, "device-123", int64(9)).
		Return(nil)

	fx.deviceRepo.EXPECT().
		PlaceAndTotal(ctx, int64(42)).
		Return(&repository.QueuePosition{Place: 5, Total: 20}, nil)

	fx.publisher.EXPECT().
		PublishQueueEvent(ctx, mock.AnythingOfType("*service.QueueEvent")).
		RunAndReturn(func(_ context.Context, event *service.QueueEvent) error {
			assert.Equal(t, service.EventDeviceActivated, event.Type)

			return nil
		})

	out, err := fx.service.Enqueue(ctx, &usecase.EnqueueInput{
		DeviceID:       "device-123",
		ActivationCode: "golden-ticket",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Status)
	assert.True(t, out.Activated)
}

func TestAdmissionService_Enqueue_PrelaunchWindowAdmitsDirectly(t *testing.T) {
	cutoff := fixedNow.Add(24 * time.Hour)
	fx := createTestAdmissionService(t, cutoff)
	ctx := context.Background()

	expectTransaction(t, fx.txManager, fx.repoFactory)
	fx.expectRepos()
	fx.clock.EXPECT().Now().Return(fixedNow)

	fx.deviceRepo.EXPECT().
		FindByID(ctx, "device-123").
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Device")).
		RunAndReturn(func(_ context.Context, device *entity.Device) error {
			assert.True(t, device.IsActivated)
			assert.Nil(t, device.ActivationCodeID)
			device.Priority = 2

			return nil
		})

	fx.deviceRepo.EXPECT().
		PlaceAndTotal(ctx, int64(2)).
		Return(&repository.QueuePosition{Place: 1, Total: 1}, nil)

	fx.publisher.EXPECT().
		PublishQueueEvent(ctx, mock.AnythingOfType("*service.QueueEvent")).
		Return(nil)

	out, err := fx.service.Enqueue(ctx, &usecase.EnqueueInput{DeviceID: "device-123"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Status)
	assert.True(t, out.Activated)
}

func TestAdmissionService_Enqueue_AfterCutoffWaits(t *testing.T) {
	cutoff := fixedNow.Add(-time.Hour)
	fx := createTestAdmissionService(t, cutoff)
	ctx := context.Background()

	expectTransaction(t, fx.txManager, fx.repoFactory)
	fx.expectRepos()
	fx.clock.EXPECT().Now().Return(fixedNow)

	fx.deviceRepo.EXPECT().
		FindByID(ctx, "device-123").
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Device")).
		RunAndReturn(func(_ context.Context, device *entity.Device) error {
			assert.False(t, device.IsActivated)
			device.Priority = 90

			return nil
		})

	fx.deviceRepo.EXPECT().
		PlaceAndTotal(ctx, int64(90)).
		Return(&repository.QueuePosition{Place: 30, Total: 30}, nil)

	fx.publisher.EXPECT().
		PublishQueueEvent(ctx, mock.AnythingOfType("*service.QueueEvent")).
		Return(nil)

	out, err := fx.service.Enqueue(ctx, &usecase.EnqueueInput{DeviceID: "device-123"})
	require.NoError(t, err)
	assert.False(t, out.Activated)
}
