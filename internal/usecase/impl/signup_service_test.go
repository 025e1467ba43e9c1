package impl

import (
	"context"
	"strings"
	"testing"

	"waitline/internal/domain/entity"
	domainerrors "waitline/internal/domain/errors"
	"waitline/internal/domain/repository"
	mockRepo "waitline/internal/mocks/repository"
	mockService "waitline/internal/mocks/service"
	"waitline/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// signupServiceFixtures holds all test dependencies for signup service tests.
type signupServiceFixtures struct {
	service     usecase.SignupUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	signupRepo  *mockRepo.MockSignupRepository
	mailSender  *mockService.MockMailSender
	clock       *mockService.MockClock
}

func createTestSignupService(t *testing.T) signupServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	signupRepo := mockRepo.NewMockSignupRepository(t)
	mailSender := mockService.NewMockMailSender(t)
	clock := mockService.NewMockClock(t)

	cfg := newTestConfig()

	service := NewSignupService(SignupServiceParams{
		TxManager:  txManager,
		MailSender: mailSender,
		Clock:      clock,
		Config:     cfg,
		Logger:     newDiscardLogger(),
	})

	return signupServiceFixtures{
		service:     service,
		txManager:   txManager,
		repoFactory: repoFactory,
		signupRepo:  signupRepo,
		mailSender:  mailSender,
		clock:       clock,
	}
}

func TestSignupService_RequestUpdates(t *testing.T) {
	fx := createTestSignupService(t)
	ctx := context.Background()

	expectTransaction(t, fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().SignupRepo().Return(fx.signupRepo)
	fx.clock.EXPECT().Now().Return(fixedNow)

	var mintedHash string
	fx.signupRepo.EXPECT().
		CreateRequest(ctx, mock.AnythingOfType("*entity.SignupRequest")).
		RunAndReturn(func(_ context.Context, request *entity.SignupRequest) error {
			assert.Equal(t, "ada@example.com", request.Email)
			assert.Equal(t, "device-123", request.DeviceID)
			assert.Len(t, request.Hash, 64)
			mintedHash = request.Hash

			return nil
		})

	fx.mailSender.EXPECT().
		SendValidationMail(ctx, "ada@example.com", mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, _ string, validationURL string) error {
			assert.True(t, strings.HasSuffix(validationURL, mintedHash))

			return nil
		})

	err := fx.service.RequestUpdates(ctx, &usecase.SignupInput{
		Email:    " Ada@Example.COM ",
		DeviceID: "device-123",
	})
	require.NoError(t, err)
}

func TestSignupService_RequestUpdates_InvalidEmail(t *testing.T) {
	fx := createTestSignupService(t)

	err := fx.service.RequestUpdates(context.Background(), &usecase.SignupInput{Email: "not-an-address"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSignupInvalid)
}

func TestSignupService_RequestUpdates_MailFailureIsSoft(t *testing.T) {
	fx := createTestSignupService(t)
	ctx := context.Background()

	expectTransaction(t, fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().SignupRepo().Return(fx.signupRepo)
	fx.clock.EXPECT().Now().Return(fixedNow)

	fx.signupRepo.EXPECT().
		CreateRequest(ctx, mock.AnythingOfType("*entity.SignupRequest")).
		Return(nil)

	fx.mailSender.EXPECT().
		SendValidationMail(ctx, "ada@example.com", mock.AnythingOfType("string")).
		Return(errors.New("relay refused"))

	// The request row committed; mail delivery is retried by asking again.
	err := fx.service.RequestUpdates(ctx, &usecase.SignupInput{Email: "ada@example.com"})
	require.NoError(t, err)
}

func TestSignupService_ConfirmEmail(t *testing.T) {
	fx := createTestSignupService(t)
	ctx := context.Background()

	expectTransaction(t, fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().SignupRepo().Return(fx.signupRepo)

	hash := strings.Repeat("ab", 32)
	request := &entity.SignupRequest{
		Hash:     hash,
		Email:    "ada@example.com",
		DeviceID: "device-123",
	}

	fx.signupRepo.EXPECT().
		FindRequestByHash(ctx, hash).
		Return(request, nil)

	fx.signupRepo.EXPECT().
		UpsertSignup(ctx, "ada@example.com").
		Return(&entity.Signup{ID: 77, Email: "ada@example.com"}, nil)

	fx.signupRepo.EXPECT().
		LinkDevice(ctx, int64(77), "device-123").
		Return(nil)

	fx.signupRepo.EXPECT().
		DeleteRequest(ctx, hash).
		Return(nil)

	out, err := fx.service.ConfirmEmail(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", out.Email)
}

func TestSignupService_ConfirmEmail_NoDevice(t *testing.T) {
	fx := createTestSignupService(t)
	ctx := context.Background()

	expectTransaction(t, fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().SignupRepo().Return(fx.signupRepo)

	hash := strings.Repeat("cd", 32)

	fx.signupRepo.EXPECT().
		FindRequestByHash(ctx, hash).
		Return(&entity.SignupRequest{Hash: hash, Email: "ada@example.com"}, nil)

	fx.signupRepo.EXPECT().
		UpsertSignup(ctx, "ada@example.com").
		Return(&entity.Signup{ID: 77, Email: "ada@example.com"}, nil)

	fx.signupRepo.EXPECT().
		DeleteRequest(ctx, hash).
		Return(nil)

	out, err := fx.service.ConfirmEmail(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", out.Email)
}

func TestSignupService_ConfirmEmail_UnknownHash(t *testing.T) {
	fx := createTestSignupService(t)
	ctx := context.Background()

	expectTransaction(t, fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().SignupRepo().Return(fx.signupRepo)

	fx.signupRepo.EXPECT().
		FindRequestByHash(ctx, "deadbeef").
		Return(nil, repository.ErrSignupRequestNotFound)

	out, err := fx.service.ConfirmEmail(ctx, "deadbeef")
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrSignupInvalid)
}

func TestSignupService_ConfirmEmail_EmptyHash(t *testing.T) {
	fx := createTestSignupService(t)

	out, err := fx.service.ConfirmEmail(context.Background(), "")
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrSignupInvalid)
}
