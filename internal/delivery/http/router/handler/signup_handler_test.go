package handler

import (
	"net/http"
	"testing"

	domainerrors "waitline/internal/domain/errors"
	mockUsecase "waitline/internal/mocks/usecase"
	"waitline/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSignupHandler_Signup_Accepted(t *testing.T) {
	signupUC := mockUsecase.NewMockSignupUsecase(t)
	h := NewSignupHandler(SignupHandlerParams{
		SignupUC: signupUC,
		Logger:   newDiscardLogger(),
	})

	signupUC.EXPECT().
		RequestUpdates(mock.Anything, &usecase.SignupInput{Email: "ada@example.com", DeviceID: "device-123"}).
		Return(nil)

	c, rec := newTestContext(t, http.MethodPost, "/signup", `{"email":"ada@example.com","device_id":"device-123"}`)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.JSONEq(t, `{"status":0}`, rec.Body.String())
}

func TestSignupHandler_Signup_InvalidEmail(t *testing.T) {
	signupUC := mockUsecase.NewMockSignupUsecase(t)
	h := NewSignupHandler(SignupHandlerParams{
		SignupUC: signupUC,
		Logger:   newDiscardLogger(),
	})

	c, rec := newTestContext(t, http.MethodPost, "/signup", `{"email":"not-an-address"}`)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestSignupHandler_Validate_Confirmed(t *testing.T) {
	signupUC := mockUsecase.NewMockSignupUsecase(t)
	h := NewSignupHandler(SignupHandlerParams{
		SignupUC: signupUC,
		Logger:   newDiscardLogger(),
	})

	signupUC.EXPECT().
		ConfirmEmail(mock.Anything, "abc123").
		Return(&usecase.ConfirmOutput{Email: "ada@example.com"}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/validate/abc123", "")
	c.SetParamNames("hash")
	c.SetParamValues("abc123")

	require.NoError(t, h.Validate(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "ada@example.com")
	assert.Contains(t, rec.Body.String(), "confirmed")
}

func TestSignupHandler_Validate_UnknownHash(t *testing.T) {
	signupUC := mockUsecase.NewMockSignupUsecase(t)
	h := NewSignupHandler(SignupHandlerParams{
		SignupUC: signupUC,
		Logger:   newDiscardLogger(),
	})

	signupUC.EXPECT().
		ConfirmEmail(mock.Anything, "deadbeef").
		Return(nil, domainerrors.ErrSignupInvalid)

	c, rec := newTestContext(t, http.MethodGet, "/validate/deadbeef", "")
	c.SetParamNames("hash")
	c.SetParamValues("deadbeef")

	require.NoError(t, h.Validate(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")
}
