package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"waitline/internal/delivery/http/validator"
	domainerrors "waitline/internal/domain/errors"
	mockUsecase "waitline/internal/mocks/usecase"
	"waitline/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAdmissionHandler_Activate_Envelope(t *testing.T) {
	admissionUC := mockUsecase.NewMockAdmissionUsecase(t)
	h := NewAdmissionHandler(AdmissionHandlerParams{
		AdmissionUC: admissionUC,
		Logger:      newDiscardLogger(),
	})

	admissionUC.EXPECT().
		Enqueue(mock.Anything, &usecase.EnqueueInput{DeviceID: "device-123"}).
		Return(&usecase.EnqueueOutput{Place: 7, Total: 7}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/activate", `{"device_id":"device-123"}`)

	require.NoError(t, h.Activate(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"status":0,"place":7,"total":7,"activated":false}`, rec.Body.String())
}

func TestAdmissionHandler_Activate_SoftMessage(t *testing.T) {
	admissionUC := mockUsecase.NewMockAdmissionUsecase(t)
	h := NewAdmissionHandler(AdmissionHandlerParams{
		AdmissionUC: admissionUC,
		Logger:      newDiscardLogger(),
	})

	admissionUC.EXPECT().
		Enqueue(mock.Anything, mock.AnythingOfType("*usecase.EnqueueInput")).
		Return(&usecase.EnqueueOutput{
			Status:  1,
			Place:   5,
			Total:   20,
			Message: "Device is already in line.",
		}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/activate", `{"device_id":"device-123"}`)

	require.NoError(t, h.Activate(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"status":1,"place":5,"total":20,"activated":false,"message":"Device is already in line."}`, rec.Body.String())
}

func TestAdmissionHandler_Activate_MissingDeviceID(t *testing.T) {
	admissionUC := mockUsecase.NewMockAdmissionUsecase(t)
	h := NewAdmissionHandler(AdmissionHandlerParams{
		AdmissionUC: admissionUC,
		Logger:      newDiscardLogger(),
	})

	admissionUC.EXPECT().
		Enqueue(mock.Anything, mock.AnythingOfType("*usecase.EnqueueInput")).
		Return(nil, domainerrors.ErrDeviceIDRequired)

	c, rec := newTestContext(t, http.MethodPost, "/activate", `{}`)

	require.NoError(t, h.Activate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "DEVICE_ID_REQUIRED")
	assert.Contains(t, rec.Body.String(), "A device_id is required.")
}

func TestAdmissionHandler_Activate_StoreUnavailable(t *testing.T) {
	admissionUC := mockUsecase.NewMockAdmissionUsecase(t)
	h := NewAdmissionHandler(AdmissionHandlerParams{
		AdmissionUC: admissionUC,
		Logger:      newDiscardLogger(),
	})

	admissionUC.EXPECT().
		Enqueue(mock.Anything, mock.AnythingOfType("*usecase.EnqueueInput")).
		Return(nil, domainerrors.ErrQueueUnavailable)

	c, rec := newTestContext(t, http.MethodPost, "/activate", `{"device_id":"device-123"}`)

	require.NoError(t, h.Activate(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "QUEUE_UNAVAILABLE")
}
