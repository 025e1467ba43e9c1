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

func TestStatsHandler_Info_Envelope(t *testing.T) {
	statsUC := mockUsecase.NewMockStatsUsecase(t)
	h := NewStatsHandler(StatsHandlerParams{
		StatsUC: statsUC,
		Logger:  newDiscardLogger(),
	})

	statsUC.EXPECT().
		QueueInfo(mock.Anything).
		Return(&usecase.QueueInfoOutput{LetIn: 120, StillWaiting: 4500}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/info", "")

	require.NoError(t, h.Info(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"let_in":120,"still_waiting":4500}`, rec.Body.String())
}

func TestStatsHandler_Info_StoreUnavailable(t *testing.T) {
	statsUC := mockUsecase.NewMockStatsUsecase(t)
	h := NewStatsHandler(StatsHandlerParams{
		StatsUC: statsUC,
		Logger:  newDiscardLogger(),
	})

	statsUC.EXPECT().
		QueueInfo(mock.Anything).
		Return(nil, domainerrors.ErrQueueUnavailable)

	c, rec := newTestContext(t, http.MethodGet, "/info", "")

	require.NoError(t, h.Info(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to connect to the database.")
}
