package handler

import (
	"log/slog"
	"net/http"

	"waitline/internal/delivery/http/response"
	"waitline/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShareHandlerParams holds dependencies for ShareHandler, injected by Fx.
type ShareHandlerParams struct {
	fx.In

	ShareUC usecase.ShareUsecase
	Logger  *slog.Logger
}

// ShareHandler holds dependencies for share-related handlers
type ShareHandler struct {
	shareUC usecase.ShareUsecase
	logger  *slog.Logger
}

// NewShareHandler is the constructor for ShareHandler
func NewShareHandler(params ShareHandlerParams) *ShareHandler {
	return &ShareHandler{
		shareUC: params.ShareUC,
		logger:  params.Logger,
	}
}

// ShareRequest represents the request body for a share boost
type ShareRequest struct {
	DeviceID string `json:"device_id" form:"device_id" validate:"required"`
	Channel  string `json:"channel" form:"channel" validate:"required"`
}

// Share rewards a recognized social share with a priority boost.
func (h *ShareHandler) Share(c echo.Context) error {
	var req ShareRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid share input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.shareUC.Share(c.Request().Context(), &usecase.ShareInput{
		DeviceID: req.DeviceID,
		Channel:  req.Channel,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, out)
}

// ShareQR serves a PNG QR code of the share landing page.
func (h *ShareHandler) ShareQR(c echo.Context) error {
	png, err := h.shareUC.ShareQR(c.Request().Context(), c.QueryParam("device_id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
