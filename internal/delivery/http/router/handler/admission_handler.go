// Package handler contains the echo handlers for the line API.
package handler

import (
	"log/slog"
	"net/http"

	"waitline/internal/delivery/http/response"
	"waitline/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdmissionHandlerParams holds dependencies for AdmissionHandler, injected by Fx.
type AdmissionHandlerParams struct {
	fx.In

	AdmissionUC usecase.AdmissionUsecase
	Logger      *slog.Logger
}

// AdmissionHandler holds dependencies for admission-related handlers
type AdmissionHandler struct {
	admissionUC usecase.AdmissionUsecase
	logger      *slog.Logger
}

// NewAdmissionHandler is the constructor for AdmissionHandler
func NewAdmissionHandler(params AdmissionHandlerParams) *AdmissionHandler {
	return &AdmissionHandler{
		admissionUC: params.AdmissionUC,
		logger:      params.Logger,
	}
}

// ActivateRequest represents the request body for joining the line
type ActivateRequest struct {
	DeviceID       string `json:"device_id" form:"device_id"`
	ActivationCode string `json:"activation_code" form:"activation_code"`
}

// Activate handles a device joining the line, optionally spending an
// activation code. Soft conditions (used code, repeat registration) still
// answer 201 with the device's current standing; only a missing device_id or
// an unreachable store becomes an HTTP error.
func (h *AdmissionHandler) Activate(c echo.Context) error {
	var req ActivateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activation input")
	}

	out, err := h.admissionUC.Enqueue(c.Request().Context(), &usecase.EnqueueInput{
		DeviceID:       req.DeviceID,
		ActivationCode: req.ActivationCode,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusCreated, out)
}
