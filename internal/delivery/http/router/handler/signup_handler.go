package handler

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"waitline/internal/delivery/http/response"
	domainerrors "waitline/internal/domain/errors"
	"waitline/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// validatePage is the fragment served when a validation link is followed.
// It is shown inside the launch landing page, so it carries no chrome.
var validatePage = template.Must(template.New("validate").Parse(`<div class="signup-result">
{{- if .OK}}
  <h2>Thanks!</h2>
  <p>{{.Email}} is confirmed. We&#39;ll let you know the moment your spot opens up.</p>
{{- else}}
  <h2>Link expired</h2>
  <p>This validation link has already been used or never existed. Sign up again to get a fresh one.</p>
{{- end}}
</div>
`))

// SignupHandlerParams holds dependencies for SignupHandler, injected by Fx.
type SignupHandlerParams struct {
	fx.In

	SignupUC usecase.SignupUsecase
	Logger   *slog.Logger
}

// SignupHandler holds dependencies for signup-related handlers
type SignupHandler struct {
	signupUC usecase.SignupUsecase
	logger   *slog.Logger
}

// NewSignupHandler is the constructor for SignupHandler
func NewSignupHandler(params SignupHandlerParams) *SignupHandler {
	return &SignupHandler{
		signupUC: params.SignupUC,
		logger:   params.Logger,
	}
}

// SignupRequest represents the request body for registering an email address
type SignupRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	DeviceID string `json:"device_id" form:"device_id"`
}

// Signup records an address for launch updates and mails a validation link.
func (h *SignupHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.signupUC.RequestUpdates(c.Request().Context(), &usecase.SignupInput{
		Email:    req.Email,
		DeviceID: req.DeviceID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusAccepted, map[string]int{"status": 0})
}

// Validate resolves an emailed validation link and renders the outcome as an
// HTML fragment. A spent or unknown hash renders the expired page; store
// failures still surface as errors.
func (h *SignupHandler) Validate(c echo.Context) error {
	out, err := h.signupUC.ConfirmEmail(c.Request().Context(), c.Param("hash"))

	page := struct {
		OK    bool
		Email string
	}{}
	status := http.StatusOK

	switch {
	case err == nil:
		page.OK = true
		page.Email = out.Email
	case errors.Is(err, domainerrors.ErrSignupInvalid):
		status = http.StatusNotFound
	default:
		return response.HandleAppError(c, err)
	}

	var buf bytes.Buffer
	if terr := validatePage.Execute(&buf, page); terr != nil {
		return errors.Wrap(terr, "failed to render validation page")
	}

	return c.HTMLBlob(status, buf.Bytes())
}
