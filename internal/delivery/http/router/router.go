// Package router contains routing setup for the HTTP delivery.
package router

import (
	"waitline/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AdmissionHandler *handler.AdmissionHandler
	ShareHandler     *handler.ShareHandler
	StatsHandler     *handler.StatsHandler
	SignupHandler    *handler.SignupHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	admissionHandler *handler.AdmissionHandler
	shareHandler     *handler.ShareHandler
	statsHandler     *handler.StatsHandler
	signupHandler    *handler.SignupHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		admissionHandler: params.AdmissionHandler,
		shareHandler:     params.ShareHandler,
		statsHandler:     params.StatsHandler,
		signupHandler:    params.SignupHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The paths match the launch landing page's client, so they stay flat and
// unversioned.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Line admission and queue standing
	e.POST("/activate", r.admissionHandler.Activate)
	e.GET("/info", r.statsHandler.Info)

	// Social share rewards
	shareGroup := e.Group("/share")
	{
		shareGroup.POST("", r.shareHandler.Share)
		shareGroup.GET("/qrcode", r.shareHandler.ShareQR)
	}

	// Launch update signups
	e.POST("/signup", r.signupHandler.Signup)
	e.GET("/validate/:hash", r.signupHandler.Validate)
}
