// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"authcore/internal/delivery/http/adapter"
	"authcore/internal/delivery/http/controller"
	"authcore/internal/delivery/http/middleware"
	"authcore/internal/delivery/http/router/handler"
	"authcore/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
	LogDecorator   *controller.LogDecorator
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
	logDecorator   *controller.LogDecorator
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
		logDecorator:   params.LogDecorator,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.POST("/signup", r.route(r.accountHandler.SignUp))
		api.POST("/login", r.route(r.accountHandler.Login))
	}

	accounts := api.Group("/accounts")
	accounts.Use(r.guard(entity.RoleNone))
	{
		accounts.GET("/me", r.route(r.accountHandler.CurrentAccount))
	}
}

// route serves a controller with server errors recorded.
func (r *router) route(fn controller.Func) echo.HandlerFunc {
	return adapter.Route(controller.Chain(fn, r.logDecorator.Wrap))
}

// guard admits only requests whose access token resolves to an account with role.
func (r *router) guard(role entity.Role) echo.MiddlewareFunc {
	return adapter.Middleware(controller.Chain(r.authMiddleware.Require(role), r.logDecorator.Wrap))
}
