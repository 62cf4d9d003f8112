// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bastion/internal/delivery/http/middleware"
	"bastion/internal/delivery/http/router/handler"
	"bastion/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	WSHandler      *handler.WSHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	wsHandler      *handler.WSHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		wsHandler:      params.WSHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.GET("/verify-email", r.authHandler.VerifyEmail)

		// Logout needs the verified bearer token from the middleware.
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetProfile)
		userGroup.PATCH("/me", r.userHandler.UpdateProfile)
		userGroup.POST("/me/password", r.userHandler.ChangePassword)
		userGroup.DELETE("/me", r.userHandler.DeleteAccount)

		// Administration requires the admin role on top of authentication.
		userGroup.GET("", r.userHandler.ListUsers, r.authMiddleware.RequireRole(entity.RoleAdmin))
		userGroup.DELETE("/:id", r.userHandler.DeleteUser, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}

	// Real-time notification socket
	e.GET("/ws", r.wsHandler.Connect, r.authMiddleware.Authenticate)
}
