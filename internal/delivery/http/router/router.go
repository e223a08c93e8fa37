// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nightmap/internal/delivery/http/middleware"
	"nightmap/internal/delivery/http/router/handler"
	"nightmap/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CatalogHandler *handler.CatalogHandler
	AdminHandler   *handler.AdminHandler
	ConcertHandler *handler.ConcertHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	catalogHandler *handler.CatalogHandler
	adminHandler   *handler.AdminHandler
	concertHandler *handler.ConcertHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		catalogHandler: params.CatalogHandler,
		adminHandler:   params.AdminHandler,
		concertHandler: params.ConcertHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Registration and session routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/check-username", r.authHandler.CheckUsername)
		authGroup.GET("/check-email", r.authHandler.CheckEmail)

		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
		authGroup.GET("/profile-me", r.authHandler.ProfileMe, r.authMiddleware.Authenticate)
	}

	// Public catalog routes
	e.GET("/activities", r.catalogHandler.ListActivities)
	e.GET("/activities/live", r.catalogHandler.ListLiveActivities)
	e.GET("/activities/:id", r.catalogHandler.GetActivity)
	e.PATCH("/activities/:id/toggle-status", r.catalogHandler.ToggleStatus)
	e.PATCH("/activities/:id/toggle-live", r.catalogHandler.ToggleLive)

	// Reference tables
	e.GET("/genres", r.catalogHandler.ListGenres)
	e.GET("/event-types", r.catalogHandler.ListEventTypes)
	e.GET("/price-categories", r.catalogHandler.ListPriceCategories)
	e.GET("/moods", r.catalogHandler.ListMoods)
	e.GET("/pin-types", r.catalogHandler.ListPinTypes)

	// Concert calendar
	e.GET("/concerts", r.concertHandler.ListConcerts)
	e.POST("/concerts", r.concertHandler.CreateConcert, r.authMiddleware.Authenticate)

	// Staff-only catalog management
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.POST("/activities", r.adminHandler.SaveActivity)
		adminGroup.PUT("/activities/:id", r.adminHandler.UpdateActivity)
		adminGroup.POST("/activities/import", r.adminHandler.ImportActivities)
		adminGroup.GET("/activities/export", r.adminHandler.ExportActivities)
	}
}
