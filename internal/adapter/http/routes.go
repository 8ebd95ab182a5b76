// Package http provides the HTTP handler layer for the flight ticket API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	flights := api.Group("/flights")
	flights.GET("", h.ListFlights)
	flights.POST("/search", h.SearchFlights)

	api.GET("/routes/popular", h.PopularRoutes)
	api.GET("/trends", h.PriceTrends)

	auth := api.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)

	searches := api.Group("/searches")
	searches.GET("", h.ListSearches)
	searches.POST("", h.SaveSearch)
	searches.DELETE("/:id", h.DeleteSearch)

	api.POST("/notify", h.Notify)
	api.GET("/notifications/history", h.NotificationHistory)
}
