package router

import (
	"github.com/labstack/echo/v4"

	"campussell/internal/adapter/api/handler"
	"campussell/internal/adapter/api/middleware"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes
	e.POST("/v1/auth/register", authHandler.Register)

	// Protected routes
	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("/me", authHandler.Me)
	protected.PUT("/me", authHandler.UpdateProfile)
	protected.POST("/merge-cart", authHandler.MergeGuestCart)
}
