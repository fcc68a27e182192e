package router

import (
	"github.com/labstack/echo/v4"

	"campussell/internal/adapter/api/handler"
	"campussell/internal/adapter/api/middleware"
	"campussell/internal/infrastructure/ratelimit"
)

func SetupCheckoutRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	checkoutHandler := handler.GetCheckoutHandler()

	// Public: delivery directory for the checkout page
	e.GET("/v1/checkout/delivery-companies", checkoutHandler.ListActiveCompanies)
	e.GET("/v1/checkout/delivery-options", checkoutHandler.GetDeliveryOptions)

	checkout := e.Group("/v1/checkout")
	checkout.Use(authMiddleware.Authenticate)
	checkout.POST("", checkoutHandler.ProcessCheckout, middleware.RateLimit(limiter, "checkout"))
}
