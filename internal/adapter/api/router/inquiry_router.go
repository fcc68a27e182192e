package router

import (
	"github.com/labstack/echo/v4"

	"campussell/internal/adapter/api/handler"
	"campussell/internal/adapter/api/middleware"
	"campussell/internal/infrastructure/ratelimit"
)

func SetupInquiryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	inquiryHandler := handler.GetInquiryHandler()

	inquiries := e.Group("/v1/inquiries")
	inquiries.Use(authMiddleware.Authenticate)

	inquiries.POST("", inquiryHandler.CreateInquiry, middleware.RateLimit(limiter, "inquiry"))
	inquiries.GET("/buying", inquiryHandler.ListBuyerInquiries)
	inquiries.GET("/selling", inquiryHandler.ListSellerInquiries)
	inquiries.GET("/:id", inquiryHandler.GetInquiry)
	inquiries.POST("/:id/messages", inquiryHandler.SendMessage)
	inquiries.PATCH("/:id/status", inquiryHandler.UpdateStatus)
}
