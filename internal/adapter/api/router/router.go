package router

import (
	"github.com/labstack/echo/v4"

	"campussell/internal/adapter/api/middleware"
	"campussell/internal/infrastructure/ratelimit"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, companyMiddleware *middleware.CompanyMiddleware, checkoutLimiter, inquiryLimiter *ratelimit.RateLimiter) {
	SetupAuthRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware)
	SetupCartRouter(e, authMiddleware)
	SetupCheckoutRouter(e, authMiddleware, checkoutLimiter)
	SetupOrderRouter(e, authMiddleware, companyMiddleware)
	SetupDeliveryRouter(e, authMiddleware, adminMiddleware)
	SetupInquiryRouter(e, authMiddleware, inquiryLimiter)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
