package router

import (
	"github.com/labstack/echo/v4"

	"campussell/internal/adapter/api/handler"
	"campussell/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, companyMiddleware *middleware.CompanyMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)

	orders.GET("", orderHandler.ListMyOrders)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.POST("/:id/cancel", orderHandler.CancelOrder)

	// Company-scoped routes: the acting company is resolved from the
	// caller's email, never taken from the request.
	orders.GET("/company", orderHandler.ListCompanyOrders, companyMiddleware.CompanyOnly)
	orders.PATCH("/:id/status", orderHandler.AdvanceOrder, companyMiddleware.CompanyOnly)
}
