package router

import (
	"github.com/labstack/echo/v4"

	"campussell/internal/adapter/api/handler"
	"campussell/internal/adapter/api/middleware"
)

func SetupDeliveryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	deliveryHandler := handler.GetDeliveryHandler()

	// Public directory
	companies := e.Group("/v1/delivery-companies")
	companies.GET("", deliveryHandler.ListCompanies)
	companies.GET("/available", deliveryHandler.FindAvailableCompanies)
	companies.GET("/:id", deliveryHandler.GetCompany)
	companies.GET("/:id/service-areas", deliveryHandler.ListServiceAreas)
	companies.GET("/:id/pricing", deliveryHandler.GetPricing)

	// Back-office management
	admin := e.Group("/v1/admin/delivery-companies")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", deliveryHandler.RegisterCompany)
	admin.PATCH("/:id/status", deliveryHandler.UpdateCompanyStatus)
	admin.DELETE("/:id", deliveryHandler.DeleteCompany)
	admin.POST("/:id/service-areas", deliveryHandler.AddServiceArea)
	admin.DELETE("/:id/service-areas/:areaId", deliveryHandler.RemoveServiceArea)
	admin.PUT("/:id/pricing", deliveryHandler.SetPricing)
	admin.GET("/:id/metrics", deliveryHandler.GetMetrics)
}
