package router

import (
	"github.com/labstack/echo/v4"

	"campussell/internal/adapter/api/handler"
	"campussell/internal/adapter/api/middleware"
	"campussell/internal/domain/entity"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	// Admin account management requires the manage-admins permission, which
	// only the principal role carries by default.
	accounts := admin.Group("/admins", adminMiddleware.RequirePermission(entity.PermManageAdmins))
	accounts.POST("", adminHandler.CreateAdmin)
	accounts.GET("", adminHandler.ListAdmins)
	accounts.PATCH("/:email/role", adminHandler.UpdateAdminRole)
	accounts.POST("/:email/suspend", adminHandler.SuspendAdmin)
	accounts.POST("/:email/reactivate", adminHandler.ReactivateAdmin)
	accounts.DELETE("/:email", adminHandler.DeleteAdmin)

	admin.GET("/audit-log", adminHandler.GetAuditLog)

	// Back-office order intervention: advance any order regardless of the
	// assigned company.
	admin.PATCH("/orders/:id/status", handler.GetOrderHandler().AdvanceOrderAsAdmin)
}
