package router

import (
	"gamerecharge/internal/adapter/api/handler"
	"gamerecharge/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// SetupCommissionRouter initializes commission routes. The whole table is
// operator data, so every route sits behind the admin gate.
func SetupCommissionRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	commissionHandler := handler.GetCommissionHandler()

	admin := e.Group("/v1/admin/commissions")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("", commissionHandler.GetTable)
	admin.GET("/:game/:sku/:vendor", commissionHandler.GetRate)
	admin.POST("", commissionHandler.SetRate)
	admin.PUT("", commissionHandler.BulkSave)
}
