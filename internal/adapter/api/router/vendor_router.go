package router

import (
	"gamerecharge/internal/adapter/api/handler"
	"gamerecharge/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupVendorRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	vendorHandler := handler.GetVendorHandler()

	admin := e.Group("/v1/admin/vendors")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("", vendorHandler.ListVendors)
	admin.GET("/:id", vendorHandler.GetVendor)
	admin.GET("/:id/stats", vendorHandler.GetVendorStats)
	admin.POST("", vendorHandler.CreateVendor)
	admin.PUT("/:id", vendorHandler.UpdateVendor)
	admin.DELETE("/:id", vendorHandler.DeleteVendor)
}
