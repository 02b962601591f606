package router

import (
	"gamerecharge/internal/adapter/api/handler"
	"gamerecharge/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCatalogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	catalogHandler := handler.GetCatalogHandler()

	// Public routes
	e.GET("/v1/products", catalogHandler.ListProducts)
	e.GET("/v1/products/:id", catalogHandler.GetProduct)

	admin := e.Group("/v1/admin/products")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", catalogHandler.CreateProduct)
	admin.PUT("/:id", catalogHandler.UpdateProduct)
	admin.PUT("/:id/enabled", catalogHandler.SetEnabled)
	admin.DELETE("/:id", catalogHandler.DeleteProduct)
}
