package router

import (
	"gamerecharge/internal/adapter/api/handler"
	"gamerecharge/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	orderHandler := handler.GetOrderHandler()

	// Checkout is public but rate limited: the ledger and the sheet sit
	// behind it
	e.POST("/v1/checkout", orderHandler.Checkout, middleware.CheckoutRateLimit())

	// Customers poll their order by the id returned at checkout
	e.GET("/v1/orders/:id", orderHandler.GetOrder)

	admin := e.Group("/v1/admin/orders")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("", orderHandler.ListOrders)
	admin.GET("/summary", orderHandler.GetSummary)
	admin.GET("/statistics", orderHandler.GetSheetStatistics)
	admin.GET("/:id", orderHandler.GetOrder)
	admin.PUT("/:id/status", orderHandler.UpdateStatus)
}
