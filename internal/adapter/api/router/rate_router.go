package router

import (
	"gamerecharge/internal/adapter/api/handler"
	"gamerecharge/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupRateRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	rateHandler := handler.GetRateHandler()

	// Storefront reads rates to render prices in the shopper's currency
	e.GET("/v1/exchange-rates", rateHandler.GetRates)

	admin := e.Group("/v1/admin/exchange-rates")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.PUT("", rateHandler.UpdateRates)
}
