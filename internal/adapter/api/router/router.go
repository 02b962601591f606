package router

import (
	"gamerecharge/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupCartRouter(e)
	SetupOrderRouter(e, authMiddleware, adminMiddleware)
	SetupCatalogRouter(e, authMiddleware, adminMiddleware)
	SetupCommissionRouter(e, authMiddleware, adminMiddleware)
	SetupVendorRouter(e, authMiddleware, adminMiddleware)
	SetupRateRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
