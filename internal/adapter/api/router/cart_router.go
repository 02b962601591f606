package router

import (
	"gamerecharge/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

// SetupCartRouter initializes cart routes. Carts are anonymous, keyed by the
// X-Cart-Session header, so nothing here is authenticated.
func SetupCartRouter(e *echo.Echo) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.GET("", cartHandler.GetCart)
	cart.GET("/totals", cartHandler.GetTotals)
	cart.POST("/items", cartHandler.AddItem)
	cart.PUT("/items/:productId", cartHandler.SetQuantity)
	cart.DELETE("/items/:productId", cartHandler.RemoveItem)
	cart.DELETE("", cartHandler.ClearCart)
}
