package handler

import (
	"gamerecharge/internal/usecase"
	"gamerecharge/pkg/errors"
	"gamerecharge/pkg/response"

	"github.com/labstack/echo/v4"
)

// The storefront is anonymous: the browser identifies its cart with the
// X-Cart-Session header, not an account.
const cartSessionHeader = "X-Cart-Session"

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

func cartSession(c echo.Context) (string, error) {
	sessionID := c.Request().Header.Get(cartSessionHeader)
	if sessionID == "" {
		return "", errors.Validation("session", "X-Cart-Session header is required")
	}

	return sessionID, nil
}

type addItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) GetCart(c echo.Context) error {
	sessionID, err := cartSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	cart, err := h.cartUseCase.GetCart(c.Request().Context(), sessionID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	sessionID, err := cartSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	cart, err := h.cartUseCase.AddItem(c.Request().Context(), sessionID, usecase.AddItemInput{
		ProductID: req.ProductID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) SetQuantity(c echo.Context) error {
	sessionID, err := cartSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req setQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	cart, err := h.cartUseCase.SetQuantity(c.Request().Context(), sessionID, c.Param("productId"), req.Quantity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	sessionID, err := cartSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	cart, err := h.cartUseCase.RemoveItem(c.Request().Context(), sessionID, c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	sessionID, err := cartSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.cartUseCase.Clear(c.Request().Context(), sessionID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Cart cleared",
	})
}

func (h *CartHandler) GetTotals(c echo.Context) error {
	sessionID, err := cartSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	currency := c.QueryParam("currency")
	if currency == "" {
		currency = "USD"
	}

	total, converted, err := h.cartUseCase.Totals(c.Request().Context(), sessionID, currency)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"total":     total,
		"currency":  currency,
		"converted": converted,
	})
}
