package handler

import (
	"gamerecharge/internal/domain/entity"
	"gamerecharge/internal/usecase"
	"gamerecharge/pkg/response"

	"github.com/labstack/echo/v4"
)

type CommissionHandler struct {
	commissionUseCase *usecase.CommissionUseCase
}

func NewCommissionHandler(commissionUseCase *usecase.CommissionUseCase) *CommissionHandler {
	return &CommissionHandler{
		commissionUseCase: commissionUseCase,
	}
}

type setRateRequest struct {
	Game   string  `json:"game" validate:"required"`
	SKU    string  `json:"sku" validate:"required"`
	Vendor string  `json:"vendor" validate:"required"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

func (h *CommissionHandler) GetTable(c echo.Context) error {
	// flat=true returns the "game/sku" keyed view the admin grid renders
	if c.QueryParam("flat") == "true" {
		flat, err := h.commissionUseCase.GetFlatView(c.Request().Context())
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, flat)
	}

	table, err := h.commissionUseCase.GetTable(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, table)
}

func (h *CommissionHandler) GetRate(c echo.Context) error {
	rate, err := h.commissionUseCase.GetProfitRate(
		c.Request().Context(),
		c.Param("game"),
		c.Param("sku"),
		c.Param("vendor"),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"game":   c.Param("game"),
		"sku":    c.Param("sku"),
		"vendor": c.Param("vendor"),
		"amount": rate,
	})
}

func (h *CommissionHandler) SetRate(c echo.Context) error {
	var req setRateRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.commissionUseCase.SetProfitRate(c.Request().Context(), req.Game, req.SKU, req.Vendor, req.Amount); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Commission rate saved",
	})
}

func (h *CommissionHandler) BulkSave(c echo.Context) error {
	var table entity.CommissionTable
	if err := c.Bind(&table); err != nil {
		return response.Error(c, err)
	}

	if err := h.commissionUseCase.BulkSave(c.Request().Context(), table); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Commission table saved",
	})
}
