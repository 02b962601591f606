package handler

import (
	"gamerecharge/internal/domain/entity"
	"gamerecharge/internal/usecase"
	"gamerecharge/pkg/response"

	"github.com/labstack/echo/v4"
)

type RateHandler struct {
	rateUseCase *usecase.RateUseCase
}

func NewRateHandler(rateUseCase *usecase.RateUseCase) *RateHandler {
	return &RateHandler{
		rateUseCase: rateUseCase,
	}
}

func (h *RateHandler) GetRates(c echo.Context) error {
	rates, err := h.rateUseCase.GetRates(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, rates)
}

func (h *RateHandler) UpdateRates(c echo.Context) error {
	var rates entity.ExchangeRates
	if err := c.Bind(&rates); err != nil {
		return response.Error(c, err)
	}

	if err := h.rateUseCase.UpdateRates(c.Request().Context(), rates); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, rates)
}
