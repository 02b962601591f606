package handler

import (
	"gamerecharge/internal/domain/entity"
	"gamerecharge/internal/usecase"
	"gamerecharge/pkg/response"
	"gamerecharge/pkg/utils"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type checkoutRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required"`
	CustomerPhone string `json:"customer_phone"`
	GameID        string `json:"game_id" validate:"required"`
	Game          string `json:"game" validate:"required"`
	Currency      string `json:"currency"`
	Country       string `json:"country"`
	PaymentMethod string `json:"payment_method" validate:"required"`
	Notes         string `json:"notes"`
	Vendor        string `json:"vendor"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *OrderHandler) Checkout(c echo.Context) error {
	sessionID, err := cartSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.Submit(c.Request().Context(), sessionID, usecase.SubmitOrderInput{
		Customer: entity.Customer{
			Name:   req.CustomerName,
			Email:  req.CustomerEmail,
			Phone:  req.CustomerPhone,
			GameID: req.GameID,
		},
		Game:          req.Game,
		Currency:      req.Currency,
		Country:       req.Country,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		Vendor:        req.Vendor,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	filter := usecase.OrderFilter{
		Status: c.QueryParam("status"),
		Vendor: c.QueryParam("vendor"),
		Date:   c.QueryParam("date"),
	}

	orders, total, err := h.orderUseCase.Query(c.Request().Context(), filter, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.PageSize)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.UpdateStatus(c.Request().Context(), c.Param("id"), entity.OrderStatus(req.Status))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) GetSummary(c echo.Context) error {
	ctx := c.Request().Context()

	byGame, err := h.orderUseCase.AggregateByGame(ctx)
	if err != nil {
		return response.Error(c, err)
	}

	byVendor, err := h.orderUseCase.AggregateByVendor(ctx)
	if err != nil {
		return response.Error(c, err)
	}

	byStatus, err := h.orderUseCase.CountByStatus(ctx)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"sales_by_game":    byGame,
		"profit_by_vendor": byVendor,
		"count_by_status":  byStatus,
	})
}

func (h *OrderHandler) GetSheetStatistics(c echo.Context) error {
	stats, err := h.orderUseCase.SheetStatistics(
		c.Request().Context(),
		c.QueryParam("from"),
		c.QueryParam("to"),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}
