package handler

import (
	"gamerecharge/internal/usecase"
	"gamerecharge/pkg/response"
	"gamerecharge/pkg/utils"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

type productRequest struct {
	ID       string  `json:"id"`
	Game     string  `json:"game" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Image    string  `json:"image" validate:"omitempty,url"`
	Category string  `json:"category" validate:"required,oneof=normal promotional"`
	Enabled  *bool   `json:"enabled"`
}

func (req *productRequest) toInput() usecase.ProductInput {
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	return usecase.ProductInput{
		Game:     req.Game,
		Name:     req.Name,
		Price:    req.Price,
		Image:    req.Image,
		Category: req.Category,
		Enabled:  enabled,
	}
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	game := c.QueryParam("game")
	category := c.QueryParam("category")
	// Public listings hide disabled products; admins pass all=true
	enabledOnly := c.QueryParam("all") != "true"

	products, total, err := h.catalogUseCase.ListProducts(
		c.Request().Context(),
		game,
		category,
		enabledOnly,
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.catalogUseCase.CreateProduct(c.Request().Context(), req.ID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.catalogUseCase.UpdateProduct(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	if err := h.catalogUseCase.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Product deleted successfully",
	})
}

type setEnabledRequest struct {
	Enabled bool `json:"enabled"`
}

func (h *CatalogHandler) SetEnabled(c echo.Context) error {
	var req setEnabledRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.catalogUseCase.SetEnabled(c.Request().Context(), c.Param("id"), req.Enabled)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}
