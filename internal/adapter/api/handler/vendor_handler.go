package handler

import (
	"gamerecharge/internal/usecase"
	"gamerecharge/pkg/response"

	"github.com/labstack/echo/v4"
)

type VendorHandler struct {
	vendorUseCase *usecase.VendorUseCase
}

func NewVendorHandler(vendorUseCase *usecase.VendorUseCase) *VendorHandler {
	return &VendorHandler{
		vendorUseCase: vendorUseCase,
	}
}

type vendorRequest struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact"`
	Avatar  string `json:"avatar" validate:"omitempty,url"`
}

func (h *VendorHandler) ListVendors(c echo.Context) error {
	vendors, err := h.vendorUseCase.ListVendors(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, vendors)
}

func (h *VendorHandler) GetVendor(c echo.Context) error {
	vendor, err := h.vendorUseCase.GetVendor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, vendor)
}

func (h *VendorHandler) CreateVendor(c echo.Context) error {
	var req vendorRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	vendor, err := h.vendorUseCase.CreateVendor(c.Request().Context(), usecase.VendorInput{
		Name:    req.Name,
		Contact: req.Contact,
		Avatar:  req.Avatar,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, vendor)
}

func (h *VendorHandler) UpdateVendor(c echo.Context) error {
	var req vendorRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	vendor, err := h.vendorUseCase.UpdateVendor(c.Request().Context(), c.Param("id"), usecase.VendorInput{
		Name:    req.Name,
		Contact: req.Contact,
		Avatar:  req.Avatar,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, vendor)
}

func (h *VendorHandler) DeleteVendor(c echo.Context) error {
	if err := h.vendorUseCase.DeleteVendor(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Vendor deleted successfully",
	})
}

func (h *VendorHandler) GetVendorStats(c echo.Context) error {
	stats, err := h.vendorUseCase.GetVendorStats(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}
