package handler

import (
	"gamerecharge/internal/usecase"
)

var (
	cartHandler       *CartHandler
	orderHandler      *OrderHandler
	catalogHandler    *CatalogHandler
	commissionHandler *CommissionHandler
	vendorHandler     *VendorHandler
	rateHandler       *RateHandler
)

func Setup(
	cartUseCase *usecase.CartUseCase,
	orderUseCase *usecase.OrderUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	commissionUseCase *usecase.CommissionUseCase,
	vendorUseCase *usecase.VendorUseCase,
	rateUseCase *usecase.RateUseCase,
) {
	cartHandler = NewCartHandler(cartUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	catalogHandler = NewCatalogHandler(catalogUseCase)
	commissionHandler = NewCommissionHandler(commissionUseCase)
	vendorHandler = NewVendorHandler(vendorUseCase)
	rateHandler = NewRateHandler(rateUseCase)
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetCommissionHandler() *CommissionHandler {
	return commissionHandler
}

func GetVendorHandler() *VendorHandler {
	return vendorHandler
}

func GetRateHandler() *RateHandler {
	return rateHandler
}
