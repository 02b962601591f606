package usecase

import (
	"context"

	"gamerecharge/internal/domain/entity"
	"gamerecharge/internal/domain/repository"
	"gamerecharge/pkg/errors"
)

type VendorUseCase struct {
	vendorRepo repository.VendorRepository
	orderRepo  repository.OrderRepository
}

func NewVendorUseCase(vendorRepo repository.VendorRepository, orderRepo repository.OrderRepository) *VendorUseCase {
	return &VendorUseCase{
		vendorRepo: vendorRepo,
		orderRepo:  orderRepo,
	}
}

type VendorInput struct {
	Name    string
	Contact string
	Avatar  string
}

// VendorStats is the per-vendor aggregate view for the admin panel.
type VendorStats struct {
	Vendor      *entity.Vendor `json:"vendor"`
	OrderCount  int64          `json:"order_count"`
	TotalProfit float64        `json:"total_profit"`
}

func (uc *VendorUseCase) CreateVendor(ctx context.Context, input VendorInput) (*entity.Vendor, error) {
	if input.Name == "" {
		return nil, errors.Validation("name", "vendor name is required")
	}

	// The name keys the commission table, so it must be unique
	existing, err := uc.vendorRepo.GetByName(ctx, input.Name)
	if err == nil && existing != nil {
		return nil, errors.BadRequest("Vendor with this name already exists", nil)
	}

	vendor := &entity.Vendor{
		Name:    input.Name,
		Contact: input.Contact,
		Avatar:  input.Avatar,
	}

	if err := uc.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}

	return vendor, nil
}

func (uc *VendorUseCase) GetVendor(ctx context.Context, id string) (*entity.Vendor, error) {
	return uc.vendorRepo.GetByID(ctx, id)
}

func (uc *VendorUseCase) ListVendors(ctx context.Context) ([]*entity.Vendor, error) {
	return uc.vendorRepo.List(ctx)
}

func (uc *VendorUseCase) UpdateVendor(ctx context.Context, id string, input VendorInput) (*entity.Vendor, error) {
	vendor, err := uc.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		vendor.Name = input.Name
	}
	vendor.Contact = input.Contact
	vendor.Avatar = input.Avatar

	if err := uc.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}

	return vendor, nil
}

func (uc *VendorUseCase) DeleteVendor(ctx context.Context, id string) error {
	if _, err := uc.vendorRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.vendorRepo.Delete(ctx, id)
}

// GetVendorStats reports the vendor's order count and accumulated profit
// from the ledger. Profits were fixed at order creation.
func (uc *VendorUseCase) GetVendorStats(ctx context.Context, id string) (*VendorStats, error) {
	vendor, err := uc.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	orders, _, err := uc.orderRepo.List(ctx, map[string]interface{}{"vendor": vendor.Name}, 0, 0)
	if err != nil {
		return nil, err
	}

	stats := &VendorStats{Vendor: vendor}
	for _, order := range orders {
		stats.OrderCount++
		stats.TotalProfit += order.Profit
	}

	return stats, nil
}
