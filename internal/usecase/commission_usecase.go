package usecase

import (
	"context"
	"time"

	"gamerecharge/internal/domain/entity"
	"gamerecharge/internal/domain/repository"
	"gamerecharge/pkg/errors"
	"gamerecharge/pkg/logger"
)

type CommissionUseCase struct {
	commissionRepo repository.CommissionRepository
	syncGateway    SyncGateway
	syncTimeout    time.Duration
}

func NewCommissionUseCase(commissionRepo repository.CommissionRepository, syncGateway SyncGateway, syncTimeout time.Duration) *CommissionUseCase {
	if syncTimeout <= 0 {
		syncTimeout = 5 * time.Second
	}

	return &CommissionUseCase{
		commissionRepo: commissionRepo,
		syncGateway:    syncGateway,
		syncTimeout:    syncTimeout,
	}
}

// GetProfitRate returns the vendor's unit profit for a (game, sku) cell,
// or 0 when the combination is unconfigured. It never fails on a missing key.
func (uc *CommissionUseCase) GetProfitRate(ctx context.Context, game, sku, vendor string) (float64, error) {
	rates, err := uc.commissionRepo.GetRates(ctx, game, sku)
	if err != nil {
		return 0, err
	}
	return rates[vendor], nil
}

// SetProfitRate upserts one cell, creating missing levels, then mirrors the
// full table to the sheet.
func (uc *CommissionUseCase) SetProfitRate(ctx context.Context, game, sku, vendor string, amount float64) error {
	if game == "" || sku == "" || vendor == "" {
		return errors.Validation("commission", "game, sku and vendor are required")
	}
	if amount < 0 {
		return errors.Validation("amount", "commission amount cannot be negative")
	}

	if err := uc.commissionRepo.SetRate(ctx, game, sku, vendor, amount); err != nil {
		return err
	}

	uc.pushProfits(ctx)
	return nil
}

func (uc *CommissionUseCase) GetTable(ctx context.Context) (entity.CommissionTable, error) {
	return uc.commissionRepo.GetTable(ctx)
}

// GetFlatView derives the legacy productId-keyed shape for the admin panel.
func (uc *CommissionUseCase) GetFlatView(ctx context.Context) (map[string]map[string]float64, error) {
	table, err := uc.commissionRepo.GetTable(ctx)
	if err != nil {
		return nil, err
	}
	return table.FlatView(), nil
}

// BulkSave persists the whole table (the admin "save all profits" sweep) and
// pushes one updateProfits sync. Concurrent edits are last-write-wins.
func (uc *CommissionUseCase) BulkSave(ctx context.Context, table entity.CommissionTable) error {
	for game, skus := range table {
		for sku, vendors := range skus {
			for vendor, amount := range vendors {
				if amount < 0 {
					return errors.Validation("amount", "commission amount cannot be negative for "+game+"/"+sku+"/"+vendor)
				}
			}
		}
	}

	if err := uc.commissionRepo.SaveTable(ctx, table); err != nil {
		return err
	}

	uc.pushProfits(ctx)
	return nil
}

// ComputeOrderProfit sums the vendor's per-unit commission over the items.
// Items without an entry contribute 0 rather than failing the checkout.
func (uc *CommissionUseCase) ComputeOrderProfit(ctx context.Context, items []entity.CartItem, vendor, game string) (float64, error) {
	table, err := uc.commissionRepo.GetTable(ctx)
	if err != nil {
		return 0, err
	}
	return table.OrderProfit(items, vendor, game), nil
}

// EnsureDefaults seeds the standing commission table on an empty install.
func (uc *CommissionUseCase) EnsureDefaults(ctx context.Context) error {
	table, err := uc.commissionRepo.GetTable(ctx)
	if err != nil {
		return err
	}
	if len(table) > 0 {
		return nil
	}

	logger.Info("Seeding default commission table")
	return uc.commissionRepo.SaveTable(ctx, entity.DefaultCommissionTable())
}

func (uc *CommissionUseCase) pushProfits(ctx context.Context) {
	if uc.syncGateway == nil {
		return
	}

	// Read the table now so the push carries the state this mutation left
	table, err := uc.commissionRepo.GetTable(ctx)
	if err != nil {
		logger.LogSyncError("updateProfits", "table", err)
		return
	}

	go func() {
		pushCtx, cancel := context.WithTimeout(context.Background(), uc.syncTimeout)
		defer cancel()

		if err := uc.syncGateway.PushProfits(pushCtx, table); err != nil {
			logger.LogSyncError("updateProfits", "table", err)
		}
	}()
}
