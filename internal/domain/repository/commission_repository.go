package repository

import (
	"context"

	"gamerecharge/internal/domain/entity"
)

type CommissionRepository interface {
	// GetTable loads the full nested game -> sku -> vendor -> amount table.
	GetTable(ctx context.Context) (entity.CommissionTable, error)
	// GetRates returns the vendor -> amount map for one (game, sku) cell,
	// or an empty map when the cell is unconfigured.
	GetRates(ctx context.Context, game, sku string) (map[string]float64, error)
	SetRate(ctx context.Context, game, sku, vendor string, amount float64) error
	// SaveTable persists every cell of the table (the admin bulk save).
	// Writes are per-cell and last-write-wins.
	SaveTable(ctx context.Context, table entity.CommissionTable) error
}
