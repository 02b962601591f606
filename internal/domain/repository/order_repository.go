package repository

import (
	"context"

	"gamerecharge/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// List applies equality filters and returns orders in ledger order
	// (creation time ascending).
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Order, int64, error)
	Update(ctx context.Context, order *entity.Order) error
}
