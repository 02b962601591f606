package usecase

import (
	"context"

	"gamerecharge/internal/domain/entity"
	"gamerecharge/internal/domain/service"
)

// SyncGateway mirrors local mutations to the external system of record.
// Implementations are best-effort: callers fire pushes asynchronously and
// only ever log the result.
type SyncGateway interface {
	PushOrder(ctx context.Context, order *entity.Order) error
	PushOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) error
	PushProfits(ctx context.Context, table entity.CommissionTable) error
	PushRates(ctx context.Context, rates entity.ExchangeRates) error
	FetchExchangeRates(ctx context.Context) (entity.ExchangeRates, error)
	FetchStatistics(ctx context.Context, from, to string) (*service.Statistics, error)
}
