package repository

import (
	"context"

	"gamerecharge/internal/domain/entity"
)

type RateRepository interface {
	Get(ctx context.Context) (entity.ExchangeRates, error)
	Save(ctx context.Context, rates entity.ExchangeRates) error
}
