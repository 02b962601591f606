package usecase

import (
	"context"
	"time"

	"gamerecharge/internal/domain/entity"
	"gamerecharge/internal/domain/repository"
	"gamerecharge/pkg/errors"
	"gamerecharge/pkg/logger"
)

type RateUseCase struct {
	rateRepo    repository.RateRepository
	syncGateway SyncGateway
	syncTimeout time.Duration
}

func NewRateUseCase(rateRepo repository.RateRepository, syncGateway SyncGateway, syncTimeout time.Duration) *RateUseCase {
	if syncTimeout <= 0 {
		syncTimeout = 5 * time.Second
	}

	return &RateUseCase{
		rateRepo:    rateRepo,
		syncGateway: syncGateway,
		syncTimeout: syncTimeout,
	}
}

// GetRates serves the display-conversion table: local store first, then the
// sheet, then the hardcoded fallback. Whatever comes back, USD stays 1.
func (uc *RateUseCase) GetRates(ctx context.Context) (entity.ExchangeRates, error) {
	rates, err := uc.rateRepo.Get(ctx)
	if err == nil && len(rates) > 0 {
		return rates, nil
	}
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	if uc.syncGateway != nil {
		fetched, fetchErr := uc.syncGateway.FetchExchangeRates(ctx)
		if fetchErr == nil && len(fetched) > 0 {
			if saveErr := uc.rateRepo.Save(ctx, fetched); saveErr != nil {
				logger.Warn("Failed to cache fetched exchange rates: %v", saveErr)
			}
			return fetched, nil
		}
	}

	return entity.DefaultExchangeRates(), nil
}

// UpdateRates persists the admin's table and mirrors it to the sheet.
func (uc *RateUseCase) UpdateRates(ctx context.Context, rates entity.ExchangeRates) error {
	if len(rates) == 0 {
		return errors.Validation("rates", "at least one currency rate is required")
	}
	for code, rate := range rates {
		if rate <= 0 {
			return errors.Validation("rates", "rate for "+code+" must be positive")
		}
	}

	if err := uc.rateRepo.Save(ctx, rates); err != nil {
		return err
	}

	if uc.syncGateway != nil {
		go func() {
			pushCtx, cancel := context.WithTimeout(context.Background(), uc.syncTimeout)
			defer cancel()

			if err := uc.syncGateway.PushRates(pushCtx, rates); err != nil {
				logger.LogSyncError("updateRates", "exchange_rates", err)
			}
		}()
	}

	return nil
}
