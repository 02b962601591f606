package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamerecharge/internal/domain/entity"
	apperrors "gamerecharge/pkg/errors"
)

func TestGetRatesPrefersLocalStore(t *testing.T) {
	rateRepo := newMemRateRepo()
	gateway := &fakeSyncGateway{rates: entity.ExchangeRates{"USD": 1, "EUR": 0.9}}
	uc := NewRateUseCase(rateRepo, gateway, 0)
	ctx := context.Background()

	require.NoError(t, rateRepo.Save(ctx, entity.ExchangeRates{"USD": 1, "VES": 36.5}))

	rates, err := uc.GetRates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 36.5, rates["VES"])
	_, hasEUR := rates["EUR"]
	assert.False(t, hasEUR)
}

func TestGetRatesFetchesFromSheetWhenLocalMissing(t *testing.T) {
	rateRepo := newMemRateRepo()
	gateway := &fakeSyncGateway{rates: entity.ExchangeRates{"USD": 1, "EUR": 0.9}}
	uc := NewRateUseCase(rateRepo, gateway, 0)

	rates, err := uc.GetRates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.9, rates["EUR"])

	// Fetched rates are cached locally
	cached, err := rateRepo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.9, cached["EUR"])
}

func TestGetRatesFallsBackToDefaults(t *testing.T) {
	rateRepo := newMemRateRepo()
	gateway := &fakeSyncGateway{rateErr: apperrors.SyncFailed("getExchangeRates", nil)}
	uc := NewRateUseCase(rateRepo, gateway, 0)

	rates, err := uc.GetRates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultExchangeRates(), rates)
}

func TestUpdateRatesValidatesAndPersists(t *testing.T) {
	rateRepo := newMemRateRepo()
	uc := NewRateUseCase(rateRepo, &fakeSyncGateway{}, 0)
	ctx := context.Background()

	err := uc.UpdateRates(ctx, entity.ExchangeRates{"EUR": -1})
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))

	err = uc.UpdateRates(ctx, entity.ExchangeRates{})
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))

	require.NoError(t, uc.UpdateRates(ctx, entity.ExchangeRates{"USD": 1, "EUR": 0.85}))
	stored, err := rateRepo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.85, stored["EUR"])
}

func TestUpdateRatesSurvivesSyncFailure(t *testing.T) {
	rateRepo := newMemRateRepo()
	gateway := &fakeSyncGateway{fail: true}
	uc := NewRateUseCase(rateRepo, gateway, 0)
	ctx := context.Background()

	require.NoError(t, uc.UpdateRates(ctx, entity.ExchangeRates{"USD": 1, "GBP": 0.73}))

	stored, err := rateRepo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.73, stored["GBP"])
}
