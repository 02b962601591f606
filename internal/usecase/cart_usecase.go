package usecase

import (
	"context"

	"gamerecharge/internal/domain/entity"
	"gamerecharge/internal/domain/repository"
	"gamerecharge/pkg/errors"
)

type CartUseCase struct {
	cartRepo repository.CartRepository
	rateRepo repository.RateRepository
}

func NewCartUseCase(cartRepo repository.CartRepository, rateRepo repository.RateRepository) *CartUseCase {
	return &CartUseCase{
		cartRepo: cartRepo,
		rateRepo: rateRepo,
	}
}

type AddItemInput struct {
	ProductID string
	Name      string
	UnitPrice float64
	Quantity  int
}

func (uc *CartUseCase) GetCart(ctx context.Context, sessionID string) (*entity.Cart, error) {
	if sessionID == "" {
		return nil, errors.Validation("session", "cart session is required")
	}
	return uc.cartRepo.Get(ctx, sessionID)
}

// AddItem merges the product into the session's cart and persists the new
// state before returning. The cart does not consult the catalog here:
// enablement of a product is the caller's responsibility.
func (uc *CartUseCase) AddItem(ctx context.Context, sessionID string, input AddItemInput) (*entity.Cart, error) {
	if input.ProductID == "" {
		return nil, errors.Validation("product_id", "product id is required")
	}
	if input.UnitPrice < 0 {
		return nil, errors.Validation("unit_price", "unit price cannot be negative")
	}

	cart, err := uc.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.AddItem(input.ProductID, input.Name, input.UnitPrice, input.Quantity)

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// SetQuantity sets the line quantity exactly. Zero or negative removes the
// line, same as RemoveItem.
func (uc *CartUseCase) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*entity.Cart, error) {
	cart, err := uc.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.SetQuantity(productID, quantity)

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (uc *CartUseCase) RemoveItem(ctx context.Context, sessionID, productID string) (*entity.Cart, error) {
	cart, err := uc.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(productID)

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (uc *CartUseCase) Clear(ctx context.Context, sessionID string) error {
	return uc.cartRepo.Delete(ctx, sessionID)
}

// Totals returns the base-currency total and its display conversion. The
// converted amount is presentation only and is never persisted.
func (uc *CartUseCase) Totals(ctx context.Context, sessionID, currency string) (float64, float64, error) {
	cart, err := uc.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return 0, 0, err
	}

	rates, err := uc.rateRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return 0, 0, err
		}
		rates = entity.DefaultExchangeRates()
	}

	total := cart.Total()
	return total, rates.Convert(total, currency), nil
}
