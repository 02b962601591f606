package usecase

import (
	"context"

	"gamerecharge/internal/domain/entity"
	"gamerecharge/internal/domain/repository"
	"gamerecharge/pkg/errors"
	"gamerecharge/pkg/logger"
)

type CatalogUseCase struct {
	productRepo repository.ProductRepository
}

func NewCatalogUseCase(productRepo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
	}
}

type ProductInput struct {
	Game     string
	Name     string
	Price    float64
	Image    string
	Category string
	Enabled  bool
}

func (uc *CatalogUseCase) CreateProduct(ctx context.Context, id string, input ProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, errors.Validation("price", "price cannot be negative")
	}

	category := input.Category
	if category == "" {
		category = entity.CategoryNormal
	}
	if category != entity.CategoryNormal && category != entity.CategoryPromotional {
		return nil, errors.Validation("category", "must be normal or promotional")
	}

	product := &entity.Product{
		ID:       id,
		Game:     input.Game,
		Name:     input.Name,
		Price:    input.Price,
		Image:    input.Image,
		Category: category,
		Enabled:  input.Enabled,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *CatalogUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *CatalogUseCase) ListProducts(ctx context.Context, game, category string, enabledOnly bool, limit, offset int) ([]*entity.Product, int64, error) {
	filter := map[string]interface{}{}
	if game != "" {
		filter["game"] = game
	}
	if category != "" {
		filter["category"] = category
	}
	if enabledOnly {
		filter["enabled"] = true
	}

	return uc.productRepo.List(ctx, filter, limit, offset)
}

func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, id string, input ProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Price < 0 {
		return nil, errors.Validation("price", "price cannot be negative")
	}

	product.Game = input.Game
	product.Name = input.Name
	product.Price = input.Price
	product.Image = input.Image
	if input.Category != "" {
		product.Category = input.Category
	}
	product.Enabled = input.Enabled

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes the product from the catalog. Historical orders keep
// their item snapshots, so no cascade happens here.
func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uc.productRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.productRepo.Delete(ctx, id)
}

// SetEnabled toggles storefront visibility. The cart layer deliberately does
// not re-check this flag; enforcement sits with the storefront UI.
func (uc *CatalogUseCase) SetEnabled(ctx context.Context, id string, enabled bool) (*entity.Product, error) {
	if err := uc.productRepo.SetEnabled(ctx, id, enabled); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info("Product %s %s", id, map[bool]string{true: "enabled", false: "disabled"}[enabled])
	return product, nil
}
