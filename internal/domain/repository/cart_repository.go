package repository

import (
	"context"

	"gamerecharge/internal/domain/entity"
)

type CartRepository interface {
	// Get returns the session's cart, or a fresh empty cart when the
	// session has none yet.
	Get(ctx context.Context, sessionID string) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
