package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gamerecharge/internal/domain/entity"
	"gamerecharge/internal/domain/repository"
	"gamerecharge/pkg/errors"
)

type firestoreCartRepository struct {
	client *firestore.Client
}

func NewFirestoreCartRepository(client *firestore.Client) repository.CartRepository {
	return &firestoreCartRepository{
		client: client,
	}
}

func (r *firestoreCartRepository) Get(ctx context.Context, sessionID string) (*entity.Cart, error) {
	doc, err := r.client.Collection("carts").Doc(sessionID).Get(ctx)
	if err != nil {
		// A session with no stored cart starts empty
		if status.Code(err) == codes.NotFound {
			return entity.NewCart(sessionID), nil
		}
		return nil, errors.Internal("Failed to get cart", err)
	}

	var cart entity.Cart
	if err := doc.DataTo(&cart); err != nil {
		return nil, errors.Internal("Failed to parse cart data", err)
	}
	if cart.Items == nil {
		cart.Items = []entity.CartItem{}
	}

	return &cart, nil
}

func (r *firestoreCartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	cart.UpdatedAt = time.Now()

	_, err := r.client.Collection("carts").Doc(cart.SessionID).Set(ctx, cart)
	if err != nil {
		return errors.Internal("Failed to save cart", err)
	}

	return nil
}

func (r *firestoreCartRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.client.Collection("carts").Doc(sessionID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete cart", err)
	}

	return nil
}
