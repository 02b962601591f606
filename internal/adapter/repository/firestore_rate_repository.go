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

type rateDoc struct {
	Rates     map[string]float64 `firestore:"rates"`
	UpdatedAt time.Time          `firestore:"updatedAt"`
}

type firestoreRateRepository struct {
	client *firestore.Client
}

func NewFirestoreRateRepository(client *firestore.Client) repository.RateRepository {
	return &firestoreRateRepository{
		client: client,
	}
}

func (r *firestoreRateRepository) Get(ctx context.Context) (entity.ExchangeRates, error) {
	doc, err := r.client.Collection("config").Doc("exchange_rates").Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Exchange rates", err)
		}
		return nil, errors.Internal("Failed to get exchange rates", err)
	}

	var stored rateDoc
	if err := doc.DataTo(&stored); err != nil {
		return nil, errors.Internal("Failed to parse exchange rates", err)
	}

	return entity.ExchangeRates(stored.Rates), nil
}

func (r *firestoreRateRepository) Save(ctx context.Context, rates entity.ExchangeRates) error {
	_, err := r.client.Collection("config").Doc("exchange_rates").Set(ctx, rateDoc{
		Rates:     rates,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return errors.Internal("Failed to save exchange rates", err)
	}

	return nil
}
