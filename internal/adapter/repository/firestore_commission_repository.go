package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gamerecharge/internal/domain/entity"
	"gamerecharge/internal/domain/repository"
	"gamerecharge/pkg/errors"
)

// One document per (game, sku) cell, keyed "game__sku", holding the
// vendor -> amount map. The nested table is assembled on read.
type commissionDoc struct {
	Game      string             `firestore:"game"`
	SKU       string             `firestore:"sku"`
	Rates     map[string]float64 `firestore:"rates"`
	UpdatedAt time.Time          `firestore:"updatedAt"`
}

type firestoreCommissionRepository struct {
	client *firestore.Client
}

func NewFirestoreCommissionRepository(client *firestore.Client) repository.CommissionRepository {
	return &firestoreCommissionRepository{
		client: client,
	}
}

func commissionDocID(game, sku string) string {
	return game + "__" + sku
}

func (r *firestoreCommissionRepository) GetTable(ctx context.Context) (entity.CommissionTable, error) {
	iter := r.client.Collection("commissions").Documents(ctx)
	table := entity.CommissionTable{}

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate commissions", err)
		}

		var cell commissionDoc
		if err := doc.DataTo(&cell); err != nil {
			return nil, errors.Internal("Failed to parse commission data", err)
		}
		for vendor, amount := range cell.Rates {
			table.Set(cell.Game, cell.SKU, vendor, amount)
		}
	}

	return table, nil
}

func (r *firestoreCommissionRepository) GetRates(ctx context.Context, game, sku string) (map[string]float64, error) {
	doc, err := r.client.Collection("commissions").Doc(commissionDocID(game, sku)).Get(ctx)
	if err != nil {
		// Unconfigured cells read as empty, never as an error
		if status.Code(err) == codes.NotFound {
			return map[string]float64{}, nil
		}
		return nil, errors.Internal("Failed to get commission cell", err)
	}

	var cell commissionDoc
	if err := doc.DataTo(&cell); err != nil {
		return nil, errors.Internal("Failed to parse commission data", err)
	}
	if cell.Rates == nil {
		cell.Rates = map[string]float64{}
	}

	return cell.Rates, nil
}

func (r *firestoreCommissionRepository) SetRate(ctx context.Context, game, sku, vendor string, amount float64) error {
	docRef := r.client.Collection("commissions").Doc(commissionDocID(game, sku))

	_, err := docRef.Set(ctx, map[string]interface{}{
		"game":      game,
		"sku":       sku,
		"rates":     map[string]float64{vendor: amount},
		"updatedAt": time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to set commission rate", err)
	}

	return nil
}

func (r *firestoreCommissionRepository) SaveTable(ctx context.Context, table entity.CommissionTable) error {
	// Per-cell writes, last write wins. Matches the admin bulk-save sweep.
	for game, skus := range table {
		for sku, vendors := range skus {
			cell := commissionDoc{
				Game:      game,
				SKU:       sku,
				Rates:     vendors,
				UpdatedAt: time.Now(),
			}
			_, err := r.client.Collection("commissions").Doc(commissionDocID(game, sku)).Set(ctx, cell)
			if err != nil {
				return errors.Internal("Failed to save commission table", err)
			}
		}
	}

	return nil
}
