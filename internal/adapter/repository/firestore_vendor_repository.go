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

type firestoreVendorRepository struct {
	client *firestore.Client
}

func NewFirestoreVendorRepository(client *firestore.Client) repository.VendorRepository {
	return &firestoreVendorRepository{
		client: client,
	}
}

func (r *firestoreVendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	if vendor.ID == "" {
		doc := r.client.Collection("vendors").NewDoc()
		vendor.ID = doc.ID
	}

	now := time.Now()
	if vendor.CreatedAt.IsZero() {
		vendor.CreatedAt = now
	}
	vendor.UpdatedAt = now

	_, err := r.client.Collection("vendors").Doc(vendor.ID).Set(ctx, vendor)
	if err != nil {
		return errors.Internal("Failed to create vendor", err)
	}

	return nil
}

func (r *firestoreVendorRepository) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	doc, err := r.client.Collection("vendors").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Vendor", err)
		}
		return nil, errors.Internal("Failed to get vendor", err)
	}

	var vendor entity.Vendor
	if err := doc.DataTo(&vendor); err != nil {
		return nil, errors.Internal("Failed to parse vendor data", err)
	}

	return &vendor, nil
}

func (r *firestoreVendorRepository) GetByName(ctx context.Context, name string) (*entity.Vendor, error) {
	query := r.client.Collection("vendors").Where("name", "==", name).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()

	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Vendor", nil)
		}
		return nil, errors.Internal("Failed to query vendor", err)
	}

	var vendor entity.Vendor
	if err := doc.DataTo(&vendor); err != nil {
		return nil, errors.Internal("Failed to parse vendor data", err)
	}

	return &vendor, nil
}

func (r *firestoreVendorRepository) List(ctx context.Context) ([]*entity.Vendor, error) {
	iter := r.client.Collection("vendors").OrderBy("name", firestore.Asc).Documents(ctx)
	var vendors []*entity.Vendor

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate vendors", err)
		}

		var vendor entity.Vendor
		if err := doc.DataTo(&vendor); err != nil {
			return nil, errors.Internal("Failed to parse vendor data", err)
		}
		vendors = append(vendors, &vendor)
	}

	return vendors, nil
}

func (r *firestoreVendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	vendor.UpdatedAt = time.Now()

	_, err := r.client.Collection("vendors").Doc(vendor.ID).Set(ctx, vendor)
	if err != nil {
		return errors.Internal("Failed to update vendor", err)
	}

	return nil
}

func (r *firestoreVendorRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("vendors").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete vendor", err)
	}

	return nil
}
