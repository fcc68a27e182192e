package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"campussell/internal/domain/entity"
	"campussell/internal/domain/repository"
	"campussell/pkg/errors"
)

type firestoreServiceAreaRepository struct {
	client *firestore.Client
}

func NewFirestoreServiceAreaRepository(client *firestore.Client) repository.ServiceAreaRepository {
	return &firestoreServiceAreaRepository{
		client: client,
	}
}

func (r *firestoreServiceAreaRepository) Create(ctx context.Context, area *entity.ServiceArea) error {
	if area.ID == "" {
		area.ID = uuid.New().String()
	}
	area.CreatedAt = time.Now()

	_, err := r.client.Collection("serviceAreas").Doc(area.ID).Set(ctx, area)
	if err != nil {
		return errors.Internal("Failed to create service area", err)
	}

	return nil
}

func (r *firestoreServiceAreaRepository) Update(ctx context.Context, area *entity.ServiceArea) error {
	_, err := r.client.Collection("serviceAreas").Doc(area.ID).Set(ctx, area)
	if err != nil {
		return errors.Internal("Failed to update service area", err)
	}

	return nil
}

func (r *firestoreServiceAreaRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("serviceAreas").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete service area", err)
	}

	return nil
}

func (r *firestoreServiceAreaRepository) ListByCompanyID(ctx context.Context, companyID string) ([]*entity.ServiceArea, error) {
	iter := r.client.Collection("serviceAreas").
		Where("companyId", "==", companyID).
		Documents(ctx)

	var areas []*entity.ServiceArea

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to load service areas", err)
		}

		var area entity.ServiceArea
		if err := doc.DataTo(&area); err != nil {
			return nil, errors.Internal("Failed to parse service area data", err)
		}
		areas = append(areas, &area)
	}

	return areas, nil
}
