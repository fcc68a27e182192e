package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"campussell/internal/domain/entity"
	"campussell/internal/domain/repository"
	"campussell/pkg/errors"
)

type firestorePricingRepository struct {
	client *firestore.Client
}

func NewFirestorePricingRepository(client *firestore.Client) repository.PricingRepository {
	return &firestorePricingRepository{
		client: client,
	}
}

func (r *firestorePricingRepository) GetByCompanyID(ctx context.Context, companyID string) (*entity.PricingStructure, error) {
	doc, err := r.client.Collection("pricingStructures").Doc(companyID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Pricing structure", err)
		}
		return nil, errors.Internal("Failed to get pricing structure", err)
	}

	var pricing entity.PricingStructure
	if err := doc.DataTo(&pricing); err != nil {
		return nil, errors.Internal("Failed to parse pricing data", err)
	}

	return &pricing, nil
}

func (r *firestorePricingRepository) Set(ctx context.Context, pricing *entity.PricingStructure) error {
	pricing.UpdatedAt = time.Now()

	_, err := r.client.Collection("pricingStructures").Doc(pricing.CompanyID).Set(ctx, pricing)
	if err != nil {
		return errors.Internal("Failed to save pricing structure", err)
	}

	return nil
}

type firestoreMetricsRepository struct {
	client *firestore.Client
}

func NewFirestoreMetricsRepository(client *firestore.Client) repository.MetricsRepository {
	return &firestoreMetricsRepository{
		client: client,
	}
}

func (r *firestoreMetricsRepository) GetByCompanyID(ctx context.Context, companyID string) (*entity.PerformanceMetrics, error) {
	doc, err := r.client.Collection("performanceMetrics").Doc(companyID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			// A company with no recorded deliveries has an all-zero record.
			return &entity.PerformanceMetrics{CompanyID: companyID}, nil
		}
		return nil, errors.Internal("Failed to get performance metrics", err)
	}

	var metrics entity.PerformanceMetrics
	if err := doc.DataTo(&metrics); err != nil {
		return nil, errors.Internal("Failed to parse metrics data", err)
	}

	return &metrics, nil
}

func (r *firestoreMetricsRepository) IncrementDelivered(ctx context.Context, companyID string) error {
	return r.increment(ctx, companyID, "deliveredOrders")
}

func (r *firestoreMetricsRepository) IncrementCancelled(ctx context.Context, companyID string) error {
	return r.increment(ctx, companyID, "cancelledOrders")
}

func (r *firestoreMetricsRepository) increment(ctx context.Context, companyID, field string) error {
	_, err := r.client.Collection("performanceMetrics").Doc(companyID).Set(ctx, map[string]interface{}{
		"companyId": companyID,
		field:       firestore.Increment(1),
		"updatedAt": time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update performance metrics", err)
	}

	return nil
}
