package repository

import (
	"context"

	"campussell/internal/domain/entity"
)

type DeliveryCompanyRepository interface {
	Create(ctx context.Context, company *entity.DeliveryCompany) error
	GetByID(ctx context.Context, id string) (*entity.DeliveryCompany, error)

	// GetByContactEmail resolves an authenticated caller to the company
	// they act for.
	GetByContactEmail(ctx context.Context, email string) (*entity.DeliveryCompany, error)
	Update(ctx context.Context, company *entity.DeliveryCompany) error
	List(ctx context.Context, limit, offset int) ([]*entity.DeliveryCompany, int64, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.DeliveryCompany, error)

	// Delete removes the company doc together with all of its service
	// areas, its pricing doc and its metrics doc in one transaction.
	Delete(ctx context.Context, id string) error
}

type ServiceAreaRepository interface {
	Create(ctx context.Context, area *entity.ServiceArea) error
	Update(ctx context.Context, area *entity.ServiceArea) error
	Delete(ctx context.Context, id string) error
	ListByCompanyID(ctx context.Context, companyID string) ([]*entity.ServiceArea, error)
}

type PricingRepository interface {
	GetByCompanyID(ctx context.Context, companyID string) (*entity.PricingStructure, error)
	Set(ctx context.Context, pricing *entity.PricingStructure) error
}

type MetricsRepository interface {
	GetByCompanyID(ctx context.Context, companyID string) (*entity.PerformanceMetrics, error)
	IncrementDelivered(ctx context.Context, companyID string) error
	IncrementCancelled(ctx context.Context, companyID string) error
}
