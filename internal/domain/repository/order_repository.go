package repository

import (
	"context"

	"campussell/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	ListByUserID(ctx context.Context, userID string, status string, limit, offset int) ([]*entity.Order, int64, error)
	ListByCompanyID(ctx context.Context, companyID string, status string, limit, offset int) ([]*entity.Order, int64, error)
}
