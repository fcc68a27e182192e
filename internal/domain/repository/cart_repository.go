package repository

import (
	"context"

	"campussell/internal/domain/entity"
)

type CartRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]*entity.CartItem, error)
	GetByUserAndProduct(ctx context.Context, userID, productID string) (*entity.CartItem, error)
	Create(ctx context.Context, item *entity.CartItem) error
	Update(ctx context.Context, item *entity.CartItem) error
	Delete(ctx context.Context, id string) error

	// ClearByUserID removes every cart line for the user in one batched
	// write.
	ClearByUserID(ctx context.Context, userID string) error

	// CountByProductIDs reports how many cart lines reference each of the
	// given products, for the bulk-delete advisory check.
	CountByProductIDs(ctx context.Context, productIDs []string) (map[string]int, error)
}
