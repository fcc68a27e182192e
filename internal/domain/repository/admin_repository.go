package repository

import (
	"context"

	"campussell/internal/domain/entity"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.AdminRecord) error
	GetByEmail(ctx context.Context, email string) (*entity.AdminRecord, error)
	Update(ctx context.Context, admin *entity.AdminRecord) error
	Delete(ctx context.Context, email string) error
	List(ctx context.Context) ([]*entity.AdminRecord, error)
}

type AuditLogRepository interface {
	Append(ctx context.Context, entry *entity.AuditLogEntry) error
	List(ctx context.Context, adminEmail string, limit, offset int) ([]*entity.AuditLogEntry, int64, error)
}
