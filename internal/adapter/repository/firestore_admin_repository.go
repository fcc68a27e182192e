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

type firestoreAdminRepository struct {
	client *firestore.Client
}

func NewFirestoreAdminRepository(client *firestore.Client) repository.AdminRepository {
	return &firestoreAdminRepository{
		client: client,
	}
}

func (r *firestoreAdminRepository) Create(ctx context.Context, admin *entity.AdminRecord) error {
	now := time.Now()
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = now
	}
	admin.UpdatedAt = now

	_, err := r.client.Collection("admins").Doc(admin.Email).Set(ctx, admin)
	if err != nil {
		return errors.Internal("Failed to create admin record", err)
	}

	return nil
}

func (r *firestoreAdminRepository) GetByEmail(ctx context.Context, email string) (*entity.AdminRecord, error) {
	doc, err := r.client.Collection("admins").Doc(email).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Admin", err)
		}
		return nil, errors.Internal("Failed to get admin record", err)
	}

	var admin entity.AdminRecord
	if err := doc.DataTo(&admin); err != nil {
		return nil, errors.Internal("Failed to parse admin data", err)
	}

	return &admin, nil
}

func (r *firestoreAdminRepository) Update(ctx context.Context, admin *entity.AdminRecord) error {
	admin.UpdatedAt = time.Now()

	_, err := r.client.Collection("admins").Doc(admin.Email).Set(ctx, admin)
	if err != nil {
		return errors.Internal("Failed to update admin record", err)
	}

	return nil
}

func (r *firestoreAdminRepository) Delete(ctx context.Context, email string) error {
	_, err := r.client.Collection("admins").Doc(email).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete admin record", err)
	}

	return nil
}

func (r *firestoreAdminRepository) List(ctx context.Context) ([]*entity.AdminRecord, error) {
	iter := r.client.Collection("admins").OrderBy("createdAt", firestore.Asc).Documents(ctx)

	var admins []*entity.AdminRecord

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate admins", err)
		}

		var admin entity.AdminRecord
		if err := doc.DataTo(&admin); err != nil {
			return nil, errors.Internal("Failed to parse admin data", err)
		}
		admins = append(admins, &admin)
	}

	return admins, nil
}

type firestoreAuditLogRepository struct {
	client *firestore.Client
}

func NewFirestoreAuditLogRepository(client *firestore.Client) repository.AuditLogRepository {
	return &firestoreAuditLogRepository{
		client: client,
	}
}

// Append only. There is no update or delete path for audit entries.
func (r *firestoreAuditLogRepository) Append(ctx context.Context, entry *entity.AuditLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := r.client.Collection("audit_logs").Doc(entry.ID).Create(ctx, entry)
	if err != nil {
		return errors.Internal("Failed to append audit log entry", err)
	}

	return nil
}

func (r *firestoreAuditLogRepository) List(ctx context.Context, adminEmail string, limit, offset int) ([]*entity.AuditLogEntry, int64, error) {
	query := r.client.Collection("audit_logs").Query

	if adminEmail != "" {
		query = query.Where("adminEmail", "==", adminEmail)
	}

	query = query.OrderBy("timestamp", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count audit log entries", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var entries []*entity.AuditLogEntry

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate audit log", err)
		}

		var entry entity.AuditLogEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, 0, errors.Internal("Failed to parse audit log data", err)
		}
		entries = append(entries, &entry)
	}

	return entries, total, nil
}
