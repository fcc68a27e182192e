package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"campussell/internal/domain/entity"
	"campussell/internal/domain/repository"
	"campussell/pkg/errors"
)

type firestoreDeliveryCompanyRepository struct {
	client *firestore.Client
}

func NewFirestoreDeliveryCompanyRepository(client *firestore.Client) repository.DeliveryCompanyRepository {
	return &firestoreDeliveryCompanyRepository{
		client: client,
	}
}

func (r *firestoreDeliveryCompanyRepository) Create(ctx context.Context, company *entity.DeliveryCompany) error {
	if company.ID == "" {
		doc := r.client.Collection("deliveryCompanies").NewDoc()
		company.ID = doc.ID
	}

	now := time.Now()
	if company.CreatedAt.IsZero() {
		company.CreatedAt = now
	}
	company.UpdatedAt = now

	_, err := r.client.Collection("deliveryCompanies").Doc(company.ID).Set(ctx, company)
	if err != nil {
		return errors.Internal("Failed to create delivery company", err)
	}

	return nil
}

func (r *firestoreDeliveryCompanyRepository) GetByID(ctx context.Context, id string) (*entity.DeliveryCompany, error) {
	doc, err := r.client.Collection("deliveryCompanies").Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Delivery company", err)
		}
		return nil, errors.Internal("Failed to get delivery company", err)
	}

	var company entity.DeliveryCompany
	if err := doc.DataTo(&company); err != nil {
		return nil, errors.Internal("Failed to parse delivery company data", err)
	}

	return &company, nil
}

func (r *firestoreDeliveryCompanyRepository) GetByContactEmail(ctx context.Context, email string) (*entity.DeliveryCompany, error) {
	docs, err := r.client.Collection("deliveryCompanies").
		Where("contactInfo.email", "==", strings.ToLower(email)).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to look up delivery company by email", err)
	}

	if len(docs) == 0 {
		return nil, errors.NotFound("Delivery company", nil)
	}

	var company entity.DeliveryCompany
	if err := docs[0].DataTo(&company); err != nil {
		return nil, errors.Internal("Failed to parse delivery company data", err)
	}

	return &company, nil
}

func (r *firestoreDeliveryCompanyRepository) Update(ctx context.Context, company *entity.DeliveryCompany) error {
	company.UpdatedAt = time.Now()

	_, err := r.client.Collection("deliveryCompanies").Doc(company.ID).Set(ctx, company)
	if err != nil {
		return errors.Internal("Failed to update delivery company", err)
	}

	return nil
}

func (r *firestoreDeliveryCompanyRepository) List(ctx context.Context, limit, offset int) ([]*entity.DeliveryCompany, int64, error) {
	query := r.client.Collection("deliveryCompanies").Query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count delivery companies", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var companies []*entity.DeliveryCompany

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate delivery companies", err)
		}

		var company entity.DeliveryCompany
		if err := doc.DataTo(&company); err != nil {
			return nil, 0, errors.Internal("Failed to parse delivery company data", err)
		}
		companies = append(companies, &company)
	}

	return companies, total, nil
}

func (r *firestoreDeliveryCompanyRepository) ListByStatus(ctx context.Context, status string) ([]*entity.DeliveryCompany, error) {
	iter := r.client.Collection("deliveryCompanies").
		Where("status", "==", status).
		Documents(ctx)

	var companies []*entity.DeliveryCompany

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to load delivery companies", err)
		}

		var company entity.DeliveryCompany
		if err := doc.DataTo(&company); err != nil {
			return nil, errors.Internal("Failed to parse delivery company data", err)
		}
		companies = append(companies, &company)
	}

	return companies, nil
}

// Delete removes the company, its service areas, its pricing doc and its
// metrics doc in a single transaction. All reads happen before the writes,
// as Firestore transactions require.
func (r *firestoreDeliveryCompanyRepository) Delete(ctx context.Context, id string) error {
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		companyRef := r.client.Collection("deliveryCompanies").Doc(id)
		if _, err := tx.Get(companyRef); err != nil {
			return err
		}

		areaDocs, err := tx.Documents(r.client.Collection("serviceAreas").Where("companyId", "==", id)).GetAll()
		if err != nil {
			return err
		}

		for _, doc := range areaDocs {
			if err := tx.Delete(doc.Ref); err != nil {
				return err
			}
		}

		if err := tx.Delete(r.client.Collection("pricingStructures").Doc(id)); err != nil {
			return err
		}
		if err := tx.Delete(r.client.Collection("performanceMetrics").Doc(id)); err != nil {
			return err
		}

		return tx.Delete(companyRef)
	})
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Delivery company", err)
		}
		return errors.Internal("Failed to delete delivery company", err)
	}

	return nil
}
