package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"campussell/internal/domain/entity"
	"campussell/internal/domain/repository"
	"campussell/pkg/errors"
)

type firestoreInquiryRepository struct {
	client *firestore.Client
}

func NewFirestoreInquiryRepository(client *firestore.Client) repository.InquiryRepository {
	return &firestoreInquiryRepository{
		client: client,
	}
}

func (r *firestoreInquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	if inquiry.ID == "" {
		doc := r.client.Collection("inquiries").NewDoc()
		inquiry.ID = doc.ID
	}

	now := time.Now()
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = now
	}
	inquiry.UpdatedAt = now

	_, err := r.client.Collection("inquiries").Doc(inquiry.ID).Set(ctx, inquiry)
	if err != nil {
		return errors.Internal("Failed to create inquiry", err)
	}

	return nil
}

func (r *firestoreInquiryRepository) GetByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	doc, err := r.client.Collection("inquiries").Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Inquiry", err)
		}
		return nil, errors.Internal("Failed to get inquiry", err)
	}

	var inquiry entity.Inquiry
	if err := doc.DataTo(&inquiry); err != nil {
		return nil, errors.Internal("Failed to parse inquiry data", err)
	}

	return &inquiry, nil
}

func (r *firestoreInquiryRepository) Update(ctx context.Context, inquiry *entity.Inquiry) error {
	inquiry.UpdatedAt = time.Now()

	_, err := r.client.Collection("inquiries").Doc(inquiry.ID).Set(ctx, inquiry)
	if err != nil {
		return errors.Internal("Failed to update inquiry", err)
	}

	return nil
}

func (r *firestoreInquiryRepository) ListByBuyerID(ctx context.Context, buyerID string, status string, limit, offset int) ([]*entity.Inquiry, int64, error) {
	query := r.client.Collection("inquiries").Query.Where("buyerId", "==", buyerID)
	return r.listInquiries(ctx, query, status, limit, offset)
}

func (r *firestoreInquiryRepository) ListBySellerID(ctx context.Context, sellerID string, status string, limit, offset int) ([]*entity.Inquiry, int64, error) {
	query := r.client.Collection("inquiries").Query.Where("sellerId", "==", sellerID)
	return r.listInquiries(ctx, query, status, limit, offset)
}

func (r *firestoreInquiryRepository) listInquiries(ctx context.Context, query firestore.Query, status string, limit, offset int) ([]*entity.Inquiry, int64, error) {
	if status != "" {
		query = query.Where("status", "==", status)
	}

	query = query.OrderBy("lastMessageAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count inquiries", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var inquiries []*entity.Inquiry

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate inquiries", err)
		}

		var inquiry entity.Inquiry
		if err := doc.DataTo(&inquiry); err != nil {
			return nil, 0, errors.Internal("Failed to parse inquiry data", err)
		}
		inquiries = append(inquiries, &inquiry)
	}

	return inquiries, total, nil
}

// AppendMessage runs the whole mutation in one transaction: the new
// message, the optional system message, read flags on prior buyer
// messages and the status change land together or not at all.
func (r *firestoreInquiryRepository) AppendMessage(ctx context.Context, inquiryID string, app repository.MessageAppend) (*entity.Inquiry, error) {
	docRef := r.client.Collection("inquiries").Doc(inquiryID)

	var updated entity.Inquiry

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		var inquiry entity.Inquiry
		if err := doc.DataTo(&inquiry); err != nil {
			return err
		}

		if app.MarkBuyerRead {
			for i := range inquiry.Messages {
				if inquiry.Messages[i].SenderType == entity.SenderTypeBuyer {
					inquiry.Messages[i].IsRead = true
				}
			}
		}

		now := time.Now()
		inquiry.Messages = append(inquiry.Messages, app.Message)
		if app.SystemMessage != nil {
			inquiry.Messages = append(inquiry.Messages, *app.SystemMessage)
		}
		if app.NewStatus != "" {
			inquiry.Status = app.NewStatus
		}
		inquiry.LastMessageAt = now
		inquiry.UpdatedAt = now

		updated = inquiry
		return tx.Set(docRef, &inquiry)
	})
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Inquiry", err)
		}
		return nil, errors.Internal("Failed to send message", err)
	}

	return &updated, nil
}

func (r *firestoreInquiryRepository) CountOpenByProductIDs(ctx context.Context, productIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(productIDs))

	// Firestore "in" queries accept at most 30 values per filter, and a
	// query accepts at most 30 disjunctions in total. A single "in" filter
	// per query stays under the cap; statuses are classified in memory.
	for start := 0; start < len(productIDs); start += 30 {
		end := start + 30
		if end > len(productIDs) {
			end = len(productIDs)
		}

		docs, err := r.client.Collection("inquiries").
			Where("productId", "in", productIDs[start:end]).
			Documents(ctx).GetAll()
		if err != nil {
			return nil, errors.Internal("Failed to count open inquiries", err)
		}

		for _, doc := range docs {
			var inquiry entity.Inquiry
			if err := doc.DataTo(&inquiry); err != nil {
				continue
			}
			if inquiry.Status == entity.InquiryStatusOpen || inquiry.Status == entity.InquiryStatusReplied {
				counts[inquiry.ProductID]++
			}
		}
	}

	return counts, nil
}
