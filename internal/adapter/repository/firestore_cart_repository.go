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

type firestoreCartRepository struct {
	client *firestore.Client
}

func NewFirestoreCartRepository(client *firestore.Client) repository.CartRepository {
	return &firestoreCartRepository{
		client: client,
	}
}

func (r *firestoreCartRepository) GetByUserID(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	iter := r.client.Collection("cart").
		Where("userId", "==", userID).
		OrderBy("addedAt", firestore.Asc).
		Documents(ctx)

	var items []*entity.CartItem

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to load cart", err)
		}

		var item entity.CartItem
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse cart item data", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *firestoreCartRepository) GetByUserAndProduct(ctx context.Context, userID, productID string) (*entity.CartItem, error) {
	docs, err := r.client.Collection("cart").
		Where("userId", "==", userID).
		Where("productId", "==", productID).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to query cart", err)
	}

	if len(docs) == 0 {
		return nil, errors.NotFound("Cart item", nil)
	}

	var item entity.CartItem
	if err := docs[0].DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse cart item data", err)
	}

	return &item, nil
}

func (r *firestoreCartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	now := time.Now()
	item.AddedAt = now
	item.UpdatedAt = now

	_, err := r.client.Collection("cart").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to add item to cart", err)
	}

	return nil
}

func (r *firestoreCartRepository) Update(ctx context.Context, item *entity.CartItem) error {
	item.UpdatedAt = time.Now()

	_, err := r.client.Collection("cart").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to update cart item", err)
	}

	return nil
}

func (r *firestoreCartRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("cart").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove cart item", err)
	}

	return nil
}

func (r *firestoreCartRepository) ClearByUserID(ctx context.Context, userID string) error {
	docs, err := r.client.Collection("cart").
		Where("userId", "==", userID).
		Documents(ctx).GetAll()
	if err != nil {
		return errors.Internal("Failed to load cart for clearing", err)
	}

	if len(docs) == 0 {
		return nil
	}

	batch := r.client.Batch()
	for _, doc := range docs {
		batch.Delete(doc.Ref)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Internal("Failed to clear cart", err)
	}

	return nil
}

func (r *firestoreCartRepository) CountByProductIDs(ctx context.Context, productIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(productIDs))

	// Firestore "in" queries accept at most 30 values per filter.
	for start := 0; start < len(productIDs); start += 30 {
		end := start + 30
		if end > len(productIDs) {
			end = len(productIDs)
		}

		docs, err := r.client.Collection("cart").
			Where("productId", "in", productIDs[start:end]).
			Documents(ctx).GetAll()
		if err != nil {
			return nil, errors.Internal("Failed to count cart references", err)
		}

		for _, doc := range docs {
			var item entity.CartItem
			if err := doc.DataTo(&item); err != nil {
				continue
			}
			counts[item.ProductID]++
		}
	}

	return counts, nil
}
