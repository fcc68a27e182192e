package usecase

import (
	"context"

	"campussell/internal/domain/entity"
	"campussell/internal/domain/repository"
	"campussell/pkg/errors"
	"campussell/pkg/logger"
)

type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddToCart merges the quantity into an existing line when the product is
// already in the basket, otherwise creates a new line.
func (uc *CartUseCase) AddToCart(ctx context.Context, userID, productID string, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		return nil, errors.BadRequest("Quantity must be at least 1", nil)
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.Status != entity.ProductStatusActive {
		return nil, errors.BadRequest("Product is not available", nil)
	}

	if product.SellerID == userID {
		return nil, errors.BadRequest("Cannot add your own product to cart", nil)
	}

	existing, err := uc.cartRepo.GetByUserAndProduct(ctx, userID, productID)
	if err == nil {
		existing.Quantity += quantity
		if err := uc.cartRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	item := &entity.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}

	if err := uc.cartRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateQuantity removes the line entirely when the quantity drops to zero
// or below.
func (uc *CartUseCase) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) error {
	items, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	var target *entity.CartItem
	for _, item := range items {
		if item.ID == itemID {
			target = item
			break
		}
	}

	if target == nil {
		return errors.NotFound("Cart item", nil)
	}

	if quantity <= 0 {
		return uc.cartRepo.Delete(ctx, target.ID)
	}

	target.Quantity = quantity
	return uc.cartRepo.Update(ctx, target)
}

func (uc *CartUseCase) RemoveItem(ctx context.Context, userID, itemID string) error {
	items, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	for _, item := range items {
		if item.ID == itemID {
			return uc.cartRepo.Delete(ctx, item.ID)
		}
	}

	return errors.NotFound("Cart item", nil)
}

// GetCart recomputes totals from the line items on every call; totals are
// never stored.
func (uc *CartUseCase) GetCart(ctx context.Context, userID string) (*entity.CartSummary, error) {
	items, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &entity.CartSummary{Lines: []entity.CartLine{}}

	for _, item := range items {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				// Product removed since it was added; drop the stale line.
				if delErr := uc.cartRepo.Delete(ctx, item.ID); delErr != nil {
					logger.Warn("Failed to drop stale cart line %s: %v", item.ID, delErr)
				}
				continue
			}
			return nil, err
		}

		summary.Lines = append(summary.Lines, entity.CartLine{Item: item, Product: product})
		summary.ItemCount += item.Quantity
		summary.Subtotal += product.Price * float64(item.Quantity)
	}

	return summary, nil
}

func (uc *CartUseCase) ClearCart(ctx context.Context, userID string) error {
	return uc.cartRepo.ClearByUserID(ctx, userID)
}

// MergeGuestCart folds a pre-authentication basket into the signed-in
// user's basket. Quantities are summed when both baskets hold the same
// product; the guest basket is cleared afterwards.
func (uc *CartUseCase) MergeGuestCart(ctx context.Context, guestID, userID string) error {
	if guestID == "" || guestID == userID {
		return errors.BadRequest("Invalid guest cart", nil)
	}

	guestItems, err := uc.cartRepo.GetByUserID(ctx, guestID)
	if err != nil {
		return err
	}

	for _, guestItem := range guestItems {
		existing, err := uc.cartRepo.GetByUserAndProduct(ctx, userID, guestItem.ProductID)
		if err == nil {
			existing.Quantity += guestItem.Quantity
			if err := uc.cartRepo.Update(ctx, existing); err != nil {
				return err
			}
			continue
		}
		if !errors.Is(err, "NOT_FOUND") {
			return err
		}

		item := &entity.CartItem{
			UserID:    userID,
			ProductID: guestItem.ProductID,
			Quantity:  guestItem.Quantity,
		}
		if err := uc.cartRepo.Create(ctx, item); err != nil {
			return err
		}
	}

	return uc.cartRepo.ClearByUserID(ctx, guestID)
}
