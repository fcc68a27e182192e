package usecase

import (
	"context"

	"campussell/internal/domain/entity"
	"campussell/internal/domain/repository"
	"campussell/pkg/errors"
	"campussell/pkg/logger"
	"campussell/pkg/utils"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	inquiryRepo repository.InquiryRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	cartRepo repository.CartRepository,
	inquiryRepo repository.InquiryRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		cartRepo:    cartRepo,
		inquiryRepo: inquiryRepo,
	}
}

type ProductInput struct {
	Title       string
	Description string
	Price       float64
	Category    string
	Status      string
	ImageURLs   []string
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, sellerID string, input ProductInput) (*entity.Product, error) {
	if input.Status == "" {
		input.Status = entity.ProductStatusDraft
	}
	if !entity.IsValidProductStatus(input.Status) {
		return nil, errors.BadRequest("Invalid product status: "+input.Status, nil)
	}

	product := &entity.Product{
		SellerID:    sellerID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Status:      input.Status,
		ImageURLs:   input.ImageURLs,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id, sellerID string, input ProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.SellerID != sellerID {
		return nil, errors.Forbidden("You don't own this product", nil)
	}

	if input.Status != "" && !entity.IsValidProductStatus(input.Status) {
		return nil, errors.BadRequest("Invalid product status: "+input.Status, nil)
	}

	product.Title = input.Title
	product.Description = input.Description
	product.Price = input.Price
	product.Category = input.Category
	if input.Status != "" {
		product.Status = input.Status
	}
	product.ImageURLs = input.ImageURLs

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct bumps the view counter; a counter failure never hides the
// product.
func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.IncrementViews(ctx, id); err != nil {
		logger.Warn("Failed to increment views for product %s: %v", id, err)
	}

	return product, nil
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, category, status string, page, limit int) ([]*entity.Product, int64, error) {
	filter := map[string]interface{}{}
	if category != "" {
		filter["category"] = category
	}
	if status == "" {
		status = entity.ProductStatusActive
	}
	filter["status"] = status

	pagination := utils.NewPaginationParams(page, limit)
	return uc.productRepo.List(ctx, filter, "", pagination.PageSize, pagination.Offset)
}

func (uc *ProductUseCase) SearchProducts(ctx context.Context, query, category string, page, limit int) ([]*entity.Product, int64, error) {
	filter := map[string]interface{}{"status": entity.ProductStatusActive}
	if category != "" {
		filter["category"] = category
	}

	pagination := utils.NewPaginationParams(page, limit)
	return uc.productRepo.SearchByTitle(ctx, query, filter, pagination.PageSize, pagination.Offset)
}

func (uc *ProductUseCase) ListMyProducts(ctx context.Context, sellerID, status string, page, limit int) ([]*entity.Product, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.productRepo.ListBySellerID(ctx, sellerID, status, pagination.PageSize, pagination.Offset)
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id, sellerID string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if product.SellerID != sellerID {
		return errors.Forbidden("You don't own this product", nil)
	}

	return uc.productRepo.Delete(ctx, id)
}

// DependencyWarning flags a product that still has open inquiries or cart
// references at bulk-delete time.
type DependencyWarning struct {
	ProductID     string `json:"product_id"`
	OpenInquiries int    `json:"open_inquiries"`
	CartRefs      int    `json:"cart_refs"`
}

// verifyOwnership loads every product and checks the seller owns them all
// before any batch is committed.
func (uc *ProductUseCase) verifyOwnership(ctx context.Context, sellerID string, ids []string) error {
	if len(ids) == 0 {
		return errors.BadRequest("No products selected", nil)
	}

	for _, id := range ids {
		product, err := uc.productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product.SellerID != sellerID {
			return errors.Forbidden("You don't own product "+id, nil)
		}
	}

	return nil
}

// BulkUpdateStatus commits one batched write: every selected product gets
// the new status or none do.
func (uc *ProductUseCase) BulkUpdateStatus(ctx context.Context, sellerID string, ids []string, status string) error {
	if !entity.IsValidProductStatus(status) {
		return errors.BadRequest("Invalid product status: "+status, nil)
	}

	if err := uc.verifyOwnership(ctx, sellerID, ids); err != nil {
		return err
	}

	return uc.productRepo.BulkUpdateStatus(ctx, ids, status)
}

// BulkDelete runs an advisory dependency check first. Without force, any
// open inquiries or cart references block nothing at the data layer but
// return warnings instead of deleting, so the caller can confirm.
func (uc *ProductUseCase) BulkDelete(ctx context.Context, sellerID string, ids []string, force bool) ([]DependencyWarning, error) {
	if err := uc.verifyOwnership(ctx, sellerID, ids); err != nil {
		return nil, err
	}

	if !force {
		warnings, err := uc.dependencyWarnings(ctx, ids)
		if err != nil {
			return nil, err
		}
		if len(warnings) > 0 {
			return warnings, nil
		}
	}

	if err := uc.productRepo.BulkDelete(ctx, ids); err != nil {
		return nil, err
	}

	return nil, nil
}

func (uc *ProductUseCase) dependencyWarnings(ctx context.Context, ids []string) ([]DependencyWarning, error) {
	inquiryCounts, err := uc.inquiryRepo.CountOpenByProductIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	cartCounts, err := uc.cartRepo.CountByProductIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	var warnings []DependencyWarning
	for _, id := range ids {
		open := inquiryCounts[id]
		refs := cartCounts[id]
		if open > 0 || refs > 0 {
			warnings = append(warnings, DependencyWarning{
				ProductID:     id,
				OpenInquiries: open,
				CartRefs:      refs,
			})
		}
	}

	return warnings, nil
}
