package usecase

import (
	"context"
	"sort"

	"campussell/internal/domain/entity"
	"campussell/internal/domain/repository"
	"campussell/internal/domain/service"
	"campussell/pkg/errors"
	"campussell/pkg/logger"
)

type CheckoutUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	companyRepo repository.DeliveryCompanyRepository
	pricingRepo repository.PricingRepository
	gateway     service.PaymentGateway
}

func NewCheckoutUseCase(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	companyRepo repository.DeliveryCompanyRepository,
	pricingRepo repository.PricingRepository,
	gateway service.PaymentGateway,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		companyRepo: companyRepo,
		pricingRepo: pricingRepo,
		gateway:     gateway,
	}
}

func (uc *CheckoutUseCase) GetActiveDeliveryCompanies(ctx context.Context) ([]*entity.DeliveryCompany, error) {
	companies, err := uc.companyRepo.ListByStatus(ctx, entity.CompanyStatusActive)
	if err != nil {
		return nil, errors.Internal("Failed to load delivery companies", err)
	}

	return companies, nil
}

// ValidateDeliveryCompany is the single gating check before any money or
// order is committed. A missing company and an inactive company are
// reported separately.
func (uc *CheckoutUseCase) ValidateDeliveryCompany(ctx context.Context, companyID string) (*entity.DeliveryCompany, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if company.Status != entity.CompanyStatusActive {
		return nil, errors.Conflict("Delivery company is not available")
	}

	return company, nil
}

type CheckoutInput struct {
	DeliveryCompanyID string
	DeliveryType      string
	DeliveryDetails   entity.DeliveryDetails
	PaymentMethod     string
}

type CheckoutResult struct {
	Order           *entity.Order           `json:"order"`
	DeliveryCompany *entity.DeliveryCompany `json:"delivery_company"`
}

// ProcessCheckout runs the steps strictly in order: validate the company,
// load the basket, compute totals, charge, create the order, and only then
// clear the basket. A crash between order creation and basket clearing
// leaves a stale basket; there is no compensating transaction.
func (uc *CheckoutUseCase) ProcessCheckout(ctx context.Context, userID string, input CheckoutInput) (*CheckoutResult, error) {
	company, err := uc.ValidateDeliveryCompany(ctx, input.DeliveryCompanyID)
	if err != nil {
		return nil, err
	}

	items, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.BadRequest("Cannot checkout with empty basket", nil)
	}

	var orderItems []entity.OrderItem
	var subtotal float64
	for _, item := range items {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		orderItems = append(orderItems, entity.OrderItem{
			ProductID: product.ID,
			Title:     product.Title,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
		subtotal += product.Price * float64(item.Quantity)
	}

	deliveryType := input.DeliveryType
	if deliveryType == "" {
		deliveryType = entity.DeliveryTypeStandard
	}

	// Missing pricing is not fatal; the fee defaults to zero.
	var deliveryFee float64
	estimatedTime := "2-3 days"
	if pricing, err := uc.pricingRepo.GetByCompanyID(ctx, company.ID); err == nil {
		deliveryFee = pricing.RateFor(deliveryType)
		if est := pricing.EstimateFor(deliveryType); est != "" {
			estimatedTime = est
		}
	} else if !errors.Is(err, "NOT_FOUND") {
		logger.Warn("Pricing lookup failed for company %s: %v", company.ID, err)
	}

	total := subtotal + deliveryFee

	result, err := uc.gateway.Charge(ctx, service.PaymentRequest{
		UserID: userID,
		Amount: total,
		Method: input.PaymentMethod,
	})
	if err != nil {
		return nil, errors.PaymentFailed("Payment processing failed", err)
	}
	if result.Status != "paid" {
		return nil, errors.PaymentFailed("Payment processing failed", nil)
	}

	order := &entity.Order{
		UserID:          userID,
		DeliveryDetails: input.DeliveryDetails,
		Items:           orderItems,
		DeliveryInfo: entity.DeliveryInfo{
			CompanyID:             company.ID,
			CompanyName:           company.Name,
			DeliveryType:          deliveryType,
			DeliveryRate:          deliveryFee,
			EstimatedDeliveryTime: estimatedTime,
		},
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Total:       total,
		Status:      entity.OrderStatusPending,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		// Order creation failed: the basket is intentionally left intact.
		return nil, err
	}

	if err := uc.cartRepo.ClearByUserID(ctx, userID); err != nil {
		logger.Error("Order %s created but basket clear failed for user %s: %v", order.ID, userID, err)
	}

	return &CheckoutResult{Order: order, DeliveryCompany: company}, nil
}

// GetDeliveryOptions quotes every active company for the address. A
// pricing failure for one company never aborts the listing; that company
// is quoted at rate 0 with a generic estimate instead.
func (uc *CheckoutUseCase) GetDeliveryOptions(ctx context.Context, address string) ([]entity.DeliveryOption, error) {
	companies, err := uc.GetActiveDeliveryCompanies(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]entity.DeliveryOption, 0, len(companies))

	for _, company := range companies {
		option := entity.DeliveryOption{
			CompanyID:     company.ID,
			CompanyName:   company.Name,
			DeliveryType:  entity.DeliveryTypeStandard,
			Rate:          0,
			EstimatedTime: "2-3 days",
		}

		pricing, err := uc.pricingRepo.GetByCompanyID(ctx, company.ID)
		if err != nil {
			logger.Warn("Pricing unavailable for company %s, quoting rate 0: %v", company.ID, err)
		} else {
			option.Rate = pricing.RateFor(entity.DeliveryTypeStandard)
			if est := pricing.EstimateFor(entity.DeliveryTypeStandard); est != "" {
				option.EstimatedTime = est
			}
		}

		options = append(options, option)
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Rate < options[j].Rate
	})

	return options, nil
}
