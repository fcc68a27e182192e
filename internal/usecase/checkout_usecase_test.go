package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campussell/internal/domain/entity"
	"campussell/pkg/errors"
)

type checkoutFixture struct {
	cartRepo    *memCartRepo
	productRepo *memProductRepo
	orderRepo   *memOrderRepo
	companyRepo *memCompanyRepo
	pricingRepo *memPricingRepo
	gateway     *stubGateway
	uc          *CheckoutUseCase
}

func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		cartRepo:    newMemCartRepo(),
		productRepo: newMemProductRepo(),
		orderRepo:   newMemOrderRepo(),
		companyRepo: newMemCompanyRepo(),
		pricingRepo: newMemPricingRepo(),
		gateway:     &stubGateway{},
	}
	f.uc = NewCheckoutUseCase(f.cartRepo, f.productRepo, f.orderRepo, f.companyRepo, f.pricingRepo, f.gateway)
	return f
}

func (f *checkoutFixture) seedCompany(status string) *entity.DeliveryCompany {
	company := &entity.DeliveryCompany{Name: "Campus Express", Status: status}
	f.companyRepo.Create(context.Background(), company)
	return company
}

func (f *checkoutFixture) seedCartLine(userID string, price float64, quantity int) *entity.Product {
	ctx := context.Background()
	product := &entity.Product{SellerID: "seller-1", Title: "Textbook", Price: price, Status: entity.ProductStatusActive}
	f.productRepo.Create(ctx, product)
	f.cartRepo.Create(ctx, &entity.CartItem{UserID: userID, ProductID: product.ID, Quantity: quantity})
	return product
}

func TestProcessCheckoutComputesTotalsAndClearsBasket(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture()

	company := f.seedCompany(entity.CompanyStatusActive)
	f.pricingRepo.Set(ctx, &entity.PricingStructure{
		CompanyID:      company.ID,
		BaseRates:      entity.BaseRates{Standard: 5.99, Express: 9.99},
		EstimatedTimes: entity.EstimatedTimes{Standard: "2-3 days", Express: "1 day"},
	})

	f.seedCartLine("buyer-1", 10.99, 2)

	result, err := f.uc.ProcessCheckout(ctx, "buyer-1", CheckoutInput{
		DeliveryCompanyID: company.ID,
		DeliveryType:      entity.DeliveryTypeStandard,
		DeliveryDetails:   entity.DeliveryDetails{Name: "A Buyer", Phone: "0551234567", Address: "Legon Hall"},
		PaymentMethod:     "mobile_money",
	})
	require.NoError(t, err)

	assert.InDelta(t, 21.98, result.Order.Subtotal, 0.001)
	assert.InDelta(t, 5.99, result.Order.DeliveryFee, 0.001)
	assert.InDelta(t, 27.97, result.Order.Total, 0.001)
	assert.Equal(t, entity.OrderStatusPending, result.Order.Status)
	assert.Equal(t, company.ID, result.Order.DeliveryInfo.CompanyID)
	assert.Equal(t, "2-3 days", result.Order.DeliveryInfo.EstimatedDeliveryTime)

	// The charge amount matches the order total.
	assert.InDelta(t, 27.97, f.gateway.lastReq.Amount, 0.001)

	// The basket is cleared only after the order exists.
	items, err := f.cartRepo.GetByUserID(ctx, "buyer-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestProcessCheckoutEmptyBasket(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture()
	company := f.seedCompany(entity.CompanyStatusActive)

	_, err := f.uc.ProcessCheckout(ctx, "buyer-1", CheckoutInput{
		DeliveryCompanyID: company.ID,
		PaymentMethod:     "card",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Zero(t, f.gateway.charges)
}

func TestProcessCheckoutInactiveCompany(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture()
	company := f.seedCompany(entity.CompanyStatusSuspended)
	f.seedCartLine("buyer-1", 10, 1)

	_, err := f.uc.ProcessCheckout(ctx, "buyer-1", CheckoutInput{
		DeliveryCompanyID: company.ID,
		PaymentMethod:     "card",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
	assert.Zero(t, f.gateway.charges)
}

func TestProcessCheckoutUnknownCompany(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture()
	f.seedCartLine("buyer-1", 10, 1)

	_, err := f.uc.ProcessCheckout(ctx, "buyer-1", CheckoutInput{
		DeliveryCompanyID: "missing",
		PaymentMethod:     "card",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestProcessCheckoutDeclinedPaymentLeavesBasket(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture()
	company := f.seedCompany(entity.CompanyStatusActive)
	f.seedCartLine("buyer-1", 10, 1)
	f.gateway.status = "declined"

	_, err := f.uc.ProcessCheckout(ctx, "buyer-1", CheckoutInput{
		DeliveryCompanyID: company.ID,
		PaymentMethod:     "card",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "PAYMENT_FAILED"))

	// No order, basket untouched.
	assert.Empty(t, f.orderRepo.orders)
	items, err := f.cartRepo.GetByUserID(ctx, "buyer-1")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestProcessCheckoutOrderCreateFailureLeavesBasket(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture()
	company := f.seedCompany(entity.CompanyStatusActive)
	f.seedCartLine("buyer-1", 10, 1)
	f.orderRepo.createErr = errors.Internal("store unavailable", nil)

	_, err := f.uc.ProcessCheckout(ctx, "buyer-1", CheckoutInput{
		DeliveryCompanyID: company.ID,
		PaymentMethod:     "card",
	})
	require.Error(t, err)

	items, err := f.cartRepo.GetByUserID(ctx, "buyer-1")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestProcessCheckoutBasketClearFailureStillSucceeds(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture()
	company := f.seedCompany(entity.CompanyStatusActive)
	f.seedCartLine("buyer-1", 10, 1)
	f.cartRepo.clearErr = errors.Internal("store unavailable", nil)

	result, err := f.uc.ProcessCheckout(ctx, "buyer-1", CheckoutInput{
		DeliveryCompanyID: company.ID,
		PaymentMethod:     "card",
	})
	require.NoError(t, err)
	assert.NotNil(t, result.Order)
	assert.Len(t, f.orderRepo.orders, 1)
}

func TestProcessCheckoutMissingPricingDefaultsFeeToZero(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture()
	company := f.seedCompany(entity.CompanyStatusActive)
	f.seedCartLine("buyer-1", 15, 1)

	result, err := f.uc.ProcessCheckout(ctx, "buyer-1", CheckoutInput{
		DeliveryCompanyID: company.ID,
		PaymentMethod:     "campus_credit",
	})
	require.NoError(t, err)
	assert.Zero(t, result.Order.DeliveryFee)
	assert.InDelta(t, 15, result.Order.Total, 0.001)
	assert.Equal(t, "2-3 days", result.Order.DeliveryInfo.EstimatedDeliveryTime)
}

func TestGetDeliveryOptionsSortedWithPartialFailure(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture()

	cheap := f.seedCompany(entity.CompanyStatusActive)
	pricey := f.seedCompany(entity.CompanyStatusActive)
	broken := f.seedCompany(entity.CompanyStatusActive)
	f.seedCompany(entity.CompanyStatusPending) // never quoted

	f.pricingRepo.Set(ctx, &entity.PricingStructure{CompanyID: cheap.ID, BaseRates: entity.BaseRates{Standard: 3.50}})
	f.pricingRepo.Set(ctx, &entity.PricingStructure{CompanyID: pricey.ID, BaseRates: entity.BaseRates{Standard: 8.00}})
	f.pricingRepo.getErr[broken.ID] = errors.Internal("store unavailable", nil)

	options, err := f.uc.GetDeliveryOptions(ctx, "Legon Hall")
	require.NoError(t, err)
	require.Len(t, options, 3)

	// The broken company is quoted at rate 0 with the generic estimate and
	// sorts first; the rest are cheapest first.
	assert.Equal(t, broken.ID, options[0].CompanyID)
	assert.Zero(t, options[0].Rate)
	assert.Equal(t, "2-3 days", options[0].EstimatedTime)
	assert.Equal(t, cheap.ID, options[1].CompanyID)
	assert.Equal(t, pricey.ID, options[2].CompanyID)
}

func TestValidateDeliveryCompany(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture()
	active := f.seedCompany(entity.CompanyStatusActive)
	suspended := f.seedCompany(entity.CompanyStatusSuspended)

	company, err := f.uc.ValidateDeliveryCompany(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, active.ID, company.ID)

	_, err = f.uc.ValidateDeliveryCompany(ctx, suspended.ID)
	assert.True(t, errors.Is(err, "CONFLICT"))

	_, err = f.uc.ValidateDeliveryCompany(ctx, "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
