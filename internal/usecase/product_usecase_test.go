package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campussell/internal/domain/entity"
	"campussell/pkg/errors"
)

type productFixture struct {
	productRepo *memProductRepo
	cartRepo    *memCartRepo
	inquiryRepo *memInquiryRepo
	uc          *ProductUseCase
}

func newProductFixture() *productFixture {
	f := &productFixture{
		productRepo: newMemProductRepo(),
		cartRepo:    newMemCartRepo(),
		inquiryRepo: newMemInquiryRepo(),
	}
	f.uc = NewProductUseCase(f.productRepo, f.cartRepo, f.inquiryRepo)
	return f
}

func (f *productFixture) seed(t *testing.T, sellerID, status string) *entity.Product {
	t.Helper()
	product := &entity.Product{SellerID: sellerID, Title: "Chair", Price: 25, Status: status}
	require.NoError(t, f.productRepo.Create(context.Background(), product))
	return product
}

func TestCreateProductDefaultsToDraft(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()

	product, err := f.uc.CreateProduct(ctx, "seller-1", ProductInput{Title: "Chair", Price: 25})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusDraft, product.Status)

	_, err = f.uc.CreateProduct(ctx, "seller-1", ProductInput{Title: "Chair", Status: "archived"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestUpdateProductOwnershipCheck(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()
	product := f.seed(t, "seller-1", entity.ProductStatusActive)

	_, err := f.uc.UpdateProduct(ctx, product.ID, "seller-2", ProductInput{Title: "Stolen"})
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestGetProductIncrementsViews(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()
	product := f.seed(t, "seller-1", entity.ProductStatusActive)

	_, err := f.uc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	_, err = f.uc.GetProduct(ctx, product.ID)
	require.NoError(t, err)

	stored, err := f.productRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.ViewCount)
}

func TestBulkUpdateStatusAllOrNothing(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()
	mine := f.seed(t, "seller-1", entity.ProductStatusActive)
	other := f.seed(t, "seller-2", entity.ProductStatusActive)

	err := f.uc.BulkUpdateStatus(ctx, "seller-1", []string{mine.ID, other.ID}, entity.ProductStatusUnavailable)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	// Nothing changed, including the owned product.
	stored, err := f.productRepo.GetByID(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusActive, stored.Status)
}

func TestBulkUpdateStatus(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()
	a := f.seed(t, "seller-1", entity.ProductStatusActive)
	b := f.seed(t, "seller-1", entity.ProductStatusDraft)

	require.NoError(t, f.uc.BulkUpdateStatus(ctx, "seller-1", []string{a.ID, b.ID}, entity.ProductStatusUnavailable))

	for _, id := range []string{a.ID, b.ID} {
		stored, err := f.productRepo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, entity.ProductStatusUnavailable, stored.Status)
	}

	err := f.uc.BulkUpdateStatus(ctx, "seller-1", []string{a.ID}, "bogus")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	err = f.uc.BulkUpdateStatus(ctx, "seller-1", nil, entity.ProductStatusActive)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestBulkDeleteReturnsWarningsWithoutForce(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()
	watched := f.seed(t, "seller-1", entity.ProductStatusActive)
	clean := f.seed(t, "seller-1", entity.ProductStatusActive)

	// One open inquiry and one cart reference against the first product.
	require.NoError(t, f.inquiryRepo.Create(ctx, &entity.Inquiry{
		ProductID: watched.ID,
		BuyerID:   "buyer-1",
		SellerID:  "seller-1",
		Status:    entity.InquiryStatusOpen,
	}))
	require.NoError(t, f.cartRepo.Create(ctx, &entity.CartItem{UserID: "buyer-2", ProductID: watched.ID, Quantity: 1}))

	warnings, err := f.uc.BulkDelete(ctx, "seller-1", []string{watched.ID, clean.ID}, false)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, watched.ID, warnings[0].ProductID)
	assert.Equal(t, 1, warnings[0].OpenInquiries)
	assert.Equal(t, 1, warnings[0].CartRefs)

	// Nothing was deleted.
	_, err = f.productRepo.GetByID(ctx, watched.ID)
	assert.NoError(t, err)
	_, err = f.productRepo.GetByID(ctx, clean.ID)
	assert.NoError(t, err)
}

func TestBulkDeleteForceIgnoresWarnings(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()
	watched := f.seed(t, "seller-1", entity.ProductStatusActive)

	require.NoError(t, f.cartRepo.Create(ctx, &entity.CartItem{UserID: "buyer-2", ProductID: watched.ID, Quantity: 1}))

	warnings, err := f.uc.BulkDelete(ctx, "seller-1", []string{watched.ID}, true)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	_, err = f.productRepo.GetByID(ctx, watched.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestBulkDeleteNoDependencies(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()
	clean := f.seed(t, "seller-1", entity.ProductStatusActive)

	// A closed inquiry does not count as a dependency.
	require.NoError(t, f.inquiryRepo.Create(ctx, &entity.Inquiry{
		ProductID: clean.ID,
		BuyerID:   "buyer-1",
		SellerID:  "seller-1",
		Status:    entity.InquiryStatusClosed,
	}))

	warnings, err := f.uc.BulkDelete(ctx, "seller-1", []string{clean.ID}, false)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	_, err = f.productRepo.GetByID(ctx, clean.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

// Store selections routinely exceed a single query-filter page; the
// advisory check must survey every id in a large selection.
func TestBulkDeleteLargeSelection(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()

	ids := make([]string, 0, 40)
	for i := 0; i < 40; i++ {
		ids = append(ids, f.seed(t, "seller-1", entity.ProductStatusActive).ID)
	}

	// Dependencies land on the first and the last product of the
	// selection.
	require.NoError(t, f.inquiryRepo.Create(ctx, &entity.Inquiry{
		ProductID: ids[0],
		BuyerID:   "buyer-1",
		SellerID:  "seller-1",
		Status:    entity.InquiryStatusReplied,
	}))
	require.NoError(t, f.cartRepo.Create(ctx, &entity.CartItem{UserID: "buyer-2", ProductID: ids[39], Quantity: 1}))

	warnings, err := f.uc.BulkDelete(ctx, "seller-1", ids, false)
	require.NoError(t, err)
	require.Len(t, warnings, 2)

	flagged := map[string]DependencyWarning{}
	for _, w := range warnings {
		flagged[w.ProductID] = w
	}
	assert.Equal(t, 1, flagged[ids[0]].OpenInquiries)
	assert.Equal(t, 1, flagged[ids[39]].CartRefs)

	// Nothing deleted without force.
	_, err = f.productRepo.GetByID(ctx, ids[20])
	assert.NoError(t, err)

	warnings, err = f.uc.BulkDelete(ctx, "seller-1", ids, true)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	_, err = f.productRepo.GetByID(ctx, ids[0])
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListProductsDefaultsToActive(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()
	f.seed(t, "seller-1", entity.ProductStatusActive)
	f.seed(t, "seller-1", entity.ProductStatusDraft)

	products, total, err := f.uc.ListProducts(ctx, "", "", 1, 20)
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, entity.ProductStatusActive, products[0].Status)
}

func TestSearchProducts(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()

	_, err := f.uc.CreateProduct(ctx, "seller-1", ProductInput{Title: "Physics Textbook", Status: entity.ProductStatusActive})
	require.NoError(t, err)
	_, err = f.uc.CreateProduct(ctx, "seller-1", ProductInput{Title: "Desk Lamp", Status: entity.ProductStatusActive})
	require.NoError(t, err)

	results, _, err := f.uc.SearchProducts(ctx, "textbook", "", 1, 20)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Physics Textbook", results[0].Title)
}
