package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"campussell/internal/domain/entity"
	"campussell/internal/domain/repository"
	"campussell/internal/domain/service"
	"campussell/pkg/errors"
)

// In-memory repository fakes shared across the use case tests. They mirror
// the Firestore adapters' observable behavior, including NOT_FOUND codes.

type memProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	nextID   int
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]*entity.Product{}}
}

func (r *memProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == "" {
		r.nextID++
		product.ID = fmt.Sprintf("prod-%d", r.nextID)
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	clone := *product
	return &clone, nil
}

func (r *memProductRepo) List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.products {
		if status, ok := filter["status"].(string); ok && p.Status != status {
			continue
		}
		if category, ok := filter["category"].(string); ok && p.Category != category {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return paginateProducts(out, limit, offset)
}

func (r *memProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	product.UpdatedAt = time.Now()
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *memProductRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return errors.NotFound("Product", nil)
	}
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) IncrementViews(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.ViewCount++
	return nil
}

func (r *memProductRepo) IncrementInquiryCount(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.InquiryCount++
	return nil
}

func (r *memProductRepo) SearchByTitle(ctx context.Context, query string, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	query = strings.ToLower(query)
	var out []*entity.Product
	for _, p := range r.products {
		if status, ok := filter["status"].(string); ok && p.Status != status {
			continue
		}
		if !strings.Contains(strings.ToLower(p.Title), query) {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return paginateProducts(out, limit, offset)
}

func (r *memProductRepo) ListBySellerID(ctx context.Context, sellerID string, status string, limit, offset int) ([]*entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.products {
		if p.SellerID != sellerID {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return paginateProducts(out, limit, offset)
}

func (r *memProductRepo) BulkUpdateStatus(ctx context.Context, ids []string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if _, ok := r.products[id]; !ok {
			return errors.NotFound("Product", nil)
		}
	}
	for _, id := range ids {
		r.products[id].Status = status
	}
	return nil
}

func (r *memProductRepo) BulkDelete(ctx context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if _, ok := r.products[id]; !ok {
			return errors.NotFound("Product", nil)
		}
	}
	for _, id := range ids {
		delete(r.products, id)
	}
	return nil
}

func paginateProducts(products []*entity.Product, limit, offset int) ([]*entity.Product, int64, error) {
	total := int64(len(products))
	if offset >= len(products) {
		return []*entity.Product{}, total, nil
	}
	end := offset + limit
	if end > len(products) {
		end = len(products)
	}
	return products[offset:end], total, nil
}

type memCartRepo struct {
	mu     sync.Mutex
	items  map[string]*entity.CartItem
	nextID int

	clearErr error
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{items: map[string]*entity.CartItem{}}
}

func (r *memCartRepo) GetByUserID(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.CartItem
	for _, item := range r.items {
		if item.UserID == userID {
			clone := *item
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memCartRepo) GetByUserAndProduct(ctx context.Context, userID, productID string) (*entity.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			clone := *item
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Cart item", nil)
}

func (r *memCartRepo) Create(ctx context.Context, item *entity.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == "" {
		r.nextID++
		item.ID = fmt.Sprintf("cart-%d", r.nextID)
	}
	item.AddedAt = time.Now()
	item.UpdatedAt = item.AddedAt
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *memCartRepo) Update(ctx context.Context, item *entity.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return errors.NotFound("Cart item", nil)
	}
	item.UpdatedAt = time.Now()
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *memCartRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return errors.NotFound("Cart item", nil)
	}
	delete(r.items, id)
	return nil
}

func (r *memCartRepo) ClearByUserID(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.clearErr != nil {
		return r.clearErr
	}
	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *memCartRepo) CountByProductIDs(ctx context.Context, productIDs []string) (map[string]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[string]int{}
	for _, item := range r.items {
		for _, id := range productIDs {
			if item.ProductID == id {
				counts[id]++
			}
		}
	}
	return counts, nil
}

type memOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*entity.Order
	nextID int

	createErr error
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: map[string]*entity.Order{}}
}

func (r *memOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if order.ID == "" {
		r.nextID++
		order.ID = fmt.Sprintf("order-%d", r.nextID)
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	clone := *order
	r.orders[order.ID] = &clone
	return nil
}

func (r *memOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	clone := *order
	return &clone, nil
}

func (r *memOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; !ok {
		return errors.NotFound("Order", nil)
	}
	order.UpdatedAt = time.Now()
	clone := *order
	r.orders[order.ID] = &clone
	return nil
}

func (r *memOrderRepo) ListByUserID(ctx context.Context, userID string, status string, limit, offset int) ([]*entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Order
	for _, order := range r.orders {
		if order.UserID != userID {
			continue
		}
		if status != "" && order.Status != status {
			continue
		}
		clone := *order
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *memOrderRepo) ListByCompanyID(ctx context.Context, companyID string, status string, limit, offset int) ([]*entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Order
	for _, order := range r.orders {
		if order.DeliveryInfo.CompanyID != companyID {
			continue
		}
		if status != "" && order.Status != status {
			continue
		}
		clone := *order
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

type memCompanyRepo struct {
	mu        sync.Mutex
	companies map[string]*entity.DeliveryCompany
	nextID    int

	// Linked stores so Delete can emulate the transactional cascade.
	areaRepo    *memAreaRepo
	pricingRepo *memPricingRepo
	metricsRepo *memMetricsRepo
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: map[string]*entity.DeliveryCompany{}}
}

func (r *memCompanyRepo) Create(ctx context.Context, company *entity.DeliveryCompany) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if company.ID == "" {
		r.nextID++
		company.ID = fmt.Sprintf("company-%d", r.nextID)
	}
	company.CreatedAt = time.Now()
	company.UpdatedAt = company.CreatedAt
	clone := *company
	r.companies[company.ID] = &clone
	return nil
}

func (r *memCompanyRepo) GetByID(ctx context.Context, id string) (*entity.DeliveryCompany, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	company, ok := r.companies[id]
	if !ok {
		return nil, errors.NotFound("Delivery company", nil)
	}
	clone := *company
	return &clone, nil
}

func (r *memCompanyRepo) GetByContactEmail(ctx context.Context, email string) (*entity.DeliveryCompany, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, company := range r.companies {
		if company.ContactInfo.Email == strings.ToLower(email) {
			clone := *company
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Delivery company", nil)
}

func (r *memCompanyRepo) Update(ctx context.Context, company *entity.DeliveryCompany) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[company.ID]; !ok {
		return errors.NotFound("Delivery company", nil)
	}
	company.UpdatedAt = time.Now()
	clone := *company
	r.companies[company.ID] = &clone
	return nil
}

func (r *memCompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.DeliveryCompany, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.DeliveryCompany
	for _, company := range r.companies {
		clone := *company
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *memCompanyRepo) ListByStatus(ctx context.Context, status string) ([]*entity.DeliveryCompany, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.DeliveryCompany
	for _, company := range r.companies {
		if company.Status == status {
			clone := *company
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memCompanyRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[id]; !ok {
		return errors.NotFound("Delivery company", nil)
	}
	delete(r.companies, id)
	if r.areaRepo != nil {
		r.areaRepo.deleteByCompanyID(id)
	}
	if r.pricingRepo != nil {
		r.pricingRepo.deleteByCompanyID(id)
	}
	if r.metricsRepo != nil {
		r.metricsRepo.deleteByCompanyID(id)
	}
	return nil
}

type memAreaRepo struct {
	mu     sync.Mutex
	areas  map[string]*entity.ServiceArea
	nextID int
}

func newMemAreaRepo() *memAreaRepo {
	return &memAreaRepo{areas: map[string]*entity.ServiceArea{}}
}

func (r *memAreaRepo) Create(ctx context.Context, area *entity.ServiceArea) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if area.ID == "" {
		r.nextID++
		area.ID = fmt.Sprintf("area-%d", r.nextID)
	}
	area.CreatedAt = time.Now()
	clone := *area
	r.areas[area.ID] = &clone
	return nil
}

func (r *memAreaRepo) Update(ctx context.Context, area *entity.ServiceArea) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.areas[area.ID]; !ok {
		return errors.NotFound("Service area", nil)
	}
	clone := *area
	r.areas[area.ID] = &clone
	return nil
}

func (r *memAreaRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.areas[id]; !ok {
		return errors.NotFound("Service area", nil)
	}
	delete(r.areas, id)
	return nil
}

func (r *memAreaRepo) ListByCompanyID(ctx context.Context, companyID string) ([]*entity.ServiceArea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ServiceArea
	for _, area := range r.areas {
		if area.CompanyID == companyID {
			clone := *area
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memAreaRepo) deleteByCompanyID(companyID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, area := range r.areas {
		if area.CompanyID == companyID {
			delete(r.areas, id)
		}
	}
}

type memPricingRepo struct {
	mu      sync.Mutex
	pricing map[string]*entity.PricingStructure

	getErr map[string]error
}

func newMemPricingRepo() *memPricingRepo {
	return &memPricingRepo{pricing: map[string]*entity.PricingStructure{}, getErr: map[string]error{}}
}

func (r *memPricingRepo) GetByCompanyID(ctx context.Context, companyID string) (*entity.PricingStructure, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.getErr[companyID]; err != nil {
		return nil, err
	}
	pricing, ok := r.pricing[companyID]
	if !ok {
		return nil, errors.NotFound("Pricing structure", nil)
	}
	clone := *pricing
	return &clone, nil
}

func (r *memPricingRepo) Set(ctx context.Context, pricing *entity.PricingStructure) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pricing.UpdatedAt = time.Now()
	clone := *pricing
	r.pricing[pricing.CompanyID] = &clone
	return nil
}

func (r *memPricingRepo) deleteByCompanyID(companyID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pricing, companyID)
}

type memMetricsRepo struct {
	mu      sync.Mutex
	metrics map[string]*entity.PerformanceMetrics
}

func newMemMetricsRepo() *memMetricsRepo {
	return &memMetricsRepo{metrics: map[string]*entity.PerformanceMetrics{}}
}

func (r *memMetricsRepo) GetByCompanyID(ctx context.Context, companyID string) (*entity.PerformanceMetrics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.metrics[companyID]
	if !ok {
		return &entity.PerformanceMetrics{CompanyID: companyID}, nil
	}
	clone := *m
	return &clone, nil
}

func (r *memMetricsRepo) IncrementDelivered(ctx context.Context, companyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.metrics[companyID]
	if !ok {
		m = &entity.PerformanceMetrics{CompanyID: companyID}
		r.metrics[companyID] = m
	}
	m.DeliveredOrders++
	return nil
}

func (r *memMetricsRepo) IncrementCancelled(ctx context.Context, companyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.metrics[companyID]
	if !ok {
		m = &entity.PerformanceMetrics{CompanyID: companyID}
		r.metrics[companyID] = m
	}
	m.CancelledOrders++
	return nil
}

func (r *memMetricsRepo) deleteByCompanyID(companyID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.metrics, companyID)
}

type memInquiryRepo struct {
	mu        sync.Mutex
	inquiries map[string]*entity.Inquiry
	nextID    int
}

func newMemInquiryRepo() *memInquiryRepo {
	return &memInquiryRepo{inquiries: map[string]*entity.Inquiry{}}
}

func (r *memInquiryRepo) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if inquiry.ID == "" {
		r.nextID++
		inquiry.ID = fmt.Sprintf("inq-%d", r.nextID)
	}
	inquiry.CreatedAt = time.Now()
	inquiry.UpdatedAt = inquiry.CreatedAt
	clone := *inquiry
	clone.Messages = append([]entity.Message(nil), inquiry.Messages...)
	r.inquiries[inquiry.ID] = &clone
	return nil
}

func (r *memInquiryRepo) GetByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inquiry, ok := r.inquiries[id]
	if !ok {
		return nil, errors.NotFound("Inquiry", nil)
	}
	clone := *inquiry
	clone.Messages = append([]entity.Message(nil), inquiry.Messages...)
	return &clone, nil
}

func (r *memInquiryRepo) Update(ctx context.Context, inquiry *entity.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.inquiries[inquiry.ID]; !ok {
		return errors.NotFound("Inquiry", nil)
	}
	inquiry.UpdatedAt = time.Now()
	clone := *inquiry
	clone.Messages = append([]entity.Message(nil), inquiry.Messages...)
	r.inquiries[inquiry.ID] = &clone
	return nil
}

func (r *memInquiryRepo) ListByBuyerID(ctx context.Context, buyerID string, status string, limit, offset int) ([]*entity.Inquiry, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Inquiry
	for _, inquiry := range r.inquiries {
		if inquiry.BuyerID != buyerID {
			continue
		}
		if status != "" && inquiry.Status != status {
			continue
		}
		clone := *inquiry
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *memInquiryRepo) ListBySellerID(ctx context.Context, sellerID string, status string, limit, offset int) ([]*entity.Inquiry, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Inquiry
	for _, inquiry := range r.inquiries {
		if inquiry.SellerID != sellerID {
			continue
		}
		if status != "" && inquiry.Status != status {
			continue
		}
		clone := *inquiry
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *memInquiryRepo) AppendMessage(ctx context.Context, inquiryID string, app repository.MessageAppend) (*entity.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inquiry, ok := r.inquiries[inquiryID]
	if !ok {
		return nil, errors.NotFound("Inquiry", nil)
	}

	if app.MarkBuyerRead {
		for i := range inquiry.Messages {
			if inquiry.Messages[i].SenderType == entity.SenderTypeBuyer {
				inquiry.Messages[i].IsRead = true
			}
		}
	}

	inquiry.Messages = append(inquiry.Messages, app.Message)
	if app.SystemMessage != nil {
		inquiry.Messages = append(inquiry.Messages, *app.SystemMessage)
	}
	if app.NewStatus != "" {
		inquiry.Status = app.NewStatus
	}
	inquiry.LastMessageAt = app.Message.Timestamp
	inquiry.UpdatedAt = time.Now()

	clone := *inquiry
	clone.Messages = append([]entity.Message(nil), inquiry.Messages...)
	return &clone, nil
}

func (r *memInquiryRepo) CountOpenByProductIDs(ctx context.Context, productIDs []string) (map[string]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[string]int{}
	for _, inquiry := range r.inquiries {
		if inquiry.Status != entity.InquiryStatusOpen && inquiry.Status != entity.InquiryStatusReplied {
			continue
		}
		for _, id := range productIDs {
			if inquiry.ProductID == id {
				counts[id]++
			}
		}
	}
	return counts, nil
}

type memAdminRepo struct {
	mu     sync.Mutex
	admins map[string]*entity.AdminRecord
}

func newMemAdminRepo() *memAdminRepo {
	return &memAdminRepo{admins: map[string]*entity.AdminRecord{}}
}

func (r *memAdminRepo) Create(ctx context.Context, admin *entity.AdminRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = admin.CreatedAt
	clone := *admin
	r.admins[admin.Email] = &clone
	return nil
}

func (r *memAdminRepo) GetByEmail(ctx context.Context, email string) (*entity.AdminRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin, ok := r.admins[email]
	if !ok {
		return nil, errors.NotFound("Admin", nil)
	}
	clone := *admin
	return &clone, nil
}

func (r *memAdminRepo) Update(ctx context.Context, admin *entity.AdminRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.admins[admin.Email]; !ok {
		return errors.NotFound("Admin", nil)
	}
	admin.UpdatedAt = time.Now()
	clone := *admin
	r.admins[admin.Email] = &clone
	return nil
}

func (r *memAdminRepo) Delete(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.admins[email]; !ok {
		return errors.NotFound("Admin", nil)
	}
	delete(r.admins, email)
	return nil
}

func (r *memAdminRepo) List(ctx context.Context) ([]*entity.AdminRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.AdminRecord
	for _, admin := range r.admins {
		clone := *admin
		out = append(out, &clone)
	}
	return out, nil
}

type memAuditRepo struct {
	mu      sync.Mutex
	entries []*entity.AuditLogEntry
	nextID  int
}

func newMemAuditRepo() *memAuditRepo {
	return &memAuditRepo{}
}

func (r *memAuditRepo) Append(ctx context.Context, entry *entity.AuditLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	entry.ID = fmt.Sprintf("audit-%d", r.nextID)
	entry.Timestamp = time.Now()
	clone := *entry
	r.entries = append(r.entries, &clone)
	return nil
}

func (r *memAuditRepo) List(ctx context.Context, adminEmail string, limit, offset int) ([]*entity.AuditLogEntry, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.AuditLogEntry
	for _, entry := range r.entries {
		if adminEmail != "" && entry.AdminEmail != adminEmail {
			continue
		}
		clone := *entry
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	clone := *user
	return &clone, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	user.UpdatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

type fakeAuthClient struct {
	nextUID   string
	createErr error
}

func (f *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	if f.nextUID != "" {
		return f.nextUID, nil
	}
	return "uid-" + email, nil
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, string, error) {
	return "uid-verified", "verified@campus.edu", nil
}

// stubGateway returns a scripted payment outcome and records the last
// charge request.
type stubGateway struct {
	status  string
	err     error
	lastReq service.PaymentRequest
	charges int
}

func (g *stubGateway) Charge(ctx context.Context, req service.PaymentRequest) (*service.PaymentResult, error) {
	g.lastReq = req
	g.charges++
	if g.err != nil {
		return nil, g.err
	}
	status := g.status
	if status == "" {
		status = "paid"
	}
	return &service.PaymentResult{
		TransactionID: "txn-test",
		Status:        status,
		ProcessedAt:   time.Now(),
	}, nil
}
