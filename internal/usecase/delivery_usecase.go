package usecase

import (
	"context"
	"sort"
	"strings"

	"campussell/internal/domain/entity"
	"campussell/internal/domain/repository"
	"campussell/pkg/errors"
	"campussell/pkg/logger"
)

type DeliveryUseCase struct {
	companyRepo repository.DeliveryCompanyRepository
	areaRepo    repository.ServiceAreaRepository
	pricingRepo repository.PricingRepository
	metricsRepo repository.MetricsRepository
	auditRepo   repository.AuditLogRepository
}

func NewDeliveryUseCase(
	companyRepo repository.DeliveryCompanyRepository,
	areaRepo repository.ServiceAreaRepository,
	pricingRepo repository.PricingRepository,
	metricsRepo repository.MetricsRepository,
	auditRepo repository.AuditLogRepository,
) *DeliveryUseCase {
	return &DeliveryUseCase{
		companyRepo: companyRepo,
		areaRepo:    areaRepo,
		pricingRepo: pricingRepo,
		metricsRepo: metricsRepo,
		auditRepo:   auditRepo,
	}
}

type RegisterCompanyInput struct {
	Name          string
	ContactInfo   entity.ContactInfo
	DeliveryTypes []string
}

// RegisterCompany creates a company in pending status; an admin activates
// it separately.
func (uc *DeliveryUseCase) RegisterCompany(ctx context.Context, input RegisterCompanyInput) (*entity.DeliveryCompany, error) {
	for _, dt := range input.DeliveryTypes {
		switch dt {
		case entity.DeliveryTypeStandard, entity.DeliveryTypeExpress, entity.DeliveryTypeSameDay:
		default:
			return nil, errors.BadRequest("Invalid delivery type: "+dt, nil)
		}
	}

	// Stored lowercase so the contact email matches the authenticated
	// caller's email on company-scoped requests.
	input.ContactInfo.Email = strings.ToLower(input.ContactInfo.Email)

	company := &entity.DeliveryCompany{
		Name:          input.Name,
		Status:        entity.CompanyStatusPending,
		ContactInfo:   input.ContactInfo,
		DeliveryTypes: input.DeliveryTypes,
	}

	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

func (uc *DeliveryUseCase) GetCompany(ctx context.Context, id string) (*entity.DeliveryCompany, error) {
	return uc.companyRepo.GetByID(ctx, id)
}

func (uc *DeliveryUseCase) ListCompanies(ctx context.Context, limit, offset int) ([]*entity.DeliveryCompany, int64, error) {
	return uc.companyRepo.List(ctx, limit, offset)
}

// UpdateCompanyStatus rejects any target status outside the known set
// before touching the record. Transitions are admin-authored and logged.
func (uc *DeliveryUseCase) UpdateCompanyStatus(ctx context.Context, adminEmail, companyID, status string) (*entity.DeliveryCompany, error) {
	if !entity.IsValidCompanyStatus(status) {
		return nil, errors.BadRequest("Invalid company status: "+status, nil)
	}

	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	previous := company.Status
	company.Status = status

	if err := uc.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	entry := &entity.AuditLogEntry{
		AdminEmail: adminEmail,
		Action:     "update_company_status",
		TargetType: "deliveryCompany",
		TargetID:   companyID,
		Details:    previous + " -> " + status,
	}
	if err := uc.auditRepo.Append(ctx, entry); err != nil {
		logger.LogAuditError(adminEmail, "update_company_status", err)
	}

	return company, nil
}

// DeleteCompany refuses to remove an active company so in-flight orders
// never point at a vanished carrier. Suspend first, then delete. The
// removal itself is transactional across company, areas, pricing and
// metrics docs.
func (uc *DeliveryUseCase) DeleteCompany(ctx context.Context, adminEmail, companyID string) error {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return err
	}

	if company.Status == entity.CompanyStatusActive {
		return errors.Conflict("Cannot delete an active delivery company; suspend it first")
	}

	if err := uc.companyRepo.Delete(ctx, companyID); err != nil {
		return err
	}

	entry := &entity.AuditLogEntry{
		AdminEmail: adminEmail,
		Action:     "delete_company",
		TargetType: "deliveryCompany",
		TargetID:   companyID,
		Details:    "deleted company " + company.Name,
	}
	if err := uc.auditRepo.Append(ctx, entry); err != nil {
		logger.LogAuditError(adminEmail, "delete_company", err)
	}

	return nil
}

// FindAvailableCompanies returns every active company whose service areas
// cover the address, each with a computed rate and estimate, cheapest
// first.
func (uc *DeliveryUseCase) FindAvailableCompanies(ctx context.Context, address, deliveryType string) ([]entity.DeliveryOption, error) {
	if deliveryType == "" {
		deliveryType = entity.DeliveryTypeStandard
	}

	companies, err := uc.companyRepo.ListByStatus(ctx, entity.CompanyStatusActive)
	if err != nil {
		return nil, errors.Internal("Failed to load delivery companies", err)
	}

	options := make([]entity.DeliveryOption, 0, len(companies))

	for _, company := range companies {
		areas, err := uc.areaRepo.ListByCompanyID(ctx, company.ID)
		if err != nil {
			logger.Warn("Service area lookup failed for company %s: %v", company.ID, err)
			continue
		}

		if !coversAddress(areas, address) {
			continue
		}

		option := entity.DeliveryOption{
			CompanyID:     company.ID,
			CompanyName:   company.Name,
			DeliveryType:  deliveryType,
			Rate:          0,
			EstimatedTime: "2-3 days",
		}

		if pricing, err := uc.pricingRepo.GetByCompanyID(ctx, company.ID); err == nil {
			option.Rate = pricing.RateFor(deliveryType)
			if est := pricing.EstimateFor(deliveryType); est != "" {
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

func coversAddress(areas []*entity.ServiceArea, address string) bool {
	address = strings.ToLower(address)
	for _, area := range areas {
		if !area.IsActive {
			continue
		}
		if strings.Contains(address, strings.ToLower(area.Area)) {
			return true
		}
	}
	return false
}

func (uc *DeliveryUseCase) AddServiceArea(ctx context.Context, companyID, areaName string, priority int) (*entity.ServiceArea, error) {
	if _, err := uc.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}

	area := &entity.ServiceArea{
		CompanyID: companyID,
		Area:      areaName,
		Priority:  priority,
		IsActive:  true,
	}

	if err := uc.areaRepo.Create(ctx, area); err != nil {
		return nil, err
	}

	return area, nil
}

func (uc *DeliveryUseCase) ListServiceAreas(ctx context.Context, companyID string) ([]*entity.ServiceArea, error) {
	return uc.areaRepo.ListByCompanyID(ctx, companyID)
}

func (uc *DeliveryUseCase) RemoveServiceArea(ctx context.Context, companyID, areaID string) error {
	areas, err := uc.areaRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return err
	}

	for _, area := range areas {
		if area.ID == areaID {
			return uc.areaRepo.Delete(ctx, areaID)
		}
	}

	return errors.NotFound("Service area", nil)
}

func (uc *DeliveryUseCase) SetPricing(ctx context.Context, companyID string, rates entity.BaseRates, times entity.EstimatedTimes) (*entity.PricingStructure, error) {
	if _, err := uc.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}

	if rates.Standard < 0 || rates.Express < 0 || rates.SameDay < 0 {
		return nil, errors.BadRequest("Delivery rates cannot be negative", nil)
	}

	pricing := &entity.PricingStructure{
		CompanyID:      companyID,
		BaseRates:      rates,
		EstimatedTimes: times,
	}

	if err := uc.pricingRepo.Set(ctx, pricing); err != nil {
		return nil, err
	}

	return pricing, nil
}

func (uc *DeliveryUseCase) GetPricing(ctx context.Context, companyID string) (*entity.PricingStructure, error) {
	return uc.pricingRepo.GetByCompanyID(ctx, companyID)
}

func (uc *DeliveryUseCase) GetMetrics(ctx context.Context, companyID string) (*entity.PerformanceMetrics, error) {
	return uc.metricsRepo.GetByCompanyID(ctx, companyID)
}
