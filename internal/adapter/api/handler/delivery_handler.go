package handler

import (
	"github.com/labstack/echo/v4"

	"campussell/internal/domain/entity"
	"campussell/internal/usecase"
	"campussell/pkg/errors"
	"campussell/pkg/response"
	"campussell/pkg/utils"
)

type DeliveryHandler struct {
	deliveryUseCase *usecase.DeliveryUseCase
}

func NewDeliveryHandler(deliveryUseCase *usecase.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUseCase: deliveryUseCase,
	}
}

type registerCompanyRequest struct {
	Name          string   `json:"name" validate:"required"`
	Email         string   `json:"email" validate:"required,email"`
	Phone         string   `json:"phone" validate:"required"`
	Address       string   `json:"address"`
	DeliveryTypes []string `json:"delivery_types" validate:"required,min=1"`
}

func (h *DeliveryHandler) RegisterCompany(c echo.Context) error {
	var req registerCompanyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	company, err := h.deliveryUseCase.RegisterCompany(c.Request().Context(), usecase.RegisterCompanyInput{
		Name: req.Name,
		ContactInfo: entity.ContactInfo{
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
		},
		DeliveryTypes: req.DeliveryTypes,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, company)
}

func (h *DeliveryHandler) GetCompany(c echo.Context) error {
	id := c.Param("id")

	company, err := h.deliveryUseCase.GetCompany(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, company)
}

func (h *DeliveryHandler) ListCompanies(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	companies, total, err := h.deliveryUseCase.ListCompanies(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, companies, total, pagination.Page, pagination.PageSize)
}

func (h *DeliveryHandler) FindAvailableCompanies(c echo.Context) error {
	address := c.QueryParam("address")
	if address == "" {
		return response.Error(c, errors.BadRequest("Address is required", nil))
	}

	deliveryType := c.QueryParam("delivery_type")

	options, err := h.deliveryUseCase.FindAvailableCompanies(c.Request().Context(), address, deliveryType)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, options)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *DeliveryHandler) UpdateCompanyStatus(c echo.Context) error {
	id := c.Param("id")

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	adminEmail := c.Get("email").(string)

	company, err := h.deliveryUseCase.UpdateCompanyStatus(c.Request().Context(), adminEmail, id, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, company)
}

func (h *DeliveryHandler) DeleteCompany(c echo.Context) error {
	id := c.Param("id")
	adminEmail := c.Get("email").(string)

	if err := h.deliveryUseCase.DeleteCompany(c.Request().Context(), adminEmail, id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Delivery company deleted",
	})
}

type serviceAreaRequest struct {
	Area     string `json:"area" validate:"required"`
	Priority int    `json:"priority"`
}

func (h *DeliveryHandler) AddServiceArea(c echo.Context) error {
	companyID := c.Param("id")

	var req serviceAreaRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	area, err := h.deliveryUseCase.AddServiceArea(c.Request().Context(), companyID, req.Area, req.Priority)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, area)
}

func (h *DeliveryHandler) ListServiceAreas(c echo.Context) error {
	companyID := c.Param("id")

	areas, err := h.deliveryUseCase.ListServiceAreas(c.Request().Context(), companyID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, areas)
}

func (h *DeliveryHandler) RemoveServiceArea(c echo.Context) error {
	companyID := c.Param("id")
	areaID := c.Param("areaId")

	if err := h.deliveryUseCase.RemoveServiceArea(c.Request().Context(), companyID, areaID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Service area removed",
	})
}

type pricingRequest struct {
	Standard         float64 `json:"standard" validate:"min=0"`
	Express          float64 `json:"express" validate:"min=0"`
	SameDay          float64 `json:"same_day" validate:"min=0"`
	StandardEstimate string  `json:"standard_estimate"`
	ExpressEstimate  string  `json:"express_estimate"`
	SameDayEstimate  string  `json:"same_day_estimate"`
}

func (h *DeliveryHandler) SetPricing(c echo.Context) error {
	companyID := c.Param("id")

	var req pricingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	pricing, err := h.deliveryUseCase.SetPricing(
		c.Request().Context(),
		companyID,
		entity.BaseRates{Standard: req.Standard, Express: req.Express, SameDay: req.SameDay},
		entity.EstimatedTimes{Standard: req.StandardEstimate, Express: req.ExpressEstimate, SameDay: req.SameDayEstimate},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, pricing)
}

func (h *DeliveryHandler) GetPricing(c echo.Context) error {
	companyID := c.Param("id")

	pricing, err := h.deliveryUseCase.GetPricing(c.Request().Context(), companyID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, pricing)
}

func (h *DeliveryHandler) GetMetrics(c echo.Context) error {
	companyID := c.Param("id")

	metrics, err := h.deliveryUseCase.GetMetrics(c.Request().Context(), companyID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, metrics)
}
