package handler

import (
	"github.com/labstack/echo/v4"

	"campussell/internal/domain/entity"
	"campussell/internal/usecase"
	"campussell/pkg/errors"
	"campussell/pkg/response"
)

type CheckoutHandler struct {
	checkoutUseCase *usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase *usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

func (h *CheckoutHandler) ListActiveCompanies(c echo.Context) error {
	companies, err := h.checkoutUseCase.GetActiveDeliveryCompanies(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, companies)
}

func (h *CheckoutHandler) GetDeliveryOptions(c echo.Context) error {
	address := c.QueryParam("address")
	if address == "" {
		return response.Error(c, errors.BadRequest("Address is required", nil))
	}

	options, err := h.checkoutUseCase.GetDeliveryOptions(c.Request().Context(), address)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, options)
}

type checkoutRequest struct {
	DeliveryCompanyID string `json:"delivery_company_id" validate:"required"`
	DeliveryType      string `json:"delivery_type" validate:"omitempty,oneof=standard express sameDay"`
	Name              string `json:"name" validate:"required"`
	Phone             string `json:"phone" validate:"required"`
	Address           string `json:"address" validate:"required"`
	Notes             string `json:"notes"`
	PaymentMethod     string `json:"payment_method" validate:"required,oneof=card mobile_money campus_credit"`
}

func (h *CheckoutHandler) ProcessCheckout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	result, err := h.checkoutUseCase.ProcessCheckout(c.Request().Context(), userID, usecase.CheckoutInput{
		DeliveryCompanyID: req.DeliveryCompanyID,
		DeliveryType:      req.DeliveryType,
		DeliveryDetails: entity.DeliveryDetails{
			Name:    req.Name,
			Phone:   req.Phone,
			Address: req.Address,
			Notes:   req.Notes,
		},
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}
