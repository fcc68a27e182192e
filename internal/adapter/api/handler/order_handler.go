package handler

import (
	"github.com/labstack/echo/v4"

	"campussell/internal/usecase"
	"campussell/pkg/response"
	"campussell/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	id := c.Param("id")
	actorID := c.Get("uid").(string)

	order, err := h.orderUseCase.GetOrder(c.Request().Context(), actorID, id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID := c.Get("uid").(string)
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListUserOrders(c.Request().Context(), userID, status, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.PageSize)
}

// ListCompanyOrders is the delivery dashboard view: same order records,
// filtered by the assigned company instead of the buyer. The company id is
// resolved by the company middleware from the caller's email.
func (h *OrderHandler) ListCompanyOrders(c echo.Context) error {
	companyID := c.Get("companyId").(string)
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListCompanyOrders(c.Request().Context(), companyID, status, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.PageSize)
}

func (h *OrderHandler) CancelOrder(c echo.Context) error {
	id := c.Param("id")
	userID := c.Get("uid").(string)

	order, err := h.orderUseCase.CancelOrder(c.Request().Context(), userID, id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

type advanceOrderRequest struct {
	Status string `json:"status" validate:"required,oneof=in_progress delivered"`
}

// AdvanceOrder moves an order forward for the assigned delivery company.
// The acting company comes from the company middleware, not the request.
func (h *OrderHandler) AdvanceOrder(c echo.Context) error {
	id := c.Param("id")
	companyID := c.Get("companyId").(string)

	var req advanceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.AdvanceOrderAsCompany(c.Request().Context(), companyID, id, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

// AdvanceOrderAsAdmin is the back-office version of AdvanceOrder and skips
// the assignment check.
func (h *OrderHandler) AdvanceOrderAsAdmin(c echo.Context) error {
	id := c.Param("id")

	var req advanceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.AdvanceOrderAsAdmin(c.Request().Context(), id, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
